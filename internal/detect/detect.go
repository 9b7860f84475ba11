package detect

import "sort"

// Span is a half-open byte range [Start, End) into a document.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the substring of doc covered by s.
func (s Span) Text(doc string) string {
	return doc[s.Start:s.End]
}

// Detection is a single classified span.
type Detection struct {
	Category Category `json:"-"`
	Span
}

// Detections holds per-category span lists, each ordered left to right.
type Detections struct {
	Emails []Span `json:"emails"`
	IPs    []Span `json:"ips"`
	UUIDs  []Span `json:"uuids"`
	JWTs   []Span `json:"jwts"`
	Tokens []Span `json:"tokens"`
}

func (d *Detections) slot(c Category) *[]Span {
	switch c {
	case Email:
		return &d.Emails
	case IPv4:
		return &d.IPs
	case UUIDv4:
		return &d.UUIDs
	case JWT:
		return &d.JWTs
	case Token:
		return &d.Tokens
	default:
		return nil
	}
}

// Of returns the spans recorded for c.
func (d Detections) Of(c Category) []Span {
	if p := d.slot(c); p != nil {
		return *p
	}
	return nil
}

// Add appends s to the list for c. Unknown categories are ignored.
func (d *Detections) Add(c Category, s Span) {
	if p := d.slot(c); p != nil {
		*p = append(*p, s)
	}
}

// Len returns the total number of detections across categories.
func (d Detections) Len() int {
	return len(d.Emails) + len(d.IPs) + len(d.UUIDs) + len(d.JWTs) + len(d.Tokens)
}

// All merges every category into one list sorted by start offset, then by
// processing order.
func (d Detections) All() []Detection {
	all := make([]Detection, 0, d.Len())
	for _, c := range Ordered() {
		for _, s := range d.Of(c) {
			all = append(all, Detection{Category: c, Span: s})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Start != all[j].Start {
			return all[i].Start < all[j].Start
		}
		return all[i].Category < all[j].Category
	})
	return all
}

// Scan classifies text with every matcher independently, using the default
// entropy threshold. It never modifies text.
func Scan(text string) Detections {
	return ScanWithThreshold(text, DefaultEntropyThreshold)
}

// ScanWithThreshold is Scan with a custom token entropy threshold.
func ScanWithThreshold(text string, threshold float64) Detections {
	var d Detections
	for _, c := range Ordered() {
		*d.slot(c) = Match(c, text, threshold)
	}
	return d
}

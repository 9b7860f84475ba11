package redact

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/scrubby/internal/detect"
)

// Options controls a single redaction run.
type Options struct {
	// StablePlaceholders numbers placeholders per category (<EMAIL_1>).
	StablePlaceholders bool
	// EntropyThreshold is the token gate in bits per byte. Zero or
	// negative selects detect.DefaultEntropyThreshold.
	EntropyThreshold float64
}

// DefaultOptions returns fixed placeholders and the default threshold.
func DefaultOptions() Options {
	return Options{EntropyThreshold: detect.DefaultEntropyThreshold}
}

// Counts holds the number of replacements made per category.
type Counts struct {
	Emails int `json:"emails"`
	IPs    int `json:"ips"`
	UUIDs  int `json:"uuids"`
	JWTs   int `json:"jwts"`
	Tokens int `json:"tokens"`
}

// Of returns the count for c.
func (c Counts) Of(cat detect.Category) int {
	switch cat {
	case detect.Email:
		return c.Emails
	case detect.IPv4:
		return c.IPs
	case detect.UUIDv4:
		return c.UUIDs
	case detect.JWT:
		return c.JWTs
	case detect.Token:
		return c.Tokens
	default:
		return 0
	}
}

// Total returns the sum over all categories.
func (c Counts) Total() int {
	return c.Emails + c.IPs + c.UUIDs + c.JWTs + c.Tokens
}

func (c *Counts) inc(cat detect.Category) int {
	switch cat {
	case detect.Email:
		c.Emails++
	case detect.IPv4:
		c.IPs++
	case detect.UUIDv4:
		c.UUIDs++
	case detect.JWT:
		c.JWTs++
	case detect.Token:
		c.Tokens++
	}
	return c.Of(cat)
}

// Result is the outcome of a redaction run.
type Result struct {
	// Text is the sanitized document.
	Text string
	// Counts holds exact per-category replacement counts.
	Counts Counts
	// Detections are the replaced spans, as offsets into the input.
	Detections detect.Detections
	// Withheld is set when the whole document was replaced by path policy.
	Withheld bool
}

// Scrub redacts text with DefaultOptions.
func Scrub(text string) Result {
	return Redact(text, DefaultOptions())
}

// Redact runs the five category passes over text and returns the sanitized
// text with its counts. It is safe for concurrent use.
func Redact(text string, opts Options) Result {
	var res Result
	doc := newDocument(text)
	for _, c := range detect.Ordered() {
		doc = doc.rewrite(c, opts, &res)
	}
	res.Text = doc.text
	return res
}

func placeholder(c detect.Category, n int, stable bool) string {
	if !stable {
		return "<" + c.Label() + ">"
	}
	return "<" + c.Label() + "_" + strconv.Itoa(n) + ">"
}

// segment maps a byte range of the current text back to the input. orig is
// -1 for placeholder text.
type segment struct {
	start, end int
	orig       int
}

// document is the text between passes plus its mapping to the input.
type document struct {
	text string
	segs []segment
}

func newDocument(text string) document {
	d := document{text: text}
	if text != "" {
		d.segs = []segment{{start: 0, end: len(text), orig: 0}}
	}
	return d
}

// rewrite performs the pass for c. Matches never span a placeholder since
// '<' and '>' belong to no pattern, so each one maps to a contiguous range
// of the input.
func (d document) rewrite(c detect.Category, opts Options, res *Result) document {
	spans := detect.Candidates(c, d.text)
	if len(spans) == 0 {
		return d
	}

	var b strings.Builder
	b.Grow(len(d.text))
	out := document{segs: make([]segment, 0, len(d.segs)+2*len(spans))}
	last := 0
	replaced := false
	for _, s := range spans {
		if c == detect.Token && !detect.IsToken(s.Text(d.text), opts.EntropyThreshold) {
			continue
		}
		out.copyRange(d, last, s.Start, &b)
		n := res.Counts.inc(c)
		out.appendPlaceholder(placeholder(c, n, opts.StablePlaceholders), &b)
		res.Detections.Add(c, d.origin(s))
		last = s.End
		replaced = true
	}
	if !replaced {
		return d
	}
	out.copyRange(d, last, len(d.text), &b)
	out.text = b.String()
	return out
}

// copyRange appends src.text[from:to] to b, carrying the input mapping.
func (d *document) copyRange(src document, from, to int, b *strings.Builder) {
	if from >= to {
		return
	}
	i := sort.Search(len(src.segs), func(i int) bool { return src.segs[i].end > from })
	for ; i < len(src.segs) && src.segs[i].start < to; i++ {
		seg := src.segs[i]
		lo, hi := max(seg.start, from), min(seg.end, to)
		orig := -1
		if seg.orig >= 0 {
			orig = seg.orig + (lo - seg.start)
		}
		start := b.Len()
		b.WriteString(src.text[lo:hi])
		d.segs = append(d.segs, segment{start: start, end: b.Len(), orig: orig})
	}
}

func (d *document) appendPlaceholder(p string, b *strings.Builder) {
	start := b.Len()
	b.WriteString(p)
	d.segs = append(d.segs, segment{start: start, end: b.Len(), orig: -1})
}

// origin translates a span of d.text into input offsets.
func (d document) origin(s detect.Span) detect.Span {
	i := sort.Search(len(d.segs), func(i int) bool { return d.segs[i].end > s.Start })
	if i == len(d.segs) || d.segs[i].orig < 0 {
		return s
	}
	start := d.segs[i].orig + (s.Start - d.segs[i].start)
	return detect.Span{Start: start, End: start + s.Len()}
}

package detect

import "regexp"

// patterns is indexed by Category. It is built once and never modified, so
// it is safe for concurrent use.
var patterns = [...]*regexp.Regexp{
	Email: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),

	// Any syntactically valid dotted quad, private and loopback included.
	IPv4: regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4]\d|1?\d?\d)\.){3}(?:25[0-5]|2[0-4]\d|1?\d?\d)\b`),

	// Version nibble fixed to 4, variant nibble in [89ab].
	UUIDv4: regexp.MustCompile(`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}\b`),

	// Shape only: three URL-safe base64 segments. No header decoding.
	JWT: regexp.MustCompile(`\b[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\b`),

	// Candidates only; callers gate on Entropy.
	Token: regexp.MustCompile(`\b[A-Za-z0-9_-]{32,}\b`),
}

// Candidates returns the raw pattern matches for c in text, leftmost first
// and non-overlapping. Token candidates are returned without entropy
// filtering. An invalid category yields nil.
func Candidates(c Category, text string) []Span {
	if !c.Valid() {
		return nil
	}
	locs := patterns[c].FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: loc[0], End: loc[1]}
	}
	return spans
}

// Match returns the spans in text classified as c. For Token, only
// candidates scoring at least threshold bits per byte are kept; a
// threshold <= 0 selects DefaultEntropyThreshold.
func Match(c Category, text string, threshold float64) []Span {
	spans := Candidates(c, text)
	if c != Token {
		return spans
	}
	threshold = EffectiveThreshold(threshold)
	kept := spans[:0]
	for _, s := range spans {
		if Entropy(s.Text(text)) >= threshold {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// IsToken reports whether candidate passes the entropy gate.
func IsToken(candidate string, threshold float64) bool {
	return Entropy(candidate) >= EffectiveThreshold(threshold)
}

// EffectiveThreshold substitutes the default for non-positive thresholds.
func EffectiveThreshold(threshold float64) float64 {
	if threshold <= 0 {
		return DefaultEntropyThreshold
	}
	return threshold
}

package detect

import "math"

// DefaultEntropyThreshold is the minimum score, in bits per byte, a token
// candidate needs to be reported. It flags typical hex and base64 keys while
// letting low-variety runs such as "aaaa..." or "----..." through.
const DefaultEntropyThreshold = 3.5

// Entropy returns the order-0 Shannon entropy of s in bits per byte,
// computed over the byte frequency distribution. The empty string scores 0.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}
	var counts [256]int
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	n := float64(len(s))
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}

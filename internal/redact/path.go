package redact

import (
	"path/filepath"
	"strings"
)

// WithheldPlaceholder replaces the whole content of a file matched by the
// path policy.
const WithheldPlaceholder = "<REDACTED_FILE>"

// DefaultRedactPaths are withheld unless the config says otherwise.
var DefaultRedactPaths = []string{"**/.env", "**/*secrets*"}

// ShouldRedactPath checks if a file path matches any of the redaction path patterns.
func ShouldRedactPath(path string, patterns []string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range patterns {
		matched, err := filepath.Match(pattern, path)
		if err == nil && matched {
			return true
		}
		// "**/name" matches name in any directory.
		cleanPattern := strings.TrimPrefix(pattern, "**/")
		if cleanPattern != pattern {
			matched, err = filepath.Match(cleanPattern, filepath.Base(path))
			if err == nil && matched {
				return true
			}
		}
	}
	return false
}

// Content withholds content entirely when path matches the policy and
// otherwise redacts it with opts.
func Content(content, path string, patterns []string, opts Options) Result {
	if ShouldRedactPath(path, patterns) {
		return Result{Text: WithheldPlaceholder, Withheld: true}
	}
	return Redact(content, opts)
}

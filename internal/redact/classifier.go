package redact

import (
	"regexp"
	"strings"
)

// Placeholder replaces every sensitive value.
const Placeholder = "***REDACTED***"

// builtinPatterns are the field-name rules that always apply.
var builtinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)password`),
	regexp.MustCompile(`(?i)token`),
	regexp.MustCompile(`(?i)api[\s_-]?key`),
	regexp.MustCompile(`(?i)secret`),
	regexp.MustCompile(`(?i)credential`),
	regexp.MustCompile(`(?i)authorization`),
	// Whole name only, so "author" and "oauth_provider" stay visible.
	regexp.MustCompile(`(?i)^auth$`),
	regexp.MustCompile(`(?i)private[\s_-]?key`),
	regexp.MustCompile(`(?i)access[\s_-]?key`),
	regexp.MustCompile(`(?i)client[\s_-]?secret`),
}

// Classifier decides whether a field name is sensitive.
type Classifier struct {
	patterns []*regexp.Regexp
}

// NewClassifier returns a Classifier over the built-in patterns followed by
// extra. Each extra is a case-insensitive regular expression; one that does
// not compile is matched as a literal substring instead. Empty extras are
// skipped.
func NewClassifier(extra ...string) *Classifier {
	if len(extra) == 0 {
		return &Classifier{patterns: builtinPatterns}
	}
	patterns := make([]*regexp.Regexp, 0, len(builtinPatterns)+len(extra))
	patterns = append(patterns, builtinPatterns...)
	for _, p := range extra {
		if re := CompileExtra(p); re != nil {
			patterns = append(patterns, re)
		}
	}
	return &Classifier{patterns: patterns}
}

// CompileExtra compiles a caller-supplied pattern. It returns nil for an
// empty pattern. A pattern that is not a valid expression matches literally.
func CompileExtra(pattern string) *regexp.Regexp {
	if strings.TrimSpace(pattern) == "" {
		return nil
	}
	if re, err := regexp.Compile(extraExpr(pattern)); err == nil {
		return re
	}
	return regexp.MustCompile(extraExpr(regexp.QuoteMeta(pattern)))
}

// ValidExtra reports why pattern would fall back to a literal match in
// CompileExtra. Empty patterns are ignored and yield nil.
func ValidExtra(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return nil
	}
	_, err := regexp.Compile(extraExpr(pattern))
	return err
}

func extraExpr(pattern string) string {
	return "(?i)" + pattern
}

// Match reports whether name matches any pattern in the set.
func (c *Classifier) Match(name string) bool {
	for _, re := range c.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// IsSensitiveName reports whether name matches a built-in pattern.
func IsSensitiveName(name string) bool {
	for _, re := range builtinPatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

package analyzer

import "regexp"

// PatternRule binds a detection kind to its matcher and a fixed severity.
// The registry is a closed set compiled at init; adding a kind is a code
// change, not runtime configuration.
type PatternRule struct {
	Kind     string
	Severity string
	Pattern  *regexp.Regexp
}

// patternRules is the detection registry. Order matters: content findings are
// emitted in registry order, then match order within each rule.
var patternRules = []PatternRule{
	{
		Kind:     "sql_injection",
		Severity: SeverityCritical,
		Pattern:  regexp.MustCompile(`(?i)(\b(select|update|delete|insert|drop|alter)\b.*\b(from|table|where|set)\b)|('\s*or\s*'\s*=\s*')|('\s*;\s*--\s*)`),
	},
	{
		Kind:     "xss_vulnerability",
		Severity: SeverityHigh,
		Pattern:  regexp.MustCompile(`(?i)(<script[^>]*>|javascript:|\bon\w+\s*=|\beval\s*\()`),
	},
	{
		Kind:     "sensitive_data",
		Severity: SeverityHigh,
		Pattern:  regexp.MustCompile(`(?i)(password|passwd|pwd|secret|api[_\-]?key|access[_\-]?token|auth[_\-]?token)`),
	},
	{
		Kind:     "path_traversal",
		Severity: SeverityCritical,
		Pattern:  regexp.MustCompile(`(?i)(\.\./|\.\.\\|/etc/passwd|/etc/shadow|c:\\windows\\system32)`),
	},
	{
		Kind:     "open_redirect",
		Severity: SeverityMedium,
		Pattern:  regexp.MustCompile(`(?i)(url=|redirect=|return=|next=|redir=|r=|destination=)`),
	},
}

// Rules returns the detection registry. Callers must treat it as read-only.
func Rules() []PatternRule {
	return patternRules
}

package analyzer

import "strings"

// contextRadius is how many bytes of surrounding evidence are captured on
// each side of a content match.
const contextRadius = 30

// AnalyzeContent scans page content against every rule in the registry and
// returns one finding per non-overlapping match. Matching is case-insensitive
// and safe for arbitrary input; empty or non-matching content yields nil.
func AnalyzeContent(url, content string) []Finding {
	var findings []Finding

	for _, rule := range patternRules {
		for _, loc := range rule.Pattern.FindAllStringIndex(content, -1) {
			start, end := loc[0], loc[1]

			ctxStart := start - contextRadius
			if ctxStart < 0 {
				ctxStart = 0
			}
			ctxEnd := end + contextRadius
			if ctxEnd > len(content) {
				ctxEnd = len(content)
			}

			pos := start
			findings = append(findings, Finding{
				ID:       "deep_" + rule.Kind,
				Severity: rule.Severity,
				Details:  "Potential " + strings.ReplaceAll(rule.Kind, "_", " ") + " detected",
				Context:  strings.TrimSpace(content[ctxStart:ctxEnd]),
				URL:      url,
				Position: &pos,
			})
		}
	}

	return findings
}

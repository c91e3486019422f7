// Package analyzer enriches raw web-scan results with pattern-matched
// findings, remediation recommendations and an aggregate risk score.
//
// The package is pure: Analyze reads nothing but its arguments, touches no
// network or clock, and holds no state between calls. The shared pattern
// registry is immutable, so a single analyzer is safe for any number of
// concurrent callers.
package analyzer

// Severity weights for the risk score.
const (
	weightCritical = 25
	weightHigh     = 10
	weightMedium   = 5
	weightLow      = 1

	maxRiskScore = 100
)

// Analyze runs the full pipeline over a batch of records: pass-through
// issues, content detection, header detection, recommendations and scoring.
// Identical input always yields an identical report.
func Analyze(records []Record) *Report {
	findings := make([]Finding, 0)
	seenURLs := make(map[string]struct{})

	for _, rec := range records {
		// Empty string still counts as one distinct url.
		seenURLs[rec.URL] = struct{}{}

		findings = append(findings, rec.Issues...)
		if rec.Content != "" {
			findings = append(findings, AnalyzeContent(rec.URL, rec.Content)...)
		}
		if len(rec.Headers) > 0 {
			findings = append(findings, AnalyzeHeaders(rec.URL, rec.Headers)...)
		}
	}

	counts := tallySeverities(findings)
	score := riskScore(counts)

	return &Report{
		EnhancedIssues:  findings,
		Recommendations: Recommendations(findings),
		RiskScore:       score,
		RiskLevel:       riskLevel(score),
		SeverityCounts:  counts,
		URLsAnalyzed:    len(seenURLs),
	}
}

// tallySeverities counts findings per known severity. Unknown or missing
// severities are deliberately excluded: they contribute to neither counts
// nor score.
func tallySeverities(findings []Finding) map[string]int {
	counts := make(map[string]int, len(knownSeverities))
	for _, s := range knownSeverities {
		counts[s] = 0
	}
	for _, f := range findings {
		if _, ok := counts[f.Severity]; ok {
			counts[f.Severity]++
		}
	}
	return counts
}

// riskScore computes the severity-weighted score, clamped to [0,100].
func riskScore(counts map[string]int) int {
	raw := counts[SeverityCritical]*weightCritical +
		counts[SeverityHigh]*weightHigh +
		counts[SeverityMedium]*weightMedium +
		counts[SeverityLow]*weightLow
	if raw > maxRiskScore {
		return maxRiskScore
	}
	return raw
}

// riskLevel maps a score to its discrete band.
func riskLevel(score int) string {
	switch {
	case score > 75:
		return SeverityCritical
	case score > 50:
		return SeverityHigh
	case score > 25:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

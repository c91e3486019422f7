package analyzer

// Severity levels, ordered from most to least impactful.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// knownSeverities drives the severity tally; findings carrying anything else
// are excluded from counts and score.
var knownSeverities = []string{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Record is one scanned page's raw data as submitted by the upstream scanner.
// All fields beyond URL are optional; a record is never mutated after receipt.
type Record struct {
	URL     string            `json:"url"`
	Content string            `json:"content,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Issues  []Finding         `json:"issues,omitempty"`
}

// Finding is a single security observation, either detected here or passed
// through from the upstream scanner.
type Finding struct {
	ID       string `json:"id" yaml:"id"`
	Severity string `json:"severity" yaml:"severity"`
	Details  string `json:"details,omitempty" yaml:"details,omitempty"`
	Context  string `json:"context,omitempty" yaml:"context,omitempty"`
	URL      string `json:"url" yaml:"url"`
	// Position is the match's start offset within the page content. Header
	// derived and pass-through findings carry no position.
	Position *int `json:"position,omitempty" yaml:"position,omitempty"`
}

// Report is the output of one analysis run. Slices and the counts map are
// always non-nil so the JSON shape is stable for consumers.
type Report struct {
	EnhancedIssues  []Finding      `json:"enhanced_issues" yaml:"enhanced_issues"`
	Recommendations []string       `json:"recommendations" yaml:"recommendations"`
	RiskScore       int            `json:"risk_score" yaml:"risk_score"`
	RiskLevel       string         `json:"risk_level" yaml:"risk_level"`
	SeverityCounts  map[string]int `json:"severity_counts" yaml:"severity_counts"`
	URLsAnalyzed    int            `json:"urls_analyzed" yaml:"urls_analyzed"`
}

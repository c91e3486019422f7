package analyzer

// remediation binds a finding id to its remediation advice. The catalog is
// walked in priority order, so recommendations come out in a fixed order
// regardless of discovery order.
type remediation struct {
	ID     string
	Advice string
}

var remediationCatalog = []remediation{
	{
		ID:     "deep_sql_injection",
		Advice: "Implement parameterized queries or prepared statements for all database operations. Never concatenate user input directly into SQL queries.",
	},
	{
		ID:     "deep_xss_vulnerability",
		Advice: "Implement context-specific output encoding and use Content Security Policy (CSP) to mitigate XSS attacks. Consider using modern frameworks that automatically escape output.",
	},
	{
		ID:     "deep_sensitive_data",
		Advice: "Remove sensitive data from client-side code. Store API keys and credentials securely using environment variables or a secure vault solution.",
	},
	{
		ID:     "deep_path_traversal",
		Advice: "Validate and sanitize all file paths. Use whitelisting approaches and avoid passing user input directly to filesystem operations.",
	},
	{
		ID:     "deep_open_redirect",
		Advice: "Implement a whitelist of allowed redirect destinations or use relative path redirects. Always validate redirect URLs against a list of allowed domains.",
	},
	{
		ID:     "deep_insecure_cookie",
		Advice: "Set the Secure, HttpOnly, and SameSite flags on all cookies containing sensitive information. Consider implementing token-based authentication instead of cookie-based authentication.",
	},
	{
		ID:     "deep_server_disclosure",
		Advice: "Configure your web server to remove or obfuscate the Server header to prevent information disclosure about your technology stack.",
	},
}

// Recommendations maps the set of distinct finding ids to remediation advice,
// at most one entry per id. Ids outside the catalog (e.g. pass-through issue
// kinds from upstream) contribute nothing.
func Recommendations(findings []Finding) []string {
	present := make(map[string]bool, len(findings))
	for _, f := range findings {
		present[f.ID] = true
	}

	recs := make([]string, 0, len(remediationCatalog))
	for _, r := range remediationCatalog {
		if present[r.ID] {
			recs = append(recs, r.Advice)
		}
	}
	return recs
}

package analyzer

import "strings"

// AnalyzeHeaders inspects well-known response headers for insecure
// configuration and information disclosure. Keys are expected in canonical
// lowercase form; a missing header is simply no finding, never an error.
func AnalyzeHeaders(url string, headers map[string]string) []Finding {
	var findings []Finding

	if cookie, ok := headers["set-cookie"]; ok {
		lower := strings.ToLower(cookie)
		if !strings.Contains(lower, "secure") || !strings.Contains(lower, "httponly") {
			findings = append(findings, Finding{
				ID:       "deep_insecure_cookie",
				Severity: SeverityHigh,
				Details:  "Cookies set without Secure or HttpOnly flags",
				Context:  cookie,
				URL:      url,
			})
		}
	}

	if server, ok := headers["server"]; ok && server != "" {
		findings = append(findings, Finding{
			ID:       "deep_server_disclosure",
			Severity: SeverityMedium,
			Details:  "Server header reveals software information",
			Context:  server,
			URL:      url,
		})
	}

	return findings
}

package analyzer

import "testing"

func TestRegistryComposition(t *testing.T) {
	rules := Rules()

	wantOrder := []struct {
		kind     string
		severity string
	}{
		{"sql_injection", SeverityCritical},
		{"xss_vulnerability", SeverityHigh},
		{"sensitive_data", SeverityHigh},
		{"path_traversal", SeverityCritical},
		{"open_redirect", SeverityMedium},
	}

	if len(rules) != len(wantOrder) {
		t.Fatalf("expected %d rules, got %d", len(wantOrder), len(rules))
	}
	for i, want := range wantOrder {
		if rules[i].Kind != want.kind {
			t.Errorf("rule %d: expected kind %s, got %s", i, want.kind, rules[i].Kind)
		}
		if rules[i].Severity != want.severity {
			t.Errorf("rule %d (%s): expected severity %s, got %s", i, want.kind, want.severity, rules[i].Severity)
		}
		if rules[i].Pattern == nil {
			t.Errorf("rule %d (%s): nil pattern", i, want.kind)
		}
	}
}

func TestRulesMatchArbitraryInput(t *testing.T) {
	// Matchers must be total over arbitrary text, including control bytes
	// and invalid UTF-8.
	inputs := []string{
		"",
		"\x00\x01\x02",
		string([]byte{0xff, 0xfe, 0xfd}),
		"plain text with no issues",
	}
	for _, in := range inputs {
		for _, rule := range Rules() {
			// Must not panic regardless of the outcome.
			_ = rule.Pattern.FindAllStringIndex(in, -1)
		}
	}
}

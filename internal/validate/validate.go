package validate

import "strings"

// Shared normalization rules for capture payloads. Both forms apply the same
// trim-then-empty-is-absent treatment to optional fields, so the rules live
// here instead of being repeated per domain.

// Email trims and lowercases raw. The second return is false when the value
// is empty after trimming or does not contain an '@'. The check is
// deliberately lenient: this is a lead form, not an account system, and the
// landing page already applies its own input masking.
func Email(raw string) (string, bool) {
	email := strings.TrimSpace(raw)
	if email == "" || !strings.Contains(email, "@") {
		return "", false
	}
	return strings.ToLower(email), true
}

// Optional trims raw and returns nil when nothing remains, so whitespace-only
// input is stored as NULL rather than an empty string.
func Optional(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Required trims raw and reports whether anything remains.
func Required(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	return trimmed, trimmed != ""
}

package phone

import "strings"

// DefaultCountryCode is prepended to subscriber numbers that arrive without
// a country prefix.
const DefaultCountryCode = "+88"

// Normalize converts a raw phone number to the single +<countrycode><subscriber>
// form the auth API expects. Callers normalize exactly once, before the
// credential leaves the client; the gate and the session store never touch
// phone numbers.
func Normalize(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' {
			return r
		}
		return -1
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return ""
	}
	if strings.HasPrefix(cleaned, DefaultCountryCode) {
		return cleaned
	}
	if strings.HasPrefix(cleaned, "+") {
		// Already carries some country code; leave it alone.
		return cleaned
	}
	return DefaultCountryCode + cleaned
}

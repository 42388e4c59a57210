// Package validate holds the small validation helpers shared by the waitlist
// intake path: email shape checks and website URL normalization.
package validate

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// freeEmailDomains are consumer mail providers. Addresses on these domains
// are valid but not considered work emails.
var freeEmailDomains = map[string]struct{}{
	"gmail.com":       {},
	"googlemail.com":  {},
	"yahoo.com":       {},
	"yahoo.co.uk":     {},
	"hotmail.com":     {},
	"hotmail.co.uk":   {},
	"outlook.com":     {},
	"live.com":        {},
	"msn.com":         {},
	"aol.com":         {},
	"icloud.com":      {},
	"me.com":          {},
	"mac.com":         {},
	"proton.me":       {},
	"protonmail.com":  {},
	"gmx.com":         {},
	"gmx.de":          {},
	"mail.com":        {},
	"yandex.com":      {},
	"yandex.ru":       {},
	"zoho.com":        {},
}

// IsValidEmail reports whether s has a plausible local@domain.tld shape.
func IsValidEmail(s string) bool {
	return govalidator.IsEmail(s)
}

// IsWorkEmail reports whether s is a valid email on a non-consumer domain.
// Invalid addresses are never work emails.
func IsWorkEmail(s string) bool {
	if !IsValidEmail(s) {
		return false
	}
	at := strings.LastIndex(s, "@")
	domain := strings.ToLower(s[at+1:])
	_, free := freeEmailDomains[domain]
	return !free
}

// NormalizeWebsiteURL prepends https:// when the URL carries no scheme.
// URLs already carrying http:// or https:// are returned unchanged.
func NormalizeWebsiteURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return u
	}
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return u
	}
	return "https://" + u
}

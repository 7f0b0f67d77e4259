// Package validate holds the pure input checks shared by the services.
package validate

import "regexp"

var (
	// one local part, one domain, one dot-separated TLD; nothing stricter
	emailPattern = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// format-only: "2024-02-30" passes, calendar validity is not checked
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidDate reports whether s is shaped YYYY-MM-DD.
func IsValidDate(s string) bool {
	return datePattern.MatchString(s)
}

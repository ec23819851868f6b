package compliance

import (
	"regexp"
	"strings"
)

var (
	cacPattern = regexp.MustCompile(`^(RC\d{6,7}|BN\d{7})$`)
	nonDigits  = regexp.MustCompile(`\D`)
)

// ValidTIN reports whether tin holds exactly 12 digits once separators are removed.
func ValidTIN(tin string) bool {
	return len(nonDigits.ReplaceAllString(tin, "")) == 12
}

// ValidCAC reports whether cac is an RC (company) or BN (business name)
// registration number. Case and surrounding spaces are ignored.
func ValidCAC(cac string) bool {
	return cacPattern.MatchString(strings.ToUpper(strings.TrimSpace(cac)))
}

// CACMatchesType reports whether a registration prefix agrees with the legal
// form: RC numbers belong to limited companies and BN numbers to business
// names. An empty legal form or CAC number always matches.
func CACMatchesType(cac, legalForm string) bool {
	cac = strings.ToUpper(strings.TrimSpace(cac))
	form := strings.ToLower(strings.TrimSpace(legalForm))
	if cac == "" || form == "" {
		return true
	}
	switch {
	case strings.HasPrefix(cac, "RC"):
		return strings.Contains(form, "limited company")
	case strings.HasPrefix(cac, "BN"):
		return form == "business name"
	}
	return true
}

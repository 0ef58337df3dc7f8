package validator

import (
	"regexp"
	"strings"
)

var (
	nonDigitRe = regexp.MustCompile(`[^\d]`)
	mobileRe   = regexp.MustCompile(`^09\d{8}$`)
	landlineRe = regexp.MustCompile(`^0\d{1,3}[-\s]?\d{6,8}$`)
)

// ValidTaiwanPhone reports whether s is a valid Taiwanese phone number.
// Mobile numbers are validated on digits only: exactly 10 digits starting 09.
// Landline numbers start with 0 (but not 09): 1-3 digit area code, 6-8 digit
// subscriber number, optional single hyphen or space between them.
func ValidTaiwanPhone(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	digits := nonDigitRe.ReplaceAllString(s, "")
	if strings.HasPrefix(digits, "09") {
		return mobileRe.MatchString(digits)
	}
	return landlineRe.MatchString(s)
}

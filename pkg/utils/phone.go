package utils

import (
	"regexp"
	"strings"
)

var (
	// Regex to remove non-digit characters
	digitsOnlyRegex = regexp.MustCompile(`[^0-9]`)
)

// E.164 caps numbers at 15 digits
const (
	minPhoneDigits = 6
	maxPhoneDigits = 15
)

func digitsOnly(s string) string {
	return digitsOnlyRegex.ReplaceAllString(s, "")
}

// NormalizePhoneNumber joins a dialing code and a number as "+CC NNNNNNNN".
// Formatting characters are removed and the trunk zero after the dialing code
// is dropped. A number written with its own "+" or "00" code keeps it; when
// that code is the selected prefix the usual space is inserted, otherwise the
// number comes back as "+" followed by its digits.
// Example: ("+33", "06 12 34 56 78") -> "+33 612345678"
func NormalizePhoneNumber(prefix, number string) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return ""
	}

	code := digitsOnly(prefix)
	digits := digitsOnly(number)

	if strings.HasPrefix(number, "+") || strings.HasPrefix(number, "00") {
		international := digits
		if !strings.HasPrefix(number, "+") {
			international = digits[2:]
		}
		if code != "" && strings.HasPrefix(international, code) && len(international) > len(code) {
			return "+" + code + " " + strings.TrimPrefix(international[len(code):], "0")
		}
		return "+" + international
	}

	if code == "" {
		return digits
	}
	return "+" + code + " " + strings.TrimPrefix(digits, "0")
}

// ValidatePhoneNumber reports whether phone carries a dialable number of digits
func ValidatePhoneNumber(phone string) bool {
	n := len(digitsOnly(phone))
	return n >= minPhoneDigits && n <= maxPhoneDigits
}

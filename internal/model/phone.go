package model

import (
	"regexp"
	"strings"
)

// Vietnamese mobile numbers: 10 digits, prefix 03/05/07/08/09.
var phonePattern = regexp.MustCompile(`^(03|05|07|08|09)\d{8}$`)

// NormalizePhone strips every non-digit character. Validation always runs on
// the normalized form, never the raw input.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func ValidPhone(s string) bool {
	return phonePattern.MatchString(NormalizePhone(s))
}

package utils

import (
	"regexp"
	"strings"
)

// phoneMask is the fixed middle segment of a masked phone number.
const phoneMask = " *** **"

// GetMaskedPhone renders a phone number safe for display: the first four
// characters, a fixed mask, and the last two. Anything empty or shorter
// than eight characters collapses to "***". Display rule only; the call
// bridge always dials the raw number.
func GetMaskedPhone(phone string) string {
	if len(phone) < 8 {
		return "***"
	}
	return phone[:4] + phoneMask + phone[len(phone)-2:]
}

// IsValidPhoneNumber checks if a string is a valid phone number
func IsValidPhoneNumber(phone string) bool {
	// Simple regex for international phone numbers
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	return phoneRegex.MatchString(phone)
}

// SanitizeString removes unwanted characters from a string
func SanitizeString(s string) string {
	// Replace control characters with spaces, then normalize whitespace
	result := regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`).ReplaceAllString(s, " ")
	result = regexp.MustCompile(`\s+`).ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reSpaces = regexp.MustCompile(`\s+`)
	reNonNum = regexp.MustCompile(`[^0-9.]`)
	reDigits = regexp.MustCompile(`[0-9]+`)
	reDMY    = regexp.MustCompile(`^(\d{2})[./-](\d{2})[./-](\d{4})$`)
	reYMD    = regexp.MustCompile(`^(\d{4})[./-](\d{2})[./-](\d{2})$`)
	reZeros  = regexp.MustCompile(`^0+`)
)

// SanitizeCell collapses interior whitespace runs to single spaces and trims.
func SanitizeCell(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// ParseNumber strips everything that is not a digit or decimal point and
// parses the remainder. An empty or unparseable value yields 0.
func ParseNumber(input string) float64 {
	cleaned := reNonNum.ReplaceAllString(input, "")
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// FirstDigits returns the first run of digits in the input, or "".
func FirstDigits(input string) string {
	return reDigits.FindString(input)
}

// CleanBarcode trims the barcode and strips leading zero characters.
func CleanBarcode(barcode string) string {
	return reZeros.ReplaceAllString(strings.TrimSpace(barcode), "")
}

// FixDate normalizes the date formats seen on vendor orders to ISO
// yyyy-mm-dd. Unrecognized inputs come back empty.
func FixDate(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	if m := reDMY.FindStringSubmatch(s); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	if m := reYMD.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3]
	}
	return ""
}

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }

func BoolPtr(v bool) *bool { return &v }

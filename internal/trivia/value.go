package trivia

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseValue converts a dollar string such as "$1,000" to 1000. It reports
// false for empty, "None"/"nan" or otherwise non-numeric input and never
// panics.
func ParseValue(text string) (int, bool) {
	s := strings.TrimSpace(text)
	if isNullLike(s) {
		return 0, false
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseValueLenient keeps only the digits of text, so "$1,000 " and
// "USD 1000" both yield 1000. Used when loading raw CSV dumps.
func ParseValueLenient(text string) (int, bool) {
	s := strings.TrimSpace(text)
	if isNullLike(s) {
		return 0, false
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, false
	}

	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatValue renders v as "$200" or, from 1000 up, "$1,000". nil renders
// as the empty string.
func FormatValue(v *int) string {
	if v == nil {
		return ""
	}

	n := *v
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.Itoa(n)
	if n < 1000 {
		return sign + "$" + digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + "$" + b.String()
}

func isNullLike(s string) bool {
	if s == "" {
		return true
	}
	switch strings.ToLower(s) {
	case "none", "null", "nan":
		return true
	}
	return !strings.ContainsFunc(s, unicode.IsDigit)
}

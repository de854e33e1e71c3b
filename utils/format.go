package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency renders a value as Brazilian currency with a dot thousands
// separator and comma decimals: 1234.5 becomes "R$ 1.234,50". A nil value
// renders as "-".
func FormatCurrency(v *float64) string {
	if v == nil {
		return "-"
	}

	s := fmt.Sprintf("%.2f", math.Abs(*v))
	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	var b strings.Builder
	if *v < 0 {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	return "R$ " + b.String() + "," + decPart
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Package currency parses and formats Indonesian Rupiah amounts.
//
// The parsing grammar follows Indonesian receipt conventions: `.` is the
// thousands separator and `,` is the decimal separator (e.g. "1.234,56").
// This package is the only place in the codebase that reasons about
// currency strings; the settlement engines only ever see numeric amounts.
package currency

import (
	"math"
	"strconv"
	"strings"
)

// ParseRupiah converts an Indonesian currency string into a number.
// Thousands dots are removed and the decimal comma becomes a dot.
// Currency symbols and whitespace are tolerated. An empty or
// unparsable value yields 0.
func ParseRupiah(value string) float64 {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "Rp")
	cleaned = strings.TrimPrefix(cleaned, "IDR")
	cleaned = strings.TrimSpace(cleaned)

	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) {
		return 0
	}
	return n
}

// FormatRupiah renders an amount for display: rounded to the nearest
// whole rupiah, thousands grouped with dots, prefixed with "Rp".
// NaN and negative amounts render as the canonical zero "Rp0".
func FormatRupiah(amount float64) string {
	if math.IsNaN(amount) || amount < 0 {
		return "Rp0"
	}

	digits := strconv.FormatInt(int64(math.Round(amount)), 10)

	var b strings.Builder
	b.WriteString("Rp")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}

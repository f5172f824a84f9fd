// Package money converts integer minor-currency amounts to display values.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCents renders an amount in cents as an en-US currency string,
// e.g. 15000 -> "$150.00", 123456 -> "$1,234.56".
func FormatCents(cents int64) string {
	return printer.Sprintf("$%.2f", float64(cents)/100)
}

// CentsToUnits converts cents to major units for numeric form fields.
func CentsToUnits(cents int64) float64 {
	return float64(cents) / 100
}

// ParseCurrency is the inverse of FormatCents for non-negative amounts.
func ParseCurrency(s string) (int64, error) {
	raw := strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(s), "$"), ",", "")
	if raw == "" {
		return 0, fmt.Errorf("parse currency %q: empty amount", s)
	}
	whole, frac, _ := strings.Cut(raw, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, fmt.Errorf("parse currency %q: bad amount", s)
	}
	cents := units * 100
	if frac != "" {
		if len(frac) != 2 {
			return 0, fmt.Errorf("parse currency %q: want two decimal places", s)
		}
		c, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse currency %q: bad cents", s)
		}
		cents += c
	}
	return cents, nil
}

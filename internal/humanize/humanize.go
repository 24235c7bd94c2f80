// Package humanize renders integer-cents amounts for reports. Amounts stay
// integers all the way to the formatting boundary; no floating currency.
package humanize

import (
	"fmt"
	"strings"
)

// AsMoney renders cents as dollars with thousand separators, e.g. 1234567
// -> "$12,345.67". With wholeDollars the cents are dropped and anything
// above 50 cents rounds the dollar up, matching the published CTCAC tables.
func AsMoney(cents int64, wholeDollars bool) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	frac := cents % 100
	if wholeDollars && frac > 50 {
		cents += 100
	}
	result := sign + "$" + groupThousands(cents/100)
	if !wholeDollars {
		result += fmt.Sprintf(".%02d", frac)
	}
	return result
}

// AsPercentage renders a x100-scaled percentage, e.g. 6000 -> "60.00%".
func AsPercentage(scaled int64) string {
	sign := ""
	if scaled < 0 {
		sign, scaled = "-", -scaled
	}
	return fmt.Sprintf("%s%s.%02d%%",
		sign, groupThousands(scaled/100), scaled%100)
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	return digits + "," + strings.Join(groups, ",")
}

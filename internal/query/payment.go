package query

import (
	"math"
	"strconv"
	"strings"
)

var (
	positiveInf = math.Inf(1)
	negativeInf = math.Inf(-1)
)

// ParsePayment extracts the numeric amount from a free-text payment string
// by stripping everything that is not a digit, so "₹300/day" parses to 300.
// Strings with no digits at all parse to NaN; the price sorts rank those
// after every priced entry.
func ParsePayment(payment string) float64 {
	var digits strings.Builder
	for _, r := range payment {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// paymentRank parses a payment for sorting, substituting nan for
// unparseable strings. NaN must never reach a comparator: it compares
// false against everything, which breaks the ordering of the priced
// entries as well.
func paymentRank(payment string, nan float64) float64 {
	v := ParsePayment(payment)
	if math.IsNaN(v) {
		return nan
	}
	return v
}

// Package currency renders monetary amounts for display. Formatting is a
// pure function of amount and currency; arithmetic never happens here.
package currency

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	// INR amounts use Indian digit grouping (1,50,000.00).
	inrPrinter = message.NewPrinter(language.MustParse("en-IN"))
	bhdPrinter = message.NewPrinter(language.English)
)

// Format renders a decimal-string amount with the currency's symbol,
// grouping and fraction convention. INR shows two decimals, BHD three
// (fils precision). Unparsable amounts render as zero, consistent with
// the billing engine's lenient numeric policy.
func Format(code, amount string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	switch code {
	case "BHD":
		return bhdPrinter.Sprintf("BD %v", number.Decimal(v,
			number.MinFractionDigits(3), number.MaxFractionDigits(3)))
	default:
		return inrPrinter.Sprintf("₹%v", number.Decimal(v,
			number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
}

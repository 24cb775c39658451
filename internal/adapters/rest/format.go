package rest

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Цены выводятся в сингапурских долларах в формате en-SG.
var (
	priceLocale  = language.MustParse("en-SG")
	priceUnit    = currency.MustParseISO("SGD")
	labelCaser   = cases.Title(language.English)
	pricePrinter = message.NewPrinter(priceLocale)
)

// formatPrice - "SGD 1,250,000" или "SGD 29.90" для сумм с центами.
func formatPrice(amount float64) string {
	if amount == math.Trunc(amount) {
		return priceUnit.String() + " " + pricePrinter.Sprintf("%.0f", amount)
	}
	return priceUnit.String() + " " + pricePrinter.Sprintf("%.2f", amount)
}

// formatCount - целое с разделителями тысяч.
func formatCount(n int) string {
	return pricePrinter.Sprintf("%d", n)
}

// amenityLabel - "swimming_pool" -> "Swimming Pool".
func amenityLabel(raw string) string {
	return labelCaser.String(strings.NewReplacer("_", " ", "-", " ").Replace(raw))
}

func amenityLabels(raw []string) []string {
	out := make([]string, len(raw))
	for i, a := range raw {
		out[i] = amenityLabel(a)
	}
	return out
}

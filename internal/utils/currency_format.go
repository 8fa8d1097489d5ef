package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a balance the way the API returns it: two fraction digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// DisplayAmount renders amount with the symbol and grouping of currencyCode,
// e.g. "₹1,234.50". Unknown codes fall back to FormatAmount followed by the code.
func DisplayAmount(amount decimal.Decimal, currencyCode string) string {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		return FormatAmount(amount) + " " + currencyCode
	}
	minor := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}

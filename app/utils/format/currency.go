package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var brl = accounting.Accounting{Symbol: "R$ ", Precision: 2, Thousand: ".", Decimal: ","}

// BRL renders an amount the way prices are shown in the store, e.g. "R$ 1.200,00".
func BRL(amount decimal.Decimal) string {
	return brl.FormatMoneyDecimal(amount)
}

package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

func CalculateDiscount(baseTotal, discountPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(discountPercent).Div(hundred)
}

// DiscountPercent is the rounded percentage of original taken off by price.
// It is 0 unless original is set and greater than price.
func DiscountPercent(price decimal.Decimal, original *decimal.Decimal) int {
	if original == nil || !original.GreaterThan(price) || !original.IsPositive() {
		return 0
	}
	return int(original.Sub(price).Div(*original).Mul(hundred).Round(0).IntPart())
}

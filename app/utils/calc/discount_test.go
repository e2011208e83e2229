package calc

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateDiscount(t *testing.T) {
	got := CalculateDiscount(decimal.NewFromInt(250), decimal.NewFromInt(10))
	if !got.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("CalculateDiscount = %s", got)
	}
}

func TestDiscountPercent(t *testing.T) {
	d := func(s string) *decimal.Decimal {
		v := decimal.RequireFromString(s)
		return &v
	}
	cases := []struct {
		price    string
		original *decimal.Decimal
		want     int
	}{
		{"100", nil, 0},
		{"100", d("100"), 0},
		{"120", d("100"), 0},
		{"75", d("100"), 25},
		{"199.90", d("299.90"), 33},
		{"0", d("0"), 0},
	}
	for _, c := range cases {
		if got := DiscountPercent(decimal.RequireFromString(c.price), c.original); got != c.want {
			t.Errorf("DiscountPercent(%s, %v) = %d, want %d", c.price, c.original, got, c.want)
		}
	}
}

package search

import (
	"errors"
	"math"
	"net/url"
	"strings"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/utils/apperror"
	"github.com/creasty/defaults"
	"github.com/gorilla/schema"
	"github.com/shopspring/decimal"
)

const (
	DefaultLimit = 12
	MaxLimit     = 100
)

// SortFields maps accepted sortBy values to product columns.
var SortFields = map[string]string{
	"createdAt":     "products.created_at",
	"created_at":    "products.created_at",
	"updatedAt":     "products.updated_at",
	"name":          "products.name",
	"price":         "products.price",
	"stockQuantity": "products.stock_quantity",
}

// productParams is the raw query string shape of GET /api/products.
type productParams struct {
	Q             string `schema:"q" json:"q"`
	Category      string `schema:"category" json:"category"`
	MaterialType  string `schema:"materialType" json:"materialType"`
	InStock       string `schema:"inStock" json:"inStock"`
	IsFeatured    string `schema:"isFeatured" json:"isFeatured"`
	IsRecommended string `schema:"isRecommended" json:"isRecommended"`
	PriceMin      string `schema:"priceMin" json:"priceMin"`
	PriceMax      string `schema:"priceMax" json:"priceMax"`
	SortBy        string `schema:"sortBy" json:"sortBy" default:"createdAt" validate:"oneof=createdAt created_at updatedAt name price stockQuantity"`
	SortOrder     string `schema:"sortOrder" json:"sortOrder" default:"desc" validate:"oneof=asc desc"`
	Page          int    `schema:"page" json:"page" default:"1" validate:"min=1"`
	Limit         int    `schema:"limit" json:"limit" default:"12" validate:"min=1"`
}

// ProductFilter is the validated, immutable set of list options. Pointer
// fields are nil when the bound is not set.
type ProductFilter struct {
	Query         string
	CategorySlug  string
	MaterialType  models.MaterialType
	InStockOnly   bool
	FeaturedOnly  bool
	RecommendOnly bool
	PriceMin      *decimal.Decimal
	PriceMax      *decimal.Decimal
	SortBy        string
	SortDesc      bool
	Page          int
	Limit         int
}

var (
	decoder  = newDecoder()
	validate = helpers.NewValidator()
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// DefaultProductFilter is the unfiltered first page, newest first.
func DefaultProductFilter() ProductFilter {
	return ProductFilter{SortBy: "createdAt", SortDesc: true, Page: 1, Limit: DefaultLimit}
}

// ParseProductFilter turns query values into a ProductFilter. Malformed
// numbers and unknown sort keys are rejected rather than coerced.
func ParseProductFilter(values url.Values) (ProductFilter, error) {
	var p productParams
	if err := decoder.Decode(&p, values); err != nil {
		return ProductFilter{}, conversionError(err)
	}
	if err := defaults.Set(&p); err != nil {
		return ProductFilter{}, apperror.Internal(err)
	}
	if err := helpers.ValidateStruct(validate, p); err != nil {
		return ProductFilter{}, err
	}

	f := ProductFilter{
		Query:         strings.TrimSpace(p.Q),
		CategorySlug:  strings.TrimSpace(p.Category),
		MaterialType:  models.MaterialType(strings.TrimSpace(p.MaterialType)),
		InStockOnly:   p.InStock == "true",
		FeaturedOnly:  p.IsFeatured == "true",
		RecommendOnly: p.IsRecommended == "true",
		SortBy:        p.SortBy,
		SortDesc:      p.SortOrder == "desc",
		Page:          p.Page,
		Limit:         p.Limit,
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}

	var err error
	if f.PriceMin, err = parsePrice("priceMin", p.PriceMin); err != nil {
		return ProductFilter{}, err
	}
	if f.PriceMax, err = parsePrice("priceMax", p.PriceMax); err != nil {
		return ProductFilter{}, err
	}
	return f, nil
}

// Offset saturates at math.MaxInt so a huge page still lands past the end.
func (f ProductFilter) Offset() int {
	if f.Page <= 1 || f.Limit <= 0 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}

func parsePrice(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperror.ValidationFields("Invalid query parameters", map[string]string{
			field: field + " must be a number.",
		})
	}
	return &d, nil
}

func conversionError(err error) error {
	fields := make(map[string]string)
	var multi schema.MultiError
	if errors.As(err, &multi) {
		for key := range multi {
			fields[key] = key + " must be a number."
		}
	} else {
		fields["query"] = err.Error()
	}
	return apperror.ValidationFields("Invalid query parameters", fields)
}

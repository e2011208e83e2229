package search

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	likeEscape = "!"

	// LikeEscapeClause must follow every LIKE built from ContainsPattern.
	LikeEscapeClause = "ESCAPE '" + likeEscape + "'"
)

// ProductQuery describes one bounded product fetch independent of the store
// that runs it. The count query uses Predicate alone.
type ProductQuery struct {
	Predicate sq.Sqlizer
	OrderBy   []string
	Offset    int
	Limit     int
}

// BuildProductQuery composes the WHERE predicate, ordering and window for f.
func BuildProductQuery(f ProductFilter) ProductQuery {
	where := sq.And{}

	if f.Query != "" {
		pattern := ContainsPattern(f.Query)
		where = append(where, sq.Or{
			sq.Expr("LOWER(products.name) LIKE ? "+LikeEscapeClause, pattern),
			sq.Expr("LOWER(products.description) LIKE ? "+LikeEscapeClause, pattern),
		})
	}
	if f.CategorySlug != "" {
		where = append(where, sq.Expr("products.category_id IN (SELECT categories.id FROM categories WHERE categories.slug = ?)", f.CategorySlug))
	}
	if f.MaterialType != "" {
		where = append(where, sq.Eq{"products.material_type": string(f.MaterialType)})
	}
	if f.InStockOnly {
		where = append(where, sq.Eq{"products.in_stock": true})
	}
	if f.FeaturedOnly {
		where = append(where, sq.Eq{"products.is_featured": true})
	}
	if f.RecommendOnly {
		where = append(where, sq.Eq{"products.is_recommended": true})
	}
	if f.PriceMin != nil {
		where = append(where, sq.GtOrEq{"products.price": *f.PriceMin})
	}
	if f.PriceMax != nil {
		where = append(where, sq.LtOrEq{"products.price": *f.PriceMax})
	}

	column, ok := SortFields[f.SortBy]
	if !ok {
		column = SortFields["createdAt"]
	}
	direction := "ASC"
	if f.SortDesc {
		direction = "DESC"
	}

	return ProductQuery{
		Predicate: where,
		OrderBy:   []string{fmt.Sprintf("%s %s", column, direction), "products.id ASC"},
		Offset:    f.Offset(),
		Limit:     f.Limit,
	}
}

// Pages is ceil(total/limit).
func Pages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ContainsPattern lower-cases s and wraps it for a case-insensitive substring
// LIKE, escaping the wildcard characters it contains.
func ContainsPattern(s string) string {
	return "%" + escapeLike(strings.ToLower(s)) + "%"
}

func escapeLike(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(s)
}

package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/repositories"
	"golang.org/x/sync/errgroup"
)

const (
	MinSuggestionQuery = 2
	MaxSuggestions     = 8

	productSuggestions  = 5
	categorySuggestions = 3
)

const (
	SuggestionProduct  = "product"
	SuggestionCategory = "category"
	SuggestionMaterial = "material"
)

type Suggestion struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Type  string `json:"type"`
	Count *int64 `json:"count,omitempty"`
}

type SuggestionService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	store        StoreOptions
}

func NewSuggestionService(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, store StoreOptions) *SuggestionService {
	return &SuggestionService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		store:        store,
	}
}

// Suggest returns at most MaxSuggestions entries for the partial query:
// products first, then categories, then materials. Lookup failures are logged
// and yield an empty list.
func (s *SuggestionService) Suggest(ctx context.Context, query string) []Suggestion {
	query = strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(query) < MinSuggestionQuery {
		return []Suggestion{}
	}

	var products, categories, materials []Suggestion
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.productSuggestions(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.categorySuggestions(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		materials, err = s.materialSuggestions(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("Suggest: lookup for %q failed: %v", query, err)
		return []Suggestion{}
	}

	out := make([]Suggestion, 0, MaxSuggestions)
	out = append(out, products...)
	out = append(out, categories...)
	out = append(out, materials...)
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

func (s *SuggestionService) productSuggestions(ctx context.Context, query string) ([]Suggestion, error) {
	var products []models.Product
	err := s.store.read(ctx, "Suggest", func(ctx context.Context) error {
		var err error
		products, err = s.productRepo.SearchInStock(ctx, query, productSuggestions)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("products: %w", err)
	}

	out := make([]Suggestion, 0, len(products))
	for _, p := range products {
		out = append(out, Suggestion{ID: "product-" + p.ID, Text: p.Name, Type: SuggestionProduct})
	}
	return out, nil
}

func (s *SuggestionService) categorySuggestions(ctx context.Context, query string) ([]Suggestion, error) {
	var categories []models.Category
	err := s.store.read(ctx, "Suggest", func(ctx context.Context) error {
		var err error
		categories, err = s.categoryRepo.SearchByName(ctx, query, categorySuggestions)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}

	out := make([]Suggestion, 0, len(categories))
	for _, c := range categories {
		count := c.ProductCount
		out = append(out, Suggestion{ID: fmt.Sprintf("category-%d", c.ID), Text: c.Name, Type: SuggestionCategory, Count: &count})
	}
	return out, nil
}

// materialSuggestions matches short labels ignoring case and accents and keeps only
// materials with products in stock.
func (s *SuggestionService) materialSuggestions(ctx context.Context, query string) ([]Suggestion, error) {
	folded := helpers.FoldText(query)
	var matched []models.MaterialType
	for _, m := range models.Materials {
		if strings.Contains(helpers.FoldText(m.ShortLabel()), folded) {
			matched = append(matched, m)
		}
	}
	if len(matched) == 0 {
		return nil, nil
	}

	var counts map[models.MaterialType]int64
	err := s.store.read(ctx, "Suggest", func(ctx context.Context) error {
		var err error
		counts, err = s.productRepo.CountInStockByMaterial(ctx, matched)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("materials: %w", err)
	}

	var out []Suggestion
	for _, m := range matched {
		count := counts[m]
		if count == 0 {
			continue
		}
		out = append(out, Suggestion{ID: "material-" + string(m), Text: m.ShortLabel(), Type: SuggestionMaterial, Count: &count})
	}
	return out, nil
}

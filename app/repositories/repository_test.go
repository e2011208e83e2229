package repositories

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/Rakhulsr/go-joias/app/db/testdb"
	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/search"
	"github.com/Rakhulsr/go-joias/app/utils/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	products   ProductRepositoryImpl
	categories CategoryRepositoryImpl
	aneis      models.Category
	colares    models.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)
	f := &fixture{db: db, products: NewProductRepository(db), categories: NewCategoryRepository(db)}

	f.aneis = models.Category{Name: "Anéis", Slug: "aneis", SortOrder: 1, IsActive: true}
	f.colares = models.Category{Name: "Colares", Slug: "colares", SortOrder: 0, IsActive: true}
	for _, c := range []*models.Category{&f.aneis, &f.colares} {
		if err := f.categories.Create(context.Background(), c); err != nil {
			t.Fatalf("create category: %v", err)
		}
	}
	return f
}

func (f *fixture) addProduct(t *testing.T, name string, price string, material models.MaterialType, category models.Category, inStock bool) models.Product {
	t.Helper()
	p := models.Product{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   "Joia " + name,
		Price:         decimal.RequireFromString(price),
		MaterialType:  material,
		CategoryID:    category.ID,
		InStock:       inStock,
		StockQuantity: 3,
		Slug:          uuid.NewString(),
		Images: []models.ProductImage{
			{ImageURL: "b.jpg", SortOrder: 1},
			{ImageURL: "a.jpg", IsPrimary: true, SortOrder: 0},
		},
		Sizes: []models.ProductSize{{SizeName: "16", IsAvailable: true}},
	}
	if err := f.products.Create(context.Background(), &p); err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return p
}

func queryFor(t *testing.T, raw string) search.ProductQuery {
	t.Helper()
	values, _ := url.ParseQuery(raw)
	filter, err := search.ParseProductFilter(values)
	if err != nil {
		t.Fatalf("ParseProductFilter(%q): %v", raw, err)
	}
	return search.BuildProductQuery(filter)
}

func TestFindProductsMatchesCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "Anel de Ouro", "1200", models.MaterialOuro18K, f.aneis, true)
	f.addProduct(t, "Anel de Prata", "150", models.MaterialPrata925, f.aneis, true)
	f.addProduct(t, "Colar de Prata", "90", models.MaterialPrata925, f.colares, true)
	f.addProduct(t, "Colar Esgotado", "80", models.MaterialPrata925, f.colares, false)

	cases := map[string]int{
		"":                          4,
		"q=ANEL":                    2,
		"q=joia%20colar":            2,
		"category=aneis":            2,
		"materialType=PRATA_925":    3,
		"materialType=PLATINA":      0,
		"inStock=true":              3,
		"inStock=false":             4,
		"priceMin=100":              2,
		"priceMax=100":              2,
		"priceMin=100&priceMax=200": 1,
		"priceMin=500&priceMax=100": 0,
		"materialType=PRATA_925&inStock=true&category=colares": 1,
	}
	for raw, want := range cases {
		q := queryFor(t, raw)
		total, err := f.products.CountProducts(ctx, q)
		if err != nil {
			t.Fatalf("%q: count: %v", raw, err)
		}
		products, err := f.products.FindProducts(ctx, q)
		if err != nil {
			t.Fatalf("%q: find: %v", raw, err)
		}
		if int(total) != want || len(products) != want {
			t.Errorf("%q: total=%d len=%d, want %d", raw, total, len(products), want)
		}
	}
}

func TestFindProductsSortsAndPaginates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "C", "300", models.MaterialPrata925, f.aneis, true)
	f.addProduct(t, "A", "100", models.MaterialPrata925, f.aneis, true)
	f.addProduct(t, "B", "200", models.MaterialPrata925, f.aneis, true)

	page1, err := f.products.FindProducts(ctx, queryFor(t, "sortBy=price&sortOrder=asc&limit=2&page=1"))
	if err != nil {
		t.Fatal(err)
	}
	if len(page1) != 2 || page1[0].Name != "A" || page1[1].Name != "B" {
		t.Fatalf("page1 = %v", names(page1))
	}

	page2, err := f.products.FindProducts(ctx, queryFor(t, "sortBy=price&sortOrder=asc&limit=2&page=2"))
	if err != nil {
		t.Fatal(err)
	}
	if len(page2) != 1 || page2[0].Name != "C" {
		t.Fatalf("page2 = %v", names(page2))
	}

	beyond, err := f.products.FindProducts(ctx, queryFor(t, "limit=2&page=9"))
	if err != nil {
		t.Fatal(err)
	}
	if len(beyond) != 0 {
		t.Fatalf("page beyond last should be empty, got %v", names(beyond))
	}

	huge, err := f.products.FindProducts(ctx, queryFor(t, "limit=100&page=92233720368547760"))
	if err != nil {
		t.Fatal(err)
	}
	if len(huge) != 0 {
		t.Fatalf("huge page should be empty, got %v", names(huge))
	}
}

func TestFindProductsEagerLoadsInOrder(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "Anel", "10", models.MaterialOuro18K, f.aneis, true)

	products, err := f.products.FindProducts(context.Background(), queryFor(t, "category=aneis"))
	if err != nil {
		t.Fatal(err)
	}
	p := products[0]
	if p.Category.Slug != "aneis" {
		t.Fatalf("category not loaded: %+v", p.Category)
	}
	if len(p.Images) != 2 || p.Images[0].ImageURL != "a.jpg" || p.Images[1].ImageURL != "b.jpg" {
		t.Fatalf("images not ordered by sortOrder: %+v", p.Images)
	}
	if len(p.Sizes) != 1 {
		t.Fatalf("sizes = %+v", p.Sizes)
	}
}

func TestReplaceProductSwapsCollections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Anel", "10", models.MaterialOuro18K, f.aneis, true)

	p.Name = "Anel Novo"
	p.Images = []models.ProductImage{{ImageURL: "c.jpg", IsPrimary: true}}
	p.Sizes = nil
	if err := f.products.ReplaceProduct(ctx, &p); err != nil {
		t.Fatalf("ReplaceProduct: %v", err)
	}

	got, err := f.products.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Anel Novo" || len(got.Images) != 1 || got.Images[0].ImageURL != "c.jpg" || len(got.Sizes) != 0 {
		t.Fatalf("after replace: %+v", got)
	}

	var imageRows int64
	f.db.Model(&models.ProductImage{}).Where("product_id = ?", p.ID).Count(&imageRows)
	if imageRows != 1 {
		t.Fatalf("image rows = %d, want 1", imageRows)
	}
}

func assertOriginalCollections(t *testing.T, f *fixture, id string) {
	t.Helper()
	got, err := f.products.GetByID(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Anel" {
		t.Fatalf("name = %q, want the original", got.Name)
	}
	if len(got.Images) != 2 || got.Images[0].ImageURL != "a.jpg" || got.Images[1].ImageURL != "b.jpg" {
		t.Fatalf("images changed: %+v", got.Images)
	}
	if len(got.Sizes) != 1 || got.Sizes[0].SizeName != "16" {
		t.Fatalf("sizes changed: %+v", got.Sizes)
	}
}

func TestReplaceProductConflictKeepsCollections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Anel", "10", models.MaterialOuro18K, f.aneis, true)
	other := f.addProduct(t, "Colar", "20", models.MaterialOuro18K, f.colares, true)

	p.Name = "Anel Novo"
	p.Slug = other.Slug
	p.Images = []models.ProductImage{{ImageURL: "c.jpg", IsPrimary: true}}
	p.Sizes = []models.ProductSize{{SizeName: "18", IsAvailable: true}}
	if err := f.products.ReplaceProduct(ctx, &p); !apperror.Is(err, apperror.KindConflict) {
		t.Fatalf("want conflict, got %v", err)
	}

	assertOriginalCollections(t, f, p.ID)
}

func TestReplaceProductFailureAfterImagesRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Anel", "10", models.MaterialOuro18K, f.aneis, true)

	err := f.db.Callback().Create().Before("gorm:create").Register("test:fail_sizes", func(tx *gorm.DB) {
		if tx.Statement.Table == "product_sizes" {
			_ = tx.AddError(errors.New("sizes insert failed"))
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	p.Name = "Anel Novo"
	p.Images = []models.ProductImage{{ImageURL: "c.jpg", IsPrimary: true}}
	p.Sizes = []models.ProductSize{{SizeName: "18", IsAvailable: true}}
	if err := f.products.ReplaceProduct(ctx, &p); err == nil {
		t.Fatal("ReplaceProduct succeeded, want an error")
	}

	if err := f.db.Callback().Create().Remove("test:fail_sizes"); err != nil {
		t.Fatal(err)
	}
	assertOriginalCollections(t, f, p.ID)
}

func TestReplaceMissingProductIsNotFound(t *testing.T) {
	f := newFixture(t)
	p := models.Product{ID: uuid.NewString(), Name: "x", Slug: "x", CategoryID: f.aneis.ID, MaterialType: models.MaterialOuro18K}
	err := f.products.ReplaceProduct(context.Background(), &p)
	if !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestDeleteProductRemovesChildren(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Anel", "10", models.MaterialOuro18K, f.aneis, true)

	if err := f.products.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	var images, sizes int64
	f.db.Model(&models.ProductImage{}).Where("product_id = ?", p.ID).Count(&images)
	f.db.Model(&models.ProductSize{}).Where("product_id = ?", p.ID).Count(&sizes)
	if images != 0 || sizes != 0 {
		t.Fatalf("orphans left: images=%d sizes=%d", images, sizes)
	}

	if _, err := f.products.GetByID(ctx, p.ID); !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if err := f.products.DeleteProduct(ctx, p.ID); !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("second delete: want not found, got %v", err)
	}
}

func TestDuplicateSlugIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Anel", "10", models.MaterialOuro18K, f.aneis, true)

	dup := models.Product{ID: uuid.NewString(), Name: "Anel 2", Slug: p.Slug, Price: decimal.NewFromInt(5), CategoryID: f.aneis.ID, MaterialType: models.MaterialOuro18K}
	if err := f.products.Create(ctx, &dup); !apperror.Is(err, apperror.KindConflict) {
		t.Fatalf("want conflict, got %v", err)
	}

	cat := models.Category{Name: "Anéis de novo", Slug: "aneis", IsActive: true}
	if err := f.categories.Create(ctx, &cat); !apperror.Is(err, apperror.KindConflict) {
		t.Fatalf("want category conflict, got %v", err)
	}
}

func TestSuggestionLookups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "Anel de Prata", "10", models.MaterialPrata925, f.aneis, true)
	f.addProduct(t, "Anel Esgotado", "10", models.MaterialPrata925, f.aneis, false)
	f.addProduct(t, "Colar de Ouro", "10", models.MaterialOuro18K, f.colares, true)

	products, err := f.products.SearchInStock(ctx, "anel", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0].Name != "Anel de Prata" {
		t.Fatalf("SearchInStock = %v", names(products))
	}

	counts, err := f.products.CountInStockByMaterial(ctx, []models.MaterialType{models.MaterialPrata925, models.MaterialAcoInox})
	if err != nil {
		t.Fatal(err)
	}
	if counts[models.MaterialPrata925] != 1 || counts[models.MaterialAcoInox] != 0 {
		t.Fatalf("counts = %v", counts)
	}

	cats, err := f.categories.SearchByName(ctx, "col", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 1 || cats[0].Slug != "colares" || cats[0].ProductCount != 1 {
		t.Fatalf("SearchByName = %+v", cats)
	}
}

func TestSearchByNameIncludesInactiveCategories(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hidden := models.Category{Name: "Pulseiras", Slug: "pulseiras", IsActive: false}
	if err := f.categories.Create(ctx, &hidden); err != nil {
		t.Fatal(err)
	}

	cats, err := f.categories.SearchByName(ctx, "puls", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 1 || cats[0].Slug != "pulseiras" {
		t.Fatalf("SearchByName = %+v", cats)
	}
}

func TestGetActiveOrdersBySortOrderWithCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hidden := models.Category{Name: "Oculta", Slug: "oculta", IsActive: false}
	if err := f.categories.Create(ctx, &hidden); err != nil {
		t.Fatal(err)
	}
	f.addProduct(t, "Anel", "10", models.MaterialOuro18K, f.aneis, true)
	f.addProduct(t, "Anel 2", "10", models.MaterialOuro18K, f.aneis, false)

	cats, err := f.categories.GetActive(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 2 || cats[0].Slug != "colares" || cats[1].Slug != "aneis" {
		t.Fatalf("GetActive = %+v", cats)
	}
	if cats[1].ProductCount != 2 || cats[0].ProductCount != 0 {
		t.Fatalf("counts = %d %d", cats[0].ProductCount, cats[1].ProductCount)
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

package services

import (
	"context"
	"sync"
	"time"

	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/search"
	"github.com/Rakhulsr/go-joias/app/utils/apperror"
)

type callCounter struct {
	mu    sync.Mutex
	calls map[string]int
}

func (c *callCounter) hit(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = map[string]int{}
	}
	c.calls[name]++
	return c.calls[name]
}

func (c *callCounter) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[name]
}

func (c *callCounter) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.calls {
		n += v
	}
	return n
}

// fakeProducts fails the first failures[name] calls of each method with err.
type fakeProducts struct {
	callCounter
	products  []models.Product
	counts    map[models.MaterialType]int64
	failures  map[string]int
	err       error
	block     bool
	created   []*models.Product
	replaced  []*models.Product
	lastQuery search.ProductQuery
}

func (f *fakeProducts) fail(name string) error {
	n := f.hit(name)
	if f.err != nil && n <= f.failures[name] {
		return f.err
	}
	return nil
}

func (f *fakeProducts) FindProducts(ctx context.Context, q search.ProductQuery) ([]models.Product, error) {
	if err := f.fail("FindProducts"); err != nil {
		return nil, err
	}
	if f.block {
		<-ctx.Done()
		return nil, apperror.Unavailable(ctx.Err())
	}
	f.lastQuery = q
	return f.products, nil
}

func (f *fakeProducts) CountProducts(ctx context.Context, q search.ProductQuery) (int64, error) {
	if err := f.fail("CountProducts"); err != nil {
		return 0, err
	}
	return int64(len(f.products)), nil
}

func (f *fakeProducts) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if err := f.fail("GetByID"); err != nil {
		return nil, err
	}
	for _, p := range append(f.replaced, f.created...) {
		if p.ID == id {
			return p, nil
		}
	}
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, apperror.NotFound("Product not found")
}

func (f *fakeProducts) Create(ctx context.Context, product *models.Product) error {
	if err := f.fail("Create"); err != nil {
		return err
	}
	f.created = append(f.created, product)
	return nil
}

func (f *fakeProducts) ReplaceProduct(ctx context.Context, product *models.Product) error {
	if err := f.fail("ReplaceProduct"); err != nil {
		return err
	}
	f.replaced = append([]*models.Product{product}, f.replaced...)
	return nil
}

func (f *fakeProducts) DeleteProduct(ctx context.Context, id string) error {
	if err := f.fail("DeleteProduct"); err != nil {
		return err
	}
	return nil
}

func (f *fakeProducts) SearchInStock(ctx context.Context, keyword string, limit int) ([]models.Product, error) {
	if err := f.fail("SearchInStock"); err != nil {
		return nil, err
	}
	if len(f.products) > limit {
		return f.products[:limit], nil
	}
	return f.products, nil
}

func (f *fakeProducts) CountInStockByMaterial(ctx context.Context, materials []models.MaterialType) (map[models.MaterialType]int64, error) {
	if err := f.fail("CountInStockByMaterial"); err != nil {
		return nil, err
	}
	out := map[models.MaterialType]int64{}
	for _, m := range materials {
		out[m] = f.counts[m]
	}
	return out, nil
}

func (f *fakeProducts) ListForSitemap(ctx context.Context) ([]models.Product, error) {
	if err := f.fail("ListForSitemap"); err != nil {
		return nil, err
	}
	return f.products, nil
}

type fakeCategories struct {
	callCounter
	categories []models.Category
	err        error
}

func (f *fakeCategories) Create(ctx context.Context, category *models.Category) error {
	f.hit("Create")
	if f.err != nil {
		return f.err
	}
	category.ID = uint(len(f.categories) + 1)
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategories) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	f.hit("GetByID")
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, apperror.NotFound("Category not found")
}

func (f *fakeCategories) GetActive(ctx context.Context) ([]models.Category, error) {
	f.hit("GetActive")
	return f.categories, f.err
}

func (f *fakeCategories) SearchByName(ctx context.Context, keyword string, limit int) ([]models.Category, error) {
	f.hit("SearchByName")
	if f.err != nil {
		return nil, f.err
	}
	if len(f.categories) > limit {
		return f.categories[:limit], nil
	}
	return f.categories, nil
}

func (f *fakeCategories) GetAll(ctx context.Context) ([]models.Category, error) {
	f.hit("GetAll")
	return f.categories, f.err
}

func (f *fakeCategories) Ping(ctx context.Context) error {
	f.hit("Ping")
	return f.err
}

func testStore() StoreOptions {
	return StoreOptions{Timeout: time.Second, ReadRetries: 2, Backoff: time.Millisecond}
}

package services

import (
	"context"
	"fmt"
	"log"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/repositories"
	"github.com/Rakhulsr/go-joias/app/search"
	"github.com/Rakhulsr/go-joias/app/utils/apperror"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type CatalogService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	store        StoreOptions
}

func NewCatalogService(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, store StoreOptions) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		store:        store,
	}
}

// ProductPage is one window of a product listing and the size of the full
// result it was cut from.
type ProductPage struct {
	Products []models.Product
	Page     int
	Limit    int
	Total    int64
	Pages    int
}

// ListProducts fetches the requested page and the total match count in
// parallel using the same predicate.
func (s *CatalogService) ListProducts(ctx context.Context, filter search.ProductFilter) (*ProductPage, error) {
	q := search.BuildProductQuery(filter)

	var (
		products []models.Product
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.store.read(gctx, "ListProducts", func(ctx context.Context) error {
			var err error
			products, err = s.productRepo.FindProducts(ctx, q)
			return err
		})
	})
	g.Go(func() error {
		return s.store.read(gctx, "ListProducts", func(ctx context.Context) error {
			var err error
			total, err = s.productRepo.CountProducts(ctx, q)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ProductPage{
		Products: products,
		Page:     filter.Page,
		Limit:    filter.Limit,
		Total:    total,
		Pages:    search.Pages(total, filter.Limit),
	}, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product *models.Product
	err := s.store.read(ctx, "GetProduct", func(ctx context.Context) error {
		var err error
		product, err = s.productRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, payload ProductPayload) (*models.Product, error) {
	product, err := payload.toProduct()
	if err != nil {
		return nil, err
	}
	if product.Slug == "" {
		product.Slug = helpers.GenerateSlug(product.Name)
	}
	if err := s.requireCategory(ctx, product.CategoryID); err != nil {
		return nil, err
	}

	product.ID = uuid.New().String()
	if err := s.store.write(ctx, func(ctx context.Context) error {
		return s.productRepo.Create(ctx, product)
	}); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("CreateProduct: created product %s (%s)", product.ID, product.Slug)
	return s.GetProduct(ctx, product.ID)
}

// UpdateProduct replaces every field of the product, including its images and
// sizes. Omitted collections end up empty. The slug is kept when the payload
// leaves it blank.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, payload ProductPayload) (*models.Product, error) {
	product, err := payload.toProduct()
	if err != nil {
		return nil, err
	}

	existing, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Slug == "" {
		product.Slug = existing.Slug
	}
	if err := s.requireCategory(ctx, product.CategoryID); err != nil {
		return nil, err
	}

	product.ID = id
	if err := s.store.write(ctx, func(ctx context.Context) error {
		return s.productRepo.ReplaceProduct(ctx, product)
	}); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}

	log.Printf("UpdateProduct: replaced product %s with %d images and %d sizes", id, len(product.Images), len(product.Sizes))
	return s.GetProduct(ctx, id)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.write(ctx, func(ctx context.Context) error {
		return s.productRepo.DeleteProduct(ctx, id)
	}); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	log.Printf("DeleteProduct: deleted product %s", id)
	return nil
}

func (s *CatalogService) requireCategory(ctx context.Context, id uint) error {
	err := s.store.read(ctx, "requireCategory", func(ctx context.Context) error {
		_, err := s.categoryRepo.GetByID(ctx, id)
		return err
	})
	if apperror.Is(err, apperror.KindNotFound) {
		return apperror.ValidationFields("Invalid request", map[string]string{
			"categoryId": "categoryId does not match an existing category.",
		})
	}
	return err
}

// ListCategories returns the active categories in display order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.store.read(ctx, "ListCategories", func(ctx context.Context) error {
		var err error
		categories, err = s.categoryRepo.GetActive(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListAllCategories includes inactive categories, for the admin panel.
func (s *CatalogService) ListAllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.store.read(ctx, "ListAllCategories", func(ctx context.Context) error {
		var err error
		categories, err = s.categoryRepo.GetAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list all categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, payload CategoryPayload) (*models.Category, error) {
	category, err := payload.toCategory()
	if err != nil {
		return nil, err
	}
	if err := s.store.write(ctx, func(ctx context.Context) error {
		return s.categoryRepo.Create(ctx, category)
	}); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	log.Printf("CreateCategory: created category %d (%s)", category.ID, category.Slug)
	return category, nil
}

// SitemapData loads every category and the in-stock product slugs.
func (s *CatalogService) SitemapData(ctx context.Context) ([]models.Category, []models.Product, error) {
	var (
		categories []models.Category
		products   []models.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.store.read(gctx, "SitemapData", func(ctx context.Context) error {
			var err error
			categories, err = s.categoryRepo.GetAll(ctx)
			return err
		})
	})
	g.Go(func() error {
		return s.store.read(gctx, "SitemapData", func(ctx context.Context) error {
			var err error
			products, err = s.productRepo.ListForSitemap(ctx)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to load sitemap data: %w", err)
	}
	return categories, products, nil
}

// Ping reports whether the store answers within the store timeout.
func (s *CatalogService) Ping(ctx context.Context) error {
	return s.store.write(ctx, s.categoryRepo.Ping)
}

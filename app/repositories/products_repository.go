package repositories

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/search"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const productNotFound = "Product not found"

type ProductRepositoryImpl interface {
	FindProducts(ctx context.Context, q search.ProductQuery) ([]models.Product, error)
	CountProducts(ctx context.Context, q search.ProductQuery) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	ReplaceProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	SearchInStock(ctx context.Context, keyword string, limit int) ([]models.Product, error)
	CountInStockByMaterial(ctx context.Context, materials []models.MaterialType) (map[models.MaterialType]int64, error)
	ListForSitemap(ctx context.Context) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.sort_order ASC, product_images.id ASC")
		}).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_sizes.id ASC")
		})
}

func wherePredicate(db *gorm.DB, q search.ProductQuery) (*gorm.DB, error) {
	if q.Predicate == nil {
		return db, nil
	}
	sql, args, err := q.Predicate.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product predicate: %w", err)
	}
	return db.Where(sql, args...), nil
}

func (p *productRepository) FindProducts(ctx context.Context, q search.ProductQuery) ([]models.Product, error) {
	db, err := wherePredicate(p.db.WithContext(ctx).Model(&models.Product{}), q)
	if err != nil {
		return nil, err
	}
	for _, order := range q.OrderBy {
		db = db.Order(order)
	}

	products := []models.Product{}
	if err := withDetails(db).Offset(q.Offset).Limit(q.Limit).Find(&products).Error; err != nil {
		return nil, translateError(err, productNotFound)
	}
	return products, nil
}

func (p *productRepository) CountProducts(ctx context.Context, q search.ProductQuery) (int64, error) {
	db, err := wherePredicate(p.db.WithContext(ctx).Model(&models.Product{}), q)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, translateError(err, productNotFound)
	}
	return total, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return getProduct(withDetails(p.db.WithContext(ctx)), id)
}

func getProduct(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	if err := db.Where("products.id = ?", id).First(&product).Error; err != nil {
		return nil, translateError(err, productNotFound)
	}
	return &product, nil
}

// Create inserts the product together with its images and sizes.
func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Category").Create(product).Error
	})
	return translateError(err, productNotFound)
}

// ReplaceProduct overwrites every column of an existing product and swaps its
// images and sizes for the ones on product. Nothing changes if any step fails.
func (p *productRepository) ReplaceProduct(ctx context.Context, product *models.Product) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.Select("id", "created_at").Where("id = ?", product.ID).First(&existing).Error; err != nil {
			return err
		}
		product.CreatedAt = existing.CreatedAt

		if err := tx.Omit(clause.Associations).Save(product).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductSize{}).Error; err != nil {
			return err
		}

		for i := range product.Images {
			product.Images[i].ID = 0
			product.Images[i].ProductID = product.ID
		}
		for i := range product.Sizes {
			product.Sizes[i].ID = 0
			product.Sizes[i].ProductID = product.ID
		}
		if len(product.Images) > 0 {
			if err := tx.Create(&product.Images).Error; err != nil {
				return err
			}
		}
		if len(product.Sizes) > 0 {
			if err := tx.Create(&product.Sizes).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err, productNotFound)
}

// DeleteProduct removes the product and its images and sizes.
func (p *productRepository) DeleteProduct(ctx context.Context, id string) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductSize{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Product{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateError(err, productNotFound)
}

func (p *productRepository) SearchInStock(ctx context.Context, keyword string, limit int) ([]models.Product, error) {
	pattern := search.ContainsPattern(keyword)

	products := []models.Product{}
	err := p.db.WithContext(ctx).
		Select("id", "name").
		Where("in_stock = ?", true).
		Where("(LOWER(name) LIKE ? "+search.LikeEscapeClause+" OR LOWER(description) LIKE ? "+search.LikeEscapeClause+")", pattern, pattern).
		Order("created_at DESC").
		Order("id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, translateError(err, productNotFound)
	}
	return products, nil
}

type materialCount struct {
	MaterialType models.MaterialType
	Total        int64
}

func (p *productRepository) CountInStockByMaterial(ctx context.Context, materials []models.MaterialType) (map[models.MaterialType]int64, error) {
	counts := make(map[models.MaterialType]int64, len(materials))
	if len(materials) == 0 {
		return counts, nil
	}

	keys := make([]string, len(materials))
	for i, m := range materials {
		keys[i] = string(m)
	}

	var rows []materialCount
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("material_type, COUNT(*) AS total").
		Where("in_stock = ? AND material_type IN ?", true, keys).
		Group("material_type").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, productNotFound)
	}
	for _, row := range rows {
		counts[row.MaterialType] = row.Total
	}
	return counts, nil
}

func (p *productRepository) ListForSitemap(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Select("slug", "updated_at").
		Where("in_stock = ?", true).
		Order("updated_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, translateError(err, productNotFound)
	}
	return products, nil
}

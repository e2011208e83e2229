package repositories

import (
	"context"

	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/search"
	"github.com/Rakhulsr/go-joias/app/utils/apperror"
	"gorm.io/gorm"
)

const (
	categoryNotFound = "Category not found"

	productCountSelect = "categories.*, (SELECT COUNT(*) FROM products WHERE products.category_id = categories.id) AS product_count"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetActive(ctx context.Context) ([]models.Category, error)
	SearchByName(ctx context.Context, keyword string, limit int) ([]models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Ping(ctx context.Context) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return translateError(r.db.WithContext(ctx).Create(category).Error, categoryNotFound)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Select(productCountSelect).First(&category, "categories.id = ?", id).Error
	if err != nil {
		return nil, translateError(err, categoryNotFound)
	}
	return &category, nil
}

// GetActive returns visible categories by display rank, with product counts.
func (r *categoryRepository) GetActive(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.WithContext(ctx).
		Select(productCountSelect).
		Where("categories.is_active = ?", true).
		Order("categories.sort_order ASC").
		Order("categories.id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, translateError(err, categoryNotFound)
	}
	return categories, nil
}

func (r *categoryRepository) SearchByName(ctx context.Context, keyword string, limit int) ([]models.Category, error) {
	pattern := search.ContainsPattern(keyword)

	categories := []models.Category{}
	err := r.db.WithContext(ctx).
		Select(productCountSelect).
		Where("LOWER(categories.name) LIKE ? "+search.LikeEscapeClause, pattern).
		Order("categories.sort_order ASC").
		Order("categories.id ASC").
		Limit(limit).
		Find(&categories).Error
	if err != nil {
		return nil, translateError(err, categoryNotFound)
	}
	return categories, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Select(productCountSelect).
		Order("categories.sort_order ASC").
		Order("categories.id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, translateError(err, categoryNotFound)
	}
	return categories, nil
}

func (r *categoryRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return translateError(err, categoryNotFound)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperror.Unavailable(err)
	}
	return nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID              string           `gorm:"size:36;not null;primaryKey" json:"id"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	Description     string           `gorm:"type:text" json:"description"`
	Price           decimal.Decimal  `gorm:"type:decimal(10,2);not null;index" json:"price"`
	OriginalPrice   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"originalPrice,omitempty"`
	MaterialType    MaterialType     `gorm:"size:20;not null;index" json:"materialType"`
	CategoryID      uint             `gorm:"not null;index" json:"categoryId"`
	Category        Category         `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	InStock         bool             `gorm:"not null;index" json:"inStock"`
	StockQuantity   int              `gorm:"not null" json:"stockQuantity"`
	IsRecommended   bool             `gorm:"not null" json:"isRecommended"`
	IsFeatured      bool             `gorm:"not null" json:"isFeatured"`
	Slug            string           `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	MetaTitle       *string          `gorm:"size:255" json:"metaTitle,omitempty"`
	MetaDescription *string          `gorm:"type:text" json:"metaDescription,omitempty"`
	Images          []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Sizes           []ProductSize    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"sizes"`
	CreatedAt       time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// ProductImage is ordered by SortOrder; the first image is the primary one.
type ProductImage struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID string  `gorm:"size:36;not null;index" json:"productId"`
	ImageURL  string  `gorm:"size:1024;not null" json:"imageUrl"`
	AltText   *string `gorm:"size:255" json:"altText,omitempty"`
	IsPrimary bool    `gorm:"not null" json:"isPrimary"`
	SortOrder int     `gorm:"not null" json:"sortOrder"`
}

type ProductSize struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ProductID   string  `gorm:"size:36;not null;index" json:"productId"`
	SizeName    string  `gorm:"size:50;not null" json:"sizeName"`
	SizeValue   *string `gorm:"size:50" json:"sizeValue,omitempty"`
	IsAvailable bool    `gorm:"not null" json:"isAvailable"`
}

// SEOTitle falls back to the product name when no override is stored.
func (p Product) SEOTitle() string {
	if p.MetaTitle != nil && *p.MetaTitle != "" {
		return *p.MetaTitle
	}
	return p.Name
}

func (p Product) SEODescription() string {
	if p.MetaDescription != nil && *p.MetaDescription != "" {
		return *p.MetaDescription
	}
	return p.Description
}

func (p Product) PrimaryImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

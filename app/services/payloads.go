package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/utils/apperror"
	"github.com/creasty/defaults"
	"github.com/shopspring/decimal"
)

var validate = helpers.NewValidator()

// ProductPayload is the body of product create and full-replace requests.
// Numbers may arrive as JSON numbers or numeric strings.
type ProductPayload struct {
	Name            string           `json:"name" validate:"required,max=255"`
	Description     string           `json:"description"`
	Price           *decimal.Decimal `json:"price" validate:"required"`
	OriginalPrice   *decimal.Decimal `json:"originalPrice"`
	MaterialType    string           `json:"materialType" validate:"required,material"`
	CategoryID      json.Number      `json:"categoryId" validate:"required,numeric"`
	InStock         *bool            `json:"inStock" default:"true"`
	StockQuantity   json.Number      `json:"stockQuantity" validate:"omitempty,numeric"`
	IsRecommended   *bool            `json:"isRecommended" default:"false"`
	IsFeatured      *bool            `json:"isFeatured" default:"false"`
	Slug            string           `json:"slug" validate:"omitempty,max=255"`
	MetaTitle       *string          `json:"metaTitle"`
	MetaDescription *string          `json:"metaDescription"`
	Images          []ImagePayload   `json:"images" validate:"dive"`
	Sizes           []SizePayload    `json:"sizes" validate:"dive"`
}

type ImagePayload struct {
	ImageURL string  `json:"imageUrl" validate:"required"`
	AltText  *string `json:"altText"`
}

type SizePayload struct {
	SizeName    string  `json:"sizeName" validate:"required"`
	SizeValue   *string `json:"sizeValue"`
	IsAvailable *bool   `json:"isAvailable" default:"true"`
}

type CategoryPayload struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Slug        string      `json:"slug" validate:"omitempty,max=100"`
	Description *string     `json:"description"`
	Icon        *string     `json:"icon"`
	SortOrder   json.Number `json:"sortOrder" validate:"omitempty,numeric"`
	IsActive    *bool       `json:"isActive" default:"true"`
}

// toProduct validates p and builds the product row it describes. The id and
// slug are left for the caller.
func (p ProductPayload) toProduct() (*models.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := defaults.Set(&p); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := helpers.ValidateStruct(validate, p); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	categoryID, err := strconv.ParseUint(p.CategoryID.String(), 10, 64)
	if err != nil || categoryID == 0 {
		fields["categoryId"] = "categoryId must be a positive integer."
	}
	if p.Price.IsNegative() {
		fields["price"] = "price must be zero or greater."
	}
	if p.OriginalPrice != nil && p.OriginalPrice.IsNegative() {
		fields["originalPrice"] = "originalPrice must be zero or greater."
	}
	stock := 0
	if p.StockQuantity != "" {
		stock, err = strconv.Atoi(p.StockQuantity.String())
		if err != nil || stock < 0 {
			fields["stockQuantity"] = "stockQuantity must be a whole number of at least 0."
		}
	}
	if len(fields) > 0 {
		return nil, apperror.ValidationFields("Invalid request", fields)
	}

	product := &models.Product{
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price.Round(2),
		OriginalPrice:   p.OriginalPrice,
		MaterialType:    models.MaterialType(p.MaterialType),
		CategoryID:      uint(categoryID),
		InStock:         *p.InStock,
		StockQuantity:   stock,
		IsRecommended:   *p.IsRecommended,
		IsFeatured:      *p.IsFeatured,
		Slug:            strings.TrimSpace(p.Slug),
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		Images:          make([]models.ProductImage, 0, len(p.Images)),
		Sizes:           make([]models.ProductSize, 0, len(p.Sizes)),
	}

	for i, img := range p.Images {
		product.Images = append(product.Images, models.ProductImage{
			ImageURL:  img.ImageURL,
			AltText:   img.AltText,
			IsPrimary: i == 0,
			SortOrder: i,
		})
	}
	for _, size := range p.Sizes {
		if err := defaults.Set(&size); err != nil {
			return nil, apperror.Internal(err)
		}
		product.Sizes = append(product.Sizes, models.ProductSize{
			SizeName:    size.SizeName,
			SizeValue:   size.SizeValue,
			IsAvailable: *size.IsAvailable,
		})
	}
	return product, nil
}

func (p CategoryPayload) toCategory() (*models.Category, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := defaults.Set(&p); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := helpers.ValidateStruct(validate, p); err != nil {
		return nil, err
	}

	sortOrder := 0
	if p.SortOrder != "" {
		n, err := strconv.Atoi(p.SortOrder.String())
		if err != nil {
			return nil, apperror.ValidationFields("Invalid request", map[string]string{
				"sortOrder": "sortOrder must be a whole number.",
			})
		}
		sortOrder = n
	}

	slug := strings.TrimSpace(p.Slug)
	if slug == "" {
		slug = helpers.GenerateSlug(p.Name)
	}

	return &models.Category{
		Name:        p.Name,
		Slug:        slug,
		Description: p.Description,
		Icon:        p.Icon,
		SortOrder:   sortOrder,
		IsActive:    *p.IsActive,
	}, nil
}

package handlers

import (
	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/utils/calc"
	"github.com/Rakhulsr/go-joias/app/utils/format"
)

// ProductResponse is a product as the storefront renders it.
type ProductResponse struct {
	models.Product
	MetaTitle          string `json:"metaTitle"`
	MetaDescription    string `json:"metaDescription"`
	PriceLabel         string `json:"priceLabel"`
	OriginalPriceLabel string `json:"originalPriceLabel,omitempty"`
	DiscountPercent    int    `json:"discountPercent"`
}

func NewProductResponse(p models.Product) ProductResponse {
	resp := ProductResponse{
		Product:         p,
		MetaTitle:       p.SEOTitle(),
		MetaDescription: p.SEODescription(),
		PriceLabel:      format.BRL(p.Price),
		DiscountPercent: calc.DiscountPercent(p.Price, p.OriginalPrice),
	}
	if resp.Images == nil {
		resp.Images = []models.ProductImage{}
	}
	if resp.Sizes == nil {
		resp.Sizes = []models.ProductSize{}
	}
	if resp.DiscountPercent > 0 {
		resp.OriginalPriceLabel = format.BRL(*p.OriginalPrice)
	}
	return resp
}

func NewProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

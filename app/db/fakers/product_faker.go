package fakers

import (
	"fmt"
	"math/rand"

	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.BrazilianPortuguese)

var imagePaths = []string{
	"/images/products/joia-1.jpg",
	"/images/products/joia-2.jpg",
	"/images/products/joia-3.jpg",
}

// ringSizes are Brazilian ring sizes; other pieces get a single length.
var ringSizes = []string{"12", "14", "16", "18", "20"}

// ProductFaker builds an unsaved product in category, named after singular.
func ProductFaker(category *models.Category, singular string) *models.Product {
	name := fmt.Sprintf("%s %s", singular, title.String(faker.Word()))
	material := models.Materials[rand.Intn(len(models.Materials))]
	price := fakePrice()

	product := &models.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Description:   faker.Paragraph(),
		Price:         price,
		MaterialType:  material,
		CategoryID:    category.ID,
		InStock:       rand.Intn(5) > 0,
		StockQuantity: rand.Intn(20),
		IsRecommended: rand.Intn(4) == 0,
		IsFeatured:    rand.Intn(4) == 0,
		Slug:          slug.Make(name + "-" + uuid.NewString()[:6]),
	}
	if rand.Intn(3) == 0 {
		original := price.Mul(decimal.NewFromFloat(1.25)).Round(2)
		product.OriginalPrice = &original
	}

	numImages := rand.Intn(3) + 1
	for i := 0; i < numImages; i++ {
		alt := fmt.Sprintf("%s foto %d", name, i+1)
		product.Images = append(product.Images, models.ProductImage{
			ImageURL:  imagePaths[rand.Intn(len(imagePaths))],
			AltText:   &alt,
			IsPrimary: i == 0,
			SortOrder: i,
		})
	}

	if category.Slug == "aneis" {
		for _, size := range ringSizes {
			product.Sizes = append(product.Sizes, models.ProductSize{SizeName: size, IsAvailable: rand.Intn(4) > 0})
		}
	} else {
		length := fmt.Sprintf("%dcm", 40+rand.Intn(5)*5)
		product.Sizes = append(product.Sizes, models.ProductSize{SizeName: "Único", SizeValue: &length, IsAvailable: true})
	}

	return product
}

// fakePrice is between R$ 29,90 and R$ 2.999,90.
func fakePrice() decimal.Decimal {
	return decimal.NewFromInt(int64(rand.Intn(100)*30 + 29)).Add(decimal.RequireFromString("0.90"))
}

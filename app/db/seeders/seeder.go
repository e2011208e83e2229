package seeders

import (
	"log"

	"github.com/Rakhulsr/go-joias/app/db/fakers"
	"github.com/Rakhulsr/go-joias/app/models"
	"gorm.io/gorm"
)

const ProductsPerCategory = 6

// DBSeed creates the jewelry categories that are missing and a batch of
// random products for each one it created.
func DBSeed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, seed := range fakers.CategoryFakers() {
			category := seed.Category

			var existing int64
			if err := tx.Model(&models.Category{}).Where("slug = ?", category.Slug).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				log.Printf("DBSeed: category %s already present, skipping", category.Slug)
				continue
			}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}

			products := make([]*models.Product, 0, ProductsPerCategory)
			for i := 0; i < ProductsPerCategory; i++ {
				products = append(products, fakers.ProductFaker(&category, seed.Singular))
			}
			if err := tx.Omit("Category").Create(&products).Error; err != nil {
				return err
			}
			log.Printf("DBSeed: seeded category %s with %d products", category.Slug, len(products))
		}
		return nil
	})
}

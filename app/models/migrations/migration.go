package migrations

import (
	"github.com/Rakhulsr/go-joias/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductImage{}, &models.ProductSize{})
}

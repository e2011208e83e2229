package models

import (
	"time"
)

type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Slug         string    `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	Icon         *string   `gorm:"size:100" json:"icon,omitempty"`
	SortOrder    int       `gorm:"not null;index" json:"sortOrder"`
	IsActive     bool      `gorm:"not null;index" json:"isActive"`
	ProductCount int64     `gorm:"->;-:migration" json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

package catalog

import (
	"time"

	"catalog-app/internal/domain/reviews"
)

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"not null;uniqueIndex:idx_categories_slug" json:"slug"`
}

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"not null;uniqueIndex:idx_genres_slug" json:"slug"`
}

type Title struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Year        int    `gorm:"index"`
	Description string

	CategoryID *uint
	Category   *Category `gorm:"constraint:OnDelete:SET NULL;"`

	Genres []Genre `gorm:"many2many:title_genres;"`

	Reviews []reviews.Review `gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

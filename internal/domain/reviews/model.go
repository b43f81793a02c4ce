package reviews

import (
	"time"

	"catalog-app/internal/domain/users"
)

type Review struct {
	ID      uint `gorm:"primaryKey"`
	TitleID uint `gorm:"not null;index;uniqueIndex:idx_reviews_title_author,priority:1"`

	AuthorID uint        `gorm:"not null;uniqueIndex:idx_reviews_title_author,priority:2"`
	Author   *users.User `gorm:"foreignKey:AuthorID"`

	Text  string `gorm:"not null"`
	Score int    `gorm:"not null"`

	Comments []Comment `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`

	PubDate   time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time
}

type Comment struct {
	ID       uint `gorm:"primaryKey"`
	ReviewID uint `gorm:"not null;index"`

	AuthorID uint        `gorm:"not null"`
	Author   *users.User `gorm:"foreignKey:AuthorID"`

	Text string `gorm:"not null"`

	PubDate   time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time
}

package titles

import (
	"catalog-app/internal/domain/catalog"

	"gorm.io/gorm"
)

func titleQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&catalog.Title{}).
		Preload("Category").
		Preload("Genres").
		Preload("Reviews")
}

func filteredTitleQuery(db *gorm.DB, category, genre, year, name string) *gorm.DB {
	q := titleQuery(db)

	if category != "" {
		q = q.Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug = ?", category)
	}
	if genre != "" {
		q = q.Joins("JOIN title_genres ON title_genres.title_id = titles.id").
			Joins("JOIN genres ON genres.id = title_genres.genre_id").
			Where("genres.slug = ?", genre)
	}
	if year != "" {
		q = q.Where("titles.year = ?", year)
	}
	if name != "" {
		q = q.Where("titles.name LIKE ?", "%"+name+"%")
	}
	return q
}

package titles

import (
	"catalog-app/internal/domain/catalog"
	"catalog-app/internal/domain/reviews"
)

type GenreDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TitleDTO struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Year        int          `json:"year"`
	Rating      *int         `json:"rating"`
	Description string       `json:"description"`
	Category    *CategoryDTO `json:"category"`
	Genre       []GenreDTO   `json:"genre"`
}

// Rating is recomputed from the loaded review set on every read.
func toTitleDTO(t catalog.Title) TitleDTO {
	dto := TitleDTO{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Rating:      reviews.Rating(reviews.Scores(t.Reviews)),
		Description: t.Description,
		Genre:       make([]GenreDTO, 0, len(t.Genres)),
	}
	if t.Category != nil {
		dto.Category = &CategoryDTO{Name: t.Category.Name, Slug: t.Category.Slug}
	}
	for _, g := range t.Genres {
		dto.Genre = append(dto.Genre, GenreDTO{Name: g.Name, Slug: g.Slug})
	}
	return dto
}

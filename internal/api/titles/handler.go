package titles

import (
	"net/http"
	"time"

	"catalog-app/database"
	"catalog-app/internal/api/guard"
	"catalog-app/internal/api/pagination"
	"catalog-app/internal/domain/access"
	"catalog-app/internal/domain/catalog"
	"catalog-app/internal/domain/reviews"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/v1/titles/
func ListTitles(c *gin.Context) {
	q := filteredTitleQuery(
		database.DB,
		c.Query("category"),
		c.Query("genre"),
		c.Query("year"),
		c.Query("name"),
	).Order("titles.created_at DESC")

	rows := make([]catalog.Title, 0)
	env, err := pagination.Paginate(c, q, &rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load titles"})
		return
	}

	results := make([]TitleDTO, 0, len(rows))
	for _, t := range rows {
		results = append(results, toTitleDTO(t))
	}
	env.Results = results

	c.JSON(http.StatusOK, env)
}

// POST /api/v1/titles/  (admin only)
func CreateTitle(c *gin.Context) {
	if !guard.Require(c, access.ActionCreate, access.ResourceTitles, 0) {
		return
	}

	var input struct {
		Name        string   `json:"name" binding:"required"`
		Year        int      `json:"year" binding:"required"`
		Description string   `json:"description"`
		Category    string   `json:"category" binding:"required"`
		Genre       []string `json:"genre" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Year > time.Now().Year() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year cannot be in the future"})
		return
	}

	var category catalog.Category
	if err := database.DB.Where("slug = ?", input.Category).First(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category slug"})
		return
	}

	var genres []catalog.Genre
	if err := database.DB.Where("slug IN ?", input.Genre).Find(&genres).Error; err != nil || len(genres) != len(input.Genre) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown genre slug"})
		return
	}

	title := catalog.Title{
		Name:        input.Name,
		Year:        input.Year,
		Description: input.Description,
		CategoryID:  &category.ID,
		Category:    &category,
		Genres:      genres,
	}
	if err := database.DB.Create(&title).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create title", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toTitleDTO(title))
}

// GET /api/v1/titles/:title_id/
func GetTitle(c *gin.Context) {
	var title catalog.Title
	if err := titleQuery(database.DB).First(&title, "titles.id = ?", c.Param("title_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Title not found"})
		return
	}
	c.JSON(http.StatusOK, toTitleDTO(title))
}

// PATCH /api/v1/titles/:title_id/  (admin only)
func UpdateTitle(c *gin.Context) {
	if !guard.Require(c, access.ActionUpdate, access.ResourceTitles, 0) {
		return
	}

	var title catalog.Title
	if err := titleQuery(database.DB).First(&title, "titles.id = ?", c.Param("title_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Title not found"})
		return
	}

	var input struct {
		Name        *string   `json:"name"`
		Year        *int      `json:"year"`
		Description *string   `json:"description"`
		Category    *string   `json:"category"`
		Genre       *[]string `json:"genre"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Year != nil {
		if *input.Year > time.Now().Year() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Year cannot be in the future"})
			return
		}
		updates["year"] = *input.Year
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		var category catalog.Category
		if err := database.DB.Where("slug = ?", *input.Category).First(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category slug"})
			return
		}
		updates["category_id"] = category.ID
		title.Category = &category
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&title).Updates(updates).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update title", "details": err.Error()})
			return
		}
	}

	if input.Genre != nil {
		var genres []catalog.Genre
		if err := database.DB.Where("slug IN ?", *input.Genre).Find(&genres).Error; err != nil || len(genres) != len(*input.Genre) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown genre slug"})
			return
		}
		if err := database.DB.Model(&title).Association("Genres").Replace(genres); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update genres"})
			return
		}
		title.Genres = genres
	}

	c.JSON(http.StatusOK, toTitleDTO(title))
}

// DELETE /api/v1/titles/:title_id/  (admin only)
func DeleteTitle(c *gin.Context) {
	if !guard.Require(c, access.ActionDelete, access.ResourceTitles, 0) {
		return
	}

	var title catalog.Title
	if err := database.DB.First(&title, "id = ?", c.Param("title_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Title not found"})
		return
	}

	// Reviews cascade to comments, so clear both before the title row.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var reviewIDs []uint
		if err := tx.Model(&reviews.Review{}).Where("title_id = ?", title.ID).Pluck("id", &reviewIDs).Error; err != nil {
			return err
		}
		if len(reviewIDs) > 0 {
			if err := tx.Where("review_id IN ?", reviewIDs).Delete(&reviews.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("title_id = ?", title.ID).Delete(&reviews.Review{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&title).Association("Genres").Clear(); err != nil {
			return err
		}
		return tx.Delete(&title).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete title"})
		return
	}

	c.Status(http.StatusNoContent)
}

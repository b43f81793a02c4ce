package genres

import (
	"net/http"

	"catalog-app/database"
	"catalog-app/internal/api/guard"
	"catalog-app/internal/api/pagination"
	"catalog-app/internal/domain/access"
	"catalog-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/genres/
func ListGenres(c *gin.Context) {
	q := database.DB.Model(&catalog.Genre{}).Order("name ASC")
	if search := c.Query("search"); search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}

	rows := make([]catalog.Genre, 0)
	env, err := pagination.Paginate(c, q, &rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load genres"})
		return
	}

	c.JSON(http.StatusOK, env)
}

// POST /api/v1/genres/  (admin only)
func CreateGenre(c *gin.Context) {
	if !guard.Require(c, access.ActionCreate, access.ResourceGenres, 0) {
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
		Slug string `json:"slug" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var taken int64
	database.DB.Model(&catalog.Genre{}).Where("slug = ?", input.Slug).Count(&taken)
	if taken > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Genre slug already exists"})
		return
	}

	genre := catalog.Genre{Name: input.Name, Slug: input.Slug}
	if err := database.DB.Create(&genre).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create genre", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, genre)
}

// DELETE /api/v1/genres/:slug/  (admin only)
func DeleteGenre(c *gin.Context) {
	if !guard.Require(c, access.ActionDelete, access.ResourceGenres, 0) {
		return
	}

	var genre catalog.Genre
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&genre).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		return
	}
	if err := database.DB.Delete(&genre).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete genre"})
		return
	}

	c.Status(http.StatusNoContent)
}

package categories

import (
	"net/http"

	"catalog-app/database"
	"catalog-app/internal/api/guard"
	"catalog-app/internal/api/pagination"
	"catalog-app/internal/domain/access"
	"catalog-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/categories/
func ListCategories(c *gin.Context) {
	q := database.DB.Model(&catalog.Category{}).Order("name ASC")
	if search := c.Query("search"); search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}

	rows := make([]catalog.Category, 0)
	env, err := pagination.Paginate(c, q, &rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}

	c.JSON(http.StatusOK, env)
}

// POST /api/v1/categories/  (admin only)
func CreateCategory(c *gin.Context) {
	if !guard.Require(c, access.ActionCreate, access.ResourceCategories, 0) {
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
	database.DB.Model(&catalog.Category{}).Where("slug = ?", input.Slug).Count(&taken)
	if taken > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category slug already exists"})
		return
	}

	category := catalog.Category{Name: input.Name, Slug: input.Slug}
	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// DELETE /api/v1/categories/:slug/  (admin only)
func DeleteCategory(c *gin.Context) {
	if !guard.Require(c, access.ActionDelete, access.ResourceCategories, 0) {
		return
	}

	var category catalog.Category
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err := database.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.Status(http.StatusNoContent)
}

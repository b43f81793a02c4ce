package reviews

import (
	"net/http"
	"time"

	"catalog-app/database"
	"catalog-app/internal/api/guard"
	"catalog-app/internal/api/pagination"
	"catalog-app/internal/app/http/middleware"
	"catalog-app/internal/domain/access"
	"catalog-app/internal/domain/catalog"
	"catalog-app/internal/domain/reviews"

	"github.com/gin-gonic/gin"
)

type ReviewDTO struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func toReviewDTO(r reviews.Review) ReviewDTO {
	dto := ReviewDTO{
		ID:      r.ID,
		Text:    r.Text,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
	if r.Author != nil {
		dto.Author = r.Author.Username
	}
	return dto
}

func parentTitle(c *gin.Context) (*catalog.Title, bool) {
	var title catalog.Title
	if err := database.DB.First(&title, "id = ?", c.Param("title_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Title not found"})
		return nil, false
	}
	return &title, true
}

func loadReview(c *gin.Context) (*reviews.Review, bool) {
	title, ok := parentTitle(c)
	if !ok {
		return nil, false
	}

	var review reviews.Review
	err := database.DB.Preload("Author").
		Where("title_id = ?", title.ID).
		First(&review, "id = ?", c.Param("review_id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return nil, false
	}
	return &review, true
}

// GET /api/v1/titles/:title_id/reviews/
func ListReviews(c *gin.Context) {
	title, ok := parentTitle(c)
	if !ok {
		return
	}

	rows := make([]reviews.Review, 0)
	q := database.DB.Model(&reviews.Review{}).
		Preload("Author").
		Where("title_id = ?", title.ID).
		Order("pub_date ASC")
	env, err := pagination.Paginate(c, q, &rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	results := make([]ReviewDTO, 0, len(rows))
	for _, r := range rows {
		results = append(results, toReviewDTO(r))
	}
	env.Results = results

	c.JSON(http.StatusOK, env)
}

// POST /api/v1/titles/:title_id/reviews/  (any authenticated user)
func CreateReview(c *gin.Context) {
	// Policy first: anonymous callers get 401 even for unknown titles.
	if !guard.Require(c, access.ActionCreate, access.ResourceReviews, 0) {
		return
	}
	title, ok := parentTitle(c)
	if !ok {
		return
	}

	var input struct {
		Text  string `json:"text" binding:"required"`
		Score int    `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Score < 1 || input.Score > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be between 1 and 10"})
		return
	}

	p := middleware.CurrentPrincipal(c)

	// One review per (author, title); the unique index backs this up
	// against concurrent creates.
	var existing int64
	database.DB.Model(&reviews.Review{}).
		Where("title_id = ? AND author_id = ?", title.ID, p.UserID).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this title"})
		return
	}

	review := reviews.Review{
		TitleID:  title.ID,
		AuthorID: p.UserID,
		Text:     input.Text,
		Score:    input.Score,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create review", "details": err.Error()})
		return
	}

	database.DB.Preload("Author").First(&review, review.ID)
	c.JSON(http.StatusCreated, toReviewDTO(review))
}

// GET /api/v1/titles/:title_id/reviews/:review_id/
func GetReview(c *gin.Context) {
	review, ok := loadReview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toReviewDTO(*review))
}

// PATCH /api/v1/titles/:title_id/reviews/:review_id/  (author, moderator, admin)
func UpdateReview(c *gin.Context) {
	review, ok := loadReview(c)
	if !ok {
		return
	}
	if !guard.Require(c, access.ActionUpdate, access.ResourceReviews, review.AuthorID) {
		return
	}

	var input struct {
		Text  *string `json:"text"`
		Score *int    `json:"score"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Text != nil {
		updates["text"] = *input.Text
	}
	if input.Score != nil {
		if *input.Score < 1 || *input.Score > 10 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be between 1 and 10"})
			return
		}
		updates["score"] = *input.Score
	}

	if len(updates) > 0 {
		if err := database.DB.Model(review).Updates(updates).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update review", "details": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, toReviewDTO(*review))
}

// DELETE /api/v1/titles/:title_id/reviews/:review_id/  (author, moderator, admin)
func DeleteReview(c *gin.Context) {
	review, ok := loadReview(c)
	if !ok {
		return
	}
	if !guard.Require(c, access.ActionDelete, access.ResourceReviews, review.AuthorID) {
		return
	}

	// Comments ride along with their review.
	if err := database.DB.Where("review_id = ?", review.ID).Delete(&reviews.Comment{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review comments"})
		return
	}
	if err := database.DB.Delete(review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	c.Status(http.StatusNoContent)
}

package comments

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

type CommentDTO struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func toCommentDTO(cm reviews.Comment) CommentDTO {
	dto := CommentDTO{
		ID:      cm.ID,
		Text:    cm.Text,
		PubDate: cm.PubDate,
	}
	if cm.Author != nil {
		dto.Author = cm.Author.Username
	}
	return dto
}

// parentReview resolves the nested title/review pair, 404 on any mismatch.
func parentReview(c *gin.Context) (*reviews.Review, bool) {
	var title catalog.Title
	if err := database.DB.First(&title, "id = ?", c.Param("title_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Title not found"})
		return nil, false
	}

	var review reviews.Review
	err := database.DB.Where("title_id = ?", title.ID).
		First(&review, "id = ?", c.Param("review_id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return nil, false
	}
	return &review, true
}

func loadComment(c *gin.Context) (*reviews.Comment, bool) {
	review, ok := parentReview(c)
	if !ok {
		return nil, false
	}

	var comment reviews.Comment
	err := database.DB.Preload("Author").
		Where("review_id = ?", review.ID).
		First(&comment, "id = ?", c.Param("comment_id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return nil, false
	}
	return &comment, true
}

// GET /api/v1/titles/:title_id/reviews/:review_id/comments/
func ListComments(c *gin.Context) {
	review, ok := parentReview(c)
	if !ok {
		return
	}

	rows := make([]reviews.Comment, 0)
	q := database.DB.Model(&reviews.Comment{}).
		Preload("Author").
		Where("review_id = ?", review.ID).
		Order("pub_date ASC")
	env, err := pagination.Paginate(c, q, &rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}

	results := make([]CommentDTO, 0, len(rows))
	for _, cm := range rows {
		results = append(results, toCommentDTO(cm))
	}
	env.Results = results

	c.JSON(http.StatusOK, env)
}

// POST /api/v1/titles/:title_id/reviews/:review_id/comments/  (any authenticated user)
func CreateComment(c *gin.Context) {
	// Policy first: anonymous callers get 401 even for unknown parents.
	if !guard.Require(c, access.ActionCreate, access.ResourceComments, 0) {
		return
	}
	review, ok := parentReview(c)
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := middleware.CurrentPrincipal(c)
	comment := reviews.Comment{
		ReviewID: review.ID,
		AuthorID: p.UserID,
		Text:     input.Text,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create comment", "details": err.Error()})
		return
	}

	database.DB.Preload("Author").First(&comment, comment.ID)
	c.JSON(http.StatusCreated, toCommentDTO(comment))
}

// GET /api/v1/titles/:title_id/reviews/:review_id/comments/:comment_id/
func GetComment(c *gin.Context) {
	comment, ok := loadComment(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toCommentDTO(*comment))
}

// PATCH .../comments/:comment_id/  (author, moderator, admin)
func UpdateComment(c *gin.Context) {
	comment, ok := loadComment(c)
	if !ok {
		return
	}
	if !guard.Require(c, access.ActionUpdate, access.ResourceComments, comment.AuthorID) {
		return
	}

	var input struct {
		Text *string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Text != nil {
		if err := database.DB.Model(comment).Update("text", *input.Text).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update comment", "details": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, toCommentDTO(*comment))
}

// DELETE .../comments/:comment_id/  (author, moderator, admin)
func DeleteComment(c *gin.Context) {
	comment, ok := loadComment(c)
	if !ok {
		return
	}
	if !guard.Require(c, access.ActionDelete, access.ResourceComments, comment.AuthorID) {
		return
	}

	if err := database.DB.Delete(comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.Status(http.StatusNoContent)
}

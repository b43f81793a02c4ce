package routes

import (
	authapi "catalog-app/internal/api/auth"
	categoriesapi "catalog-app/internal/api/categories"
	commentsapi "catalog-app/internal/api/comments"
	genresapi "catalog-app/internal/api/genres"
	reviewsapi "catalog-app/internal/api/reviews"
	titlesapi "catalog-app/internal/api/titles"
	usersapi "catalog-app/internal/api/users"
	"catalog-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Unregistered verbs on known paths answer 405, not 404.
	r.HandleMethodNotAllowed = true

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.OptionalAuthMiddleware())

	// Signup & token endpoints take untrusted public input.
	auth := v1.Group("/auth")
	auth.Use(middleware.SanitizeAndCleanInputMiddleware())
	auth.POST("/email/", authapi.SignUp)
	auth.POST("/token/", authapi.Token)

	// Admin-only user management; :username may be the "me" alias.
	v1.GET("/users/", usersapi.ListUsers)
	v1.POST("/users/", usersapi.CreateUser)
	v1.GET("/users/:username/", usersapi.GetUser)
	v1.PATCH("/users/:username/", usersapi.UpdateUser)
	v1.DELETE("/users/:username/", usersapi.DeleteUser)

	v1.GET("/categories/", categoriesapi.ListCategories)
	v1.POST("/categories/", categoriesapi.CreateCategory)
	v1.DELETE("/categories/:slug/", categoriesapi.DeleteCategory)

	v1.GET("/genres/", genresapi.ListGenres)
	v1.POST("/genres/", genresapi.CreateGenre)
	v1.DELETE("/genres/:slug/", genresapi.DeleteGenre)

	v1.GET("/titles/", titlesapi.ListTitles)
	v1.POST("/titles/", titlesapi.CreateTitle)
	v1.GET("/titles/:title_id/", titlesapi.GetTitle)
	v1.PATCH("/titles/:title_id/", titlesapi.UpdateTitle)
	v1.DELETE("/titles/:title_id/", titlesapi.DeleteTitle)

	v1.GET("/titles/:title_id/reviews/", reviewsapi.ListReviews)
	v1.POST("/titles/:title_id/reviews/", reviewsapi.CreateReview)
	v1.GET("/titles/:title_id/reviews/:review_id/", reviewsapi.GetReview)
	v1.PATCH("/titles/:title_id/reviews/:review_id/", reviewsapi.UpdateReview)
	v1.DELETE("/titles/:title_id/reviews/:review_id/", reviewsapi.DeleteReview)

	v1.GET("/titles/:title_id/reviews/:review_id/comments/", commentsapi.ListComments)
	v1.POST("/titles/:title_id/reviews/:review_id/comments/", commentsapi.CreateComment)
	v1.GET("/titles/:title_id/reviews/:review_id/comments/:comment_id/", commentsapi.GetComment)
	v1.PATCH("/titles/:title_id/reviews/:review_id/comments/:comment_id/", commentsapi.UpdateComment)
	v1.DELETE("/titles/:title_id/reviews/:review_id/comments/:comment_id/", commentsapi.DeleteComment)
}

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"regexp"
	"time"

	"catalog-app/config"
	"catalog-app/database"
	"catalog-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+\-]+$`)

func generateConfirmationCode() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// SignUp registers a username/email pair (or re-requests a code for an
// existing pair) and emails a confirmation code.
func SignUp(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !IsEmailValid(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}
	if input.Username == "me" || !usernamePattern.MatchString(input.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username"})
		return
	}

	var user users.User
	err := database.DB.Where("username = ?", input.Username).First(&user).Error
	switch {
	case err == nil:
		// Existing user may re-request a code, but only with their own email.
		if user.Email != input.Email {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
			return
		}
	case err == gorm.ErrRecordNotFound:
		var taken int64
		database.DB.Model(&users.User{}).Where("email = ?", input.Email).Count(&taken)
		if taken > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		user = users.User{
			Username: input.Username,
			Email:    input.Email,
			Role:     "user",
		}
		if err := database.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to register user", "details": err.Error()})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	code := generateConfirmationCode()
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate confirmation code"})
		return
	}
	hash := string(hashed)
	if err := database.DB.Model(&user).Update("confirmation_hash", &hash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store confirmation code"})
		return
	}

	if err := SendConfirmationEmail(user.Email, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send confirmation email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": user.Email, "username": user.Username})
}

// Token exchanges a username and confirmation code for a JWT.
func Token(c *gin.Context) {
	var input struct {
		Username         string `json:"username" binding:"required"`
		ConfirmationCode string `json:"confirmation_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.ConfirmationHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.ConfirmationHash), []byte(input.ConfirmationCode)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid confirmation code"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

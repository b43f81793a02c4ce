package users

import (
	"net/http"

	"catalog-app/database"
	"catalog-app/internal/api/auth"
	"catalog-app/internal/api/guard"
	"catalog-app/internal/api/pagination"
	"catalog-app/internal/app/http/middleware"
	"catalog-app/internal/domain/access"
	"catalog-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/users/  (admin only)
func ListUsers(c *gin.Context) {
	if !guard.Require(c, access.ActionList, access.ResourceUsers, 0) {
		return
	}

	rows := make([]users.User, 0)
	q := database.DB.Model(&users.User{}).Order("username ASC")
	env, err := pagination.Paginate(c, q, &rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	results := make([]UserDTO, 0, len(rows))
	for _, u := range rows {
		results = append(results, toUserDTO(u))
	}
	env.Results = results

	c.JSON(http.StatusOK, env)
}

// POST /api/v1/users/  (admin only)
func CreateUser(c *gin.Context) {
	if !guard.Require(c, access.ActionCreate, access.ResourceUsers, 0) {
		return
	}

	var input struct {
		Username  string `json:"username" binding:"required"`
		Email     string `json:"email" binding:"required"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Bio       string `json:"bio"`
		Role      string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !auth.IsEmailValid(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}
	if input.Username == "me" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username"})
		return
	}
	if input.Role == "" {
		input.Role = string(access.RoleUser)
	}
	if !access.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	var taken int64
	database.DB.Model(&users.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&taken)
	if taken > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already in use"})
		return
	}

	user := users.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Bio:       input.Bio,
		Role:      input.Role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toUserDTO(user))
}

// GET /api/v1/users/:username/  ("me" resolves to the caller)
func GetUser(c *gin.Context) {
	username := c.Param("username")

	if username == "me" {
		self, ok := currentUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, toUserDTO(*self))
		return
	}

	if !guard.Require(c, access.ActionRetrieve, access.ResourceUsers, 0) {
		return
	}

	var user users.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, toUserDTO(user))
}

// PATCH /api/v1/users/:username/
func UpdateUser(c *gin.Context) {
	username := c.Param("username")

	var input struct {
		Username  *string `json:"username"`
		Email     *string `json:"email"`
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Bio       *string `json:"bio"`
		Role      *string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user *users.User
	if username == "me" {
		self, ok := currentUser(c)
		if !ok {
			return
		}
		user = self
		// Role changes are admin-only; a self-service role field is
		// silently ignored, the request still succeeds.
		input.Role = nil
	} else {
		if !guard.Require(c, access.ActionUpdate, access.ResourceUsers, 0) {
			return
		}
		var u users.User
		if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		user = &u
	}

	updates := map[string]interface{}{}
	if input.Username != nil {
		if *input.Username == "me" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username"})
			return
		}
		updates["username"] = *input.Username
	}
	if input.Email != nil {
		if !auth.IsEmailValid(*input.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
			return
		}
		updates["email"] = *input.Email
	}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Role != nil {
		if !access.ValidRole(*input.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		updates["role"] = *input.Role
	}

	if len(updates) > 0 {
		if err := database.DB.Model(user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update user", "details": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, toUserDTO(*user))
}

// DELETE /api/v1/users/:username/
func DeleteUser(c *gin.Context) {
	username := c.Param("username")

	if username == "me" {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	if !guard.Require(c, access.ActionDelete, access.ResourceUsers, 0) {
		return
	}

	var user users.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err := database.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.Status(http.StatusNoContent)
}

func currentUser(c *gin.Context) (*users.User, bool) {
	p := middleware.CurrentPrincipal(c)
	if !p.Authenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided"})
		return nil, false
	}

	var user users.User
	if err := database.DB.First(&user, p.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return nil, false
	}
	return &user, true
}

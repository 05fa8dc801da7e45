package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"fleetflow/internal/middleware"
	"fleetflow/internal/models"
	"fleetflow/internal/repository"
)

type AuthController struct {
	users *repository.UserRepo
	auth  *middleware.Auth
}

func NewAuthController(users *repository.UserRepo, auth *middleware.Auth) *AuthController {
	return &AuthController{users: users, auth: auth}
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, ok := normalizeRole(input.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Phone:    input.Phone,
		Role:     role,
		IsActive: true,
	}
	if err := ac.users.Create(&user); err != nil {
		handleError(c, err, "", "Email already in use")
		return
	}

	token, err := ac.auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": user})
}

func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.users.FindByEmail(body.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is disabled"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := ac.auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
}

// Me returns the account behind the presented token.
func (ac *AuthController) Me(c *gin.Context) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	// JWT claims decode numbers as float64.
	id, ok := raw.(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return
	}
	user, err := ac.users.FindByID(uint(id))
	if err != nil {
		handleError(c, err, "User not found", "")
		return
	}
	respondData(c, http.StatusOK, user)
}

func normalizeRole(roleInput string) (string, bool) {
	role := strings.ToLower(strings.TrimSpace(roleInput))
	if role == "" {
		return models.RoleUser, true
	}
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleDriver, models.RoleUser:
		return role, true
	default:
		return "", false
	}
}

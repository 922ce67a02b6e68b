package handlers

import (
	"errors"
	"net/http"
	"time"

	"Storefront/config"
	"Storefront/jwt"
	"Storefront/middleware"
	"Storefront/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

// RegisterHandler creates an account and logs it in by returning a token
// in the x-auth-token response header.
func RegisterHandler(c *gin.Context, db *gorm.DB, cfg config.Config) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=30"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Email is the login identifier and must be unique.
	var existing models.User
	err := db.First(&existing, "email = ?", req.Email).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email already registered",
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), cfg.BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordDigest: string(digest),
		Admin:          false,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	token, err := jwt.GenerateToken(user.ID, user.Admin, cfg.JWTSecret, time.Now().Add(tokenLifetime).Unix())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Header(middleware.TokenHeader, token)
	c.JSON(http.StatusCreated, user)
}

// LoginHandler exchanges email and password for a signed token.
func LoginHandler(c *gin.Context, db *gorm.DB, cfg config.Config) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var user models.User
	err := db.First(&user, "email = ?", req.Email).Error
	if err != nil {
		// Unknown email and wrong password are indistinguishable on purpose.
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(req.Password))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	token, err := jwt.GenerateToken(user.ID, user.Admin, cfg.JWTSecret, time.Now().Add(tokenLifetime).Unix())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Header(middleware.TokenHeader, token)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}

// GetUserListHandler lists accounts for administrators.
func GetUserListHandler(c *gin.Context, db *gorm.DB) {
	var users []models.User
	err := db.Find(&users).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, users)
}

package handlers

import (
	"errors"
	"net/http"

	"Storefront/middleware"
	"Storefront/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type reviewInput struct {
	Title  string `json:"title" binding:"required,min=3,max=30"`
	Body   string `json:"body" binding:"required"`
	Rating *int   `json:"rating" binding:"required"`
}

// GetReviewListHandler returns the reviews of the resolved product only.
func GetReviewListHandler(c *gin.Context, db *gorm.DB) {
	product := middleware.ResolvedProduct(c)

	var reviews []models.Review
	err := db.Where("product_id = ?", product.ID).Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReviewHandler enforces one review per user per product.
func CreateReviewHandler(c *gin.Context, db *gorm.DB) {
	userID, _, _ := middleware.Identity(c)
	product := middleware.ResolvedProduct(c)

	var existing models.Review
	err := db.First(&existing, "user_id = ? AND product_id = ?", userID, product.ID).Error
	if err == nil {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Product already reviewed",
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	review := models.Review{
		Title:     req.Title,
		Body:      req.Body,
		Rating:    *req.Rating,
		UserID:    userID,
		ProductID: product.ID,
	}
	if err := db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, review)
}

func GetReviewHandler(c *gin.Context, db *gorm.DB) {
	product := middleware.ResolvedProduct(c)

	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var review models.Review
	err = db.First(&review, "id = ? AND product_id = ?", id, product.ID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Review with submitted ID not found",
		})
		return
	}

	c.JSON(http.StatusOK, review)
}

// UpdateReviewHandler allows the owner or an admin to replace the review.
func UpdateReviewHandler(c *gin.Context, db *gorm.DB) {
	userID, isAdmin, _ := middleware.Identity(c)
	product := middleware.ResolvedProduct(c)

	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var review models.Review
	err = db.First(&review, "id = ? AND product_id = ?", id, product.ID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Review with submitted ID not found",
		})
		return
	}

	if !middleware.CanModify(review.UserID, userID, isAdmin, true) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Forbidden",
		})
		return
	}

	var req reviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	review.Title = req.Title
	review.Body = req.Body
	review.Rating = *req.Rating

	if err := db.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteReviewHandler removes the review and replies with its prior state.
func DeleteReviewHandler(c *gin.Context, db *gorm.DB) {
	userID, isAdmin, _ := middleware.Identity(c)
	product := middleware.ResolvedProduct(c)

	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var review models.Review
	err = db.First(&review, "id = ? AND product_id = ?", id, product.ID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Review with submitted ID not found",
		})
		return
	}

	if !middleware.CanModify(review.UserID, userID, isAdmin, true) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Forbidden",
		})
		return
	}

	if err := db.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, review)
}

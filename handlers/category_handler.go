package handlers

import (
	"net/http"

	"Storefront/middleware"
	"Storefront/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type categoryInput struct {
	Name string `json:"name" binding:"required,min=3,max=30"`
}

func GetCategoryListHandler(c *gin.Context, db *gorm.DB) {
	var categories []models.Category
	err := db.Find(&categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func CreateCategoryHandler(c *gin.Context, db *gorm.DB) {
	var req categoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	category := models.Category{Name: req.Name}
	if err := db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, category)
}

func GetCategoryHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var category models.Category
	err = db.First(&category, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category with submitted ID not found",
		})
		return
	}

	c.JSON(http.StatusOK, category)
}

func UpdateCategoryHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var category models.Category
	err = db.First(&category, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category with submitted ID not found",
		})
		return
	}

	var req categoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	category.Name = req.Name
	if err := db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategoryHandler refuses to orphan products: a category that still
// has products cannot be removed.
func DeleteCategoryHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var category models.Category
	err = db.First(&category, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category with submitted ID not found",
		})
		return
	}

	var productCount int64
	err = db.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&productCount).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if productCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Category still has products",
		})
		return
	}

	if err := db.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, category)
}

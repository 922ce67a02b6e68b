package handlers

import (
	"net/http"

	"Storefront/middleware"
	"Storefront/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Cost is a pointer so free shipping (0.00) still passes the required check.
type shippingOptionInput struct {
	Title       string   `json:"title" binding:"required,min=3,max=30"`
	Description string   `json:"description" binding:"required"`
	Cost        *float64 `json:"cost" binding:"required,gte=0"`
}

func GetShippingOptionListHandler(c *gin.Context, db *gorm.DB) {
	var shippingOptions []models.ShippingOption
	err := db.Find(&shippingOptions).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, shippingOptions)
}

func CreateShippingOptionHandler(c *gin.Context, db *gorm.DB) {
	var req shippingOptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	shippingOption := models.ShippingOption{
		Title:       req.Title,
		Description: req.Description,
		Cost:        *req.Cost,
	}
	if err := db.Create(&shippingOption).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, shippingOption)
}

func GetShippingOptionHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var shippingOption models.ShippingOption
	err = db.First(&shippingOption, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Shipping option with submitted ID not found",
		})
		return
	}

	c.JSON(http.StatusOK, shippingOption)
}

func UpdateShippingOptionHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var shippingOption models.ShippingOption
	err = db.First(&shippingOption, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Shipping option with submitted ID not found",
		})
		return
	}

	var req shippingOptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	shippingOption.Title = req.Title
	shippingOption.Description = req.Description
	shippingOption.Cost = *req.Cost

	if err := db.Save(&shippingOption).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, shippingOption)
}

func DeleteShippingOptionHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var shippingOption models.ShippingOption
	err = db.First(&shippingOption, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Shipping option with submitted ID not found",
		})
		return
	}

	if err := db.Delete(&shippingOption).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, shippingOption)
}

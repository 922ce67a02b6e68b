package handlers

import (
	"net/http"

	"Storefront/middleware"
	"Storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// Bound with ShouldBindBodyWith because FindCategory has already read the
// body for the categoryId reference.
type productInput struct {
	Title          string   `json:"title" binding:"required,min=3,max=30"`
	Description    string   `json:"description" binding:"required"`
	Price          *float64 `json:"price" binding:"required,gte=0"`
	SmallImagePath string   `json:"small_image_path" binding:"required"`
	LargeImagePath string   `json:"large_image_path" binding:"required"`
}

func GetProductListHandler(c *gin.Context, db *gorm.DB) {
	var products []models.Product
	err := db.Preload("Reviews").Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

func CreateProductHandler(c *gin.Context, db *gorm.DB) {
	var req productInput
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	category := middleware.ResolvedCategory(c)
	product := models.Product{
		Title:          req.Title,
		Description:    req.Description,
		Price:          *req.Price,
		SmallImagePath: req.SmallImagePath,
		LargeImagePath: req.LargeImagePath,
		CategoryID:     category.ID,
	}
	if err := db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

func GetProductHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var product models.Product
	err = db.Preload("Reviews").First(&product, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product with submitted ID not found",
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

func UpdateProductHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var product models.Product
	err = db.First(&product, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product with submitted ID not found",
		})
		return
	}

	var req productInput
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	category := middleware.ResolvedCategory(c)
	product.Title = req.Title
	product.Description = req.Description
	product.Price = *req.Price
	product.SmallImagePath = req.SmallImagePath
	product.LargeImagePath = req.LargeImagePath
	product.CategoryID = category.ID

	if err := db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProductHandler removes the product and its reviews in one
// transaction.
func DeleteProductHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var product models.Product
	err = db.First(&product, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product with submitted ID not found",
		})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

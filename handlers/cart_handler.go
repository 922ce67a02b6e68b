package handlers

import (
	"net/http"

	"Storefront/middleware"
	"Storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// Bound with ShouldBindBodyWith because FindProduct has already read the
// body for the productId reference.
type cartProductInput struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// GetCartProductListHandler returns the caller's cart lines only.
func GetCartProductListHandler(c *gin.Context, db *gorm.DB) {
	userID, _, _ := middleware.Identity(c)

	var cartProducts []models.CartProduct
	err := db.Where("user_id = ?", userID).Find(&cartProducts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cartProducts)
}

func CreateCartProductHandler(c *gin.Context, db *gorm.DB) {
	userID, _, _ := middleware.Identity(c)
	product := middleware.ResolvedProduct(c)

	var req cartProductInput
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	cartProduct := models.CartProduct{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
	}
	if err := db.Create(&cartProduct).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cartProduct)
}

// UpdateCartProductHandler is strictly owner-only: admins get no override
// on someone else's cart.
func UpdateCartProductHandler(c *gin.Context, db *gorm.DB) {
	userID, isAdmin, _ := middleware.Identity(c)
	product := middleware.ResolvedProduct(c)

	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var cartProduct models.CartProduct
	err = db.First(&cartProduct, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart product with submitted ID not found",
		})
		return
	}

	if !middleware.CanModify(cartProduct.UserID, userID, isAdmin, false) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Forbidden",
		})
		return
	}

	var req cartProductInput
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	cartProduct.ProductID = product.ID
	cartProduct.Quantity = req.Quantity

	if err := db.Save(&cartProduct).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cartProduct)
}

func DeleteCartProductHandler(c *gin.Context, db *gorm.DB) {
	userID, isAdmin, _ := middleware.Identity(c)

	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var cartProduct models.CartProduct
	err = db.First(&cartProduct, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart product with submitted ID not found",
		})
		return
	}

	if !middleware.CanModify(cartProduct.UserID, userID, isAdmin, false) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Forbidden",
		})
		return
	}

	if err := db.Delete(&cartProduct).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cartProduct)
}

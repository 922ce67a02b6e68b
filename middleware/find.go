package middleware

import (
	"net/http"
	"strconv"

	"Storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// ParseID rejects malformed identifiers before they reach the database, so
// a non-numeric id is always a 400 and never a spurious 404.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// FindCategory loads the category referenced by the request body and
// rejects the request early when it does not exist.
func FindCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			CategoryID uint `json:"categoryId"`
		}
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid Category",
			})
			c.Abort()
			return
		}

		var category models.Category
		err := db.First(&category, "id = ?", body.CategoryID).Error
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid Category",
			})
			c.Abort()
			return
		}

		c.Set("Category", category)
		c.Next()
	}
}

// FindProduct resolves the product named by the productId path parameter,
// or by the request body when the route carries no parameter. The product
// is loaded with its reviews.
func FindProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productID uint

		if raw := c.Param("productId"); raw != "" {
			id, err := ParseID(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Invalid ID",
				})
				c.Abort()
				return
			}
			productID = id
		} else {
			var body struct {
				ProductID uint `json:"productId"`
			}
			if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Invalid Product",
				})
				c.Abort()
				return
			}
			productID = body.ProductID
		}

		var product models.Product
		err := db.Preload("Reviews").First(&product, "id = ?", productID).Error
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid Product",
			})
			c.Abort()
			return
		}

		c.Set("Product", product)
		c.Next()
	}
}

// FindOrder resolves the order named by the orderId path parameter.
func FindOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := ParseID(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid ID",
			})
			c.Abort()
			return
		}

		var order models.Order
		err = db.First(&order, "id = ?", id).Error
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid Order",
			})
			c.Abort()
			return
		}

		c.Set("Order", order)
		c.Next()
	}
}

// ResolvedCategory returns the category loaded by FindCategory.
func ResolvedCategory(c *gin.Context) models.Category {
	return c.MustGet("Category").(models.Category)
}

// ResolvedProduct returns the product loaded by FindProduct.
func ResolvedProduct(c *gin.Context) models.Product {
	return c.MustGet("Product").(models.Product)
}

// ResolvedOrder returns the order loaded by FindOrder.
func ResolvedOrder(c *gin.Context) models.Order {
	return c.MustGet("Order").(models.Order)
}

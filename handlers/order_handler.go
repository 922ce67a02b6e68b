package handlers

import (
	"net/http"

	"Storefront/middleware"
	"Storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SendOrderHandler converts the caller's cart into an order with price
// snapshots, then empties the cart. The whole sequence runs in one
// transaction: either the order and all of its lines exist and the cart is
// empty, or nothing changed.
func SendOrderHandler(c *gin.Context, db *gorm.DB) {
	userID, _, _ := middleware.Identity(c)

	var req struct {
		ShippingOptionID uint `json:"shippingOptionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var shippingOption models.ShippingOption
	err := db.First(&shippingOption, "id = ?", req.ShippingOptionID).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid Shipping Option",
		})
		return
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": tx.Error.Error(),
		})
		return
	}

	// Lock the cart rows so a concurrent duplicate submission waits here
	// and then observes an empty cart. SQLite has no FOR UPDATE; its single
	// writer gives the same guarantee.
	cartQuery := tx.Where("user_id = ?", userID)
	if tx.Dialector.Name() == "mysql" {
		cartQuery = cartQuery.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var cartProducts []models.CartProduct
	if err := cartQuery.Find(&cartProducts).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	if len(cartProducts) == 0 {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart Empty",
		})
		return
	}

	// Snapshot the current product price into each pending line.
	orderProducts := make([]models.OrderProduct, 0, len(cartProducts))
	for _, cartProduct := range cartProducts {
		var product models.Product
		if err := tx.First(&product, "id = ?", cartProduct.ProductID).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid Product",
			})
			return
		}
		orderProducts = append(orderProducts, models.OrderProduct{
			Price:     product.Price,
			Quantity:  cartProduct.Quantity,
			ProductID: cartProduct.ProductID,
		})
	}

	order := models.Order{
		UserID:           userID,
		ShippingOptionID: shippingOption.ID,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	for i := range orderProducts {
		orderProducts[i].OrderID = order.ID
	}
	if err := tx.Create(&orderProducts).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.CartProduct{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	order.OrderProducts = orderProducts
	c.JSON(http.StatusOK, order)
}

// GetOrderListHandler returns the caller's orders with their lines.
func GetOrderListHandler(c *gin.Context, db *gorm.DB) {
	userID, _, _ := middleware.Identity(c)

	var orders []models.Order
	err := db.Where("user_id = ?", userID).Preload("OrderProducts").Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func GetOrderHandler(c *gin.Context, db *gorm.DB) {
	userID, _, _ := middleware.Identity(c)

	id, err := middleware.ParseID(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var order models.Order
	err = db.Preload("OrderProducts").First(&order, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order with submitted ID not found",
		})
		return
	}

	// Orders are visible to their owner only.
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Forbidden",
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderHandler is an admin correction: it reassigns the order's user
// and shipping option.
func UpdateOrderHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var order models.Order
	err = db.First(&order, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order with submitted ID not found",
		})
		return
	}

	var req struct {
		UserID           uint `json:"userId" binding:"required"`
		ShippingOptionID uint `json:"shippingOptionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", req.UserID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid User",
		})
		return
	}
	var shippingOption models.ShippingOption
	if err := db.First(&shippingOption, "id = ?", req.ShippingOptionID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid Shipping Option",
		})
		return
	}

	order.UserID = user.ID
	order.ShippingOptionID = shippingOption.ID

	if err := db.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrderHandler removes the order and its lines in one transaction.
func DeleteOrderHandler(c *gin.Context, db *gorm.DB) {
	id, err := middleware.ParseID(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var order models.Order
	err = db.First(&order, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order with submitted ID not found",
		})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

type orderProductInput struct {
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Quantity int      `json:"quantity" binding:"required,gt=0"`
}

// UpdateOrderProductHandler corrects a single line of the resolved order.
func UpdateOrderProductHandler(c *gin.Context, db *gorm.DB) {
	order := middleware.ResolvedOrder(c)
	product := middleware.ResolvedProduct(c)

	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var orderProduct models.OrderProduct
	err = db.First(&orderProduct, "id = ? AND order_id = ?", id, order.ID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order product with submitted ID not found",
		})
		return
	}

	var req orderProductInput
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	orderProduct.ProductID = product.ID
	orderProduct.Price = *req.Price
	orderProduct.Quantity = req.Quantity

	if err := db.Save(&orderProduct).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orderProduct)
}

func DeleteOrderProductHandler(c *gin.Context, db *gorm.DB) {
	order := middleware.ResolvedOrder(c)

	id, err := middleware.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	var orderProduct models.OrderProduct
	err = db.First(&orderProduct, "id = ? AND order_id = ?", id, order.ID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order product with submitted ID not found",
		})
		return
	}

	if err := db.Delete(&orderProduct).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orderProduct)
}

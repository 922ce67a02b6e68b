package routers

import (
	"Storefront/config"
	"Storefront/handlers"
	"Storefront/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func SetupRouters(db *gorm.DB, cfg config.Config, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.RecoverMiddleware(logger))
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", middleware.TokenHeader},
		ExposeHeaders: []string{middleware.TokenHeader, middleware.RequestIDHeader},
	}
	allowAll := len(cfg.Cors.AllowOrigins) == 0
	for _, origin := range cfg.Cors.AllowOrigins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Cors.AllowOrigins
	}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	checkLogin := middleware.CheckLoginMiddleware()
	checkAdmin := middleware.CheckAdminPermissionMiddleware()
	findCategory := middleware.FindCategory(db)
	findProduct := middleware.FindProduct(db)
	findOrder := middleware.FindOrder(db)

	api := router.Group("/api")
	{
		// Accounts
		api.POST("/users", func(c *gin.Context) {
			handlers.RegisterHandler(c, db, cfg)
		})
		api.POST("/login", func(c *gin.Context) {
			handlers.LoginHandler(c, db, cfg)
		})
		api.GET("/users", checkLogin, checkAdmin, func(c *gin.Context) {
			handlers.GetUserListHandler(c, db)
		})

		// Categories
		api.GET("/categories", func(c *gin.Context) {
			handlers.GetCategoryListHandler(c, db)
		})
		api.GET("/categories/:id", func(c *gin.Context) {
			handlers.GetCategoryHandler(c, db)
		})
		api.POST("/categories", checkLogin, checkAdmin, func(c *gin.Context) {
			handlers.CreateCategoryHandler(c, db)
		})
		api.PUT("/categories/:id", checkLogin, checkAdmin, func(c *gin.Context) {
			handlers.UpdateCategoryHandler(c, db)
		})
		api.DELETE("/categories/:id", checkLogin, checkAdmin, func(c *gin.Context) {
			handlers.DeleteCategoryHandler(c, db)
		})

		// Products
		api.GET("/products", func(c *gin.Context) {
			handlers.GetProductListHandler(c, db)
		})
		api.GET("/products/:productId", func(c *gin.Context) {
			handlers.GetProductHandler(c, db)
		})
		api.POST("/products", checkLogin, checkAdmin, findCategory, func(c *gin.Context) {
			handlers.CreateProductHandler(c, db)
		})
		api.PUT("/products/:productId", checkLogin, checkAdmin, findCategory, func(c *gin.Context) {
			handlers.UpdateProductHandler(c, db)
		})
		api.DELETE("/products/:productId", checkLogin, checkAdmin, func(c *gin.Context) {
			handlers.DeleteProductHandler(c, db)
		})

		// Reviews, nested under their product
		api.GET("/products/:productId/reviews", checkLogin, findProduct, func(c *gin.Context) {
			handlers.GetReviewListHandler(c, db)
		})
		api.POST("/products/:productId/reviews", checkLogin, findProduct, func(c *gin.Context) {
			handlers.CreateReviewHandler(c, db)
		})
		api.GET("/products/:productId/reviews/:id", checkLogin, findProduct, func(c *gin.Context) {
			handlers.GetReviewHandler(c, db)
		})
		api.PUT("/products/:productId/reviews/:id", checkLogin, findProduct, func(c *gin.Context) {
			handlers.UpdateReviewHandler(c, db)
		})
		api.DELETE("/products/:productId/reviews/:id", checkLogin, findProduct, func(c *gin.Context) {
			handlers.DeleteReviewHandler(c, db)
		})

		// Shipping options
		api.GET("/shipping-options", checkLogin, func(c *gin.Context) {
			handlers.GetShippingOptionListHandler(c, db)
		})
		api.GET("/shipping-options/:id", checkLogin, func(c *gin.Context) {
			handlers.GetShippingOptionHandler(c, db)
		})
		api.POST("/shipping-options", checkLogin, checkAdmin, func(c *gin.Context) {
			handlers.CreateShippingOptionHandler(c, db)
		})
		api.PUT("/shipping-options/:id", checkLogin, checkAdmin, func(c *gin.Context) {
			handlers.UpdateShippingOptionHandler(c, db)
		})
		api.DELETE("/shipping-options/:id", checkLogin, checkAdmin, func(c *gin.Context) {
			handlers.DeleteShippingOptionHandler(c, db)
		})

		// Cart
		api.GET("/cart-products", checkLogin, func(c *gin.Context) {
			handlers.GetCartProductListHandler(c, db)
		})
		api.POST("/cart-products", checkLogin, findProduct, func(c *gin.Context) {
			handlers.CreateCartProductHandler(c, db)
		})
		api.PUT("/cart-products/:id", checkLogin, findProduct, func(c *gin.Context) {
			handlers.UpdateCartProductHandler(c, db)
		})
		api.DELETE("/cart-products/:id", checkLogin, func(c *gin.Context) {
			handlers.DeleteCartProductHandler(c, db)
		})

		// Orders
		api.GET("/orders", checkLogin, func(c *gin.Context) {
			handlers.GetOrderListHandler(c, db)
		})
		api.POST("/orders", checkLogin, func(c *gin.Context) {
			handlers.SendOrderHandler(c, db)
		})
		api.GET("/orders/:orderId", checkLogin, func(c *gin.Context) {
			handlers.GetOrderHandler(c, db)
		})
		api.PUT("/orders/:orderId", checkLogin, checkAdmin, func(c *gin.Context) {
			handlers.UpdateOrderHandler(c, db)
		})
		api.DELETE("/orders/:orderId", checkLogin, checkAdmin, func(c *gin.Context) {
			handlers.DeleteOrderHandler(c, db)
		})

		// Order lines, nested under their order
		api.PUT("/orders/:orderId/order-products/:id", checkLogin, checkAdmin, findOrder, findProduct, func(c *gin.Context) {
			handlers.UpdateOrderProductHandler(c, db)
		})
		api.DELETE("/orders/:orderId/order-products/:id", checkLogin, checkAdmin, findOrder, func(c *gin.Context) {
			handlers.DeleteOrderProductHandler(c, db)
		})
	}

	return router
}

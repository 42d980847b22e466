package routes

import (
	"souq-api/controllers"
	"souq-api/middleware"
	"souq-api/repositories"
	"souq-api/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository()
	categoryRepo := repositories.NewCategoryRepository()
	productRepo := repositories.NewProductRepository()
	orderRepo := repositories.NewOrderRepository()

	limiter := services.NewRateLimiter()
	emails := services.NewEmailSender()
	productCache := services.NewProductCache()
	authService := services.NewAuthService(userRepo, limiter, emails)

	authCtrl := controllers.NewAuthController(authService)
	userCtrl := controllers.NewUserController(userRepo)
	categoryCtrl := controllers.NewCategoryController(categoryRepo)
	productCtrl := controllers.NewProductController(productRepo, productCache)
	orderCtrl := controllers.NewOrderController(orderRepo, productCache)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/verify-email", authCtrl.VerifyEmail)
	router.POST("/auth/resend-otp", authCtrl.ResendOTP)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/forgot-password", authCtrl.ForgotPassword)
	router.POST("/auth/reset-password", authCtrl.ResetPassword)

	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/categories/:id", categoryCtrl.GetCategory)
	router.GET("/products", productCtrl.GetProducts)
	router.GET("/products/:id", productCtrl.GetProduct)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrder)
		auth.PATCH("/orders/:id/cancel", orderCtrl.CancelOrder)

		auth.PATCH("/products/:id/stock", productCtrl.AdjustStock)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", userCtrl.GetUsers)
		admin.GET("/users/statistics", userCtrl.GetStatistics)
		admin.GET("/users/:id", userCtrl.GetUser)
		admin.PATCH("/users/:id/role", userCtrl.UpdateUserRole)
		admin.PATCH("/users/:id/status", userCtrl.UpdateUserStatus)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PUT("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)
		admin.PATCH("/categories/:id/restore", categoryCtrl.RestoreCategory)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.PATCH("/products/:id/restore", productCtrl.RestoreProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/statistics", orderCtrl.GetStatistics)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}
}

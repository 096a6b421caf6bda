package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-pos/controllers"
	"restaurant-pos/middleware"
)

func InitializeRoutes(router *gin.Engine) {
	router.GET("/health", controllers.Health)
	router.POST("/login", controllers.Login)
	router.GET("/products", controllers.GetAllProducts)

	router.POST("/invoices", controllers.CreateInvoice)
	router.GET("/invoices", controllers.ListInvoices)
	router.GET("/invoices/:id", controllers.GetInvoice)
	router.DELETE("/invoices/:id", controllers.DeleteInvoice)

	router.GET("/drafts", controllers.ListDrafts)
	router.POST("/drafts", controllers.SaveDraft)
	router.DELETE("/drafts/:id", controllers.DeleteDraft)

	router.POST("/ai/correct-name", controllers.CorrectName)
	router.POST("/orders/parse", controllers.ParseOrder)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware("admin"))
	{
		admin.POST("/products", controllers.AddProduct)
		admin.PUT("/products/:id", controllers.EditProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.GET("/dashboard", controllers.Dashboard)
	}
}

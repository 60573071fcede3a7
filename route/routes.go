package route

import (
	"github.com/gin-gonic/gin"

	"skybooks/controller"
	"skybooks/model"
	"skybooks/utils"
)

func SkybooksRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Public surface: registration, logins, catalog browsing, guest checkout.
	api.POST("/customer", controller.RegisterCustomer)
	api.POST("/customer/login", controller.LoginCustomer)
	api.POST("/employee/login", controller.LoginEmployee)
	api.POST("/auth/refresh", controller.RefreshTokenFunc)
	api.GET("/product", controller.GetProducts)
	api.GET("/product/:id", controller.GetProductByID)
	api.POST("/order/guest", controller.CreateGuestOrder)

	authenticated := api.Group("")
	authenticated.Use(utils.AuthMiddleware())
	{
		authenticated.POST("/order", controller.CreateOrder)

		authenticated.GET("/customer", controller.GetCustomers)
		authenticated.GET("/customer/:id", controller.GetCustomerByID)
		authenticated.PUT("/customer/:id", controller.UpdateCustomer)
		authenticated.DELETE("/customer/:id", controller.DeleteCustomer)

		authenticated.GET("/order", controller.GetOrders)
		authenticated.GET("/order/:id", controller.GetOrderByID)
		authenticated.PUT("/order/:id", controller.UpdateOrder)
		authenticated.DELETE("/order/:id", controller.DeleteOrder)

		authenticated.POST("/product", controller.CreateProduct)
		authenticated.PUT("/product/:id", controller.UpdateProduct)
		authenticated.DELETE("/product/:id", controller.DeleteProduct)
		authenticated.POST("/product/import/excel", controller.ImportProductsExcel)

		authenticated.POST("/publisher", controller.CreatePublisher)
		authenticated.GET("/publisher", controller.GetPublishers)
		authenticated.GET("/publisher/:id", controller.GetPublisherByID)
		authenticated.PUT("/publisher/:id", controller.UpdatePublisher)
		authenticated.DELETE("/publisher/:id", controller.DeletePublisher)

		authenticated.POST("/purchaseorder", controller.CreatePurchaseOrder)
		authenticated.GET("/purchaseorder", controller.GetPurchaseOrders)
		authenticated.GET("/purchaseorder/:id", controller.GetPurchaseOrderByID)
		authenticated.PUT("/purchaseorder/:id", controller.UpdatePurchaseOrder)
		authenticated.DELETE("/purchaseorder/:id", controller.DeletePurchaseOrder)

		authenticated.POST("/news", controller.CreateNews)
		authenticated.GET("/news", controller.GetNews)
		authenticated.GET("/news/:id", controller.GetNewsByID)
		authenticated.PUT("/news/:id", controller.UpdateNews)
		authenticated.DELETE("/news/:id", controller.DeleteNews)
	}

	manager := api.Group("")
	manager.Use(utils.AuthMiddleware(), utils.RequireRole(string(model.RoleManager)))
	{
		manager.POST("/employee", controller.CreateEmployee)
		manager.GET("/employee", controller.GetEmployees)
		manager.GET("/employee/:id", controller.GetEmployeeByID)
		manager.PUT("/employee/:id", controller.UpdateEmployee)
		manager.DELETE("/employee/:id", controller.DeleteEmployee)

		manager.GET("/dashboard/overview", controller.GetDashboardOverview)
		manager.GET("/dashboard/revenue", controller.GetDashboardRevenue)
		manager.GET("/dashboard/revenue/export", controller.ExportDashboardRevenue)
		manager.GET("/dashboard/products", controller.GetDashboardProducts)
		manager.GET("/dashboard/customers", controller.GetDashboardCustomers)
		manager.GET("/dashboard/orders", controller.GetDashboardOrders)
	}
}

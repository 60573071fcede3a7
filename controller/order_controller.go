package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"skybooks/database"
	"skybooks/model"
	"skybooks/service"
)

func placeOrderResponse(c *gin.Context, order *model.Order, err error) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrder):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		default:
			logrus.WithError(err).Error("Failed to place order")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data":    order,
	})
}

// CreateGuestOrder places an order without an authenticated customer
// account, identified only by the contact details in the payload.
func CreateGuestOrder(c *gin.Context) {
	var req service.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order payload: " + err.Error()})
		return
	}

	order, err := service.PlaceOrder(database.DB, &req, model.OrderTypeGuest, nil)
	placeOrderResponse(c, order, err)
}

// CreateOrder places an order for an authenticated identity. When the token
// belongs to a customer the order is linked to that account.
func CreateOrder(c *gin.Context) {
	var req service.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order payload: " + err.Error()})
		return
	}

	var customerID *uint
	if role, _ := c.Get("user_role"); role == "customer" {
		if userID, exists := c.Get("user_id"); exists {
			id := userID.(uint)
			customerID = &id
		}
	}

	order, err := service.PlaceOrder(database.DB, &req, model.OrderTypeRegistered, customerID)
	placeOrderResponse(c, order, err)
}

func GetOrders(c *gin.Context) {
	var orders []model.Order
	if err := database.DB.
		Preload("Items.Product").
		Preload("Customer").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		logrus.WithError(err).Error("Failed to fetch orders")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

func GetOrderByID(c *gin.Context) {
	var order model.Order
	if err := database.DB.
		Preload("Items.Product").
		Preload("Customer").
		First(&order, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch order")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// UpdateOrder changes status, contacts or shipping address. The total is
// what it was at creation time; it is never recomputed here.
func UpdateOrder(c *gin.Context) {
	type Request struct {
		Status          *model.OrderStatus `json:"status"`
		CustomerName    *string            `json:"customer_name"`
		CustomerPhone   *string            `json:"customer_phone"`
		CustomerEmail   *string            `json:"customer_email"`
		ShippingAddress *string            `json:"shipping_address"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid update payload: " + err.Error()})
		return
	}

	var order model.Order
	if err := database.DB.First(&order, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch order")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch order"})
		}
		return
	}

	if req.Status != nil {
		if !model.ValidOrderStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order status"})
			return
		}
		order.Status = *req.Status
	}
	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		order.CustomerPhone = *req.CustomerPhone
	}
	if req.CustomerEmail != nil {
		order.CustomerEmail = *req.CustomerEmail
	}
	if req.ShippingAddress != nil {
		order.ShippingAddress = *req.ShippingAddress
	}

	if err := database.DB.Save(&order).Error; err != nil {
		logrus.WithError(err).Error("Failed to update order")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order updated successfully",
		"data":    order,
	})
}

func DeleteOrder(c *gin.Context) {
	var order model.Order
	if err := database.DB.First(&order, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch order")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch order"})
		}
		return
	}

	if err := database.DB.Delete(&order).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete order")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted successfully",
		"data":    order,
	})
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"skybooks/database"
	"skybooks/model"
)

// CreatePurchaseOrder records a stock-in document against a publisher.
// Product stock is not changed here; purchase orders only document the
// intake.
func CreatePurchaseOrder(c *gin.Context) {
	type ItemRequest struct {
		ProductID   uint    `json:"product_id" binding:"required"`
		Quantity    int     `json:"quantity" binding:"required,min=1"`
		ImportPrice float64 `json:"import_price" binding:"gte=0"`
	}
	type Request struct {
		PublisherID uint          `json:"publisher_id" binding:"required"`
		Note        string        `json:"note"`
		Items       []ItemRequest `json:"items" binding:"required,min=1,dive"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid purchase order payload: " + err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "User ID not found in context"})
		return
	}

	var publisher model.Publisher
	if err := database.DB.First(&publisher, req.PublisherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Publisher not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch publisher")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create purchase order"})
		}
		return
	}

	purchaseOrder := model.PurchaseOrder{
		EmployeeID:  userID.(uint),
		PublisherID: req.PublisherID,
		Note:        req.Note,
	}

	for _, item := range req.Items {
		var product model.Product
		if err := database.DB.First(&product, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			} else {
				logrus.WithError(err).Error("Failed to fetch product")
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create purchase order"})
			}
			return
		}
		purchaseOrder.Items = append(purchaseOrder.Items, model.PurchaseOrderItem{
			ProductID:   product.ID,
			Title:       product.Title,
			Quantity:    item.Quantity,
			ImportPrice: item.ImportPrice,
		})
	}

	if err := database.DB.Create(&purchaseOrder).Error; err != nil {
		logrus.WithError(err).Error("Failed to create purchase order")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create purchase order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Purchase order created successfully",
		"data":    purchaseOrder,
	})
}

func GetPurchaseOrders(c *gin.Context) {
	var purchaseOrders []model.PurchaseOrder
	if err := database.DB.
		Preload("Employee").
		Preload("Publisher").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&purchaseOrders).Error; err != nil {
		logrus.WithError(err).Error("Failed to fetch purchase orders")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch purchase orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Purchase orders retrieved successfully",
		"data":    purchaseOrders,
	})
}

func GetPurchaseOrderByID(c *gin.Context) {
	var purchaseOrder model.PurchaseOrder
	if err := database.DB.
		Preload("Employee").
		Preload("Publisher").
		Preload("Items.Product").
		First(&purchaseOrder, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Purchase order not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch purchase order")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch purchase order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Purchase order retrieved successfully",
		"data":    purchaseOrder,
	})
}

func UpdatePurchaseOrder(c *gin.Context) {
	type Request struct {
		PublisherID *uint   `json:"publisher_id"`
		Note        *string `json:"note"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid update payload: " + err.Error()})
		return
	}

	var purchaseOrder model.PurchaseOrder
	if err := database.DB.First(&purchaseOrder, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Purchase order not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch purchase order")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch purchase order"})
		}
		return
	}

	if req.PublisherID != nil {
		var publisher model.Publisher
		if err := database.DB.First(&publisher, *req.PublisherID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid publisher"})
			return
		}
		purchaseOrder.PublisherID = *req.PublisherID
	}
	if req.Note != nil {
		purchaseOrder.Note = *req.Note
	}

	if err := database.DB.Save(&purchaseOrder).Error; err != nil {
		logrus.WithError(err).Error("Failed to update purchase order")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update purchase order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Purchase order updated successfully",
		"data":    purchaseOrder,
	})
}

func DeletePurchaseOrder(c *gin.Context) {
	var purchaseOrder model.PurchaseOrder
	if err := database.DB.First(&purchaseOrder, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Purchase order not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch purchase order")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch purchase order"})
		}
		return
	}

	if err := database.DB.Delete(&purchaseOrder).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete purchase order")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete purchase order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Purchase order deleted successfully",
		"data":    purchaseOrder,
	})
}

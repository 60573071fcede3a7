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

func CreatePublisher(c *gin.Context) {
	type Request struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Publisher name is required"})
		return
	}

	publisher := model.Publisher{Name: req.Name, Address: req.Address, Phone: req.Phone}
	if err := database.DB.Create(&publisher).Error; err != nil {
		logrus.WithError(err).Error("Failed to create publisher")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create publisher"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Publisher created successfully",
		"data":    publisher,
	})
}

func GetPublishers(c *gin.Context) {
	var publishers []model.Publisher
	if err := database.DB.Order("created_at DESC").Find(&publishers).Error; err != nil {
		logrus.WithError(err).Error("Failed to fetch publishers")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch publishers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Publishers retrieved successfully",
		"data":    publishers,
	})
}

func GetPublisherByID(c *gin.Context) {
	var publisher model.Publisher
	if err := database.DB.First(&publisher, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Publisher not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch publisher")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch publisher"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Publisher retrieved successfully",
		"data":    publisher,
	})
}

func UpdatePublisher(c *gin.Context) {
	type Request struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid update payload: " + err.Error()})
		return
	}

	var publisher model.Publisher
	if err := database.DB.First(&publisher, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Publisher not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch publisher")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch publisher"})
		}
		return
	}

	if req.Name != nil {
		publisher.Name = *req.Name
	}
	if req.Address != nil {
		publisher.Address = *req.Address
	}
	if req.Phone != nil {
		publisher.Phone = *req.Phone
	}

	if err := database.DB.Save(&publisher).Error; err != nil {
		logrus.WithError(err).Error("Failed to update publisher")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update publisher"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Publisher updated successfully",
		"data":    publisher,
	})
}

func DeletePublisher(c *gin.Context) {
	var publisher model.Publisher
	if err := database.DB.First(&publisher, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Publisher not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch publisher")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch publisher"})
		}
		return
	}

	if err := database.DB.Delete(&publisher).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete publisher")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete publisher"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Publisher deleted successfully",
		"data":    publisher,
	})
}

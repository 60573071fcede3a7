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

func CreateNews(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title and content are required"})
		return
	}

	status := model.NewsStatus(c.PostForm("status"))
	if status == "" {
		status = model.NewsStatusDraft
	}
	if !model.ValidNewsStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid news status"})
		return
	}

	scheduledDate, err := parseDate(c.PostForm("scheduled_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	news := model.News{
		Title:         title,
		Content:       content,
		Status:        status,
		ScheduledDate: scheduledDate,
	}

	if userID, exists := c.Get("user_id"); exists {
		id := userID.(uint)
		news.EmployeeID = &id
	}

	image, err := saveUploadedImage(c, "image", "news")
	if err != nil && !errors.Is(err, errNoFile) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	news.Image = image

	if err := database.DB.Create(&news).Error; err != nil {
		logrus.WithError(err).Error("Failed to create news article")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create news article"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "News article created successfully",
		"data":    news,
	})
}

func GetNews(c *gin.Context) {
	query := database.DB.Preload("Employee").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var articles []model.News
	if err := query.Find(&articles).Error; err != nil {
		logrus.WithError(err).Error("Failed to fetch news articles")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch news articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "News articles retrieved successfully",
		"data":    articles,
	})
}

func GetNewsByID(c *gin.Context) {
	var news model.News
	if err := database.DB.Preload("Employee").First(&news, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "News article not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch news article")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch news article"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "News article retrieved successfully",
		"data":    news,
	})
}

func UpdateNews(c *gin.Context) {
	var news model.News
	if err := database.DB.First(&news, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "News article not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch news article")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch news article"})
		}
		return
	}

	if title := c.PostForm("title"); title != "" {
		news.Title = title
	}
	if content := c.PostForm("content"); content != "" {
		news.Content = content
	}
	if status := c.PostForm("status"); status != "" {
		newsStatus := model.NewsStatus(status)
		if !model.ValidNewsStatus(newsStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid news status"})
			return
		}
		news.Status = newsStatus
	}
	if scheduled := c.PostForm("scheduled_date"); scheduled != "" {
		scheduledDate, err := parseDate(scheduled)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		news.ScheduledDate = scheduledDate
	}

	image, err := saveUploadedImage(c, "image", "news")
	if err != nil && !errors.Is(err, errNoFile) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if image != "" {
		if err := removeStoredImage(news.Image); err != nil {
			logrus.WithError(err).Warn("Failed to remove old news image")
		}
		news.Image = image
	}

	if err := database.DB.Save(&news).Error; err != nil {
		logrus.WithError(err).Error("Failed to update news article")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update news article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "News article updated successfully",
		"data":    news,
	})
}

func DeleteNews(c *gin.Context) {
	var news model.News
	if err := database.DB.First(&news, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "News article not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch news article")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch news article"})
		}
		return
	}

	if err := database.DB.Delete(&news).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete news article")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete news article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "News article deleted successfully",
		"data":    news,
	})
}

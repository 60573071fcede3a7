package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"skybooks/database"
	"skybooks/model"
)

func CreateProduct(c *gin.Context) {
	type Request struct {
		Title           string   `json:"title" binding:"required"`
		Author          string   `json:"author"`
		Description     string   `json:"description"`
		Price           *float64 `json:"price" binding:"required"`
		DiscountPercent float64  `json:"discount_percent" binding:"gte=0,lte=100"`
		StockQuantity   int      `json:"stock_quantity" binding:"gte=0"`
		PublisherID     *uint    `json:"publisher_id"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product payload: " + err.Error()})
		return
	}
	if *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Price must not be negative"})
		return
	}

	product := model.Product{
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		Price:           *req.Price,
		DiscountPercent: req.DiscountPercent,
		StockQuantity:   req.StockQuantity,
		PublisherID:     req.PublisherID,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		logrus.WithError(err).Error("Failed to create product")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

func GetProducts(c *gin.Context) {
	query := database.DB.Preload("Publisher").Order("created_at DESC")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logrus.WithError(err).Error("Failed to fetch products")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

func GetProductByID(c *gin.Context) {
	var product model.Product
	if err := database.DB.Preload("Publisher").First(&product, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

func UpdateProduct(c *gin.Context) {
	type Request struct {
		Title           *string  `json:"title"`
		Author          *string  `json:"author"`
		Description     *string  `json:"description"`
		Price           *float64 `json:"price"`
		DiscountPercent *float64 `json:"discount_percent"`
		StockQuantity   *int     `json:"stock_quantity"`
		PublisherID     *uint    `json:"publisher_id"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid update payload: " + err.Error()})
		return
	}

	var product model.Product
	if err := database.DB.First(&product, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
		}
		return
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Author != nil {
		product.Author = *req.Author
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Price must not be negative"})
			return
		}
		product.Price = *req.Price
	}
	if req.DiscountPercent != nil {
		if *req.DiscountPercent < 0 || *req.DiscountPercent > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Discount percent must be between 0 and 100"})
			return
		}
		product.DiscountPercent = *req.DiscountPercent
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.PublisherID != nil {
		product.PublisherID = req.PublisherID
	}

	if err := database.DB.Save(&product).Error; err != nil {
		logrus.WithError(err).Error("Failed to update product")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

func DeleteProduct(c *gin.Context) {
	var product model.Product
	if err := database.DB.First(&product, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
		}
		return
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete product")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
		"data":    product,
	})
}

// ImportProductsExcel loads products from an uploaded .xlsx file. Expected
// columns: title, author, price, discount_percent, stock_quantity, with a
// header row. Invalid rows are skipped.
func ImportProductsExcel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Error("Unable to open uploaded Excel file")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to parse Excel file"})
		return
	}

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel must have at least one row of data"})
		return
	}

	var products []model.Product
	for rowIndex, row := range rows[1:] {
		if len(row) < 3 {
			logrus.Warnf("Excel row %d skipped: incomplete", rowIndex+2)
			continue
		}

		title := strings.TrimSpace(row[0])
		if title == "" {
			logrus.Warnf("Excel row %d skipped: empty title", rowIndex+2)
			continue
		}

		price, err := strconv.ParseFloat(row[2], 64)
		if err != nil || price < 0 {
			logrus.Warnf("Excel row %d skipped: invalid price %q", rowIndex+2, row[2])
			continue
		}

		var discount float64
		if len(row) > 3 && row[3] != "" {
			discount, err = strconv.ParseFloat(row[3], 64)
			if err != nil || discount < 0 || discount > 100 {
				logrus.Warnf("Excel row %d skipped: invalid discount %q", rowIndex+2, row[3])
				continue
			}
		}

		var stock int
		if len(row) > 4 && row[4] != "" {
			stock, err = strconv.Atoi(row[4])
			if err != nil || stock < 0 {
				logrus.Warnf("Excel row %d skipped: invalid stock %q", rowIndex+2, row[4])
				continue
			}
		}

		products = append(products, model.Product{
			Title:           title,
			Author:          strings.TrimSpace(row[1]),
			Price:           price,
			DiscountPercent: discount,
			StockQuantity:   stock,
		})
	}

	if len(products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No valid rows found"})
		return
	}

	if err := database.DB.Create(&products).Error; err != nil {
		logrus.WithError(err).Error("Failed to insert imported products")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to insert products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bulk product import successful",
		"count":   len(products),
	})
}

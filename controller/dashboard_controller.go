package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"skybooks/database"
	"skybooks/service"
)

func GetDashboardOverview(c *gin.Context) {
	overview, err := service.GetOverview(database.DB)
	if err != nil {
		logrus.WithError(err).Error("Failed to compute dashboard overview")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compute overview"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Overview retrieved successfully",
		"data":    overview,
	})
}

func GetDashboardRevenue(c *gin.Context) {
	granularity := service.Granularity(c.DefaultQuery("granularity", "monthly"))

	points, err := service.RevenueSeries(database.DB, granularity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidGranularity) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		} else {
			logrus.WithError(err).Error("Failed to compute revenue series")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compute revenue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Revenue retrieved successfully",
		"no_data": len(points) == 0,
		"data":    points,
	})
}

func GetDashboardProducts(c *gin.Context) {
	rows, err := service.TopProducts(database.DB, 10)
	if err != nil {
		logrus.WithError(err).Error("Failed to compute top products")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compute product statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product statistics retrieved successfully",
		"data":    rows,
	})
}

func GetDashboardCustomers(c *gin.Context) {
	points, err := service.CustomerGrowth(database.DB, 12)
	if err != nil {
		logrus.WithError(err).Error("Failed to compute customer growth")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compute customer statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer statistics retrieved successfully",
		"data":    points,
	})
}

func GetDashboardOrders(c *gin.Context) {
	rows, err := service.OrderStatusCounts(database.DB)
	if err != nil {
		logrus.WithError(err).Error("Failed to compute order status counts")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compute order statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order statistics retrieved successfully",
		"data":    rows,
	})
}

// ExportDashboardRevenue renders the revenue series as an .xlsx attachment.
func ExportDashboardRevenue(c *gin.Context) {
	granularity := service.Granularity(c.DefaultQuery("granularity", "monthly"))

	points, err := service.RevenueSeries(database.DB, granularity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidGranularity) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		} else {
			logrus.WithError(err).Error("Failed to compute revenue series")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compute revenue"})
		}
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Revenue"
	f.SetSheetName("Sheet1", sheet)
	f.SetCellValue(sheet, "A1", "Period")
	f.SetCellValue(sheet, "B1", "Total Revenue")
	f.SetCellValue(sheet, "C1", "Order Count")

	for i, point := range points {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), point.Label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), point.TotalRevenue)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), point.OrderCount)
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="revenue-%s.xlsx"`, granularity))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		logrus.WithError(err).Error("Failed to write revenue export")
	}
}

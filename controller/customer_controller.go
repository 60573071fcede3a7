package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skybooks/database"
	"skybooks/model"
	"skybooks/utils"
)

// parseDate accepts YYYY-MM-DD or RFC3339. Empty input is not an error.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("invalid date format, expected YYYY-MM-DD")
}

func RegisterCustomer(c *gin.Context) {
	type Request struct {
		FullName    string `json:"full_name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Phone       string `json:"phone" binding:"required"`
		Address     string `json:"address"`
		DateOfBirth string `json:"date_of_birth"`
		Gender      string `json:"gender"`
		Username    string `json:"username" binding:"required"`
		Password    string `json:"password" binding:"required,min=6"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid registration payload: " + err.Error()})
		return
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var existing model.Customer
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username is already taken"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Failed to hash customer password")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to register customer"})
		return
	}

	customer := model.Customer{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Username:    req.Username,
		Password:    string(hashedPassword),
	}

	if err := database.DB.Create(&customer).Error; err != nil {
		logrus.WithError(err).Error("Failed to create customer")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to register customer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Customer registered successfully",
		"data":    customer,
	})
}

func LoginCustomer(c *gin.Context) {
	type Request struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username and password are required"})
		return
	}

	var customer model.Customer
	if err := database.DB.Where("username = ?", req.Username).First(&customer).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid login credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid login credentials"})
		return
	}

	access, refresh, err := utils.GenerateTokens("customer", customer.ID)
	if err != nil {
		logrus.WithError(err).Error("Failed to generate customer tokens")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  access,
		"refresh_token": refresh,
		"data":          customer,
	})
}

func GetCustomers(c *gin.Context) {
	var customers []model.Customer
	if err := database.DB.Order("created_at DESC").Find(&customers).Error; err != nil {
		logrus.WithError(err).Error("Failed to fetch customers")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customers retrieved successfully",
		"data":    customers,
	})
}

func GetCustomerByID(c *gin.Context) {
	var customer model.Customer
	if err := database.DB.First(&customer, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Customer not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch customer")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch customer"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer retrieved successfully",
		"data":    customer,
	})
}

func UpdateCustomer(c *gin.Context) {
	type Request struct {
		FullName    *string `json:"full_name"`
		Email       *string `json:"email"`
		Phone       *string `json:"phone"`
		Address     *string `json:"address"`
		DateOfBirth *string `json:"date_of_birth"`
		Gender      *string `json:"gender"`
		Password    *string `json:"password"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid update payload: " + err.Error()})
		return
	}

	var customer model.Customer
	if err := database.DB.First(&customer, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Customer not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch customer")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch customer"})
		}
		return
	}

	if req.FullName != nil {
		customer.FullName = *req.FullName
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Gender != nil {
		customer.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		customer.DateOfBirth = dob
	}
	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Error("Failed to hash customer password")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update customer"})
			return
		}
		customer.Password = string(hashedPassword)
	}

	if err := database.DB.Save(&customer).Error; err != nil {
		logrus.WithError(err).Error("Failed to update customer")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer updated successfully",
		"data":    customer,
	})
}

func DeleteCustomer(c *gin.Context) {
	var customer model.Customer
	if err := database.DB.First(&customer, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Customer not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch customer")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch customer"})
		}
		return
	}

	if err := database.DB.Delete(&customer).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete customer")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer deleted successfully",
		"data":    customer,
	})
}

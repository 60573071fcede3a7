package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skybooks/database"
	"skybooks/model"
	"skybooks/utils"
)

func LoginEmployee(c *gin.Context) {
	type Request struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username and password are required"})
		return
	}

	var employee model.Employee
	if err := database.DB.Where("username = ?", req.Username).First(&employee).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid login credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid login credentials"})
		return
	}

	access, refresh, err := utils.GenerateTokens(string(employee.Role), employee.ID)
	if err != nil {
		logrus.WithError(err).Error("Failed to generate employee tokens")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  access,
		"refresh_token": refresh,
		"role":          employee.Role,
		"data":          employee,
	})
}

func RefreshTokenFunc(c *gin.Context) {
	type Request struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Refresh token is required"})
		return
	}

	access, refresh, err := utils.RefreshTokens(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func CreateEmployee(c *gin.Context) {
	fullName := c.PostForm("full_name")
	username := c.PostForm("username")
	password := c.PostForm("password")
	role := model.EmployeeRole(c.PostForm("role"))

	if fullName == "" || username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Full name, username and password are required"})
		return
	}

	if role != model.RoleManager && role != model.RoleStaff {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid role"})
		return
	}

	var existing model.Employee
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username is already taken"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Failed to hash employee password")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create employee"})
		return
	}

	employee := model.Employee{
		FullName: fullName,
		Email:    c.PostForm("email"),
		Phone:    c.PostForm("phone"),
		Address:  c.PostForm("address"),
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}

	avatar, err := saveUploadedImage(c, "avatar", "employee")
	if err != nil && !errors.Is(err, errNoFile) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	employee.Avatar = avatar

	if err := database.DB.Create(&employee).Error; err != nil {
		logrus.WithError(err).Error("Failed to create employee")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Employee created successfully",
		"data":    employee,
	})
}

func GetEmployees(c *gin.Context) {
	var employees []model.Employee
	if err := database.DB.Order("created_at DESC").Find(&employees).Error; err != nil {
		logrus.WithError(err).Error("Failed to fetch employees")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch employees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employees retrieved successfully",
		"data":    employees,
	})
}

func GetEmployeeByID(c *gin.Context) {
	var employee model.Employee
	if err := database.DB.First(&employee, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Employee not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch employee")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch employee"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee retrieved successfully",
		"data":    employee,
	})
}

func UpdateEmployee(c *gin.Context) {
	var employee model.Employee
	if err := database.DB.First(&employee, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Employee not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch employee")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch employee"})
		}
		return
	}

	if fullName := c.PostForm("full_name"); fullName != "" {
		employee.FullName = fullName
	}
	if email := c.PostForm("email"); email != "" {
		employee.Email = email
	}
	if phone := c.PostForm("phone"); phone != "" {
		employee.Phone = phone
	}
	if address := c.PostForm("address"); address != "" {
		employee.Address = address
	}
	if role := c.PostForm("role"); role != "" {
		employeeRole := model.EmployeeRole(role)
		if employeeRole != model.RoleManager && employeeRole != model.RoleStaff {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid role"})
			return
		}
		employee.Role = employeeRole
	}
	if password := c.PostForm("password"); password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Error("Failed to hash employee password")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update employee"})
			return
		}
		employee.Password = string(hashedPassword)
	}

	avatar, err := saveUploadedImage(c, "avatar", "employee")
	if err != nil && !errors.Is(err, errNoFile) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if avatar != "" {
		if err := removeStoredImage(employee.Avatar); err != nil {
			logrus.WithError(err).Warn("Failed to remove old avatar")
		}
		employee.Avatar = avatar
	}

	if err := database.DB.Save(&employee).Error; err != nil {
		logrus.WithError(err).Error("Failed to update employee")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee updated successfully",
		"data":    employee,
	})
}

func DeleteEmployee(c *gin.Context) {
	var employee model.Employee
	if err := database.DB.First(&employee, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Employee not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch employee")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch employee"})
		}
		return
	}

	if err := database.DB.Delete(&employee).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete employee")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee deleted successfully",
		"data":    employee,
	})
}

package model

import (
	"gorm.io/gorm"
)

type EmployeeRole string

const (
	RoleManager EmployeeRole = "quản lý"
	RoleStaff   EmployeeRole = "nhân viên"
)

type Employee struct {
	gorm.Model
	FullName string       `json:"full_name"`
	Email    string       `json:"email" gorm:"index"`
	Phone    string       `json:"phone"`
	Address  string       `json:"address"`
	Username string       `json:"username" gorm:"index"`
	Password string       `json:"-"`
	Role     EmployeeRole `json:"role"`
	Avatar   string       `json:"avatar"`
}

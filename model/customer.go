package model

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	FullName    string     `json:"full_name"`
	Email       string     `json:"email" gorm:"index"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      string     `json:"gender"`
	Username    string     `json:"username" gorm:"index"`
	Password    string     `json:"-"`
}

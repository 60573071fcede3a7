package model

import (
	"time"

	"gorm.io/gorm"
)

type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
	NewsStatusScheduled NewsStatus = "scheduled"
)

type News struct {
	gorm.Model
	Title         string     `json:"title"`
	Content       string     `json:"content" gorm:"type:text"`
	EmployeeID    *uint      `json:"employee_id"`
	Employee      *Employee  `json:"employee,omitempty"`
	Status        NewsStatus `json:"status" gorm:"type:varchar(20)"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Image         string     `json:"image"`
}

// ValidNewsStatus reports whether s is one of the known news statuses.
func ValidNewsStatus(s NewsStatus) bool {
	switch s {
	case NewsStatusDraft, NewsStatusPublished, NewsStatusScheduled:
		return true
	}
	return false
}

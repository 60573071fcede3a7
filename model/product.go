package model

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	Description     string     `json:"description" gorm:"type:text"`
	Image           string     `json:"image"`
	Price           float64    `json:"price"`
	DiscountPercent float64    `json:"discount_percent"`
	StockQuantity   int        `json:"stock_quantity"`
	PublisherID     *uint      `json:"publisher_id"`
	Publisher       *Publisher `json:"publisher,omitempty"`
}

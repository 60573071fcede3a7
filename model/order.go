package model

import "gorm.io/gorm"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipping   OrderStatus = "shipping"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderTypeGuest      OrderType = "guest"
	OrderTypeRegistered OrderType = "registered"
)

type Order struct {
	gorm.Model
	CustomerID      *uint       `json:"customer_id"`
	Customer        *Customer   `json:"customer,omitempty"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []OrderItem `json:"items"`
	TotalPrice      float64     `json:"total_price"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);index"`
	OrderType       OrderType   `json:"order_type" gorm:"type:varchar(20)"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint     `json:"order_id" gorm:"index"`
	ProductID uint     `json:"product_id"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipping, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

package model

import "gorm.io/gorm"

type PurchaseOrder struct {
	gorm.Model
	EmployeeID  uint                `json:"employee_id"`
	Employee    *Employee           `json:"employee,omitempty"`
	PublisherID uint                `json:"publisher_id"`
	Publisher   *Publisher          `json:"publisher,omitempty"`
	Note        string              `json:"note"`
	Items       []PurchaseOrderItem `json:"items"`
}

type PurchaseOrderItem struct {
	gorm.Model
	PurchaseOrderID uint     `json:"purchase_order_id" gorm:"index"`
	ProductID       uint     `json:"product_id"`
	Product         *Product `json:"product,omitempty"`
	Title           string   `json:"title"`
	Quantity        int      `json:"quantity"`
	ImportPrice     float64  `json:"import_price"`
}

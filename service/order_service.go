package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"skybooks/model"
)

var (
	// ErrInvalidOrder marks a payload rejected before anything is persisted.
	ErrInvalidOrder = errors.New("invalid order")
	// ErrProductNotFound marks an order referencing an unknown product.
	ErrProductNotFound = errors.New("product not found")
)

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerPhone   string             `json:"customer_phone" binding:"required"`
	CustomerEmail   string             `json:"customer_email"`
	ShippingAddress string             `json:"shipping_address" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Validate applies the pre-persistence checks: contact fields and shipping
// address must be non-blank and the item list non-empty with positive
// quantities.
func (r *PlaceOrderRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidOrder)
	}
	if strings.TrimSpace(r.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidOrder)
	}
	if strings.TrimSpace(r.ShippingAddress) == "" {
		return fmt.Errorf("%w: shipping address is required", ErrInvalidOrder)
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", ErrInvalidOrder)
	}
	for _, item := range r.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidOrder)
		}
	}
	return nil
}

// UnitPrice is the discount-adjusted sale price of a product. A missing
// discount counts as zero.
func UnitPrice(p *model.Product) float64 {
	return p.Price * (1 - p.DiscountPercent/100)
}

// PlaceOrder creates an order and decrements stock for every item inside a
// single transaction. An unknown product fails the whole request and leaves
// no order behind. Stock may go negative: there is no quantity-versus-stock
// check in the order contract.
func PlaceOrder(db *gorm.DB, req *PlaceOrderRequest, orderType model.OrderType, customerID *uint) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order := &model.Order{
		CustomerID:      customerID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Status:          model.OrderStatusPending,
		OrderType:       orderType,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		for _, item := range req.Items {
			var product model.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %d", ErrProductNotFound, item.ProductID)
				}
				return err
			}

			unit := UnitPrice(&product)
			total += unit * float64(item.Quantity)
			order.Items = append(order.Items, model.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: unit,
			})
		}
		order.TotalPrice = total

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			if err := tx.Model(&model.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"order_type":  order.OrderType,
		"total_price": order.TotalPrice,
		"items":       len(order.Items),
	}).Info("Order placed")

	return order, nil
}

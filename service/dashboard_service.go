package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"skybooks/model"
)

type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

var ErrInvalidGranularity = errors.New("invalid granularity")

// RevenuePoint is one bucket of the revenue series. SortKey is zero-padded
// so lexical order equals chronological order; Label is what the chart axis
// shows.
type RevenuePoint struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Week         int     `json:"week"`
	Day          int     `json:"day"`
	SortKey      string  `json:"sort_key"`
	Label        string  `json:"label"`
	TotalRevenue float64 `json:"totalRevenue"`
	OrderCount   int     `json:"orderCount"`
}

// RevenueSeries groups non-cancelled orders into revenue buckets for the
// requested granularity, summed and sorted ascending.
func RevenueSeries(db *gorm.DB, granularity Granularity) ([]RevenuePoint, error) {
	switch granularity {
	case GranularityDaily, GranularityWeekly, GranularityMonthly, GranularityYearly:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidGranularity, granularity)
	}

	var orders []model.Order
	if err := db.Where("status <> ?", model.OrderStatusCancelled).Find(&orders).Error; err != nil {
		return nil, err
	}

	groups := make(map[string]*RevenuePoint)
	for _, order := range orders {
		year, month, day := order.CreatedAt.Date()
		isoYear, isoWeek := order.CreatedAt.ISOWeek()

		var key, label string
		switch granularity {
		case GranularityDaily:
			key = fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
			label = fmt.Sprintf("%02d/%02d/%04d", day, int(month), year)
		case GranularityWeekly:
			key = fmt.Sprintf("%04d-W%02d", isoYear, isoWeek)
			label = fmt.Sprintf("Week %d, %d", isoWeek, isoYear)
		case GranularityMonthly:
			key = fmt.Sprintf("%04d-%02d", year, int(month))
			label = fmt.Sprintf("%02d/%04d", int(month), year)
		case GranularityYearly:
			key = fmt.Sprintf("%04d", year)
			label = fmt.Sprintf("%d", year)
		}

		point := groups[key]
		if point == nil {
			point = &RevenuePoint{
				Year:    year,
				Month:   int(month),
				Week:    isoWeek,
				Day:     day,
				SortKey: key,
				Label:   label,
			}
			groups[key] = point
		}
		point.TotalRevenue += order.TotalPrice
		point.OrderCount++
	}

	points := make([]RevenuePoint, 0, len(groups))
	for _, point := range groups {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].SortKey < points[j].SortKey })

	return points, nil
}

type Overview struct {
	TotalCustomers int64   `json:"total_customers"`
	TotalEmployees int64   `json:"total_employees"`
	TotalProducts  int64   `json:"total_products"`
	TotalOrders    int64   `json:"total_orders"`
	TotalNews      int64   `json:"total_news"`
	TotalRevenue   float64 `json:"total_revenue"`
}

func GetOverview(db *gorm.DB) (*Overview, error) {
	overview := &Overview{}

	counts := []struct {
		entity interface{}
		dest   *int64
	}{
		{&model.Customer{}, &overview.TotalCustomers},
		{&model.Employee{}, &overview.TotalEmployees},
		{&model.Product{}, &overview.TotalProducts},
		{&model.Order{}, &overview.TotalOrders},
		{&model.News{}, &overview.TotalNews},
	}
	for _, c := range counts {
		if err := db.Model(c.entity).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Model(&model.Order{}).
		Where("status <> ?", model.OrderStatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&overview.TotalRevenue).Error; err != nil {
		return nil, err
	}

	return overview, nil
}

type ProductSales struct {
	ProductID    uint    `json:"product_id"`
	Title        string  `json:"title"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// TopProducts returns the best sellers by quantity across all order items.
func TopProducts(db *gorm.DB, limit int) ([]ProductSales, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []ProductSales
	err := db.Model(&model.OrderItem{}).
		Select("order_items.product_id, products.title, SUM(order_items.quantity) AS quantity_sold, SUM(order_items.unit_price * order_items.quantity) AS revenue").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("order_items.product_id, products.title").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type MonthCount struct {
	SortKey string `json:"sort_key"`
	Label   string `json:"label"`
	Count   int    `json:"count"`
}

// CustomerGrowth buckets customer registrations per month over the last
// `months` months, oldest first. Months with no signups are present with a
// zero count so the chart axis stays continuous.
func CustomerGrowth(db *gorm.DB, months int) ([]MonthCount, error) {
	if months <= 0 {
		months = 12
	}

	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	var customers []model.Customer
	if err := db.Where("created_at >= ?", since).Find(&customers).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]*MonthCount, months)
	points := make([]MonthCount, 0, months)
	for i := 0; i < months; i++ {
		m := since.AddDate(0, i, 0)
		key := fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month()))
		points = append(points, MonthCount{
			SortKey: key,
			Label:   fmt.Sprintf("%02d/%04d", int(m.Month()), m.Year()),
		})
		buckets[key] = &points[len(points)-1]
	}

	for _, customer := range customers {
		key := fmt.Sprintf("%04d-%02d", customer.CreatedAt.Year(), int(customer.CreatedAt.Month()))
		if bucket, ok := buckets[key]; ok {
			bucket.Count++
		}
	}

	return points, nil
}

type StatusCount struct {
	Status model.OrderStatus `json:"status"`
	Count  int64             `json:"count"`
}

func OrderStatusCounts(db *gorm.DB) ([]StatusCount, error) {
	var rows []StatusCount
	err := db.Model(&model.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skybooks/database"
	"skybooks/model"
)

func TestDashboardRequiresManagerRole(t *testing.T) {
	router := setupRouter(t)

	staff := tokenFor(t, string(model.RoleStaff), 2)
	w := doJSON(router, http.MethodGet, "/api/dashboard/overview", nil, staff)
	assert.Equal(t, http.StatusForbidden, w.Code)

	manager := tokenFor(t, string(model.RoleManager), 1)
	w = doJSON(router, http.MethodGet, "/api/dashboard/overview", nil, manager)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardRevenue(t *testing.T) {
	router := setupRouter(t)
	manager := tokenFor(t, string(model.RoleManager), 1)

	w := doJSON(router, http.MethodGet, "/api/dashboard/revenue?granularity=monthly", nil, manager)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["no_data"], "empty store reports the explicit no-data state")

	order := model.Order{
		CustomerName:    "Guest",
		CustomerPhone:   "0900000000",
		ShippingAddress: "somewhere",
		TotalPrice:      5000,
		Status:          model.OrderStatusCompleted,
		OrderType:       model.OrderTypeGuest,
	}
	require.NoError(t, database.DB.Create(&order).Error)

	w = doJSON(router, http.MethodGet, "/api/dashboard/revenue?granularity=monthly", nil, manager)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["no_data"])
	assert.Len(t, body["data"], 1)
}

func TestDashboardRevenueRejectsUnknownGranularity(t *testing.T) {
	router := setupRouter(t)
	manager := tokenFor(t, string(model.RoleManager), 1)

	w := doJSON(router, http.MethodGet, "/api/dashboard/revenue?granularity=hourly", nil, manager)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardRevenueExport(t *testing.T) {
	router := setupRouter(t)
	manager := tokenFor(t, string(model.RoleManager), 1)

	order := model.Order{
		CustomerName:    "Guest",
		CustomerPhone:   "0900000000",
		ShippingAddress: "somewhere",
		TotalPrice:      5000,
		Status:          model.OrderStatusCompleted,
		OrderType:       model.OrderTypeGuest,
	}
	require.NoError(t, database.DB.Create(&order).Error)

	w := doJSON(router, http.MethodGet, "/api/dashboard/revenue/export", nil, manager)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "revenue-monthly.xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestEmployeeRoutesRequireManager(t *testing.T) {
	router := setupRouter(t)

	staff := tokenFor(t, string(model.RoleStaff), 2)
	w := doJSON(router, http.MethodGet, "/api/employee", nil, staff)
	assert.Equal(t, http.StatusForbidden, w.Code)

	manager := tokenFor(t, string(model.RoleManager), 1)
	w = doJSON(router, http.MethodGet, "/api/employee", nil, manager)
	assert.Equal(t, http.StatusOK, w.Code)
}

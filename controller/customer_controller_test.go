package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skybooks/database"
	"skybooks/model"
)

func TestRegisterAndLoginCustomer(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/customer", map[string]interface{}{
		"full_name": "Nguyen Van A",
		"email":     "a@example.com",
		"phone":     "0901234567",
		"username":  "nguyena",
		"password":  "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPost, "/api/customer/login", map[string]interface{}{
		"username": "nguyena",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["access_token"])
	assert.NotEmpty(t, body["refresh_token"])
}

func TestRegisterCustomerValidation(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/customer", map[string]interface{}{
		"full_name": "No Email",
		"phone":     "0901234567",
		"username":  "noemail",
		"password":  "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, database.DB.Model(&model.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoginCustomerWrongPassword(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/customer", map[string]interface{}{
		"full_name": "Nguyen Van A",
		"email":     "a@example.com",
		"phone":     "0901234567",
		"username":  "nguyena",
		"password":  "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/customer/login", map[string]interface{}{
		"username": "nguyena",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCustomerListRequiresToken(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodGet, "/api/customer", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCustomerDeleteIsIdempotentInEffect(t *testing.T) {
	router := setupRouter(t)
	token := tokenFor(t, string(model.RoleStaff), 1)

	customer := model.Customer{FullName: "To Delete", Username: "todelete", Password: "x"}
	require.NoError(t, database.DB.Create(&customer).Error)

	path := fmt.Sprintf("/api/customer/%d", customer.ID)

	w := doJSON(router, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// The removed record comes back in the response body.
	removed := decodeBody(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, customer.ID, removed["ID"])
	assert.Equal(t, "To Delete", removed["full_name"])

	w = doJSON(router, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerUpdateUnknownID(t *testing.T) {
	router := setupRouter(t)
	token := tokenFor(t, string(model.RoleStaff), 1)

	w := doJSON(router, http.MethodPut, "/api/customer/424242", map[string]interface{}{
		"full_name": "Ghost",
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

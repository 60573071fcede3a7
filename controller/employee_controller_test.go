package controller_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skybooks/controller"
	"skybooks/database"
	"skybooks/model"
)

func doForm(router *gin.Engine, method, path string, form url.Values, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateEmployeeAndLogin(t *testing.T) {
	router := setupRouter(t)
	manager := tokenFor(t, string(model.RoleManager), 1)

	w := doForm(router, http.MethodPost, "/api/employee", url.Values{
		"full_name": {"Le Van C"},
		"username":  {"levanc"},
		"password":  {"secret123"},
		"role":      {string(model.RoleStaff)},
		"email":     {"c@skybooks.vn"},
	}, manager)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPost, "/api/employee/login", map[string]interface{}{
		"username": "levanc",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, string(model.RoleStaff), body["role"])
	assert.NotEmpty(t, body["access_token"])
}

func TestCreateEmployeeRejectsUnknownRole(t *testing.T) {
	router := setupRouter(t)
	manager := tokenFor(t, string(model.RoleManager), 1)

	w := doForm(router, http.MethodPost, "/api/employee", url.Values{
		"full_name": {"Le Van C"},
		"username":  {"levanc"},
		"password":  {"secret123"},
		"role":      {"superadmin"},
	}, manager)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, database.DB.Model(&model.Employee{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNewsLifecycle(t *testing.T) {
	router := setupRouter(t)
	token := tokenFor(t, string(model.RoleStaff), 3)

	w := doForm(router, http.MethodPost, "/api/news", url.Values{
		"title":          {"Khai trương chi nhánh mới"},
		"content":        {"Nội dung bài viết"},
		"status":         {string(model.NewsStatusScheduled)},
		"scheduled_date": {"2026-10-01"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var news model.News
	require.NoError(t, database.DB.First(&news).Error)
	require.NotNil(t, news.EmployeeID)
	assert.EqualValues(t, 3, *news.EmployeeID)
	require.NotNil(t, news.ScheduledDate)
	assert.Equal(t, model.NewsStatusScheduled, news.Status)

	path := "/api/news/" + itoa(news.ID)

	w = doForm(router, http.MethodPut, path, url.Values{
		"status": {string(model.NewsStatusPublished)},
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func doImageForm(t *testing.T, router *gin.Engine, path string, fields map[string]string, fileName string, fileContents []byte, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("image", fileName)
	require.NoError(t, err)
	_, err = fw.Write(fileContents)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", authHeader)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewsRejectsInvalidImageType(t *testing.T) {
	router := setupRouter(t)
	dir := t.TempDir()
	controller.SetUploadDir(dir)
	token := tokenFor(t, string(model.RoleStaff), 3)

	w := doImageForm(t, router, "/api/news", map[string]string{
		"title":   "Ảnh sai định dạng",
		"content": "Nội dung",
	}, "banner.gif", []byte("GIF89a"), token)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var count int64
	require.NoError(t, database.DB.Model(&model.News{}).Count(&count).Error)
	assert.Zero(t, count)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewsRejectsOversizedImage(t *testing.T) {
	router := setupRouter(t)
	dir := t.TempDir()
	controller.SetUploadDir(dir)
	token := tokenFor(t, string(model.RoleStaff), 3)

	w := doImageForm(t, router, "/api/news", map[string]string{
		"title":   "Ảnh quá lớn",
		"content": "Nội dung",
	}, "banner.jpg", make([]byte, 5<<20+1), token)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var count int64
	require.NoError(t, database.DB.Model(&model.News{}).Count(&count).Error)
	assert.Zero(t, count)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewsRejectsInvalidStatus(t *testing.T) {
	router := setupRouter(t)
	token := tokenFor(t, string(model.RoleStaff), 3)

	w := doForm(router, http.MethodPost, "/api/news", url.Values{
		"title":   {"Bad"},
		"content": {"Bad"},
		"status":  {"archived"},
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

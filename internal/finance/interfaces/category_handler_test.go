package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
	"github.com/stretchr/testify/assert"
)

func TestViewAllCategories_ReturnsOwnersAndInactiveRows(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/accounts/view_all_categories/", nil)
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{
		all: []domain.CategoryWithOwner{
			{Category: domain.Category{ID: 1, Name: "Comida", Description: "Food", Color: "#ff0000", IsActive: true}, OwnerName: "Ana Ruiz"},
			{Category: domain.Category{ID: 2, Name: "Viajes", Description: "Travel", Color: "#00ff00", IsActive: false}, OwnerName: "Ana Ruiz"},
		},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondStatus)
	handler.ViewAllCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Categories []map[string]interface{} `json:"categories"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Len(t, response.Categories, 2)
	assert.Equal(t, "Ana Ruiz", response.Categories[0]["user"])
	assert.Equal(t, "#ff0000", response.Categories[0]["category_color"])
	assert.Equal(t, false, response.Categories[1]["is_active"])
}

func TestViewAllCategories_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/accounts/view_all_categories/", nil)
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondStatus)
	handler.ViewAllCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Equal(t, 0, w.Body.Len())
}

func TestViewUserCategories_UserNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/accounts/view_user_categories/99/", nil)
	req.SetPathValue("user_id", "99")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{err: financeErrors.NewNotFoundError("user")}
	handler := NewCategoryHandler(mockService, respondJSON, respondStatus)
	handler.ViewUserCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, 0, w.Body.Len())
}

func TestViewUserCategories_NonNumericID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/accounts/view_user_categories/abc/", nil)
	req.SetPathValue("user_id", "abc")
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondStatus)
	handler.ViewUserCategories(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestViewUserCategories_EmptyIsNoContent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/accounts/view_user_categories/1/", nil)
	req.SetPathValue("user_id", "1")
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondStatus)
	handler.ViewUserCategories(w, req)

	assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
}

func TestViewSingleCategory_ReturnsEnvelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/accounts/view_single_category/3/", nil)
	req.SetPathValue("category_id", "3")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{
		category: &domain.Category{ID: 3, Name: "Comida", Description: "Food", Color: "#ff0000", IsActive: true},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondStatus)
	handler.ViewSingleCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Category map[string]interface{} `json:"category"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, float64(3), response.Category["id"])
	assert.Equal(t, "Comida", response.Category["name"])
	assert.Equal(t, "#ff0000", response.Category["category_color"])
}

func TestViewSingleCategory_InactiveIsNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/accounts/view_single_category/3/", nil)
	req.SetPathValue("category_id", "3")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{err: financeErrors.NewNotFoundError("category")}
	handler := NewCategoryHandler(mockService, respondJSON, respondStatus)
	handler.ViewSingleCategory(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestRegisterCategory_Success(t *testing.T) {
	body := `{"user_id":1,"name":"Comida","description":"Food","color":"#ff0000"}`
	req := httptest.NewRequest(http.MethodPost, "/accounts/register_category/", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{}
	handler := NewCategoryHandler(mockService, respondJSON, respondStatus)
	handler.RegisterCategory(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, 0, w.Body.Len())
	assert.True(t, mockService.registerCalled)
}

func TestRegisterCategory_MissingFieldIsBadRequest(t *testing.T) {
	body := `{"user_id":1,"name":"Comida","description":"Food"}`
	req := httptest.NewRequest(http.MethodPost, "/accounts/register_category/", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{}
	handler := NewCategoryHandler(mockService, respondJSON, respondStatus)
	handler.RegisterCategory(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	assert.False(t, mockService.registerCalled)
}

func TestRegisterCategory_UnknownUserIsNotFound(t *testing.T) {
	body := `{"user_id":99,"name":"Comida","description":"Food","color":"#ff0000"}`
	req := httptest.NewRequest(http.MethodPost, "/accounts/register_category/", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{err: financeErrors.NewNotFoundError("user")}
	handler := NewCategoryHandler(mockService, respondJSON, respondStatus)
	handler.RegisterCategory(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestDeleteCategory_MissingIDIsBadRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/accounts/delete_category/", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{}
	handler := NewCategoryHandler(mockService, respondJSON, respondStatus)
	handler.DeleteCategory(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	assert.False(t, mockService.deleteCalled)
}

func TestDeleteCategory_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/accounts/delete_category/", strings.NewReader(`{"category_id":3}`))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{}
	handler := NewCategoryHandler(mockService, respondJSON, respondStatus)
	handler.DeleteCategory(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.True(t, mockService.deleteCalled)
}

package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
)

type CategoryServiceInterface interface {
	GetAllCategories() ([]domain.CategoryWithOwner, error)
	GetUserCategories(userID int) ([]domain.Category, error)
	GetCategory(categoryID int) (*domain.Category, error)
	RegisterCategory(userID int, name, description, color string) error
	UpdateCategory(categoryID int, name, description, color string) error
	DeleteCategory(categoryID int) error
}

type CategoryHandler struct {
	service       CategoryServiceInterface
	respondJSON   func(w http.ResponseWriter, status int, payload interface{})
	respondStatus func(w http.ResponseWriter, status int)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondStatus func(w http.ResponseWriter, status int),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondStatus == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:       service,
		respondJSON:   respondJSON,
		respondStatus: respondStatus,
	}
}

type categoryRow struct {
	ID           int          `json:"id"`
	User         string       `json:"user"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	RegisterDate domain.Date  `json:"register_date"`
	DeleteDate   *domain.Date `json:"delete_date"`
	IsActive     bool         `json:"is_active"`
	Color        string       `json:"category_color"`
}

type categoryItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"category_color"`
}

// ViewAllCategories lists every category, inactive ones included, with the
// owner's full name inlined.
func (h *CategoryHandler) ViewAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}
	if len(categories) == 0 {
		h.respondStatus(w, http.StatusNoContent)
		return
	}

	rows := make([]categoryRow, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, categoryRow{
			ID:           category.ID,
			User:         category.OwnerName,
			Name:         category.Name,
			Description:  category.Description,
			RegisterDate: category.RegisterDate,
			DeleteDate:   category.DeleteDate,
			IsActive:     category.IsActive,
			Color:        category.Color,
		})
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"categories": rows})
}

func (h *CategoryHandler) ViewUserCategories(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		h.respondStatus(w, http.StatusNotFound)
		return
	}

	categories, err := h.service.GetUserCategories(userID)
	if err != nil {
		if financeErrors.IsNotFoundError(err) {
			h.respondStatus(w, http.StatusNotFound)
			return
		}
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}
	if len(categories) == 0 {
		h.respondStatus(w, http.StatusNoContent)
		return
	}

	items := make([]categoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, categoryItem{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			Color:       category.Color,
		})
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"categories": items})
}

func (h *CategoryHandler) ViewSingleCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "category_id")
	if err != nil {
		h.respondStatus(w, http.StatusNotFound)
		return
	}

	category, err := h.service.GetCategory(categoryID)
	if err != nil {
		if financeErrors.IsNotFoundError(err) {
			h.respondStatus(w, http.StatusNotFound)
			return
		}
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"category": categoryItem{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
	}})
}

func (h *CategoryHandler) RegisterCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      *int    `json:"user_id"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Color       *string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.UserID == nil || req.Name == nil || req.Description == nil || req.Color == nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}

	err := h.service.RegisterCategory(*req.UserID, *req.Name, *req.Description, *req.Color)
	if err != nil {
		if financeErrors.IsNotFoundError(err) {
			h.respondStatus(w, http.StatusNotFound)
			return
		}
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}
	h.respondStatus(w, http.StatusOK)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID  *int    `json:"category_id"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Color       *string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.CategoryID == nil || req.Name == nil || req.Description == nil || req.Color == nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}

	err := h.service.UpdateCategory(*req.CategoryID, *req.Name, *req.Description, *req.Color)
	if err != nil {
		if financeErrors.IsNotFoundError(err) {
			h.respondStatus(w, http.StatusNotFound)
			return
		}
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}
	h.respondStatus(w, http.StatusOK)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID *int `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.CategoryID == nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}

	err := h.service.DeleteCategory(*req.CategoryID)
	if err != nil {
		if financeErrors.IsNotFoundError(err) {
			h.respondStatus(w, http.StatusNotFound)
			return
		}
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}
	h.respondStatus(w, http.StatusOK)
}

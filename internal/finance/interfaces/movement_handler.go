package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type MovementServiceInterface interface {
	GetAllMovements() ([]domain.MovementWithOwner, error)
	GetUserMovements(userID int) ([]domain.MovementDetail, error)
	GetMovement(movementID int) (*domain.MovementDetail, error)
	RegisterMovement(movement *domain.Movement) error
	UpdateMovement(movement domain.Movement) error
	DeleteMovement(movementID int) error
}

type MovementHandler struct {
	service       MovementServiceInterface
	respondJSON   func(w http.ResponseWriter, status int, payload interface{})
	respondStatus func(w http.ResponseWriter, status int)
}

func NewMovementHandler(
	service MovementServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondStatus func(w http.ResponseWriter, status int),
) *MovementHandler {
	if service == nil || respondJSON == nil || respondStatus == nil {
		panic("Service and response functions must not be nil")
	}
	return &MovementHandler{
		service:       service,
		respondJSON:   respondJSON,
		respondStatus: respondStatus,
	}
}

type movementRow struct {
	ID              int             `json:"id"`
	User            string          `json:"user"`
	Category        string          `json:"category"`
	Account         string          `json:"account"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Date            domain.Date     `json:"date"`
	Concept         string          `json:"concept"`
	AccountTransfer *int            `json:"account_transfer"`
	RegisterDate    domain.Date     `json:"register_date"`
	DeleteDate      *domain.Date    `json:"delete_date"`
	IsActive        bool            `json:"is_active"`
}

type movementItem struct {
	ID              int             `json:"id"`
	Category        string          `json:"category"`
	Account         string          `json:"account"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Date            domain.Date     `json:"date"`
	Concept         string          `json:"concept"`
	AccountTransfer *int            `json:"account_transfer"`
}

func newMovementItem(movement domain.MovementDetail) movementItem {
	return movementItem{
		ID:              movement.ID,
		Category:        movement.CategoryName,
		Account:         movement.AccountName,
		Amount:          movement.Amount,
		Type:            movement.Type,
		Date:            movement.Date,
		Concept:         movement.Concept,
		AccountTransfer: movement.AccountTransfer,
	}
}

func (h *MovementHandler) ViewAllMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.service.GetAllMovements()
	if err != nil {
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}
	if len(movements) == 0 {
		h.respondStatus(w, http.StatusNoContent)
		return
	}

	rows := make([]movementRow, 0, len(movements))
	for _, movement := range movements {
		rows = append(rows, movementRow{
			ID:              movement.ID,
			User:            movement.OwnerName,
			Category:        movement.CategoryName,
			Account:         movement.AccountName,
			Amount:          movement.Amount,
			Type:            movement.Type,
			Date:            movement.Date,
			Concept:         movement.Concept,
			AccountTransfer: movement.AccountTransfer,
			RegisterDate:    movement.RegisterDate,
			DeleteDate:      movement.DeleteDate,
			IsActive:        movement.IsActive,
		})
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"movements": rows})
}

func (h *MovementHandler) ViewUserMovements(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		h.respondStatus(w, http.StatusNotFound)
		return
	}

	movements, err := h.service.GetUserMovements(userID)
	if err != nil {
		if financeErrors.IsNotFoundError(err) {
			h.respondStatus(w, http.StatusNotFound)
			return
		}
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}
	if len(movements) == 0 {
		h.respondStatus(w, http.StatusNoContent)
		return
	}

	items := make([]movementItem, 0, len(movements))
	for _, movement := range movements {
		items = append(items, newMovementItem(movement))
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"movements": items})
}

func (h *MovementHandler) ViewSingleMovement(w http.ResponseWriter, r *http.Request) {
	movementID, err := pathID(r, "movement_id")
	if err != nil {
		h.respondStatus(w, http.StatusNotFound)
		return
	}

	movement, err := h.service.GetMovement(movementID)
	if err != nil {
		if financeErrors.IsNotFoundError(err) {
			h.respondStatus(w, http.StatusNotFound)
			return
		}
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"movement": newMovementItem(*movement)})
}

type movementPayload struct {
	UserID     *int             `json:"user_id"`
	MovementID *int             `json:"movement_id"`
	CategoryID *int             `json:"category_id"`
	AccountID  *int             `json:"account_id"`
	Amount     *decimal.Decimal `json:"amount"`
	Type       *string          `json:"type"`
	Date       *domain.Date     `json:"date"`
	Concept    *string          `json:"concept"`
	// The key must be present in the payload even when its value is null.
	AccountTransfer OptionalInt `json:"account_transfer_id"`
}

func (p *movementPayload) scalarsPresent() bool {
	return p.CategoryID != nil && p.AccountID != nil && p.Amount != nil &&
		p.Type != nil && p.Date != nil && p.Concept != nil && p.AccountTransfer.Present
}

func (h *MovementHandler) RegisterMovement(w http.ResponseWriter, r *http.Request) {
	var req movementPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.UserID == nil || !req.scalarsPresent() {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}

	movement := domain.Movement{
		UserID:          *req.UserID,
		CategoryID:      *req.CategoryID,
		AccountID:       *req.AccountID,
		Amount:          *req.Amount,
		Type:            *req.Type,
		Date:            *req.Date,
		Concept:         *req.Concept,
		AccountTransfer: req.AccountTransfer.Value,
	}
	err := h.service.RegisterMovement(&movement)
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

func (h *MovementHandler) UpdateMovement(w http.ResponseWriter, r *http.Request) {
	var req movementPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.MovementID == nil || !req.scalarsPresent() {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}

	movement := domain.Movement{
		ID:              *req.MovementID,
		CategoryID:      *req.CategoryID,
		AccountID:       *req.AccountID,
		Amount:          *req.Amount,
		Type:            *req.Type,
		Date:            *req.Date,
		Concept:         *req.Concept,
		AccountTransfer: req.AccountTransfer.Value,
	}
	err := h.service.UpdateMovement(movement)
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

func (h *MovementHandler) DeleteMovement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MovementID *int `json:"movement_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.MovementID == nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}

	err := h.service.DeleteMovement(*req.MovementID)
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

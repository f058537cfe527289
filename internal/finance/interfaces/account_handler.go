package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type AccountServiceInterface interface {
	GetAllAccounts() ([]domain.AccountWithOwner, error)
	GetUserAccounts(userID int) ([]domain.Account, error)
	GetAccount(accountID int) (*domain.Account, error)
	RegisterAccount(userID int, name, description string, money decimal.Decimal) error
	UpdateAccount(accountID int, name, description string, money decimal.Decimal) error
	DeleteAccount(accountID int) error
}

type AccountHandler struct {
	service       AccountServiceInterface
	respondJSON   func(w http.ResponseWriter, status int, payload interface{})
	respondStatus func(w http.ResponseWriter, status int)
}

func NewAccountHandler(
	service AccountServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondStatus func(w http.ResponseWriter, status int),
) *AccountHandler {
	if service == nil || respondJSON == nil || respondStatus == nil {
		panic("Service and response functions must not be nil")
	}
	return &AccountHandler{
		service:       service,
		respondJSON:   respondJSON,
		respondStatus: respondStatus,
	}
}

type accountRow struct {
	ID           int             `json:"id"`
	User         string          `json:"user"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Money        decimal.Decimal `json:"money"`
	RegisterDate domain.Date     `json:"register_date"`
	DeleteDate   *domain.Date    `json:"delete_date"`
	IsActive     bool            `json:"is_active"`
}

type accountItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Money       decimal.Decimal `json:"money"`
}

func (h *AccountHandler) ViewAllAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.GetAllAccounts()
	if err != nil {
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}
	if len(accounts) == 0 {
		h.respondStatus(w, http.StatusNoContent)
		return
	}

	rows := make([]accountRow, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, accountRow{
			ID:           account.ID,
			User:         account.OwnerName,
			Name:         account.Name,
			Description:  account.Description,
			Money:        account.Money,
			RegisterDate: account.RegisterDate,
			DeleteDate:   account.DeleteDate,
			IsActive:     account.IsActive,
		})
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"accounts": rows})
}

func (h *AccountHandler) ViewUserAccounts(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		h.respondStatus(w, http.StatusNotFound)
		return
	}

	accounts, err := h.service.GetUserAccounts(userID)
	if err != nil {
		if financeErrors.IsNotFoundError(err) {
			h.respondStatus(w, http.StatusNotFound)
			return
		}
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}
	if len(accounts) == 0 {
		h.respondStatus(w, http.StatusNoContent)
		return
	}

	items := make([]accountItem, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, accountItem{
			ID:          account.ID,
			Name:        account.Name,
			Description: account.Description,
			Money:       account.Money,
		})
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"accounts": items})
}

func (h *AccountHandler) ViewSingleAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "account_id")
	if err != nil {
		h.respondStatus(w, http.StatusNotFound)
		return
	}

	account, err := h.service.GetAccount(accountID)
	if err != nil {
		if financeErrors.IsNotFoundError(err) {
			h.respondStatus(w, http.StatusNotFound)
			return
		}
		h.respondStatus(w, http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"account": accountItem{
		ID:          account.ID,
		Name:        account.Name,
		Description: account.Description,
		Money:       account.Money,
	}})
}

func (h *AccountHandler) RegisterAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      *int             `json:"user_id"`
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Money       *decimal.Decimal `json:"money"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.UserID == nil || req.Name == nil || req.Description == nil || req.Money == nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}

	err := h.service.RegisterAccount(*req.UserID, *req.Name, *req.Description, *req.Money)
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

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountID   *int             `json:"account_id"`
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Money       *decimal.Decimal `json:"money"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.AccountID == nil || req.Name == nil || req.Description == nil || req.Money == nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}

	err := h.service.UpdateAccount(*req.AccountID, *req.Name, *req.Description, *req.Money)
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

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountID *int `json:"account_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.AccountID == nil {
		h.respondStatus(w, http.StatusBadRequest)
		return
	}

	err := h.service.DeleteAccount(*req.AccountID)
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

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID           int
	UserID       int
	Name         string
	Description  string
	Money        decimal.Decimal
	RegisterDate Date
	DeleteDate   *Date
	IsActive     bool
}

type AccountWithOwner struct {
	Account
	OwnerName string
}

type AccountRepository interface {
	FindAllWithOwner() ([]AccountWithOwner, error)
	FindActiveByUser(userID int) ([]Account, error)
	FindByID(accountID int) (*Account, error)
	Save(account *Account) error
	Update(account Account) error
	SoftDelete(accountID int, deletedAt time.Time) error
	DoesUserExistByID(userID int) (bool, error)
	DoesAccountExistByID(accountID int) (bool, error)
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Movement struct {
	ID         int
	UserID     int
	CategoryID int
	AccountID  int
	Amount     decimal.Decimal
	Type       string
	Date       Date
	Concept    string
	// AccountTransfer is a secondary account id for transfer movements.
	// It is stored as a bare integer and never validated against accounts.
	AccountTransfer *int
	RegisterDate    Date
	DeleteDate      *Date
	IsActive        bool
}

// MovementDetail inlines the category and account names, which the read
// endpoints return instead of raw foreign-key ids.
type MovementDetail struct {
	Movement
	CategoryName string
	AccountName  string
}

type MovementWithOwner struct {
	MovementDetail
	OwnerName string
}

type MovementRepository interface {
	FindAllWithOwner() ([]MovementWithOwner, error)
	FindActiveByUser(userID int) ([]MovementDetail, error)
	FindByID(movementID int) (*MovementDetail, error)
	Save(movement *Movement) error
	Update(movement Movement) error
	SoftDelete(movementID int, deletedAt time.Time) error
	DoesUserExistByID(userID int) (bool, error)
	DoesCategoryExistByID(categoryID int) (bool, error)
	DoesAccountExistByID(accountID int) (bool, error)
	DoesMovementExistByID(movementID int) (bool, error)
}

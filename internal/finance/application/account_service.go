package application

import (
	"time"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	repo domain.AccountRepository
}

func NewAccountService(repo domain.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) GetAllAccounts() ([]domain.AccountWithOwner, error) {
	return s.repo.FindAllWithOwner()
}

func (s *AccountService) GetUserAccounts(userID int) ([]domain.Account, error) {
	exists, err := s.repo.DoesUserExistByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.NewNotFoundError("user")
	}
	return s.repo.FindActiveByUser(userID)
}

func (s *AccountService) GetAccount(accountID int) (*domain.Account, error) {
	account, err := s.repo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, financeErrors.NewNotFoundError("account")
	}
	return account, nil
}

func (s *AccountService) RegisterAccount(userID int, name, description string, money decimal.Decimal) error {
	exists, err := s.repo.DoesUserExistByID(userID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("user")
	}

	account := domain.Account{
		UserID:      userID,
		Name:        name,
		Description: description,
		Money:       money,
	}
	return s.repo.Save(&account)
}

// UpdateAccount overwrites the balance with the supplied absolute value, no
// arithmetic is performed on the stored amount.
func (s *AccountService) UpdateAccount(accountID int, name, description string, money decimal.Decimal) error {
	exists, err := s.repo.DoesAccountExistByID(accountID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("account")
	}

	return s.repo.Update(domain.Account{
		ID:          accountID,
		Name:        name,
		Description: description,
		Money:       money,
	})
}

func (s *AccountService) DeleteAccount(accountID int) error {
	exists, err := s.repo.DoesAccountExistByID(accountID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("account")
	}
	return s.repo.SoftDelete(accountID, time.Now().UTC())
}

package interfaces

import (
	"github.com/denarius-project/denarius/internal/finance/domain"
	"github.com/shopspring/decimal"
)

type MockAccountService struct {
	all            []domain.AccountWithOwner
	userAccounts   []domain.Account
	account        *domain.Account
	err            error
	registerCalled bool
	updatedMoney   decimal.Decimal
}

func (m *MockAccountService) GetAllAccounts() ([]domain.AccountWithOwner, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.all, nil
}

func (m *MockAccountService) GetUserAccounts(userID int) ([]domain.Account, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.userAccounts, nil
}

func (m *MockAccountService) GetAccount(accountID int) (*domain.Account, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.account, nil
}

func (m *MockAccountService) RegisterAccount(userID int, name, description string, money decimal.Decimal) error {
	m.registerCalled = true
	return m.err
}

func (m *MockAccountService) UpdateAccount(accountID int, name, description string, money decimal.Decimal) error {
	m.updatedMoney = money
	return m.err
}

func (m *MockAccountService) DeleteAccount(accountID int) error {
	return m.err
}

package application

import (
	"time"

	"github.com/denarius-project/denarius/internal/finance/domain"
)

type MockMovementRepository struct {
	all            []domain.MovementWithOwner
	active         []domain.MovementDetail
	movement       *domain.MovementDetail
	err            error
	userExists     bool
	catExists      bool
	accountExists  bool
	movementExists bool

	saved     *domain.Movement
	updated   *domain.Movement
	deletedID int
}

func (m *MockMovementRepository) FindAllWithOwner() ([]domain.MovementWithOwner, error) {
	return m.all, m.err
}

func (m *MockMovementRepository) FindActiveByUser(userID int) ([]domain.MovementDetail, error) {
	return m.active, m.err
}

func (m *MockMovementRepository) FindByID(movementID int) (*domain.MovementDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.movement, nil
}

func (m *MockMovementRepository) Save(movement *domain.Movement) error {
	if m.err != nil {
		return m.err
	}
	movement.ID = 1
	movement.IsActive = true
	m.saved = movement
	return nil
}

func (m *MockMovementRepository) Update(movement domain.Movement) error {
	if m.err != nil {
		return m.err
	}
	m.updated = &movement
	return nil
}

func (m *MockMovementRepository) SoftDelete(movementID int, deletedAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = movementID
	return nil
}

func (m *MockMovementRepository) DoesUserExistByID(userID int) (bool, error) {
	return m.userExists, nil
}

func (m *MockMovementRepository) DoesCategoryExistByID(categoryID int) (bool, error) {
	return m.catExists, nil
}

func (m *MockMovementRepository) DoesAccountExistByID(accountID int) (bool, error) {
	return m.accountExists, nil
}

func (m *MockMovementRepository) DoesMovementExistByID(movementID int) (bool, error) {
	return m.movementExists, nil
}

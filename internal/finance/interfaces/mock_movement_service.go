package interfaces

import (
	"github.com/denarius-project/denarius/internal/finance/domain"
)

type MockMovementService struct {
	all           []domain.MovementWithOwner
	userMovements []domain.MovementDetail
	movement      *domain.MovementDetail
	err           error
	registered    *domain.Movement
	updated       *domain.Movement
}

func (m *MockMovementService) GetAllMovements() ([]domain.MovementWithOwner, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.all, nil
}

func (m *MockMovementService) GetUserMovements(userID int) ([]domain.MovementDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.userMovements, nil
}

func (m *MockMovementService) GetMovement(movementID int) (*domain.MovementDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.movement, nil
}

func (m *MockMovementService) RegisterMovement(movement *domain.Movement) error {
	if m.err != nil {
		return m.err
	}
	m.registered = movement
	return nil
}

func (m *MockMovementService) UpdateMovement(movement domain.Movement) error {
	if m.err != nil {
		return m.err
	}
	m.updated = &movement
	return nil
}

func (m *MockMovementService) DeleteMovement(movementID int) error {
	return m.err
}

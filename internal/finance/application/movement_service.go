package application

import (
	"time"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
)

type MovementService struct {
	repo domain.MovementRepository
}

func NewMovementService(repo domain.MovementRepository) *MovementService {
	return &MovementService{repo: repo}
}

func (s *MovementService) GetAllMovements() ([]domain.MovementWithOwner, error) {
	return s.repo.FindAllWithOwner()
}

// GetUserMovements returns the user's active movements ordered by the
// transaction date, not the registration date.
func (s *MovementService) GetUserMovements(userID int) ([]domain.MovementDetail, error) {
	exists, err := s.repo.DoesUserExistByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.NewNotFoundError("user")
	}
	return s.repo.FindActiveByUser(userID)
}

func (s *MovementService) GetMovement(movementID int) (*domain.MovementDetail, error) {
	movement, err := s.repo.FindByID(movementID)
	if err != nil {
		return nil, err
	}
	if !movement.IsActive {
		return nil, financeErrors.NewNotFoundError("movement")
	}
	return movement, nil
}

// checkReferences resolves the three foreign keys a movement write requires.
// Inactive records still resolve; soft-deleting an owner does not block
// new movements referencing it.
func (s *MovementService) checkReferences(userID, categoryID, accountID int) error {
	exists, err := s.repo.DoesUserExistByID(userID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("user")
	}

	exists, err = s.repo.DoesCategoryExistByID(categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("category")
	}

	exists, err = s.repo.DoesAccountExistByID(accountID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("account")
	}
	return nil
}

func (s *MovementService) RegisterMovement(movement *domain.Movement) error {
	if err := s.checkReferences(movement.UserID, movement.CategoryID, movement.AccountID); err != nil {
		return err
	}
	return s.repo.Save(movement)
}

func (s *MovementService) UpdateMovement(movement domain.Movement) error {
	exists, err := s.repo.DoesMovementExistByID(movement.ID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("movement")
	}

	exists, err = s.repo.DoesCategoryExistByID(movement.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("category")
	}

	exists, err = s.repo.DoesAccountExistByID(movement.AccountID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("account")
	}

	return s.repo.Update(movement)
}

func (s *MovementService) DeleteMovement(movementID int) error {
	exists, err := s.repo.DoesMovementExistByID(movementID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("movement")
	}
	return s.repo.SoftDelete(movementID, time.Now().UTC())
}

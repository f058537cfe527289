package application

import (
	"testing"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestMovement() *domain.Movement {
	date, _ := domain.ParseDate("2024-03-01")
	return &domain.Movement{
		UserID:     1,
		CategoryID: 2,
		AccountID:  3,
		Amount:     decimal.RequireFromString("25.40"),
		Type:       "expense",
		Date:       date,
		Concept:    "Groceries",
	}
}

func TestRegisterMovement_ChecksReferencesInOrder(t *testing.T) {
	tests := []struct {
		name     string
		repo     *MockMovementRepository
		resource string
	}{
		{"unknown user", &MockMovementRepository{}, "user"},
		{"unknown category", &MockMovementRepository{userExists: true}, "category"},
		{"unknown account", &MockMovementRepository{userExists: true, catExists: true}, "account"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewMovementService(tt.repo)

			err := service.RegisterMovement(newTestMovement())
			var notFound *financeErrors.NotFoundError
			if assert.ErrorAs(t, err, &notFound) {
				assert.Equal(t, tt.resource, notFound.Resource)
			}
			assert.Nil(t, tt.repo.saved)
		})
	}
}

func TestRegisterMovement_SavesWhenReferencesResolve(t *testing.T) {
	repo := &MockMovementRepository{userExists: true, catExists: true, accountExists: true}
	service := NewMovementService(repo)

	movement := newTestMovement()
	err := service.RegisterMovement(movement)
	assert.NoError(t, err)
	assert.Equal(t, movement, repo.saved)
	assert.True(t, movement.IsActive)
}

func TestGetUserMovements_UnknownUser(t *testing.T) {
	service := NewMovementService(&MockMovementRepository{userExists: false})

	_, err := service.GetUserMovements(99)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestGetMovement_InactiveIsNotFound(t *testing.T) {
	repo := &MockMovementRepository{
		movement: &domain.MovementDetail{Movement: domain.Movement{ID: 1, IsActive: false}},
	}
	service := NewMovementService(repo)

	_, err := service.GetMovement(1)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestUpdateMovement_UnknownMovement(t *testing.T) {
	repo := &MockMovementRepository{catExists: true, accountExists: true}
	service := NewMovementService(repo)

	err := service.UpdateMovement(*newTestMovement())
	var notFound *financeErrors.NotFoundError
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "movement", notFound.Resource)
	}
	assert.Nil(t, repo.updated)
}

func TestUpdateMovement_ChecksCategoryAndAccount(t *testing.T) {
	repo := &MockMovementRepository{movementExists: true, catExists: true}
	service := NewMovementService(repo)

	err := service.UpdateMovement(*newTestMovement())
	var notFound *financeErrors.NotFoundError
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "account", notFound.Resource)
	}
}

func TestUpdateMovement_Success(t *testing.T) {
	repo := &MockMovementRepository{movementExists: true, catExists: true, accountExists: true}
	service := NewMovementService(repo)

	movement := *newTestMovement()
	movement.ID = 10
	err := service.UpdateMovement(movement)
	assert.NoError(t, err)
	if assert.NotNil(t, repo.updated) {
		assert.Equal(t, 10, repo.updated.ID)
	}
}

func TestDeleteMovement_UnknownMovement(t *testing.T) {
	service := NewMovementService(&MockMovementRepository{movementExists: false})

	err := service.DeleteMovement(99)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestDeleteMovement_Success(t *testing.T) {
	repo := &MockMovementRepository{movementExists: true}
	service := NewMovementService(repo)

	assert.NoError(t, service.DeleteMovement(10))
	assert.Equal(t, 10, repo.deletedID)
}

package application

import (
	"time"

	"github.com/denarius-project/denarius/internal/finance/domain"
)

type MockCategoryRepository struct {
	all        []domain.CategoryWithOwner
	active     []domain.Category
	category   *domain.Category
	err        error
	userExists bool
	catExists  bool

	saved     *domain.Category
	updated   *domain.Category
	deletedID int
	deletedAt time.Time
}

func (m *MockCategoryRepository) FindAllWithOwner() ([]domain.CategoryWithOwner, error) {
	return m.all, m.err
}

func (m *MockCategoryRepository) FindActiveByUser(userID int) ([]domain.Category, error) {
	return m.active, m.err
}

func (m *MockCategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.category, nil
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.err != nil {
		return m.err
	}
	category.ID = 1
	category.IsActive = true
	m.saved = category
	return nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	if m.err != nil {
		return m.err
	}
	m.updated = &category
	return nil
}

func (m *MockCategoryRepository) SoftDelete(categoryID int, deletedAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = categoryID
	m.deletedAt = deletedAt
	return nil
}

func (m *MockCategoryRepository) DoesUserExistByID(userID int) (bool, error) {
	return m.userExists, nil
}

func (m *MockCategoryRepository) DoesCategoryExistByID(categoryID int) (bool, error) {
	return m.catExists, nil
}

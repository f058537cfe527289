package interfaces

import (
	"github.com/denarius-project/denarius/internal/finance/domain"
)

type MockCategoryService struct {
	all            []domain.CategoryWithOwner
	userCategories []domain.Category
	category       *domain.Category
	err            error
	registerCalled bool
	deleteCalled   bool
}

func (m *MockCategoryService) GetAllCategories() ([]domain.CategoryWithOwner, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.all, nil
}

func (m *MockCategoryService) GetUserCategories(userID int) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.userCategories, nil
}

func (m *MockCategoryService) GetCategory(categoryID int) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.category, nil
}

func (m *MockCategoryService) RegisterCategory(userID int, name, description, color string) error {
	m.registerCalled = true
	return m.err
}

func (m *MockCategoryService) UpdateCategory(categoryID int, name, description, color string) error {
	return m.err
}

func (m *MockCategoryService) DeleteCategory(categoryID int) error {
	m.deleteCalled = true
	return m.err
}

package application

import (
	"time"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetAllCategories returns every category, active or not, ordered by owner.
func (s *CategoryService) GetAllCategories() ([]domain.CategoryWithOwner, error) {
	return s.repo.FindAllWithOwner()
}

func (s *CategoryService) GetUserCategories(userID int) ([]domain.Category, error) {
	exists, err := s.repo.DoesUserExistByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.NewNotFoundError("user")
	}
	return s.repo.FindActiveByUser(userID)
}

// GetCategory treats inactive categories as not found.
func (s *CategoryService) GetCategory(categoryID int) (*domain.Category, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, financeErrors.NewNotFoundError("category")
	}
	return category, nil
}

func (s *CategoryService) RegisterCategory(userID int, name, description, color string) error {
	exists, err := s.repo.DoesUserExistByID(userID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("user")
	}

	category := domain.Category{
		UserID:      userID,
		Name:        name,
		Description: description,
		Color:       color,
	}
	return s.repo.Save(&category)
}

func (s *CategoryService) UpdateCategory(categoryID int, name, description, color string) error {
	exists, err := s.repo.DoesCategoryExistByID(categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("category")
	}

	return s.repo.Update(domain.Category{
		ID:          categoryID,
		Name:        name,
		Description: description,
		Color:       color,
	})
}

// DeleteCategory flips the active flag and stamps the deletion time. Deleting
// an already inactive category succeeds and re-stamps the date.
func (s *CategoryService) DeleteCategory(categoryID int) error {
	exists, err := s.repo.DoesCategoryExistByID(categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.NewNotFoundError("category")
	}
	return s.repo.SoftDelete(categoryID, time.Now().UTC())
}

package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAllWithOwner() ([]domain.CategoryWithOwner, error) {
	query := `
		SELECT c.id, c.user_id, u.full_name, c.name, c.description, c.category_color,
		       c.register_date, c.delete_date, c.is_active
		FROM categories c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.user_id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %v", err)
	}
	defer rows.Close()

	var categories []domain.CategoryWithOwner
	for rows.Next() {
		var category domain.CategoryWithOwner
		var deleteDate sql.NullTime
		if err := rows.Scan(
			&category.ID, &category.UserID, &category.OwnerName, &category.Name,
			&category.Description, &category.Color, &category.RegisterDate,
			&deleteDate, &category.IsActive,
		); err != nil {
			return nil, err
		}
		if deleteDate.Valid {
			d := domain.NewDate(deleteDate.Time)
			category.DeleteDate = &d
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindActiveByUser(userID int) ([]domain.Category, error) {
	query := `
		SELECT id, user_id, name, description, category_color, register_date, delete_date, is_active
		FROM categories
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY name
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list user categories: %v", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		var deleteDate sql.NullTime
		if err := rows.Scan(
			&category.ID, &category.UserID, &category.Name, &category.Description,
			&category.Color, &category.RegisterDate, &deleteDate, &category.IsActive,
		); err != nil {
			return nil, err
		}
		if deleteDate.Valid {
			d := domain.NewDate(deleteDate.Time)
			category.DeleteDate = &d
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	query := `
		SELECT id, user_id, name, description, category_color, register_date, delete_date, is_active
		FROM categories
		WHERE id = $1
	`
	var category domain.Category
	var deleteDate sql.NullTime
	err := r.db.QueryRow(query, categoryID).Scan(
		&category.ID, &category.UserID, &category.Name, &category.Description,
		&category.Color, &category.RegisterDate, &deleteDate, &category.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.NewNotFoundError("category")
		}
		return nil, fmt.Errorf("could not find category: %v", err)
	}
	if deleteDate.Valid {
		d := domain.NewDate(deleteDate.Time)
		category.DeleteDate = &d
	}
	return &category, nil
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	query := `
		INSERT INTO categories (user_id, name, description, category_color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, register_date, is_active
	`
	err := r.db.QueryRow(query, category.UserID, category.Name, category.Description, category.Color).
		Scan(&category.ID, &category.RegisterDate, &category.IsActive)
	if err != nil {
		return fmt.Errorf("could not create category: %v", err)
	}
	return nil
}

func (r *CategoryRepository) Update(category domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, category_color = $4
		WHERE id = $1
	`
	_, err := r.db.Exec(query, category.ID, category.Name, category.Description, category.Color)
	if err != nil {
		return fmt.Errorf("could not update category: %v", err)
	}
	return nil
}

func (r *CategoryRepository) SoftDelete(categoryID int, deletedAt time.Time) error {
	query := `
		UPDATE categories
		SET is_active = FALSE, delete_date = $2
		WHERE id = $1
	`
	_, err := r.db.Exec(query, categoryID, deletedAt)
	if err != nil {
		return fmt.Errorf("could not delete category: %v", err)
	}
	return nil
}

func (r *CategoryRepository) DoesUserExistByID(userID int) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)"
	err := r.db.QueryRow(query, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) DoesCategoryExistByID(categoryID int) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)"
	err := r.db.QueryRow(query, categoryID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

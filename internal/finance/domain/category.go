package domain

import "time"

type Category struct {
	ID           int
	UserID       int
	Name         string
	Description  string
	Color        string
	RegisterDate Date
	DeleteDate   *Date
	IsActive     bool
}

// CategoryWithOwner carries the owner's full name for the list-all view,
// where the response denormalizes the owning user.
type CategoryWithOwner struct {
	Category
	OwnerName string
}

type CategoryRepository interface {
	FindAllWithOwner() ([]CategoryWithOwner, error)
	FindActiveByUser(userID int) ([]Category, error)
	FindByID(categoryID int) (*Category, error)
	Save(category *Category) error
	Update(category Category) error
	SoftDelete(categoryID int, deletedAt time.Time) error
	DoesUserExistByID(userID int) (bool, error)
	DoesCategoryExistByID(categoryID int) (bool, error)
}

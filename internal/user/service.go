package user

import (
	"errors"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var (
	ErrInvalidEmail  = errors.New("email address is not valid")
	ErrInvalidGender = errors.New("invalid gender code")
)

type User struct {
	ID           int
	Nickname     string
	FullName     string
	Email        string
	PasswordHash string
	Gender       Gender
	BirthDate    *time.Time
	IsActive     bool
	RegisterDate time.Time
	DeleteDate   *time.Time
	Role         Role
	IsStaff      bool
	LastLogin    *time.Time
}

// ShortName returns the first whitespace-delimited token of the full name.
func (u *User) ShortName() string {
	return strings.Split(u.FullName, " ")[0]
}

type Service interface {
	ListUsers() ([]User, error)
	Register(name, email, nickname, password string, birthDate *time.Time, gender Gender) (*User, error)
	Update(userID int, name string, birthDate *time.Time, gender Gender) (*User, error)
	Delete(userID int) error
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

// ListUsers returns every user, newest registration first.
func (s *service) ListUsers() ([]User, error) {
	return s.repo.listUsers()
}

// Register creates a user with the default role. Nickname and email
// uniqueness is left to the database constraints.
func (s *service) Register(name, email, nickname, password string, birthDate *time.Time, gender Gender) (*User, error) {
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if !gender.Valid() {
		return nil, ErrInvalidGender
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Nickname:     nickname,
		FullName:     name,
		Email:        email,
		PasswordHash: passwordHash,
		Gender:       gender,
		BirthDate:    birthDate,
	}
	if err := s.repo.createUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update overwrites name, birth date and gender only. Nickname, email and
// password are immutable through this operation.
func (s *service) Update(userID int, name string, birthDate *time.Time, gender Gender) (*User, error) {
	if !gender.Valid() {
		return nil, ErrInvalidGender
	}

	user, err := s.repo.getUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.FullName = name
	user.BirthDate = birthDate
	user.Gender = gender
	if err := s.repo.updateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete flips the active flag and stamps the deletion time, the row is never
// removed. Deleting an already inactive user is a no-op success.
func (s *service) Delete(userID int) error {
	if _, err := s.repo.getUserByID(userID); err != nil {
		return err
	}
	return s.repo.softDeleteUser(userID, time.Now().UTC())
}

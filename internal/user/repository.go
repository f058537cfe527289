package user

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	createUser(user *User) error
	getUserByID(id int) (*User, error)
	listUsers() ([]User, error)
	updateUser(user *User) error
	softDeleteUser(id int, deletedAt time.Time) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (nickname, full_name, email, password_hash, gender, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, register_date, role, is_active, is_staff
	`
	err := r.db.QueryRow(query,
		user.Nickname, user.FullName, user.Email, user.PasswordHash, user.Gender, user.BirthDate,
	).Scan(&user.ID, &user.RegisterDate, &user.Role, &user.IsActive, &user.IsStaff)
	if err != nil {
		return fmt.Errorf("could not create user: %v", err)
	}
	return nil
}

func (r *userRepository) getUserByID(id int) (*User, error) {
	query := `
		SELECT id, nickname, full_name, email, password_hash, gender, birth_date,
		       is_active, register_date, delete_date, role, is_staff, last_login
		FROM users
		WHERE id = $1
	`
	var user User
	err := r.db.QueryRow(query, id).Scan(
		&user.ID, &user.Nickname, &user.FullName, &user.Email, &user.PasswordHash,
		&user.Gender, &user.BirthDate, &user.IsActive, &user.RegisterDate,
		&user.DeleteDate, &user.Role, &user.IsStaff, &user.LastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}
	return &user, nil
}

func (r *userRepository) listUsers() ([]User, error) {
	query := `
		SELECT id, nickname, full_name, email, password_hash, gender, birth_date,
		       is_active, register_date, delete_date, role, is_staff, last_login
		FROM users
		ORDER BY register_date DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %v", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.ID, &user.Nickname, &user.FullName, &user.Email, &user.PasswordHash,
			&user.Gender, &user.BirthDate, &user.IsActive, &user.RegisterDate,
			&user.DeleteDate, &user.Role, &user.IsStaff, &user.LastLogin,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) updateUser(user *User) error {
	query := `
		UPDATE users
		SET full_name = $2, birth_date = $3, gender = $4
		WHERE id = $1
	`
	_, err := r.db.Exec(query, user.ID, user.FullName, user.BirthDate, user.Gender)
	if err != nil {
		return fmt.Errorf("could not update user: %v", err)
	}
	return nil
}

func (r *userRepository) softDeleteUser(id int, deletedAt time.Time) error {
	query := `
		UPDATE users
		SET is_active = FALSE, delete_date = $2
		WHERE id = $1
	`
	_, err := r.db.Exec(query, id, deletedAt)
	if err != nil {
		return fmt.Errorf("could not delete user: %v", err)
	}
	return nil
}

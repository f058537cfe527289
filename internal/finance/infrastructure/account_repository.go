package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindAllWithOwner() ([]domain.AccountWithOwner, error) {
	query := `
		SELECT a.id, a.user_id, u.full_name, a.name, a.description, a.money,
		       a.register_date, a.delete_date, a.is_active
		FROM accounts a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.user_id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("could not list accounts: %v", err)
	}
	defer rows.Close()

	var accounts []domain.AccountWithOwner
	for rows.Next() {
		var account domain.AccountWithOwner
		var deleteDate sql.NullTime
		if err := rows.Scan(
			&account.ID, &account.UserID, &account.OwnerName, &account.Name,
			&account.Description, &account.Money, &account.RegisterDate,
			&deleteDate, &account.IsActive,
		); err != nil {
			return nil, err
		}
		if deleteDate.Valid {
			d := domain.NewDate(deleteDate.Time)
			account.DeleteDate = &d
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) FindActiveByUser(userID int) ([]domain.Account, error) {
	query := `
		SELECT id, user_id, name, description, money, register_date, delete_date, is_active
		FROM accounts
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY name
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list user accounts: %v", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		var deleteDate sql.NullTime
		if err := rows.Scan(
			&account.ID, &account.UserID, &account.Name, &account.Description,
			&account.Money, &account.RegisterDate, &deleteDate, &account.IsActive,
		); err != nil {
			return nil, err
		}
		if deleteDate.Valid {
			d := domain.NewDate(deleteDate.Time)
			account.DeleteDate = &d
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) FindByID(accountID int) (*domain.Account, error) {
	query := `
		SELECT id, user_id, name, description, money, register_date, delete_date, is_active
		FROM accounts
		WHERE id = $1
	`
	var account domain.Account
	var deleteDate sql.NullTime
	err := r.db.QueryRow(query, accountID).Scan(
		&account.ID, &account.UserID, &account.Name, &account.Description,
		&account.Money, &account.RegisterDate, &deleteDate, &account.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.NewNotFoundError("account")
		}
		return nil, fmt.Errorf("could not find account: %v", err)
	}
	if deleteDate.Valid {
		d := domain.NewDate(deleteDate.Time)
		account.DeleteDate = &d
	}
	return &account, nil
}

func (r *AccountRepository) Save(account *domain.Account) error {
	query := `
		INSERT INTO accounts (user_id, name, description, money)
		VALUES ($1, $2, $3, $4)
		RETURNING id, register_date, is_active
	`
	err := r.db.QueryRow(query, account.UserID, account.Name, account.Description, account.Money).
		Scan(&account.ID, &account.RegisterDate, &account.IsActive)
	if err != nil {
		return fmt.Errorf("could not create account: %v", err)
	}
	return nil
}

func (r *AccountRepository) Update(account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, description = $3, money = $4
		WHERE id = $1
	`
	_, err := r.db.Exec(query, account.ID, account.Name, account.Description, account.Money)
	if err != nil {
		return fmt.Errorf("could not update account: %v", err)
	}
	return nil
}

func (r *AccountRepository) SoftDelete(accountID int, deletedAt time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, delete_date = $2
		WHERE id = $1
	`
	_, err := r.db.Exec(query, accountID, deletedAt)
	if err != nil {
		return fmt.Errorf("could not delete account: %v", err)
	}
	return nil
}

func (r *AccountRepository) DoesUserExistByID(userID int) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)"
	err := r.db.QueryRow(query, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *AccountRepository) DoesAccountExistByID(accountID int) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)"
	err := r.db.QueryRow(query, accountID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

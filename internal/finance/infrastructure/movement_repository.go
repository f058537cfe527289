package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
)

type MovementRepository struct {
	db *sql.DB
}

func NewMovementRepository(db *sql.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

func scanMovementRow(dest *domain.MovementDetail, deleteDate sql.NullTime, accountTransfer sql.NullInt64) {
	if deleteDate.Valid {
		d := domain.NewDate(deleteDate.Time)
		dest.DeleteDate = &d
	}
	if accountTransfer.Valid {
		v := int(accountTransfer.Int64)
		dest.AccountTransfer = &v
	}
}

func (r *MovementRepository) FindAllWithOwner() ([]domain.MovementWithOwner, error) {
	query := `
		SELECT m.id, m.user_id, u.full_name, c.name, a.name, m.category_id, m.account_id,
		       m.amount, m.type, m.date, m.concept, m.account_transfer,
		       m.register_date, m.delete_date, m.is_active
		FROM movements m
		JOIN users u ON u.id = m.user_id
		JOIN categories c ON c.id = m.category_id
		JOIN accounts a ON a.id = m.account_id
		ORDER BY m.user_id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("could not list movements: %v", err)
	}
	defer rows.Close()

	var movements []domain.MovementWithOwner
	for rows.Next() {
		var movement domain.MovementWithOwner
		var deleteDate sql.NullTime
		var accountTransfer sql.NullInt64
		if err := rows.Scan(
			&movement.ID, &movement.UserID, &movement.OwnerName, &movement.CategoryName,
			&movement.AccountName, &movement.CategoryID, &movement.AccountID,
			&movement.Amount, &movement.Type, &movement.Date, &movement.Concept,
			&accountTransfer, &movement.RegisterDate, &deleteDate, &movement.IsActive,
		); err != nil {
			return nil, err
		}
		scanMovementRow(&movement.MovementDetail, deleteDate, accountTransfer)
		movements = append(movements, movement)
	}
	return movements, rows.Err()
}

func (r *MovementRepository) FindActiveByUser(userID int) ([]domain.MovementDetail, error) {
	query := `
		SELECT m.id, m.user_id, c.name, a.name, m.category_id, m.account_id,
		       m.amount, m.type, m.date, m.concept, m.account_transfer,
		       m.register_date, m.delete_date, m.is_active
		FROM movements m
		JOIN categories c ON c.id = m.category_id
		JOIN accounts a ON a.id = m.account_id
		WHERE m.user_id = $1 AND m.is_active = TRUE
		ORDER BY m.date
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list user movements: %v", err)
	}
	defer rows.Close()

	var movements []domain.MovementDetail
	for rows.Next() {
		var movement domain.MovementDetail
		var deleteDate sql.NullTime
		var accountTransfer sql.NullInt64
		if err := rows.Scan(
			&movement.ID, &movement.UserID, &movement.CategoryName, &movement.AccountName,
			&movement.CategoryID, &movement.AccountID, &movement.Amount, &movement.Type,
			&movement.Date, &movement.Concept, &accountTransfer,
			&movement.RegisterDate, &deleteDate, &movement.IsActive,
		); err != nil {
			return nil, err
		}
		scanMovementRow(&movement, deleteDate, accountTransfer)
		movements = append(movements, movement)
	}
	return movements, rows.Err()
}

func (r *MovementRepository) FindByID(movementID int) (*domain.MovementDetail, error) {
	query := `
		SELECT m.id, m.user_id, c.name, a.name, m.category_id, m.account_id,
		       m.amount, m.type, m.date, m.concept, m.account_transfer,
		       m.register_date, m.delete_date, m.is_active
		FROM movements m
		JOIN categories c ON c.id = m.category_id
		JOIN accounts a ON a.id = m.account_id
		WHERE m.id = $1
	`
	var movement domain.MovementDetail
	var deleteDate sql.NullTime
	var accountTransfer sql.NullInt64
	err := r.db.QueryRow(query, movementID).Scan(
		&movement.ID, &movement.UserID, &movement.CategoryName, &movement.AccountName,
		&movement.CategoryID, &movement.AccountID, &movement.Amount, &movement.Type,
		&movement.Date, &movement.Concept, &accountTransfer,
		&movement.RegisterDate, &deleteDate, &movement.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.NewNotFoundError("movement")
		}
		return nil, fmt.Errorf("could not find movement: %v", err)
	}
	scanMovementRow(&movement, deleteDate, accountTransfer)
	return &movement, nil
}

func (r *MovementRepository) Save(movement *domain.Movement) error {
	query := `
		INSERT INTO movements (user_id, category_id, account_id, amount, type, date, concept, account_transfer)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, register_date, is_active
	`
	err := r.db.QueryRow(query,
		movement.UserID, movement.CategoryID, movement.AccountID, movement.Amount,
		movement.Type, movement.Date, movement.Concept, nullableInt(movement.AccountTransfer),
	).Scan(&movement.ID, &movement.RegisterDate, &movement.IsActive)
	if err != nil {
		return fmt.Errorf("could not create movement: %v", err)
	}
	return nil
}

func (r *MovementRepository) Update(movement domain.Movement) error {
	query := `
		UPDATE movements
		SET category_id = $2, account_id = $3, amount = $4, type = $5,
		    date = $6, concept = $7, account_transfer = $8
		WHERE id = $1
	`
	_, err := r.db.Exec(query,
		movement.ID, movement.CategoryID, movement.AccountID, movement.Amount,
		movement.Type, movement.Date, movement.Concept, nullableInt(movement.AccountTransfer),
	)
	if err != nil {
		return fmt.Errorf("could not update movement: %v", err)
	}
	return nil
}

func (r *MovementRepository) SoftDelete(movementID int, deletedAt time.Time) error {
	query := `
		UPDATE movements
		SET is_active = FALSE, delete_date = $2
		WHERE id = $1
	`
	_, err := r.db.Exec(query, movementID, deletedAt)
	if err != nil {
		return fmt.Errorf("could not delete movement: %v", err)
	}
	return nil
}

func (r *MovementRepository) DoesUserExistByID(userID int) (bool, error) {
	return r.existsByID("users", userID)
}

func (r *MovementRepository) DoesCategoryExistByID(categoryID int) (bool, error) {
	return r.existsByID("categories", categoryID)
}

func (r *MovementRepository) DoesAccountExistByID(accountID int) (bool, error) {
	return r.existsByID("accounts", accountID)
}

func (r *MovementRepository) DoesMovementExistByID(movementID int) (bool, error) {
	return r.existsByID("movements", movementID)
}

func (r *MovementRepository) existsByID(table string, id int) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", table)
	err := r.db.QueryRow(query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

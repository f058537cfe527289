package infrastructure

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	database "github.com/denarius-project/denarius/internal/db"
	"github.com/denarius-project/denarius/internal/finance/domain"
	financeErrors "github.com/denarius-project/denarius/internal/finance/errors"
)

func setupTestDatabase(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("denarius_test"),
		postgres.WithUsername("denarius"),
		postgres.WithPassword("denarius"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("could not terminate container: %v", err)
		}
	})

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connString)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func insertTestUser(t *testing.T, db *sql.DB, nickname, fullName, email string) int {
	t.Helper()
	var id int
	err := db.QueryRow(`
		INSERT INTO users (nickname, full_name, email, password_hash)
		VALUES ($1, $2, $3, 'x')
		RETURNING id
	`, nickname, fullName, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestRepositories(t *testing.T) {
	db := setupTestDatabase(t)

	userID := insertTestUser(t, db, "ana", "Ana Ruiz", "ana@example.com")
	otherUserID := insertTestUser(t, db, "bob", "Bob Gomez", "bob@example.com")

	categoryRepo := NewCategoryRepository(db)
	accountRepo := NewAccountRepository(db)
	movementRepo := NewMovementRepository(db)

	t.Run("category lifecycle", func(t *testing.T) {
		category := &domain.Category{UserID: userID, Name: "Comida", Description: "Food", Color: "#ff0000"}
		require.NoError(t, categoryRepo.Save(category))
		assert.NotZero(t, category.ID)
		assert.True(t, category.IsActive)
		assert.Equal(t, domain.Today().String(), category.RegisterDate.String())

		found, err := categoryRepo.FindByID(category.ID)
		require.NoError(t, err)
		assert.Equal(t, "Comida", found.Name)
		assert.Nil(t, found.DeleteDate)

		found.Name = "Alimentacion"
		require.NoError(t, categoryRepo.Update(*found))
		found, err = categoryRepo.FindByID(category.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alimentacion", found.Name)

		require.NoError(t, categoryRepo.SoftDelete(category.ID, time.Now().UTC()))
		found, err = categoryRepo.FindByID(category.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
		assert.NotNil(t, found.DeleteDate)

		active, err := categoryRepo.FindActiveByUser(userID)
		require.NoError(t, err)
		assert.Empty(t, active)

		all, err := categoryRepo.FindAllWithOwner()
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Ana Ruiz", all[0].OwnerName)
		assert.False(t, all[0].IsActive)
	})

	t.Run("category find by id not found", func(t *testing.T) {
		_, err := categoryRepo.FindByID(999999)
		assert.True(t, financeErrors.IsNotFoundError(err))
	})

	t.Run("active categories sorted by name", func(t *testing.T) {
		for _, name := range []string{"Viajes", "Casa", "Ocio"} {
			require.NoError(t, categoryRepo.Save(&domain.Category{
				UserID: otherUserID, Name: name, Description: "d", Color: "#000000",
			}))
		}
		active, err := categoryRepo.FindActiveByUser(otherUserID)
		require.NoError(t, err)
		require.Len(t, active, 3)
		assert.Equal(t, "Casa", active[0].Name)
		assert.Equal(t, "Ocio", active[1].Name)
		assert.Equal(t, "Viajes", active[2].Name)
	})

	t.Run("account decimal round trip", func(t *testing.T) {
		account := &domain.Account{
			UserID: userID, Name: "Nomina", Description: "Main",
			Money: decimal.RequireFromString("1500.50"),
		}
		require.NoError(t, accountRepo.Save(account))

		found, err := accountRepo.FindByID(account.ID)
		require.NoError(t, err)
		assert.True(t, found.Money.Equal(decimal.RequireFromString("1500.50")))

		found.Money = decimal.RequireFromString("99.99")
		require.NoError(t, accountRepo.Update(*found))
		found, err = accountRepo.FindByID(account.ID)
		require.NoError(t, err)
		assert.True(t, found.Money.Equal(decimal.RequireFromString("99.99")))

		exists, err := accountRepo.DoesUserExistByID(userID)
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = accountRepo.DoesUserExistByID(999999)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("active accounts sorted by name", func(t *testing.T) {
		for _, name := range []string{"Viajes", "Ahorro", "Nomina"} {
			require.NoError(t, accountRepo.Save(&domain.Account{
				UserID: otherUserID, Name: name, Description: "d", Money: decimal.Zero,
			}))
		}
		active, err := accountRepo.FindActiveByUser(otherUserID)
		require.NoError(t, err)
		require.Len(t, active, 3)
		assert.Equal(t, "Ahorro", active[0].Name)
		assert.Equal(t, "Nomina", active[1].Name)
		assert.Equal(t, "Viajes", active[2].Name)
	})

	t.Run("movement lifecycle", func(t *testing.T) {
		category := &domain.Category{UserID: userID, Name: "Traspasos", Description: "d", Color: "#111111"}
		require.NoError(t, categoryRepo.Save(category))
		account := &domain.Account{UserID: userID, Name: "Ahorro", Description: "d", Money: decimal.Zero}
		require.NoError(t, accountRepo.Save(account))

		laterDate, err := domain.ParseDate("2024-03-05")
		require.NoError(t, err)
		earlierDate, err := domain.ParseDate("2024-03-01")
		require.NoError(t, err)

		later := &domain.Movement{
			UserID: userID, CategoryID: category.ID, AccountID: account.ID,
			Amount: decimal.RequireFromString("25.40"), Type: "expense",
			Date: laterDate, Concept: "Groceries",
		}
		require.NoError(t, movementRepo.Save(later))
		assert.True(t, later.IsActive)

		transferTarget := account.ID
		earlier := &domain.Movement{
			UserID: userID, CategoryID: category.ID, AccountID: account.ID,
			Amount: decimal.RequireFromString("100.00"), Type: "transfer",
			Date: earlierDate, Concept: "To savings", AccountTransfer: &transferTarget,
		}
		require.NoError(t, movementRepo.Save(earlier))

		movements, err := movementRepo.FindActiveByUser(userID)
		require.NoError(t, err)
		require.Len(t, movements, 2)
		assert.Equal(t, "To savings", movements[0].Concept)
		assert.Equal(t, "Groceries", movements[1].Concept)
		assert.Equal(t, "Traspasos", movements[0].CategoryName)
		assert.Equal(t, "Ahorro", movements[0].AccountName)
		require.NotNil(t, movements[0].AccountTransfer)
		assert.Equal(t, transferTarget, *movements[0].AccountTransfer)
		assert.Nil(t, movements[1].AccountTransfer)

		found, err := movementRepo.FindByID(later.ID)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05", found.Date.String())

		require.NoError(t, movementRepo.SoftDelete(later.ID, time.Now().UTC()))
		movements, err = movementRepo.FindActiveByUser(userID)
		require.NoError(t, err)
		require.Len(t, movements, 1)
		assert.Equal(t, "To savings", movements[0].Concept)

		all, err := movementRepo.FindAllWithOwner()
		require.NoError(t, err)
		assert.Len(t, all, 2)
		assert.Equal(t, "Ana Ruiz", all[0].OwnerName)

		exists, err := movementRepo.DoesMovementExistByID(later.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

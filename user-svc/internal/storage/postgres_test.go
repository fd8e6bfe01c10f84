package storage

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"quickbite/user-svc/internal/domain"
)

func setupUserTestDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewPostgresRepository(mockDB), mock, func() { mockDB.Close() }
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupUserTestDB(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Alice", "alice@example.com", "hashed", "customer").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, time.Now()))

	user := &domain.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Role:         "customer",
	}

	err := repo.CreateUser(user)
	assert.NoError(t, err)
	assert.Equal(t, 4, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at"}).
			AddRow(4, "Alice", "alice@example.com", "hashed", "customer", time.Now()))

	user, err := repo.GetUserByEmail("alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestSeedDefaults_SkipsNonEmptyTable(t *testing.T) {
	repo, mock, cleanup := setupUserTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	err := repo.SeedDefaults()
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	repo, mock, cleanup := setupUserTestDB(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM users").WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.DeleteUser(4)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

package storage

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"quickbite/auth"
	"quickbite/user-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'customer',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := r.DB.Exec(stmt); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SeedDefaults creates the stock admin/restaurant/customer accounts on an
// empty users table.
func (r *PostgresRepository) SeedDefaults() error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		name, email, password, role string
	}{
		{"System Admin", "admin@example.com", "admin123", auth.RoleAdmin},
		{"Restaurant Staff", "restaurant@example.com", "restaurant123", auth.RoleRestaurant},
		{"Regular Customer", "user@example.com", "user123", auth.RoleCustomer},
	}

	for _, u := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := r.DB.Exec(
			"INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4)",
			u.name, u.email, string(hash), u.role); err != nil {
			return err
		}
	}

	return nil
}

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	return r.DB.QueryRow(
		"INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		user.Name, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1",
		email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) ListUsers() ([]domain.User, error) {
	rows, err := r.DB.Query("SELECT id, name, email, role, created_at FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *PostgresRepository) UpdateUser(user *domain.User) error {
	return r.DB.QueryRow(
		"UPDATE users SET name=$1, email=$2, role=$3 WHERE id=$4 RETURNING created_at",
		user.Name, user.Email, user.Role, user.ID).
		Scan(&user.CreatedAt)
}

func (r *PostgresRepository) DeleteUser(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM users WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"quickbite/catalog-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price NUMERIC(10, 2) NOT NULL,
			image VARCHAR(512),
			category VARCHAR(50) NOT NULL,
			tags TEXT,
			popular BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

// SeedDefaults loads the starter menu when the products table is empty.
func (r *PostgresRepository) SeedDefaults() error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []domain.MenuItem{
		{Name: "Classic Burger", Description: "Juicy beef patty with fresh lettuce, tomato, cheese and our special sauce", Price: 8.99, Image: "/images/classic-burger.jpg", Category: domain.CategoryFood, Tags: []string{"burgers", "beef", "popular"}, Popular: true},
		{Name: "Double Cheeseburger", Description: "Two beef patties with double cheese, pickles, onions and signature sauce", Price: 11.99, Image: "/images/double-cheeseburger.jpg", Category: domain.CategoryFood, Tags: []string{"burgers", "beef", "cheese"}},
		{Name: "Crispy Chicken Burger", Description: "Crunchy fried chicken with coleslaw, pickles and mayo", Price: 9.99, Image: "/images/chicken-burger.jpg", Category: domain.CategoryFood, Tags: []string{"burgers", "chicken"}},
		{Name: "Fresh Orange Juice", Description: "Freshly squeezed orange juice packed with vitamin C", Price: 4.49, Image: "/images/orange-juice.jpg", Category: domain.CategoryJuice, Tags: []string{"fruit-juice", "popular"}, Popular: true},
		{Name: "Mixed Berry Smoothie", Description: "Strawberries, blueberries and raspberries blended with yogurt", Price: 5.99, Image: "/images/berry-smoothie.jpg", Category: domain.CategoryJuice, Tags: []string{"smoothies", "popular"}, Popular: true},
	}

	for i := range defaults {
		if err := r.CreateMenuItem(&defaults[i]); err != nil {
			return err
		}
	}

	return nil
}

func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	payload, _ := json.Marshal(tags)
	return string(payload)
}

func decodeTags(raw string) []string {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(
		"INSERT INTO products (name, description, price, image, category, tags, popular) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at",
		item.Name, item.Description, item.Price, item.Image, item.Category, encodeTags(item.Tags), item.Popular,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image, ''), category, COALESCE(tags, '[]'), popular, created_at
		FROM products
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		var rawTags string
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Image, &item.Category, &rawTags, &item.Popular, &item.CreatedAt); err != nil {
			continue
		}
		item.Tags = decodeTags(rawTags)
		items = append(items, item)
	}

	return items, nil
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var rawTags string
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image, ''), category, COALESCE(tags, '[]'), popular, created_at
		FROM products
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Image, &item.Category, &rawTags, &item.Popular, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.Tags = decodeTags(rawTags)
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(
		"UPDATE products SET name=$1, description=$2, price=$3, image=$4, category=$5, tags=$6, popular=$7 WHERE id=$8 RETURNING created_at",
		item.Name, item.Description, item.Price, item.Image, item.Category, encodeTags(item.Tags), item.Popular, item.ID).
		Scan(&item.CreatedAt)
}

func (r *PostgresRepository) DeleteMenuItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM products WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

package storage

import (
	"database/sql"
	"fmt"

	"quickbite/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER DEFAULT 0,
			customer_name VARCHAR(255) NOT NULL,
			contact_number VARCHAR(50) NOT NULL,
			delivery_address TEXT NOT NULL,
			note TEXT,
			subtotal NUMERIC(10, 2) NOT NULL,
			delivery_fee NUMERIC(10, 2) NOT NULL,
			tax NUMERIC(10, 2) NOT NULL,
			total_amount NUMERIC(10, 2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			qr_code BYTEA,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INTEGER NOT NULL,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10, 2) NOT NULL,
			quantity INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_status_history (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			status VARCHAR(20) NOT NULL,
			changed_by VARCHAR(255) NOT NULL DEFAULT 'system',
			changed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

// CreateOrder persists the order, its item snapshots and the initial
// history row in one transaction.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (customer_id, customer_name, contact_number, delivery_address, note, subtotal, delivery_fee, tax, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, order.CustomerID, order.CustomerName, order.ContactNumber, order.DeliveryAddress, order.Note,
		order.Subtotal, order.DeliveryFee, order.Tax, order.TotalAmount, order.Status).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, menu_item_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.MenuItemID, item.Name, item.Price, item.Quantity); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO order_status_history (order_id, status, changed_by)
		VALUES ($1, $2, 'system')
	`, order.ID, order.Status); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, customer_id, customer_name, contact_number, delivery_address, COALESCE(note, ''),
		       subtotal, delivery_fee, tax, total_amount, status, created_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.CustomerID, &order.CustomerName, &order.ContactNumber,
		&order.DeliveryAddress, &order.Note, &order.Subtotal, &order.DeliveryFee, &order.Tax,
		&order.TotalAmount, &order.Status, &order.CreatedAt); err != nil {
		return nil, err
	}

	items, err := r.loadItems(orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *PostgresRepository) loadItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT menu_item_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ListOrders returns all orders, newest first, optionally filtered to one
// status. Item snapshots are loaded per order.
func (r *PostgresRepository) ListOrders(status string) ([]domain.Order, error) {
	query := `
		SELECT id, customer_id, customer_name, contact_number, delivery_address, COALESCE(note, ''),
		       subtotal, delivery_fee, tax, total_amount, status, created_at
		FROM orders`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.CustomerName, &order.ContactNumber,
			&order.DeliveryAddress, &order.Note, &order.Subtotal, &order.DeliveryFee, &order.Tax,
			&order.TotalAmount, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	rows.Close()

	for i := range orders {
		items, err := r.loadItems(orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) ListOrdersByCustomer(customerID int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, customer_id, customer_name, contact_number, delivery_address, COALESCE(note, ''),
		       subtotal, delivery_fee, tax, total_amount, status, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.CustomerName, &order.ContactNumber,
			&order.DeliveryAddress, &order.Note, &order.Subtotal, &order.DeliveryFee, &order.Tax,
			&order.TotalAmount, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	rows.Close()

	for i := range orders {
		items, err := r.loadItems(orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrderStatus(orderID int) (string, error) {
	var status string
	if err := r.DB.QueryRow("SELECT status FROM orders WHERE id = $1", orderID).Scan(&status); err != nil {
		return "", err
	}
	return status, nil
}

// UpdateOrderStatus writes the new status and appends the audit row in one
// transaction. The UPDATE is guarded by the status the caller read, so a
// concurrent transition makes the stale write fail instead of going backward.
func (r *PostgresRepository) UpdateOrderStatus(orderID int, from, to, changedBy string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec("UPDATE orders SET status = $1 WHERE id = $2 AND status = $3", to, orderID, from)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrStatusConflict
	}

	if _, err := tx.Exec(`
		INSERT INTO order_status_history (order_id, status, changed_by)
		VALUES ($1, $2, $3)
	`, orderID, to, changedBy); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetStatusHistory(orderID int) ([]domain.StatusHistoryEntry, error) {
	rows, err := r.DB.Query(`
		SELECT status, changed_by, changed_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY changed_at
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.StatusHistoryEntry
	for rows.Next() {
		var entry domain.StatusHistoryEntry
		if err := rows.Scan(&entry.Status, &entry.ChangedBy, &entry.ChangedAt); err != nil {
			continue
		}
		history = append(history, entry)
	}
	return history, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

// GetMenuItem reads the live product row the cart service resolves prices
// from. The catalog service owns the table; orders only read it.
func (r *PostgresRepository) GetMenuItem(id int) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := r.DB.QueryRow(`
		SELECT id, name, price, COALESCE(image, '')
		FROM products WHERE id = $1
	`, id).Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Image); err != nil {
		return nil, err
	}
	return &item, nil
}

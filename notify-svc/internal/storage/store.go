package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quickbite/notify-svc/internal/domain"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *Store) EnsureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS notifications (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL,
			customer_id INTEGER DEFAULT 0,
			type VARCHAR(50) NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *Store) SaveNotification(n *domain.Notification) error {
	return s.db.QueryRow(`
		INSERT INTO notifications (order_id, customer_id, type, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, n.OrderID, n.CustomerID, n.Type, n.Message).Scan(&n.ID, &n.CreatedAt)
}

// UpdateCounters maintains the order throughput stats in Redis: a daily
// per-status sorted set kept for a week and an all-time per-status counter.
func (s *Store) UpdateCounters(status string) error {
	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("orders:daily:%s", today)
	s.rdb.ZIncrBy(s.ctx, dailyKey, 1, status)
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)

	return s.rdb.Incr(s.ctx, fmt.Sprintf("orders:status:%s", status)).Err()
}

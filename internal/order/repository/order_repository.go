package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cortado/internal/domain"
	"cortado/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `INSERT INTO Orders (customerName, customerPhone, status, totalAmount) VALUES (?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, order.CustomerName, order.CustomerPhone, order.Status, order.TotalAmount)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, customerName, customerPhone, status, totalAmount, createdAt, updatedAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.CustomerName, &order.CustomerPhone,
		&order.Status, &order.TotalAmount, &order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

// List returns orders newest first, optionally filtered by status. An empty
// status means all orders.
func (r *MySQLOrderRepository) List(ctx context.Context, status string) ([]domain.Order, error) {
	query := `
		SELECT id, customerName, customerPhone, status, totalAmount, createdAt, updatedAt
		FROM Orders
	`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY createdAt DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *MySQLOrderRepository) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	query := `
		SELECT id, customerName, customerPhone, status, totalAmount, createdAt, updatedAt
		FROM Orders
		ORDER BY createdAt DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// UpdateStatus overwrites the status unconditionally. It is a single
// statement, so no enclosing transaction is needed.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Zero rows can also mean the status already had that value.
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// Stats aggregates the dashboard counters. Revenue only counts completed
// orders, matching the admin dashboard definition.
func (r *MySQLOrderRepository) Stats(ctx context.Context) (*domain.OrderStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(status = 'pending'), 0),
		       COALESCE(SUM(status = 'completed'), 0),
		       COALESCE(SUM(CASE WHEN status = 'completed' THEN totalAmount ELSE 0 END), 0)
		FROM Orders
	`

	var stats domain.OrderStats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalOrders, &stats.PendingOrders, &stats.CompletedOrders, &stats.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("querying order stats: %w", err)
	}

	return &stats, nil
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.CustomerName, &order.CustomerPhone,
			&order.Status, &order.TotalAmount, &order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

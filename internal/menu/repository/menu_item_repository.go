package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cortado/internal/domain"
	"cortado/internal/errors"
)

type MySQLMenuItemRepository struct {
	db *sql.DB
}

func NewMySQLMenuItemRepository(db *sql.DB) *MySQLMenuItemRepository {
	return &MySQLMenuItemRepository{db: db}
}

const menuItemColumns = `id, name, description, price, category, isAvailable, createdAt, updatedAt`

func (r *MySQLMenuItemRepository) FindByID(ctx context.Context, id uint) (*domain.MenuItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM MenuItems WHERE id = ?`, menuItemColumns)

	var item domain.MenuItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.Available, &item.CreatedAt, &item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}

func (r *MySQLMenuItemRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, 0, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`SELECT %s FROM MenuItems WHERE id IN (%s)`,
		menuItemColumns, strings.Join(placeholders, ", "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

func (r *MySQLMenuItemRepository) List(ctx context.Context, category string, availableOnly bool) ([]domain.MenuItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM MenuItems`, menuItemColumns)

	var conditions []string
	var args []interface{}

	if availableOnly {
		conditions = append(conditions, "isAvailable = 1")
	}
	if category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, category)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY category, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

func (r *MySQLMenuItemRepository) Categories(ctx context.Context, availableOnly bool) ([]string, error) {
	query := `SELECT DISTINCT category FROM MenuItems`
	if availableOnly {
		query += ` WHERE isAvailable = 1`
	}
	query += ` ORDER BY category`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var cat string
		if err := rows.Scan(&cat); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, nil
}

func (r *MySQLMenuItemRepository) Insert(ctx context.Context, item domain.MenuItem) (uint, error) {
	query := `INSERT INTO MenuItems (name, description, price, category, isAvailable) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.Price, item.Category, item.Available)
	if err != nil {
		return 0, fmt.Errorf("inserting menu item: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLMenuItemRepository) Update(ctx context.Context, item domain.MenuItem) error {
	query := `UPDATE MenuItems SET name = ?, description = ?, price = ?, category = ?, isAvailable = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.Available, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// The update can also affect zero rows when nothing changed; re-check
		// existence so a no-op edit is not reported as missing.
		if _, err := r.FindByID(ctx, item.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *MySQLMenuItemRepository) Delete(ctx context.Context, id uint) error {
	query := `DELETE FROM MenuItems WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}

	return nil
}

func scanMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.Available, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu item rows: %w", err)
	}

	return items, nil
}

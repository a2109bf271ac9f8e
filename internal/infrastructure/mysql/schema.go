package mysql

import (
	"database/sql"
	"fmt"
)

type Table struct {
	Name  string
	Query string
}

// Tables returns the schema DDL. OrderItems carries itemName and price as
// snapshots taken at checkout, and deliberately has no FK to MenuItems so
// catalog deletion never breaks historical orders.
func Tables() []Table {
	createMenuItemsTable := `
	CREATE TABLE IF NOT EXISTS MenuItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		category VARCHAR(50) NOT NULL,
		isAvailable TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_category (category),
		INDEX idx_available (isAvailable)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		customerName VARCHAR(100) NOT NULL,
		customerPhone VARCHAR(30),
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		totalAmount DECIMAL(10,2) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_status (status),
		INDEX idx_created (createdAt)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId INT UNSIGNED NOT NULL,
		menuItemId INT UNSIGNED NOT NULL,
		itemName VARCHAR(100) NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		price DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId)
	)`

	return []Table{
		{"MenuItems", createMenuItemsTable},
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
	}
}

func CreateTables(db *sql.DB) error {
	for _, tbl := range Tables() {
		if _, err := db.Exec(tbl.Query); err != nil {
			return fmt.Errorf("creating table %s: %w", tbl.Name, err)
		}
	}
	return nil
}

package main

import (
	"log"
	"os"

	"github.com/shopspring/decimal"

	"cortado/internal/commons"
	"cortado/internal/config"
	"cortado/internal/domain"
	"cortado/internal/infrastructure/mysql"
)

// Seeds the catalog with the starter menu. Safe to run repeatedly: it only
// inserts when the MenuItems table is empty.
func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer db.Close()

	if err := mysql.CreateTables(db); err != nil {
		log.Fatalf("creating tables: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM MenuItems`).Scan(&count); err != nil {
		log.Fatalf("counting menu items: %v", err)
	}
	if count > 0 {
		log.Printf("menu already has %d items, nothing to seed", count)
		return
	}

	for _, item := range sampleMenu() {
		_, err := db.Exec(
			`INSERT INTO MenuItems (name, description, price, category, isAvailable) VALUES (?, ?, ?, ?, ?)`,
			item.Name, item.Description, item.Price, item.Category, item.Available,
		)
		if err != nil {
			log.Fatalf("inserting %q: %v", item.Name, err)
		}
	}

	log.Printf("seeded %d menu items", len(sampleMenu()))
}

func sampleMenu() []domain.MenuItem {
	price := decimal.RequireFromString
	return []domain.MenuItem{
		{Name: "Espresso", Description: "Strong black coffee", Price: price("2.50"), Category: "Coffee", Available: true},
		{Name: "Cappuccino", Description: "Espresso with steamed milk foam", Price: price("3.50"), Category: "Coffee", Available: true},
		{Name: "Latte", Description: "Espresso with steamed milk", Price: price("4.00"), Category: "Coffee", Available: true},
		{Name: "Americano", Description: "Espresso with hot water", Price: price("3.00"), Category: "Coffee", Available: true},
		{Name: "Green Tea", Description: "Fresh green tea", Price: price("2.00"), Category: "Tea", Available: true},
		{Name: "Earl Grey", Description: "Classic English tea", Price: price("2.50"), Category: "Tea", Available: true},
		{Name: "Chocolate Croissant", Description: "Buttery pastry with chocolate", Price: price("3.50"), Category: "Pastries", Available: true},
		{Name: "Blueberry Muffin", Description: "Fresh baked muffin", Price: price("2.75"), Category: "Pastries", Available: true},
		{Name: "Caesar Salad", Description: "Fresh romaine with parmesan", Price: price("8.50"), Category: "Food", Available: true},
		{Name: "Grilled Sandwich", Description: "Toasted sandwich with cheese", Price: price("6.50"), Category: "Food", Available: true},
	}
}

func loadConfig() (*config.Config, error) {
	path := os.Getenv("CORTADO_CONFIG")
	if path == "" {
		path = "internal/config/config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		return commons.LoadConfig(path)
	}

	return config.Load()
}

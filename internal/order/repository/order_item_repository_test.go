package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cortado/internal/domain"
	"cortado/internal/testutil"
)

func TestNewMySQLOrderItemRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderItemRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestOrderItemRepository_InsertAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orderID := insertTestOrder(t, db, "John Doe", "pending", "11.00")

	repo := NewMySQLOrderItemRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)

	_, err = repo.Insert(context.Background(), tx, domain.OrderItem{
		OrderID:    orderID,
		MenuItemID: 1,
		ItemName:   "Americano",
		Quantity:   2,
		Price:      decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)

	_, err = repo.Insert(context.Background(), tx, domain.OrderItem{
		OrderID:    orderID,
		MenuItemID: 2,
		ItemName:   "Earl Grey",
		Quantity:   1,
		Price:      decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)

	require.NoError(t, tx.Commit())

	items, err := repo.ListByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Americano", items[0].ItemName)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("3.00")))
	assert.True(t, items[0].Subtotal().Equal(decimal.RequireFromString("6.00")))

	assert.Equal(t, "Earl Grey", items[1].ItemName)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestOrderItemRepository_ListByOrderID_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderItemRepository(db)

	items, err := repo.ListByOrderID(context.Background(), uint(9999))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderItemRepository_CascadeDeleteWithOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orderID := insertTestOrder(t, db, "Jane", "pending", "3.00")

	repo := NewMySQLOrderItemRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), tx, domain.OrderItem{
		OrderID:    orderID,
		MenuItemID: 1,
		ItemName:   "Americano",
		Quantity:   1,
		Price:      decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	_, err = db.Exec(`DELETE FROM Orders WHERE id = ?`, orderID)
	require.NoError(t, err)

	items, err := repo.ListByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

package menu

import (
	"context"

	"cortado/internal/domain"
)

type UseCase interface {
	ListMenu(ctx context.Context, req ListMenuRequest) (*MenuResponse, error)
	GetItem(ctx context.Context, id uint) (*MenuItemDTO, error)
	AddItem(ctx context.Context, req AddMenuItemRequest) (*MenuItemDTO, error)
	EditItem(ctx context.Context, id uint, req EditMenuItemRequest) (*MenuItemDTO, error)
	RemoveItem(ctx context.Context, id uint) error
}

type Service interface {
	ListItems(ctx context.Context, category string, availableOnly bool) ([]domain.MenuItem, []string, error)
	GetItem(ctx context.Context, id uint) (*domain.MenuItem, error)
	GetItemsByIDs(ctx context.Context, ids []uint) (found []domain.MenuItem, notFoundIDs []uint, err error)
	CreateItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id uint) error
}

type Repository interface {
	FindByID(ctx context.Context, id uint) (*domain.MenuItem, error)
	FindByIDs(ctx context.Context, ids []uint) ([]domain.MenuItem, error)
	List(ctx context.Context, category string, availableOnly bool) ([]domain.MenuItem, error)
	Categories(ctx context.Context, availableOnly bool) ([]string, error)
	Insert(ctx context.Context, item domain.MenuItem) (uint, error)
	Update(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, id uint) error
}

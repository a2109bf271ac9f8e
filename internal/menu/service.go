package menu

import (
	"context"

	"cortado/internal/domain"
)

type menuService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &menuService{repo: repo}
}

func (s *menuService) ListItems(ctx context.Context, category string, availableOnly bool) ([]domain.MenuItem, []string, error) {
	items, err := s.repo.List(ctx, category, availableOnly)
	if err != nil {
		return nil, nil, err
	}

	// Categories are always derived from the full (filtered-by-availability)
	// catalog so the client can render the category picker.
	categories, err := s.repo.Categories(ctx, availableOnly)
	if err != nil {
		return nil, nil, err
	}

	return items, categories, nil
}

func (s *menuService) GetItem(ctx context.Context, id uint) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *menuService) GetItemsByIDs(ctx context.Context, ids []uint) ([]domain.MenuItem, []uint, error) {
	found, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[uint]struct{}, len(found))
	for _, item := range found {
		foundSet[item.ID] = struct{}{}
	}

	var notFoundIDs []uint
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			notFoundIDs = append(notFoundIDs, id)
		}
	}

	return found, notFoundIDs, nil
}

func (s *menuService) CreateItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *menuService) UpdateItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, item.ID)
}

func (s *menuService) DeleteItem(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

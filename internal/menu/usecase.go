package menu

import (
	"context"

	"cortado/internal/domain"
)

type catalogUseCase struct {
	service Service
}

func NewUseCase(service Service) UseCase {
	return &catalogUseCase{service: service}
}

func (uc *catalogUseCase) ListMenu(ctx context.Context, req ListMenuRequest) (*MenuResponse, error) {
	items, categories, err := uc.service.ListItems(ctx, req.Category, req.AvailableOnly)
	if err != nil {
		return nil, err
	}

	dtos := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}

	if categories == nil {
		categories = []string{}
	}

	return &MenuResponse{
		Items:      dtos,
		Categories: categories,
	}, nil
}

func (uc *catalogUseCase) GetItem(ctx context.Context, id uint) (*MenuItemDTO, error) {
	item, err := uc.service.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	d := toDTO(*item)
	return &d, nil
}

func (uc *catalogUseCase) AddItem(ctx context.Context, req AddMenuItemRequest) (*MenuItemDTO, error) {
	item, err := uc.service.CreateItem(ctx, domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   true,
	})
	if err != nil {
		return nil, err
	}
	d := toDTO(*item)
	return &d, nil
}

func (uc *catalogUseCase) EditItem(ctx context.Context, id uint, req EditMenuItemRequest) (*MenuItemDTO, error) {
	item, err := uc.service.UpdateItem(ctx, domain.MenuItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
	})
	if err != nil {
		return nil, err
	}
	d := toDTO(*item)
	return &d, nil
}

func (uc *catalogUseCase) RemoveItem(ctx context.Context, id uint) error {
	return uc.service.DeleteItem(ctx, id)
}

func toDTO(item domain.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
	}
}

package menu

import (
	"database/sql"

	"go.uber.org/zap"

	"cortado/internal/menu/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLMenuItemRepository(db)
	svc := NewService(repo)
	uc := NewUseCase(svc)
	return NewController(uc, logger)
}

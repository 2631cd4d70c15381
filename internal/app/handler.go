package app

import (
	"github.com/kakemizuh/gameeconomy/internal/domain"
	"github.com/kakemizuh/gameeconomy/internal/http/handlers"
	"github.com/kakemizuh/gameeconomy/internal/http/middleware"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"
)

func (a *application) InitPlayerHandler(uc domain.PlayerUseCase) *handlers.PlayerHandler {
	return handlers.NewPlayerHandler(uc)
}

func (a *application) InitItemHandler(ir domain.ItemRepository, inv domain.InventoryRepository) *handlers.ItemHandler {
	return handlers.NewItemHandler(ir, inv)
}

func (a *application) InitEconomyHandler(uc domain.EconomyUseCase, log *logger.Logger) *handlers.EconomyHandler {
	unitPrice := a.config.Gacha.UnitPrice
	if unitPrice == 0 {
		unitPrice = 10 // default draw price
	}
	return handlers.NewEconomyHandler(uc, unitPrice, log)
}

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}

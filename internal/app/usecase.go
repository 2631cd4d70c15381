package app

import (
	"github.com/kakemizuh/gameeconomy/internal/domain"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/auth"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"
	"github.com/kakemizuh/gameeconomy/internal/usecase/economy"
	"github.com/kakemizuh/gameeconomy/internal/usecase/player"
	"gorm.io/gorm"
)

func (a *application) InitPlayerUseCase(pr domain.PlayerRepository, jwt auth.JWTService, log *logger.Logger) domain.PlayerUseCase {
	return player.NewPlayerUseCase(pr, jwt, log)
}

func (a *application) InitEconomyUseCase(
	pr domain.PlayerRepository,
	ir domain.ItemRepository,
	inv domain.InventoryRepository,
	db *gorm.DB,
	log *logger.Logger,
) domain.EconomyUseCase {
	return economy.NewEconomyUseCase(pr, ir, inv, db, log)
}

package app

import (
	"github.com/kakemizuh/gameeconomy/internal/domain"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return repository.NewPlayerRepository(db)
}

func (a *application) InitItemRepository(db *gorm.DB) domain.ItemRepository {
	return repository.NewItemRepository(db)
}

func (a *application) InitInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return repository.NewInventoryRepository(db)
}

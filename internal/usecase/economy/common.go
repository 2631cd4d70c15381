package economy

import (
	"github.com/kakemizuh/gameeconomy/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// txRepos bundles the repositories bound to a single database transaction
type txRepos struct {
	players   domain.PlayerRepository
	items     domain.ItemRepository
	inventory domain.InventoryRepository
}

// setupTransactionDB starts a database transaction and binds repositories
// to it
func (uc *EconomyUseCase) setupTransactionDB() (*gorm.DB, *txRepos, error) {
	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	repos := &txRepos{
		players:   uc.playerRepo.WithTransaction(tx),
		items:     uc.itemRepo.WithTransaction(tx),
		inventory: uc.inventoryRepo.WithTransaction(tx),
	}
	return tx, repos, nil
}

// commitTransaction commits the database transaction with error handling
func (uc *EconomyUseCase) commitTransaction(tx *gorm.DB) error {
	if err := tx.Commit().Error; err != nil {
		uc.logger.Error("Failed to commit database transaction", zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}
	return nil
}

// rollbackTransaction rolls back the database transaction and passes the
// causing error through
func (uc *EconomyUseCase) rollbackTransaction(tx *gorm.DB, err error) error {
	tx.Rollback()
	return err
}

// lockPlayer locks the player row for the duration of the transaction.
// This is the first statement of every mutating operation: it serializes
// concurrent operations against the same player.
func (uc *EconomyUseCase) lockPlayer(repos *txRepos, playerID int64) (*domain.Player, error) {
	player, err := repos.players.GetByIDForUpdate(playerID)
	if err != nil {
		uc.logger.Error("Failed to lock player row", zap.Int64("playerID", playerID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		uc.logger.Warn("Player not found", zap.Int64("playerID", playerID))
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return player, nil
}

// getItem fetches an item definition, translating absence into NotFound
func (uc *EconomyUseCase) getItem(repos *txRepos, itemID int64) (*domain.Item, error) {
	item, err := repos.items.GetByID(itemID)
	if err != nil {
		uc.logger.Error("Failed to get item", zap.Int64("itemID", itemID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get item", 500, err)
	}
	if item == nil {
		uc.logger.Warn("Item not found", zap.Int64("itemID", itemID))
		return nil, domain.NewAppError(domain.ErrCodeItemNotFound, "Item not found", 404, nil)
	}
	return item, nil
}

// validateCount validates that a requested count is positive
func (uc *EconomyUseCase) validateCount(count int) error {
	if count < 1 {
		return domain.NewAppError(domain.ErrCodeInvalidArgument, "Count must be at least 1", 400, nil)
	}
	return nil
}

// upsertEntry adds count to the (player, item) entry, creating it when
// absent, and returns the resulting total
func (uc *EconomyUseCase) upsertEntry(repos *txRepos, playerID, itemID int64, count int) (int, error) {
	entry, err := repos.inventory.GetEntry(playerID, itemID)
	if err != nil {
		return 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get inventory entry", 500, err)
	}

	if entry == nil {
		entry = &domain.InventoryEntry{PlayerID: playerID, ItemID: itemID, ItemCount: count}
		if err := repos.inventory.Create(entry); err != nil {
			return 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create inventory entry", 500, err)
		}
		return count, nil
	}

	entry.ItemCount += count
	if err := repos.inventory.Update(entry); err != nil {
		return 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update inventory entry", 500, err)
	}
	return entry.ItemCount, nil
}

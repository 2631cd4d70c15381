package economy

import (
	"github.com/kakemizuh/gameeconomy/internal/domain"
	"go.uber.org/zap"
)

// grantItem adds count of an item to a player's inventory, creating the
// entry on first grant
func (uc *EconomyUseCase) grantItem(playerID, itemID int64, count int) (*domain.GrantResult, error) {
	if err := uc.validateCount(count); err != nil {
		return nil, err
	}

	tx, repos, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	// Locking the player row serializes concurrent grants to the same
	// pair, so the read-then-write below cannot lose an update.
	if _, err := uc.lockPlayer(repos, playerID); err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	if _, err := uc.getItem(repos, itemID); err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	total, err := uc.upsertEntry(repos, playerID, itemID, count)
	if err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	if err := uc.commitTransaction(tx); err != nil {
		return nil, err
	}

	uc.logger.Info("Item granted",
		zap.Int64("playerID", playerID),
		zap.Int64("itemID", itemID),
		zap.Int("count", count),
		zap.Int("total", total))

	return &domain.GrantResult{ItemID: itemID, Count: total}, nil
}

package economy

import (
	"github.com/kakemizuh/gameeconomy/internal/domain"
	"go.uber.org/zap"
)

// consumeItem uses up to count of an item and applies its effect to the
// matching stat, saturating at the status cap. Units past the point where
// the stat caps are not consumed.
func (uc *EconomyUseCase) consumeItem(playerID, itemID int64, count int) (*domain.ConsumeResult, error) {
	if err := uc.validateCount(count); err != nil {
		return nil, err
	}

	tx, repos, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	player, err := uc.lockPlayer(repos, playerID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	item, err := uc.getItem(repos, itemID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	entry, err := repos.inventory.GetEntry(playerID, itemID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get inventory entry", 500, err))
	}
	if entry == nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeItemNotOwned, "Player does not hold this item", 404, nil))
	}
	if entry.ItemCount < count {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeInsufficientQuantity, "Not enough items held", 400, nil))
	}

	status, hasEffect := targetStatus(player, item.ItemType)

	// Items with no recognized effect consume nothing and change nothing.
	used := 0
	if hasEffect {
		status, used = applyHeal(status, item.Heal, count)
	}

	entry.ItemCount -= used

	switch item.ItemType {
	case domain.ItemTypeHPPotion:
		player.HP = status
	case domain.ItemTypeMPPotion:
		player.MP = status
	}

	if entry.ItemCount == 0 {
		if err := repos.inventory.Delete(playerID, itemID); err != nil {
			return nil, uc.rollbackTransaction(tx,
				domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete inventory entry", 500, err))
		}
	} else if used > 0 {
		if err := repos.inventory.Update(entry); err != nil {
			return nil, uc.rollbackTransaction(tx,
				domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update inventory entry", 500, err))
		}
	}

	if used > 0 {
		if err := repos.players.Update(player); err != nil {
			return nil, uc.rollbackTransaction(tx,
				domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update player", 500, err))
		}
	}

	if err := uc.commitTransaction(tx); err != nil {
		return nil, err
	}

	uc.logger.Info("Item consumed",
		zap.Int64("playerID", playerID),
		zap.Int64("itemID", itemID),
		zap.Int("requested", count),
		zap.Int("used", used),
		zap.Int("remaining", entry.ItemCount))

	return &domain.ConsumeResult{
		ItemID:         itemID,
		RemainingCount: entry.ItemCount,
		Player: domain.ConsumePlayer{
			ID: player.ID,
			HP: player.HP,
			MP: player.MP,
		},
	}, nil
}

// targetStatus returns the stat the item acts on, and whether the item's
// effect type is recognized at all
func targetStatus(player *domain.Player, itemType domain.ItemType) (int, bool) {
	switch itemType {
	case domain.ItemTypeHPPotion:
		return player.HP, true
	case domain.ItemTypeMPPotion:
		return player.MP, true
	default:
		return 0, false
	}
}

// applyHeal raises status by heal per unit for up to count units. A unit
// that would reach or pass StatusMax clamps the status to exactly StatusMax,
// is still counted as used, and ends consumption early.
func applyHeal(status, heal, count int) (newStatus, used int) {
	for i := 0; i < count; i++ {
		used++
		if heal+status >= domain.StatusMax {
			status = domain.StatusMax
			break
		}
		status += heal
	}
	return status, used
}

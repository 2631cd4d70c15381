package economy

import (
	"github.com/kakemizuh/gameeconomy/internal/domain"
	"go.uber.org/zap"
)

// gachaRollRange is the inclusive upper bound of a draw roll. Weights are
// percentages, so a catalog whose weights sum to 100 never misses.
const gachaRollRange = 100

// drawGacha runs drawCount independent weighted draws, debits the player
// unitPrice per draw, and credits the winnings to the inventory
func (uc *EconomyUseCase) drawGacha(playerID int64, drawCount, unitPrice int) (*domain.GachaResult, error) {
	if err := uc.validateCount(drawCount); err != nil {
		return nil, err
	}
	if unitPrice < 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidArgument, "Unit price must not be negative", 400, nil)
	}

	tx, repos, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	player, err := uc.lockPlayer(repos, playerID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	cost := unitPrice * drawCount
	if player.Money < cost {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeInsufficientFunds, "Not enough money for gacha", 400, nil))
	}

	// One catalog read fixes the weight table for the whole batch.
	items, err := repos.items.GetAll()
	if err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to load item catalog", 500, err))
	}
	if len(items) == 0 {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeNoItemData, "Item catalog is empty", 404, nil))
	}

	table := newWeightTable(items)

	tally := make(map[int64]int, len(items))
	for i := 0; i < drawCount; i++ {
		roll := uc.rand(gachaRollRange) + 1
		if itemID, won := table.pick(roll); won {
			tally[itemID]++
		}
	}

	player.Money -= cost
	if err := repos.players.Update(player); err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update player", 500, err))
	}

	result := &domain.GachaResult{
		Draws: make([]domain.GachaDraw, 0, len(tally)),
		Player: domain.GachaPlayer{
			Items: make([]domain.GachaItem, 0, len(tally)),
		},
	}

	// Walk the catalog order so the result is deterministic for a given
	// set of wins.
	for _, item := range items {
		won := tally[item.ID]
		if won == 0 {
			continue
		}

		total, err := uc.upsertEntry(repos, playerID, item.ID, won)
		if err != nil {
			return nil, uc.rollbackTransaction(tx, err)
		}

		result.Draws = append(result.Draws, domain.GachaDraw{ItemID: item.ID, Count: won})
		result.Player.Items = append(result.Player.Items, domain.GachaItem{ItemID: item.ID, Count: total})
	}

	if err := uc.commitTransaction(tx); err != nil {
		return nil, err
	}

	result.Player.Money = player.Money

	uc.logger.Info("Gacha drawn",
		zap.Int64("playerID", playerID),
		zap.Int("draws", drawCount),
		zap.Int("cost", cost),
		zap.Int("distinctWins", len(result.Draws)))

	return result, nil
}

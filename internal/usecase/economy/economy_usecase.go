package economy

import (
	"math/rand"

	"github.com/kakemizuh/gameeconomy/internal/domain"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"
	"gorm.io/gorm"
)

// EconomyUseCase implements domain.EconomyUseCase. Every operation runs in
// one database transaction and takes a row lock on the target player before
// reading any state that informs a write.
type EconomyUseCase struct {
	playerRepo    domain.PlayerRepository
	itemRepo      domain.ItemRepository
	inventoryRepo domain.InventoryRepository
	db            *gorm.DB
	logger        *logger.Logger

	// rand returns a uniform integer in [0, n); injected so gacha draws
	// are deterministic under test.
	rand func(n int) int
}

// NewEconomyUseCase creates a new economy usecase
func NewEconomyUseCase(
	playerRepo domain.PlayerRepository,
	itemRepo domain.ItemRepository,
	inventoryRepo domain.InventoryRepository,
	db *gorm.DB,
	logger *logger.Logger,
) domain.EconomyUseCase {
	logger.Info("EconomyUseCase initialized successfully")
	return &EconomyUseCase{
		playerRepo:    playerRepo,
		itemRepo:      itemRepo,
		inventoryRepo: inventoryRepo,
		db:            db,
		logger:        logger,
		rand:          rand.Intn,
	}
}

// GrantItem adds count of an item to a player's inventory
func (uc *EconomyUseCase) GrantItem(playerID, itemID int64, count int) (*domain.GrantResult, error) {
	return uc.grantItem(playerID, itemID, count)
}

// ConsumeItem uses up to count of an item, applying its stat effect with
// saturation at the status cap
func (uc *EconomyUseCase) ConsumeItem(playerID, itemID int64, count int) (*domain.ConsumeResult, error) {
	return uc.consumeItem(playerID, itemID, count)
}

// DrawGacha runs drawCount weighted random draws paid from the player's money
func (uc *EconomyUseCase) DrawGacha(playerID int64, drawCount, unitPrice int) (*domain.GachaResult, error) {
	return uc.drawGacha(playerID, drawCount, unitPrice)
}

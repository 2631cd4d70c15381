package economy

import (
	"testing"

	"github.com/kakemizuh/gameeconomy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedGachaCatalog installs a four-item catalog whose weights sum to 100.
// Cumulative bounds: 40, 70, 90, 100.
func seedGachaCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	seedItem(t, db, &domain.Item{ID: 1, Name: "Herb", Heal: 10, Price: 5, Percent: 40, ItemType: domain.ItemTypeHPPotion})
	seedItem(t, db, &domain.Item{ID: 2, Name: "HP Potion", Heal: 50, Price: 20, Percent: 30, ItemType: domain.ItemTypeHPPotion})
	seedItem(t, db, &domain.Item{ID: 3, Name: "MP Potion", Heal: 50, Price: 20, Percent: 20, ItemType: domain.ItemTypeMPPotion})
	seedItem(t, db, &domain.Item{ID: 4, Name: "Elixir", Heal: 200, Price: 100, Percent: 10, ItemType: domain.ItemTypeHPPotion})
}

// fixedRolls replaces the draw source with a scripted sequence. Values are
// pre-increment, so a scripted 0 becomes roll 1 and 99 becomes roll 100.
func fixedRolls(uc *EconomyUseCase, rolls ...int) {
	idx := 0
	uc.rand = func(n int) int {
		r := rolls[idx]
		idx++
		return r
	}
}

func TestDrawGacha_AwardsAndDebits(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUseCase(t, db)

	seedPlayer(t, db, &domain.Player{ID: 1, Name: "alice", Credential: "x", Money: 100, HP: 100, MP: 50})
	seedGachaCatalog(t, db)

	// Rolls 1, 45, 100: item 1, item 2, item 4.
	fixedRolls(uc, 0, 44, 99)

	result, err := uc.DrawGacha(1, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, []domain.GachaDraw{
		{ItemID: 1, Count: 1},
		{ItemID: 2, Count: 1},
		{ItemID: 4, Count: 1},
	}, result.Draws)
	assert.Equal(t, []domain.GachaItem{
		{ItemID: 1, Count: 1},
		{ItemID: 2, Count: 1},
		{ItemID: 4, Count: 1},
	}, result.Player.Items)
	assert.Equal(t, 70, result.Player.Money)

	player := fetchPlayer(t, db, 1)
	assert.Equal(t, 70, player.Money)
}

func TestDrawGacha_TalliesRepeatWins(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUseCase(t, db)

	seedPlayer(t, db, &domain.Player{ID: 1, Name: "alice", Credential: "x", Money: 100, HP: 100, MP: 50})
	seedGachaCatalog(t, db)
	seedEntry(t, db, 1, 1, 5)

	// Rolls 40, 40, 41: item 1 twice, item 2 once.
	fixedRolls(uc, 39, 39, 40)

	result, err := uc.DrawGacha(1, 3, 10)
	require.NoError(t, err)

	// Draws reports wins from this batch; Player.Items the resulting totals.
	assert.Equal(t, []domain.GachaDraw{
		{ItemID: 1, Count: 2},
		{ItemID: 2, Count: 1},
	}, result.Draws)
	assert.Equal(t, []domain.GachaItem{
		{ItemID: 1, Count: 7},
		{ItemID: 2, Count: 1},
	}, result.Player.Items)

	entry := fetchEntry(t, db, 1, 1)
	require.NotNil(t, entry)
	assert.Equal(t, 7, entry.ItemCount)
}

func TestDrawGacha_FullWeightItemAlwaysWins(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUseCase(t, db)

	seedPlayer(t, db, &domain.Player{ID: 1, Name: "alice", Credential: "x", Money: 1000, HP: 100, MP: 50})
	seedItem(t, db, &domain.Item{ID: 1, Name: "Herb", Heal: 10, Price: 5, Percent: 100, ItemType: domain.ItemTypeHPPotion})

	// Lowest, middle and highest possible rolls all land on the only item.
	fixedRolls(uc, 0, 49, 99)

	result, err := uc.DrawGacha(1, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.GachaDraw{{ItemID: 1, Count: 3}}, result.Draws)

	entry := fetchEntry(t, db, 1, 1)
	require.NotNil(t, entry)
	assert.Equal(t, 3, entry.ItemCount)
}

func TestDrawGacha_MissAwardsNothing(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUseCase(t, db)

	seedPlayer(t, db, &domain.Player{ID: 1, Name: "alice", Credential: "x", Money: 100, HP: 100, MP: 50})

	// Weights sum to 50, so rolls above 50 win nothing.
	seedItem(t, db, &domain.Item{ID: 1, Name: "Herb", Heal: 10, Price: 5, Percent: 50, ItemType: domain.ItemTypeHPPotion})

	// Rolls 51 and 100 miss, roll 50 wins.
	fixedRolls(uc, 50, 99, 49)

	result, err := uc.DrawGacha(1, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, []domain.GachaDraw{{ItemID: 1, Count: 1}}, result.Draws)

	// The price is charged per draw, wins or not.
	assert.Equal(t, 70, result.Player.Money)
}

func TestDrawGacha_InsufficientFundsLeavesStateUntouched(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUseCase(t, db)

	seedPlayer(t, db, &domain.Player{ID: 1, Name: "alice", Credential: "x", Money: 25, HP: 100, MP: 50})
	seedGachaCatalog(t, db)

	result, err := uc.DrawGacha(1, 3, 10)
	assert.Nil(t, result)
	assertAppError(t, err, domain.ErrCodeInsufficientFunds)

	player := fetchPlayer(t, db, 1)
	assert.Equal(t, 25, player.Money)
}

func TestDrawGacha_EmptyCatalog(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUseCase(t, db)

	seedPlayer(t, db, &domain.Player{ID: 1, Name: "alice", Credential: "x", Money: 100, HP: 100, MP: 50})

	result, err := uc.DrawGacha(1, 1, 10)
	assert.Nil(t, result)
	assertAppError(t, err, domain.ErrCodeNoItemData)

	player := fetchPlayer(t, db, 1)
	assert.Equal(t, 100, player.Money)
}

func TestDrawGacha_Validation(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUseCase(t, db)

	seedPlayer(t, db, &domain.Player{ID: 1, Name: "alice", Credential: "x", Money: 100, HP: 100, MP: 50})
	seedGachaCatalog(t, db)

	tests := []struct {
		name      string
		playerID  int64
		drawCount int
		unitPrice int
		code      string
	}{
		{name: "Zero_Draws", playerID: 1, drawCount: 0, unitPrice: 10, code: domain.ErrCodeInvalidArgument},
		{name: "Negative_Draws", playerID: 1, drawCount: -1, unitPrice: 10, code: domain.ErrCodeInvalidArgument},
		{name: "Negative_Price", playerID: 1, drawCount: 1, unitPrice: -5, code: domain.ErrCodeInvalidArgument},
		{name: "Unknown_Player", playerID: 99, drawCount: 1, unitPrice: 10, code: domain.ErrCodePlayerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.DrawGacha(tt.playerID, tt.drawCount, tt.unitPrice)
			assert.Nil(t, result)
			assertAppError(t, err, tt.code)
		})
	}
}

func TestDrawGacha_FreeDrawsAllowed(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUseCase(t, db)

	seedPlayer(t, db, &domain.Player{ID: 1, Name: "broke", Credential: "x", Money: 0, HP: 100, MP: 50})
	seedGachaCatalog(t, db)

	fixedRolls(uc, 0)

	result, err := uc.DrawGacha(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Player.Money)
	assert.Equal(t, []domain.GachaDraw{{ItemID: 1, Count: 1}}, result.Draws)
}

package economy

import (
	"testing"

	"github.com/kakemizuh/gameeconomy/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWeightTable_Pick(t *testing.T) {
	table := newWeightTable([]*domain.Item{
		{ID: 1, Percent: 40},
		{ID: 2, Percent: 30},
		{ID: 3, Percent: 20},
		{ID: 4, Percent: 10},
	})

	tests := []struct {
		name   string
		roll   int
		itemID int64
		won    bool
	}{
		{name: "Lowest_Roll", roll: 1, itemID: 1, won: true},
		{name: "First_Upper_Bound", roll: 40, itemID: 1, won: true},
		{name: "Second_Lower_Bound", roll: 41, itemID: 2, won: true},
		{name: "Third_Upper_Bound", roll: 90, itemID: 3, won: true},
		{name: "Highest_Roll", roll: 100, itemID: 4, won: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itemID, won := table.pick(tt.roll)
			assert.Equal(t, tt.won, won)
			assert.Equal(t, tt.itemID, itemID)
		})
	}
}

func TestWeightTable_PickMissesPastTotal(t *testing.T) {
	table := newWeightTable([]*domain.Item{
		{ID: 1, Percent: 25},
		{ID: 2, Percent: 25},
	})

	itemID, won := table.pick(50)
	assert.True(t, won)
	assert.Equal(t, int64(2), itemID)

	_, won = table.pick(51)
	assert.False(t, won)

	_, won = table.pick(100)
	assert.False(t, won)
}

func TestWeightTable_ZeroWeightItemNeverWins(t *testing.T) {
	table := newWeightTable([]*domain.Item{
		{ID: 1, Percent: 50},
		{ID: 2, Percent: 0},
		{ID: 3, Percent: 50},
	})

	// Item 2 spans no rolls: 50 still lands on item 1, 51 skips to item 3.
	itemID, won := table.pick(50)
	assert.True(t, won)
	assert.Equal(t, int64(1), itemID)

	itemID, won = table.pick(51)
	assert.True(t, won)
	assert.Equal(t, int64(3), itemID)
}

package economy

import "github.com/kakemizuh/gameeconomy/internal/domain"

// weightEntry is one row of the cumulative drop-weight table.
type weightEntry struct {
	itemID     int64
	cumulative int
}

// weightTable is an immutable snapshot of the catalog's drop weights,
// built once per draw batch so every trial sees the same odds.
type weightTable []weightEntry

// newWeightTable builds the cumulative table in catalog enumeration order.
func newWeightTable(items []*domain.Item) weightTable {
	table := make(weightTable, 0, len(items))
	total := 0
	for _, item := range items {
		total += item.Percent
		table = append(table, weightEntry{itemID: item.ID, cumulative: total})
	}
	return table
}

// pick resolves a roll in [1, 100] to the first item whose cumulative
// weight reaches it. When the weights sum below 100, high rolls win
// nothing and pick reports a miss.
func (t weightTable) pick(roll int) (int64, bool) {
	for _, entry := range t {
		if roll <= entry.cumulative {
			return entry.itemID, true
		}
	}
	return 0, false
}

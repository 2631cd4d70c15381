package domain

import "gorm.io/gorm"

// InventoryEntry represents the count of one item held by one player. An
// entry with a count of zero must not exist: it is deleted instead, so
// absence means "none held".
type InventoryEntry struct {
	PlayerID  int64 `json:"player_id" gorm:"primaryKey;column:player_id;type:bigint"`
	ItemID    int64 `json:"item_id" gorm:"primaryKey;column:item_id;type:bigint"`
	ItemCount int   `json:"item_count" gorm:"not null;default:1"`
}

// TableName specifies the table name for InventoryEntry
func (e InventoryEntry) TableName() string {
	return "player_items"
}

// InventoryItemDetail is an inventory entry decorated with its catalog row,
// produced by the joined read used for display.
type InventoryItemDetail struct {
	PlayerID  int64    `json:"player_id"`
	ItemID    int64    `json:"item_id"`
	ItemCount int      `json:"item_count"`
	Name      string   `json:"name"`
	Heal      int      `json:"heal"`
	Price     int      `json:"price"`
	Percent   int      `json:"percent"`
	ItemType  ItemType `json:"item_type"`
}

// InventoryRepository defines the interface for per-player inventory data
type InventoryRepository interface {
	GetByPlayer(playerID int64) ([]*InventoryEntry, error)
	GetEntry(playerID, itemID int64) (*InventoryEntry, error)
	GetByPlayerWithItems(playerID int64) ([]*InventoryItemDetail, error)
	Create(entry *InventoryEntry) error
	Update(entry *InventoryEntry) error
	Delete(playerID, itemID int64) error
	WithTransaction(tx *gorm.DB) InventoryRepository
}

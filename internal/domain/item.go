package domain

import "gorm.io/gorm"

// ItemType represents the effect an item applies when consumed
type ItemType int

const (
	ItemTypeHPPotion ItemType = 1
	ItemTypeMPPotion ItemType = 2
)

// Item represents an entry in the consumable item catalog. The catalog is
// read-only at runtime; items are only ever created through migrations or
// seeding.
type Item struct {
	ID       int64    `json:"item_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name     string   `json:"name" gorm:"not null;type:varchar(64)"`
	Heal     int      `json:"heal" gorm:"not null;default:0"`
	Price    int      `json:"price" gorm:"not null;default:0"`
	Percent  int      `json:"percent" gorm:"not null;default:0"`
	ItemType ItemType `json:"item_type" gorm:"column:item_type;not null"`
}

// TableName specifies the table name for Item
func (i Item) TableName() string {
	return "items"
}

// ItemRepository defines the interface for item catalog data
type ItemRepository interface {
	GetByID(id int64) (*Item, error)
	GetAll() ([]*Item, error)
	WithTransaction(tx *gorm.DB) ItemRepository
}

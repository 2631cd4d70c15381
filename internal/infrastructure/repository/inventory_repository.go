package repository

import (
	"errors"

	"github.com/kakemizuh/gameeconomy/internal/domain"

	"gorm.io/gorm"
)

// InventoryRepository implements domain.InventoryRepository
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return &InventoryRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *InventoryRepository) WithTransaction(tx *gorm.DB) domain.InventoryRepository {
	return &InventoryRepository{db: tx}
}

// GetByPlayer retrieves all inventory entries for a player
func (r *InventoryRepository) GetByPlayer(playerID int64) ([]*domain.InventoryEntry, error) {
	var entries []*domain.InventoryEntry
	result := r.db.Where("player_id = ?", playerID).Order("item_id ASC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

// GetEntry retrieves a single (player, item) entry
func (r *InventoryRepository) GetEntry(playerID, itemID int64) (*domain.InventoryEntry, error) {
	var entry domain.InventoryEntry
	result := r.db.Where("player_id = ? AND item_id = ?", playerID, itemID).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &entry, nil
}

// GetByPlayerWithItems retrieves a player's inventory decorated with the
// catalog data for each entry, for display
func (r *InventoryRepository) GetByPlayerWithItems(playerID int64) ([]*domain.InventoryItemDetail, error) {
	var details []*domain.InventoryItemDetail
	result := r.db.Model(&domain.InventoryEntry{}).
		Select("player_items.player_id, player_items.item_id, player_items.item_count, items.name, items.heal, items.price, items.percent, items.item_type").
		Joins("LEFT JOIN items ON items.id = player_items.item_id").
		Where("player_items.player_id = ?", playerID).
		Order("player_items.item_id ASC").
		Scan(&details)
	if result.Error != nil {
		return nil, result.Error
	}
	return details, nil
}

// Create creates a new inventory entry
func (r *InventoryRepository) Create(entry *domain.InventoryEntry) error {
	return r.db.Create(entry).Error
}

// Update persists the count of an existing entry
func (r *InventoryRepository) Update(entry *domain.InventoryEntry) error {
	return r.db.Model(&domain.InventoryEntry{}).
		Where("player_id = ? AND item_id = ?", entry.PlayerID, entry.ItemID).
		Update("item_count", entry.ItemCount).Error
}

// Delete removes a (player, item) entry
func (r *InventoryRepository) Delete(playerID, itemID int64) error {
	return r.db.Where("player_id = ? AND item_id = ?", playerID, itemID).
		Delete(&domain.InventoryEntry{}).Error
}

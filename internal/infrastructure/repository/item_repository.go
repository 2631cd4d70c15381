package repository

import (
	"errors"

	"github.com/kakemizuh/gameeconomy/internal/domain"

	"gorm.io/gorm"
)

// ItemRepository implements domain.ItemRepository. The catalog is read-only
// from the engine's perspective.
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domain.ItemRepository {
	return &ItemRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *ItemRepository) WithTransaction(tx *gorm.DB) domain.ItemRepository {
	return &ItemRepository{db: tx}
}

// GetByID retrieves an item definition by ID
func (r *ItemRepository) GetByID(id int64) (*domain.Item, error) {
	var item domain.Item
	result := r.db.Where("id = ?", id).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &item, nil
}

// GetAll retrieves the full catalog in its natural enumeration order. Gacha
// draws walk this order, so it must be stable across calls.
func (r *ItemRepository) GetAll() ([]*domain.Item, error) {
	var items []*domain.Item
	result := r.db.Order("id ASC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

package repository

import (
	"errors"
	"time"

	"github.com/kakemizuh/gameeconomy/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository implements domain.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *PlayerRepository) WithTransaction(tx *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: tx}
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id int64) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByIDForUpdate retrieves a player by ID and locks the row for the
// duration of the enclosing transaction. SQLite has no FOR UPDATE; its
// single-writer lock already serializes, so the clause is postgres-only.
func (r *PlayerRepository) GetByIDForUpdate(id int64) (*domain.Player, error) {
	query := r.db
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var player domain.Player
	result := query.Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByName retrieves a player by name
func (r *PlayerRepository) GetByName(name string) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("name = ?", name).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetAll retrieves all players
func (r *PlayerRepository) GetAll() ([]*domain.Player, error) {
	var players []*domain.Player
	result := r.db.Order("id ASC").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

// Create creates a new player
func (r *PlayerRepository) Create(player *domain.Player) error {
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	return r.db.Create(player).Error
}

// Update updates an existing player
func (r *PlayerRepository) Update(player *domain.Player) error {
	player.UpdatedAt = time.Now()
	return r.db.Save(player).Error
}

// Delete removes a player; inventory rows follow via the schema's cascade
func (r *PlayerRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&domain.Player{}).Error
}

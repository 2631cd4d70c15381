package domain

import (
	"time"

	"gorm.io/gorm"
)

// StatusMax is the upper clamp for a player's hp and mp.
const StatusMax = 200

// Player represents a player account in the system
type Player struct {
	ID         int64     `json:"player_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name       string    `json:"name" gorm:"not null;type:varchar(64)"`
	Credential string    `json:"-" gorm:"not null;type:varchar(128)"`
	Money      int       `json:"money" gorm:"not null;default:0"`
	HP         int       `json:"hp" gorm:"column:hp;not null"`
	MP         int       `json:"mp" gorm:"column:mp;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// PlayerRepository defines the interface for player data
type PlayerRepository interface {
	GetByID(id int64) (*Player, error)
	GetByIDForUpdate(id int64) (*Player, error)
	GetByName(name string) (*Player, error)
	GetAll() ([]*Player, error)
	Create(player *Player) error
	Update(player *Player) error
	Delete(id int64) error
	WithTransaction(tx *gorm.DB) PlayerRepository
}

// PlayerUseCase defines the interface for player business logic
type PlayerUseCase interface {
	Authenticate(name, credential string) (string, error)
	GetPlayer(id int64) (*Player, error)
	GetAllPlayers() ([]*Player, error)
	CreatePlayer(name, credential string, money, hp, mp int) (int64, error)
	UpdatePlayer(id int64, name, credential string, money, hp, mp int) error
	DeletePlayer(id int64) error
}

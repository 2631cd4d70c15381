package seeder

import (
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/kakemizuh/gameeconomy/internal/domain"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedItems seeds the starter item catalog. Drop weights sum to exactly
// 100 so no gacha roll misses.
func (s *Seeder) SeedItems() error {
	log.Printf("Seeding items...")

	items := []domain.Item{
		{ID: 1, Name: "Herb", Heal: 10, Price: 5, Percent: 40, ItemType: domain.ItemTypeHPPotion},
		{ID: 2, Name: "HP Potion", Heal: 50, Price: 20, Percent: 30, ItemType: domain.ItemTypeHPPotion},
		{ID: 3, Name: "MP Potion", Heal: 50, Price: 20, Percent: 20, ItemType: domain.ItemTypeMPPotion},
		{ID: 4, Name: "Elixir", Heal: 200, Price: 100, Percent: 10, ItemType: domain.ItemTypeHPPotion},
	}

	for _, item := range items {
		var existing domain.Item
		err := s.db.Where("id = ?", item.ID).First(&existing).Error
		if err == nil {
			log.Printf("Item %d already exists, skipping.", item.ID)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := s.db.Create(&item).Error; err != nil {
			log.Printf("Error creating item %d.", item.ID)
			return err
		}
		log.Printf("Successfully created item %d.", item.ID)
	}

	log.Printf("Item seeding completed successfully")
	return nil
}

// SeedPlayers seeds demo players
func (s *Seeder) SeedPlayers() error {
	log.Printf("Seeding players...")

	hash := sha256.Sum256([]byte("credential123"))
	credentialHash := hex.EncodeToString(hash[:])

	players := []domain.Player{
		{ID: 1, Name: "player1", Credential: credentialHash, Money: 100, HP: 150, MP: 120},
		{ID: 2, Name: "player2", Credential: credentialHash, Money: 500, HP: 200, MP: 200},
		{ID: 3, Name: "player3", Credential: credentialHash, Money: 0, HP: 50, MP: 30},
	}

	for _, player := range players {
		var existing domain.Player
		err := s.db.Where("id = ?", player.ID).First(&existing).Error
		if err == nil {
			log.Printf("Player %d already exists, skipping.", player.ID)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := s.db.Create(&player).Error; err != nil {
			log.Printf("Error creating player %d.", player.ID)
			return err
		}
		log.Printf("Successfully created player %d.", player.ID)
	}

	log.Printf("Player seeding completed successfully")
	return nil
}

package player

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/kakemizuh/gameeconomy/internal/domain"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/auth"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PlayerUseCase implements domain.PlayerUseCase
type PlayerUseCase struct {
	playerRepo domain.PlayerRepository
	jwtSvc     auth.JWTService
	logger     *logger.Logger
}

// NewPlayerUseCase creates a new player use case
func NewPlayerUseCase(playerRepo domain.PlayerRepository, jwtSvc auth.JWTService, logger *logger.Logger) domain.PlayerUseCase {
	return &PlayerUseCase{
		playerRepo: playerRepo,
		jwtSvc:     jwtSvc,
		logger:     logger,
	}
}

// Authenticate validates player credentials and returns a JWT token
func (uc *PlayerUseCase) Authenticate(name, credential string) (string, error) {
	if name == "" || credential == "" {
		uc.logger.Warn("Authentication attempt with empty credentials", zap.String("name", name))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	player, err := uc.playerRepo.GetByName(name)
	if err != nil {
		uc.logger.Error("Failed to get player during authentication", zap.String("name", name), zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		uc.logger.Warn("Authentication failed - player not found", zap.String("name", name))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	if !uc.verifyCredential(credential, player.Credential) {
		uc.logger.Warn("Authentication failed - credential mismatch",
			zap.Int64("playerID", player.ID),
			zap.String("name", name))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	token, err := uc.jwtSvc.GenerateToken(strconv.FormatInt(player.ID, 10), player.Name)
	if err != nil {
		uc.logger.Error("Failed to generate JWT token", zap.Int64("playerID", player.ID), zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", 500, err)
	}

	uc.logger.Info("Player authenticated", zap.Int64("playerID", player.ID), zap.String("name", name))
	return token, nil
}

// GetPlayer retrieves a player by ID
func (uc *PlayerUseCase) GetPlayer(id int64) (*domain.Player, error) {
	if id <= 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidArgument, "Invalid player ID", 400, nil)
	}

	player, err := uc.playerRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to get player", zap.Int64("playerID", id), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	return player, nil
}

// GetAllPlayers retrieves all players
func (uc *PlayerUseCase) GetAllPlayers() ([]*domain.Player, error) {
	players, err := uc.playerRepo.GetAll()
	if err != nil {
		uc.logger.Error("Failed to list players", zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list players", 500, err)
	}
	return players, nil
}

// CreatePlayer creates a new player and returns its generated ID
func (uc *PlayerUseCase) CreatePlayer(name, credential string, money, hp, mp int) (int64, error) {
	if err := validatePlayerFields(name, credential, money, hp, mp); err != nil {
		return 0, err
	}

	player := &domain.Player{
		Name:       name,
		Credential: uc.hashCredential(credential),
		Money:      money,
		HP:         hp,
		MP:         mp,
	}

	if err := uc.playerRepo.Create(player); err != nil {
		uc.logger.Error("Failed to create player", zap.String("name", name), zap.Error(err))
		return 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create player", 500, err)
	}

	uc.logger.Info("Player created", zap.Int64("playerID", player.ID), zap.String("name", name))
	return player.ID, nil
}

// UpdatePlayer replaces a player's mutable fields
func (uc *PlayerUseCase) UpdatePlayer(id int64, name, credential string, money, hp, mp int) error {
	if err := validatePlayerFields(name, credential, money, hp, mp); err != nil {
		return err
	}

	player, err := uc.playerRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to get player for update", zap.Int64("playerID", id), zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		return domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	player.Name = name
	player.Credential = uc.hashCredential(credential)
	player.Money = money
	player.HP = hp
	player.MP = mp

	if err := uc.playerRepo.Update(player); err != nil {
		uc.logger.Error("Failed to update player", zap.Int64("playerID", id), zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update player", 500, err)
	}

	return nil
}

// DeletePlayer removes a player
func (uc *PlayerUseCase) DeletePlayer(id int64) error {
	player, err := uc.playerRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to get player for delete", zap.Int64("playerID", id), zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		return domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	if err := uc.playerRepo.Delete(id); err != nil {
		uc.logger.Error("Failed to delete player", zap.Int64("playerID", id), zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete player", 500, err)
	}

	uc.logger.Info("Player deleted", zap.Int64("playerID", id))
	return nil
}

// validatePlayerFields checks field invariants shared by create and update
func validatePlayerFields(name, credential string, money, hp, mp int) error {
	if name == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	if credential == "" {
		return domain.NewValidationError("credential", "must not be empty")
	}
	if money < 0 {
		return domain.NewValidationError("money", "must not be negative")
	}
	if hp < 0 || hp > domain.StatusMax {
		return domain.NewValidationError("hp", "must be between 0 and 200")
	}
	if mp < 0 || mp > domain.StatusMax {
		return domain.NewValidationError("mp", "must be between 0 and 200")
	}
	return nil
}

// hashCredential hashes a raw credential for storage
func (uc *PlayerUseCase) hashCredential(credential string) string {
	hash := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(hash[:])
}

// verifyCredential checks a raw credential against the stored hash
func (uc *PlayerUseCase) verifyCredential(credential, storedHash string) bool {
	if credential == "" || storedHash == "" {
		return false
	}
	hash := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(hash[:]) == storedHash
}

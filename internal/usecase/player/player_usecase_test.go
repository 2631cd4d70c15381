package player

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kakemizuh/gameeconomy/internal/config"
	"github.com/kakemizuh/gameeconomy/internal/domain"
	"github.com/kakemizuh/gameeconomy/internal/domain/mocks"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/auth"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hashOf(credential string) string {
	h := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(h[:])
}

func newTestUseCase(t *testing.T, repo domain.PlayerRepository) *PlayerUseCase {
	t.Helper()
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	return &PlayerUseCase{
		playerRepo: repo,
		jwtSvc:     jwtSvc,
		logger:     logger.NewLogger("test", "debug"),
	}
}

func TestAuthenticate(t *testing.T) {
	stored := &domain.Player{ID: 7, Name: "alice", Credential: hashOf("secret"), Money: 100, HP: 100, MP: 100}

	tests := []struct {
		name       string
		playerName string
		credential string
		setup      func(repo *mocks.MockPlayerRepository)
		wantCode   string
	}{
		{
			name:       "Valid_Credentials",
			playerName: "alice",
			credential: "secret",
			setup: func(repo *mocks.MockPlayerRepository) {
				repo.EXPECT().GetByName("alice").Return(stored, nil)
			},
		},
		{
			name:       "Wrong_Credential",
			playerName: "alice",
			credential: "nope",
			setup: func(repo *mocks.MockPlayerRepository) {
				repo.EXPECT().GetByName("alice").Return(stored, nil)
			},
			wantCode: domain.ErrCodeInvalidCredentials,
		},
		{
			name:       "Unknown_Player",
			playerName: "bob",
			credential: "secret",
			setup: func(repo *mocks.MockPlayerRepository) {
				repo.EXPECT().GetByName("bob").Return(nil, nil)
			},
			wantCode: domain.ErrCodeInvalidCredentials,
		},
		{
			name:       "Empty_Name",
			playerName: "",
			credential: "secret",
			setup:      func(repo *mocks.MockPlayerRepository) {},
			wantCode:   domain.ErrCodeInvalidCredentials,
		},
		{
			name:       "Repository_Error",
			playerName: "alice",
			credential: "secret",
			setup: func(repo *mocks.MockPlayerRepository) {
				repo.EXPECT().GetByName("alice").Return(nil, errors.New("connection refused"))
			},
			wantCode: domain.ErrCodeDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockPlayerRepository(ctrl)
			tt.setup(mockRepo)
			uc := newTestUseCase(t, mockRepo)

			token, err := uc.Authenticate(tt.playerName, tt.credential)

			if tt.wantCode != "" {
				assert.Empty(t, token)
				appErr, ok := domain.IsAppError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, appErr.Code)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestGetPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	uc := newTestUseCase(t, mockRepo)

	stored := &domain.Player{ID: 7, Name: "alice", Credential: hashOf("secret")}
	mockRepo.EXPECT().GetByID(int64(7)).Return(stored, nil)

	player, err := uc.GetPlayer(7)
	require.NoError(t, err)
	assert.Equal(t, stored, player)
}

func TestGetPlayer_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	uc := newTestUseCase(t, mockRepo)

	mockRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

	player, err := uc.GetPlayer(99)
	assert.Nil(t, player)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
}

func TestGetPlayer_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUseCase(t, mocks.NewMockPlayerRepository(ctrl))

	player, err := uc.GetPlayer(0)
	assert.Nil(t, player)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidArgument, appErr.Code)
}

func TestCreatePlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	uc := newTestUseCase(t, mockRepo)

	mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *domain.Player) error {
		assert.Equal(t, "alice", p.Name)
		assert.Equal(t, hashOf("secret"), p.Credential)
		assert.Equal(t, 100, p.Money)
		p.ID = 42
		return nil
	})

	id, err := uc.CreatePlayer("alice", "secret", 100, 150, 120)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCreatePlayer_Validation(t *testing.T) {
	tests := []struct {
		name       string
		playerName string
		credential string
		money      int
		hp         int
		mp         int
	}{
		{name: "Empty_Name", playerName: "", credential: "secret", money: 0, hp: 100, mp: 100},
		{name: "Empty_Credential", playerName: "alice", credential: "", money: 0, hp: 100, mp: 100},
		{name: "Negative_Money", playerName: "alice", credential: "secret", money: -1, hp: 100, mp: 100},
		{name: "HP_Above_Cap", playerName: "alice", credential: "secret", money: 0, hp: 201, mp: 100},
		{name: "Negative_MP", playerName: "alice", credential: "secret", money: 0, hp: 100, mp: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := newTestUseCase(t, mocks.NewMockPlayerRepository(ctrl))

			id, err := uc.CreatePlayer(tt.playerName, tt.credential, tt.money, tt.hp, tt.mp)
			assert.Zero(t, id)
			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, domain.ErrCodeInvalidArgument, appErr.Code)
		})
	}
}

func TestUpdatePlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	uc := newTestUseCase(t, mockRepo)

	stored := &domain.Player{ID: 7, Name: "alice", Credential: hashOf("old"), Money: 10, HP: 50, MP: 50}
	mockRepo.EXPECT().GetByID(int64(7)).Return(stored, nil)
	mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *domain.Player) error {
		assert.Equal(t, "alice2", p.Name)
		assert.Equal(t, hashOf("new"), p.Credential)
		assert.Equal(t, 75, p.Money)
		assert.Equal(t, 200, p.HP)
		return nil
	})

	err := uc.UpdatePlayer(7, "alice2", "new", 75, 200, 100)
	require.NoError(t, err)
}

func TestDeletePlayer_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	uc := newTestUseCase(t, mockRepo)

	mockRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

	err := uc.DeletePlayer(99)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
}

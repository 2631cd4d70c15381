package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/kakemizuh/gameeconomy/internal/domain"
	"github.com/kakemizuh/gameeconomy/internal/domain/mocks"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEconomyTestRouter(uc domain.EconomyUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewEconomyHandler(uc, 10, logger.NewLogger("test", "debug"))

	router := gin.New()
	router.POST("/players/:id/items/grant", handler.GrantItem)
	router.POST("/players/:id/items/use", handler.UseItem)
	router.POST("/players/:id/gacha", handler.DrawGacha)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGrantItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEconomyUseCase(ctrl)
	mockUC.EXPECT().GrantItem(int64(1), int64(7), 3).
		Return(&domain.GrantResult{ItemID: 7, Count: 5}, nil)

	router := newEconomyTestRouter(mockUC)
	w := postJSON(t, router, "/players/1/items/grant", GrantItemRequest{ItemID: 7, Count: 3})

	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.GrantResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(7), result.ItemID)
	assert.Equal(t, 5, result.Count)
}

func TestGrantItemHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       interface{}
		setup      func(uc *mocks.MockEconomyUseCase)
		wantStatus int
	}{
		{
			name:       "Bad_Player_ID",
			path:       "/players/abc/items/grant",
			body:       GrantItemRequest{ItemID: 7, Count: 3},
			setup:      func(uc *mocks.MockEconomyUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Missing_Count",
			path:       "/players/1/items/grant",
			body:       map[string]interface{}{"item_id": 7},
			setup:      func(uc *mocks.MockEconomyUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Item_Not_Found",
			path: "/players/1/items/grant",
			body: GrantItemRequest{ItemID: 99, Count: 1},
			setup: func(uc *mocks.MockEconomyUseCase) {
				uc.EXPECT().GrantItem(int64(1), int64(99), 1).
					Return(nil, domain.NewAppError(domain.ErrCodeItemNotFound, "Item not found", http.StatusNotFound, nil))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockEconomyUseCase(ctrl)
			tt.setup(mockUC)

			router := newEconomyTestRouter(mockUC)
			w := postJSON(t, router, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestUseItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEconomyUseCase(ctrl)
	mockUC.EXPECT().ConsumeItem(int64(1), int64(7), 2).
		Return(&domain.ConsumeResult{
			ItemID:         7,
			RemainingCount: 1,
			Player:         domain.ConsumePlayer{ID: 1, HP: 120, MP: 50},
		}, nil)

	router := newEconomyTestRouter(mockUC)
	w := postJSON(t, router, "/players/1/items/use", UseItemRequest{ItemID: 7, Count: 2})

	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.ConsumeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.RemainingCount)
	assert.Equal(t, 120, result.Player.HP)
}

func TestUseItemHandler_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEconomyUseCase(ctrl)
	mockUC.EXPECT().ConsumeItem(int64(1), int64(7), 1).
		Return(nil, domain.NewAppError(domain.ErrCodeItemNotOwned, "Player does not hold this item", http.StatusNotFound, nil))

	router := newEconomyTestRouter(mockUC)
	w := postJSON(t, router, "/players/1/items/use", UseItemRequest{ItemID: 7, Count: 1})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, domain.ErrCodeItemNotOwned, resp.Error.Code)
	assert.False(t, resp.Success)
}

func TestDrawGachaHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEconomyUseCase(ctrl)

	// The unit price comes from handler configuration, not the request.
	mockUC.EXPECT().DrawGacha(int64(1), 3, 10).
		Return(&domain.GachaResult{
			Draws: []domain.GachaDraw{{ItemID: 2, Count: 3}},
			Player: domain.GachaPlayer{
				Money: 70,
				Items: []domain.GachaItem{{ItemID: 2, Count: 3}},
			},
		}, nil)

	router := newEconomyTestRouter(mockUC)
	w := postJSON(t, router, "/players/1/gacha", GachaRequest{Count: 3})

	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.GachaResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Draws, 1)
	assert.Equal(t, int64(2), result.Draws[0].ItemID)
	assert.Equal(t, 70, result.Player.Money)
}

func TestDrawGachaHandler_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEconomyUseCase(ctrl)
	mockUC.EXPECT().DrawGacha(int64(1), 5, 10).
		Return(nil, domain.NewAppError(domain.ErrCodeInsufficientFunds, "Not enough money for gacha", http.StatusBadRequest, nil))

	router := newEconomyTestRouter(mockUC)
	w := postJSON(t, router, "/players/1/gacha", GachaRequest{Count: 5})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, domain.ErrCodeInsufficientFunds, resp.Error.Code)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakemizuh/gameeconomy/internal/domain"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// EconomyHandler handles HTTP requests for the economy engine operations
type EconomyHandler struct {
	economyUseCase domain.EconomyUseCase
	gachaUnitPrice int
	logger         *logger.Logger
}

// NewEconomyHandler creates a new economy handler
func NewEconomyHandler(economyUseCase domain.EconomyUseCase, gachaUnitPrice int, logger *logger.Logger) *EconomyHandler {
	return &EconomyHandler{
		economyUseCase: economyUseCase,
		gachaUnitPrice: gachaUnitPrice,
		logger:         logger,
	}
}

// GrantItemRequest represents the grant-item request body
type GrantItemRequest struct {
	ItemID int64 `json:"item_id" binding:"required" example:"7"`
	Count  int   `json:"count" binding:"required,gte=1" example:"3"`
}

// UseItemRequest represents the use-item request body
type UseItemRequest struct {
	ItemID int64 `json:"item_id" binding:"required" example:"1"`
	Count  int   `json:"count" binding:"required,gte=1" example:"2"`
}

// GachaRequest represents the gacha request body
type GachaRequest struct {
	Count int `json:"count" binding:"required,gte=1" example:"10"`
}

// GrantItem handles adding items to a player's inventory
// @Summary Grant items
// @Description Add count of an item to the player's inventory
// @Tags economy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Param request body GrantItemRequest true "Item and count"
// @Success 200 {object} domain.GrantResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/{id}/items/grant [post]
func (h *EconomyHandler) GrantItem(c *gin.Context) {
	playerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req GrantItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	result, err := h.economyUseCase.GrantItem(playerID, req.ItemID, req.Count)
	if err != nil {
		h.logger.Warn("Grant item failed",
			zap.Int64("playerID", playerID),
			zap.Int64("itemID", req.ItemID),
			zap.Int("count", req.Count),
			zap.Error(err))
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UseItem handles consuming items for their stat effect
// @Summary Use items
// @Description Consume up to count of an item, applying its effect with saturation at the status cap
// @Tags economy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Param request body UseItemRequest true "Item and count"
// @Success 200 {object} domain.ConsumeResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/{id}/items/use [post]
func (h *EconomyHandler) UseItem(c *gin.Context) {
	playerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	result, err := h.economyUseCase.ConsumeItem(playerID, req.ItemID, req.Count)
	if err != nil {
		h.logger.Warn("Use item failed",
			zap.Int64("playerID", playerID),
			zap.Int64("itemID", req.ItemID),
			zap.Int("count", req.Count),
			zap.Error(err))
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DrawGacha handles a batch of paid weighted random draws
// @Summary Draw gacha
// @Description Run count weighted random draws paid from the player's money
// @Tags economy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Param request body GachaRequest true "Draw count"
// @Success 200 {object} domain.GachaResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/{id}/gacha [post]
func (h *EconomyHandler) DrawGacha(c *gin.Context) {
	playerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req GachaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	result, err := h.economyUseCase.DrawGacha(playerID, req.Count, h.gachaUnitPrice)
	if err != nil {
		h.logger.Warn("Gacha draw failed",
			zap.Int64("playerID", playerID),
			zap.Int("count", req.Count),
			zap.Error(err))
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

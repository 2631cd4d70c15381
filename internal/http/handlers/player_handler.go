package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kakemizuh/gameeconomy/internal/domain"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerUseCase domain.PlayerUseCase
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerUseCase domain.PlayerUseCase) *PlayerHandler {
	return &PlayerHandler{
		playerUseCase: playerUseCase,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Name       string `json:"name" binding:"required" example:"player1"`
	Credential string `json:"credential" binding:"required" example:"credential123"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// PlayerRequest represents the create/update player request body
type PlayerRequest struct {
	Name       string `json:"name" binding:"required" example:"player1"`
	Credential string `json:"credential" binding:"required" example:"credential123"`
	Money      *int   `json:"money" binding:"required" example:"100"`
	HP         *int   `json:"hp" binding:"required" example:"150"`
	MP         *int   `json:"mp" binding:"required" example:"120"`
}

// renderError writes an error response using the AppError's HTTP status
func renderError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(domain.NewInternalError("", err)))
}

// parseIDParam parses the :id path parameter
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderError(c, domain.NewAppError(domain.ErrCodeInvalidArgument, "Player ID must be a number", http.StatusBadRequest, err))
		return 0, false
	}
	return id, true
}

// Login handles player authentication
// @Summary Player login
// @Description Authenticate a player and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *PlayerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	token, err := h.playerUseCase.Authenticate(req.Name, req.Credential)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// GetAllPlayers handles listing all players
// @Summary List players
// @Tags players
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Player
// @Router /players [get]
func (h *PlayerHandler) GetAllPlayers(c *gin.Context) {
	players, err := h.playerUseCase.GetAllPlayers()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// GetPlayer handles fetching one player by ID
// @Summary Get player
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	player, err := h.playerUseCase.GetPlayer(id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// CreatePlayer handles creating a player
// @Summary Create player
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlayerRequest true "Player fields"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} domain.ErrorResponse
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	id, err := h.playerUseCase.CreatePlayer(req.Name, req.Credential, *req.Money, *req.HP, *req.MP)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// UpdatePlayer handles replacing a player's fields
// @Summary Update player
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Param request body PlayerRequest true "Player fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	if err := h.playerUseCase.UpdatePlayer(id, req.Name, req.Credential, *req.Money, *req.HP, *req.MP); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// DeletePlayer handles removing a player
// @Summary Delete player
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.playerUseCase.DeletePlayer(id); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

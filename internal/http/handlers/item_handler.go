package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakemizuh/gameeconomy/internal/domain"
)

// ItemHandler handles plain catalog and inventory reads. These endpoints
// carry no business logic, so they go straight to the stores.
type ItemHandler struct {
	itemRepo      domain.ItemRepository
	inventoryRepo domain.InventoryRepository
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemRepo domain.ItemRepository, inventoryRepo domain.InventoryRepository) *ItemHandler {
	return &ItemHandler{
		itemRepo:      itemRepo,
		inventoryRepo: inventoryRepo,
	}
}

// GetAllItems handles listing the item catalog
// @Summary List items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Item
// @Router /items [get]
func (h *ItemHandler) GetAllItems(c *gin.Context) {
	items, err := h.itemRepo.GetAll()
	if err != nil {
		renderError(c, domain.NewDatabaseError("list items", err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItem handles fetching one item definition
// @Summary Get item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} domain.ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.itemRepo.GetByID(id)
	if err != nil {
		renderError(c, domain.NewDatabaseError("get item", err))
		return
	}
	if item == nil {
		renderError(c, domain.NewAppError(domain.ErrCodeItemNotFound, "Item not found", http.StatusNotFound, nil))
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetPlayerItems handles the joined inventory read for display
// @Summary List a player's inventory
// @Description Each entry is decorated with its catalog definition
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Success 200 {array} domain.InventoryItemDetail
// @Router /players/{id}/items [get]
func (h *ItemHandler) GetPlayerItems(c *gin.Context) {
	playerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	details, err := h.inventoryRepo.GetByPlayerWithItems(playerID)
	if err != nil {
		renderError(c, domain.NewDatabaseError("list player items", err))
		return
	}
	c.JSON(http.StatusOK, details)
}

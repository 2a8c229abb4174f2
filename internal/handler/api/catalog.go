package api

import (
	"errors"
	"net/http"

	"space-booking/internal/domain/catalog"
	reqdto "space-booking/internal/handler/dto/request"
	resdto "space-booking/internal/handler/dto/response"
	"space-booking/internal/usecase/commands"
	"space-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	commands commands.CatalogCommands
	queries  queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, qs queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Add catalog item
// @Description Register a consumable item with an initial stock level
// @Tags items
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Item creation request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /items [post]
func (h *CatalogHandler) Add(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Add(c.Request.Context(), commands.AddItemInput{
		Name:       req.Name,
		Category:   req.Category,
		PriceCents: req.PriceCents,
		Stock:      req.Stock,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEmptyName),
			errors.Is(err, catalog.ErrNegativePrice),
			errors.Is(err, catalog.ErrNegativeStock):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List catalog items
// @Description List items in stock; pass all=true for the full catalog, category=... to filter
// @Tags items
// @Produce json
// @Param all query bool false "Include out-of-stock items"
// @Param category query string false "Category filter"
// @Success 200 {array} resdto.ItemResponse
// @Router /items [get]
func (h *CatalogHandler) List(c *gin.Context) {
	var (
		views []*queries.ItemView
		err   error
	)
	if c.Query("all") == "true" {
		views, err = h.queries.ListAll(c.Request.Context())
	} else {
		views, err = h.queries.ListAvailable(c.Request.Context(), c.Query("category"))
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Restock item
// @Description Add quantity to an item's stock counter
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body reqdto.RestockItemRequest true "Restock request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/restock [post]
func (h *CatalogHandler) Restock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.RestockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.Restock(c.Request.Context(), id, req.Quantity); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be positive",
			})
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Catalog item not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

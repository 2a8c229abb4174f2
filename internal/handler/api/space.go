package api

import (
	"errors"
	"net/http"

	"space-booking/internal/domain/space"
	reqdto "space-booking/internal/handler/dto/request"
	resdto "space-booking/internal/handler/dto/response"
	"space-booking/internal/usecase/commands"
	"space-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SpaceHandler struct {
	commands commands.SpaceCommands
	queries  queries.SpaceQueries
}

func NewSpaceHandler(cmds commands.SpaceCommands, qs queries.SpaceQueries) *SpaceHandler {
	return &SpaceHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create space
// @Description Register a bookable space; capacity defaults when omitted
// @Tags spaces
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSpaceRequest true "Space creation request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /spaces [post]
func (h *SpaceHandler) Create(c *gin.Context) {
	var req reqdto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), commands.CreateSpaceInput{
		Name:       req.Name,
		Location:   req.Location,
		Category:   req.Category,
		PriceCents: req.PriceCents,
		Capacity:   req.Capacity,
		Policy:     req.Policy,
	})
	if err != nil {
		switch {
		case errors.Is(err, space.ErrEmptyName),
			errors.Is(err, space.ErrNegativePrice),
			errors.Is(err, space.ErrInvalidCapacity),
			errors.Is(err, space.ErrInvalidPolicy):
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

// @Summary List active spaces
// @Description List spaces that are open for booking
// @Tags spaces
// @Produce json
// @Success 200 {array} resdto.SpaceResponse
// @Router /spaces [get]
func (h *SpaceHandler) List(c *gin.Context) {
	views, err := h.queries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpaceViews(views))
}

// @Summary Get space
// @Description Get a space by ID
// @Tags spaces
// @Produce json
// @Param id path int true "Space ID"
// @Success 200 {object} resdto.SpaceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spaces/{id} [get]
func (h *SpaceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSpaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Space not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpaceView(view))
}

// @Summary Deactivate space
// @Description Close a space for new bookings; existing reservations stay untouched
// @Tags spaces
// @Produce json
// @Param id path int true "Space ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spaces/{id} [delete]
func (h *SpaceHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.commands.Deactivate(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrSpaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Space not found",
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

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/attivita/internal/domain/errors"
	"github.com/polkiloo/attivita/internal/domain/model"
	"github.com/polkiloo/attivita/internal/server/http/dto"
)

// ActivityHandler manages activity-related endpoints.
type ActivityHandler struct {
	facade ActivityFacade
}

// NewActivityHandler constructs ActivityHandler.
func NewActivityHandler(facade ActivityFacade) *ActivityHandler {
	return &ActivityHandler{facade: facade}
}

// ListByUser handles GET /api/attivita/byUser.
func (h *ActivityHandler) ListByUser(c *gin.Context) {
	userID := CurrentUserID(c)
	if userID == "" {
		c.Status(http.StatusUnauthorized)
		return
	}

	activities, err := h.facade.Activities(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		response = append(response, toActivityResponse(a))
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/attivita.
func (h *ActivityHandler) Create(c *gin.Context) {
	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateActivity(c.Request.Context(), toActivity(req))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOwner):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toActivityResponse(*created))
}

// Update handles PUT /api/attivita/:id.
func (h *ActivityHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateActivity(c.Request.Context(), id, toActivity(req)); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrIDMismatch):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/attivita/:id.
func (h *ActivityHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteActivity(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func toActivity(req dto.ActivityRequest) *model.Activity {
	return &model.Activity{
		ID:          req.ID,
		Title:       req.Titolo,
		Description: req.Descrizione,
		Due:         req.Scadenza.Time(),
		Status:      req.Stato,
		UserID:      req.IDUser,
	}
}

func toActivityResponse(activity model.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:          activity.ID,
		Titolo:      activity.Title,
		Descrizione: activity.Description,
		Scadenza:    dto.WireTime(activity.Due),
		Stato:       activity.Status,
		IDUser:      activity.UserID,
	}
}

package favorites

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HUST-25-SE/SaveBite/internal/core"
	"github.com/HUST-25-SE/SaveBite/internal/restaurant"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /api/favorite/toggle (requires auth)
func (h *Handler) Toggle(c *gin.Context) {
	var req struct {
		ShopName string `json:"shop_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	userID := c.GetString("userID")

	result, err := h.service.Toggle(c.Request.Context(), userID, req.ShopName)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, core.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, core.ErrBusy):
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"is_favorite": result.IsFavorite,
		"updated":     result.Updated,
		"failed":      result.Failed,
	})
}

// GET /api/user/favorites (requires auth)
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	favorites, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to load favorites",
		})
		return
	}

	if favorites == nil {
		favorites = []restaurant.Merged{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"favorites": favorites,
	})
}

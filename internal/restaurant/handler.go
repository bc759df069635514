package restaurant

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /api/restaurants/search?keyword=
// Anonymous callers get results without favorite flags; authenticated
// callers (OptionalAuth) see theirs marked.
func (h *Handler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	userID := c.GetString("userID")

	restaurants, err := h.service.Search(c.Request.Context(), keyword, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "search failed",
		})
		return
	}

	if restaurants == nil {
		restaurants = []Merged{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"restaurants": restaurants,
	})
}

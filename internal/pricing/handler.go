package pricing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /api/dish/compare?dish_name=&shop_name=&exact=
func (h *Handler) Compare(c *gin.Context) {
	dishName := c.Query("dish_name")
	if dishName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "dish_name is required",
		})
		return
	}

	shopName := c.Query("shop_name")
	exact, _ := strconv.ParseBool(c.DefaultQuery("exact", "false"))

	results, err := h.service.Compare(c.Request.Context(), dishName, shopName, exact)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "price comparison failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
	})
}

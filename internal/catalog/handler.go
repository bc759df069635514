package catalog

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HUST-25-SE/SaveBite/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, core.ErrBusy):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"success": false, "message": err.Error()})
}

// POST /api/platforms
func (h *Handler) AddPlatform(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	id, err := h.service.AddPlatform(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "platform_id": id})
}

// POST /api/shops
func (h *Handler) AddShop(c *gin.Context) {
	var req struct {
		PlatformName     string  `json:"platform_name"`
		Name             string  `json:"shop_name"`
		DeliveryDistance float64 `json:"delivery_distance"`
		Rating           float64 `json:"rating"`
		DeliveryTime     *int    `json:"delivery_time"`
		DeliveryFee      float64 `json:"delivery_fee"`
		MonthlySales     int64   `json:"monthly_sales"`
		MinOrder         float64 `json:"min_order"`
		AvgConsumption   float64 `json:"avg_consumption"`
		ImageURL         string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	id, err := h.service.AddShop(c.Request.Context(), req.PlatformName, ShopParams{
		Name:             req.Name,
		DeliveryDistance: req.DeliveryDistance,
		Rating:           req.Rating,
		DeliveryTime:     req.DeliveryTime,
		DeliveryFee:      req.DeliveryFee,
		MonthlySales:     req.MonthlySales,
		MinOrder:         req.MinOrder,
		AvgConsumption:   req.AvgConsumption,
		ImageURL:         req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "shop_id": id})
}

// POST /api/dishes
func (h *Handler) AddDish(c *gin.Context) {
	var req struct {
		ShopID int64   `json:"shop_id"`
		Name   string  `json:"dish_name"`
		Price  float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	id, err := h.service.AddDish(c.Request.Context(), req.ShopID, req.Name, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "dish_id": id})
}

// POST /api/coupons
func (h *Handler) AddCoupon(c *gin.Context) {
	var req struct {
		ShopID          int64      `json:"shop_id"`
		ConditionAmount float64    `json:"condition_amount"`
		DiscountAmount  float64    `json:"discount_amount"`
		ValidFrom       *time.Time `json:"valid_from"`
		ValidTo         *time.Time `json:"valid_to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	id, err := h.service.AddCoupon(
		c.Request.Context(),
		req.ShopID,
		req.ConditionAmount,
		req.DiscountAmount,
		req.ValidFrom,
		req.ValidTo,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "coupon_id": id})
}

package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/HUST-25-SE/SaveBite/internal/auth"
	"github.com/HUST-25-SE/SaveBite/internal/catalog"
	"github.com/HUST-25-SE/SaveBite/internal/db"
	"github.com/HUST-25-SE/SaveBite/internal/favorites"
	"github.com/HUST-25-SE/SaveBite/internal/middleware"
	"github.com/HUST-25-SE/SaveBite/internal/pricing"
	"github.com/HUST-25-SE/SaveBite/internal/restaurant"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	pricingRepo := pricing.NewPostgresRepository(pgDB)
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	favoriteRepo := favorites.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	catalogService := catalog.NewService(catalogRepo)
	pricingService := pricing.NewService(pricingRepo)
	restaurantService := restaurant.NewService(restaurantRepo)
	favoriteService := favorites.NewService(favoriteRepo, restaurantService)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	catalogHandler := catalog.NewHandler(catalogService)
	pricingHandler := pricing.NewHandler(pricingService)
	restaurantHandler := restaurant.NewHandler(restaurantService)
	favoriteHandler := favorites.NewHandler(favoriteService)

	api := r.Group("/api")

	// ───────────────────────── AUTH ROUTES ─────────────────────────
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), authHandler.Me)
	}

	// ───────────────────────── PUBLIC ROUTES ─────────────────────────
	api.GET("/dish/compare", pricingHandler.Compare)
	api.GET("/restaurants/search", middleware.OptionalAuth(), restaurantHandler.Search)

	// ───────────────────────── USER ROUTES ─────────────────────────
	user := api.Group("")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/user/favorites", favoriteHandler.List)
		user.POST("/favorite/toggle", favoriteHandler.Toggle)
	}

	// ───────────────────────── CATALOG ROUTES (ADMIN) ─────────────────────────
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/platforms", catalogHandler.AddPlatform)
		admin.POST("/shops", catalogHandler.AddShop)
		admin.POST("/dishes", catalogHandler.AddDish)
		admin.POST("/coupons", catalogHandler.AddCoupon)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}

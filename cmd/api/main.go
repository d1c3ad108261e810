package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bingyoan/sausage-menu-ai/internal/currency"
	"github.com/bingyoan/sausage-menu-ai/internal/db"
	"github.com/bingyoan/sausage-menu-ai/internal/history"
	"github.com/bingyoan/sausage-menu-ai/internal/logger"
	"github.com/bingyoan/sausage-menu-ai/internal/middleware"
	"github.com/bingyoan/sausage-menu-ai/internal/prefs"
	"github.com/bingyoan/sausage-menu-ai/internal/session"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("Missing env var: JWT_SECRET")
	}

	logger.Init(os.Getenv("LOG_LEVEL"))

	// ───────────────────────── PERSISTENCE ─────────────────────────
	ctx := context.Background()

	var historyRepo history.Repository
	var prefsRepo prefs.Repository

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool, err := db.ConnectPostgres(ctx, dsn)
		if err != nil {
			log.Fatal("Postgres connection failed: ", err)
		}
		defer pool.Close()

		historyRepo = history.NewPostgresRepository(pool)
		prefsRepo = prefs.NewPostgresRepository(pool)
		logger.L.Info("connected to postgres")
	} else {
		historyRepo = history.NewInMemoryRepository()
		prefsRepo = prefs.NewInMemoryRepository()
		logger.L.Warn("DATABASE_URL not set, order history will not survive restarts")
	}

	historyStore, err := history.NewStore(ctx, historyRepo)
	if err != nil {
		log.Fatal("history load failed: ", err)
	}

	// ───────────────────────── CORE ─────────────────────────
	resolver := currency.NewResolver(currency.NewOpenERClient())
	manager := session.NewManager()

	sessionHandler := session.NewHandler(manager, resolver, historyStore, prefsRepo)
	historyHandler := history.NewHandler(historyStore)
	prefsHandler := prefs.NewHandler(prefsRepo)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── SESSION ROUTES ─────────────────────────
	r.POST("/sessions", sessionHandler.Create)

	authed := r.Group("/")
	authed.Use(middleware.RequireSession())
	{
		authed.POST("/menus/scan", sessionHandler.Scan)
		authed.POST("/cart/items/:id", sessionHandler.UpdateCartItem)
		authed.DELETE("/cart", sessionHandler.ClearCart)
		authed.GET("/order/summary", sessionHandler.Summary)
		authed.POST("/orders/finish", sessionHandler.Finish)
	}

	// ───────────────────────── HISTORY & PREFERENCES ─────────────────────────
	r.GET("/history", historyHandler.List)
	r.DELETE("/history/:id", historyHandler.Delete)
	r.GET("/preferences/currency", prefsHandler.Get)
	r.PUT("/preferences/currency", prefsHandler.Put)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	logger.L.Info("api listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

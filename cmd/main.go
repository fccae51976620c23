package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"pingo/backend/internal/api/handler"
	"pingo/backend/internal/api/middleware"
	"pingo/backend/internal/archive"
	"pingo/backend/internal/chathub"
	"pingo/backend/internal/config"
	"pingo/backend/internal/mailer"
	"pingo/backend/internal/media"
	"pingo/backend/internal/models"
	"pingo/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Message{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Pingo Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	hub := chathub.NewHub()
	archiveMgr := archive.NewManager(s)
	h := handler.NewHandler(hub, s, archiveMgr, mailer.LogMailer{}, media.Passthrough{}, cfg)

	r := gin.Default()
	protected := middleware.ProtectRoute([]byte(cfg.JWTSecret), s)

	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/signup", h.Signup)
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/logout", h.Logout)
		authRoutes.GET("/check", protected, h.Check)
		authRoutes.PUT("/update-profile", protected, h.UpdateProfile)
	}

	messageRoutes := r.Group("/api/messages", protected)
	{
		messageRoutes.GET("/contacts", h.GetAllContacts)
		messageRoutes.GET("/chats", h.GetChatPartners)
		messageRoutes.GET("/:id", h.GetMessages)
		messageRoutes.POST("/send/:id", h.SendMessage)
	}

	userRoutes := r.Group("/api/users", protected)
	{
		userRoutes.POST("/:id/archive", h.ArchiveUser)
		userRoutes.POST("/:id/unarchive", h.UnarchiveUser)
		userRoutes.GET("/archived/me", h.GetMyArchived)
	}

	r.GET("/ws", h.ServeWS)

	// No global read/write timeouts: /ws connections are long-lived and
	// keep themselves alive with ping/pong deadlines.
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	log.Printf("Server is running on port: %s", cfg.Port)
	log.Fatal(server.ListenAndServe())
}

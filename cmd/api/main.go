package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/cisnebranco/grooming-os/internal/config"
	dbpkg "github.com/cisnebranco/grooming-os/internal/db"
	"github.com/cisnebranco/grooming-os/internal/notify"
	"github.com/cisnebranco/grooming-os/internal/realtime"
	"github.com/cisnebranco/grooming-os/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	hub := realtime.NewHub()
	go hub.Run()

	broadcaster := realtime.NewBroadcaster(rdb, hub)
	go broadcaster.Run(context.Background())

	whatsapp := notify.NewWhatsAppClient(
		cfg.WhatsAppBaseURL,
		cfg.WhatsAppAPIKey,
		cfg.WhatsAppInstance,
		cfg.WhatsAppBaseURL != "",
	)
	notifier := notify.NewDispatcher(whatsapp)

	r := gin.Default()

	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Config:      cfg,
		Hub:         hub,
		Broadcaster: broadcaster,
		Notifier:    notifier,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

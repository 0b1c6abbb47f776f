package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/vividh/dairy-ledger/internal/config"     // environment config loader
	"github.com/vividh/dairy-ledger/internal/database"   // MySQL pool and schema bootstrap
	"github.com/vividh/dairy-ledger/internal/handler"    // endpoint handlers
	"github.com/vividh/dairy-ledger/internal/middleware" // rate limiting
	"github.com/vividh/dairy-ledger/internal/queue"      // settlement event consumer
	"github.com/vividh/dairy-ledger/internal/repository" // SQL repositories
	"github.com/vividh/dairy-ledger/internal/router"     // route registration
	queue_publisher "github.com/vividh/dairy-ledger/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env vars directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	accounts := repository.NewAccountRepo(db)
	pairings := repository.NewPairingRepo(db)
	milk := repository.NewMilkRepo(db)
	txns := repository.NewTransactionRepo(db)
	blacklist := repository.NewBlacklistRepo(db)

	billing := handler.NewBillingHandler(milk, txns)
	billing.Publish = queue_publisher.PublishSettlementRecorded

	e := echo.New()
	// Rate limiting is best effort: without Redis the limiter is a no-op.
	if rdb := config.NewRedisClient(); rdb != nil {
		e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	} else {
		log.Print("redis unavailable, rate limiting disabled")
	}

	router.Register(e, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, accounts, blacklist),
		Pairing: handler.NewPairingHandler(pairings, accounts),
		Milk:    handler.NewMilkHandler(milk),
		Billing: billing,
	}, cfg.JWTSecret, blacklist)

	// The settlement consumer reconnects on its own; it never stops the server.
	go func() {
		if err := queue.StartSettlementConsumer(); err != nil {
			log.Printf("settlement consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}

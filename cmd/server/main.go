package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/tavern/internal/common/clock"
	"github.com/KirkDiggler/tavern/internal/common/password"
	"github.com/KirkDiggler/tavern/internal/common/uuid"
	"github.com/KirkDiggler/tavern/internal/config"
	"github.com/KirkDiggler/tavern/internal/database"
	"github.com/KirkDiggler/tavern/internal/dice"
	"github.com/KirkDiggler/tavern/internal/handlers/api"
	"github.com/KirkDiggler/tavern/internal/handlers/discord"
	"github.com/KirkDiggler/tavern/internal/handlers/realtime"
	"github.com/KirkDiggler/tavern/internal/hub"
	"github.com/KirkDiggler/tavern/internal/repositories/character"
	"github.com/KirkDiggler/tavern/internal/repositories/chat"
	"github.com/KirkDiggler/tavern/internal/repositories/dice_roll"
	"github.com/KirkDiggler/tavern/internal/repositories/game"
	"github.com/KirkDiggler/tavern/internal/repositories/player"
	"github.com/KirkDiggler/tavern/internal/repositories/user"
	authService "github.com/KirkDiggler/tavern/internal/services/auth"
	characterService "github.com/KirkDiggler/tavern/internal/services/character"
	gameService "github.com/KirkDiggler/tavern/internal/services/game"
	"github.com/KirkDiggler/tavern/internal/services/messaging"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	db, err := database.Connect(&database.Config{
		Driver: cfg.DatabaseDriver,
		DSN:    cfg.DatabaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	characterRepo, err := character.NewRedis(&character.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create character repository: %v", err)
	}

	chatRepo, err := chat.NewRedis(&chat.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create chat repository: %v", err)
	}

	rollRepo, err := dice_roll.NewRedis(&dice_roll.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create dice roll repository: %v", err)
	}

	userRepo, err := user.NewGorm(&user.Config{DB: db})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	systemClock := clock.New()
	uuidGenerator := uuid.New()
	hasher := password.New(&password.Config{Cost: cfg.BcryptCost})
	diceRoller := dice.New(&dice.Config{})

	broadcaster, err := hub.New(&hub.Config{Clock: systemClock})
	if err != nil {
		log.Fatalf("Failed to create hub: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.Config{Roller: diceRoller})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize services
	gameSvc, err := gameService.NewService(&gameService.Config{
		GameRepo:      gameRepo,
		PlayerRepo:    playerRepo,
		CharacterRepo: characterRepo,
		ChatRepo:      chatRepo,
		DiceRollRepo:  rollRepo,
		Broadcaster:   broadcaster,
		Messaging:     messagingSvc,
		Hasher:        hasher,
		DiceRoller:    diceRoller,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	characterSvc, err := characterService.NewService(&characterService.Config{
		CharacterRepo: characterRepo,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create character service: %v", err)
	}

	authSvc, err := authService.NewService(&authService.Config{
		UserRepo:      userRepo,
		Hasher:        hasher,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
		Secret:        cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}

	// Initialize transports
	restHandler, err := api.New(&api.Config{
		AuthService:      authSvc,
		GameService:      gameSvc,
		CharacterService: characterSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create REST handler: %v", err)
	}

	wsHandler, err := realtime.New(&realtime.Config{
		GameService:   gameSvc,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create realtime handler: %v", err)
	}

	var bot *discord.Bot
	if cfg.DiscordEnabled() {
		bot, err = discord.New(&discord.Config{
			Token:     cfg.DiscordToken,
			ChannelID: cfg.DiscordChannelID,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord relay: %v", err)
		}
		if err := bot.Start(); err != nil {
			log.Fatalf("Failed to start Discord relay: %v", err)
		}
		broadcaster.AddObserver(bot)
	}

	router := gin.Default()
	restHandler.RegisterRoutes(router)
	router.GET("/ws", api.RequireAuth(authSvc), wsHandler.ServeWS)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.Printf("Tavern listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if bot != nil {
		if err := bot.Stop(); err != nil {
			log.Printf("Error stopping Discord relay: %v", err)
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Tavern has been shut down")
}

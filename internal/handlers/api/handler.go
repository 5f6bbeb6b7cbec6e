package api

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/tavern/internal/services/auth"
	"github.com/KirkDiggler/tavern/internal/services/character"
	"github.com/KirkDiggler/tavern/internal/services/game"
	"github.com/gin-gonic/gin"
)

var (
	ErrNilConfig           = errors.New("config cannot be nil")
	ErrNilAuthService      = errors.New("auth service cannot be nil")
	ErrNilGameService      = errors.New("game service cannot be nil")
	ErrNilCharacterService = errors.New("character service cannot be nil")
)

// Config holds the services the REST surface fronts
type Config struct {
	AuthService      auth.Service
	GameService      game.Service
	CharacterService character.Service
}

// Handler serves /api/v1
type Handler struct {
	auth       auth.Service
	games      game.Service
	characters character.Service
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.AuthService == nil {
		return nil, ErrNilAuthService
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.CharacterService == nil {
		return nil, ErrNilCharacterService
	}

	return &Handler{
		auth:       cfg.AuthService,
		games:      cfg.GameService,
		characters: cfg.CharacterService,
	}, nil
}

// RegisterRoutes mounts every REST route on r
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
	}

	protected := v1.Group("")
	protected.Use(RequireAuth(h.auth))

	games := protected.Group("/games")
	{
		games.GET("", h.ListGames)
		games.POST("", h.CreateGame)
		games.GET("/mine", h.ListMyGames)
		games.GET("/:id", h.GetGame)
		games.PATCH("/:id", h.UpdateGame)
		games.POST("/:id/join", h.JoinGame)
		games.POST("/:id/leave", h.LeaveGame)
		games.POST("/:id/start", h.StartGame)
		games.POST("/:id/pause", h.PauseGame)
		games.POST("/:id/resume", h.ResumeGame)
		games.POST("/:id/end", h.EndGame)
		games.POST("/:id/cancel", h.CancelGame)
		games.GET("/:id/rolls", h.ListRolls)
		games.GET("/:id/messages", h.ListMessages)
		games.POST("/:id/messages", h.SendMessage)
		games.DELETE("/:id/messages/:messageId", h.DeleteMessage)
	}

	protected.POST("/dice/roll", h.RollDice)

	characters := protected.Group("/characters")
	{
		characters.GET("", h.ListCharacters)
		characters.POST("", h.CreateCharacter)
		characters.GET("/:id", h.GetCharacter)
		characters.PUT("/:id", h.UpdateCharacter)
		characters.DELETE("/:id", h.DeleteCharacter)
		characters.POST("/:id/level-up", h.LevelUp)
		characters.POST("/:id/experience", h.AwardExperience)
		characters.POST("/:id/rest", h.Rest)
		characters.POST("/:id/heal", h.Heal)
		characters.POST("/:id/damage", h.TakeDamage)
		characters.POST("/:id/temporary-hp", h.GrantTemporaryHP)
		characters.POST("/:id/inventory", h.AddItem)
		characters.PUT("/:id/inventory/:itemId", h.UpdateItem)
		characters.DELETE("/:id/inventory/:itemId", h.RemoveItem)
	}
}

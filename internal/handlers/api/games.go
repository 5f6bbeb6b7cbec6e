package api

import (
	"encoding/json"
	"net/http"

	"github.com/KirkDiggler/tavern/internal/models"
	"github.com/KirkDiggler/tavern/internal/services/game"
	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type CreateGameRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MaxPlayers  int    `json:"max_players"`
	Password    string `json:"password"`
}

type UpdateGameRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	MaxPlayers  *int            `json:"max_players"`
	GameState   json.RawMessage `json:"game_state"`
}

type JoinGameRequest struct {
	CharacterID string `json:"character_id"`
	Password    string `json:"password"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type RollDiceRequest struct {
	SessionID   string `json:"session_id"`
	CharacterID string `json:"character_id"`
	DiceType    string `json:"dice_type"`
	Count       int    `json:"count"`
	Modifier    int    `json:"modifier"`
	Notation    string `json:"notation"`
	RollType    string `json:"roll_type"`
}

type GameResponse struct {
	Session *game.SessionView    `json:"session"`
	Players []*models.GamePlayer `json:"players,omitempty"`
}

type SessionListResponse struct {
	Sessions []*game.SessionView `json:"sessions"`
	Meta     PaginationMeta      `json:"meta"`
}

type JoinGameResponse struct {
	Session *game.SessionView  `json:"session"`
	Player  *models.GamePlayer `json:"player"`
}

type LeaveGameResponse struct {
	Session          *game.SessionView `json:"session"`
	RemainingPlayers int               `json:"remaining_players"`
	AutoPaused       bool              `json:"auto_paused"`
}

type RollDiceResponse struct {
	Roll           *models.DiceRoll `json:"roll"`
	Message        string           `json:"message"`
	IsCriticalHit  bool             `json:"is_critical_hit"`
	IsCriticalFail bool             `json:"is_critical_fail"`
}

type RollListResponse struct {
	Rolls []*models.DiceRoll `json:"rolls"`
	Meta  PaginationMeta     `json:"meta"`
}

type MessageListResponse struct {
	Messages []*models.ChatMessage `json:"messages"`
	Meta     PaginationMeta        `json:"meta"`
}

// endregion

func (h *Handler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.games.CreateGame(c.Request.Context(), &game.CreateGameInput{
		UserID:      UserID(c),
		Name:        req.Name,
		Description: req.Description,
		MaxPlayers:  req.MaxPlayers,
		Password:    req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, GameResponse{Session: out.Session, Players: []*models.GamePlayer{out.DM}})
}

// ListGames pages through sessions, optionally filtered by ?status=
func (h *Handler) ListGames(c *gin.Context) {
	out, err := h.games.ListGames(c.Request.Context(), &game.ListGamesInput{
		Status:     models.GameStatus(c.Query("status")),
		Pagination: pagination(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, SessionListResponse{
		Sessions: out.Sessions,
		Meta:     newPaginationMeta(out.Total, out.Page, out.Limit),
	})
}

func (h *Handler) ListMyGames(c *gin.Context) {
	out, err := h.games.ListMyGames(c.Request.Context(), &game.ListMyGamesInput{UserID: UserID(c)})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, out.Sessions)
}

func (h *Handler) GetGame(c *gin.Context) {
	out, err := h.games.GetGame(c.Request.Context(), &game.GetGameInput{SessionID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, GameResponse{Session: out.Session, Players: out.Players})
}

func (h *Handler) UpdateGame(c *gin.Context) {
	var req UpdateGameRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.games.UpdateGame(c.Request.Context(), &game.UpdateGameInput{
		SessionID:   c.Param("id"),
		UserID:      UserID(c),
		Name:        req.Name,
		Description: req.Description,
		MaxPlayers:  req.MaxPlayers,
		GameState:   req.GameState,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, GameResponse{Session: out.Session})
}

func (h *Handler) JoinGame(c *gin.Context) {
	var req JoinGameRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	out, err := h.games.JoinGame(c.Request.Context(), &game.JoinGameInput{
		SessionID:   c.Param("id"),
		UserID:      UserID(c),
		CharacterID: req.CharacterID,
		Password:    req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, JoinGameResponse{Session: out.Session, Player: out.Player})
}

func (h *Handler) LeaveGame(c *gin.Context) {
	out, err := h.games.LeaveGame(c.Request.Context(), &game.LeaveGameInput{
		SessionID: c.Param("id"),
		UserID:    UserID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, LeaveGameResponse{
		Session:          out.Session,
		RemainingPlayers: out.RemainingPlayers,
		AutoPaused:       out.AutoPaused,
	})
}

func (h *Handler) StartGame(c *gin.Context) {
	out, err := h.games.StartGame(c.Request.Context(), &game.StartGameInput{SessionID: c.Param("id"), UserID: UserID(c)})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, GameResponse{Session: out.Session})
}

func (h *Handler) PauseGame(c *gin.Context) {
	out, err := h.games.PauseGame(c.Request.Context(), &game.PauseGameInput{SessionID: c.Param("id"), UserID: UserID(c)})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, GameResponse{Session: out.Session})
}

func (h *Handler) ResumeGame(c *gin.Context) {
	out, err := h.games.ResumeGame(c.Request.Context(), &game.ResumeGameInput{SessionID: c.Param("id"), UserID: UserID(c)})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, GameResponse{Session: out.Session})
}

func (h *Handler) EndGame(c *gin.Context) {
	out, err := h.games.EndGame(c.Request.Context(), &game.EndGameInput{SessionID: c.Param("id"), UserID: UserID(c)})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, GameResponse{Session: out.Session})
}

func (h *Handler) CancelGame(c *gin.Context) {
	out, err := h.games.CancelGame(c.Request.Context(), &game.CancelGameInput{SessionID: c.Param("id"), UserID: UserID(c)})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, GameResponse{Session: out.Session})
}

// RollDice rolls standalone, or inside a session when session_id is set
func (h *Handler) RollDice(c *gin.Context) {
	var req RollDiceRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.games.RollDice(c.Request.Context(), &game.RollDiceInput{
		SessionID:   req.SessionID,
		UserID:      UserID(c),
		CharacterID: req.CharacterID,
		DiceType:    req.DiceType,
		Count:       req.Count,
		Modifier:    req.Modifier,
		Notation:    req.Notation,
		RollType:    req.RollType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, RollDiceResponse{
		Roll:           out.Roll,
		Message:        out.Message,
		IsCriticalHit:  out.IsCriticalHit,
		IsCriticalFail: out.IsCriticalFail,
	})
}

// ListRolls returns the session's roll log, optionally narrowed by ?user_id=
func (h *Handler) ListRolls(c *gin.Context) {
	out, err := h.games.ListRolls(c.Request.Context(), &game.ListRollsInput{
		SessionID:  c.Param("id"),
		UserID:     UserID(c),
		RollerID:   c.Query("user_id"),
		Pagination: pagination(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, RollListResponse{
		Rolls: out.Rolls,
		Meta:  newPaginationMeta(out.Total, out.Page, out.Limit),
	})
}

func (h *Handler) ListMessages(c *gin.Context) {
	out, err := h.games.ListMessages(c.Request.Context(), &game.ListMessagesInput{
		SessionID:  c.Param("id"),
		UserID:     UserID(c),
		Pagination: pagination(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, MessageListResponse{
		Messages: out.Messages,
		Meta:     newPaginationMeta(out.Total, out.Page, out.Limit),
	})
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.games.SendMessage(c.Request.Context(), &game.SendMessageInput{
		SessionID: c.Param("id"),
		UserID:    UserID(c),
		Content:   req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, out.Message)
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	_, err := h.games.DeleteMessage(c.Request.Context(), &game.DeleteMessageInput{
		SessionID: c.Param("id"),
		UserID:    UserID(c),
		MessageID: c.Param("messageId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

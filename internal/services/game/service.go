package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	"github.com/KirkDiggler/tavern/internal/common/clock"
	"github.com/KirkDiggler/tavern/internal/common/keylock"
	"github.com/KirkDiggler/tavern/internal/common/password"
	"github.com/KirkDiggler/tavern/internal/common/uuid"
	"github.com/KirkDiggler/tavern/internal/dice"
	"github.com/KirkDiggler/tavern/internal/hub"
	"github.com/KirkDiggler/tavern/internal/models"
	characterRepo "github.com/KirkDiggler/tavern/internal/repositories/character"
	chatRepo "github.com/KirkDiggler/tavern/internal/repositories/chat"
	rollRepo "github.com/KirkDiggler/tavern/internal/repositories/dice_roll"
	gameRepo "github.com/KirkDiggler/tavern/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/tavern/internal/repositories/player"
	"github.com/KirkDiggler/tavern/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	playerRepo    playerRepo.Repository
	characterRepo characterRepo.Repository
	chatRepo      chatRepo.Repository
	rollRepo      rollRepo.Repository
	broadcaster   hub.Broadcaster
	messaging     messaging.Service
	hasher        password.Hasher
	diceRoller    dice.Roller
	clock         clock.Clock
	uuid          uuid.UUID

	// locks serializes mutations per session
	locks *keylock.Locker
}

// NewService creates a new game service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch {
	case cfg.GameRepo == nil:
		return nil, ErrNilGameRepo
	case cfg.PlayerRepo == nil:
		return nil, ErrNilPlayerRepo
	case cfg.CharacterRepo == nil:
		return nil, ErrNilCharacterRepo
	case cfg.ChatRepo == nil:
		return nil, ErrNilChatRepo
	case cfg.DiceRollRepo == nil:
		return nil, ErrNilDiceRollRepo
	case cfg.Broadcaster == nil:
		return nil, ErrNilBroadcaster
	case cfg.Messaging == nil:
		return nil, ErrNilMessaging
	case cfg.Hasher == nil:
		return nil, ErrNilHasher
	case cfg.DiceRoller == nil:
		return nil, ErrNilDiceRoller
	case cfg.Clock == nil:
		return nil, ErrNilClock
	case cfg.UUIDGenerator == nil:
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		playerRepo:    cfg.PlayerRepo,
		characterRepo: cfg.CharacterRepo,
		chatRepo:      cfg.ChatRepo,
		rollRepo:      cfg.DiceRollRepo,
		broadcaster:   cfg.Broadcaster,
		messaging:     cfg.Messaging,
		hasher:        cfg.Hasher,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuid:          cfg.UUIDGenerator,
		locks:         keylock.New(),
	}, nil
}

// CreateGame creates a session with the caller as DM
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	maxPlayers := input.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = DefaultMaxPlayers
	}
	if maxPlayers < models.MinPlayers || maxPlayers > models.MaxPlayers {
		return nil, ErrInvalidMaxPlayers
	}

	now := s.clock.Now()
	session := &models.GameSession{
		ID:          s.uuid.NewUUID(),
		DMUserID:    input.UserID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		MaxPlayers:  maxPlayers,
		Status:      models.GameStatusWaiting,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if input.Password != "" {
		digest, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, apperr.Internal("failed to hash session password", err)
		}
		session.PasswordHash = digest
	}

	if err := s.gameRepo.SaveSession(ctx, &gameRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, apperr.Internal("failed to save session", err)
	}

	dm := &models.GamePlayer{
		GameID:   session.ID,
		UserID:   input.UserID,
		Role:     models.PlayerRoleDM,
		JoinedAt: now,
	}
	if err := s.playerRepo.AddPlayer(ctx, &playerRepo.AddPlayerInput{Player: dm}); err != nil {
		if delErr := s.gameRepo.DeleteSession(ctx, &gameRepo.DeleteSessionInput{SessionID: session.ID}); delErr != nil {
			log.Printf("Failed to roll back session %s after enrolling DM failed: %v", session.ID, delErr)
		}
		return nil, apperr.Internal("failed to enroll DM", err)
	}

	log.Printf("Created game session %s (%q) for DM %s", session.ID, session.Name, input.UserID)

	return &CreateGameOutput{
		Session: newSessionView(session, 1),
		DM:      dm,
	}, nil
}

// ListGames pages through sessions newest first
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, ErrInvalidStatusFilter
	}

	page := input.Pagination.normalize()
	listed, err := s.gameRepo.ListSessions(ctx, &gameRepo.ListSessionsInput{
		Status: input.Status,
		Offset: page.offset(),
		Limit:  page.Limit,
	})
	if err != nil {
		return nil, apperr.Internal("failed to list sessions", err)
	}

	views, err := s.views(ctx, listed.Sessions)
	if err != nil {
		return nil, err
	}

	return &ListGamesOutput{
		Sessions: views,
		Total:    listed.Total,
		Page:     page.Page,
		Limit:    page.Limit,
	}, nil
}

// GetGame returns a session and its roster
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	roster, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{GameID: session.ID})
	if err != nil {
		return nil, apperr.Internal("failed to get roster", err)
	}

	return &GetGameOutput{
		Session: newSessionView(session, len(roster.Players)),
		Players: roster.Players,
	}, nil
}

// ListMyGames returns the sessions the caller is enrolled in, newest first
func (s *service) ListMyGames(ctx context.Context, input *ListMyGamesInput) (*ListMyGamesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	ids, err := s.playerRepo.GetUserGames(ctx, &playerRepo.GetUserGamesInput{UserID: input.UserID})
	if err != nil {
		return nil, apperr.Internal("failed to get user sessions", err)
	}
	if len(ids) == 0 {
		return &ListMyGamesOutput{Sessions: []*SessionView{}}, nil
	}

	sessions, err := s.gameRepo.GetSessions(ctx, &gameRepo.GetSessionsInput{SessionIDs: ids})
	if err != nil {
		return nil, apperr.Internal("failed to get sessions", err)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	views, err := s.views(ctx, sessions)
	if err != nil {
		return nil, err
	}

	return &ListMyGamesOutput{Sessions: views}, nil
}

// JoinGame adds the caller and a character to a session. Guards run in a
// fixed order so the first failing one decides the error.
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	unlock := s.locks.Lock(input.SessionID)
	defer unlock()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Status.IsTerminal() {
		return nil, ErrGameNotJoinable
	}

	_, err = s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{GameID: session.ID, UserID: input.UserID})
	if err == nil {
		return nil, ErrAlreadyJoined
	}
	if !errors.Is(err, playerRepo.ErrPlayerNotInGame) {
		return nil, apperr.Internal("failed to check roster", err)
	}

	count, err := s.countPlayers(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if count >= session.MaxPlayers {
		return nil, ErrSessionFull
	}

	if session.HasPassword() {
		if input.Password == "" {
			return nil, ErrPasswordRequired
		}
		if !s.hasher.Verify(input.Password, session.PasswordHash) {
			return nil, ErrInvalidPassword
		}
	}

	if input.CharacterID == "" {
		return nil, ErrCharacterRequired
	}
	character, err := s.ownedCharacter(ctx, input.CharacterID, input.UserID)
	if err != nil {
		return nil, err
	}

	player := &models.GamePlayer{
		GameID:      session.ID,
		UserID:      input.UserID,
		CharacterID: character.ID,
		Role:        models.PlayerRolePlayer,
		JoinedAt:    s.clock.Now(),
	}
	if err := s.playerRepo.AddPlayer(ctx, &playerRepo.AddPlayerInput{Player: player}); err != nil {
		if errors.Is(err, playerRepo.ErrPlayerAlreadyInGame) {
			return nil, ErrAlreadyJoined
		}
		return nil, apperr.Internal("failed to add player", err)
	}
	count++

	s.broadcaster.Broadcast(&hub.BroadcastInput{
		SessionID: session.ID,
		Type:      hub.EventPlayerJoined,
		UserID:    input.UserID,
		Payload:   &PlayerJoinedPayload{Player: player, CurrentPlayers: count},
	})

	if msg, err := s.messaging.GetPlayerJoinedMessage(ctx, &messaging.GetPlayerJoinedMessageInput{
		PlayerName:  character.Name,
		PlayerCount: count,
		MaxPlayers:  session.MaxPlayers,
	}); err != nil {
		log.Printf("Failed to build join message for session %s: %v", session.ID, err)
	} else {
		s.postSystemMessage(ctx, session.ID, msg.Message)
	}

	return &JoinGameOutput{
		Session: newSessionView(session, count),
		Player:  player,
	}, nil
}

// LeaveGame removes the caller. Emptying an active session pauses it in the
// same critical section.
func (s *service) LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	unlock := s.locks.Lock(input.SessionID)
	defer unlock()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{GameID: session.ID, UserID: input.UserID})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotInGame) {
			return nil, ErrPlayerNotInGame
		}
		return nil, apperr.Internal("failed to check roster", err)
	}

	removed, err := s.playerRepo.RemovePlayer(ctx, &playerRepo.RemovePlayerInput{GameID: session.ID, UserID: input.UserID})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotInGame) {
			return nil, ErrPlayerNotInGame
		}
		return nil, apperr.Internal("failed to remove player", err)
	}

	wasDM := session.IsDM(input.UserID)
	if wasDM {
		log.Printf("WARNING: DM %s left game session %s, %d players remain", input.UserID, session.ID, removed.Remaining)
	}

	from := session.Status
	autoPaused := false
	if removed.Remaining == 0 && session.Status == models.GameStatusActive {
		session.Status = models.GameStatusPaused
		session.UpdatedAt = s.clock.Now()
		if err := s.gameRepo.SaveSession(ctx, &gameRepo.SaveSessionInput{Session: session}); err != nil {
			// put the roster back so the leave can be retried
			if addErr := s.playerRepo.AddPlayer(ctx, &playerRepo.AddPlayerInput{Player: player}); addErr != nil {
				log.Printf("Failed to restore %s to session %s after pausing failed: %v", input.UserID, session.ID, addErr)
			}
			return nil, apperr.Internal("failed to pause empty session", err)
		}
		autoPaused = true
		log.Printf("Game session %s paused after the last player left", session.ID)
	}

	s.broadcaster.EvictUser(session.ID, input.UserID)

	view := newSessionView(session, removed.Remaining)
	s.broadcaster.Broadcast(&hub.BroadcastInput{
		SessionID: session.ID,
		Type:      hub.EventPlayerLeft,
		UserID:    input.UserID,
		Payload: &PlayerLeftPayload{
			UserID:           input.UserID,
			RemainingPlayers: removed.Remaining,
			Status:           session.Status,
		},
	})
	if autoPaused {
		s.broadcaster.Broadcast(&hub.BroadcastInput{
			SessionID: session.ID,
			Type:      hub.EventGameStatusChanged,
			Payload:   &StatusChangedPayload{From: from, To: session.Status, Session: view},
		})
	}

	if msg, err := s.messaging.GetPlayerLeftMessage(ctx, &messaging.GetPlayerLeftMessageInput{
		PlayerName: s.displayName(ctx, player),
		WasDM:      wasDM,
		AutoPaused: autoPaused,
	}); err != nil {
		log.Printf("Failed to build leave message for session %s: %v", session.ID, err)
	} else {
		s.postSystemMessage(ctx, session.ID, msg.Message)
	}

	return &LeaveGameOutput{
		Session:          view,
		RemainingPlayers: removed.Remaining,
		AutoPaused:       autoPaused,
	}, nil
}

// StartGame moves a waiting or paused session to active
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	view, err := s.transition(ctx, input.SessionID, input.UserID, models.GameStatusActive, func(from models.GameStatus) bool {
		return from == models.GameStatusWaiting || from == models.GameStatusPaused
	})
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{Session: view}, nil
}

// PauseGame moves an active session to paused
func (s *service) PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	view, err := s.transition(ctx, input.SessionID, input.UserID, models.GameStatusPaused, func(from models.GameStatus) bool {
		return from == models.GameStatusActive
	})
	if err != nil {
		return nil, err
	}

	return &PauseGameOutput{Session: view}, nil
}

// ResumeGame moves a paused session back to active
func (s *service) ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	view, err := s.transition(ctx, input.SessionID, input.UserID, models.GameStatusActive, func(from models.GameStatus) bool {
		return from == models.GameStatusPaused
	})
	if err != nil {
		return nil, err
	}

	return &ResumeGameOutput{Session: view}, nil
}

// EndGame completes any session that has not finished yet. It cannot be undone.
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	view, err := s.transition(ctx, input.SessionID, input.UserID, models.GameStatusCompleted, func(from models.GameStatus) bool {
		return from.CanTransitionTo(models.GameStatusCompleted)
	})
	if err != nil {
		return nil, err
	}

	return &EndGameOutput{Session: view}, nil
}

// CancelGame abandons any session that has not finished yet
func (s *service) CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	view, err := s.transition(ctx, input.SessionID, input.UserID, models.GameStatusCancelled, func(from models.GameStatus) bool {
		return from.CanTransitionTo(models.GameStatusCancelled)
	})
	if err != nil {
		return nil, err
	}

	return &CancelGameOutput{Session: view}, nil
}

// transition applies a DM-only status change when allowed accepts the current status
func (s *service) transition(ctx context.Context, sessionID, userID string, to models.GameStatus, allowed func(models.GameStatus) bool) (*SessionView, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsDM(userID) {
		return nil, ErrNotDM
	}

	from := session.Status
	if !allowed(from) || !from.CanTransitionTo(to) {
		return nil, apperr.Wrap(apperr.KindInvalidTransition,
			fmt.Sprintf("cannot move session from %s to %s", from, to), ErrInvalidTransition)
	}

	session.Status = to
	session.UpdatedAt = s.clock.Now()
	if err := s.gameRepo.SaveSession(ctx, &gameRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, apperr.Internal("failed to save session", err)
	}

	count, err := s.countPlayers(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	view := newSessionView(session, count)

	log.Printf("Game session %s moved from %s to %s", session.ID, from, to)

	s.broadcaster.Broadcast(&hub.BroadcastInput{
		SessionID: session.ID,
		Type:      hub.EventGameStatusChanged,
		UserID:    userID,
		Payload:   &StatusChangedPayload{From: from, To: to, Session: view},
	})

	if msg, err := s.messaging.GetGameStatusMessage(ctx, &messaging.GetGameStatusMessageInput{
		SessionName: session.Name,
		From:        from,
		To:          to,
	}); err != nil {
		log.Printf("Failed to build status message for session %s: %v", session.ID, err)
	} else {
		s.postSystemMessage(ctx, session.ID, msg.Message)
	}

	return view, nil
}

// UpdateGame applies the DM's edits. Everything is validated before anything changes.
func (s *service) UpdateGame(ctx context.Context, input *UpdateGameInput) (*UpdateGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	unlock := s.locks.Lock(input.SessionID)
	defer unlock()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsDM(input.UserID) {
		return nil, ErrNotDM
	}
	if session.Status.IsTerminal() {
		return nil, apperr.Wrap(apperr.KindInvalidTransition,
			fmt.Sprintf("cannot edit a %s session", session.Status), ErrInvalidTransition)
	}

	count, err := s.countPlayers(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	var name string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
	}
	if input.MaxPlayers != nil {
		if *input.MaxPlayers < models.MinPlayers || *input.MaxPlayers > models.MaxPlayers {
			return nil, ErrInvalidMaxPlayers
		}
		if *input.MaxPlayers < count {
			return nil, ErrMaxPlayersBelowRoster
		}
	}
	if len(input.GameState) > 0 && !json.Valid(input.GameState) {
		return nil, ErrInvalidGameState
	}

	if input.Name != nil {
		session.Name = name
	}
	if input.Description != nil {
		session.Description = strings.TrimSpace(*input.Description)
	}
	if input.MaxPlayers != nil {
		session.MaxPlayers = *input.MaxPlayers
	}
	if len(input.GameState) > 0 {
		session.GameState = input.GameState
	}
	session.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveSession(ctx, &gameRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, apperr.Internal("failed to save session", err)
	}

	view := newSessionView(session, count)
	s.broadcaster.Broadcast(&hub.BroadcastInput{
		SessionID: session.ID,
		Type:      hub.EventGameStateUpdated,
		UserID:    input.UserID,
		Payload:   view,
	})

	return &UpdateGameOutput{Session: view}, nil
}

// loadSession maps a missing session to ErrGameNotFound
func (s *service) loadSession(ctx context.Context, sessionID string) (*models.GameSession, error) {
	if sessionID == "" {
		return nil, ErrGameNotFound
	}

	session, err := s.gameRepo.GetSession(ctx, &gameRepo.GetSessionInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrSessionNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, apperr.Internal("failed to get session", err)
	}

	return session, nil
}

// member loads the session and the caller's roster entry. Non-members get ErrNotAMember.
func (s *service) member(ctx context.Context, sessionID, userID string) (*models.GameSession, *models.GamePlayer, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{GameID: session.ID, UserID: userID})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotInGame) {
			return nil, nil, ErrNotAMember
		}
		return nil, nil, apperr.Internal("failed to check roster", err)
	}

	return session, player, nil
}

func (s *service) countPlayers(ctx context.Context, sessionID string) (int, error) {
	count, err := s.playerRepo.CountPlayers(ctx, &playerRepo.CountPlayersInput{GameID: sessionID})
	if err != nil {
		return 0, apperr.Internal("failed to count players", err)
	}
	return count, nil
}

func (s *service) views(ctx context.Context, sessions []*models.GameSession) ([]*SessionView, error) {
	views := make([]*SessionView, 0, len(sessions))
	for _, session := range sessions {
		count, err := s.countPlayers(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, newSessionView(session, count))
	}
	return views, nil
}

// ownedCharacter hides characters owned by someone else behind ErrCharacterNotFound
func (s *service) ownedCharacter(ctx context.Context, characterID, userID string) (*models.Character, error) {
	character, err := s.characterRepo.GetCharacter(ctx, &characterRepo.GetCharacterInput{CharacterID: characterID})
	if err != nil {
		if errors.Is(err, characterRepo.ErrCharacterNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, apperr.Internal("failed to get character", err)
	}
	if character.UserID != userID {
		return nil, ErrCharacterNotFound
	}
	return character, nil
}

// displayName is the character's name, or a generic label when there is none
func (s *service) displayName(ctx context.Context, player *models.GamePlayer) string {
	if player.CharacterID != "" {
		character, err := s.characterRepo.GetCharacter(ctx, &characterRepo.GetCharacterInput{CharacterID: player.CharacterID})
		if err == nil {
			return character.Name
		}
	}
	if player.Role == models.PlayerRoleDM {
		return "The DM"
	}
	return "A player"
}

// postSystemMessage stores a system chat line and broadcasts it. Failures are
// logged; the operation that triggered the message has already succeeded.
func (s *service) postSystemMessage(ctx context.Context, sessionID, content string) {
	if content == "" {
		return
	}

	message := &models.ChatMessage{
		ID:        s.uuid.NewUUID(),
		GameID:    sessionID,
		Content:   content,
		Type:      models.MessageTypeSystem,
		CreatedAt: s.clock.Now(),
	}
	if err := s.chatRepo.AddMessage(ctx, &chatRepo.AddMessageInput{Message: message}); err != nil {
		log.Printf("Failed to post system message to session %s: %v", sessionID, err)
		return
	}

	s.broadcaster.Broadcast(&hub.BroadcastInput{
		SessionID: sessionID,
		Type:      hub.EventChatMessageBroadcast,
		Payload:   message,
	})
}

package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	clockMocks "github.com/KirkDiggler/tavern/internal/common/clock/mocks"
	"github.com/KirkDiggler/tavern/internal/common/password"
	uuidMocks "github.com/KirkDiggler/tavern/internal/common/uuid/mocks"
	"github.com/KirkDiggler/tavern/internal/dice"
	diceMocks "github.com/KirkDiggler/tavern/internal/dice/mocks"
	"github.com/KirkDiggler/tavern/internal/hub"
	"github.com/KirkDiggler/tavern/internal/models"
	characterRepo "github.com/KirkDiggler/tavern/internal/repositories/character"
	chatRepo "github.com/KirkDiggler/tavern/internal/repositories/chat"
	rollRepo "github.com/KirkDiggler/tavern/internal/repositories/dice_roll"
	gameRepo "github.com/KirkDiggler/tavern/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/tavern/internal/repositories/player"
	"github.com/KirkDiggler/tavern/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/tavern/internal/services/messaging/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// recordingConn keeps every message it is sent
type recordingConn struct {
	id, userID string

	mu       sync.Mutex
	messages []*hub.Event
}

func (c *recordingConn) ID() string     { return c.id }
func (c *recordingConn) UserID() string { return c.userID }

func (c *recordingConn) Send(message []byte) error {
	var event hub.Event
	if err := json.Unmarshal(message, &event); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, &event)
	return nil
}

func (c *recordingConn) eventTypes() []hub.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()
	types := make([]hub.EventType, len(c.messages))
	for i, e := range c.messages {
		types[i] = e.Type
	}
	return types
}

// flakyGameRepo fails SaveSession once failSaves is set
type flakyGameRepo struct {
	gameRepo.Repository
	failSaves atomic.Bool
}

func (r *flakyGameRepo) SaveSession(ctx context.Context, input *gameRepo.SaveSessionInput) error {
	if r.failSaves.Load() {
		return errors.New("redis down")
	}
	return r.Repository.SaveSession(ctx, input)
}

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	mockDiceRoller *diceMocks.MockRoller

	mr     *miniredis.Miniredis
	client *redis.Client

	gameRepo      gameRepo.Repository
	playerRepo    playerRepo.Repository
	characterRepo characterRepo.Repository
	chatRepo      chatRepo.Repository
	rollRepo      rollRepo.Repository
	hub           *hub.Hub
	messaging     messaging.Service
	hasher        password.Hasher

	gameService Service
	ctx         context.Context

	testTime time.Time
	seq      atomic.Int64

	eventsMu sync.Mutex
	events   []*hub.Event
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.seq.Store(0)
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		return fmt.Sprintf("id-%d", s.seq.Add(1))
	}).AnyTimes()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.gameRepo, err = gameRepo.NewRedis(&gameRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.playerRepo, err = playerRepo.NewRedis(&playerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.characterRepo, err = characterRepo.NewRedis(&characterRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.chatRepo, err = chatRepo.NewRedis(&chatRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.rollRepo, err = rollRepo.NewRedis(&rollRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.hub, err = hub.New(&hub.Config{Clock: s.mockClock})
	s.Require().NoError(err)
	s.events = nil
	s.hub.AddObserver(hub.ObserverFunc(func(e *hub.Event) {
		s.eventsMu.Lock()
		defer s.eventsMu.Unlock()
		s.events = append(s.events, e)
	}))

	s.messaging, err = messaging.NewService(&messaging.Config{Roller: dice.New(&dice.Config{Seed: 1})})
	s.Require().NoError(err)
	s.hasher = password.New(&password.Config{Cost: bcrypt.MinCost})

	s.gameService = s.newService(s.messaging)

	for _, user := range []string{"dm", "alice", "bob", "carol"} {
		s.addCharacter("char-"+user, user)
	}
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) newService(msg messaging.Service) Service {
	svc, err := NewService(&Config{
		GameRepo:      s.gameRepo,
		PlayerRepo:    s.playerRepo,
		CharacterRepo: s.characterRepo,
		ChatRepo:      s.chatRepo,
		DiceRollRepo:  s.rollRepo,
		Broadcaster:   s.hub,
		Messaging:     msg,
		Hasher:        s.hasher,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	return svc
}

func (s *GameServiceTestSuite) addCharacter(id, userID string) {
	s.Require().NoError(s.characterRepo.SaveCharacter(s.ctx, &characterRepo.SaveCharacterInput{
		Character: &models.Character{
			ID:        id,
			UserID:    userID,
			Name:      "Hero of " + userID,
			Class:     models.ClassFighter,
			Race:      models.RaceHuman,
			Level:     1,
			HitPoints: models.HitPoints{Current: 10, Maximum: 10},
			CreatedAt: s.testTime,
			UpdatedAt: s.testTime,
		},
	}))
}

func (s *GameServiceTestSuite) createGame(maxPlayers int, secret string) *SessionView {
	out, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		UserID:     "dm",
		Name:       "Lost Mine of Phandelver",
		MaxPlayers: maxPlayers,
		Password:   secret,
	})
	s.Require().NoError(err)
	return out.Session
}

func (s *GameServiceTestSuite) join(sessionID, userID string) (*JoinGameOutput, error) {
	return s.gameService.JoinGame(s.ctx, &JoinGameInput{
		SessionID:   sessionID,
		UserID:      userID,
		CharacterID: "char-" + userID,
	})
}

func (s *GameServiceTestSuite) status(sessionID string) models.GameStatus {
	out, err := s.gameService.GetGame(s.ctx, &GetGameInput{SessionID: sessionID})
	s.Require().NoError(err)
	return out.Session.Status
}

func (s *GameServiceTestSuite) observed(eventType hub.EventType) []*hub.Event {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	var matched []*hub.Event
	for _, e := range s.events {
		if e.Type == eventType {
			matched = append(matched, e)
		}
	}
	return matched
}

func (s *GameServiceTestSuite) TestNewServiceValidatesConfig() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(&Config{GameRepo: s.gameRepo})
	s.ErrorIs(err, ErrNilPlayerRepo)
}

func (s *GameServiceTestSuite) TestCreateGame_HappyPath() {
	out, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		UserID:      "dm",
		Name:        "  Curse of Strahd ",
		Description: "Gothic horror",
		MaxPlayers:  5,
		Password:    "open sesame",
	})
	s.Require().NoError(err)

	s.Equal("Curse of Strahd", out.Session.Name)
	s.Equal(models.GameStatusWaiting, out.Session.Status)
	s.Equal(1, out.Session.CurrentPlayers)
	s.True(out.Session.HasPassword)
	s.Equal(models.PlayerRoleDM, out.DM.Role)
	s.Empty(out.DM.CharacterID)

	stored, err := s.gameRepo.GetSession(s.ctx, &gameRepo.GetSessionInput{SessionID: out.Session.ID})
	s.Require().NoError(err)
	s.NotEqual("open sesame", stored.PasswordHash)
	s.True(s.hasher.Verify("open sesame", stored.PasswordHash))

	raw, err := json.Marshal(out.Session)
	s.Require().NoError(err)
	s.NotContains(string(raw), "password_hash")
}

func (s *GameServiceTestSuite) TestCreateGame_Validation() {
	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{UserID: "dm", Name: "   "})
	s.ErrorIs(err, ErrNameRequired)

	_, err = s.gameService.CreateGame(s.ctx, &CreateGameInput{UserID: "dm", Name: "Too many", MaxPlayers: 9})
	s.ErrorIs(err, ErrInvalidMaxPlayers)
	s.Equal(apperr.KindInvalidArgument, apperr.KindOf(err))

	out, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{UserID: "dm", Name: "Default cap"})
	s.Require().NoError(err)
	s.Equal(DefaultMaxPlayers, out.Session.MaxPlayers)
}

func (s *GameServiceTestSuite) TestJoinGame_PasswordGating() {
	session := s.createGame(4, "mellon")

	_, err := s.join(session.ID, "alice")
	s.ErrorIs(err, ErrPasswordRequired)
	s.Equal(apperr.KindPasswordRequired, apperr.KindOf(err))

	_, err = s.gameService.JoinGame(s.ctx, &JoinGameInput{
		SessionID: session.ID, UserID: "alice", CharacterID: "char-alice", Password: "friend",
	})
	s.ErrorIs(err, ErrInvalidPassword)

	out, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{
		SessionID: session.ID, UserID: "alice", CharacterID: "char-alice", Password: "mellon",
	})
	s.Require().NoError(err)
	s.Equal(session.CurrentPlayers+1, out.Session.CurrentPlayers)
	s.Equal(models.PlayerRolePlayer, out.Player.Role)
	s.Equal("char-alice", out.Player.CharacterID)
}

func (s *GameServiceTestSuite) TestJoinGame_GuardOrder() {
	session := s.createGame(2, "mellon")

	_, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{
		SessionID: session.ID, UserID: "alice", CharacterID: "char-alice", Password: "mellon",
	})
	s.Require().NoError(err)

	// already joined wins over the full roster
	_, err = s.join(session.ID, "alice")
	s.ErrorIs(err, ErrAlreadyJoined)

	// full wins over the missing password
	_, err = s.join(session.ID, "bob")
	s.ErrorIs(err, ErrSessionFull)
	s.Equal(apperr.KindSessionFull, apperr.KindOf(err))

	_, err = s.gameService.EndGame(s.ctx, &EndGameInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)

	// terminal wins over everything
	_, err = s.join(session.ID, "alice")
	s.ErrorIs(err, ErrGameNotJoinable)
}

func (s *GameServiceTestSuite) TestJoinGame_CharacterChecks() {
	session := s.createGame(4, "")

	_, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{SessionID: session.ID, UserID: "alice"})
	s.ErrorIs(err, ErrCharacterRequired)

	_, err = s.gameService.JoinGame(s.ctx, &JoinGameInput{
		SessionID: session.ID, UserID: "alice", CharacterID: "char-bob",
	})
	s.ErrorIs(err, ErrCharacterNotFound)

	_, err = s.gameService.JoinGame(s.ctx, &JoinGameInput{
		SessionID: session.ID, UserID: "alice", CharacterID: "missing",
	})
	s.ErrorIs(err, ErrCharacterNotFound)

	_, err = s.join("no-such-session", "alice")
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestJoinGame_BroadcastsAndPostsSystemMessage() {
	session := s.createGame(4, "")
	dmConn := &recordingConn{id: "conn-dm", userID: "dm"}
	_, err := s.gameService.ConnectRoom(s.ctx, &ConnectRoomInput{SessionID: session.ID, Connection: dmConn})
	s.Require().NoError(err)

	_, err = s.join(session.ID, "alice")
	s.Require().NoError(err)

	s.Equal([]hub.EventType{hub.EventPlayerJoined, hub.EventChatMessageBroadcast}, dmConn.eventTypes())

	chat, err := s.gameService.ListMessages(s.ctx, &ListMessagesInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)
	s.Require().Len(chat.Messages, 1)
	s.Equal(models.MessageTypeSystem, chat.Messages[0].Type)
	s.Contains(chat.Messages[0].Content, "Hero of alice")
}

func (s *GameServiceTestSuite) TestJoinGame_MessagingFailureDoesNotFailJoin() {
	mockMessaging := messagingMocks.NewMockService(s.mockCtrl)
	mockMessaging.EXPECT().GetPlayerJoinedMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	svc := s.newService(mockMessaging)

	created, err := svc.CreateGame(s.ctx, &CreateGameInput{UserID: "dm", Name: "Quiet table"})
	s.Require().NoError(err)

	out, err := svc.JoinGame(s.ctx, &JoinGameInput{SessionID: created.Session.ID, UserID: "alice", CharacterID: "char-alice"})
	s.Require().NoError(err)
	s.Equal(2, out.Session.CurrentPlayers)
}

func (s *GameServiceTestSuite) TestLeaveGame_TwiceIsNotFound() {
	session := s.createGame(4, "")
	_, err := s.join(session.ID, "alice")
	s.Require().NoError(err)

	out, err := s.gameService.LeaveGame(s.ctx, &LeaveGameInput{SessionID: session.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(1, out.RemainingPlayers)
	s.False(out.AutoPaused)

	_, err = s.gameService.LeaveGame(s.ctx, &LeaveGameInput{SessionID: session.ID, UserID: "alice"})
	s.ErrorIs(err, ErrPlayerNotInGame)
	s.Equal(apperr.KindNotFound, apperr.KindOf(err))

	roster, err := s.gameService.GetGame(s.ctx, &GetGameInput{SessionID: session.ID})
	s.Require().NoError(err)
	s.Len(roster.Players, 1)
}

func (s *GameServiceTestSuite) TestLeaveGame_LastPlayerPausesActiveSession() {
	session := s.createGame(1, "")
	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)

	out, err := s.gameService.LeaveGame(s.ctx, &LeaveGameInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)
	s.Equal(0, out.RemainingPlayers)
	s.True(out.AutoPaused)
	s.Equal(models.GameStatusPaused, out.Session.Status)
	s.Equal(models.GameStatusPaused, s.status(session.ID))
}

func (s *GameServiceTestSuite) TestLeaveGame_WaitingSessionStaysWaiting() {
	session := s.createGame(4, "")

	out, err := s.gameService.LeaveGame(s.ctx, &LeaveGameInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)
	s.Equal(0, out.RemainingPlayers)
	s.False(out.AutoPaused)
	s.Equal(models.GameStatusWaiting, s.status(session.ID))
}

func (s *GameServiceTestSuite) TestLeaveGame_FailedPauseKeepsPlayerEnrolled() {
	flaky := &flakyGameRepo{Repository: s.gameRepo}
	s.gameRepo = flaky
	s.gameService = s.newService(s.messaging)

	session := s.createGame(1, "")
	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)

	flaky.failSaves.Store(true)
	_, err = s.gameService.LeaveGame(s.ctx, &LeaveGameInput{SessionID: session.ID, UserID: "dm"})
	s.Require().Error(err)
	s.Equal(apperr.KindInternal, apperr.KindOf(err))

	player, err := s.playerRepo.GetPlayer(s.ctx, &playerRepo.GetPlayerInput{GameID: session.ID, UserID: "dm"})
	s.Require().NoError(err)
	s.Equal(models.PlayerRoleDM, player.Role)
	s.Equal(models.GameStatusActive, s.status(session.ID))
	s.Empty(s.observed(hub.EventPlayerLeft))

	flaky.failSaves.Store(false)
	out, err := s.gameService.LeaveGame(s.ctx, &LeaveGameInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)
	s.True(out.AutoPaused)
	s.Equal(models.GameStatusPaused, s.status(session.ID))

	mine, err := s.gameService.ListMyGames(s.ctx, &ListMyGamesInput{UserID: "dm"})
	s.Require().NoError(err)
	s.Empty(mine.Sessions)
}

func (s *GameServiceTestSuite) TestLeaveGame_EvictsConnections() {
	session := s.createGame(4, "")
	_, err := s.join(session.ID, "alice")
	s.Require().NoError(err)

	aliceConn := &recordingConn{id: "conn-alice", userID: "alice"}
	_, err = s.gameService.ConnectRoom(s.ctx, &ConnectRoomInput{SessionID: session.ID, Connection: aliceConn})
	s.Require().NoError(err)
	s.Equal(1, s.hub.RoomSize(session.ID))

	_, err = s.gameService.LeaveGame(s.ctx, &LeaveGameInput{SessionID: session.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(0, s.hub.RoomSize(session.ID))
	s.Empty(aliceConn.eventTypes())
}

func (s *GameServiceTestSuite) TestStartGame() {
	session := s.createGame(4, "")

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: session.ID, UserID: "alice"})
	s.ErrorIs(err, ErrNotDM)
	s.Equal(apperr.KindForbidden, apperr.KindOf(err))

	out, err := s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)
	s.Equal(models.GameStatusActive, out.Session.Status)

	changes := s.observed(hub.EventGameStatusChanged)
	s.Require().Len(changes, 1)

	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: session.ID, UserID: "dm"})
	s.ErrorIs(err, ErrInvalidTransition)
}

func (s *GameServiceTestSuite) TestStartGame_CompletedIsInvalidTransition() {
	session := s.createGame(4, "")
	_, err := s.gameService.EndGame(s.ctx, &EndGameInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)

	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: session.ID, UserID: "dm"})
	s.ErrorIs(err, ErrInvalidTransition)
	s.Equal(apperr.KindInvalidTransition, apperr.KindOf(err))
	s.Equal(models.GameStatusCompleted, s.status(session.ID))
}

func (s *GameServiceTestSuite) TestLifecycleTransitions() {
	session := s.createGame(4, "")
	id, user := session.ID, "dm"

	_, err := s.gameService.PauseGame(s.ctx, &PauseGameInput{SessionID: id, UserID: user})
	s.ErrorIs(err, ErrInvalidTransition)
	_, err = s.gameService.ResumeGame(s.ctx, &ResumeGameInput{SessionID: id, UserID: user})
	s.ErrorIs(err, ErrInvalidTransition)

	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: id, UserID: user})
	s.Require().NoError(err)

	paused, err := s.gameService.PauseGame(s.ctx, &PauseGameInput{SessionID: id, UserID: user})
	s.Require().NoError(err)
	s.Equal(models.GameStatusPaused, paused.Session.Status)

	resumed, err := s.gameService.ResumeGame(s.ctx, &ResumeGameInput{SessionID: id, UserID: user})
	s.Require().NoError(err)
	s.Equal(models.GameStatusActive, resumed.Session.Status)

	cancelled, err := s.gameService.CancelGame(s.ctx, &CancelGameInput{SessionID: id, UserID: user})
	s.Require().NoError(err)
	s.Equal(models.GameStatusCancelled, cancelled.Session.Status)

	_, err = s.gameService.EndGame(s.ctx, &EndGameInput{SessionID: id, UserID: user})
	s.ErrorIs(err, ErrInvalidTransition)
	_, err = s.gameService.ResumeGame(s.ctx, &ResumeGameInput{SessionID: id, UserID: user})
	s.ErrorIs(err, ErrInvalidTransition)

	s.Len(s.observed(hub.EventGameStatusChanged), 4)
}

func (s *GameServiceTestSuite) TestUpdateGame() {
	session := s.createGame(4, "")
	_, err := s.join(session.ID, "alice")
	s.Require().NoError(err)

	one := 1
	_, err = s.gameService.UpdateGame(s.ctx, &UpdateGameInput{SessionID: session.ID, UserID: "dm", MaxPlayers: &one})
	s.ErrorIs(err, ErrMaxPlayersBelowRoster)

	_, err = s.gameService.UpdateGame(s.ctx, &UpdateGameInput{
		SessionID: session.ID, UserID: "dm", GameState: json.RawMessage(`{"round":`),
	})
	s.ErrorIs(err, ErrInvalidGameState)

	_, err = s.gameService.UpdateGame(s.ctx, &UpdateGameInput{SessionID: session.ID, UserID: "alice"})
	s.ErrorIs(err, ErrNotDM)

	name := "Out of the Abyss"
	three := 3
	out, err := s.gameService.UpdateGame(s.ctx, &UpdateGameInput{
		SessionID:  session.ID,
		UserID:     "dm",
		Name:       &name,
		MaxPlayers: &three,
		GameState:  json.RawMessage(`{"round":2}`),
	})
	s.Require().NoError(err)
	s.Equal(name, out.Session.Name)
	s.Equal(3, out.Session.MaxPlayers)
	s.JSONEq(`{"round":2}`, string(out.Session.GameState))
	s.Len(s.observed(hub.EventGameStateUpdated), 1)
}

func (s *GameServiceTestSuite) TestListGamesAndMyGames() {
	first := s.createGame(4, "")
	second := s.createGame(4, "")
	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: second.ID, UserID: "dm"})
	s.Require().NoError(err)
	_, err = s.join(first.ID, "alice")
	s.Require().NoError(err)

	all, err := s.gameService.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Equal(2, all.Total)
	s.Equal(DefaultPageSize, all.Limit)

	active, err := s.gameService.ListGames(s.ctx, &ListGamesInput{Status: models.GameStatusActive})
	s.Require().NoError(err)
	s.Require().Len(active.Sessions, 1)
	s.Equal(second.ID, active.Sessions[0].ID)

	_, err = s.gameService.ListGames(s.ctx, &ListGamesInput{Status: "sleeping"})
	s.ErrorIs(err, ErrInvalidStatusFilter)

	mine, err := s.gameService.ListMyGames(s.ctx, &ListMyGamesInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Require().Len(mine.Sessions, 1)
	s.Equal(first.ID, mine.Sessions[0].ID)
	s.Equal(2, mine.Sessions[0].CurrentPlayers)

	none, err := s.gameService.ListMyGames(s.ctx, &ListMyGamesInput{UserID: "carol"})
	s.Require().NoError(err)
	s.Empty(none.Sessions)
}

func (s *GameServiceTestSuite) TestRollDice_Standalone() {
	s.mockDiceRoller.EXPECT().Roll(6).Return(3).Times(4)

	out, err := s.gameService.RollDice(s.ctx, &RollDiceInput{UserID: "alice", DiceType: "d6", Count: 4})
	s.Require().NoError(err)
	s.Equal([]int{3, 3, 3, 3}, out.Roll.Results)
	s.Equal(12, out.Roll.Total)
	s.Empty(out.Roll.ID)
	s.Empty(s.observed(hub.EventDiceRollResult))
}

func (s *GameServiceTestSuite) TestRollDice_InvalidInputDrawsNothing() {
	_, err := s.gameService.RollDice(s.ctx, &RollDiceInput{UserID: "alice", DiceType: "d1"})
	s.ErrorIs(err, dice.ErrInvalidSides)

	_, err = s.gameService.RollDice(s.ctx, &RollDiceInput{UserID: "alice", DiceType: "d6", Count: 21})
	s.ErrorIs(err, dice.ErrInvalidCount)
}

func (s *GameServiceTestSuite) TestRollDice_InSession() {
	session := s.createGame(4, "")
	_, err := s.join(session.ID, "alice")
	s.Require().NoError(err)

	_, err = s.gameService.RollDice(s.ctx, &RollDiceInput{SessionID: session.ID, UserID: "bob", Notation: "d20"})
	s.ErrorIs(err, ErrNotAMember)
	s.Equal(apperr.KindForbidden, apperr.KindOf(err))

	_, err = s.gameService.RollDice(s.ctx, &RollDiceInput{
		SessionID: session.ID, UserID: "alice", CharacterID: "char-dm", Notation: "d20",
	})
	s.ErrorIs(err, ErrCharacterNotFound)

	aliceConn := &recordingConn{id: "conn-alice", userID: "alice"}
	_, err = s.gameService.ConnectRoom(s.ctx, &ConnectRoomInput{SessionID: session.ID, Connection: aliceConn})
	s.Require().NoError(err)

	s.mockDiceRoller.EXPECT().Roll(20).Return(20)
	out, err := s.gameService.RollDice(s.ctx, &RollDiceInput{
		SessionID:   session.ID,
		UserID:      "alice",
		CharacterID: "char-alice",
		Notation:    "1d20+5",
		RollType:    "attack",
	})
	s.Require().NoError(err)
	s.Equal(25, out.Roll.Total)
	s.Equal("d20", out.Roll.DiceType)
	s.True(out.IsCriticalHit)
	s.Contains(out.Message, "Hero of alice")

	// the roller sees their own roll
	s.Equal([]hub.EventType{hub.EventDiceRollResult}, aliceConn.eventTypes())

	rolls, err := s.gameService.ListRolls(s.ctx, &ListRollsInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)
	s.Equal(1, rolls.Total)
	s.Equal(out.Roll.ID, rolls.Rolls[0].ID)
}

func (s *GameServiceTestSuite) TestChat() {
	session := s.createGame(4, "")
	_, err := s.join(session.ID, "alice")
	s.Require().NoError(err)

	_, err = s.gameService.SendMessage(s.ctx, &SendMessageInput{SessionID: session.ID, UserID: "bob", Content: "hi"})
	s.ErrorIs(err, ErrNotAMember)

	_, err = s.gameService.SendMessage(s.ctx, &SendMessageInput{SessionID: session.ID, UserID: "alice", Content: "  "})
	s.ErrorIs(err, ErrInvalidMessage)

	long := make([]rune, models.MaxChatMessageLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = s.gameService.SendMessage(s.ctx, &SendMessageInput{SessionID: session.ID, UserID: "alice", Content: string(long)})
	s.ErrorIs(err, ErrInvalidMessage)

	fromDM, err := s.gameService.SendMessage(s.ctx, &SendMessageInput{SessionID: session.ID, UserID: "dm", Content: "You enter a cave."})
	s.Require().NoError(err)
	s.Equal(models.MessageTypeDM, fromDM.Message.Type)

	fromAlice, err := s.gameService.SendMessage(s.ctx, &SendMessageInput{SessionID: session.ID, UserID: "alice", Content: "I light a torch."})
	s.Require().NoError(err)
	s.Equal(models.MessageTypePlayer, fromAlice.Message.Type)

	listed, err := s.gameService.ListMessages(s.ctx, &ListMessagesInput{SessionID: session.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(3, listed.Total)
	s.Require().Len(listed.Messages, 3)
	s.Equal(models.MessageTypeSystem, listed.Messages[0].Type)
	s.Equal(fromDM.Message.ID, listed.Messages[1].ID)
	s.Equal(fromAlice.Message.ID, listed.Messages[2].ID)

	latest, err := s.gameService.ListMessages(s.ctx, &ListMessagesInput{
		SessionID: session.ID, UserID: "alice", Pagination: Pagination{Page: 1, Limit: 2},
	})
	s.Require().NoError(err)
	s.Require().Len(latest.Messages, 2)
	s.Equal(fromDM.Message.ID, latest.Messages[0].ID)

	_, err = s.gameService.ListMessages(s.ctx, &ListMessagesInput{SessionID: session.ID, UserID: "bob"})
	s.ErrorIs(err, ErrNotAMember)
}

func (s *GameServiceTestSuite) TestDeleteMessage() {
	session := s.createGame(4, "")
	_, err := s.join(session.ID, "alice")
	s.Require().NoError(err)
	_, err = s.join(session.ID, "bob")
	s.Require().NoError(err)

	sent, err := s.gameService.SendMessage(s.ctx, &SendMessageInput{SessionID: session.ID, UserID: "alice", Content: "oops"})
	s.Require().NoError(err)

	_, err = s.gameService.DeleteMessage(s.ctx, &DeleteMessageInput{SessionID: session.ID, UserID: "bob", MessageID: sent.Message.ID})
	s.ErrorIs(err, ErrForbidden)

	_, err = s.gameService.DeleteMessage(s.ctx, &DeleteMessageInput{SessionID: session.ID, UserID: "dm", MessageID: sent.Message.ID})
	s.Require().NoError(err)
	s.Len(s.observed(hub.EventChatMessageDeleted), 1)

	_, err = s.gameService.DeleteMessage(s.ctx, &DeleteMessageInput{SessionID: session.ID, UserID: "alice", MessageID: sent.Message.ID})
	s.ErrorIs(err, ErrMessageNotFound)

	own, err := s.gameService.SendMessage(s.ctx, &SendMessageInput{SessionID: session.ID, UserID: "bob", Content: "mine"})
	s.Require().NoError(err)
	_, err = s.gameService.DeleteMessage(s.ctx, &DeleteMessageInput{SessionID: session.ID, UserID: "bob", MessageID: own.Message.ID})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestRealtimeRelays() {
	session := s.createGame(4, "")
	_, err := s.join(session.ID, "alice")
	s.Require().NoError(err)

	_, err = s.gameService.ConnectRoom(s.ctx, &ConnectRoomInput{
		SessionID: session.ID, Connection: &recordingConn{id: "conn-bob", userID: "bob"},
	})
	s.ErrorIs(err, ErrNotAMember)

	dmConn := &recordingConn{id: "conn-dm", userID: "dm"}
	aliceConn := &recordingConn{id: "conn-alice", userID: "alice"}
	for _, c := range []*recordingConn{dmConn, aliceConn} {
		_, err := s.gameService.ConnectRoom(s.ctx, &ConnectRoomInput{SessionID: session.ID, Connection: c})
		s.Require().NoError(err)
	}

	_, err = s.gameService.BroadcastAction(s.ctx, &BroadcastActionInput{
		SessionID: session.ID, UserID: "alice", ConnectionID: "conn-alice", Action: json.RawMessage(`not json`),
	})
	s.ErrorIs(err, ErrInvalidAction)

	action, err := s.gameService.BroadcastAction(s.ctx, &BroadcastActionInput{
		SessionID: session.ID, UserID: "alice", ConnectionID: "conn-alice", Action: json.RawMessage(`{"move":"north"}`),
	})
	s.Require().NoError(err)
	s.Equal(1, action.Delivered)

	update, err := s.gameService.BroadcastCharacterUpdate(s.ctx, &BroadcastCharacterUpdateInput{
		SessionID: session.ID, UserID: "alice", ConnectionID: "conn-alice", CharacterID: "char-alice",
	})
	s.Require().NoError(err)
	s.Equal(1, update.Delivered)

	_, err = s.gameService.BroadcastCharacterUpdate(s.ctx, &BroadcastCharacterUpdateInput{
		SessionID: session.ID, UserID: "alice", CharacterID: "char-dm",
	})
	s.ErrorIs(err, ErrCharacterNotFound)

	s.Equal([]hub.EventType{hub.EventGameActionBroadcast, hub.EventCharacterUpdateBroadcast}, dmConn.eventTypes())
	s.Empty(aliceConn.eventTypes())

	s.Require().NoError(s.gameService.DisconnectRoom(s.ctx, &DisconnectRoomInput{SessionID: session.ID, Connection: aliceConn}))
	s.Equal(1, s.hub.RoomSize(session.ID))
}

func (s *GameServiceTestSuite) TestConcurrentJoinsNeverExceedMaxPlayers() {
	session := s.createGame(4, "")

	users := make([]string, 10)
	for i := range users {
		users[i] = fmt.Sprintf("user-%d", i)
		s.addCharacter("char-"+users[i], users[i])
	}

	var (
		wg     sync.WaitGroup
		joined atomic.Int32
		full   atomic.Int32
	)
	for _, user := range users {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			_, err := s.join(session.ID, user)
			switch {
			case err == nil:
				joined.Add(1)
			case errors.Is(err, ErrSessionFull):
				full.Add(1)
			}
		}(user)
	}
	wg.Wait()

	s.Equal(int32(3), joined.Load())
	s.Equal(int32(7), full.Load())

	out, err := s.gameService.GetGame(s.ctx, &GetGameInput{SessionID: session.ID})
	s.Require().NoError(err)
	s.Equal(4, out.Session.CurrentPlayers)
}

func (s *GameServiceTestSuite) TestConcurrentLastLeavesPauseExactlyOnce() {
	session := s.createGame(3, "")
	for _, user := range []string{"alice", "bob"} {
		_, err := s.join(session.ID, user)
		s.Require().NoError(err)
	}
	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: session.ID, UserID: "dm"})
	s.Require().NoError(err)

	var (
		wg     sync.WaitGroup
		paused atomic.Int32
	)
	for _, user := range []string{"dm", "alice", "bob"} {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			out, err := s.gameService.LeaveGame(s.ctx, &LeaveGameInput{SessionID: session.ID, UserID: user})
			if err == nil && out.AutoPaused {
				paused.Add(1)
			}
		}(user)
	}
	wg.Wait()

	s.Equal(int32(1), paused.Load())
	s.Equal(models.GameStatusPaused, s.status(session.ID))
}

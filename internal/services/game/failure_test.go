package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	clockMocks "github.com/KirkDiggler/tavern/internal/common/clock/mocks"
	passwordMocks "github.com/KirkDiggler/tavern/internal/common/password/mocks"
	uuidMocks "github.com/KirkDiggler/tavern/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/tavern/internal/dice/mocks"
	hubMocks "github.com/KirkDiggler/tavern/internal/hub/mocks"
	"github.com/KirkDiggler/tavern/internal/models"
	characterMocks "github.com/KirkDiggler/tavern/internal/repositories/character/mocks"
	chatRepo "github.com/KirkDiggler/tavern/internal/repositories/chat"
	chatMocks "github.com/KirkDiggler/tavern/internal/repositories/chat/mocks"
	rollRepo "github.com/KirkDiggler/tavern/internal/repositories/dice_roll"
	rollMocks "github.com/KirkDiggler/tavern/internal/repositories/dice_roll/mocks"
	gameRepo "github.com/KirkDiggler/tavern/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/tavern/internal/repositories/game/mocks"
	playerRepo "github.com/KirkDiggler/tavern/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/tavern/internal/repositories/player/mocks"
	"github.com/KirkDiggler/tavern/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/tavern/internal/services/messaging/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errRedisDown = errors.New("redis down")

// Storage failures, driven through repository mocks. Unexpected calls fail the
// test, so a missing Broadcast expectation proves nothing was announced.
type GameServiceFailureTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockGameRepo      *gameMocks.MockRepository
	mockPlayerRepo    *playerMocks.MockRepository
	mockCharacterRepo *characterMocks.MockRepository
	mockChatRepo      *chatMocks.MockRepository
	mockRollRepo      *rollMocks.MockRepository
	mockBroadcaster   *hubMocks.MockBroadcaster
	mockMessaging     *messagingMocks.MockService
	mockHasher        *passwordMocks.MockHasher
	mockDiceRoller    *diceMocks.MockRoller
	mockClock         *clockMocks.MockClock
	mockUUID          *uuidMocks.MockUUID

	gameService Service
	ctx         context.Context
	testTime    time.Time
}

func (s *GameServiceFailureTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockCharacterRepo = characterMocks.NewMockRepository(s.mockCtrl)
	s.mockChatRepo = chatMocks.NewMockRepository(s.mockCtrl)
	s.mockRollRepo = rollMocks.NewMockRepository(s.mockCtrl)
	s.mockBroadcaster = hubMocks.NewMockBroadcaster(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.mockHasher = passwordMocks.NewMockHasher(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := NewService(&Config{
		GameRepo:      s.mockGameRepo,
		PlayerRepo:    s.mockPlayerRepo,
		CharacterRepo: s.mockCharacterRepo,
		ChatRepo:      s.mockChatRepo,
		DiceRollRepo:  s.mockRollRepo,
		Broadcaster:   s.mockBroadcaster,
		Messaging:     s.mockMessaging,
		Hasher:        s.mockHasher,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceFailureTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceFailureTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceFailureTestSuite))
}

func (s *GameServiceFailureTestSuite) session(status models.GameStatus) *models.GameSession {
	return &models.GameSession{
		ID:         "game-1",
		DMUserID:   "dm",
		Name:       "Curse of Strahd",
		MaxPlayers: 4,
		Status:     status,
		CreatedAt:  s.testTime,
		UpdatedAt:  s.testTime,
	}
}

func (s *GameServiceFailureTestSuite) TestCreateGame_DeletesSessionWhenDMEnrollFails() {
	s.mockUUID.EXPECT().NewUUID().Return("game-1")
	s.mockGameRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	s.mockPlayerRepo.EXPECT().AddPlayer(gomock.Any(), gomock.Any()).Return(errRedisDown)
	s.mockGameRepo.EXPECT().DeleteSession(gomock.Any(), &gameRepo.DeleteSessionInput{SessionID: "game-1"}).Return(nil)

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{UserID: "dm", Name: "Curse of Strahd"})
	s.Require().Error(err)
	s.Equal(apperr.KindInternal, apperr.KindOf(err))
	s.ErrorIs(err, errRedisDown)
}

func (s *GameServiceFailureTestSuite) TestLeaveGame_RestoresRosterWhenPauseFails() {
	dm := &models.GamePlayer{GameID: "game-1", UserID: "dm", Role: models.PlayerRoleDM, JoinedAt: s.testTime}

	s.mockGameRepo.EXPECT().
		GetSession(gomock.Any(), &gameRepo.GetSessionInput{SessionID: "game-1"}).
		Return(s.session(models.GameStatusActive), nil)
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{GameID: "game-1", UserID: "dm"}).
		Return(dm, nil)
	s.mockPlayerRepo.EXPECT().
		RemovePlayer(gomock.Any(), &playerRepo.RemovePlayerInput{GameID: "game-1", UserID: "dm"}).
		Return(&playerRepo.RemovePlayerOutput{Remaining: 0}, nil)
	s.mockGameRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		Return(errRedisDown)
	s.mockPlayerRepo.EXPECT().
		AddPlayer(gomock.Any(), &playerRepo.AddPlayerInput{Player: dm}).
		Return(nil)

	out, err := s.gameService.LeaveGame(s.ctx, &LeaveGameInput{SessionID: "game-1", UserID: "dm"})
	s.Nil(out)
	s.Equal(apperr.KindInternal, apperr.KindOf(err))
	s.Equal("internal server error", apperr.MessageOf(err))
}

func (s *GameServiceFailureTestSuite) TestGetGame_StoreFailureIsInternal() {
	s.mockGameRepo.EXPECT().
		GetSession(gomock.Any(), &gameRepo.GetSessionInput{SessionID: "game-1"}).
		Return(nil, errRedisDown)

	_, err := s.gameService.GetGame(s.ctx, &GetGameInput{SessionID: "game-1"})
	s.Equal(apperr.KindInternal, apperr.KindOf(err))
}

func (s *GameServiceFailureTestSuite) TestGetGame_MissingSessionIsNotFound() {
	s.mockGameRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, gameRepo.ErrSessionNotFound)

	_, err := s.gameService.GetGame(s.ctx, &GetGameInput{SessionID: "game-1"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceFailureTestSuite) TestSendMessage_FailedSaveIsNotBroadcast() {
	s.mockGameRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(s.session(models.GameStatusActive), nil)
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{GameID: "game-1", UserID: "alice"}).
		Return(&models.GamePlayer{GameID: "game-1", UserID: "alice", Role: models.PlayerRolePlayer}, nil)
	s.mockUUID.EXPECT().NewUUID().Return("msg-1")
	s.mockChatRepo.EXPECT().
		AddMessage(gomock.Any(), gomock.AssignableToTypeOf(&chatRepo.AddMessageInput{})).
		Return(errRedisDown)

	_, err := s.gameService.SendMessage(s.ctx, &SendMessageInput{SessionID: "game-1", UserID: "alice", Content: "hello"})
	s.Equal(apperr.KindInternal, apperr.KindOf(err))
}

func (s *GameServiceFailureTestSuite) TestRollDice_FailedSaveIsNotBroadcast() {
	s.mockGameRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(s.session(models.GameStatusActive), nil)
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{GameID: "game-1", UserID: "alice"}).
		Return(&models.GamePlayer{GameID: "game-1", UserID: "alice", Role: models.PlayerRolePlayer}, nil)
	s.mockDiceRoller.EXPECT().Roll(20).Return(17)
	s.mockMessaging.EXPECT().
		GetRollResultMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetRollResultMessageOutput{Message: "You rolled 17"}, nil)
	s.mockUUID.EXPECT().NewUUID().Return("roll-1")
	s.mockRollRepo.EXPECT().
		AddRoll(gomock.Any(), gomock.AssignableToTypeOf(&rollRepo.AddRollInput{})).
		Return(errRedisDown)

	_, err := s.gameService.RollDice(s.ctx, &RollDiceInput{SessionID: "game-1", UserID: "alice", Notation: "d20"})
	s.Equal(apperr.KindInternal, apperr.KindOf(err))
}

package messaging

import (
	"context"
	"testing"

	diceMocks "github.com/KirkDiggler/tavern/internal/dice/mocks"
	"github.com/KirkDiggler/tavern/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	service    Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := NewService(&Config{Roller: s.mockRoller})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNewServiceValidatesConfig() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(&Config{})
	s.ErrorIs(err, ErrNilRoller)
}

func (s *MessagingServiceTestSuite) TestPlayerJoinedMessage() {
	s.mockRoller.EXPECT().Roll(4).Return(1)

	out, err := s.service.GetPlayerJoinedMessage(s.ctx, &GetPlayerJoinedMessageInput{
		PlayerName:  "Brunhild",
		PlayerCount: 2,
		MaxPlayers:  4,
	})
	s.Require().NoError(err)
	s.Equal("Brunhild pulls up a chair at the table. (2/4 seats taken)", out.Message)
}

func (s *MessagingServiceTestSuite) TestPlayerJoinedFillsTable() {
	s.mockRoller.EXPECT().Roll(4).Return(4)

	out, err := s.service.GetPlayerJoinedMessage(s.ctx, &GetPlayerJoinedMessageInput{
		PlayerName:  "Brunhild",
		PlayerCount: 4,
		MaxPlayers:  4,
	})
	s.Require().NoError(err)
	s.Equal("Brunhild joins the party. The table is now full.", out.Message)
}

func (s *MessagingServiceTestSuite) TestDMLeftWithAutoPause() {
	out, err := s.service.GetPlayerLeftMessage(s.ctx, &GetPlayerLeftMessageInput{
		PlayerName: "Morgan",
		WasDM:      true,
		AutoPaused: true,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Dungeon Master has stepped away")
	s.Contains(out.Message, "paused")
}

func (s *MessagingServiceTestSuite) TestGameStatusMessage() {
	out, err := s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{
		SessionName: "Curse of Strahd",
		From:        models.GameStatusPaused,
		To:          models.GameStatusActive,
	})
	s.Require().NoError(err)
	s.Equal("Curse of Strahd resumes. Back to the adventure!", out.Message)

	out, err = s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{
		From: models.GameStatusWaiting,
		To:   models.GameStatusActive,
	})
	s.Require().NoError(err)
	s.Equal("The session has begun. Roll for initiative!", out.Message)
}

func (s *MessagingServiceTestSuite) TestRollResultCriticalHit() {
	s.mockRoller.EXPECT().Roll(3).Return(2)

	out, err := s.service.GetRollResultMessage(s.ctx, &GetRollResultMessageInput{
		PlayerName:  "Brunhild",
		Description: "1d20+5",
		Rolls:       []int{20},
		Sides:       20,
		Total:       25,
		RollType:    "attack",
	})
	s.Require().NoError(err)
	s.True(out.IsCriticalHit)
	s.False(out.IsCriticalFail)
	s.Equal("Brunhild rolled 1d20+5 (attack): [20] = 25 Critical hit!", out.Message)
}

func (s *MessagingServiceTestSuite) TestRollResultPlain() {
	out, err := s.service.GetRollResultMessage(s.ctx, &GetRollResultMessageInput{
		PlayerName:  "Brunhild",
		Description: "2d6",
		Rolls:       []int{3, 4},
		Sides:       6,
		Total:       7,
		RollType:    "saving_throw",
	})
	s.Require().NoError(err)
	s.False(out.IsCriticalHit)
	s.Equal("Brunhild rolled 2d6 (saving throw): [3, 4] = 7", out.Message)
}

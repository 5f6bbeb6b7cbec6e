package dice_roll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/tavern/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) roll(id, userID string) *models.DiceRoll {
	return &models.DiceRoll{
		ID:          id,
		GameID:      "game-1",
		UserID:      userID,
		DiceType:    "d20",
		Count:       1,
		Modifier:    3,
		Results:     []int{14},
		Total:       17,
		RollType:    "attack",
		Description: "1d20+3",
		// identical timestamps: order must come from insertion
		CreatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestAddAndGetRoll() {
	s.Require().NoError(s.repo.AddRoll(s.ctx, &AddRollInput{Roll: s.roll("roll-1", "user-1")}))

	got, err := s.repo.GetRoll(s.ctx, &GetRollInput{RollID: "roll-1"})
	s.Require().NoError(err)
	s.Equal([]int{14}, got.Results)
	s.Equal(17, got.Total)
	s.Equal("attack", got.RollType)

	_, err = s.repo.GetRoll(s.ctx, &GetRollInput{RollID: "missing"})
	s.ErrorIs(err, ErrRollNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetRollsForGameNewestFirst() {
	for i := 1; i <= 5; i++ {
		user := "user-1"
		if i%2 == 0 {
			user = "user-2"
		}
		s.Require().NoError(s.repo.AddRoll(s.ctx, &AddRollInput{Roll: s.roll(fmt.Sprintf("roll-%d", i), user)}))
	}

	out, err := s.repo.GetRollsForGame(s.ctx, &GetRollsForGameInput{GameID: "game-1", Limit: 3})
	s.Require().NoError(err)
	s.Equal(5, out.Total)
	s.Require().Len(out.Rolls, 3)
	s.Equal("roll-5", out.Rolls[0].ID)
	s.Equal("roll-4", out.Rolls[1].ID)
	s.Equal("roll-3", out.Rolls[2].ID)

	mine, err := s.repo.GetRollsForGame(s.ctx, &GetRollsForGameInput{GameID: "game-1", UserID: "user-2", Limit: 10})
	s.Require().NoError(err)
	s.Equal(2, mine.Total)
	s.Require().Len(mine.Rolls, 2)
	s.Equal("roll-4", mine.Rolls[0].ID)
	s.Equal("roll-2", mine.Rolls[1].ID)
}

func (s *RedisRepositoryTestSuite) TestGetRollsForEmptyGame() {
	out, err := s.repo.GetRollsForGame(s.ctx, &GetRollsForGameInput{GameID: "nothing", Limit: 10})
	s.Require().NoError(err)
	s.Empty(out.Rolls)
	s.Equal(0, out.Total)
}

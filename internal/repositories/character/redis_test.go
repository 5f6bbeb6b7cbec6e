package character

import (
	"context"
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
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

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

func (s *RedisRepositoryTestSuite) character(id, userID string, offset time.Duration) *models.Character {
	return &models.Character{
		ID:               id,
		UserID:           userID,
		Name:             "Hero " + id,
		Class:            models.ClassRogue,
		Race:             models.RaceHalfling,
		Level:            1,
		HitPoints:        models.HitPoints{Current: 9, Maximum: 9},
		ProficiencyBonus: 2,
		Inventory: []*models.Item{
			{ID: "item-1", Name: "Dagger", Quantity: 2, Weight: 1, Rarity: "common"},
		},
		CreatedAt: s.testNow.Add(offset),
		UpdatedAt: s.testNow.Add(offset),
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetCharacter() {
	s.Require().NoError(s.repo.SaveCharacter(s.ctx, &SaveCharacterInput{Character: s.character("c1", "user-1", 0)}))

	got, err := s.repo.GetCharacter(s.ctx, &GetCharacterInput{CharacterID: "c1"})
	s.Require().NoError(err)
	s.Equal("Hero c1", got.Name)
	s.Equal(models.ClassRogue, got.Class)
	s.Equal(9, got.HitPoints.Maximum)
	s.Require().Len(got.Inventory, 1)
	s.Equal("Dagger", got.Inventory[0].Name)
}

func (s *RedisRepositoryTestSuite) TestGetCharacterNotFound() {
	_, err := s.repo.GetCharacter(s.ctx, &GetCharacterInput{CharacterID: "missing"})
	s.ErrorIs(err, ErrCharacterNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetCharactersForUser() {
	s.Require().NoError(s.repo.SaveCharacter(s.ctx, &SaveCharacterInput{Character: s.character("c2", "user-1", time.Minute)}))
	s.Require().NoError(s.repo.SaveCharacter(s.ctx, &SaveCharacterInput{Character: s.character("c1", "user-1", 0)}))
	s.Require().NoError(s.repo.SaveCharacter(s.ctx, &SaveCharacterInput{Character: s.character("c3", "user-2", 0)}))

	chars, err := s.repo.GetCharactersForUser(s.ctx, &GetCharactersForUserInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Require().Len(chars, 2)
	s.Equal("c1", chars[0].ID)
	s.Equal("c2", chars[1].ID)

	none, err := s.repo.GetCharactersForUser(s.ctx, &GetCharactersForUserInput{UserID: "user-3"})
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *RedisRepositoryTestSuite) TestDeleteCharacter() {
	s.Require().NoError(s.repo.SaveCharacter(s.ctx, &SaveCharacterInput{Character: s.character("c1", "user-1", 0)}))

	s.Require().NoError(s.repo.DeleteCharacter(s.ctx, &DeleteCharacterInput{CharacterID: "c1"}))

	_, err := s.repo.GetCharacter(s.ctx, &GetCharacterInput{CharacterID: "c1"})
	s.ErrorIs(err, ErrCharacterNotFound)

	chars, err := s.repo.GetCharactersForUser(s.ctx, &GetCharactersForUserInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Empty(chars)

	s.ErrorIs(s.repo.DeleteCharacter(s.ctx, &DeleteCharacterInput{CharacterID: "c1"}), ErrCharacterNotFound)
}

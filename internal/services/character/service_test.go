package character

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	clockMocks "github.com/KirkDiggler/tavern/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/tavern/internal/common/uuid/mocks"
	"github.com/KirkDiggler/tavern/internal/models"
	characterRepo "github.com/KirkDiggler/tavern/internal/repositories/character"
	characterMocks "github.com/KirkDiggler/tavern/internal/repositories/character/mocks"
	"github.com/KirkDiggler/tavern/internal/rules"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CharacterServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *characterMocks.MockRepository
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	service   Service
	ctx       context.Context

	testTime   time.Time
	testUserID string
	testCharID string
}

func (s *CharacterServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = characterMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"
	s.testCharID = "test-character-id"
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := NewService(&Config{
		CharacterRepo: s.mockRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *CharacterServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCharacterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CharacterServiceTestSuite))
}

// fighter returns a fresh level 1 character each call so mutations never leak between loads
func (s *CharacterServiceTestSuite) fighter(mod func(c *models.Character)) func(context.Context, *characterRepo.GetCharacterInput) (*models.Character, error) {
	return func(context.Context, *characterRepo.GetCharacterInput) (*models.Character, error) {
		c := &models.Character{
			ID:               s.testCharID,
			UserID:           s.testUserID,
			Name:             "Brunhild",
			Class:            models.ClassFighter,
			Race:             models.RaceHuman,
			Level:            1,
			HitPoints:        models.HitPoints{Current: 12, Maximum: 12},
			ProficiencyBonus: 2,
			AbilityScores:    models.AbilityScores{Strength: 16, Dexterity: 15, Constitution: 14, Intelligence: 13, Wisdom: 11, Charisma: 9},
			Inventory:        []*models.Item{},
		}
		if mod != nil {
			mod(c)
		}
		return c, nil
	}
}

func (s *CharacterServiceTestSuite) expectLoad(mod func(c *models.Character)) {
	s.mockRepo.EXPECT().
		GetCharacter(s.ctx, &characterRepo.GetCharacterInput{CharacterID: s.testCharID}).
		DoAndReturn(s.fighter(mod))
}

func (s *CharacterServiceTestSuite) expectSave() *models.Character {
	saved := &models.Character{}
	s.mockRepo.EXPECT().
		SaveCharacter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *characterRepo.SaveCharacterInput) error {
			*saved = *input.Character
			return nil
		})
	return saved
}

func (s *CharacterServiceTestSuite) TestCreateCharacter_HappyPath() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testCharID)
	saved := s.expectSave()

	out, err := s.service.CreateCharacter(s.ctx, &CreateCharacterInput{
		UserID: s.testUserID,
		Name:   "Brunhild",
		Class:  models.ClassFighter,
		Race:   models.RaceHuman,
	})
	s.Require().NoError(err)

	c := out.Character
	s.Equal(s.testCharID, c.ID)
	s.Equal(1, c.Level)
	s.Equal(12, c.HitPoints.Maximum)
	s.Equal(12, c.HitPoints.Current)
	s.Equal(12, c.ArmorClass)
	s.Equal(2, c.ProficiencyBonus)
	s.Equal(30, c.Speed)
	s.Equal(s.testTime, c.CreatedAt)
	s.Equal(c.ID, saved.ID)
}

func (s *CharacterServiceTestSuite) TestCreateCharacter_UnknownClassSavesNothing() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testCharID)

	_, err := s.service.CreateCharacter(s.ctx, &CreateCharacterInput{
		UserID: s.testUserID,
		Name:   "Brunhild",
		Class:  "astronaut",
		Race:   models.RaceHuman,
	})
	s.ErrorIs(err, rules.ErrInvalidClass)
	s.Equal(apperr.KindInvalidArgument, apperr.KindOf(err))
}

func (s *CharacterServiceTestSuite) TestCreateCharacter_RepositoryError() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testCharID)
	s.mockRepo.EXPECT().SaveCharacter(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	_, err := s.service.CreateCharacter(s.ctx, &CreateCharacterInput{
		UserID: s.testUserID,
		Name:   "Brunhild",
		Class:  models.ClassFighter,
		Race:   models.RaceHuman,
	})
	s.Equal(apperr.KindInternal, apperr.KindOf(err))
}

func (s *CharacterServiceTestSuite) TestGetCharacter_OtherOwnerIsNotFound() {
	s.expectLoad(func(c *models.Character) { c.UserID = "someone-else" })

	_, err := s.service.GetCharacter(s.ctx, &GetCharacterInput{UserID: s.testUserID, CharacterID: s.testCharID})
	s.ErrorIs(err, ErrCharacterNotFound)
	s.Equal(apperr.KindNotFound, apperr.KindOf(err))
}

func (s *CharacterServiceTestSuite) TestGetCharacter_Missing() {
	s.mockRepo.EXPECT().GetCharacter(s.ctx, gomock.Any()).Return(nil, characterRepo.ErrCharacterNotFound)

	_, err := s.service.GetCharacter(s.ctx, &GetCharacterInput{UserID: s.testUserID, CharacterID: s.testCharID})
	s.ErrorIs(err, ErrCharacterNotFound)
}

func (s *CharacterServiceTestSuite) TestListCharacters() {
	s.mockRepo.EXPECT().
		GetCharactersForUser(s.ctx, &characterRepo.GetCharactersForUserInput{UserID: s.testUserID}).
		Return([]*models.Character{{ID: "a"}, {ID: "b"}}, nil)

	out, err := s.service.ListCharacters(s.ctx, &ListCharactersInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Len(out.Characters, 2)
}

func (s *CharacterServiceTestSuite) TestUpdateCharacter() {
	_, err := s.service.UpdateCharacter(s.ctx, &UpdateCharacterInput{
		UserID: s.testUserID, CharacterID: s.testCharID, Name: ptr("  "),
	})
	s.ErrorIs(err, rules.ErrInvalidName)

	s.expectLoad(nil)
	saved := s.expectSave()

	out, err := s.service.UpdateCharacter(s.ctx, &UpdateCharacterInput{
		UserID:      s.testUserID,
		CharacterID: s.testCharID,
		Name:        ptr("Brunhild the Bold"),
		Skills:      map[string]int{"athletics": 5},
	})
	s.Require().NoError(err)
	s.Equal("Brunhild the Bold", out.Character.Name)
	s.Equal(5, saved.Skills["athletics"])
	s.Equal(12, saved.HitPoints.Current)
}

func (s *CharacterServiceTestSuite) TestDeleteCharacter() {
	s.expectLoad(nil)
	s.mockRepo.EXPECT().
		DeleteCharacter(s.ctx, &characterRepo.DeleteCharacterInput{CharacterID: s.testCharID}).
		Return(nil)

	s.NoError(s.service.DeleteCharacter(s.ctx, &DeleteCharacterInput{UserID: s.testUserID, CharacterID: s.testCharID}))
}

func (s *CharacterServiceTestSuite) TestTakeDamage_TemporaryAbsorbsFirst() {
	s.expectLoad(func(c *models.Character) {
		c.HitPoints = models.HitPoints{Current: 20, Maximum: 20, Temporary: 5}
	})
	saved := s.expectSave()

	out, err := s.service.TakeDamage(s.ctx, &TakeDamageInput{UserID: s.testUserID, CharacterID: s.testCharID, Amount: 8})
	s.Require().NoError(err)
	s.Equal(5, out.Result.TemporaryAbsorbed)
	s.Equal(0, saved.HitPoints.Temporary)
	s.Equal(17, saved.HitPoints.Current)
	s.False(out.Result.Unconscious)
}

func (s *CharacterServiceTestSuite) TestTakeDamage_InvalidAmountSavesNothing() {
	s.expectLoad(nil)

	_, err := s.service.TakeDamage(s.ctx, &TakeDamageInput{UserID: s.testUserID, CharacterID: s.testCharID, Amount: 0})
	s.ErrorIs(err, rules.ErrInvalidAmount)
}

func (s *CharacterServiceTestSuite) TestHeal_CapsAtMaximum() {
	s.expectLoad(func(c *models.Character) { c.HitPoints.Current = 5 })
	saved := s.expectSave()

	out, err := s.service.Heal(s.ctx, &HealInput{UserID: s.testUserID, CharacterID: s.testCharID, Amount: 50})
	s.Require().NoError(err)
	s.Equal(7, out.Result.ActualHealing)
	s.Equal(12, saved.HitPoints.Current)
}

func (s *CharacterServiceTestSuite) TestLevelUp_ExperienceThreshold() {
	s.expectLoad(func(c *models.Character) { c.Experience = 299 })

	_, err := s.service.LevelUp(s.ctx, &LevelUpInput{UserID: s.testUserID, CharacterID: s.testCharID})
	s.ErrorIs(err, rules.ErrInsufficientExperience)
	s.Equal(apperr.KindInsufficientExperience, apperr.KindOf(err))

	s.expectLoad(func(c *models.Character) { c.Experience = 300 })
	saved := s.expectSave()

	out, err := s.service.LevelUp(s.ctx, &LevelUpInput{UserID: s.testUserID, CharacterID: s.testCharID})
	s.Require().NoError(err)
	s.Equal(2, out.Result.NewLevel)
	s.Equal(2, saved.Level)
	// fighter d10: 10/2 + 1 + con mod 2
	s.Equal(8, out.Result.HPGained)
	s.Equal(20, saved.HitPoints.Maximum)
	s.Equal(20, saved.HitPoints.Current)
}

func (s *CharacterServiceTestSuite) TestAwardExperience() {
	s.expectLoad(func(c *models.Character) { c.Experience = 250 })
	s.expectSave()

	out, err := s.service.AwardExperience(s.ctx, &AwardExperienceInput{UserID: s.testUserID, CharacterID: s.testCharID, Amount: 50})
	s.Require().NoError(err)
	s.Equal(300, out.Character.Experience)
	s.True(out.CanLevelUp)
}

func (s *CharacterServiceTestSuite) TestRest() {
	s.expectLoad(nil)
	_, err := s.service.Rest(s.ctx, &RestInput{UserID: s.testUserID, CharacterID: s.testCharID, RestType: "nap"})
	s.ErrorIs(err, rules.ErrInvalidRestType)

	s.expectLoad(func(c *models.Character) { c.HitPoints.Current = 1 })
	saved := s.expectSave()

	out, err := s.service.Rest(s.ctx, &RestInput{UserID: s.testUserID, CharacterID: s.testCharID, RestType: rules.RestTypeLong})
	s.Require().NoError(err)
	s.Equal(11, out.Result.HPRestored)
	s.Equal(12, saved.HitPoints.Current)
}

func (s *CharacterServiceTestSuite) TestGrantTemporaryHP() {
	s.expectLoad(func(c *models.Character) { c.HitPoints.Temporary = 3 })
	saved := s.expectSave()

	_, err := s.service.GrantTemporaryHP(s.ctx, &GrantTemporaryHPInput{UserID: s.testUserID, CharacterID: s.testCharID, Amount: 7})
	s.Require().NoError(err)
	s.Equal(7, saved.HitPoints.Temporary)
}

func (s *CharacterServiceTestSuite) TestInventory() {
	s.expectLoad(nil)
	s.mockUUID.EXPECT().NewUUID().Return("item-1")
	saved := s.expectSave()

	added, err := s.service.AddItem(s.ctx, &AddItemInput{
		UserID:      s.testUserID,
		CharacterID: s.testCharID,
		Item:        rules.ItemInput{Name: "Longsword", Weight: 3, Value: 15},
	})
	s.Require().NoError(err)
	s.Equal("item-1", added.Item.ID)
	s.Equal(1, added.Item.Quantity)
	s.Equal("common", added.Item.Rarity)
	s.Len(saved.Inventory, 1)

	withSword := func(c *models.Character) {
		c.Inventory = []*models.Item{{ID: "item-1", Name: "Longsword", Quantity: 1, Weight: 3, Value: 15, Rarity: "common"}}
	}

	s.expectLoad(withSword)
	s.expectSave()
	updated, err := s.service.UpdateItem(s.ctx, &UpdateItemInput{
		UserID:      s.testUserID,
		CharacterID: s.testCharID,
		ItemID:      "item-1",
		Patch:       rules.ItemPatch{Equipped: ptr(true)},
	})
	s.Require().NoError(err)
	s.True(updated.Item.Equipped)
	s.Equal("Longsword", updated.Item.Name)

	s.expectLoad(withSword)
	_, err = s.service.RemoveItem(s.ctx, &RemoveItemInput{UserID: s.testUserID, CharacterID: s.testCharID, ItemID: "item-2"})
	s.ErrorIs(err, rules.ErrItemNotFound)

	s.expectLoad(withSword)
	saved = s.expectSave()
	removed, err := s.service.RemoveItem(s.ctx, &RemoveItemInput{UserID: s.testUserID, CharacterID: s.testCharID, ItemID: "item-1"})
	s.Require().NoError(err)
	s.Equal("item-1", removed.Item.ID)
	s.Empty(saved.Inventory)
}

func ptr[T any](v T) *T {
	return &v
}

package character

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	"github.com/KirkDiggler/tavern/internal/common/clock"
	"github.com/KirkDiggler/tavern/internal/common/keylock"
	"github.com/KirkDiggler/tavern/internal/common/uuid"
	"github.com/KirkDiggler/tavern/internal/models"
	characterRepo "github.com/KirkDiggler/tavern/internal/repositories/character"
	"github.com/KirkDiggler/tavern/internal/rules"
)

type service struct {
	repo  characterRepo.Repository
	clock clock.Clock
	uuid  uuid.UUID
	locks *keylock.Locker
}

// NewService creates a new character service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.CharacterRepo == nil {
		return nil, ErrNilCharacterRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		repo:  cfg.CharacterRepo,
		clock: cfg.Clock,
		uuid:  cfg.UUIDGenerator,
		locks: keylock.New(),
	}, nil
}

func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validateSkills(input.Skills); err != nil {
		return nil, err
	}

	character, err := rules.NewCharacter(&rules.NewCharacterInput{
		ID:         s.uuid.NewUUID(),
		UserID:     input.UserID,
		Name:       input.Name,
		Class:      input.Class,
		Race:       input.Race,
		Background: strings.TrimSpace(input.Background),
		BaseScores: input.AbilityScores,
		Skills:     input.Skills,
		Spells:     input.Spells,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	character.CreatedAt = now
	character.UpdatedAt = now

	if err := s.repo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{Character: character}); err != nil {
		return nil, apperr.Internal("failed to save character", err)
	}

	log.Printf("Created %s %s %q (%s) for user %s", character.Race, character.Class, character.Name, character.ID, input.UserID)

	return &CreateCharacterOutput{Character: character}, nil
}

func (s *service) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	character, err := s.owned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: character}, nil
}

func (s *service) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	characters, err := s.repo.GetCharactersForUser(ctx, &characterRepo.GetCharactersForUserInput{UserID: input.UserID})
	if err != nil {
		return nil, apperr.Internal("failed to list characters", err)
	}

	return &ListCharactersOutput{Characters: characters}, nil
}

func (s *service) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var name string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, rules.ErrInvalidName
		}
	}
	if err := validateSkills(input.Skills); err != nil {
		return nil, err
	}

	character, err := s.mutate(ctx, input.UserID, input.CharacterID, func(c *models.Character) error {
		if input.Name != nil {
			c.Name = name
		}
		if input.Background != nil {
			c.Background = strings.TrimSpace(*input.Background)
		}
		if input.Skills != nil {
			c.Skills = input.Skills
		}
		if input.Spells != nil {
			c.Spells = input.Spells
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateCharacterOutput{Character: character}, nil
}

func (s *service) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) error {
	if input == nil {
		return ErrNilInput
	}

	unlock := s.locks.Lock(input.CharacterID)
	defer unlock()

	if _, err := s.owned(ctx, input.UserID, input.CharacterID); err != nil {
		return err
	}

	if err := s.repo.DeleteCharacter(ctx, &characterRepo.DeleteCharacterInput{CharacterID: input.CharacterID}); err != nil {
		if errors.Is(err, characterRepo.ErrCharacterNotFound) {
			return ErrCharacterNotFound
		}
		return apperr.Internal("failed to delete character", err)
	}

	return nil
}

func (s *service) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var result *rules.LevelUpResult
	character, err := s.mutate(ctx, input.UserID, input.CharacterID, func(c *models.Character) error {
		var err error
		result, err = rules.LevelUp(c)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &LevelUpOutput{Character: character, Result: result}, nil
}

func (s *service) AwardExperience(ctx context.Context, input *AwardExperienceInput) (*AwardExperienceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	character, err := s.mutate(ctx, input.UserID, input.CharacterID, func(c *models.Character) error {
		_, err := rules.AwardExperience(c, input.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &AwardExperienceOutput{
		Character:  character,
		CanLevelUp: rules.CanLevelUp(character) == nil,
	}, nil
}

func (s *service) Rest(ctx context.Context, input *RestInput) (*RestOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var result *rules.RestResult
	character, err := s.mutate(ctx, input.UserID, input.CharacterID, func(c *models.Character) error {
		var err error
		result, err = rules.Rest(c, input.RestType)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &RestOutput{Character: character, Result: result}, nil
}

func (s *service) Heal(ctx context.Context, input *HealInput) (*HealOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var result *rules.HealResult
	character, err := s.mutate(ctx, input.UserID, input.CharacterID, func(c *models.Character) error {
		var err error
		result, err = rules.Heal(c, input.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &HealOutput{Character: character, Result: result}, nil
}

func (s *service) TakeDamage(ctx context.Context, input *TakeDamageInput) (*TakeDamageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var result *rules.DamageResult
	character, err := s.mutate(ctx, input.UserID, input.CharacterID, func(c *models.Character) error {
		var err error
		result, err = rules.TakeDamage(c, input.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Unconscious {
		log.Printf("Character %s dropped to 0 HP", character.ID)
	}

	return &TakeDamageOutput{Character: character, Result: result}, nil
}

func (s *service) GrantTemporaryHP(ctx context.Context, input *GrantTemporaryHPInput) (*GrantTemporaryHPOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	character, err := s.mutate(ctx, input.UserID, input.CharacterID, func(c *models.Character) error {
		_, err := rules.GrantTemporaryHP(c, input.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &GrantTemporaryHPOutput{Character: character}, nil
}

func (s *service) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var item *models.Item
	character, err := s.mutate(ctx, input.UserID, input.CharacterID, func(c *models.Character) error {
		var err error
		item, err = rules.AddItem(c, s.uuid.NewUUID(), &input.Item)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &AddItemOutput{Character: character, Item: item}, nil
}

func (s *service) UpdateItem(ctx context.Context, input *UpdateItemInput) (*UpdateItemOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var item *models.Item
	character, err := s.mutate(ctx, input.UserID, input.CharacterID, func(c *models.Character) error {
		var err error
		item, err = rules.UpdateItem(c, input.ItemID, &input.Patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &UpdateItemOutput{Character: character, Item: item}, nil
}

func (s *service) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var item *models.Item
	character, err := s.mutate(ctx, input.UserID, input.CharacterID, func(c *models.Character) error {
		var err error
		item, err = rules.RemoveItem(c, input.ItemID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &RemoveItemOutput{Character: character, Item: item}, nil
}

// owned loads a character and hides other users' characters behind ErrCharacterNotFound
func (s *service) owned(ctx context.Context, userID, characterID string) (*models.Character, error) {
	if characterID == "" {
		return nil, ErrCharacterNotFound
	}

	character, err := s.repo.GetCharacter(ctx, &characterRepo.GetCharacterInput{CharacterID: characterID})
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

// mutate applies fn to a freshly loaded copy under the character's lock and
// saves it only when fn succeeds and the invariants still hold
func (s *service) mutate(ctx context.Context, userID, characterID string, fn func(c *models.Character) error) (*models.Character, error) {
	unlock := s.locks.Lock(characterID)
	defer unlock()

	character, err := s.owned(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}

	if err := fn(character); err != nil {
		return nil, err
	}
	if err := rules.CheckInvariants(character); err != nil {
		log.Printf("Refusing to save character %s: %v (hp %+v, level %d)", character.ID, err, character.HitPoints, character.Level)
		return nil, err
	}

	character.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{Character: character}); err != nil {
		return nil, apperr.Internal("failed to save character", err)
	}

	return character, nil
}

func validateSkills(skills map[string]int) error {
	for name := range skills {
		if strings.TrimSpace(name) == "" {
			return ErrInvalidSkill
		}
	}
	return nil
}

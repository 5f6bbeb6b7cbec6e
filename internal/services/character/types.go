package character

import (
	"github.com/KirkDiggler/tavern/internal/common/clock"
	"github.com/KirkDiggler/tavern/internal/common/uuid"
	"github.com/KirkDiggler/tavern/internal/models"
	characterRepo "github.com/KirkDiggler/tavern/internal/repositories/character"
	"github.com/KirkDiggler/tavern/internal/rules"
)

// Config holds the dependencies for the character service
type Config struct {
	CharacterRepo characterRepo.Repository
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateCharacterInput contains parameters for a new level 1 character
type CreateCharacterInput struct {
	UserID     string
	Name       string
	Class      models.CharacterClass
	Race       models.CharacterRace
	Background string

	// AbilityScores are the base scores before racial bonuses. The standard array is used when nil.
	AbilityScores *models.AbilityScores

	Skills map[string]int
	Spells []string
}

type CreateCharacterOutput struct {
	Character *models.Character
}

type GetCharacterInput struct {
	UserID      string
	CharacterID string
}

type GetCharacterOutput struct {
	Character *models.Character
}

type ListCharactersInput struct {
	UserID string
}

type ListCharactersOutput struct {
	Characters []*models.Character
}

// UpdateCharacterInput carries descriptive edits. Nil fields are left alone.
type UpdateCharacterInput struct {
	UserID      string
	CharacterID string
	Name        *string
	Background  *string
	Skills      map[string]int
	Spells      []string
}

type UpdateCharacterOutput struct {
	Character *models.Character
}

type DeleteCharacterInput struct {
	UserID      string
	CharacterID string
}

type LevelUpInput struct {
	UserID      string
	CharacterID string
}

type LevelUpOutput struct {
	Character *models.Character
	Result    *rules.LevelUpResult
}

type AwardExperienceInput struct {
	UserID      string
	CharacterID string
	Amount      int
}

type AwardExperienceOutput struct {
	Character *models.Character

	// CanLevelUp reports whether the new total reaches the next threshold
	CanLevelUp bool
}

type RestInput struct {
	UserID      string
	CharacterID string
	RestType    rules.RestType
}

type RestOutput struct {
	Character *models.Character
	Result    *rules.RestResult
}

type HealInput struct {
	UserID      string
	CharacterID string
	Amount      int
}

type HealOutput struct {
	Character *models.Character
	Result    *rules.HealResult
}

type TakeDamageInput struct {
	UserID      string
	CharacterID string
	Amount      int
}

type TakeDamageOutput struct {
	Character *models.Character
	Result    *rules.DamageResult
}

type GrantTemporaryHPInput struct {
	UserID      string
	CharacterID string
	Amount      int
}

type GrantTemporaryHPOutput struct {
	Character *models.Character
}

type AddItemInput struct {
	UserID      string
	CharacterID string
	Item        rules.ItemInput
}

type AddItemOutput struct {
	Character *models.Character
	Item      *models.Item
}

type UpdateItemInput struct {
	UserID      string
	CharacterID string
	ItemID      string
	Patch       rules.ItemPatch
}

type UpdateItemOutput struct {
	Character *models.Character
	Item      *models.Item
}

type RemoveItemInput struct {
	UserID      string
	CharacterID string
	ItemID      string
}

type RemoveItemOutput struct {
	Character *models.Character
	Item      *models.Item
}

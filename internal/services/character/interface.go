package character

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tavern/internal/services/character Service

import "context"

// Service defines character operations. Every operation acts on the
// caller's own characters; anyone else's look like they do not exist.
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// UpdateCharacter edits descriptive fields. Stats change only through the rules operations.
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) error

	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)
	AwardExperience(ctx context.Context, input *AwardExperienceInput) (*AwardExperienceOutput, error)
	Rest(ctx context.Context, input *RestInput) (*RestOutput, error)
	Heal(ctx context.Context, input *HealInput) (*HealOutput, error)
	TakeDamage(ctx context.Context, input *TakeDamageInput) (*TakeDamageOutput, error)
	GrantTemporaryHP(ctx context.Context, input *GrantTemporaryHPInput) (*GrantTemporaryHPOutput, error)

	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	UpdateItem(ctx context.Context, input *UpdateItemInput) (*UpdateItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
}

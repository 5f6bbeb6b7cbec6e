package character

import "github.com/KirkDiggler/tavern/internal/models"

type SaveCharacterInput struct {
	Character *models.Character
}

type GetCharacterInput struct {
	CharacterID string
}

type GetCharactersForUserInput struct {
	UserID string
}

type DeleteCharacterInput struct {
	CharacterID string
}

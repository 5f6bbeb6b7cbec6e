package models

import (
	"time"
)

// DiceRoll is an append-only record of a roll made inside a session
type DiceRoll struct {
	// ID is the unique identifier for the roll
	ID string `json:"id"`

	// GameID is the session the roll belongs to
	GameID string `json:"game_id"`

	// UserID is who rolled
	UserID string `json:"user_id"`

	// CharacterID is the character the roll was made for, if any
	CharacterID string `json:"character_id,omitempty"`

	// DiceType is the die label, e.g. "d20"
	DiceType string `json:"dice_type"`

	Count    int   `json:"count"`
	Modifier int   `json:"modifier"`
	Results  []int `json:"results"`
	Total    int   `json:"total"`

	// RollType is a free-form tag such as "attack" or "saving_throw"
	RollType string `json:"roll_type,omitempty"`

	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/tavern/internal/dice"
	"github.com/KirkDiggler/tavern/internal/models"
)

var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilRoller = errors.New("dice roller cannot be nil")
	ErrNilInput  = errors.New("input cannot be nil")
)

// service implements the Service interface
type service struct {
	roller dice.Roller
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	return &service{
		roller: cfg.Roller,
	}, nil
}

// pick chooses one of the variants and fills in args
func (s *service) pick(variants []string, args ...any) string {
	i := 0
	if len(variants) > 1 {
		i = s.roller.Roll(len(variants)) - 1
	}
	return fmt.Sprintf(variants[i], args...)
}

// GetPlayerJoinedMessage returns the line posted when someone joins
func (s *service) GetPlayerJoinedMessage(ctx context.Context, input *GetPlayerJoinedMessageInput) (*GetPlayerJoinedMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	msg := s.pick([]string{
		"%s pulls up a chair at the table.",
		"%s has entered the tavern.",
		"A new adventurer arrives: %s.",
		"%s joins the party.",
	}, input.PlayerName)

	if input.MaxPlayers > 0 && input.PlayerCount >= input.MaxPlayers {
		msg += " The table is now full."
	} else if input.MaxPlayers > 0 {
		msg += fmt.Sprintf(" (%d/%d seats taken)", input.PlayerCount, input.MaxPlayers)
	}

	return &GetPlayerJoinedMessageOutput{Message: msg}, nil
}

// GetPlayerLeftMessage returns the line posted when someone leaves
func (s *service) GetPlayerLeftMessage(ctx context.Context, input *GetPlayerLeftMessageInput) (*GetPlayerLeftMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var msg string
	if input.WasDM {
		msg = "The Dungeon Master has stepped away from the table."
	} else {
		msg = s.pick([]string{
			"%s has left the party.",
			"%s wanders off into the night.",
			"%s packs up and heads home.",
		}, input.PlayerName)
	}

	if input.AutoPaused {
		msg += " The table is empty, so the game has been paused."
	}

	return &GetPlayerLeftMessageOutput{Message: msg}, nil
}

// GetGameStatusMessage returns the line posted on a lifecycle transition
func (s *service) GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := input.SessionName
	if name == "" {
		name = "The session"
	}

	var msg string
	switch input.To {
	case models.GameStatusActive:
		if input.From == models.GameStatusPaused {
			msg = fmt.Sprintf("%s resumes. Back to the adventure!", name)
		} else {
			msg = fmt.Sprintf("%s has begun. Roll for initiative!", name)
		}
	case models.GameStatusPaused:
		msg = fmt.Sprintf("%s is paused.", name)
	case models.GameStatusCompleted:
		msg = fmt.Sprintf("%s has ended. Thanks for playing!", name)
	case models.GameStatusCancelled:
		msg = fmt.Sprintf("%s has been cancelled.", name)
	default:
		msg = fmt.Sprintf("%s is now %s.", name, input.To)
	}

	return &GetGameStatusMessageOutput{Message: msg}, nil
}

// GetRollResultMessage describes a roll
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out := &GetRollResultMessageOutput{}
	if input.Sides == 20 && len(input.Rolls) == 1 {
		out.IsCriticalHit = input.Rolls[0] == 20
		out.IsCriticalFail = input.Rolls[0] == 1
	}

	parts := make([]string, len(input.Rolls))
	for i, r := range input.Rolls {
		parts[i] = fmt.Sprint(r)
	}

	what := input.Description
	if input.RollType != "" {
		what = fmt.Sprintf("%s (%s)", input.Description, strings.ReplaceAll(input.RollType, "_", " "))
	}
	out.Message = fmt.Sprintf("%s rolled %s: [%s] = %d", input.PlayerName, what, strings.Join(parts, ", "), input.Total)

	switch {
	case out.IsCriticalHit:
		out.Message += " " + s.pick([]string{"Natural 20!", "Critical hit!", "The dice gods smile!"})
	case out.IsCriticalFail:
		out.Message += " " + s.pick([]string{"Natural 1...", "Critical fail!", "Ouch."})
	}

	return out, nil
}

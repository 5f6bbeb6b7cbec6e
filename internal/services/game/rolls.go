package game

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	"github.com/KirkDiggler/tavern/internal/dice"
	"github.com/KirkDiggler/tavern/internal/hub"
	"github.com/KirkDiggler/tavern/internal/models"
	rollRepo "github.com/KirkDiggler/tavern/internal/repositories/dice_roll"
	"github.com/KirkDiggler/tavern/internal/services/messaging"
)

// RollDice rolls the requested dice. Inside a session the caller must be a
// member, and the roll is recorded and broadcast to everyone including the
// caller. A standalone roll only returns the result.
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	rollInput, err := parseRoll(input)
	if err != nil {
		return nil, err
	}

	if input.SessionID != "" {
		if _, _, err := s.member(ctx, input.SessionID, input.UserID); err != nil {
			return nil, err
		}
	}

	name := "You"
	if input.CharacterID != "" {
		character, err := s.ownedCharacter(ctx, input.CharacterID, input.UserID)
		if err != nil {
			return nil, err
		}
		name = character.Name
	}

	result, err := dice.Roll(s.diceRoller, rollInput)
	if err != nil {
		return nil, err
	}

	roll := &models.DiceRoll{
		UserID:      input.UserID,
		CharacterID: input.CharacterID,
		DiceType:    fmt.Sprintf("d%d", result.Sides),
		Count:       len(result.Rolls),
		Modifier:    result.Modifier,
		Results:     result.Rolls,
		Total:       result.Total,
		RollType:    input.RollType,
		Description: result.Description,
		CreatedAt:   s.clock.Now(),
	}

	output := &RollDiceOutput{Roll: roll}
	if msg, err := s.messaging.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName:  name,
		Description: result.Description,
		Rolls:       result.Rolls,
		Sides:       result.Sides,
		Total:       result.Total,
		RollType:    input.RollType,
	}); err != nil {
		log.Printf("Failed to build roll message for user %s: %v", input.UserID, err)
	} else {
		output.Message = msg.Message
		output.IsCriticalHit = msg.IsCriticalHit
		output.IsCriticalFail = msg.IsCriticalFail
	}

	if input.SessionID == "" {
		return output, nil
	}

	roll.ID = s.uuid.NewUUID()
	roll.GameID = input.SessionID
	if err := s.rollRepo.AddRoll(ctx, &rollRepo.AddRollInput{Roll: roll}); err != nil {
		return nil, apperr.Internal("failed to record roll", err)
	}

	s.broadcaster.Broadcast(&hub.BroadcastInput{
		SessionID: input.SessionID,
		Type:      hub.EventDiceRollResult,
		UserID:    input.UserID,
		Payload:   roll,
	})

	return output, nil
}

// parseRoll prefers notation, then falls back to dice type, count and modifier
func parseRoll(input *RollDiceInput) (*dice.RollInput, error) {
	if input.Notation != "" {
		return dice.ParseNotation(input.Notation)
	}

	sides, err := dice.ParseDiceType(input.DiceType)
	if err != nil {
		return nil, err
	}

	count := input.Count
	if count == 0 {
		count = 1
	}

	rollInput := &dice.RollInput{Sides: sides, Count: count, Modifier: input.Modifier}
	if err := rollInput.Validate(); err != nil {
		return nil, err
	}
	return rollInput, nil
}

// ListRolls returns a session's recent rolls, newest first
func (s *service) ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if _, _, err := s.member(ctx, input.SessionID, input.UserID); err != nil {
		return nil, err
	}

	page := input.Pagination.normalize()
	listed, err := s.rollRepo.GetRollsForGame(ctx, &rollRepo.GetRollsForGameInput{
		GameID: input.SessionID,
		UserID: input.RollerID,
		Offset: page.offset(),
		Limit:  page.Limit,
	})
	if err != nil {
		return nil, apperr.Internal("failed to list rolls", err)
	}

	return &ListRollsOutput{
		Rolls: listed.Rolls,
		Total: listed.Total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
)

const (
	MinSides    = 2
	MinCount    = 1
	MaxCount    = 20
	MaxModifier = 100
)

var (
	ErrNilRoller       = apperr.New(apperr.KindInternal, "dice roller cannot be nil")
	ErrInvalidSides    = apperr.New(apperr.KindInvalidArgument, fmt.Sprintf("sides must be at least %d", MinSides))
	ErrInvalidCount    = apperr.New(apperr.KindInvalidArgument, fmt.Sprintf("count must be between %d and %d", MinCount, MaxCount))
	ErrInvalidModifier = apperr.New(apperr.KindInvalidArgument, fmt.Sprintf("modifier must be between %d and %d", -MaxModifier, MaxModifier))
	ErrInvalidNotation = apperr.New(apperr.KindInvalidArgument, "invalid dice notation")
)

type RollInput struct {
	Sides    int
	Count    int
	Modifier int
}

type RollOutput struct {
	Sides       int
	Rolls       []int
	Modifier    int
	Total       int
	Description string
}

// Validate checks the input bounds without drawing
func (in *RollInput) Validate() error {
	if in.Sides < MinSides {
		return ErrInvalidSides
	}
	if in.Count < MinCount || in.Count > MaxCount {
		return ErrInvalidCount
	}
	if in.Modifier < -MaxModifier || in.Modifier > MaxModifier {
		return ErrInvalidModifier
	}
	return nil
}

// Roll draws Count dice from roller and totals them with the modifier.
// Nothing is drawn when the input is out of bounds.
func Roll(roller Roller, input *RollInput) (*RollOutput, error) {
	if roller == nil {
		return nil, ErrNilRoller
	}
	if input == nil {
		return nil, ErrInvalidCount
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rolls := make([]int, input.Count)
	total := input.Modifier
	for i := range rolls {
		rolls[i] = roller.Roll(input.Sides)
		total += rolls[i]
	}

	return &RollOutput{
		Sides:       input.Sides,
		Rolls:       rolls,
		Modifier:    input.Modifier,
		Total:       total,
		Description: Notation(input.Count, input.Sides, input.Modifier),
	}, nil
}

// Notation renders count, sides and modifier as "4d6+2", "1d20-1" or "2d8"
func Notation(count, sides, modifier int) string {
	switch {
	case modifier > 0:
		return fmt.Sprintf("%dd%d+%d", count, sides, modifier)
	case modifier < 0:
		return fmt.Sprintf("%dd%d%d", count, sides, modifier)
	default:
		return fmt.Sprintf("%dd%d", count, sides)
	}
}

var notationPattern = regexp.MustCompile(`^(\d*)d(\d+)(?:([+-])(\d+))?$`)

// ParseNotation parses "d20", "2d6+3" or "1d8-1". The count defaults to one.
func ParseNotation(s string) (*RollInput, error) {
	m := notationPattern.FindStringSubmatch(strings.ToLower(strings.ReplaceAll(s, " ", "")))
	if m == nil {
		return nil, ErrInvalidNotation
	}

	input := &RollInput{Count: 1}
	if m[1] != "" {
		input.Count, _ = strconv.Atoi(m[1])
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, ErrInvalidNotation
	}
	input.Sides = sides
	if m[4] != "" {
		input.Modifier, _ = strconv.Atoi(m[4])
		if m[3] == "-" {
			input.Modifier = -input.Modifier
		}
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	return input, nil
}

// ParseDiceType turns a die label such as "d20" into its side count
func ParseDiceType(diceType string) (int, error) {
	t := strings.ToLower(strings.TrimSpace(diceType))
	if !strings.HasPrefix(t, "d") {
		return 0, ErrInvalidNotation
	}
	sides, err := strconv.Atoi(t[1:])
	if err != nil {
		return 0, ErrInvalidNotation
	}
	if sides < MinSides {
		return 0, ErrInvalidSides
	}
	return sides, nil
}

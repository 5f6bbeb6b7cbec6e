package rules

import (
	"strings"

	"github.com/KirkDiggler/tavern/internal/models"
)

// minBaseScore is the only bound on supplied scores. There is no ceiling at creation.
const minBaseScore = 1

type NewCharacterInput struct {
	ID         string
	UserID     string
	Name       string
	Class      models.CharacterClass
	Race       models.CharacterRace
	Background string

	// BaseScores defaults to DefaultAbilityScores when nil. Racial bonuses are added on top.
	BaseScores *models.AbilityScores

	Skills map[string]int
	Spells []string
}

// NewCharacter builds a level 1 character. Nothing is returned on error.
func NewCharacter(input *NewCharacterInput) (*models.Character, error) {
	if input == nil {
		return nil, ErrNilCharacter
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	hd, ok := HitDie(input.Class)
	if !ok {
		return nil, ErrInvalidClass
	}
	bonus, ok := RacialBonus(input.Race)
	if !ok {
		return nil, ErrInvalidRace
	}

	base := DefaultAbilityScores
	if input.BaseScores != nil {
		base = *input.BaseScores
		if !validBaseScores(base) {
			return nil, ErrInvalidAbilityScore
		}
	}
	scores := base.Add(bonus)

	maxHP := hd + AbilityModifier(scores.Constitution)
	if maxHP < 1 {
		maxHP = 1
	}

	return &models.Character{
		ID:         input.ID,
		UserID:     input.UserID,
		Name:       name,
		Class:      input.Class,
		Race:       input.Race,
		Background: input.Background,
		Level:      1,
		Experience: 0,
		HitPoints: models.HitPoints{
			Current: maxHP,
			Maximum: maxHP,
		},
		ArmorClass:       10 + AbilityModifier(scores.Dexterity),
		ProficiencyBonus: ProficiencyBonus(1),
		Speed:            Speed(input.Race),
		AbilityScores:    scores,
		Inventory:        []*models.Item{},
		Skills:           input.Skills,
		Spells:           input.Spells,
	}, nil
}

func validBaseScores(s models.AbilityScores) bool {
	for _, v := range []int{s.Strength, s.Dexterity, s.Constitution, s.Intelligence, s.Wisdom, s.Charisma} {
		if v < minBaseScore {
			return false
		}
	}
	return true
}

// CheckInvariants verifies the HP, level and proficiency invariants hold
func CheckInvariants(c *models.Character) error {
	if c == nil {
		return ErrNilCharacter
	}
	hp := c.HitPoints
	switch {
	case hp.Maximum < 1,
		hp.Current < 0,
		hp.Current > hp.Maximum,
		hp.Temporary < 0,
		c.Level < 1 || c.Level > models.MaxLevel,
		c.Experience < 0,
		c.ProficiencyBonus != ProficiencyBonus(c.Level):
		return ErrInvariantViolated
	}
	return nil
}

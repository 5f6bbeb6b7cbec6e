package rules

import "github.com/KirkDiggler/tavern/internal/models"

type RestType string

const (
	RestTypeShort RestType = "short"
	RestTypeLong  RestType = "long"
)

type RestResult struct {
	RestType   RestType `json:"rest_type"`
	HPRestored int      `json:"hp_restored"`
	CurrentHP  int      `json:"current_hp"`
}

type HealResult struct {
	ActualHealing int  `json:"actual_healing"`
	CurrentHP     int  `json:"current_hp"`
	WasAtMax      bool `json:"was_at_max"`
}

type DamageResult struct {
	TemporaryAbsorbed int  `json:"temporary_absorbed"`
	DamageTaken       int  `json:"damage_taken"`
	CurrentHP         int  `json:"current_hp"`
	TemporaryHP       int  `json:"temporary_hp"`
	Unconscious       bool `json:"unconscious"`
}

// Rest restores HP. A short rest heals hitDie/2+1+conMod (never negative),
// a long rest restores to maximum. Temporary HP is left alone.
func Rest(c *models.Character, restType RestType) (*RestResult, error) {
	if c == nil {
		return nil, ErrNilCharacter
	}

	before := c.HitPoints.Current
	switch restType {
	case RestTypeShort:
		hd, ok := HitDie(c.Class)
		if !ok {
			return nil, ErrInvalidClass
		}
		amount := hd/2 + 1 + AbilityModifier(c.AbilityScores.Constitution)
		if amount < 0 {
			amount = 0
		}
		c.HitPoints.Current = min(c.HitPoints.Maximum, c.HitPoints.Current+amount)
	case RestTypeLong:
		c.HitPoints.Current = c.HitPoints.Maximum
	default:
		return nil, ErrInvalidRestType
	}

	return &RestResult{
		RestType:   restType,
		HPRestored: c.HitPoints.Current - before,
		CurrentHP:  c.HitPoints.Current,
	}, nil
}

// Heal raises current HP by amount, capped at maximum
func Heal(c *models.Character, amount int) (*HealResult, error) {
	if c == nil {
		return nil, ErrNilCharacter
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	before := c.HitPoints.Current
	c.HitPoints.Current = min(c.HitPoints.Maximum, before+amount)

	return &HealResult{
		ActualHealing: c.HitPoints.Current - before,
		CurrentHP:     c.HitPoints.Current,
		WasAtMax:      before == c.HitPoints.Maximum,
	}, nil
}

// TakeDamage spends temporary HP first, then current HP, never below zero
func TakeDamage(c *models.Character, amount int) (*DamageResult, error) {
	if c == nil {
		return nil, ErrNilCharacter
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	absorbed := min(c.HitPoints.Temporary, amount)
	c.HitPoints.Temporary -= absorbed
	remaining := amount - absorbed

	taken := min(c.HitPoints.Current, remaining)
	c.HitPoints.Current -= taken

	return &DamageResult{
		TemporaryAbsorbed: absorbed,
		DamageTaken:       taken,
		CurrentHP:         c.HitPoints.Current,
		TemporaryHP:       c.HitPoints.Temporary,
		Unconscious:       c.HitPoints.Current == 0,
	}, nil
}

// GrantTemporaryHP sets temporary HP to amount if that is higher.
// Temporary HP does not stack.
func GrantTemporaryHP(c *models.Character, amount int) (int, error) {
	if c == nil {
		return 0, ErrNilCharacter
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	c.HitPoints.Temporary = max(c.HitPoints.Temporary, amount)
	return c.HitPoints.Temporary, nil
}

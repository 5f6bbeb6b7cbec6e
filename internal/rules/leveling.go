package rules

import "github.com/KirkDiggler/tavern/internal/models"

type LevelUpResult struct {
	OldLevel         int `json:"old_level"`
	NewLevel         int `json:"new_level"`
	HPGained         int `json:"hp_gained"`
	MaxHP            int `json:"max_hp"`
	ProficiencyBonus int `json:"proficiency_bonus"`
}

// CanLevelUp reports whether LevelUp would succeed
func CanLevelUp(c *models.Character) error {
	if c == nil {
		return ErrNilCharacter
	}
	if c.Level >= models.MaxLevel {
		return ErrMaxLevelReached
	}
	// experienceTable[level] is the threshold for level+1
	if c.Experience < experienceTable[c.Level] {
		return ErrInsufficientExperience
	}
	return nil
}

// LevelUp advances c by one level. The HP gain is added to both maximum
// and current HP and is never less than 1.
func LevelUp(c *models.Character) (*LevelUpResult, error) {
	if err := CanLevelUp(c); err != nil {
		return nil, err
	}
	hd, ok := HitDie(c.Class)
	if !ok {
		return nil, ErrInvalidClass
	}

	gain := hd/2 + 1 + AbilityModifier(c.AbilityScores.Constitution)
	if gain < 1 {
		gain = 1
	}

	oldLevel := c.Level
	c.Level++
	c.HitPoints.Maximum += gain
	c.HitPoints.Current += gain
	c.ProficiencyBonus = ProficiencyBonus(c.Level)

	return &LevelUpResult{
		OldLevel:         oldLevel,
		NewLevel:         c.Level,
		HPGained:         gain,
		MaxHP:            c.HitPoints.Maximum,
		ProficiencyBonus: c.ProficiencyBonus,
	}, nil
}

// AwardExperience adds amount to c's experience. Levels are not applied automatically.
func AwardExperience(c *models.Character, amount int) (int, error) {
	if c == nil {
		return 0, ErrNilCharacter
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	c.Experience += amount
	return c.Experience, nil
}

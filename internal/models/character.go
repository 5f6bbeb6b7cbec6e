package models

import (
	"time"
)

// CharacterClass is one of the twelve playable classes
type CharacterClass string

const (
	ClassBarbarian CharacterClass = "barbarian"
	ClassBard      CharacterClass = "bard"
	ClassCleric    CharacterClass = "cleric"
	ClassDruid     CharacterClass = "druid"
	ClassFighter   CharacterClass = "fighter"
	ClassMonk      CharacterClass = "monk"
	ClassPaladin   CharacterClass = "paladin"
	ClassRanger    CharacterClass = "ranger"
	ClassRogue     CharacterClass = "rogue"
	ClassSorcerer  CharacterClass = "sorcerer"
	ClassWarlock   CharacterClass = "warlock"
	ClassWizard    CharacterClass = "wizard"
)

// CharacterRace is one of the nine playable races
type CharacterRace string

const (
	RaceHuman      CharacterRace = "human"
	RaceElf        CharacterRace = "elf"
	RaceDwarf      CharacterRace = "dwarf"
	RaceHalfling   CharacterRace = "halfling"
	RaceDragonborn CharacterRace = "dragonborn"
	RaceGnome      CharacterRace = "gnome"
	RaceHalfElf    CharacterRace = "half-elf"
	RaceHalfOrc    CharacterRace = "half-orc"
	RaceTiefling   CharacterRace = "tiefling"
)

const MaxLevel = 20

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Add returns the component-wise sum of a and b
func (a AbilityScores) Add(b AbilityScores) AbilityScores {
	return AbilityScores{
		Strength:     a.Strength + b.Strength,
		Dexterity:    a.Dexterity + b.Dexterity,
		Constitution: a.Constitution + b.Constitution,
		Intelligence: a.Intelligence + b.Intelligence,
		Wisdom:       a.Wisdom + b.Wisdom,
		Charisma:     a.Charisma + b.Charisma,
	}
}

// HitPoints tracks current, maximum and temporary HP.
// 0 <= Current <= Maximum and Temporary >= 0 always hold.
type HitPoints struct {
	Current   int `json:"current"`
	Maximum   int `json:"maximum"`
	Temporary int `json:"temporary"`
}

// Item is a single inventory entry
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type,omitempty"`
	Quantity    int     `json:"quantity"`
	Weight      float64 `json:"weight"`
	Value       int     `json:"value"`
	Rarity      string  `json:"rarity"`
	Equipped    bool    `json:"equipped"`
}

// Character is a player character owned by a single user
type Character struct {
	// ID is the unique identifier for the character
	ID string `json:"id"`

	// UserID is the owner
	UserID string `json:"user_id"`

	Name  string         `json:"name"`
	Class CharacterClass `json:"class"`
	Race  CharacterRace  `json:"race"`

	// Level is 1 to 20 and never decreases
	Level      int `json:"level"`
	Experience int `json:"experience"`

	HitPoints        HitPoints     `json:"hit_points"`
	ArmorClass       int           `json:"armor_class"`
	ProficiencyBonus int           `json:"proficiency_bonus"`
	Speed            int           `json:"speed"`
	AbilityScores    AbilityScores `json:"ability_scores"`

	Inventory []*Item        `json:"inventory"`
	Skills    map[string]int `json:"skills,omitempty"`
	Spells    []string       `json:"spells,omitempty"`

	Background string `json:"background,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindItem returns the inventory index of itemID, or -1
func (c *Character) FindItem(itemID string) int {
	for i, item := range c.Inventory {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

package rules

import "github.com/KirkDiggler/tavern/internal/models"

var hitDice = map[models.CharacterClass]int{
	models.ClassBarbarian: 12,
	models.ClassFighter:   10,
	models.ClassPaladin:   10,
	models.ClassRanger:    10,
	models.ClassBard:      8,
	models.ClassCleric:    8,
	models.ClassDruid:     8,
	models.ClassMonk:      8,
	models.ClassRogue:     8,
	models.ClassWarlock:   8,
	models.ClassSorcerer:  6,
	models.ClassWizard:    6,
}

var racialBonuses = map[models.CharacterRace]models.AbilityScores{
	models.RaceHuman:      {Strength: 1, Dexterity: 1, Constitution: 1, Intelligence: 1, Wisdom: 1, Charisma: 1},
	models.RaceElf:        {Dexterity: 2, Intelligence: 1},
	models.RaceDwarf:      {Constitution: 2, Wisdom: 1},
	models.RaceHalfling:   {Dexterity: 2, Charisma: 1},
	models.RaceDragonborn: {Strength: 2, Charisma: 1},
	models.RaceGnome:      {Intelligence: 2, Constitution: 1},
	// half-elves pick two +1s; dex and con are fixed here
	models.RaceHalfElf:  {Charisma: 2, Dexterity: 1, Constitution: 1},
	models.RaceHalfOrc:  {Strength: 2, Constitution: 1},
	models.RaceTiefling: {Charisma: 2, Intelligence: 1},
}

var raceSpeeds = map[models.CharacterRace]int{
	models.RaceDwarf:    25,
	models.RaceHalfling: 25,
	models.RaceGnome:    25,
}

const defaultSpeed = 30

// DefaultAbilityScores is the standard array applied when no base scores are given
var DefaultAbilityScores = models.AbilityScores{
	Strength:     15,
	Dexterity:    14,
	Constitution: 13,
	Intelligence: 12,
	Wisdom:       10,
	Charisma:     8,
}

// experienceTable[i] is the total experience needed to reach level i+1
var experienceTable = [models.MaxLevel]int{
	0, 300, 900, 2700, 6500, 14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000, 195000, 225000, 265000, 305000, 355000,
}

// HitDie returns the hit die size for class
func HitDie(class models.CharacterClass) (int, bool) {
	hd, ok := hitDice[class]
	return hd, ok
}

// RacialBonus returns the ability bonus granted by race
func RacialBonus(race models.CharacterRace) (models.AbilityScores, bool) {
	b, ok := racialBonuses[race]
	return b, ok
}

// Speed returns the walking speed for race
func Speed(race models.CharacterRace) int {
	if s, ok := raceSpeeds[race]; ok {
		return s
	}
	return defaultSpeed
}

// ExperienceForLevel returns the experience needed to reach level.
// Levels outside 1..20 return false.
func ExperienceForLevel(level int) (int, bool) {
	if level < 1 || level > models.MaxLevel {
		return 0, false
	}
	return experienceTable[level-1], true
}

// ValidClass reports whether class is known
func ValidClass(class models.CharacterClass) bool {
	_, ok := hitDice[class]
	return ok
}

// ValidRace reports whether race is known
func ValidRace(race models.CharacterRace) bool {
	_, ok := racialBonuses[race]
	return ok
}

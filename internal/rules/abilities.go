package rules

// AbilityModifier is floor((score-10)/2), rounding toward negative infinity
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 && d%2 != 0 {
		return d/2 - 1
	}
	return d / 2
}

// ProficiencyBonus is ceil(level/4)+1
func ProficiencyBonus(level int) int {
	if level < 1 {
		level = 1
	}
	return (level+3)/4 + 1
}

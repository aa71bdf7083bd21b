package dnd

import "fmt"

// RollBreakdown is the full accounting of one ability check: the die the
// DM entered plus every bonus that went into the total.
type RollBreakdown struct {
	DieResult        int
	Stat             Stat
	StatModifier     int
	ProficiencyBonus int
	ExpertiseBonus   int
	Total            int
	IsSkill          bool
	HasProficiency   bool
}

// CalculateRoll resolves check as either a skill or a raw stat and totals
// the manually entered die result with the applicable bonuses.
//
// Proficiency only applies to skills the character is trained in; raw
// stat checks never get it. Expertise stacks on top of proficiency and is
// limited to Rogues.
func (c *Character) CalculateRoll(dieResult int, check string, useExpertise bool) (RollBreakdown, error) {
	var (
		baseStat Stat
		isSkill  bool
		skill    Skill
	)

	if s, err := ParseSkill(check); err == nil {
		skill = s
		isSkill = true
		baseStat, _ = SkillStat(s)
	} else if stat, err := ParseStat(check); err == nil {
		baseStat = stat
	} else {
		return RollBreakdown{}, fmt.Errorf("%w: %q", ErrInvalidCheckName, check)
	}

	mod, err := c.Modifier(baseStat)
	if err != nil {
		return RollBreakdown{}, err
	}

	proficient := isSkill && c.HasProficiency(skill)

	profBonus := 0
	if proficient {
		profBonus = ProficiencyBonus
	}

	expertiseBonus := 0
	if useExpertise && c.class == ClassRogue && proficient {
		expertiseBonus = ExpertiseBonus
	}

	return RollBreakdown{
		DieResult:        dieResult,
		Stat:             baseStat,
		StatModifier:     mod,
		ProficiencyBonus: profBonus,
		ExpertiseBonus:   expertiseBonus,
		Total:            dieResult + mod + profBonus + expertiseBonus,
		IsSkill:          isSkill,
		HasProficiency:   proficient,
	}, nil
}

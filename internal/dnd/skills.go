package dnd

import (
	"fmt"
	"strings"
)

// Skill is a named capability governed by exactly one stat.
type Skill string

const (
	SkillAthletics      Skill = "Athletics"
	SkillAcrobatics     Skill = "Acrobatics"
	SkillSleightOfHand  Skill = "Sleight of Hand"
	SkillStealth        Skill = "Stealth"
	SkillArcana         Skill = "Arcana"
	SkillHistory        Skill = "History"
	SkillInvestigation  Skill = "Investigation"
	SkillNature         Skill = "Nature"
	SkillReligion       Skill = "Religion"
	SkillAnimalHandling Skill = "Animal Handling"
	SkillInsight        Skill = "Insight"
	SkillMedicine       Skill = "Medicine"
	SkillPerception     Skill = "Perception"
	SkillSurvival       Skill = "Survival"
	SkillDeception      Skill = "Deception"
	SkillIntimidation   Skill = "Intimidation"
	SkillPerformance    Skill = "Performance"
	SkillPersuasion     Skill = "Persuasion"
)

// skillsByStat groups every skill under its governing stat.
// CON has no skills in 5e.
var skillsByStat = map[Stat][]Skill{
	StatSTR: {SkillAthletics},
	StatDEX: {SkillAcrobatics, SkillSleightOfHand, SkillStealth},
	StatCON: {},
	StatINT: {SkillArcana, SkillHistory, SkillInvestigation, SkillNature, SkillReligion},
	StatWIS: {SkillAnimalHandling, SkillInsight, SkillMedicine, SkillPerception, SkillSurvival},
	StatCHA: {SkillDeception, SkillIntimidation, SkillPerformance, SkillPersuasion},
}

// statBySkill is the reverse lookup, built once at init.
var statBySkill = map[Skill]Stat{}

func init() {
	for _, stat := range Stats() {
		for _, skill := range skillsByStat[stat] {
			statBySkill[skill] = stat
		}
	}
}

func (s Skill) IsValid() bool {
	_, ok := statBySkill[s]
	return ok
}

// AllSkills returns every skill in stat order (the order they appear on
// a character sheet grouped by ability).
func AllSkills() []Skill {
	var out []Skill
	for _, stat := range Stats() {
		out = append(out, skillsByStat[stat]...)
	}
	return out
}

// SkillsByStat returns the skills governed by the given stat.
func SkillsByStat(stat Stat) ([]Skill, error) {
	if !stat.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStat, string(stat))
	}
	return append([]Skill(nil), skillsByStat[stat]...), nil
}

// SkillStat returns the stat that governs the given skill.
func SkillStat(skill Skill) (Stat, error) {
	stat, ok := statBySkill[skill]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSkill, string(skill))
	}
	return stat, nil
}

// ParseSkill matches user input to a skill, ignoring case and treating
// hyphens as spaces ("sleight-of-hand" → "Sleight of Hand").
func ParseSkill(input string) (Skill, error) {
	key := normalizeSkillKey(input)
	for skill := range statBySkill {
		if normalizeSkillKey(string(skill)) == key {
			return skill, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSkill, input)
}

func normalizeSkillKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

package dnd

import (
	"fmt"
	"strings"
)

// Stat is one of the six core D&D 5e ability scores.
type Stat string

const (
	StatSTR Stat = "STR"
	StatDEX Stat = "DEX"
	StatCON Stat = "CON"
	StatINT Stat = "INT"
	StatWIS Stat = "WIS"
	StatCHA Stat = "CHA"
)

func (s Stat) IsValid() bool {
	switch s {
	case StatSTR, StatDEX, StatCON, StatINT, StatWIS, StatCHA:
		return true
	default:
		return false
	}
}

// Stats returns the six stats in standard sheet order.
func Stats() []Stat {
	return []Stat{StatSTR, StatDEX, StatCON, StatINT, StatWIS, StatCHA}
}

// ParseStat parses user input to a Stat. Input is case-insensitive.
func ParseStat(input string) (Stat, error) {
	s := Stat(strings.ToUpper(strings.TrimSpace(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStat, input)
	}
	return s, nil
}

const (
	// MinScore and MaxScore bound every stat. 1-20 is the usual point-buy
	// range; 30 leaves room for magical boosts and monsters.
	MinScore = 1
	MaxScore = 30

	// DefaultScore is returned for a stat that was never set.
	DefaultScore = 10

	// ProficiencyBonus is the flat bonus for levels 1-4.
	ProficiencyBonus = 2

	// ExpertiseBonus is the extra bonus a proficient Rogue may add.
	ExpertiseBonus = 2
)

// Class is a D&D 5e character class, stored in title case.
type Class string

const (
	ClassBarbarian Class = "Barbarian"
	ClassBard      Class = "Bard"
	ClassCleric    Class = "Cleric"
	ClassDruid     Class = "Druid"
	ClassFighter   Class = "Fighter"
	ClassMonk      Class = "Monk"
	ClassPaladin   Class = "Paladin"
	ClassRanger    Class = "Ranger"
	ClassRogue     Class = "Rogue"
	ClassSorcerer  Class = "Sorcerer"
	ClassWarlock   Class = "Warlock"
	ClassWizard    Class = "Wizard"
)

// DefaultClass is used when a stored record carries no class.
const DefaultClass = ClassFighter

func (c Class) IsValid() bool {
	switch c {
	case ClassBarbarian, ClassBard, ClassCleric, ClassDruid, ClassFighter,
		ClassMonk, ClassPaladin, ClassRanger, ClassRogue, ClassSorcerer,
		ClassWarlock, ClassWizard:
		return true
	default:
		return false
	}
}

// Classes returns all twelve classes in alphabetical order.
func Classes() []Class {
	return []Class{
		ClassBarbarian, ClassBard, ClassCleric, ClassDruid, ClassFighter,
		ClassMonk, ClassPaladin, ClassRanger, ClassRogue, ClassSorcerer,
		ClassWarlock, ClassWizard,
	}
}

// ParseClass normalizes user input to title case and rejects anything
// outside the twelve-class list.
func ParseClass(input string) (Class, error) {
	t := strings.TrimSpace(input)
	if t == "" {
		return "", fmt.Errorf("%w: empty class name", ErrUnknownClass)
	}
	c := Class(strings.ToUpper(t[:1]) + strings.ToLower(t[1:]))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownClass, input)
	}
	return c, nil
}

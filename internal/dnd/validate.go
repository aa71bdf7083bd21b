package dnd

import "fmt"

// ValidateCharacterData checks candidate input before a Character is
// constructed. Checks run in order and stop at the first failure; nil
// means every check passed.
//
// The rules here must agree exactly with the entity setters: creation
// goes through this function while later edits go through the setters,
// and both paths enforce the same invariants.
func ValidateCharacterData(name string, stats map[Stat]int, class string, proficiencies []Skill) error {
	if _, err := normalizeName(name); err != nil {
		return err
	}

	// An empty class is fine; construction substitutes DefaultClass.
	if class != "" {
		if _, err := ParseClass(class); err != nil {
			return err
		}
	}

	for _, skill := range proficiencies {
		if !skill.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownSkill, string(skill))
		}
	}

	if stats == nil {
		return fmt.Errorf("%w: no stats provided", ErrMissingStat)
	}
	for _, stat := range Stats() {
		if _, ok := stats[stat]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingStat, stat)
		}
	}
	for stat, score := range stats {
		if !stat.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownStat, string(stat))
		}
		if score < MinScore || score > MaxScore {
			return fmt.Errorf("%w: %s=%d (want %d-%d)", ErrScoreOutOfRange, stat, score, MinScore, MaxScore)
		}
	}

	return nil
}

package dnd

import "fmt"

// Record is the flat serialization of one character, the shape stored on
// disk and used for import/export. Modifiers are written for the benefit
// of anyone reading the file by hand; they are derived from stats and
// never read back.
type Record struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CharacterClass string         `json:"character_class"`
	Proficiencies  []string       `json:"proficiencies"`
	ImagePath      string         `json:"image_path,omitempty"`
	Stats          map[string]int `json:"stats"`
	Modifiers      map[string]int `json:"modifiers"`
}

// Record flattens the character for persistence.
func (c *Character) Record() Record {
	stats := make(map[string]int, len(c.stats))
	for stat, score := range c.stats {
		stats[string(stat)] = score
	}
	mods := make(map[string]int, len(Stats()))
	for stat, mod := range c.AllModifiers() {
		mods[string(stat)] = mod
	}
	profs := make([]string, 0, len(c.proficiencies))
	for _, skill := range c.Proficiencies() {
		profs = append(profs, string(skill))
	}

	return Record{
		ID:             c.id,
		Name:           c.name,
		CharacterClass: string(c.class),
		Proficiencies:  profs,
		ImagePath:      c.portraitPath,
		Stats:          stats,
		Modifiers:      mods,
	}
}

// FromRecord rebuilds a character from its stored form, re-running the
// full construction validation. The stored modifiers field is ignored;
// modifiers are recomputed from stats so a hand-edited file can never
// smuggle in stale values. A record without a class gets DefaultClass.
func FromRecord(rec Record) (*Character, error) {
	var class Class
	if rec.CharacterClass != "" {
		parsed, err := ParseClass(rec.CharacterClass)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", rec.ID, err)
		}
		class = parsed
	}

	stats := make(map[Stat]int, len(rec.Stats))
	for key, score := range rec.Stats {
		stats[Stat(key)] = score
	}
	profs := make([]Skill, 0, len(rec.Proficiencies))
	for _, name := range rec.Proficiencies {
		profs = append(profs, Skill(name))
	}

	c, err := NewCharacter(CharacterInput{
		ID:            rec.ID,
		Name:          rec.Name,
		Class:         class,
		Stats:         stats,
		Proficiencies: profs,
		PortraitPath:  rec.ImagePath,
	})
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", rec.ID, err)
	}
	return c, nil
}

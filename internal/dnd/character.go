package dnd

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxNameLen = 50

// Character holds one validated player character. Fields are unexported
// so every mutation goes through a setter that re-checks the invariant
// it guards; a failed setter leaves the character untouched.
type Character struct {
	id            string
	name          string
	class         Class
	stats         map[Stat]int
	proficiencies map[Skill]bool
	portraitPath  string
}

// CharacterInput carries the raw values for NewCharacter.
type CharacterInput struct {
	// ID is assigned automatically when empty.
	ID            string
	Name          string
	Class         Class
	Stats         map[Stat]int
	Proficiencies []Skill
	PortraitPath  string
}

// NewCharacter builds a validated character. All six stats are required;
// an empty class defaults to Fighter. The first violated invariant aborts
// construction.
func NewCharacter(in CharacterInput) (*Character, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	class := in.Class
	if class == "" {
		class = DefaultClass
	}
	if !class.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, string(class))
	}

	profs := make(map[Skill]bool, len(in.Proficiencies))
	for _, skill := range in.Proficiencies {
		if !skill.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, string(skill))
		}
		profs[skill] = true
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	c := &Character{
		id:            id,
		name:          name,
		class:         class,
		stats:         make(map[Stat]int, len(Stats())),
		proficiencies: profs,
		portraitPath:  in.PortraitPath,
	}

	for _, stat := range Stats() {
		score, ok := in.Stats[stat]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingStat, stat)
		}
		if err := c.SetStat(stat, score); err != nil {
			return nil, err
		}
	}
	for stat := range in.Stats {
		if !stat.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStat, string(stat))
		}
	}

	return c, nil
}

func normalizeName(name string) (string, error) {
	t := strings.TrimSpace(name)
	if t == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(t) > maxNameLen {
		return "", ErrNameTooLong
	}
	return t, nil
}

func (c *Character) ID() string           { return c.id }
func (c *Character) Name() string         { return c.name }
func (c *Character) Class() Class         { return c.class }
func (c *Character) PortraitPath() string { return c.portraitPath }

// SetName replaces the character name after trimming and length checks.
func (c *Character) SetName(name string) error {
	t, err := normalizeName(name)
	if err != nil {
		return err
	}
	c.name = t
	return nil
}

// SetClass replaces the character class.
func (c *Character) SetClass(class Class) error {
	if !class.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownClass, string(class))
	}
	c.class = class
	return nil
}

// SetStat stores a score for one of the six stats. Scores outside
// [MinScore, MaxScore] are rejected and nothing is stored.
func (c *Character) SetStat(stat Stat, score int) error {
	if !stat.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStat, string(stat))
	}
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: %s=%d (want %d-%d)", ErrScoreOutOfRange, stat, score, MinScore, MaxScore)
	}
	c.stats[stat] = score
	return nil
}

// StatScore returns the stored score, or DefaultScore when unset.
func (c *Character) StatScore(stat Stat) (int, error) {
	if !stat.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStat, string(stat))
	}
	score, ok := c.stats[stat]
	if !ok {
		return DefaultScore, nil
	}
	return score, nil
}

// Modifier derives the roll modifier for a stat: floor((score-10)/2).
// Floor division matters for odd scores below 10 (9 → -1, not 0).
func (c *Character) Modifier(stat Stat) (int, error) {
	score, err := c.StatScore(stat)
	if err != nil {
		return 0, err
	}
	return floorDiv(score-10, 2), nil
}

// floorDiv rounds toward negative infinity, unlike Go's / which
// truncates toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// AllStats returns a copy of the stored stats.
func (c *Character) AllStats() map[Stat]int {
	out := make(map[Stat]int, len(c.stats))
	for stat, score := range c.stats {
		out[stat] = score
	}
	return out
}

// AllModifiers returns the derived modifier for every stat.
func (c *Character) AllModifiers() map[Stat]int {
	out := make(map[Stat]int, len(Stats()))
	for _, stat := range Stats() {
		mod, _ := c.Modifier(stat)
		out[stat] = mod
	}
	return out
}

// HasProficiency reports whether the character is trained in the skill.
func (c *Character) HasProficiency(skill Skill) bool {
	return c.proficiencies[skill]
}

// Proficiencies returns the trained skills sorted by name.
func (c *Character) Proficiencies() []Skill {
	out := make([]Skill, 0, len(c.proficiencies))
	for skill := range c.proficiencies {
		out = append(out, skill)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetProficiencies replaces the proficiency set. The whole set is
// validated before anything is committed.
func (c *Character) SetProficiencies(skills []Skill) error {
	next := make(map[Skill]bool, len(skills))
	for _, skill := range skills {
		if !skill.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownSkill, string(skill))
		}
		next[skill] = true
	}
	c.proficiencies = next
	return nil
}

// AddProficiency marks the character as trained in a skill.
// Adding an already-held proficiency is a no-op.
func (c *Character) AddProficiency(skill Skill) error {
	if !skill.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownSkill, string(skill))
	}
	c.proficiencies[skill] = true
	return nil
}

// RemoveProficiency drops a skill from the proficiency set.
func (c *Character) RemoveProficiency(skill Skill) error {
	if !skill.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownSkill, string(skill))
	}
	delete(c.proficiencies, skill)
	return nil
}

// SetPortraitPath stores a reference to an external portrait image.
// The file content is not inspected here.
func (c *Character) SetPortraitPath(path string) {
	c.portraitPath = path
}

func (c *Character) String() string {
	parts := make([]string, 0, len(Stats()))
	for _, stat := range Stats() {
		score, _ := c.StatScore(stat)
		mod, _ := c.Modifier(stat)
		parts = append(parts, fmt.Sprintf("%s: %d (%+d)", stat, score, mod))
	}
	return fmt.Sprintf("%s (%s) - %s", c.name, c.class, strings.Join(parts, ", "))
}

package dnd

import (
	"errors"
	"testing"
)

func baseStats() map[Stat]int {
	return map[Stat]int{
		StatSTR: 10, StatDEX: 10, StatCON: 10,
		StatINT: 10, StatWIS: 10, StatCHA: 10,
	}
}

func newTestCharacter(t *testing.T, class Class, stats map[Stat]int, profs []Skill) *Character {
	t.Helper()
	c, err := NewCharacter(CharacterInput{
		Name:          "Tester",
		Class:         class,
		Stats:         stats,
		Proficiencies: profs,
	})
	if err != nil {
		t.Fatalf("NewCharacter: %v", err)
	}
	return c
}

func TestModifierFloorDivision(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{1, -5},
		{3, -4},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{14, 2},
		{20, 5},
		{30, 10},
	}

	c := newTestCharacter(t, ClassFighter, baseStats(), nil)
	for _, tc := range cases {
		if err := c.SetStat(StatSTR, tc.score); err != nil {
			t.Fatalf("SetStat(%d): %v", tc.score, err)
		}
		got, err := c.Modifier(StatSTR)
		if err != nil {
			t.Fatalf("Modifier(%d): %v", tc.score, err)
		}
		if got != tc.want {
			t.Fatalf("Modifier for score %d = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestModifierWholeRange(t *testing.T) {
	c := newTestCharacter(t, ClassFighter, baseStats(), nil)
	for score := MinScore; score <= MaxScore; score++ {
		if err := c.SetStat(StatWIS, score); err != nil {
			t.Fatalf("SetStat(%d): %v", score, err)
		}
		got, _ := c.Modifier(StatWIS)
		want := (score - 10) / 2
		if score < 10 && (score-10)%2 != 0 {
			want-- // floor, not truncation
		}
		if got != want {
			t.Fatalf("Modifier for score %d = %d, want %d", score, got, want)
		}
	}
}

func TestSetStatRejections(t *testing.T) {
	c := newTestCharacter(t, ClassFighter, baseStats(), nil)

	if err := c.SetStat(StatSTR, 0); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("SetStat(0) err = %v, want ErrScoreOutOfRange", err)
	}
	if err := c.SetStat(StatSTR, 31); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("SetStat(31) err = %v, want ErrScoreOutOfRange", err)
	}
	if err := c.SetStat(Stat("LCK"), 10); !errors.Is(err, ErrUnknownStat) {
		t.Fatalf("SetStat(LCK) err = %v, want ErrUnknownStat", err)
	}

	// A failed set must not touch the stored score.
	score, _ := c.StatScore(StatSTR)
	if score != 10 {
		t.Fatalf("score after rejected sets = %d, want 10", score)
	}
}

func TestStatScoreDefault(t *testing.T) {
	c := &Character{stats: map[Stat]int{}}
	score, err := c.StatScore(StatCHA)
	if err != nil {
		t.Fatalf("StatScore: %v", err)
	}
	if score != DefaultScore {
		t.Fatalf("unset stat score = %d, want %d", score, DefaultScore)
	}
	if _, err := c.StatScore(Stat("FOO")); !errors.Is(err, ErrUnknownStat) {
		t.Fatalf("StatScore(FOO) err = %v, want ErrUnknownStat", err)
	}
}

func TestNewCharacterValidation(t *testing.T) {
	valid := CharacterInput{Name: "Tester", Stats: baseStats()}

	missing := baseStats()
	delete(missing, StatCON)

	extra := baseStats()
	extra[Stat("LCK")] = 12

	cases := []struct {
		name string
		in   CharacterInput
		want error
	}{
		{"empty name", CharacterInput{Name: "   ", Stats: baseStats()}, ErrNameRequired},
		{"bad class", CharacterInput{Name: "X", Class: Class("Ninja"), Stats: baseStats()}, ErrUnknownClass},
		{"bad skill", CharacterInput{Name: "X", Stats: baseStats(), Proficiencies: []Skill{"Flying"}}, ErrUnknownSkill},
		{"missing stat", CharacterInput{Name: "X", Stats: missing}, ErrMissingStat},
		{"unknown stat key", CharacterInput{Name: "X", Stats: extra}, ErrUnknownStat},
	}
	for _, tc := range cases {
		if _, err := NewCharacter(tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}

	if _, err := NewCharacter(valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestNewCharacterDefaults(t *testing.T) {
	c := newTestCharacter(t, "", baseStats(), nil)
	if c.Class() != DefaultClass {
		t.Fatalf("class = %s, want %s", c.Class(), DefaultClass)
	}
	if c.ID() == "" {
		t.Fatal("expected a generated id")
	}
}

func TestNameLength(t *testing.T) {
	long := make([]byte, maxNameLen+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := NewCharacter(CharacterInput{Name: string(long), Stats: baseStats()}); !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("51-char name err = %v, want ErrNameTooLong", err)
	}

	c := newTestCharacter(t, ClassBard, baseStats(), nil)
	if err := c.SetName("  Trimmed  "); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	if c.Name() != "Trimmed" {
		t.Fatalf("name = %q, want %q", c.Name(), "Trimmed")
	}
}

func TestProficiencySet(t *testing.T) {
	c := newTestCharacter(t, ClassRogue, baseStats(), []Skill{SkillStealth})

	if !c.HasProficiency(SkillStealth) {
		t.Fatal("expected Stealth proficiency")
	}
	if c.HasProficiency(SkillArcana) {
		t.Fatal("did not expect Arcana proficiency")
	}

	if err := c.AddProficiency(SkillArcana); err != nil {
		t.Fatalf("AddProficiency: %v", err)
	}
	if err := c.AddProficiency(SkillArcana); err != nil {
		t.Fatalf("AddProficiency twice: %v", err)
	}
	got := c.Proficiencies()
	if len(got) != 2 {
		t.Fatalf("proficiencies = %v, want 2 entries", got)
	}

	if err := c.RemoveProficiency(SkillArcana); err != nil {
		t.Fatalf("RemoveProficiency: %v", err)
	}
	if c.HasProficiency(SkillArcana) {
		t.Fatal("Arcana proficiency should be gone")
	}

	// A rejected replacement must keep the old set intact.
	if err := c.SetProficiencies([]Skill{SkillInsight, "Flying"}); !errors.Is(err, ErrUnknownSkill) {
		t.Fatalf("SetProficiencies err = %v, want ErrUnknownSkill", err)
	}
	if !c.HasProficiency(SkillStealth) {
		t.Fatal("Stealth proficiency lost after rejected SetProficiencies")
	}
}

func TestParseClass(t *testing.T) {
	for _, input := range []string{"rogue", "ROGUE", "Rogue", " rogue "} {
		c, err := ParseClass(input)
		if err != nil {
			t.Fatalf("ParseClass(%q): %v", input, err)
		}
		if c != ClassRogue {
			t.Fatalf("ParseClass(%q) = %s, want Rogue", input, c)
		}
	}
	if _, err := ParseClass("ninja"); !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("ParseClass(ninja) err = %v, want ErrUnknownClass", err)
	}
	if _, err := ParseClass(""); !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("ParseClass(empty) err = %v, want ErrUnknownClass", err)
	}
}

func TestParseSkill(t *testing.T) {
	cases := map[string]Skill{
		"stealth":          SkillStealth,
		"Stealth":          SkillStealth,
		"sleight-of-hand":  SkillSleightOfHand,
		"Sleight of Hand":  SkillSleightOfHand,
		"animal handling":  SkillAnimalHandling,
		"ANIMAL  HANDLING": SkillAnimalHandling,
	}
	for input, want := range cases {
		got, err := ParseSkill(input)
		if err != nil {
			t.Fatalf("ParseSkill(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseSkill(%q) = %s, want %s", input, got, want)
		}
	}
	if _, err := ParseSkill("flying"); !errors.Is(err, ErrUnknownSkill) {
		t.Fatalf("ParseSkill(flying) err = %v, want ErrUnknownSkill", err)
	}
}

func TestSkillTables(t *testing.T) {
	stat, err := SkillStat(SkillStealth)
	if err != nil {
		t.Fatalf("SkillStat: %v", err)
	}
	if stat != StatDEX {
		t.Fatalf("Stealth stat = %s, want DEX", stat)
	}
	if _, err := SkillStat(Skill("Flying")); !errors.Is(err, ErrUnknownSkill) {
		t.Fatalf("SkillStat(Flying) err = %v, want ErrUnknownSkill", err)
	}

	conSkills, err := SkillsByStat(StatCON)
	if err != nil {
		t.Fatalf("SkillsByStat(CON): %v", err)
	}
	if len(conSkills) != 0 {
		t.Fatalf("CON skills = %v, want none", conSkills)
	}

	if got := len(AllSkills()); got != 18 {
		t.Fatalf("total skills = %d, want 18", got)
	}
	for _, skill := range AllSkills() {
		if _, err := SkillStat(skill); err != nil {
			t.Fatalf("skill %s has no governing stat", skill)
		}
	}
}

package roster_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ryoumen0412/RollForge/internal/dnd"
	"github.com/ryoumen0412/RollForge/internal/roster"
	"github.com/ryoumen0412/RollForge/internal/storage"
)

func newTestService(t *testing.T) *roster.Service {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewJSONStore(filepath.Join(dir, "characters.json"), zerolog.Nop())
	require.NoError(t, err)
	portraits, err := storage.NewPortraitDir(filepath.Join(dir, "character_images"))
	require.NoError(t, err)
	return roster.NewService(store, portraits, zerolog.Nop())
}

func rogueInput(name string) roster.CreateInput {
	return roster.CreateInput{
		Name:  name,
		Class: "rogue",
		Stats: map[dnd.Stat]int{
			dnd.StatSTR: 10, dnd.StatDEX: 14, dnd.StatCON: 12,
			dnd.StatINT: 10, dnd.StatWIS: 10, dnd.StatCHA: 8,
		},
		Proficiencies: []string{"stealth"},
	}
}

func TestServiceCreateAndRoll(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	c, err := svc.Create(ctx, rogueInput("Shadow"))
	require.NoError(t, err)
	require.Equal(t, dnd.ClassRogue, c.Class())
	require.True(t, c.HasProficiency(dnd.SkillStealth))

	b, _, err := svc.Roll(ctx, c.ID(), 15, "stealth", true)
	require.NoError(t, err)
	require.Equal(t, 21, b.Total)
	require.Equal(t, dnd.StatDEX, b.Stat)
}

func TestServiceCreateRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	in := rogueInput("Shadow")
	delete(in.Stats, dnd.StatCON)
	_, err := svc.Create(ctx, in)
	require.ErrorIs(t, err, dnd.ErrMissingStat)

	in = rogueInput("Shadow")
	in.Proficiencies = []string{"flying"}
	_, err = svc.Create(ctx, in)
	require.ErrorIs(t, err, dnd.ErrUnknownSkill)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestServiceFind(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	alice, err := svc.Create(ctx, rogueInput("Alice"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, rogueInput("Alfred"))
	require.NoError(t, err)

	// Exact id, exact name, unique name prefix, unique id prefix.
	got, err := svc.Find(ctx, alice.ID())
	require.NoError(t, err)
	require.Equal(t, alice.ID(), got.ID())

	got, err = svc.Find(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID(), got.ID())

	got, err = svc.Find(ctx, "Ali")
	require.NoError(t, err)
	require.Equal(t, alice.ID(), got.ID())

	got, err = svc.Find(ctx, alice.ID()[:8])
	require.NoError(t, err)
	require.Equal(t, alice.ID(), got.ID())

	_, err = svc.Find(ctx, "Al")
	require.ErrorContains(t, err, "ambiguous")

	_, err = svc.Find(ctx, "nobody")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestServiceMutatorsPersist(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	c, err := svc.Create(ctx, rogueInput("Shadow"))
	require.NoError(t, err)

	_, err = svc.SetStat(ctx, c.ID(), dnd.StatDEX, 18)
	require.NoError(t, err)
	_, err = svc.Rename(ctx, c.ID(), "Nightblade")
	require.NoError(t, err)
	_, err = svc.AddProficiency(ctx, c.ID(), dnd.SkillAcrobatics)
	require.NoError(t, err)

	got, err := svc.Get(ctx, c.ID())
	require.NoError(t, err)
	require.Equal(t, "Nightblade", got.Name())
	score, err := got.StatScore(dnd.StatDEX)
	require.NoError(t, err)
	require.Equal(t, 18, score)
	require.True(t, got.HasProficiency(dnd.SkillAcrobatics))

	// A rejected mutation leaves the stored record untouched.
	_, err = svc.SetStat(ctx, c.ID(), dnd.StatDEX, 31)
	require.ErrorIs(t, err, dnd.ErrScoreOutOfRange)
	got, err = svc.Get(ctx, c.ID())
	require.NoError(t, err)
	score, err = got.StatScore(dnd.StatDEX)
	require.NoError(t, err)
	require.Equal(t, 18, score)
}

func TestServicePortraitLifecycle(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := storage.NewJSONStore(filepath.Join(dir, "characters.json"), zerolog.Nop())
	require.NoError(t, err)
	portraits, err := storage.NewPortraitDir(filepath.Join(dir, "character_images"))
	require.NoError(t, err)
	svc := roster.NewService(store, portraits, zerolog.Nop())

	src := filepath.Join(dir, "face.png")
	require.NoError(t, os.WriteFile(src, []byte("imagebytes"), 0o644))

	in := rogueInput("Shadow")
	in.PortraitPath = src
	c, err := svc.Create(ctx, in)
	require.NoError(t, err)
	require.FileExists(t, c.PortraitPath())
	require.Equal(t, filepath.Join(dir, "character_images", c.ID()+".png"), c.PortraitPath())

	require.NoError(t, svc.Delete(ctx, c.ID()))
	require.NoFileExists(t, c.PortraitPath())
	_, err = svc.Get(ctx, c.ID())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestServiceExportImport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	shadow, err := svc.Create(ctx, rogueInput("Shadow"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, rogueInput("Mira"))
	require.NoError(t, err)

	exportPath := filepath.Join(t.TempDir(), "export.json")
	n, err := svc.Export(ctx, exportPath)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Rename after the export; importing must restore the exported name.
	_, err = svc.Rename(ctx, shadow.ID(), "Renamed")
	require.NoError(t, err)

	res, err := svc.Import(ctx, exportPath)
	require.NoError(t, err)
	require.Equal(t, roster.ImportResult{Imported: 2, Skipped: 0}, res)

	got, err := svc.Get(ctx, shadow.ID())
	require.NoError(t, err)
	require.Equal(t, "Shadow", got.Name())
}

func TestServiceImportSkipsMalformed(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	path := filepath.Join(t.TempDir(), "import.json")
	payload := `{
		"good": {
			"id": "good",
			"name": "Mira",
			"character_class": "Bard",
			"proficiencies": ["Persuasion"],
			"stats": {"STR": 10, "DEX": 12, "CON": 10, "INT": 10, "WIS": 10, "CHA": 16}
		},
		"broken": {"id": "broken", "name": "Broken"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	res, err := svc.Import(ctx, path)
	require.NoError(t, err)
	require.Equal(t, roster.ImportResult{Imported: 1, Skipped: 1}, res)

	got, err := svc.Get(ctx, "good")
	require.NoError(t, err)
	require.Equal(t, "Mira", got.Name())
	require.Equal(t, dnd.ClassBard, got.Class())
}

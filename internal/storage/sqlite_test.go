package storage_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ryoumen0412/RollForge/internal/dnd"
	"github.com/ryoumen0412/RollForge/internal/storage"
)

func newTestSQLiteStore(t *testing.T) (*storage.SQLiteStore, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := storage.OpenSQLite(ctx, filepath.Join(t.TempDir(), "rollforge.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewSQLiteStore(db, zerolog.Nop()), db
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSQLiteStore(t)

	c := testCharacter(t, "Shadow")
	c.SetPortraitPath("portraits/shadow.png")
	require.NoError(t, s.Put(ctx, c))

	got, err := s.Get(ctx, c.ID())
	require.NoError(t, err)
	require.Equal(t, c.ID(), got.ID())
	require.Equal(t, "Shadow", got.Name())
	require.Equal(t, dnd.ClassRogue, got.Class())
	require.Equal(t, c.AllStats(), got.AllStats())
	require.Equal(t, c.Proficiencies(), got.Proficiencies())
	require.Equal(t, "portraits/shadow.png", got.PortraitPath())
}

func TestSQLiteStoreUpsert(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSQLiteStore(t)

	c := testCharacter(t, "Shadow")
	require.NoError(t, s.Put(ctx, c))
	require.NoError(t, c.SetName("Renamed"))
	require.NoError(t, s.Put(ctx, c))

	got, err := s.Get(ctx, c.ID())
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name())

	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSQLiteStorePutAllIsAtomic(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSQLiteStore(t)

	batch := []*dnd.Character{
		testCharacter(t, "Alice"),
		testCharacter(t, "Bob"),
		testCharacter(t, "Zed"),
	}
	require.NoError(t, s.PutAll(ctx, batch))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Alice", list[0].Name())
	require.Equal(t, "Zed", list[2].Name())
}

func TestSQLiteStoreListSkipsMalformedRows(t *testing.T) {
	ctx := context.Background()
	s, db := newTestSQLiteStore(t)

	require.NoError(t, s.Put(ctx, testCharacter(t, "Alice")))
	_, err := db.ExecContext(ctx, `
		INSERT INTO characters (id, name, class, stats, proficiencies, portrait_path)
		VALUES ('broken', 'Broken', 'Rogue', 'not json', '[]', '')
	`)
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Alice", list[0].Name())
}

func TestSQLiteStoreDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSQLiteStore(t)

	c := testCharacter(t, "Shadow")
	require.NoError(t, s.Put(ctx, c))
	require.NoError(t, s.Delete(ctx, c.ID()))

	_, err := s.Get(ctx, c.ID())
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, c.ID()), storage.ErrNotFound)
}

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/ryoumen0412/RollForge/internal/dnd"
)

// OpenSQLite opens (and creates if missing) the SQLite database at the
// provided path and applies the schema.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the characters table. Stats and proficiencies are
// stored as JSON columns; id is the authoritative key.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS characters (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			class TEXT NOT NULL,
			stats TEXT NOT NULL,
			proficiencies TEXT,
			portrait_path TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_characters_name ON characters(name);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SQLiteStore persists characters in a local SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewSQLiteStore(db *sql.DB, log zerolog.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, log: log}
}

func characterColumns(c *dnd.Character) (statsJSON, profsJSON string, err error) {
	rec := c.Record()
	stats, err := json.Marshal(rec.Stats)
	if err != nil {
		return "", "", fmt.Errorf("marshal stats: %w", err)
	}
	profs, err := json.Marshal(rec.Proficiencies)
	if err != nil {
		return "", "", fmt.Errorf("marshal proficiencies: %w", err)
	}
	return string(stats), string(profs), nil
}

func upsertCharacter(ctx context.Context, tx *sql.Tx, c *dnd.Character) error {
	statsJSON, profsJSON, err := characterColumns(c)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO characters (id, name, class, stats, proficiencies, portrait_path)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			class = excluded.class,
			stats = excluded.stats,
			proficiencies = excluded.proficiencies,
			portrait_path = excluded.portrait_path
	`, c.ID(), c.Name(), string(c.Class()), statsJSON, profsJSON, c.PortraitPath())
	if err != nil {
		return fmt.Errorf("character upsert: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Put(ctx context.Context, c *dnd.Character) error {
	return s.PutAll(ctx, []*dnd.Character{c})
}

func (s *SQLiteStore) PutAll(ctx context.Context, cs []*dnd.Character) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, c := range cs {
			if err := upsertCharacter(ctx, tx, c); err != nil {
				return err
			}
		}
		return nil
	})
}

type characterRow struct {
	id           string
	name         string
	class        string
	statsJSON    string
	profsJSON    sql.NullString
	portraitPath sql.NullString
}

func (r characterRow) toCharacter() (*dnd.Character, error) {
	stats := map[string]int{}
	if err := json.Unmarshal([]byte(r.statsJSON), &stats); err != nil {
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}
	var profs []string
	if r.profsJSON.Valid && r.profsJSON.String != "" {
		if err := json.Unmarshal([]byte(r.profsJSON.String), &profs); err != nil {
			return nil, fmt.Errorf("unmarshal proficiencies: %w", err)
		}
	}
	return dnd.FromRecord(dnd.Record{
		ID:             r.id,
		Name:           r.name,
		CharacterClass: r.class,
		Proficiencies:  profs,
		ImagePath:      r.portraitPath.String,
		Stats:          stats,
	})
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*dnd.Character, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, class, stats, proficiencies, portrait_path
		FROM characters WHERE id = ?
	`, id)

	var r characterRow
	if err := row.Scan(&r.id, &r.name, &r.class, &r.statsJSON, &r.profsJSON, &r.portraitPath); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("character get: %w", err)
	}
	return r.toCharacter()
}

func (s *SQLiteStore) List(ctx context.Context) ([]*dnd.Character, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, class, stats, proficiencies, portrait_path
		FROM characters
	`)
	if err != nil {
		return nil, fmt.Errorf("character list: %w", err)
	}
	defer rows.Close()

	var out []*dnd.Character
	for rows.Next() {
		var r characterRow
		if err := rows.Scan(&r.id, &r.name, &r.class, &r.statsJSON, &r.profsJSON, &r.portraitPath); err != nil {
			return nil, fmt.Errorf("character scan: %w", err)
		}
		c, err := r.toCharacter()
		if err != nil {
			s.log.Warn().Str("id", r.id).Err(err).Msg("skipping malformed character row")
			continue
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("character rows: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("character delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("character delete rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM characters`).Scan(&n); err != nil {
		return 0, fmt.Errorf("character count: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

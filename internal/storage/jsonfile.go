package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ryoumen0412/RollForge/internal/dnd"
)

// JSONStore keeps the whole roster in a single JSON file: a map from
// character id to its flat record. This is the original RollForge
// characters.json layout and the default backend.
type JSONStore struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// NewJSONStore opens a JSON file store at path, creating the parent
// directory and an empty file when missing.
func NewJSONStore(path string, log zerolog.Logger) (*JSONStore, error) {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	s := &JSONStore{path: path, log: log}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeRaw(map[string]json.RawMessage{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *JSONStore) Path() string { return s.path }

// loadRaw reads the id→record map without decoding individual records,
// so one malformed entry cannot poison the rest. A file that fails to
// parse at all is backed up and treated as empty.
func (s *JSONStore) loadRaw() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		backup := s.path + ".backup"
		if werr := os.WriteFile(backup, data, 0o644); werr == nil {
			s.log.Warn().Str("backup", backup).Err(err).Msg("characters file corrupt, backed up and starting empty")
		} else {
			s.log.Error().Err(werr).Msg("characters file corrupt and backup failed")
		}
		return map[string]json.RawMessage{}, nil
	}
	return raw, nil
}

// writeRaw replaces the backing file atomically via temp-file rename.
func (s *JSONStore) writeRaw(raw map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal characters: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

func decodeRecord(raw json.RawMessage) (*dnd.Character, error) {
	var rec dnd.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return dnd.FromRecord(rec)
}

func (s *JSONStore) Put(ctx context.Context, c *dnd.Character) error {
	return s.PutAll(ctx, []*dnd.Character{c})
}

func (s *JSONStore) PutAll(_ context.Context, cs []*dnd.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.loadRaw()
	if err != nil {
		return err
	}
	for _, c := range cs {
		data, err := json.Marshal(c.Record())
		if err != nil {
			return fmt.Errorf("marshal character %s: %w", c.ID(), err)
		}
		raw[c.ID()] = data
	}
	return s.writeRaw(raw)
}

func (s *JSONStore) Get(_ context.Context, id string) (*dnd.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.loadRaw()
	if err != nil {
		return nil, err
	}
	entry, ok := raw[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return decodeRecord(entry)
}

func (s *JSONStore) List(_ context.Context) ([]*dnd.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.loadRaw()
	if err != nil {
		return nil, err
	}

	out := make([]*dnd.Character, 0, len(raw))
	for id, entry := range raw {
		c, err := decodeRecord(entry)
		if err != nil {
			s.log.Warn().Str("id", id).Err(err).Msg("skipping malformed character record")
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (s *JSONStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.loadRaw()
	if err != nil {
		return err
	}
	if _, ok := raw[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(raw, id)
	return s.writeRaw(raw)
}

func (s *JSONStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.loadRaw()
	if err != nil {
		return 0, err
	}
	return len(raw), nil
}

func (s *JSONStore) Close() error { return nil }

package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ryoumen0412/RollForge/internal/dnd"
)

// Export writes every stored character to path as a map keyed by id,
// the same shape the JSON store uses on disk. Returns the record count.
func (s *Service) Export(ctx context.Context, path string) (int, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return 0, err
	}

	records := make(map[string]dnd.Record, len(all))
	for _, c := range all {
		records[c.ID()] = c.Record()
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write export %s: %w", path, err)
	}
	return len(records), nil
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Import merges a record map from path into the store. Imported records
// win over existing ones with the same id; malformed entries are skipped
// with a warning instead of aborting the whole import.
func (s *Service) Import(ctx context.Context, path string) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read import %s: %w", path, err)
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ImportResult{}, fmt.Errorf("parse import %s: %w", path, err)
	}

	var (
		chars   []*dnd.Character
		skipped int
	)
	for id, entry := range raw {
		var rec dnd.Record
		if err := json.Unmarshal(entry, &rec); err != nil {
			s.log.Warn().Str("id", id).Err(err).Msg("skipping malformed import record")
			skipped++
			continue
		}
		c, err := dnd.FromRecord(rec)
		if err != nil {
			s.log.Warn().Str("id", id).Err(err).Msg("skipping invalid import record")
			skipped++
			continue
		}
		chars = append(chars, c)
	}

	if len(chars) > 0 {
		if err := s.store.PutAll(ctx, chars); err != nil {
			return ImportResult{}, err
		}
	}
	return ImportResult{Imported: len(chars), Skipped: skipped}, nil
}

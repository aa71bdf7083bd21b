package root

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ryoumen0412/RollForge/internal/dnd"
)

// parseStatFlags turns repeated --stat STR=15 flags into a stat map.
func parseStatFlags(values []string) (map[dnd.Stat]int, error) {
	stats := make(map[dnd.Stat]int, len(values))
	for _, v := range values {
		key, raw, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid stat %q (want NAME=VALUE, e.g. STR=15)", v)
		}
		stat, err := dnd.ParseStat(key)
		if err != nil {
			return nil, err
		}
		score, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("stat %s value %q must be an integer", stat, raw)
		}
		stats[stat] = score
	}
	return stats, nil
}

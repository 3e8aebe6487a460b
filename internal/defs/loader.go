// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
)

// rosterFile is the on-disk layout of a roster. Pools are keyed by difficulty.
type rosterFile struct {
	Friendly []UnitDefinition         `json:"friendly"`
	Enemies  []UnitDefinition         `json:"enemies"`
	Pools    map[string][]ArchetypeID `json:"pools"`
	Boss     ArchetypeID              `json:"boss"`
}

// LoadRoster reads a roster file. An empty path returns the built-in roster.
func LoadRoster(path string) (*Roster, error) {
	if path == "" {
		return DefaultRoster(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	roster, err := ParseRoster(file)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	log.Printf("Loaded roster: %d friendly, %d enemy definitions", len(roster.friendly), len(roster.enemy))
	return roster, nil
}

// ParseRoster decodes and validates roster JSON.
func ParseRoster(data []byte) (*Roster, error) {
	var rf rosterFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster: %w", err)
	}

	pools := make(map[int][]ArchetypeID, len(rf.Pools))
	for key, ids := range rf.Pools {
		level, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("pool key %q is not a difficulty: %w", key, err)
		}
		pools[level] = ids
	}
	boss := rf.Boss
	if boss == "" {
		boss = EnemyBoss
	}

	roster := NewRoster(rf.Friendly, rf.Enemies, pools, boss)
	if err := roster.Validate(); err != nil {
		return nil, err
	}
	return roster, nil
}

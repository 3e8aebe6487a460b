// internal/defs/roster.go
package defs

import (
	"errors"
	"fmt"
)

// Roster is the catalog of archetypes for both sides plus the enemy pools.
// It is read-only once built.
type Roster struct {
	friendly      map[ArchetypeID]UnitDefinition
	friendlyOrder []ArchetypeID
	enemy         map[ArchetypeID]UnitDefinition
	pools         map[int][]ArchetypeID
	boss          ArchetypeID
}

// NewRoster builds a roster from definitions. Friendly order is kept for UI buttons.
func NewRoster(friendly, enemy []UnitDefinition, pools map[int][]ArchetypeID, boss ArchetypeID) *Roster {
	r := &Roster{
		friendly: make(map[ArchetypeID]UnitDefinition, len(friendly)),
		enemy:    make(map[ArchetypeID]UnitDefinition, len(enemy)),
		pools:    make(map[int][]ArchetypeID, len(pools)),
		boss:     boss,
	}
	for _, def := range friendly {
		if _, dup := r.friendly[def.ID]; !dup {
			r.friendlyOrder = append(r.friendlyOrder, def.ID)
		}
		r.friendly[def.ID] = def
	}
	for _, def := range enemy {
		r.enemy[def.ID] = def
	}
	for level, ids := range pools {
		r.pools[level] = append([]ArchetypeID(nil), ids...)
	}
	return r
}

// DefaultRoster returns the built-in archetypes.
func DefaultRoster() *Roster {
	return NewRoster(FriendlyDefs, EnemyDefs, DifficultyPools, EnemyBoss)
}

func (r *Roster) Friendly(id ArchetypeID) (UnitDefinition, bool) {
	def, ok := r.friendly[id]
	return def, ok
}

func (r *Roster) Enemy(id ArchetypeID) (UnitDefinition, bool) {
	def, ok := r.enemy[id]
	return def, ok
}

// FriendlyIDs возвращает союзников в порядке кнопок.
func (r *Roster) FriendlyIDs() []ArchetypeID {
	return append([]ArchetypeID(nil), r.friendlyOrder...)
}

// Pool returns the enemy pool of a difficulty tier.
func (r *Roster) Pool(difficulty int) []ArchetypeID {
	return r.pools[difficulty]
}

func (r *Roster) Boss() ArchetypeID {
	return r.boss
}

// Validate checks pools and stat blocks for values the simulation cannot run with.
func (r *Roster) Validate() error {
	var errs []error
	if len(r.friendly) == 0 {
		errs = append(errs, errors.New("roster has no friendly units"))
	}
	for id, def := range r.friendly {
		errs = append(errs, validateStats(id, def.Stats))
	}
	for id, def := range r.enemy {
		errs = append(errs, validateStats(id, def.Stats))
	}
	for level := MinDifficulty; level <= MaxDifficulty; level++ {
		pool := r.pools[level]
		if len(pool) == 0 {
			errs = append(errs, fmt.Errorf("difficulty %d has an empty enemy pool", level))
		}
		for _, id := range pool {
			if _, ok := r.enemy[id]; !ok {
				errs = append(errs, fmt.Errorf("difficulty %d pool references unknown enemy %q", level, id))
			}
		}
	}
	if _, ok := r.enemy[r.boss]; !ok {
		errs = append(errs, fmt.Errorf("boss %q is not an enemy archetype", r.boss))
	}
	return errors.Join(errs...)
}

func validateStats(id ArchetypeID, s UnitStats) error {
	switch {
	case s.MaxHP <= 0:
		return fmt.Errorf("%s: max_hp must be positive", id)
	case s.AttackInterval <= 0:
		return fmt.Errorf("%s: attack_interval must be positive", id)
	case s.Speed < 0 || s.AttackPower < 0 || s.AttackRange < 0 || s.Cost < 0:
		return fmt.Errorf("%s: stats must not be negative", id)
	case s.Width <= 0:
		return fmt.Errorf("%s: width must be positive", id)
	}
	return nil
}

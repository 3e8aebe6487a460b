// internal/system/wave.go
package system

import (
	"log"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/utils"
)

// WaveSystem решает, кого и когда выпустить на линию.
type WaveSystem struct {
	world  *entity.World
	roster *defs.Roster
	rng    *utils.PRNGService
	cfg    config.Config
	out    event.Emitter
}

func NewWaveSystem(world *entity.World, roster *defs.Roster, rng *utils.PRNGService, cfg config.Config, out event.Emitter) *WaveSystem {
	return &WaveSystem{
		world:  world,
		roster: roster,
		rng:    rng,
		cfg:    cfg,
		out:    out,
	}
}

// StartWave готовит волну для уровня сложности.
func (s *WaveSystem) StartWave(difficulty int) *component.Wave {
	return &component.Wave{
		Difficulty:    difficulty,
		Planned:       s.cfg.PlannedEnemies(difficulty),
		SpawnInterval: s.cfg.FirstSpawnInterval,
	}
}

// Update выпускает не больше одного врага за тик. Часы волны
// запускаются первым вызовом.
func (s *WaveSystem) Update(now float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	if !wave.Started {
		wave.Started = true
		wave.LastSpawnAt = now
	}
	if wave.Spawned >= wave.Planned {
		return
	}
	if now-wave.LastSpawnAt <= wave.SpawnInterval {
		return
	}
	s.spawnEnemy(wave)
	wave.Spawned++
	wave.LastSpawnAt = now
	wave.SpawnInterval = s.rng.Range(s.cfg.MinSpawnInterval, s.cfg.MaxSpawnInterval)
}

// NextArchetype выбирает врага: случайно из пула, но последний враг
// на высоких сложностях всегда босс.
func (s *WaveSystem) NextArchetype(wave *component.Wave) defs.ArchetypeID {
	id := s.rng.ChooseArchetype(s.roster.Pool(wave.Difficulty))
	isLast := wave.Spawned == wave.Planned-1
	if isLast && wave.Difficulty >= s.cfg.BossFromDifficulty {
		id = s.roster.Boss()
	}
	return id
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	id := s.NextArchetype(wave)
	def, ok := s.roster.Enemy(id)
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %q", id)
		return
	}

	unit := entity.NewUnit(s.world.NewEntity(), entity.SideEnemy, id, def.Stats, s.cfg.EnemySpawnX, s.cfg.Baseline)
	s.world.Add(unit)

	isBoss := id == s.roster.Boss()
	if isBoss {
		wave.BossSpawned = true
		log.Printf("Boss %s entered the lane (unit %d)", id, unit.ID)
	}
	s.out.Emit(event.Event{Type: event.EnemySpawned, Data: event.Spawn{
		UnitID:    unit.ID,
		Archetype: string(id),
		Boss:      isBoss,
	}})
}

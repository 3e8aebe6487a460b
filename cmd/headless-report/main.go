package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
)

const frameDt = 1.0 / config.TargetFPS

type runStats struct {
	runIndex   int
	seed       int64
	difficulty int

	outcome     component.Outcome
	ticks       int
	finalBaseHP int
	finalMoney  int

	firstEnemyTick  int
	firstSpawnTick  int
	firstDeathTick  int
	firstBreachTick int
	bossTick        int

	enemiesSpawned int
	friendlyDeaths int
	breaches       int
	attacks        int
	friendlyHits   int
	spawns         map[string]int
}

type aggregate struct {
	runs      int
	victories int
	defeats   int
	timeouts  int
	avgTicks  float64
	avgBaseHP float64
	spawns    map[string]int
}

func main() {
	var runs int
	var maxTicks int
	var seedBase int64
	var seedStep int64
	var difficulty int
	var configPath string
	var rosterPath string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&maxTicks, "max-ticks", 60*60*10, "tick cap per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&difficulty, "difficulty", 1, "stage 1..3")
	flag.StringVar(&configPath, "config", "", "YAML balance override")
	flag.StringVar(&rosterPath, "roster", "", "JSON roster override")
	flag.BoolVar(&verbose, "v", false, "keep session logs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxTicks <= 0 {
		fmt.Println("error: -max-ticks must be > 0")
		return
	}
	if !verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	roster, err := defs.LoadRoster(rosterPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Lane Report ===\n")
	fmt.Printf("difficulty=%d runs=%d max_ticks=%d seed_base=%d seed_step=%d\n\n", difficulty, runs, maxTicks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runSession(cfg, roster, difficulty, i+1, seed, maxTicks)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(summarize(all))
}

// runSession играет одну сессию автопилотом до конца или до лимита тиков.
func runSession(cfg config.Config, roster *defs.Roster, difficulty, runIndex int, seed int64, maxTicks int) runStats {
	g := app.NewGame(cfg, roster, difficulty, app.WithSeed(seed))
	pilot := app.NewAutopilot(roster)
	rs := runStats{
		runIndex:        runIndex,
		seed:            seed,
		difficulty:      g.Difficulty(),
		firstEnemyTick:  -1,
		firstSpawnTick:  -1,
		firstDeathTick:  -1,
		firstBreachTick: -1,
		bossTick:        -1,
		spawns:          map[string]int{},
	}

	now := 0.0
	tick := 0
	for ; tick < maxTicks && !g.IsGameOver(); tick++ {
		pilot.Act(g)
		now += frameDt
		g.Tick(frameDt, now)
		for _, e := range g.DrainEvents() {
			rs.record(tick, e)
		}
	}

	rs.ticks = tick
	rs.outcome = g.Outcome()
	rs.finalBaseHP = g.BaseHP()
	rs.finalMoney = g.Money()
	return rs
}

func (rs *runStats) record(tick int, e event.Event) {
	mark := func(p *int) {
		if *p < 0 {
			*p = tick
		}
	}
	switch e.Type {
	case event.EnemySpawned:
		rs.enemiesSpawned++
		mark(&rs.firstEnemyTick)
		if s, ok := e.Data.(event.Spawn); ok && s.Boss {
			mark(&rs.bossTick)
		}
	case event.FriendlySpawned:
		mark(&rs.firstSpawnTick)
		if s, ok := e.Data.(event.Spawn); ok {
			rs.spawns[s.Archetype]++
		}
	case event.FriendlyDied:
		rs.friendlyDeaths++
		mark(&rs.firstDeathTick)
	case event.BaseDamaged:
		rs.breaches++
		mark(&rs.firstBreachTick)
	case event.UnitAttacked:
		rs.attacks++
		if a, ok := e.Data.(event.Attack); ok && a.Friendly {
			rs.friendlyHits++
		}
	}
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), spawns: map[string]int{}}
	if len(all) == 0 {
		return agg
	}
	ticks, hp := 0, 0
	for _, rs := range all {
		switch rs.outcome {
		case component.OutcomeVictory:
			agg.victories++
		case component.OutcomeDefeat:
			agg.defeats++
		default:
			agg.timeouts++
		}
		ticks += rs.ticks
		hp += max(rs.finalBaseHP, 0)
		for id, n := range rs.spawns {
			agg.spawns[id] += n
		}
	}
	agg.avgTicks = float64(ticks) / float64(len(all))
	agg.avgBaseHP = float64(hp) / float64(len(all))
	return agg
}

func printRun(rs runStats) {
	outcome := rs.outcome.String()
	if rs.outcome == component.OutcomeNone {
		outcome = "timeout"
	}
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("result: %s after %d ticks (%.1fs) base_hp=%d money=%d\n",
		outcome, rs.ticks, float64(rs.ticks)*frameDt, rs.finalBaseHP, rs.finalMoney)
	fmt.Printf("phase_markers: first_enemy=%d first_spawn=%d first_death=%d first_breach=%d boss=%d\n",
		rs.firstEnemyTick, rs.firstSpawnTick, rs.firstDeathTick, rs.firstBreachTick, rs.bossTick)
	fmt.Printf("event_totals: enemies=%d friendly_deaths=%d breaches=%d attacks=%d friendly_hits=%d\n",
		rs.enemiesSpawned, rs.friendlyDeaths, rs.breaches, rs.attacks, rs.friendlyHits)
	fmt.Printf("spawns: %s\n\n", joinCounts(rs.spawns))
}

func printAggregate(agg aggregate) {
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d\n", agg.runs)
	fmt.Printf("outcomes: victory=%d defeat=%d timeout=%d win_rate=%.0f%%\n",
		agg.victories, agg.defeats, agg.timeouts, rate(agg.victories, agg.runs))
	fmt.Printf("avg_ticks=%.1f avg_base_hp=%.1f\n", agg.avgTicks, agg.avgBaseHP)
	fmt.Printf("spawns_total: %s\n", joinCounts(agg.spawns))
}

func rate(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, ",")
}

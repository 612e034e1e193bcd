package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

type runConfig struct {
	level      engine.Level
	seed       int64
	policy     string
	clickRate  float64
	delay      float64
	fps        int
	maxSeconds float64
}

type runStats struct {
	runIndex int
	seed     int64
	level    engine.Level
	policy   string

	ended        bool
	outcome      engine.SessionOutcomeReason
	frames       int
	spawned      int
	manualExt    int
	manualSupp   int
	autoSupp     int
	replaced     int
	expired      int
	staleInputs  int
	peakDamage   float64
	firstSpawnAt int
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var levelArg string
	var policy string
	var clickRate float64
	var delay float64
	var fps int
	var maxSeconds float64

	flag.IntVar(&runs, "runs", 5, "number of headless sessions per level")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&levelArg, "level", "all", "level to play: 1, 2, manual, suppression or all")
	flag.StringVar(&policy, "policy", "clicker", "scripted player: idle, clicker or suppressor")
	flag.Float64Var(&clickRate, "click-rate", 6, "clicks per second for clicker policies")
	flag.Float64Var(&delay, "delay", 1.5, "seconds a suppressor waits before pressing suppress")
	flag.IntVar(&fps, "fps", 60, "simulation frames per second")
	flag.Float64Var(&maxSeconds, "max-seconds", 300, "simulated seconds before a run is cut off")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if fps <= 0 {
		fmt.Println("error: -fps must be > 0")
		return
	}
	levels, err := parseLevels(levelArg)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if _, err := engine.ParsePolicy(policy, clickRate, delay); err != nil {
		fmt.Printf("error: %v (supported: idle, clicker, suppressor)\n", err)
		return
	}

	fmt.Printf("=== Headless Fire Report ===\n")
	fmt.Printf("policy=%s runs=%d fps=%d max_seconds=%.0f seed_base=%d seed_step=%d\n\n",
		policy, runs, fps, maxSeconds, seedBase, seedStep)

	for _, lvl := range levels {
		all := make([]runStats, 0, runs)
		for i := 0; i < runs; i++ {
			rc := runConfig{
				level:      lvl,
				seed:       seedBase + int64(i)*seedStep,
				policy:     policy,
				clickRate:  clickRate,
				delay:      delay,
				fps:        fps,
				maxSeconds: maxSeconds,
			}
			rs := runSession(i+1, rc)
			all = append(all, rs)
			printRun(os.Stdout, rs)
		}
		printAggregate(os.Stdout, lvl, all)
	}
}

func parseLevels(arg string) ([]engine.Level, error) {
	if strings.EqualFold(strings.TrimSpace(arg), "all") {
		return engine.Levels(), nil
	}
	l, err := engine.ParseLevel(arg)
	if err != nil {
		return nil, err
	}
	return []engine.Level{l}, nil
}

func runSession(runIndex int, rc runConfig) runStats {
	p, err := engine.ParsePolicy(rc.policy, rc.clickRate, rc.delay)
	if err != nil {
		p = engine.IdlePolicy{}
	}
	sim := engine.NewSim(
		engine.WithSimLevel(rc.level),
		engine.WithSimSeed(rc.seed),
		engine.WithFrameRate(rc.fps),
		engine.WithPolicy(p),
	)

	peak := 0.0
	maxFrames := int(rc.maxSeconds * float64(rc.fps))
	sim.RunUntil(func(s *engine.Sim) bool {
		if d := s.Engine.Snapshot().Damage; d > peak {
			peak = d
		}
		return !s.Engine.Playing()
	}, maxFrames)

	el := sim.Log()
	rs := runStats{
		runIndex:     runIndex,
		seed:         rc.seed,
		level:        rc.level,
		policy:       p.Name(),
		ended:        !sim.Engine.Playing(),
		outcome:      engine.DetermineOutcome(sim.Engine.Snapshot()),
		frames:       sim.CurrentFrame(),
		spawned:      sim.CountEvents(engine.EventFireSpawned),
		manualExt:    el.CountCategory("extinguish", "manual"),
		manualSupp:   el.CountCategory("suppress", "manual"),
		autoSupp:     el.CountCategory("suppress", "auto"),
		replaced:     el.CountCategory("ticket", "replaced"),
		expired:      el.CountCategory("ticket", "expired"),
		staleInputs:  el.CountCategory("input", "stale_click") + el.CountCategory("input", "stale_suppress"),
		peakDamage:   peak,
		firstSpawnAt: -1,
	}
	if e, ok := firstOf(el, "spawn", "fire"); ok {
		rs.firstSpawnAt = e.Tick
	}
	return rs
}

func firstOf(el *engine.EventLog, category, key string) (engine.LogEntry, bool) {
	entries := el.Filter(category, key)
	if len(entries) == 0 {
		return engine.LogEntry{}, false
	}
	return entries[0], true
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d (level=%s seed=%d policy=%s) ---\n", rs.runIndex, rs.level, rs.seed, rs.policy)
	o := rs.outcome
	fmt.Fprintf(w, "outcome=%s (%s) ended=%t elapsed=%.1fs frames=%s\n",
		o.Outcome, o.Description, rs.ended, o.Elapsed, humanize.Comma(int64(rs.frames)))
	fmt.Fprintf(w, "score=%s extinguished=%d/%d active_fires=%d damage=%.1f peak_damage=%.1f\n",
		humanize.Comma(int64(o.Score)), o.Extinguished, o.WinTarget, o.ActiveFires, o.Damage, rs.peakDamage)
	fmt.Fprintf(w, "event_totals: spawned=%d manual_extinguish=%d manual_suppress=%d auto_suppress=%d first_spawn_tick=%d\n",
		rs.spawned, rs.manualExt, rs.manualSupp, rs.autoSupp, rs.firstSpawnAt)
	fmt.Fprintf(w, "ticket_events: replaced=%d expired=%d stale_inputs=%d\n\n",
		rs.replaced, rs.expired, rs.staleInputs)
}

type aggregate struct {
	runs        int
	wins        int
	losses      int
	unfinished  int
	meanElapsed float64 // over ended runs
	meanScore   float64
	peakDamage  float64
	autoSupp    int
	replaced    int
	outcomes    map[string]int
}

func aggregateRuns(all []runStats) aggregate {
	ag := aggregate{runs: len(all), outcomes: map[string]int{}}
	scoreSum := 0
	elapsedSum := 0.0
	ended := 0
	for _, rs := range all {
		switch rs.outcome.Outcome {
		case engine.OutcomeWon:
			ag.wins++
		case engine.OutcomeLost:
			ag.losses++
		default:
			ag.unfinished++
		}
		if rs.ended {
			ended++
			elapsedSum += rs.outcome.Elapsed
		}
		scoreSum += rs.outcome.Score
		if rs.peakDamage > ag.peakDamage {
			ag.peakDamage = rs.peakDamage
		}
		ag.autoSupp += rs.autoSupp
		ag.replaced += rs.replaced
		ag.outcomes[rs.outcome.Description]++
	}
	ag.meanScore = avg(float64(scoreSum), len(all))
	ag.meanElapsed = avg(elapsedSum, ended)
	return ag
}

func (ag aggregate) winRate() float64 {
	return avg(float64(ag.wins)*100, ag.runs)
}

func printAggregate(w io.Writer, lvl engine.Level, all []runStats) {
	ag := aggregateRuns(all)
	fmt.Fprintf(w, "=== Aggregate (level=%s) ===\n", lvl)
	fmt.Fprintf(w, "runs=%d wins=%d losses=%d unfinished=%d win_rate=%.0f%%\n",
		ag.runs, ag.wins, ag.losses, ag.unfinished, ag.winRate())
	fmt.Fprintf(w, "mean_outcome_time=%.1fs mean_score=%s peak_damage=%.1f\n",
		ag.meanElapsed, humanize.CommafWithDigits(ag.meanScore, 1), ag.peakDamage)
	fmt.Fprintf(w, "auto_suppressions=%d (%.1f/run) replaced_tickets=%d (%.1f/run)\n",
		ag.autoSupp, avg(float64(ag.autoSupp), ag.runs), ag.replaced, avg(float64(ag.replaced), ag.runs))
	fmt.Fprintf(w, "outcomes: %s\n\n", joinCounts(ag.outcomes))
}

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return sum / float64(n)
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, " ")
}

package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/Garsondee/Ghost-Lanes/internal/config"
	"github.com/Garsondee/Ghost-Lanes/internal/logging"
	"github.com/Garsondee/Ghost-Lanes/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64

	result sim.GameResult
	reason sim.LossReason
	turns  int

	solvable      bool
	isolatingDial int

	fires            int
	captures         int
	emptyCaptures    int
	targetsCaptured  int
	decoysCaptured   int
	exits            int
	firstCaptureTurn int

	reputation int
	charges    int
	escaped    mapset.Set[string]
}

func main() {
	var runs int
	var maxSteps int
	var seedBase int64
	var seedStep int64
	var configPath string
	var verbose bool

	flag.IntVar(&runs, "runs", 20, "number of headless sessions")
	flag.IntVar(&maxSteps, "max-steps", 200, "autoplayer step limit per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "puzzle seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&configPath, "config", "", "optional ghostlanes TOML file for rules")
	flag.BoolVar(&verbose, "v", false, "log every session action")
	flag.Parse()

	logger := logging.ConfigureRuntime("headless-report")
	sessionLogger := zerolog.Nop()
	if verbose {
		sessionLogger = logger
	}

	if runs <= 0 {
		log.Fatal().Int("runs", runs).Msg("-runs must be > 0")
	}
	if maxSteps <= 0 {
		log.Fatal().Int("max_steps", maxSteps).Msg("-max-steps must be > 0")
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("config")
		}
		cfg = loaded
	}
	rules := cfg.Rules()

	fmt.Printf("=== Headless Ghost Lanes Report ===\n")
	fmt.Printf("runs=%d max_steps=%d seed_base=%d seed_step=%d lanes=%d capture_lane=%d charges=%d reputation=%d\n\n",
		runs, maxSteps, seedBase, seedStep, rules.LaneCount, rules.CaptureLane, rules.Charges, rules.Reputation)

	player := sim.NewAutoPlayer(maxSteps)
	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		s := sim.NewSession(rules, sim.WithSeed(seed), sim.WithLogger(sessionLogger))
		player.Play(s)
		stats := collectRun(i+1, seed, s)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// collectRun reads the session's action log and final state into runStats.
func collectRun(runIndex int, seed int64, s *sim.Session) runStats {
	entries := s.Log().Entries()
	res := s.Resources()
	rs := runStats{
		runIndex:         runIndex,
		seed:             seed,
		result:           s.Result(),
		reason:           s.Reason(),
		turns:            s.Turn(),
		fires:            s.Log().CountCategory("fire", "wave"),
		emptyCaptures:    s.Log().CountCategory("capture", "empty"),
		targetsCaptured:  s.Log().CountCategory("capture", "target"),
		decoysCaptured:   s.Log().CountCategory("capture", "decoy"),
		exits:            s.Log().CountCategory("exit", "offscreen"),
		firstCaptureTurn: firstTurn(entries, "capture", "target", ""),
		reputation:       res.Reputation,
		charges:          res.Charges,
		escaped:          mapset.New[string](),
	}
	rs.captures = s.Log().CountCategory("capture", "resources")

	if st, ok := sim.FindIsolating(s.Spec(), s.Wave()); ok {
		rs.solvable = true
		rs.isolatingDial = st.Dial
	}

	for _, e := range s.Log().Filter("exit", "offscreen") {
		variant, _, _ := strings.Cut(e.Value, " ")
		rs.escaped.Put(variant)
	}
	return rs
}

func firstTurn(entries []sim.LogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Turn
		}
	}
	return -1
}

func outcomeLabel(rs runStats) string {
	if rs.result == sim.ResultLost {
		return fmt.Sprintf("lost(%s)", rs.reason)
	}
	return rs.result.String()
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s turns=%d solvable=%t isolating_dial=%d\n",
		outcomeLabel(rs), rs.turns, rs.solvable, rs.isolatingDial)
	fmt.Printf("actions: fires=%d captures=%d empty_captures=%d first_target_capture=%d\n",
		rs.fires, rs.captures, rs.emptyCaptures, rs.firstCaptureTurn)
	fmt.Printf("ghosts: targets_captured=%d decoys_captured=%d exits=%d escaped=[%s]\n",
		rs.targetsCaptured, rs.decoysCaptured, rs.exits, joinSet(rs.escaped))
	fmt.Printf("final: reputation=%d charges=%d\n\n", rs.reputation, rs.charges)
}

func printAggregate(all []runStats) {
	wins, unsolvable := 0, 0
	totalTurns, totalFires, totalCaptures, totalDecoys, totalExits := 0, 0, 0, 0, 0
	reasons := map[string]int{}
	for _, rs := range all {
		if rs.result == sim.ResultWon {
			wins++
		}
		if !rs.solvable {
			unsolvable++
		}
		reasons[outcomeLabel(rs)]++
		totalTurns += rs.turns
		totalFires += rs.fires
		totalCaptures += rs.captures
		totalDecoys += rs.decoysCaptured
		totalExits += rs.exits
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d wins=%d win_rate=%.1f%% unsolvable=%d\n", len(all), wins, percent(wins, len(all)), unsolvable)
	fmt.Printf("avg_per_run: turns=%.1f fires=%.1f captures=%.1f decoys_captured=%.1f exits=%.1f\n",
		avg(totalTurns, len(all)), avg(totalFires, len(all)), avg(totalCaptures, len(all)), avg(totalDecoys, len(all)), avg(totalExits, len(all)))
	fmt.Printf("outcomes: %s\n", formatCounts(reasons))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func percent(part, n int) float64 {
	return avg(part*100, n)
}

// formatCounts renders counts as "k=v" pairs, most frequent first.
func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}

func joinSet(s mapset.Set[string]) string {
	if s.Size() == 0 {
		return "none"
	}
	labels := make([]string, 0, s.Size())
	s.Each(func(k string) {
		labels = append(labels, k)
	})
	sort.Strings(labels)
	return strings.Join(labels, ", ")
}

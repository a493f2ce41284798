package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Cross-Fire/internal/game"
	"github.com/Garsondee/Cross-Fire/internal/replay"
)

type runStats struct {
	runIndex int
	seed     uint64
	policy   string

	outcome   game.Outcome
	ticksRun  int
	kills     int
	crashes   int
	livesLost int
	remaining int

	firstEmergeTick int
	firstAttackTick int
	firstKillTick   int
	firstHitTick    int

	shots         int
	attackEvents  int
	poolTransfers int
	strayHits     int
	selfHits      int
	destroyed     map[string]struct{}
}

func main() {
	var runs int
	var ticks int
	var seedBase uint64
	var seedStep uint64
	var policyName string
	var replayPath string

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&ticks, "ticks", 6000, "maximum ticks per session")
	flag.Uint64Var(&seedBase, "seed-base", 42, "dice seed for run 1")
	flag.Uint64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&policyName, "policy", "sentry", "player autopilot (idle, sentry)")
	flag.StringVar(&replayPath, "replay", "", "play back a recording instead of running seeded sessions")
	flag.Parse()

	if replayPath != "" {
		if err := reportReplay(replayPath); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
		return
	}

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	policy, err := game.PolicyByName(policyName)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("=== Headless Cross-Fire Report ===\n")
	fmt.Printf("policy=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", policy.Name(), runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + uint64(i)*seedStep
		stats := runSession(i+1, seed, policy, ticks)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runSession(runIndex int, seed uint64, policy game.Policy, ticks int) runStats {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithPolicy(policy),
	)
	ts.RunTicks(ticks)
	rs := collectStats(ts.Session)
	rs.runIndex = runIndex
	rs.seed = seed
	rs.policy = policy.Name()
	return rs
}

func reportReplay(path string) error {
	rec, err := replay.Load(path)
	if err != nil {
		return err
	}
	s, err := replay.Play(rec)
	if err != nil {
		return err
	}
	fmt.Printf("=== Replay %s ===\n", rec.ID)
	fmt.Printf("seed=%d frames=%d inputs=%d\n\n", rec.Config.Seed, rec.Frames, len(rec.Events))
	rs := collectStats(s)
	rs.runIndex = 1
	rs.seed = rec.Config.Seed
	rs.policy = "replay"
	printRun(rs)
	return nil
}

// collectStats reads the counters and event log of a finished (or timed out)
// session.
func collectStats(s *game.Session) runStats {
	entries := s.Log().Entries()
	rs := runStats{
		outcome:         s.Outcome(),
		ticksRun:        s.TickCount(),
		kills:           s.Kills(),
		crashes:         s.Crashes(),
		livesLost:       s.Config().PlayerLives - s.Player().Lives(),
		remaining:       len(s.Opponents()),
		firstEmergeTick: firstTick(entries, "state", "change", "→ to_wait"),
		firstAttackTick: firstTick(entries, "state", "change", "→ attacking"),
		firstKillTick:   firstTick(entries, "kill", "shot_down", ""),
		firstHitTick:    firstTick(entries, "hit", "life_lost", ""),
		destroyed:       map[string]struct{}{},
	}
	for _, e := range entries {
		switch e.Category {
		case "fire":
			rs.shots++
		case "state":
			switch {
			case e.Key == "destroyed":
				rs.destroyed[e.Actor] = struct{}{}
			case strings.HasSuffix(e.Value, "attacking"):
				rs.attackEvents++
			}
		case "pool":
			rs.poolTransfers++
		case "hit":
			switch e.Key {
			case "stray":
				rs.strayHits++
			case "self":
				rs.selfHits++
			}
		}
	}
	return rs
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

// detectStalemate flags runs that timed out without the sides ever trading
// fire decisively.
func detectStalemate(rs runStats) (bool, string) {
	if rs.outcome != game.OutcomeInProgress {
		return false, "finished_" + rs.outcome.String()
	}
	reasons := []string{}
	if rs.kills == 0 && rs.livesLost == 0 {
		reasons = append(reasons, "no_casualties")
	}
	if rs.attackEvents == 0 {
		reasons = append(reasons, "no_attacks")
	}
	if len(reasons) == 0 {
		return false, "timeout_with_attrition"
	}
	return true, strings.Join(reasons, ",")
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d policy=%s) ---\n", rs.runIndex, rs.seed, rs.policy)
	fmt.Printf("result: outcome=%s ticks=%d kills=%d crashes=%d lives_lost=%d opponents_left=%d\n",
		rs.outcome, rs.ticksRun, rs.kills, rs.crashes, rs.livesLost, rs.remaining)
	fmt.Printf("phase_markers: first_emerge=%d first_attack=%d first_kill=%d first_hit=%d\n",
		rs.firstEmergeTick, rs.firstAttackTick, rs.firstKillTick, rs.firstHitTick)
	fmt.Printf("event_totals: shots=%d attacks=%d pool_transfers=%d stray_hits=%d self_hits=%d\n",
		rs.shots, rs.attackEvents, rs.poolTransfers, rs.strayHits, rs.selfHits)
	fmt.Printf("destroyed: %s\n", joinSet(rs.destroyed))
	if stale, reason := detectStalemate(rs); stale {
		fmt.Printf("stalemate: %s\n", reason)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	var kills, crashes, livesLost, ticksRun, shots, attacks int
	outcomes := map[game.Outcome]int{}
	var firstKills, firstHits, ends []int
	destroyedGlobal := map[string]struct{}{}
	stalemates := 0

	for _, rs := range all {
		kills += rs.kills
		crashes += rs.crashes
		livesLost += rs.livesLost
		ticksRun += rs.ticksRun
		shots += rs.shots
		attacks += rs.attackEvents
		outcomes[rs.outcome]++
		if rs.firstKillTick >= 0 {
			firstKills = append(firstKills, rs.firstKillTick)
		}
		if rs.firstHitTick >= 0 {
			firstHits = append(firstHits, rs.firstHitTick)
		}
		if rs.outcome != game.OutcomeInProgress {
			ends = append(ends, rs.ticksRun)
		}
		for k := range rs.destroyed {
			destroyedGlobal[k] = struct{}{}
		}
		if stale, _ := detectStalemate(rs); stale {
			stalemates++
		}
	}

	n := len(all)
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d wins=%d losses=%d timeouts=%d stalemates=%d\n",
		n, outcomes[game.OutcomeWin], outcomes[game.OutcomeLoss], outcomes[game.OutcomeInProgress], stalemates)
	fmt.Printf("avg_per_run: kills=%.1f crashes=%.1f lives_lost=%.1f ticks=%.1f shots=%.1f attacks=%.1f\n",
		avg(kills, n), avg(crashes, n), avg(livesLost, n), avg(ticksRun, n), avg(shots, n), avg(attacks, n))
	fmt.Printf("phase_marker_avg_ticks: first_kill=%s first_hit=%s terminal=%s\n",
		avgTickString(firstKills), avgTickString(firstHits), avgTickString(ends))
	fmt.Printf("opponents_ever_destroyed=%d [%s]\n", len(destroyedGlobal), joinSet(destroyedGlobal))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}

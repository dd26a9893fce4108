package main

import (
	"flag"
	"fmt"

	"towerwars/internal/game"
)

// runStats aggregates one headless run.
type runStats struct {
	runIndex int
	seed     int64

	winner       string
	resolved     bool
	ticksToEnd   int
	captures     int
	aiActions    int
	playerSends  int
	firstCapture int
}

// proxyPlayer is a scripted stand-in for a human: every interval it
// selects its strongest sendable tower and clicks the weakest
// non-player tower, driving the same click path a real player uses.
type proxyPlayer struct {
	interval float64
	lastSend float64
}

func (p *proxyPlayer) act(sim *game.Sim) bool {
	if sim.Now()-p.lastSend < p.interval {
		return false
	}
	towers := sim.Towers()
	var source, target *game.Tower
	for _, t := range towers {
		if t.Owner() == game.Player && t.CanSendTroops() {
			if source == nil || t.Troops() > source.Troops() {
				source = t
			}
		}
	}
	if source == nil {
		return false
	}
	for _, t := range towers {
		if t.Owner() == game.Player {
			continue
		}
		if target == nil || t.Troops() < target.Troops() {
			target = t
		}
	}
	if target == nil {
		return false
	}
	sim.HandleClick(source.X(), source.Y())
	sim.HandleClick(target.X(), target.Y())
	p.lastSend = sim.Now()
	return true
}

func runOnce(index int, seed int64, level, ticks int, playerInterval float64) runStats {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithLevel(level),
	)
	player := &proxyPlayer{interval: playerInterval}

	stats := runStats{runIndex: index, seed: seed, firstCapture: -1}
	for i := 0; i < ticks; i++ {
		ts.RunTicks(1)
		if player.act(ts.Sim) {
			stats.playerSends++
		}
		if _, ended := ts.Sim.Winner(); ended {
			break
		}
	}

	winner, ended := ts.Sim.Winner()
	stats.resolved = ended
	stats.winner = "none"
	if ended {
		stats.winner = winner.String()
	}
	stats.ticksToEnd = ts.CurrentTick()
	captureEntries := ts.SimLog.Filter("tower", "captured")
	stats.captures = len(captureEntries)
	if len(captureEntries) > 0 {
		stats.firstCapture = captureEntries[0].Tick
	}
	stats.aiActions = len(ts.SimLog.Filter("ai", "action"))
	return stats
}

func printRun(s runStats) {
	first := "-"
	if s.firstCapture >= 0 {
		first = fmt.Sprintf("%d", s.firstCapture)
	}
	fmt.Printf("run %d seed=%d  winner=%-6s ticks=%-5d captures=%-3d first_capture=%-5s ai_actions=%-3d player_sends=%d\n",
		s.runIndex, s.seed, s.winner, s.ticksToEnd, s.captures, first, s.aiActions, s.playerSends)
}

func main() {
	var runs int
	var ticks int
	var level int
	var seedBase int64
	var seedStep int64
	var playerInterval float64

	flag.IntVar(&runs, "runs", 10, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 18000, "tick budget per run (60 ticks = 1s)")
	flag.IntVar(&level, "level", 1, "campaign level to run")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&playerInterval, "player-interval", 3.0, "seconds between proxy-player sends")
	flag.Parse()

	if runs <= 0 || ticks <= 0 {
		fmt.Println("error: -runs and -ticks must be > 0")
		return
	}
	if level < 1 || level > 3 {
		fmt.Println("error: -level must be in [1,3]")
		return
	}

	fmt.Printf("=== Headless Balance Report ===\n")
	fmt.Printf("level=%d runs=%d ticks=%d seed_base=%d seed_step=%d player_interval=%.1fs\n\n",
		level, runs, ticks, seedBase, seedStep, playerInterval)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runOnce(i+1, seed, level, ticks, playerInterval)
		all = append(all, stats)
		printRun(stats)
	}

	wins := map[string]int{}
	totalTicks, totalCaptures, resolved := 0, 0, 0
	for _, s := range all {
		wins[s.winner]++
		totalCaptures += s.captures
		if s.resolved {
			resolved++
			totalTicks += s.ticksToEnd
		}
	}
	fmt.Printf("\n--- aggregate ---\n")
	fmt.Printf("resolved %d/%d  player=%d enemy=%d unresolved=%d\n",
		resolved, runs, wins["player"], wins["enemy"], wins["none"])
	if resolved > 0 {
		fmt.Printf("mean ticks to resolution: %d\n", totalTicks/resolved)
	}
	fmt.Printf("mean captures per run: %.1f\n", float64(totalCaptures)/float64(runs))
}

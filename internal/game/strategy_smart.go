package game

import (
	"math/rand"
	"sort"
)

// Adaptive strategy tuning.
const (
	modeEvalPeriod    = 5.0  // sim seconds between tactical mode reviews
	modeStrongRatio   = 1.2  // AI/player strength ratio above which it turns aggressive
	modeWeakRatio     = 0.8  // ratio below which it turns defensive
	clusterRange      = 350.0 // px, sources this close to the target can join an assault
	opportunityFactor = 0.5  // target garrison must be under half the source's
)

// TacticalMode is the adaptive AI's current posture.
type TacticalMode int

const (
	ModeBalanced TacticalMode = iota
	ModeAggressive
	ModeDefensive
)

func (m TacticalMode) String() string {
	switch m {
	case ModeAggressive:
		return "aggressive"
	case ModeDefensive:
		return "defensive"
	default:
		return "balanced"
	}
}

// SmartStrategy adapts its posture to the relative force balance,
// reviewed every few sim seconds, and picks among coordinated assaults,
// neutral expansion, defensive consolidation and opportunistic strikes
// with mode-dependent odds.
type SmartStrategy struct {
	rng        *rand.Rand
	mode       TacticalMode
	lastEval   float64
	evaluated  bool
	maxSources int // cap on towers joining a coordinated assault
}

func NewSmartStrategy(rng *rand.Rand, maxSources int) *SmartStrategy {
	if maxSources < 1 {
		maxSources = 1
	}
	return &SmartStrategy{rng: rng, maxSources: maxSources}
}

// Mode exposes the current posture for HUD and log lines.
func (s *SmartStrategy) Mode() TacticalMode { return s.mode }

func (s *SmartStrategy) Decide(now float64, enemyTowers, all []*Tower) *Proposal {
	sources := sendable(enemyTowers)
	if len(sources) == 0 {
		return nil
	}
	players := ownedBy(all, Player)
	neutrals := ownedBy(all, Neutral)

	if !s.evaluated || now-s.lastEval >= modeEvalPeriod {
		s.reevaluate(enemyTowers, players)
		s.lastEval = now
		s.evaluated = true
	}

	// Mode-dependent plan odds: [assault, expand, consolidate, strike].
	var odds [4]float64
	switch s.mode {
	case ModeAggressive:
		odds = [4]float64{0.45, 0.15, 0.05, 0.35}
	case ModeDefensive:
		odds = [4]float64{0.05, 0.45, 0.30, 0.20}
	default:
		odds = [4]float64{0.25, 0.30, 0.15, 0.30}
	}

	// Try the rolled plan first, then fall through the rest so a dry
	// roll (e.g. expansion with no neutrals left) still acts.
	order := s.planOrder(odds)
	for _, plan := range order {
		var p *Proposal
		switch plan {
		case 0:
			p = s.coordinatedAssault(sources, players)
		case 1:
			p = s.expansion(sources, neutrals)
		case 2:
			p = s.consolidation(enemyTowers, sources, players)
		case 3:
			p = s.opportunisticStrike(sources, append(players, neutrals...))
		}
		if p != nil {
			return p
		}
	}
	return nil
}

// reevaluate recomputes the tactical mode from total force comparison.
func (s *SmartStrategy) reevaluate(enemyTowers, players []*Tower) {
	enemyStrength := float64(totalTroops(enemyTowers))
	playerStrength := float64(totalTroops(players))
	switch {
	case enemyStrength > playerStrength*modeStrongRatio:
		s.mode = ModeAggressive
	case enemyStrength < playerStrength*modeWeakRatio:
		s.mode = ModeDefensive
	default:
		s.mode = ModeBalanced
	}
}

// planOrder rolls a weighted first choice, then appends the remaining
// plans as fallbacks in fixed order.
func (s *SmartStrategy) planOrder(odds [4]float64) []int {
	roll := s.rng.Float64()
	first := 3
	acc := 0.0
	for i, w := range odds {
		acc += w
		if roll < acc {
			first = i
			break
		}
	}
	order := []int{first}
	for i := 0; i < 4; i++ {
		if i != first {
			order = append(order, i)
		}
	}
	return order
}

// coordinatedAssault masses every sendable tower near the player's
// weakest tower, capped at maxSources participants.
func (s *SmartStrategy) coordinatedAssault(sources, players []*Tower) *Proposal {
	if len(players) == 0 {
		return nil
	}
	target := weakest(players)
	var near []*Tower
	for _, src := range sources {
		if src.DistanceTo(target) <= clusterRange {
			near = append(near, src)
		}
	}
	if len(near) == 0 {
		return nil
	}
	sort.Slice(near, func(i, j int) bool {
		return near[i].DistanceTo(target) < near[j].DistanceTo(target)
	})
	if len(near) > s.maxSources {
		near = near[:s.maxSources]
	}
	return &Proposal{Sources: near, Target: target, Plan: "assault"}
}

// expansion claims the neutral tower closest to any sendable source.
func (s *SmartStrategy) expansion(sources, neutrals []*Tower) *Proposal {
	if len(neutrals) == 0 {
		return nil
	}
	var bestSource, bestTarget *Tower
	bestCost := 0.0
	for _, src := range sources {
		for _, t := range neutrals {
			// Prefer close and lightly held.
			cost := src.DistanceTo(t) + float64(t.Troops())*10.0
			if bestSource == nil || cost < bestCost {
				bestSource, bestTarget, bestCost = src, t, cost
			}
		}
	}
	return &Proposal{Sources: []*Tower{bestSource}, Target: bestTarget, Plan: "expand"}
}

// consolidation reinforces the AI's most exposed tower (weakest own
// garrison nearest the player) from its strongest rear tower.
func (s *SmartStrategy) consolidation(enemyTowers, sources, players []*Tower) *Proposal {
	if len(enemyTowers) < 2 {
		return nil
	}
	var front *Tower
	frontScore := 0.0
	for _, t := range enemyTowers {
		score := float64(t.Troops())
		if len(players) > 0 {
			score += nearestTo(t, players).DistanceTo(t) / 100.0
		}
		if front == nil || score < frontScore {
			front = t
			frontScore = score
		}
	}
	donor := (*Tower)(nil)
	for _, src := range sources {
		if src == front {
			continue
		}
		if donor == nil || src.Troops() > donor.Troops() {
			donor = src
		}
	}
	if donor == nil || front == nil {
		return nil
	}
	return &Proposal{Sources: []*Tower{donor}, Target: front, Plan: "consolidate"}
}

// opportunisticStrike hits any target holding less than half the
// garrison of some source, preferring the cheapest distance.
func (s *SmartStrategy) opportunisticStrike(sources, targets []*Tower) *Proposal {
	var bestSource, bestTarget *Tower
	bestDist := 0.0
	for _, src := range sources {
		for _, t := range targets {
			if float64(t.Troops()) >= float64(src.Troops())*opportunityFactor {
				continue
			}
			d := src.DistanceTo(t)
			if bestSource == nil || d < bestDist {
				bestSource, bestTarget, bestDist = src, t, d
			}
		}
	}
	if bestSource == nil {
		return nil
	}
	return &Proposal{Sources: []*Tower{bestSource}, Target: bestTarget, Plan: "strike"}
}

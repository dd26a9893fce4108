package game

// Strategy tuning. Weights are relative; only their ratios matter.
const (
	// Aggressive target scoring.
	aggPlayerPriority   = 2.0   // player-owned targets outrank neutral
	aggNeutralPriority  = 1.0
	aggPriorityWeight   = 30.0  // weight on ownership priority
	aggAdvantageWeight  = 1.0   // weight on troop-count advantage
	aggDistanceWeight   = 50.0  // weight on inverse distance
	aggDistanceScale    = 100.0 // px normalization for the distance term

	// Defensive thresholds.
	defMinTroops = 5 // garrison required before the defensive AI acts
)

// Proposal is a strategy's suggested order: dispatch from every source
// toward Target. Strategies only propose; the AI controller executes.
type Proposal struct {
	Sources []*Tower
	Target  *Tower
	Plan    string // short label for logs and events
}

// Strategy decides one action from the current board. enemyTowers is
// the AI-owned subset of all. A nil return means no viable action this
// tick; that is routine, not an error. now is sim time in seconds.
type Strategy interface {
	Decide(now float64, enemyTowers, all []*Tower) *Proposal
}

// sendable filters towers that could actually dispatch troops.
func sendable(towers []*Tower) []*Tower {
	var out []*Tower
	for _, t := range towers {
		if t.CanSendTroops() {
			out = append(out, t)
		}
	}
	return out
}

// ownedBy filters towers by owner.
func ownedBy(towers []*Tower, o Owner) []*Tower {
	var out []*Tower
	for _, t := range towers {
		if t.Owner() == o {
			out = append(out, t)
		}
	}
	return out
}

func strongest(towers []*Tower) *Tower {
	var best *Tower
	for _, t := range towers {
		if best == nil || t.Troops() > best.Troops() {
			best = t
		}
	}
	return best
}

func weakest(towers []*Tower) *Tower {
	var best *Tower
	for _, t := range towers {
		if best == nil || t.Troops() < best.Troops() {
			best = t
		}
	}
	return best
}

func nearestTo(anchor *Tower, towers []*Tower) *Tower {
	var best *Tower
	bestDist := 0.0
	for _, t := range towers {
		d := anchor.DistanceTo(t)
		if best == nil || d < bestDist {
			best = t
			bestDist = d
		}
	}
	return best
}

func totalTroops(towers []*Tower) int {
	sum := 0
	for _, t := range towers {
		sum += t.Troops()
	}
	return sum
}

// AggressiveStrategy attacks relentlessly: strongest source, highest
// scoring target by ownership priority, troop advantage and proximity.
type AggressiveStrategy struct{}

func (AggressiveStrategy) Decide(now float64, enemyTowers, all []*Tower) *Proposal {
	sources := sendable(enemyTowers)
	if len(sources) == 0 {
		return nil
	}
	source := strongest(sources)

	var target *Tower
	bestScore := 0.0
	for _, t := range all {
		var priority float64
		switch t.Owner() {
		case Player:
			priority = aggPlayerPriority
		case Neutral:
			priority = aggNeutralPriority
		default:
			continue
		}
		score := priority*aggPriorityWeight +
			float64(source.Troops()-t.Troops())*aggAdvantageWeight +
			aggDistanceWeight/(1.0+source.DistanceTo(t)/aggDistanceScale)
		if target == nil || score > bestScore {
			target = t
			bestScore = score
		}
	}
	if target == nil {
		return nil
	}
	return &Proposal{Sources: []*Tower{source}, Target: target, Plan: "attack"}
}

// DefensiveStrategy expands cautiously: it waits for a comfortable
// garrison, prefers claiming neutral towers, and when forced to attack
// the player it picks their weakest tower.
type DefensiveStrategy struct{}

func (DefensiveStrategy) Decide(now float64, enemyTowers, all []*Tower) *Proposal {
	var sources []*Tower
	for _, t := range enemyTowers {
		if t.Troops() > defMinTroops {
			sources = append(sources, t)
		}
	}
	if len(sources) == 0 {
		return nil
	}

	if neutrals := ownedBy(all, Neutral); len(neutrals) > 0 {
		var bestSource, bestTarget *Tower
		bestDist := 0.0
		for _, s := range sources {
			for _, t := range neutrals {
				d := s.DistanceTo(t)
				if bestSource == nil || d < bestDist {
					bestSource, bestTarget, bestDist = s, t, d
				}
			}
		}
		return &Proposal{Sources: []*Tower{bestSource}, Target: bestTarget, Plan: "expand"}
	}

	if players := ownedBy(all, Player); len(players) > 0 {
		target := weakest(players)
		source := nearestTo(target, sources)
		return &Proposal{Sources: []*Tower{source}, Target: target, Plan: "strike"}
	}
	return nil
}

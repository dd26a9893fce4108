package game

import "math/rand"

// Action intervals per difficulty, in sim seconds.
const (
	easyActionInterval   = 4.0
	mediumActionInterval = 2.5
	hardActionInterval   = 1.5

	smartAssaultCap = 3 // towers the adaptive AI may mass per assault
)

// Difficulty selects the AI's strategy and action rate.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Dispatch records one executed send.
type Dispatch struct {
	Source *Tower
	Target *Tower
	Count  int
}

// AIResult describes everything the AI dispatched in one action. The
// controller turns each dispatch into spawn-queue entries.
type AIResult struct {
	Plan       string
	Dispatches []Dispatch
	Total      int
}

// AIStats tracks the AI's performance over a level.
type AIStats struct {
	Actions  int
	Captures int // towers gained
	Losses   int // towers lost
}

// AIController owns a strategy and an action-rate gate. It executes
// proposed actions against the entity model; the strategy itself never
// mutates anything.
type AIController struct {
	difficulty Difficulty
	strategy   Strategy
	interval   float64
	lastAction float64 // sim time of the last successful action
	rng        *rand.Rand
	events     *Dispatcher
	stats      AIStats
}

// NewAIController builds a controller and subscribes it to capture
// events for its win/loss bookkeeping.
func NewAIController(d Difficulty, rng *rand.Rand, events *Dispatcher) *AIController {
	c := &AIController{rng: rng, events: events}
	c.SetDifficulty(d)
	if events != nil {
		events.Subscribe(KindTowerCaptured, func(e Event) {
			cap := e.(TowerCaptured)
			if cap.New == Enemy {
				c.stats.Captures++
			}
			if cap.Old == Enemy {
				c.stats.Losses++
			}
		})
	}
	return c
}

// SetDifficulty swaps in the strategy and rate for the tier:
// easy plays defensively and slowly, medium adapts, hard attacks fast.
func (c *AIController) SetDifficulty(d Difficulty) {
	c.difficulty = d
	switch d {
	case Easy:
		c.strategy = DefensiveStrategy{}
		c.interval = easyActionInterval
	case Hard:
		c.strategy = AggressiveStrategy{}
		c.interval = hardActionInterval
	default:
		c.strategy = NewSmartStrategy(c.rng, smartAssaultCap)
		c.interval = mediumActionInterval
	}
}

func (c *AIController) Difficulty() Difficulty { return c.difficulty }
func (c *AIController) Stats() AIStats         { return c.stats }

// Mode reports the adaptive strategy's posture, or ModeBalanced for
// the fixed strategies.
func (c *AIController) Mode() TacticalMode {
	if s, ok := c.strategy.(*SmartStrategy); ok {
		return s.Mode()
	}
	return ModeBalanced
}

// ShouldAct is the elapsed-sim-time gate, measured from level start
// or the last successful action.
func (c *AIController) ShouldAct(now float64) bool {
	return now-c.lastAction >= c.interval
}

// ExecuteAction consults the strategy and, if it proposes something,
// dispatches from every source that can still send. The gate resets
// only when at least one dispatch succeeded, so a dry proposal retries
// next tick instead of stalling a full interval.
func (c *AIController) ExecuteAction(now float64, towers []*Tower) *AIResult {
	if !c.ShouldAct(now) {
		return nil
	}
	enemyTowers := ownedBy(towers, Enemy)
	if len(enemyTowers) == 0 {
		return nil
	}
	proposal := c.strategy.Decide(now, enemyTowers, towers)
	if proposal == nil || proposal.Target == nil {
		return nil
	}

	res := &AIResult{Plan: proposal.Plan}
	seen := make(map[*Tower]bool)
	for _, src := range proposal.Sources {
		if src == nil || seen[src] || src == proposal.Target {
			continue
		}
		seen[src] = true
		if !src.CanSendTroops() {
			continue
		}
		n := src.SendTroops(proposal.Target)
		if n <= 0 {
			continue
		}
		res.Dispatches = append(res.Dispatches, Dispatch{Source: src, Target: proposal.Target, Count: n})
		res.Total += n
	}
	if res.Total == 0 {
		return nil
	}

	c.lastAction = now
	c.stats.Actions++
	if c.events != nil {
		c.events.Dispatch(AIAction{Plan: res.Plan, Dispatches: len(res.Dispatches), Total: res.Total})
	}
	return res
}

// ResetStats clears per-level bookkeeping and restarts the gate.
func (c *AIController) ResetStats() {
	c.stats = AIStats{}
	c.lastAction = 0
}

package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// clickHitboxScale enlarges tower hitboxes for forgiving clicks.
const clickHitboxScale = 1.5

// State is the simulation's top-level phase.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateLevelComplete
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level-complete"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// GameStats is a point-in-time summary of the running game.
type GameStats struct {
	Duration      float64 // sim seconds since level start
	PlayerActions int
	Battles       int
	PlayerTowers  int
	EnemyTowers   int
	NeutralTowers int
	ActiveTroops  int
	PendingSpawns int
	AI            AIStats
}

// Sim owns the whole simulation: towers, troops in flight, the spawn
// queue, the AI controller and the campaign state. It is explicitly
// constructed and passed around; nothing in the package is global, so
// independent instances can run side by side.
type Sim struct {
	towers   []*Tower
	troops   []*Troop
	spawn    *SpawnQueue
	ai       *AIController
	levels   *LevelManager
	events   *Dispatcher
	log      *SimLog
	rng      *rand.Rand
	session  string
	state    State
	selected *Tower
	winner   Owner
	ended    bool // win latch: the win event fires at most once per game
	aiOn     bool
	now      float64 // sim seconds since level start
	tick     int

	playerActions int
	battles       int
}

// NewSim builds a simulation seeded for deterministic runs and starts
// level 1.
func NewSim(seed int64) *Sim {
	return newSim(seed, NewSimLog(false))
}

func newSim(seed int64, log *SimLog) *Sim {
	s := &Sim{
		spawn:   NewSpawnQueue(),
		levels:  NewLevelManager(),
		events:  NewDispatcher(),
		log:     log,
		rng:     rand.New(rand.NewSource(seed)), // #nosec G404 -- game simulation
		session: uuid.New().String(),
		aiOn:    true,
	}
	s.ai = NewAIController(s.levels.Config().Difficulty, s.rng, s.events)

	// A capture is observed as the tower's own owner change and echoed
	// as the controller-level capture event.
	s.events.Subscribe(KindOwnerChanged, func(e Event) {
		oc := e.(OwnerChanged)
		s.events.Dispatch(TowerCaptured{Tower: oc.Tower, Old: oc.Old, New: oc.New})
	})
	s.events.Subscribe(KindTowerCaptured, func(e Event) {
		cap := e.(TowerCaptured)
		s.log.Add(s.tick, s.label(cap.Tower), "tower", "captured",
			fmt.Sprintf("%s → %s (%d troops)", cap.Old, cap.New, cap.Tower.Troops()),
			float64(cap.Tower.Troops()))
	})
	s.events.Subscribe(KindTroopsSent, func(e Event) {
		ts := e.(TroopsSent)
		s.log.Add(s.tick, s.label(ts.Source), "tower", "sent",
			fmt.Sprintf("%d troops toward (%.0f,%.0f)", ts.Count, ts.Target.X(), ts.Target.Y()),
			float64(ts.Count))
	})
	s.events.Subscribe(KindAIAction, func(e Event) {
		a := e.(AIAction)
		s.log.Add(s.tick, "--", "ai", "action",
			fmt.Sprintf("%s: %d troops from %d towers", a.Plan, a.Total, a.Dispatches),
			float64(a.Total))
	})

	s.initLevel()
	return s
}

// Events exposes the dispatcher so view layers can subscribe.
func (s *Sim) Events() *Dispatcher { return s.events }

func (s *Sim) State() State          { return s.state }
func (s *Sim) Now() float64          { return s.now }
func (s *Sim) Tick() int             { return s.tick }
func (s *Sim) Selected() *Tower      { return s.selected }
func (s *Sim) Levels() *LevelManager { return s.levels }
func (s *Sim) AI() *AIController     { return s.ai }
func (s *Sim) Log() *SimLog          { return s.log }
func (s *Sim) SessionID() string     { return s.session }

// Winner returns the winning owner and whether the game has resolved.
func (s *Sim) Winner() (Owner, bool) { return s.winner, s.ended }

// Towers returns a copy of the tower list. The towers themselves are
// shared; callers must not mutate them.
func (s *Sim) Towers() []*Tower {
	out := make([]*Tower, len(s.towers))
	copy(out, s.towers)
	return out
}

// Troops returns a copy of the in-flight troop list.
func (s *Sim) Troops() []*Troop {
	out := make([]*Troop, len(s.troops))
	copy(out, s.troops)
	return out
}

// Stats summarizes the running game.
func (s *Sim) Stats() GameStats {
	st := GameStats{
		Duration:      s.now,
		PlayerActions: s.playerActions,
		Battles:       s.battles,
		ActiveTroops:  len(s.troops),
		PendingSpawns: s.spawn.Len(),
		AI:            s.ai.Stats(),
	}
	for _, t := range s.towers {
		switch t.Owner() {
		case Player:
			st.PlayerTowers++
		case Enemy:
			st.EnemyTowers++
		default:
			st.NeutralTowers++
		}
	}
	return st
}

// label names a tower by its index for log lines.
func (s *Sim) label(t *Tower) string {
	for i, other := range s.towers {
		if other == t {
			return fmt.Sprintf("T%d", i)
		}
	}
	return "--"
}

// mustTower wraps NewTower for the static level tables, whose values
// are valid by construction.
func mustTower(x, y float64, owner Owner, troops int) *Tower {
	t, err := NewTower(x, y, owner, troops)
	if err != nil {
		panic(err)
	}
	return t
}

// initLevel rebuilds the board from the current level config. Towers
// are destroyed and recreated wholesale; nothing survives a restart.
func (s *Sim) initLevel() {
	cfg := s.levels.Config()

	s.towers = nil
	s.troops = nil
	s.spawn.Reset()
	s.selected = nil
	s.winner = Neutral
	s.ended = false
	s.now = 0
	s.tick = 0
	s.playerActions = 0
	s.battles = 0

	s.ai.SetDifficulty(cfg.Difficulty)
	s.ai.ResetStats()

	for i := 0; i < cfg.PlayerTowers && i < len(playerPositions); i++ {
		p := playerPositions[i]
		s.towers = append(s.towers, mustTower(p[0], p[1], Player, cfg.PlayerTroops))
	}
	for i := 0; i < cfg.EnemyTowers && i < len(enemyPositions); i++ {
		p := enemyPositions[i]
		s.towers = append(s.towers, mustTower(p[0], p[1], Enemy, cfg.EnemyTroops))
	}
	shuffled := make([][2]float64, len(neutralPositions))
	copy(shuffled, neutralPositions)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	for i := 0; i < cfg.NeutralTowers && i < len(shuffled); i++ {
		p := shuffled[i]
		s.towers = append(s.towers, mustTower(p[0], p[1], Neutral, cfg.NeutralTroops))
	}
	for _, t := range s.towers {
		t.setEvents(s.events)
	}

	s.log.Add(s.tick, "--", "state", "level_started", cfg.Name, float64(s.levels.Current()))
	s.events.Dispatch(LevelStarted{Level: s.levels.Current(), Name: cfg.Name})
}

// setTowers replaces the board with a synthetic tower set. Test-harness
// hook; wires the towers into the dispatcher like initLevel does.
func (s *Sim) setTowers(towers []*Tower) {
	s.towers = towers
	for _, t := range s.towers {
		t.setEvents(s.events)
	}
}

// Update advances one tick. The phase order is fixed: spawn release,
// growth, movement, tower-arrival resolution, in-flight combat, AI,
// win check. Arrivals resolve before in-flight combat so strength at
// the walls is credited to the assault rather than consumed mid-air.
func (s *Sim) Update(dt float64) {
	if s.state != StatePlaying {
		return
	}
	s.tick++
	s.now += dt

	for _, tr := range s.spawn.Release(s.now) {
		s.troops = append(s.troops, tr)
		s.log.AddVerbose(s.tick, "--", "spawn", "release",
			fmt.Sprintf("%s unit toward (%.0f,%.0f)", tr.Owner(), tr.tx, tr.ty), 1)
	}

	for _, t := range s.towers {
		t.Update(dt)
	}
	for _, tr := range s.troops {
		tr.Move(dt)
	}

	var battles int
	s.troops, battles = applyArrivals(s.towers, s.troops)
	s.battles += battles

	before := len(s.troops)
	s.troops = resolveTroopCombat(s.troops)
	if lost := before - len(s.troops); lost > 0 {
		s.log.Add(s.tick, "--", "combat", "clash",
			fmt.Sprintf("%d troop groups destroyed in flight", lost), float64(lost))
	}

	if s.aiOn {
		if res := s.ai.ExecuteAction(s.now, s.towers); res != nil {
			for _, d := range res.Dispatches {
				s.spawn.Enqueue(s.now, d.Source, d.Target, Enemy, d.Count)
			}
		}
	}

	s.checkWin()
}

// HandleClick performs hit-testing and either selects a sendable
// player tower or, with one selected, orders a send at the clicked
// tower (any owner) and deselects.
func (s *Sim) HandleClick(x, y float64) {
	if s.state != StatePlaying {
		return
	}
	var clicked *Tower
	for _, t := range s.towers {
		if t.ContainsPoint(x, y, clickHitboxScale) {
			clicked = t
			break
		}
	}
	if clicked == nil {
		s.deselect()
		return
	}
	if s.selected == nil {
		if clicked.Owner() == Player && clicked.CanSendTroops() {
			s.selected = clicked
			clicked.SetSelected(true)
		}
		return
	}
	if clicked != s.selected {
		if n := s.selected.SendTroops(clicked); n > 0 {
			s.spawn.Enqueue(s.now, s.selected, clicked, Player, n)
			s.playerActions++
		}
	}
	s.deselect()
}

func (s *Sim) deselect() {
	if s.selected != nil {
		s.selected.SetSelected(false)
		s.selected = nil
	}
}

// TogglePause flips between Playing and Paused. Pausing skips the
// entire update body; the entity and queue state freezes as-is.
func (s *Sim) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
		s.events.Dispatch(Paused{})
	case StatePaused:
		s.state = StatePlaying
		s.events.Dispatch(Resumed{})
	}
}

// AdvanceLevel starts the next level after a LevelComplete. The level
// manager already advanced when the win was detected.
func (s *Sim) AdvanceLevel() {
	if s.state != StateLevelComplete {
		return
	}
	s.initLevel()
	s.state = StatePlaying
}

// Restart rebuilds the current level from scratch. After a defeat the
// level manager has been reset, so this restarts the campaign.
func (s *Sim) Restart() {
	s.initLevel()
	s.state = StatePlaying
}

// checkWin evaluates the win condition once per game: a side wins when
// the other holds no towers. The ended latch guarantees the outcome
// events fire exactly once.
func (s *Sim) checkWin() {
	if s.ended {
		return
	}
	playerTowers, enemyTowers := 0, 0
	for _, t := range s.towers {
		switch t.Owner() {
		case Player:
			playerTowers++
		case Enemy:
			enemyTowers++
		}
	}

	var winner Owner
	switch {
	case playerTowers > 0 && enemyTowers == 0:
		winner = Player
	case enemyTowers > 0 && playerTowers == 0:
		winner = Enemy
	default:
		return
	}

	s.ended = true
	s.winner = winner
	s.log.Add(s.tick, "--", "win", "resolved", winner.String(), 0)

	if winner == Player {
		level := s.levels.Current()
		if s.levels.CompleteCurrent() {
			s.state = StateLevelComplete
			s.events.Dispatch(LevelComplete{Level: level, HasNext: true})
		} else {
			s.state = StateGameOver
			s.events.Dispatch(AllLevelsComplete{})
		}
		return
	}

	s.levels.ResetToFirst()
	s.state = StateGameOver
	s.events.Dispatch(GameOver{Winner: winner, Duration: s.now})
}

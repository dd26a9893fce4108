package game

// EventKind identifies one of the closed set of simulation events.
type EventKind int

const (
	KindOwnerChanged EventKind = iota
	KindTroopsChanged
	KindTowerCaptured
	KindTroopsSent
	KindAIAction
	KindLevelStarted
	KindLevelComplete
	KindAllLevelsComplete
	KindGameOver
	KindPaused
	KindResumed
	eventKindCount
)

// Event is implemented by every payload struct. Subscribers switch on
// Kind (or subscribe per-kind) and type-assert to the matching payload.
type Event interface {
	Kind() EventKind
}

// OwnerChanged fires when a tower changes hands.
type OwnerChanged struct {
	Tower    *Tower
	Old, New Owner
}

func (OwnerChanged) Kind() EventKind { return KindOwnerChanged }

// TroopsChanged fires on every tower garrison change (growth, send,
// reinforcement, damage).
type TroopsChanged struct {
	Tower    *Tower
	Old, New int
}

func (TroopsChanged) Kind() EventKind { return KindTroopsChanged }

// TowerCaptured is the controller-level echo of OwnerChanged, fired once
// per capture for view layers and AI bookkeeping.
type TowerCaptured struct {
	Tower    *Tower
	Old, New Owner
}

func (TowerCaptured) Kind() EventKind { return KindTowerCaptured }

// TroopsSent fires when a tower dispatches part of its garrison.
type TroopsSent struct {
	Source *Tower
	Target *Tower
	Count  int
}

func (TroopsSent) Kind() EventKind { return KindTroopsSent }

// AIAction fires after the AI controller successfully dispatches troops.
type AIAction struct {
	Plan       string
	Dispatches int
	Total      int
}

func (AIAction) Kind() EventKind { return KindAIAction }

// LevelStarted fires when a level's towers have been (re)built.
type LevelStarted struct {
	Level int
	Name  string
}

func (LevelStarted) Kind() EventKind { return KindLevelStarted }

// LevelComplete fires when the player clears a level that has a successor.
type LevelComplete struct {
	Level   int
	HasNext bool
}

func (LevelComplete) Kind() EventKind { return KindLevelComplete }

// AllLevelsComplete fires when the player clears the final level.
type AllLevelsComplete struct{}

func (AllLevelsComplete) Kind() EventKind { return KindAllLevelsComplete }

// GameOver fires when the enemy eliminates the player.
type GameOver struct {
	Winner   Owner
	Duration float64 // sim seconds since level start
}

func (GameOver) Kind() EventKind { return KindGameOver }

// Paused / Resumed bracket the pause toggle.
type Paused struct{}

func (Paused) Kind() EventKind { return KindPaused }

type Resumed struct{}

func (Resumed) Kind() EventKind { return KindResumed }

// Handler receives dispatched events.
type Handler func(Event)

// Dispatcher fans events out to per-kind subscribers. Dispatch is
// synchronous; handlers run on the simulation goroutine.
type Dispatcher struct {
	handlers [eventKindCount][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers a handler for one event kind.
func (d *Dispatcher) Subscribe(kind EventKind, h Handler) {
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Dispatch delivers the event to every subscriber of its kind.
func (d *Dispatcher) Dispatch(e Event) {
	for _, h := range d.handlers[e.Kind()] {
		h(e)
	}
}

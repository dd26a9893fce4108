package game

import (
	"fmt"
	"math"
)

const (
	towerRadius     = 30.0 // px
	towerMaxTroops  = 50   // garrison cap
	towerGrowthRate = 1    // troops gained per growth period
	growthPeriod    = 1.0  // seconds between growth steps
)

// Tower is a stationary base. Its garrison grows over time (unless
// neutral), can be halved off toward another tower, and changes hands
// when an assault meets or exceeds it.
type Tower struct {
	x, y      float64
	owner     Owner
	troops    int
	radius    float64
	growth    int
	growthAcc float64 // fractional seconds toward the next growth step
	selected  bool
	events    *Dispatcher // may be nil for standalone towers
}

// NewTower validates and builds a tower. A bad owner tag or negative
// garrison is a caller bug, rejected outright rather than clamped.
func NewTower(x, y float64, owner Owner, troops int) (*Tower, error) {
	if !owner.valid() {
		return nil, fmt.Errorf("tower at (%.0f,%.0f): invalid owner %d", x, y, int(owner))
	}
	if troops < 0 {
		return nil, fmt.Errorf("tower at (%.0f,%.0f): negative troops %d", x, y, troops)
	}
	if troops > towerMaxTroops {
		troops = towerMaxTroops
	}
	return &Tower{
		x:      x,
		y:      y,
		owner:  owner,
		troops: troops,
		radius: towerRadius,
		growth: towerGrowthRate,
	}, nil
}

func (t *Tower) X() float64      { return t.x }
func (t *Tower) Y() float64      { return t.y }
func (t *Tower) Owner() Owner    { return t.owner }
func (t *Tower) Troops() int     { return t.troops }
func (t *Tower) Radius() float64 { return t.radius }
func (t *Tower) Selected() bool  { return t.selected }

func (t *Tower) SetSelected(v bool) { t.selected = v }

// setEvents wires the tower into the simulation's dispatcher.
func (t *Tower) setEvents(d *Dispatcher) { t.events = d }

func (t *Tower) emit(e Event) {
	if t.events != nil {
		t.events.Dispatch(e)
	}
}

// setTroops clamps to [0, towerMaxTroops] and emits TroopsChanged.
func (t *Tower) setTroops(n int) {
	if n < 0 {
		n = 0
	}
	if n > towerMaxTroops {
		n = towerMaxTroops
	}
	if n == t.troops {
		return
	}
	old := t.troops
	t.troops = n
	t.emit(TroopsChanged{Tower: t, Old: old, New: n})
}

func (t *Tower) setOwner(o Owner) {
	if o == t.owner {
		return
	}
	old := t.owner
	t.owner = o
	t.emit(OwnerChanged{Tower: t, Old: old, New: o})
}

// CanGrow reports whether the garrison ticks upward. Neutral towers
// never grow.
func (t *Tower) CanGrow() bool {
	return t.owner != Neutral && t.troops < towerMaxTroops
}

// Update advances the growth clock. One growth step lands per elapsed
// growth period regardless of tick size.
func (t *Tower) Update(dt float64) {
	t.growthAcc += dt
	for t.growthAcc >= growthPeriod {
		t.growthAcc -= growthPeriod
		if t.CanGrow() {
			t.setTroops(t.troops + t.growth)
		}
	}
}

// CanSendTroops reports whether a send could dispatch anything.
// Requires more than one defender so the source is never emptied.
func (t *Tower) CanSendTroops() bool {
	return t.troops > 1 && t.owner != Neutral
}

// SendTroops removes half the garrison (at least one unit, never the
// last one) and returns the count dispatched. Returns 0 when the tower
// cannot send.
func (t *Tower) SendTroops(target *Tower) int {
	if !t.CanSendTroops() {
		return 0
	}
	toSend := t.troops / 2
	if toSend < 1 {
		toSend = 1
	}
	if toSend > t.troops-1 {
		toSend = t.troops - 1
	}
	if toSend <= 0 {
		return 0
	}
	t.setTroops(t.troops - toSend)
	t.emit(TroopsSent{Source: t, Target: target, Count: toSend})
	return toSend
}

// ReceiveAttack applies an arriving force. Same-owner strength
// reinforces. Otherwise the tower is captured when the attack meets or
// exceeds the garrison (ties capture); the survivor count becomes the
// difference. Returns true on capture.
func (t *Tower) ReceiveAttack(amount int, attacker Owner) bool {
	if amount <= 0 {
		return false
	}
	if attacker == t.owner {
		t.setTroops(t.troops + amount)
		return false
	}
	if amount >= t.troops {
		remaining := amount - t.troops
		t.setOwner(attacker)
		t.setTroops(remaining)
		return true
	}
	t.setTroops(t.troops - amount)
	return false
}

// DistanceTo returns the center distance to another tower.
func (t *Tower) DistanceTo(other *Tower) float64 {
	return math.Hypot(other.x-t.x, other.y-t.y)
}

// ContainsPoint reports whether (x,y) falls inside the tower's hitbox
// scaled by the given factor (>1 for forgiving clicks).
func (t *Tower) ContainsPoint(x, y, scale float64) bool {
	return math.Hypot(x-t.x, y-t.y) <= t.radius*scale
}

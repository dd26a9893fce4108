package game

import (
	"fmt"
	"math"
)

const (
	troopSpeed       = 100.0 // base px per second, scaled per owner
	troopRadius      = 5.0   // px
	slowDownZone     = 20.0  // px, progressive deceleration starts here
	minSlowdownFrac  = 0.3   // floor on the deceleration multiplier
	snapEpsilon      = 2.0   // px, snap straight onto the target inside this
	arriveThreshold  = 5.0   // px, counts as "reached target"
	troopCombatGap   = 10.0  // px buffer added to radii for collisions
)

// Troop is a mobile unit group heading in a straight line toward a
// fixed coordinate. It remembers only the coordinate, not the tower:
// which tower it hits is resolved by proximity at arrival time.
type Troop struct {
	x, y   float64
	tx, ty float64
	owner  Owner
	count  int
	radius float64
	speed  float64 // owner-scaled px per second
}

// NewTroop validates and builds a troop group. Zero or negative counts
// and bad owner tags are caller bugs.
func NewTroop(x, y, tx, ty float64, owner Owner, count int) (*Troop, error) {
	if !owner.valid() {
		return nil, fmt.Errorf("troop at (%.0f,%.0f): invalid owner %d", x, y, int(owner))
	}
	if count <= 0 {
		return nil, fmt.Errorf("troop at (%.0f,%.0f): count must be positive, got %d", x, y, count)
	}
	return &Troop{
		x:      x,
		y:      y,
		tx:     tx,
		ty:     ty,
		owner:  owner,
		count:  count,
		radius: troopRadius,
		speed:  troopSpeed * ownerSpeedMult[owner],
	}, nil
}

func (tr *Troop) X() float64                 { return tr.x }
func (tr *Troop) Y() float64                 { return tr.y }
func (tr *Troop) Owner() Owner               { return tr.owner }
func (tr *Troop) Count() int                 { return tr.count }
func (tr *Troop) Radius() float64            { return tr.radius }
func (tr *Troop) Speed() float64             { return tr.speed }
func (tr *Troop) Target() (float64, float64) { return tr.tx, tr.ty }

// DistanceToTarget returns the straight-line distance left to travel.
func (tr *Troop) DistanceToTarget() float64 {
	return math.Hypot(tr.tx-tr.x, tr.ty-tr.y)
}

// Move advances toward the target. The step shrinks inside the
// slow-down zone to prevent overshoot, and the troop snaps exactly onto
// the target once within a small epsilon.
func (tr *Troop) Move(dt float64) {
	dist := tr.DistanceToTarget()
	if dist <= snapEpsilon {
		tr.x, tr.y = tr.tx, tr.ty
		return
	}
	step := tr.speed * dt
	if dist < slowDownZone {
		frac := dist / slowDownZone
		if frac < minSlowdownFrac {
			frac = minSlowdownFrac
		}
		step *= frac
	}
	if step >= dist {
		tr.x, tr.y = tr.tx, tr.ty
		return
	}
	tr.x += (tr.tx - tr.x) / dist * step
	tr.y += (tr.ty - tr.y) / dist * step
}

// ReachedTarget is deliberately looser than the snap epsilon so
// discrete time steps cannot carry a troop across the threshold
// without a hit registering.
func (tr *Troop) ReachedTarget() bool {
	return tr.DistanceToTarget() <= arriveThreshold
}

// DistanceTo returns the distance to another troop.
func (tr *Troop) DistanceTo(other *Troop) float64 {
	return math.Hypot(other.x-tr.x, other.y-tr.y)
}

// CollidesWith reports whether two opposing troops are close enough to
// fight. Same-owner troops never collide.
func (tr *Troop) CollidesWith(other *Troop) bool {
	if tr.owner == other.owner {
		return false
	}
	return tr.DistanceTo(other) <= tr.radius+other.radius+troopCombatGap
}

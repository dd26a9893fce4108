package game

const (
	spawnSpacing   = 0.12 // seconds between consecutive unit releases
	spawnTickLimit = 3    // units materialized per tick, caps frame spikes
)

// pendingUnit is one scheduled single-unit release.
type pendingUnit struct {
	x, y   float64 // origin
	tx, ty float64 // destination
	owner  Owner
	due    float64 // sim time at which the unit goes live
}

// spawnKey groups scheduled units by origin tower and owner so
// overlapping sends from one tower chain instead of stacking at t=0.
type spawnKey struct {
	x, y  float64
	owner Owner
}

// SpawnQueue staggers a send into a stream of single-unit troops.
// A send of N enqueues N entries spaced spawnSpacing apart, continuing
// from the latest entry already scheduled for the same origin+owner.
type SpawnQueue struct {
	pending []pendingUnit
	tail    map[spawnKey]float64 // latest scheduled due per origin+owner
}

func NewSpawnQueue() *SpawnQueue {
	return &SpawnQueue{tail: make(map[spawnKey]float64)}
}

// Enqueue schedules count single-unit releases from source toward
// target, starting at now or just after the origin's current tail.
func (q *SpawnQueue) Enqueue(now float64, source, target *Tower, owner Owner, count int) {
	if count <= 0 {
		return
	}
	key := spawnKey{x: source.X(), y: source.Y(), owner: owner}
	start := now
	if tail, ok := q.tail[key]; ok && tail+spawnSpacing > start {
		start = tail + spawnSpacing
	}
	for i := 0; i < count; i++ {
		q.pending = append(q.pending, pendingUnit{
			x: source.X(), y: source.Y(),
			tx: target.X(), ty: target.Y(),
			owner: owner,
			due:   start + float64(i)*spawnSpacing,
		})
	}
	q.tail[key] = start + float64(count-1)*spawnSpacing
}

// Release materializes due entries as live troops, oldest first, at
// most spawnTickLimit per call. Advancing time in one large step or
// many small ones yields the same total troops (modulo extra ticks for
// the per-tick cap).
func (q *SpawnQueue) Release(now float64) []*Troop {
	var out []*Troop
	remaining := q.pending[:0]
	for _, p := range q.pending {
		if p.due <= now && len(out) < spawnTickLimit {
			tr, err := NewTroop(p.x, p.y, p.tx, p.ty, p.owner, 1)
			if err != nil {
				continue // unreachable: queue entries are validated sends
			}
			out = append(out, tr)
			continue
		}
		remaining = append(remaining, p)
	}
	q.pending = remaining
	return out
}

// Len reports the number of units still waiting.
func (q *SpawnQueue) Len() int { return len(q.pending) }

// Reset drops all scheduled releases.
func (q *SpawnQueue) Reset() {
	q.pending = nil
	q.tail = make(map[spawnKey]float64)
}

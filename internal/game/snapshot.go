package game

// Read-only projections of the simulation. Snapshot feeds the view
// layer each frame; SaveRecord is the persistence surface — the core
// exposes the fields, external code owns format and storage.

// TowerView is one tower as the view layer sees it.
type TowerView struct {
	X, Y     float64
	Owner    Owner
	Troops   int
	Radius   float64
	Selected bool
}

// TroopView is one in-flight troop group.
type TroopView struct {
	X, Y             float64
	Owner            Owner
	Count            int
	TargetX, TargetY float64
}

// Snapshot is a per-frame copy of everything drawable.
type Snapshot struct {
	State     State
	Level     int
	LevelName string
	Winner    Owner
	Ended     bool
	Towers    []TowerView
	Troops    []TroopView
}

// Snapshot copies the current drawable state. The copy cost is the
// point: the caller can hold it across the frame without touching live
// entities.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		State:     s.state,
		Level:     s.levels.Current(),
		LevelName: s.levels.Config().Name,
		Winner:    s.winner,
		Ended:     s.ended,
		Towers:    make([]TowerView, 0, len(s.towers)),
		Troops:    make([]TroopView, 0, len(s.troops)),
	}
	for _, t := range s.towers {
		snap.Towers = append(snap.Towers, TowerView{
			X: t.X(), Y: t.Y(),
			Owner:    t.Owner(),
			Troops:   t.Troops(),
			Radius:   t.Radius(),
			Selected: t.Selected(),
		})
	}
	for _, tr := range s.troops {
		tx, ty := tr.Target()
		snap.Troops = append(snap.Troops, TroopView{
			X: tr.X(), Y: tr.Y(),
			Owner: tr.Owner(),
			Count: tr.Count(),
			TargetX: tx, TargetY: ty,
		})
	}
	return snap
}

// TowerRecord is the serializable state of one tower.
type TowerRecord struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Owner  string  `json:"owner"`
	Troops int     `json:"troops"`
}

// TroopRecord is the serializable state of one in-flight troop.
type TroopRecord struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Owner   string  `json:"owner"`
	Count   int     `json:"count"`
	TargetX float64 `json:"target_x"`
	TargetY float64 `json:"target_y"`
	Alive   bool    `json:"alive"`
}

// SaveRecord captures session continuity state for external storage.
type SaveRecord struct {
	SessionID string        `json:"session_id"`
	Level     int           `json:"level"`
	Towers    []TowerRecord `json:"towers"`
	Troops    []TroopRecord `json:"troops"`
}

// SaveRecord builds the persistence view of the running game.
func (s *Sim) SaveRecord() SaveRecord {
	rec := SaveRecord{
		SessionID: s.session,
		Level:     s.levels.Current(),
		Towers:    make([]TowerRecord, 0, len(s.towers)),
		Troops:    make([]TroopRecord, 0, len(s.troops)),
	}
	for _, t := range s.towers {
		rec.Towers = append(rec.Towers, TowerRecord{
			X: t.X(), Y: t.Y(),
			Owner:  t.Owner().String(),
			Troops: t.Troops(),
		})
	}
	for _, tr := range s.troops {
		tx, ty := tr.Target()
		rec.Troops = append(rec.Troops, TroopRecord{
			X: tr.X(), Y: tr.Y(),
			Owner:   tr.Owner().String(),
			Count:   tr.Count(),
			TargetX: tx, TargetY: ty,
			Alive: tr.Count() > 0,
		})
	}
	return rec
}

package game

// resolveTroopPair settles a collision between two opposing troop
// groups: the smaller group is wiped out, the larger survives with the
// difference. Equal counts annihilate both. Returns the survivor, or
// nil when both are destroyed.
func resolveTroopPair(a, b *Troop) *Troop {
	switch {
	case a.count > b.count:
		a.count -= b.count
		b.count = 0
		return a
	case b.count > a.count:
		b.count -= a.count
		a.count = 0
		return b
	default:
		a.count = 0
		b.count = 0
		return nil
	}
}

// resolveTroopCombat runs one pass of pairwise collision resolution.
// Each troop fights at most once per tick: the first colliding pair
// found for a troop is resolved and the scan moves on. Returns the
// troops still alive.
func resolveTroopCombat(troops []*Troop) []*Troop {
	dead := make(map[*Troop]bool)
	for i := 0; i < len(troops); i++ {
		a := troops[i]
		if dead[a] {
			continue
		}
		for j := i + 1; j < len(troops); j++ {
			b := troops[j]
			if dead[b] {
				continue
			}
			if !a.CollidesWith(b) {
				continue
			}
			survivor := resolveTroopPair(a, b)
			if survivor != a {
				dead[a] = true
			}
			if survivor != b {
				dead[b] = true
			}
			break // one fight per troop per tick
		}
	}
	alive := troops[:0]
	for _, tr := range troops {
		if !dead[tr] {
			alive = append(alive, tr)
		}
	}
	return alive
}

// towerAssault is the per-tower accumulation of troops arriving within
// the same tick, keyed by attacker owner.
type towerAssault struct {
	strength [3]int // indexed by Owner
}

// applyArrivals removes troops that reached their target this tick and
// applies their strength to the tower found at the target coordinate.
// Arrivals are aggregated per tower first: when Player and Enemy forces
// land simultaneously they cancel pairwise, and only the net remainder
// hits the garrison. Returns the troops still in flight and the number
// of tower assaults resolved.
//
// This runs before the in-flight combat pass so that strength already
// at the walls is credited to the assault, not consumed mid-air.
func applyArrivals(towers []*Tower, troops []*Troop) ([]*Troop, int) {
	var arrived []*Troop
	inFlight := troops[:0]
	for _, tr := range troops {
		if tr.ReachedTarget() {
			arrived = append(arrived, tr)
		} else {
			inFlight = append(inFlight, tr)
		}
	}
	if len(arrived) == 0 {
		return inFlight, 0
	}

	assaults := make(map[*Tower]*towerAssault)
	for _, tr := range arrived {
		tower := towerAt(towers, tr.tx, tr.ty)
		if tower == nil {
			continue // target vanished from under the troop; it disbands
		}
		a := assaults[tower]
		if a == nil {
			a = &towerAssault{}
			assaults[tower] = a
		}
		a.strength[tr.owner] += tr.count
	}

	battles := 0
	for tower, a := range assaults {
		player, enemy := a.strength[Player], a.strength[Enemy]
		switch {
		case player > 0 && enemy > 0:
			// Opposing forces at the same walls cancel pairwise; the
			// larger side's remainder carries the assault.
			if player > enemy {
				tower.ReceiveAttack(player-enemy, Player)
			} else if enemy > player {
				tower.ReceiveAttack(enemy-player, Enemy)
			}
			battles++
		case player > 0:
			tower.ReceiveAttack(player, Player)
			battles++
		case enemy > 0:
			tower.ReceiveAttack(enemy, Enemy)
			battles++
		}
		if n := a.strength[Neutral]; n > 0 {
			tower.ReceiveAttack(n, Neutral)
		}
	}
	return inFlight, battles
}

// towerAt resolves the tower whose footprint covers (x,y), or nil.
func towerAt(towers []*Tower, x, y float64) *Tower {
	for _, t := range towers {
		if t.ContainsPoint(x, y, 1.0) {
			return t
		}
	}
	return nil
}

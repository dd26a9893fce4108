package game

import "testing"

func mustTestTower(t *testing.T, x, y float64, owner Owner, troops int) *Tower {
	t.Helper()
	tower, err := NewTower(x, y, owner, troops)
	if err != nil {
		t.Fatalf("NewTower: %v", err)
	}
	return tower
}

func TestNewTowerValidation(t *testing.T) {
	if _, err := NewTower(0, 0, Owner(42), 10); err == nil {
		t.Error("expected error for invalid owner")
	}
	if _, err := NewTower(0, 0, Player, -1); err == nil {
		t.Error("expected error for negative troops")
	}
	tower := mustTestTower(t, 0, 0, Player, towerMaxTroops+100)
	if tower.Troops() != towerMaxTroops {
		t.Errorf("over-cap garrison not clamped: got %d", tower.Troops())
	}
}

func TestTowerGrowth(t *testing.T) {
	tower := mustTestTower(t, 0, 0, Player, 10)
	tower.Update(1.0)
	if tower.Troops() != 11 {
		t.Errorf("player tower after 1s: got %d, want 11", tower.Troops())
	}

	// Growth steps accumulate across small ticks.
	tower = mustTestTower(t, 0, 0, Enemy, 10)
	for i := 0; i < 120; i++ {
		tower.Update(1.0 / 60.0)
	}
	// 120 ticks of 1/60s is just under 2.0s of float accumulation.
	if tower.Troops() < 11 || tower.Troops() > 12 {
		t.Errorf("enemy tower after ~2s of small ticks: got %d, want 11 or 12", tower.Troops())
	}
}

func TestNeutralTowerNeverGrows(t *testing.T) {
	tower := mustTestTower(t, 0, 0, Neutral, 10)
	for i := 0; i < 10; i++ {
		tower.Update(1.0)
	}
	if tower.Troops() != 10 {
		t.Errorf("neutral tower grew: got %d, want 10", tower.Troops())
	}
	if tower.CanGrow() {
		t.Error("neutral tower reports CanGrow")
	}
	if tower.CanSendTroops() {
		t.Error("neutral tower reports CanSendTroops")
	}
}

func TestGrowthCapsAtMax(t *testing.T) {
	tower := mustTestTower(t, 0, 0, Player, towerMaxTroops-1)
	for i := 0; i < 5; i++ {
		tower.Update(1.0)
	}
	if tower.Troops() != towerMaxTroops {
		t.Errorf("garrison exceeded cap: got %d, want %d", tower.Troops(), towerMaxTroops)
	}
}

func TestSendTroopsConservation(t *testing.T) {
	target := mustTestTower(t, 100, 0, Enemy, 5)

	tower := mustTestTower(t, 0, 0, Player, 10)
	if n := tower.SendTroops(target); n != 5 {
		t.Errorf("sent from 10: got %d, want 5", n)
	}
	if tower.Troops() != 5 {
		t.Errorf("remaining after send: got %d, want 5", tower.Troops())
	}

	// A lone defender never leaves.
	tower = mustTestTower(t, 0, 0, Player, 1)
	if n := tower.SendTroops(target); n != 0 {
		t.Errorf("sent from 1: got %d, want 0", n)
	}
	if tower.Troops() != 1 {
		t.Errorf("garrison of 1 changed: got %d", tower.Troops())
	}

	// Two troops send exactly one.
	tower = mustTestTower(t, 0, 0, Player, 2)
	if n := tower.SendTroops(target); n != 1 {
		t.Errorf("sent from 2: got %d, want 1", n)
	}
	if tower.Troops() != 1 {
		t.Errorf("remaining after send from 2: got %d, want 1", tower.Troops())
	}
}

func TestReceiveAttackCapture(t *testing.T) {
	cases := []struct {
		name        string
		amount      int
		wantCapture bool
		wantTroops  int
		wantOwner   Owner
	}{
		{"exact tie captures", 5, true, 0, Player},
		{"weak attack repelled", 3, false, 2, Enemy},
		{"overwhelming attack captures", 7, true, 2, Player},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tower := mustTestTower(t, 0, 0, Enemy, 5)
			got := tower.ReceiveAttack(tc.amount, Player)
			if got != tc.wantCapture {
				t.Errorf("captured: got %v, want %v", got, tc.wantCapture)
			}
			if tower.Troops() != tc.wantTroops {
				t.Errorf("troops: got %d, want %d", tower.Troops(), tc.wantTroops)
			}
			if tower.Owner() != tc.wantOwner {
				t.Errorf("owner: got %s, want %s", tower.Owner(), tc.wantOwner)
			}
		})
	}
}

func TestReceiveAttackReinforcement(t *testing.T) {
	tower := mustTestTower(t, 0, 0, Player, 5)
	if captured := tower.ReceiveAttack(4, Player); captured {
		t.Error("reinforcement reported as capture")
	}
	if tower.Troops() != 9 {
		t.Errorf("troops after reinforcement: got %d, want 9", tower.Troops())
	}
	if tower.Owner() != Player {
		t.Errorf("owner changed on reinforcement: got %s", tower.Owner())
	}
}

func TestTowerEvents(t *testing.T) {
	d := NewDispatcher()
	tower := mustTestTower(t, 0, 0, Enemy, 5)
	tower.setEvents(d)

	var ownerChanges, troopChanges, sends int
	d.Subscribe(KindOwnerChanged, func(e Event) { ownerChanges++ })
	d.Subscribe(KindTroopsChanged, func(e Event) { troopChanges++ })
	d.Subscribe(KindTroopsSent, func(e Event) { sends++ })

	tower.ReceiveAttack(7, Player) // capture: owner + troops change
	if ownerChanges != 1 {
		t.Errorf("owner change events: got %d, want 1", ownerChanges)
	}
	if troopChanges == 0 {
		t.Error("no troop change event on capture")
	}

	target := mustTestTower(t, 100, 0, Enemy, 5)
	tower.ReceiveAttack(10, Player) // reinforce to 12
	tower.SendTroops(target)
	if sends != 1 {
		t.Errorf("send events: got %d, want 1", sends)
	}
}

func TestTroopBoundsInvariant(t *testing.T) {
	tower := mustTestTower(t, 0, 0, Enemy, 5)
	tower.ReceiveAttack(500, Player) // survivor count clamps to cap
	if tower.Troops() < 0 || tower.Troops() > towerMaxTroops {
		t.Errorf("garrison out of bounds: %d", tower.Troops())
	}
	tower.ReceiveAttack(1000, Player) // same-owner reinforcement clamps
	if tower.Troops() != towerMaxTroops {
		t.Errorf("reinforcement not clamped: got %d", tower.Troops())
	}
}

func TestContainsPoint(t *testing.T) {
	tower := mustTestTower(t, 100, 100, Player, 5)
	if !tower.ContainsPoint(100+towerRadius-1, 100, 1.0) {
		t.Error("point inside radius not detected")
	}
	if tower.ContainsPoint(100+towerRadius+5, 100, 1.0) {
		t.Error("point outside radius detected at 1.0 scale")
	}
	// The same point hits with the forgiving 1.5x hitbox.
	if !tower.ContainsPoint(100+towerRadius+5, 100, clickHitboxScale) {
		t.Error("point missed at 1.5 scale")
	}
}

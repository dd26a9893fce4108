package game

import (
	"math/rand"
	"testing"
)

func TestAggressivePicksStrongestSource(t *testing.T) {
	weak := mustTestTower(t, 900, 200, Enemy, 5)
	strong := mustTestTower(t, 900, 500, Enemy, 30)
	player := mustTestTower(t, 100, 200, Player, 10)

	p := AggressiveStrategy{}.Decide(0, []*Tower{weak, strong}, []*Tower{weak, strong, player})
	if p == nil {
		t.Fatal("no proposal")
	}
	if len(p.Sources) != 1 || p.Sources[0] != strong {
		t.Error("aggressive did not pick the strongest source")
	}
	if p.Target != player {
		t.Error("aggressive did not target the player")
	}
}

func TestAggressivePrefersPlayerOverNeutral(t *testing.T) {
	source := mustTestTower(t, 500, 300, Enemy, 30)
	// Same distance, same garrison: ownership priority decides.
	player := mustTestTower(t, 300, 300, Player, 10)
	neutral := mustTestTower(t, 700, 300, Neutral, 10)

	p := AggressiveStrategy{}.Decide(0, []*Tower{source}, []*Tower{source, player, neutral})
	if p == nil {
		t.Fatal("no proposal")
	}
	if p.Target != player {
		t.Errorf("target owner: got %s, want player", p.Target.Owner())
	}
}

func TestAggressiveNoSendableSource(t *testing.T) {
	drained := mustTestTower(t, 900, 200, Enemy, 1)
	player := mustTestTower(t, 100, 200, Player, 10)
	if p := (AggressiveStrategy{}).Decide(0, []*Tower{drained}, []*Tower{drained, player}); p != nil {
		t.Error("proposal from a tower that cannot send")
	}
}

func TestDefensiveRequiresComfortableGarrison(t *testing.T) {
	source := mustTestTower(t, 900, 200, Enemy, defMinTroops)
	neutral := mustTestTower(t, 500, 300, Neutral, 3)
	if p := (DefensiveStrategy{}).Decide(0, []*Tower{source}, []*Tower{source, neutral}); p != nil {
		t.Error("defensive acted at its garrison threshold")
	}
}

func TestDefensivePrefersNeutralExpansion(t *testing.T) {
	source := mustTestTower(t, 900, 200, Enemy, 20)
	neutral := mustTestTower(t, 700, 300, Neutral, 5)
	player := mustTestTower(t, 100, 200, Player, 2) // weaker than the neutral

	p := DefensiveStrategy{}.Decide(0, []*Tower{source}, []*Tower{source, neutral, player})
	if p == nil {
		t.Fatal("no proposal")
	}
	if p.Target != neutral {
		t.Errorf("target: got %s tower, want neutral", p.Target.Owner())
	}
}

func TestDefensiveStrikesWeakestPlayer(t *testing.T) {
	source := mustTestTower(t, 900, 200, Enemy, 20)
	strongPlayer := mustTestTower(t, 100, 200, Player, 30)
	weakPlayer := mustTestTower(t, 100, 500, Player, 3)

	p := DefensiveStrategy{}.Decide(0, []*Tower{source}, []*Tower{source, strongPlayer, weakPlayer})
	if p == nil {
		t.Fatal("no proposal")
	}
	if p.Target != weakPlayer {
		t.Error("defensive did not pick the weakest player tower")
	}
}

func TestSmartModeFromForceRatio(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	cases := []struct {
		name         string
		enemyTroops  int
		playerTroops int
		want         TacticalMode
	}{
		{"stronger goes aggressive", 40, 10, ModeAggressive},
		{"weaker goes defensive", 10, 40, ModeDefensive},
		{"even stays balanced", 20, 20, ModeBalanced},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSmartStrategy(rng, 3)
			enemy := mustTestTower(t, 900, 200, Enemy, tc.enemyTroops)
			player := mustTestTower(t, 100, 200, Player, tc.playerTroops)
			s.Decide(0, []*Tower{enemy}, []*Tower{enemy, player})
			if s.Mode() != tc.want {
				t.Errorf("mode: got %s, want %s", s.Mode(), tc.want)
			}
		})
	}
}

func TestSmartModeReviewPeriod(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSmartStrategy(rng, 3)

	enemy := mustTestTower(t, 900, 200, Enemy, 40)
	player := mustTestTower(t, 100, 200, Player, 10)
	s.Decide(0, []*Tower{enemy}, []*Tower{enemy, player})
	if s.Mode() != ModeAggressive {
		t.Fatalf("initial mode: got %s", s.Mode())
	}

	// The balance flips, but the posture holds until the next review.
	weakEnemy := mustTestTower(t, 900, 200, Enemy, 5)
	strongPlayer := mustTestTower(t, 100, 200, Player, 40)
	s.Decide(2.0, []*Tower{weakEnemy}, []*Tower{weakEnemy, strongPlayer})
	if s.Mode() != ModeAggressive {
		t.Errorf("mode flipped before review period: %s", s.Mode())
	}
	s.Decide(modeEvalPeriod+0.1, []*Tower{weakEnemy}, []*Tower{weakEnemy, strongPlayer})
	if s.Mode() != ModeDefensive {
		t.Errorf("mode not recomputed after review period: %s", s.Mode())
	}
}

func TestSmartAlwaysProposesWhenViable(t *testing.T) {
	// Whatever plan the rng rolls first, fallbacks must keep the AI
	// acting whenever any source and target exist.
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := NewSmartStrategy(rng, 3)
		enemyA := mustTestTower(t, 900, 200, Enemy, 20)
		enemyB := mustTestTower(t, 900, 500, Enemy, 8)
		player := mustTestTower(t, 100, 200, Player, 10)
		neutral := mustTestTower(t, 500, 300, Neutral, 5)

		p := s.Decide(0, []*Tower{enemyA, enemyB}, []*Tower{enemyA, enemyB, player, neutral})
		if p == nil {
			t.Fatalf("seed %d: no proposal from a viable board", seed)
		}
		if p.Target == nil || len(p.Sources) == 0 {
			t.Fatalf("seed %d: malformed proposal %+v", seed, p)
		}
	}
}

func TestSmartAssaultCapsSources(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := NewSmartStrategy(rng, 2)

	// Many sendable towers clustered near the target.
	target := mustTestTower(t, 500, 300, Player, 2)
	var enemies []*Tower
	for i := 0; i < 5; i++ {
		enemies = append(enemies, mustTestTower(t, 550+float64(i)*20, 300, Enemy, 20))
	}

	p := s.coordinatedAssault(enemies, []*Tower{target})
	if p == nil {
		t.Fatal("no assault proposal")
	}
	if len(p.Sources) > 2 {
		t.Errorf("assault sources: got %d, want at most 2", len(p.Sources))
	}
}

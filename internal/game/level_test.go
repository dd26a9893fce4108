package game

import "testing"

func TestLevelTableRampsUp(t *testing.T) {
	if len(levelTable) != 3 {
		t.Fatalf("campaign length: got %d, want 3", len(levelTable))
	}
	for i := 1; i < len(levelTable); i++ {
		prev, cur := levelTable[i-1], levelTable[i]
		if cur.Difficulty < prev.Difficulty {
			t.Errorf("level %d easier than level %d", i+1, i)
		}
		if cur.EnemyTroops < prev.EnemyTroops {
			t.Errorf("level %d enemy garrison shrank", i+1)
		}
	}
	for i, cfg := range levelTable {
		if cfg.PlayerTowers > len(playerPositions) {
			t.Errorf("level %d: %d player towers, %d positions", i+1, cfg.PlayerTowers, len(playerPositions))
		}
		if cfg.EnemyTowers > len(enemyPositions) {
			t.Errorf("level %d: %d enemy towers, %d positions", i+1, cfg.EnemyTowers, len(enemyPositions))
		}
		if cfg.NeutralTowers > len(neutralPositions) {
			t.Errorf("level %d: %d neutral towers, %d positions", i+1, cfg.NeutralTowers, len(neutralPositions))
		}
	}
}

func TestLevelManagerProgression(t *testing.T) {
	m := NewLevelManager()
	if m.Current() != 1 || m.IsFinal() {
		t.Fatalf("fresh manager: current=%d final=%v", m.Current(), m.IsFinal())
	}
	if got := m.Config().Name; got != levelTable[0].Name {
		t.Errorf("config name: got %q", got)
	}

	if !m.CompleteCurrent() {
		t.Fatal("level 1 reported as final")
	}
	if m.Current() != 2 {
		t.Errorf("after completing level 1: current=%d", m.Current())
	}
	m.CompleteCurrent()
	if !m.IsFinal() {
		t.Error("level 3 not reported as final")
	}
	if m.CompleteCurrent() {
		t.Error("completing the final level reported a successor")
	}
	if m.Current() != m.Max() {
		t.Errorf("final completion moved current to %d", m.Current())
	}
}

func TestLevelManagerSetLevelBounds(t *testing.T) {
	m := NewLevelManager()
	if err := m.SetLevel(0); err == nil {
		t.Error("accepted level 0")
	}
	if err := m.SetLevel(m.Max() + 1); err == nil {
		t.Error("accepted level past the end")
	}
	if err := m.SetLevel(3); err != nil {
		t.Fatalf("SetLevel(3): %v", err)
	}
	if m.Current() != 3 {
		t.Errorf("current after SetLevel(3): %d", m.Current())
	}
}

func TestLevelManagerResetToFirst(t *testing.T) {
	m := NewLevelManager()
	m.CompleteCurrent()
	m.CompleteCurrent()
	m.ResetToFirst()
	if m.Current() != 1 {
		t.Errorf("current after reset: %d", m.Current())
	}
	if m.completed[1] || m.completed[2] {
		t.Error("completion marks survived the reset")
	}
	if m.Progress() != "Level 1/3" {
		t.Errorf("progress string: %q", m.Progress())
	}
}

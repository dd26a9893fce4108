package game

import "fmt"

// LevelConfig is the immutable per-level recipe.
type LevelConfig struct {
	Name          string
	Difficulty    Difficulty
	PlayerTowers  int
	EnemyTowers   int
	NeutralTowers int
	PlayerTroops  int // initial garrison per player tower
	EnemyTroops   int // initial garrison per enemy tower
	NeutralTroops int // initial garrison per neutral tower
}

// levelTable is the fixed campaign. Indices are level-1.
var levelTable = []LevelConfig{
	{
		Name:          "Level 1: First Contact",
		Difficulty:    Easy,
		PlayerTowers:  2,
		EnemyTowers:   2,
		NeutralTowers: 3,
		PlayerTroops:  20,
		EnemyTroops:   10,
		NeutralTroops: 10,
	},
	{
		Name:          "Level 2: Contested Ground",
		Difficulty:    Medium,
		PlayerTowers:  2,
		EnemyTowers:   2,
		NeutralTowers: 5,
		PlayerTroops:  20,
		EnemyTroops:   20,
		NeutralTroops: 12,
	},
	{
		Name:          "Level 3: Overrun",
		Difficulty:    Hard,
		PlayerTowers:  2,
		EnemyTowers:   3,
		NeutralTowers: 6,
		PlayerTroops:  20,
		EnemyTroops:   30,
		NeutralTroops: 15,
	},
}

// Fixed spawn positions. Player and enemy keep opposite flanks so no
// level starts with adjacent hostile towers; neutral slots sit between.
var (
	playerPositions = [][2]float64{{100, 200}, {100, 500}, {120, 350}}
	enemyPositions  = [][2]float64{{900, 200}, {900, 500}, {880, 350}}
	neutralPositions = [][2]float64{
		{500, 150}, {500, 450}, {500, 600},
		{350, 300}, {650, 300}, {400, 550}, {600, 550},
	}
)

// LevelManager tracks campaign progress and hands out level configs.
type LevelManager struct {
	current   int // 1-based
	completed map[int]bool
}

func NewLevelManager() *LevelManager {
	return &LevelManager{current: 1, completed: make(map[int]bool)}
}

func (m *LevelManager) Current() int { return m.current }
func (m *LevelManager) Max() int     { return len(levelTable) }

// Config returns the current level's recipe.
func (m *LevelManager) Config() LevelConfig {
	return levelTable[m.current-1]
}

// SetLevel jumps to a specific level.
func (m *LevelManager) SetLevel(n int) error {
	if n < 1 || n > len(levelTable) {
		return fmt.Errorf("level %d out of range [1,%d]", n, len(levelTable))
	}
	m.current = n
	return nil
}

// CompleteCurrent marks the current level done and advances when a
// successor exists. Returns false on the final level.
func (m *LevelManager) CompleteCurrent() bool {
	m.completed[m.current] = true
	if m.current < len(levelTable) {
		m.current++
		return true
	}
	return false
}

// ResetToFirst restarts the campaign after a defeat.
func (m *LevelManager) ResetToFirst() {
	m.current = 1
	m.completed = make(map[int]bool)
}

// IsFinal reports whether the current level is the last one.
func (m *LevelManager) IsFinal() bool {
	return m.current >= len(levelTable)
}

// Progress is the HUD's "Level 2/3" string.
func (m *LevelManager) Progress() string {
	return fmt.Sprintf("Level %d/%d", m.current, len(levelTable))
}

package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// ScreenWidth and ScreenHeight are the native playfield size.
	ScreenWidth  = 1000
	ScreenHeight = 700

	viewTickDt = 1.0 / 60.0 // ebiten drives Update at 60 Hz
)

// ownerColors maps each owner to its render tint.
var ownerColors = [3]color.RGBA{
	Neutral: {R: 128, G: 128, B: 128, A: 255},
	Player:  {R: 0, G: 100, B: 255, A: 255},
	Enemy:   {R: 255, G: 50, B: 50, A: 255},
}

var backgroundColor = color.RGBA{R: 24, G: 28, B: 24, A: 255}

// View is the thin ebiten frontend: it polls input, forwards clicks to
// the simulation and draws per-frame snapshots. All game rules live in
// Sim; the view only projects them.
type View struct {
	sim       *Sim
	face      font.Face
	prevMouse bool
	prevKeys  map[ebiten.Key]bool
}

func NewView(sim *Sim) *View {
	return &View{
		sim:      sim,
		face:     basicfont.Face7x13,
		prevKeys: make(map[ebiten.Key]bool),
	}
}

// keyJustPressed is edge-triggered key detection.
func (v *View) keyJustPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	was := v.prevKeys[k]
	v.prevKeys[k] = pressed
	return pressed && !was
}

func (v *View) Update() error {
	mouse := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouse && !v.prevMouse {
		mx, my := ebiten.CursorPosition()
		v.sim.HandleClick(float64(mx), float64(my))
	}
	v.prevMouse = mouse

	if v.keyJustPressed(ebiten.KeySpace) {
		switch v.sim.State() {
		case StatePlaying, StatePaused:
			v.sim.TogglePause()
		case StateLevelComplete:
			v.sim.AdvanceLevel()
		case StateGameOver:
			v.sim.Restart()
		}
	}
	if v.keyJustPressed(ebiten.KeyR) {
		v.sim.Restart()
	}
	if v.keyJustPressed(ebiten.KeyC) {
		if err := v.sim.CopyReportToClipboard(); err != nil {
			fmt.Println("clipboard:", err)
		}
	}

	v.sim.Update(viewTickDt)
	return nil
}

func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := v.sim.Snapshot()

	for _, t := range snap.Towers {
		if t.Selected {
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y),
				float32(t.Radius+5), 3, color.White, true)
		}
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y),
			float32(t.Radius), ownerColors[t.Owner], true)
		vector.StrokeCircle(screen, float32(t.X), float32(t.Y),
			float32(t.Radius), 2, color.Black, true)
		v.drawCount(screen, t.X, t.Y, t.Troops)
	}

	for _, tr := range snap.Troops {
		vector.DrawFilledCircle(screen, float32(tr.X), float32(tr.Y),
			troopRadius, ownerColors[tr.Owner], true)
		v.drawCount(screen, tr.X, tr.Y-12, tr.Count)
	}

	v.drawHUD(screen, snap)
}

// drawCount renders a centered unit count label.
func (v *View) drawCount(screen *ebiten.Image, x, y float64, count int) {
	s := fmt.Sprintf("%d", count)
	w := font.MeasureString(v.face, s).Ceil()
	text.Draw(screen, s, v.face, int(x)-w/2, int(y)+4, color.White)
}

func (v *View) drawHUD(screen *ebiten.Image, snap Snapshot) {
	stats := v.sim.Stats()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s  [%s]", snap.LevelName, v.sim.Levels().Progress()), 8, 8)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("towers P/E/N: %d/%d/%d  in-flight: %d  ai: %s/%s",
			stats.PlayerTowers, stats.EnemyTowers, stats.NeutralTowers,
			stats.ActiveTroops, v.sim.AI().Difficulty(), v.sim.AI().Mode()), 8, 24)

	switch snap.State {
	case StatePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - space to resume", 8, ScreenHeight-24)
	case StateLevelComplete:
		ebitenutil.DebugPrintAt(screen, "LEVEL COMPLETE - space for next level, R to replay", 8, ScreenHeight-24)
	case StateGameOver:
		msg := "GAME OVER - space to restart"
		if snap.Winner == Player {
			msg = "ALL LEVELS COMPLETE - space to play again"
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, ScreenHeight-24)
	default:
		ebitenutil.DebugPrintAt(screen, "click a tower to select, click another to send  (space pause, C report)", 8, ScreenHeight-24)
	}
}

func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

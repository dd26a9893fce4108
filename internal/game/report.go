package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Report renders a balance/debug report for the current game: campaign
// position, board state, headline counters and AI performance. The
// view copies it to the clipboard on demand; the batch runner prints it.
func (s *Sim) Report() string {
	stats := s.Stats()
	cfg := s.levels.Config()

	var b strings.Builder
	b.WriteString("--- tower wars report ---\n")
	fmt.Fprintf(&b, "session=%s %s (%s, ai=%s)\n",
		s.session, s.levels.Progress(), cfg.Name, s.ai.Difficulty())
	fmt.Fprintf(&b, "state=%s t=%.1fs tick=%d\n", s.state, s.now, s.tick)
	if s.ended {
		fmt.Fprintf(&b, "winner=%s\n", s.winner)
	}
	fmt.Fprintf(&b, "towers: player=%d enemy=%d neutral=%d\n",
		stats.PlayerTowers, stats.EnemyTowers, stats.NeutralTowers)
	fmt.Fprintf(&b, "in-flight=%d pending-spawns=%d\n",
		stats.ActiveTroops, stats.PendingSpawns)
	fmt.Fprintf(&b, "player-actions=%d battles=%d\n",
		stats.PlayerActions, stats.Battles)
	fmt.Fprintf(&b, "ai: actions=%d captures=%d losses=%d mode=%s\n",
		stats.AI.Actions, stats.AI.Captures, stats.AI.Losses, s.ai.Mode())

	for i, t := range s.towers {
		sel := ""
		if t.Selected() {
			sel = " [selected]"
		}
		fmt.Fprintf(&b, "T%d %-7s troops=%-3d (%.0f,%.0f)%s\n",
			i, t.Owner(), t.Troops(), t.X(), t.Y(), sel)
	}
	return b.String()
}

// CopyReportToClipboard exports the report for pasting into a bug
// ticket or balance spreadsheet.
func (s *Sim) CopyReportToClipboard() error {
	return clipboard.WriteAll(s.Report())
}

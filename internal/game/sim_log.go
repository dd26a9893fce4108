package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a simulation run.
type SimLogEntry struct {
	Tick     int
	Actor    string  // tower label e.g. "T3", or "--" for global events
	Category string  // tower, troop, spawn, combat, ai, state, win
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] T3   tower   captured   enemy → player (2 troops)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-7s %-14s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a run. It is unbounded and
// machine-readable; tests query it with Filter.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick movement and
// garrison entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns entries for a specific actor label.
func (sl *SimLog) FilterActor(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Actor == label {
			out = append(out, e)
		}
	}
	return out
}

// Summary renders a closing block: final tower ownership, troops in
// flight and headline counters.
func (sl *SimLog) Summary(tick int, towers []*Tower, troops []*Troop) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- summary (T=%d) ---\n", tick)
	counts := map[Owner]int{}
	for i, t := range towers {
		counts[t.Owner()]++
		fmt.Fprintf(&b, "T%d  %-7s troops=%d at (%.0f,%.0f)\n",
			i, t.Owner(), t.Troops(), t.X(), t.Y())
	}
	fmt.Fprintf(&b, "towers: player=%d enemy=%d neutral=%d  in-flight=%d\n",
		counts[Player], counts[Enemy], counts[Neutral], len(troops))
	fmt.Fprintf(&b, "captures=%d sends=%d ai-actions=%d\n",
		len(sl.Filter("tower", "captured")),
		len(sl.Filter("tower", "sent")),
		len(sl.Filter("ai", "action")))
	return b.String()
}

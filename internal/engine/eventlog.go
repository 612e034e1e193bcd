package engine

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded event of a session.
type LogEntry struct {
	Tick     int
	FireID   int     // 0 for session-wide entries
	Category string  // spawn, click, extinguish, suppress, ticket, state, input, tick
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] F3   click      hit            4 left
func (e LogEntry) String() string {
	label := "--"
	if e.FireID > 0 {
		label = fmt.Sprintf("F%d", e.FireID)
	}
	return fmt.Sprintf("[T=%04d] %-4s %-10s %-14s %s",
		e.Tick, label, e.Category, e.Key, e.Value)
}

// EventLog collects structured entries for one session. It is unbounded and
// machine-readable; the on-screen feed keeps its own ring buffer.
type EventLog struct {
	entries []LogEntry
	verbose bool
}

// NewEventLog creates an EventLog. If verbose is true, per-tick damage and
// intensity entries are also recorded.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (el *EventLog) Add(tick, fireID int, category, key, value string, numVal float64) {
	el.entries = append(el.entries, LogEntry{
		Tick:     tick,
		FireID:   fireID,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(tick, fireID int, category, key, value string, numVal float64) {
	if !el.verbose {
		return
	}
	el.Add(tick, fireID, category, key, value, numVal)
}

// Verbose reports whether per-tick entries are recorded.
func (el *EventLog) Verbose() bool {
	return el.verbose
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []LogEntry {
	return el.entries
}

// Len returns the number of recorded entries.
func (el *EventLog) Len() int {
	return len(el.entries)
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range el.entries {
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

// FilterFire returns entries for a specific fire.
func (el *EventLog) FilterFire(id int) []LogEntry {
	var out []LogEntry
	for _, e := range el.entries {
		if e.FireID == id {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (el *EventLog) FilterTickRange(fromTick, toTick int) []LogEntry {
	var out []LogEntry
	for _, e := range el.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (el *EventLog) CountCategory(category, key string) int {
	n := 0
	for _, e := range el.entries {
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (el *EventLog) LastOf(category, key string) (LogEntry, bool) {
	for i := len(el.entries) - 1; i >= 0; i-- {
		e := el.entries[i]
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return LogEntry{}, false
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (el *EventLog) Format() string {
	return formatEntries(el.entries)
}

// FormatRange returns a log string filtered to a tick range.
func (el *EventLog) FormatRange(fromTick, toTick int) string {
	return formatEntries(el.FilterTickRange(fromTick, toTick))
}

// FormatTail returns the last n entries.
func (el *EventLog) FormatTail(n int) string {
	if n <= 0 || n >= len(el.entries) {
		return el.Format()
	}
	return formatEntries(el.entries[len(el.entries)-n:])
}

func formatEntries(entries []LogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the session state.
func (el *EventLog) Summary(s *Session) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%04d (%.1fs) ---\n", s.tick, s.elapsed)
	fmt.Fprintf(&sb, "Level: %s  State: %s\n", s.cfg.Level, s.state)
	fmt.Fprintf(&sb, "Damage: %.1f  Score: %d  Extinguished: %d/%d\n",
		s.damage, s.score, s.extinguished, s.cfg.WinTarget)
	fmt.Fprintf(&sb, "Spawned: %d  Clicks: %d  Manual suppress: %d  Auto suppress: %d  Tickets replaced: %d\n",
		el.CountCategory("spawn", "fire"),
		el.CountCategory("click", ""),
		el.CountCategory("suppress", TriggerManual.String()),
		el.CountCategory("suppress", TriggerAuto.String()),
		el.CountCategory("ticket", "replaced"),
	)

	if len(s.fires) == 0 {
		sb.WriteString("Fires: none\n")
	}
	for _, f := range s.fires {
		fmt.Fprintf(&sb, "Fire F%d at (%.0f%%,%.0f%%) intensity=%.1f clicks=%d/%d\n",
			f.ID, f.X, f.Y, f.Intensity, f.ClicksRemaining, f.ClicksRequired)
	}
	if s.ticket != nil {
		fmt.Fprintf(&sb, "Ticket: F%d in %ds\n", s.ticket.FireID, s.ticket.Remaining)
	}
	return sb.String()
}

package sim

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded event during a session.
type LogEntry struct {
	Turn     int
	Ghost    string  // label e.g. "G03", or "--" for session-wide events
	Category string  // effector, dial, fire, move, exit, capture, result
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=004] G03  move      scoot           4 → 2
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-15s %s",
		e.Turn, e.Ghost, e.Category, e.Key, e.Value)
}

// ActionLog collects structured events for one session. It is unbounded and
// machine-readable; the on-screen feed keeps its own short ring buffer.
type ActionLog struct {
	entries []LogEntry
}

// NewActionLog creates an empty log.
func NewActionLog() *ActionLog {
	return &ActionLog{}
}

// Add records a new entry.
func (al *ActionLog) Add(turn int, ghost, category, key, value string, numVal float64) {
	al.entries = append(al.entries, LogEntry{
		Turn:     turn,
		Ghost:    ghost,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns all recorded entries.
func (al *ActionLog) Entries() []LogEntry {
	return al.entries
}

// Len is the number of recorded entries.
func (al *ActionLog) Len() int {
	return len(al.entries)
}

// Since returns entries recorded after the first n.
func (al *ActionLog) Since(n int) []LogEntry {
	if n >= len(al.entries) {
		return nil
	}
	if n < 0 {
		n = 0
	}
	return al.entries[n:]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (al *ActionLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range al.entries {
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

// FilterGhost returns entries for a specific ghost label.
func (al *ActionLog) FilterGhost(label string) []LogEntry {
	var out []LogEntry
	for _, e := range al.entries {
		if e.Ghost == label {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (al *ActionLog) CountCategory(category, key string) int {
	return len(al.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (al *ActionLog) LastOf(category, key string) (LogEntry, bool) {
	entries := al.Filter(category, key)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (al *ActionLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range al.entries {
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

// Format returns the full log as a single string.
func (al *ActionLog) Format() string {
	var sb strings.Builder
	for _, e := range al.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

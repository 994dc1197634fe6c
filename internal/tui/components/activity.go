package components

import (
	"fmt"
	"strings"
)

// ActivityEntry is one line of the activity log.
type ActivityEntry struct {
	Seq     int
	Source  string
	Message string
}

// ActivityLog keeps the most recent events reported by the gallery controls.
// Append never mutates the receiver, so copies of a model stay independent.
type ActivityLog struct {
	entries []ActivityEntry
	limit   int
	seq     int
}

// NewActivityLog creates a log that keeps at most limit entries.
func NewActivityLog(limit int) ActivityLog {
	if limit <= 0 {
		limit = 1
	}
	return ActivityLog{limit: limit}
}

// Append returns a log with the event added, dropping the oldest entry when
// the limit is reached.
func (a ActivityLog) Append(source, message string) ActivityLog {
	a.seq++
	start := 0
	if len(a.entries) >= a.limit {
		start = len(a.entries) - a.limit + 1
	}
	next := make([]ActivityEntry, 0, a.limit)
	next = append(next, a.entries[start:]...)
	next = append(next, ActivityEntry{Seq: a.seq, Source: source, Message: message})
	a.entries = next
	return a
}

// Entries returns the retained entries, oldest first.
func (a ActivityLog) Entries() []ActivityEntry {
	clone := make([]ActivityEntry, len(a.entries))
	copy(clone, a.entries)
	return clone
}

// Len returns the number of retained entries.
func (a ActivityLog) Len() int {
	return len(a.entries)
}

// View renders the log, one event per line.
func (a ActivityLog) View() string {
	lines := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		lines = append(lines, fmt.Sprintf("#%d %s: %s", e.Seq, e.Source, e.Message))
	}
	return strings.Join(lines, "\n")
}

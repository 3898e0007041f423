// Package journal keeps the detective's notebook: an ordered record of what
// happened during a session, fanned out to any subscriber that wants it.
package journal

import (
	"log/slog"
	"maps"
	"slices"
	"time"
)

// Entry is one recorded event
type Entry struct {
	Seq   int
	Kind  string
	At    time.Time
	Attrs map[string]string
}

// Subscriber receives every entry as it is recorded
type Subscriber func(Entry)

// Journal records session events in order
type Journal struct {
	entries     []Entry
	subscribers []Subscriber
	now         func() time.Time
}

// New creates an empty journal
func New() *Journal {
	return &Journal{now: time.Now}
}

// Subscribe adds a subscriber for all future entries
func (j *Journal) Subscribe(s Subscriber) {
	j.subscribers = append(j.subscribers, s)
}

// Record appends an event. kv is a list of key/value pairs; a trailing key
// without a value is dropped.
func (j *Journal) Record(kind string, kv ...string) Entry {
	attrs := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs[kv[i]] = kv[i+1]
	}
	e := Entry{
		Seq:   len(j.entries) + 1,
		Kind:  kind,
		At:    j.now(),
		Attrs: attrs,
	}
	j.entries = append(j.entries, e)
	for _, s := range j.subscribers {
		s(e)
	}
	return e
}

// Entries returns a copy of everything recorded so far
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Count returns how many entries of the given kind were recorded
func (j *Journal) Count(kind string) int {
	n := 0
	for _, e := range j.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// LogTo returns a subscriber that writes entries to logger at debug level,
// attributes sorted by key
func LogTo(logger *slog.Logger) Subscriber {
	return func(e Entry) {
		args := make([]any, 0, 2+2*len(e.Attrs))
		args = append(args, "seq", e.Seq)
		for _, k := range slices.Sorted(maps.Keys(e.Attrs)) {
			args = append(args, k, e.Attrs[k])
		}
		logger.Debug(e.Kind, args...)
	}
}

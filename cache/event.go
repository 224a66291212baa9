package cache

import "fmt"

// EventKind classifies cache events.
type EventKind int8

// Kinds of cache events.
const (
	Generated EventKind = iota // text of an entry has been (re-)generated
	Expired                    // an entry has been marked as expired
	Evicted                    // an entry has been removed from the cache
)

func (k EventKind) String() string {
	switch k {
	case Generated:
		return "generated"
	case Expired:
		return "expired"
	case Evicted:
		return "evicted"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is published to subscribers of a cache.
type Event struct {
	Kind EventKind
	ID   int
}

func (e Event) String() string {
	return fmt.Sprintf("%s #%d", e.Kind, e.ID)
}

package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// RunID adds a run ID field.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// Strategy adds the search strategy name.
func Strategy(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("strategy", name)
	}
}

// Energy adds the minimum energy found.
func Energy(energy int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("energy", energy)
	}
}

// Found reports whether the search reached the sorted burrow.
func Found(found bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("found", found)
	}
}

// Depth adds the room depth of the burrow being solved.
func Depth(depth int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("depth", depth)
	}
}

// Expanded adds the number of states the search expanded.
func Expanded(n int64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("expanded", n)
	}
}

// Cached marks a result served from the store.
func Cached(cached bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("cached", cached)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}

		return e.Err(err)
	}
}

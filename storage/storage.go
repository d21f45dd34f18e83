package storage

import (
	"github.com/revelaction/pragbank/event"
)

// EventReader defines read operations for event storage
type EventReader interface {
	// Events returns all events in corpus order.
	Events() ([]event.Event, error)

	// Split returns the events of a train/test split in corpus order.
	Split(split event.Split) ([]event.Event, error)
}

// EventWriter defines write operations for event storage
type EventWriter interface {
	// Write replaces the stored events with events. source names where the
	// events come from.
	Write(source string, events []event.Event) error
}

// EventRepository combines read and write operations
type EventRepository interface {
	EventReader
	EventWriter
}

// Progresser defines an optional capability for repositories that can report
// the progress of a read.
type Progresser interface {
	SetProgress(cb func(current, total int))
}

package filesystem

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/revelaction/pragbank/corpus"
	"github.com/revelaction/pragbank/event"
	"github.com/revelaction/pragbank/storage"
)

// EventStore keeps the events in a corpus CSV file.
type EventStore struct {
	path   string
	reader *corpus.Reader
}

var _ storage.EventRepository = (*EventStore)(nil)
var _ storage.Progresser = (*EventStore)(nil)

// NewEventStore creates a CSV file event store. The file does not need to
// exist until it is read.
func NewEventStore(path string) *EventStore {
	return &EventStore{path: path, reader: corpus.NewReader(path)}
}

func (s *EventStore) SetProgress(cb func(current, total int)) {
	s.reader.Progress = cb
}

func (s *EventStore) Events() ([]event.Event, error) {
	return s.reader.Events()
}

func (s *EventStore) Split(split event.Split) ([]event.Event, error) {
	return s.reader.EventsFor(split)
}

// Write writes events to the CSV file with the corpus header. The source is
// not recorded.
func (s *EventStore) Write(source string, events []event.Event) (err error) {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(event.Columns); err != nil {
		return err
	}

	for _, e := range events {
		if err := w.Write(e.Record().Row()); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

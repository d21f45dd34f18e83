package zombiezen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/revelaction/pragbank/event"
	"github.com/revelaction/pragbank/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const selectEvents = `SELECT position, file, sent_id, sentence, sentence_parse, e_id, ei_id,
	e_text, normalization, fact_values, prag_values, train_test FROM events`

// Load records one import of events into the database.
type Load struct {
	Id        string    `json:"id"`
	Source    string    `json:"source"`
	NumEvents int       `json:"num_events"`
	CreatedAt time.Time `json:"created_at"`
}

type EventStore struct {
	pool     *sqlitex.Pool
	progress func(current, total int)
}

var _ storage.EventRepository = (*EventStore)(nil)
var _ storage.Progresser = (*EventStore)(nil)

func NewEventStore(pool *sqlitex.Pool) *EventStore {
	return &EventStore{pool: pool}
}

func (h *EventStore) SetProgress(cb func(current, total int)) {
	h.progress = cb
}

func (h *EventStore) Events() ([]event.Event, error) {
	return h.query(selectEvents+" ORDER BY position", nil)
}

func (h *EventStore) Split(split event.Split) ([]event.Event, error) {
	return h.query(selectEvents+" WHERE train_test = ? ORDER BY position", []any{string(split)})
}

func (h *EventStore) query(query string, args []any) ([]event.Event, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	total := 0
	if h.progress != nil {
		total, err = count(conn, query, args)
		if err != nil {
			return nil, err
		}
	}

	var events []event.Event
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			position := stmt.ColumnInt(0)
			rec := event.Record{
				File:            stmt.ColumnText(1),
				SentenceId:      stmt.ColumnText(2),
				Sentence:        stmt.ColumnText(3),
				SentenceParse:   stmt.ColumnText(4),
				EventId:         stmt.ColumnText(5),
				EventInstanceId: stmt.ColumnText(6),
				EventText:       stmt.ColumnText(7),
				Normalization:   stmt.ColumnText(8),
				FactValues:      stmt.ColumnText(9),
				PragValues:      stmt.ColumnText(10),
				TrainTest:       stmt.ColumnText(11),
			}

			e, err := event.FromRecord(rec)
			if err != nil {
				return fmt.Errorf("event at position %d: %w", position, err)
			}
			events = append(events, e)

			if h.progress != nil {
				h.progress(len(events), total)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}

// count returns the number of rows of query.
func count(conn *sqlite.Conn, query string, args []any) (int, error) {
	n := 0
	err := sqlitex.Execute(conn, "SELECT COUNT(*) FROM ("+query+")", &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			n = stmt.ColumnInt(0)
			return nil
		},
	})
	return n, err
}

// Write replaces all stored events with events and records the load.
func (h *EventStore) Write(source string, events []event.Event) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	if err = sqlitex.Execute(conn, "DELETE FROM events", nil); err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}

	for i, e := range events {
		rec := e.Record()
		err = sqlitex.Execute(conn, `INSERT INTO events (position, file, sent_id, sentence, sentence_parse,
			e_id, ei_id, e_text, normalization, fact_values, prag_values, train_test)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, &sqlitex.ExecOptions{
			Args: []any{
				i, rec.File, rec.SentenceId, rec.Sentence, rec.SentenceParse,
				rec.EventId, rec.EventInstanceId, rec.EventText, rec.Normalization,
				rec.FactValues, rec.PragValues, rec.TrainTest,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to insert event %d: %w", i, err)
		}
	}

	err = sqlitex.Execute(conn, "INSERT INTO loads (id, source, num_events, created_at) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []any{uuid.NewString(), source, len(events), time.Now().UTC().Format(time.RFC3339)},
	})
	if err != nil {
		return fmt.Errorf("failed to insert load: %w", err)
	}

	return nil
}

// Loads returns the recorded imports, oldest first.
func (h *EventStore) Loads() ([]Load, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var loads []Load
	err = sqlitex.Execute(conn, "SELECT id, source, num_events, created_at FROM loads ORDER BY created_at, rowid", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			created, err := time.Parse(time.RFC3339, stmt.ColumnText(3))
			if err != nil {
				return err
			}
			loads = append(loads, Load{
				Id:        stmt.ColumnText(0),
				Source:    stmt.ColumnText(1),
				NumEvents: stmt.ColumnInt(2),
				CreatedAt: created,
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return loads, nil
}

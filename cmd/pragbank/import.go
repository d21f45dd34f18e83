package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/revelaction/pragbank/render"
	"github.com/revelaction/pragbank/storage/filesystem"
	"github.com/revelaction/pragbank/storage/sqlite/zombiezen"
	"github.com/urfave/cli/v2"
)

func importCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import a corpus CSV file into a SQLite database",
		ArgsUsage: "<csv file> <database>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("import needs a CSV file and a database")
			}
			return importCommand(e, c.Args().Get(0), c.Args().Get(1))
		},
	}
}

func importCommand(e *env, from, to string) error {
	if !isCSV(from) {
		return fmt.Errorf("%s is not a CSV file", from)
	}
	if isCSV(to) {
		return fmt.Errorf("%s is not a database", to)
	}

	src, err := NewEventRepository(&e.pool, from)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.ui.Out, "Reading events from %s...\n", from)
	events, err := readEvents(src, "", e.isTerminal())
	if err != nil {
		return err
	}

	pool, err := e.pool.Open(to)
	if err != nil {
		return err
	}

	if err := zombiezen.CreateSchemas(pool, zombiezen.EventsSchema); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	dst := zombiezen.NewEventStore(pool)
	if err := dst.Write(from, events); err != nil {
		return err
	}

	e.logger.Debug("import done", "from", from, "to", to, "events", len(events))
	fmt.Fprintf(e.ui.Out, "Successfully imported %d events from %s to %s\n", len(events), from, to)
	return nil
}

func exportCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "export the events of a SQLite database to a corpus CSV file",
		ArgsUsage: "<database> <csv file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("export needs a database and a CSV file")
			}
			return exportCommand(e, c.Args().Get(0), c.Args().Get(1))
		},
	}
}

func exportCommand(e *env, from, to string) error {
	if isCSV(from) {
		return fmt.Errorf("%s is not a database", from)
	}
	if !isCSV(to) {
		return fmt.Errorf("%s is not a CSV file", to)
	}

	src, err := NewEventRepository(&e.pool, from)
	if err != nil {
		return err
	}

	events, err := readEvents(src, "", e.isTerminal())
	if err != nil {
		return err
	}

	if err := filesystem.NewEventStore(to).Write(from, events); err != nil {
		return err
	}

	fmt.Fprintf(e.ui.Out, "Successfully exported %d events from %s to %s\n", len(events), from, to)
	return nil
}

func loadsCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "loads",
		Usage:     "list the imports recorded in a SQLite database",
		ArgsUsage: "[database]",
		Flags:     []cli.Flag{formatFlag()},
		Action: func(c *cli.Context) error {
			r, err := e.renderer(c.String("format"))
			if err != nil {
				return err
			}

			path := e.cfg.Corpus
			if c.NArg() > 0 {
				path = c.Args().First()
			}
			if isCSV(path) {
				return fmt.Errorf("%s is not a database", path)
			}

			repo, err := NewEventRepository(&e.pool, path)
			if err != nil {
				return err
			}

			loads, err := repo.(*zombiezen.EventStore).Loads()
			if err != nil {
				return err
			}

			if r.Format == render.FormatJSON {
				return r.JSON(loads)
			}

			for _, l := range loads {
				fmt.Fprintf(e.ui.Out, "📥 %s %s %d %s\n", l.Id, l.CreatedAt.Format(time.DateTime), l.NumEvents, l.Source)
			}
			return nil
		},
	}
}

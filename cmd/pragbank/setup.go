package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/mattn/go-isatty"
	"github.com/revelaction/pragbank/config"
	"github.com/revelaction/pragbank/event"
	"github.com/revelaction/pragbank/lemma"
	"github.com/revelaction/pragbank/render"
	"github.com/revelaction/pragbank/storage"
	"github.com/revelaction/pragbank/storage/filesystem"
	"github.com/revelaction/pragbank/storage/sqlite/zombiezen"
)

// env is the state shared by the commands of one invocation.
type env struct {
	ui     UI
	cfg    *config.Config
	logger *slog.Logger
	pool   Pool
}

// isCSV reports whether path names a CSV corpus file rather than a SQLite
// database.
func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

func NewEventRepository(p *Pool, path string) (storage.EventRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("repository %s is a directory", path)
	}

	if isCSV(path) {
		return filesystem.NewEventStore(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewEventStore(pool), nil
}

// events reads the events of the configured corpus. An empty split reads
// all events.
func (e *env) events(split string) ([]event.Event, error) {
	repo, err := NewEventRepository(&e.pool, e.cfg.Corpus)
	if err != nil {
		return nil, err
	}

	return readEvents(repo, split, e.isTerminal())
}

func readEvents(repo storage.EventReader, split string, progress bool) ([]event.Event, error) {
	if p, ok := repo.(storage.Progresser); ok && progress {
		cb, stop := progressBar()
		p.SetProgress(cb)
		defer stop()
	}

	if split == "" {
		return repo.Events()
	}

	sp, err := event.ParseSplit(split)
	if err != nil {
		return nil, err
	}
	return repo.Split(sp)
}

// progressBar returns a progress callback that starts the bar on its first
// call, and the function that stops it.
func progressBar() (func(current, total int), func()) {
	var bar *uiprogress.Bar

	cb := func(current, total int) {
		if bar == nil {
			uiprogress.Start()
			bar = uiprogress.AddBar(total)
			bar.AppendCompleted()
			bar.PrependElapsed()
		}
		_ = bar.Set(current)
	}

	stop := func() {
		if bar != nil {
			uiprogress.Stop()
		}
	}

	return cb, stop
}

// isTerminal reports whether the output goes to a terminal. Progress bars
// and colors are only shown on a terminal.
func (e *env) isTerminal() bool {
	f, ok := e.ui.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (e *env) renderer(format string) (*render.Renderer, error) {
	if !isFormat(format) {
		return nil, fmt.Errorf("unknown format %q, supported formats: %s", format, strings.Join(render.SupportedFormats(), ", "))
	}

	r := render.NewRenderer(e.ui.Out)
	r.Format = format
	r.HasColor = e.isTerminal()
	return r, nil
}

func isFormat(format string) bool {
	for _, f := range render.SupportedFormats() {
		if f == format {
			return true
		}
	}
	return false
}

// lemmatizer returns the configured lemmatizer, or nil if lemmatization is
// off.
func (e *env) lemmatizer() (lemma.Lemmatizer, error) {
	if e.cfg.Lemmatizer == config.LemmatizerNone {
		return nil, nil
	}

	e.logger.Debug("loading lemmatizer", "name", e.cfg.Lemmatizer)
	return lemma.NewGolem()
}

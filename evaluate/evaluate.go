// Package evaluate scores a directory of system annotation files against a
// directory of gold files with an external timeline scorer.
//
// Every file starts with a one line header that is stripped before scoring.
// A gold file without a system file scores zero. The micro F-score weights
// each file score by the number of lines of its gold file.
package evaluate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	goldPrefix = "gold-"
	sysPrefix  = "sys-"
)

// Scorer scores the header-less files gold and sys, both inside dir.
type Scorer interface {
	Score(ctx context.Context, dir, gold, sys string) (float64, error)
}

// FileScore is the result of one gold file.
type FileScore struct {
	File  string  `json:"file"`
	Score float64 `json:"score"`

	// Weight is the number of lines of the gold file after the header.
	Weight int `json:"weight"`

	// Missing is true when the system produced no file.
	Missing bool `json:"missing"`
}

type Report struct {
	Files []FileScore `json:"files"`
	Micro float64     `json:"micro_fscore"`
}

type Driver struct {
	GoldDir   string
	SystemDir string
	Scorer    Scorer

	// Pattern, if not empty, is a doublestar pattern that gold file names
	// must match.
	Pattern string

	Logger *slog.Logger
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Run scores every gold file. Missing system files are logged and scored
// zero; any other failure stops the run.
func (d *Driver) Run(ctx context.Context) (Report, error) {
	if d.Scorer == nil {
		return Report{}, errors.New("no scorer")
	}

	names, err := d.goldFiles()
	if err != nil {
		return Report{}, err
	}

	tmp, err := os.MkdirTemp("", "pragbank-eval-")
	if err != nil {
		return Report{}, err
	}
	defer os.RemoveAll(tmp)

	var report Report
	var weighted float64
	var total int

	for _, name := range names {
		goldName := goldPrefix + name
		weight, err := stripHeader(filepath.Join(d.GoldDir, name), filepath.Join(tmp, goldName))
		if err != nil {
			return Report{}, fmt.Errorf("gold file %s: %w", name, err)
		}
		total += weight

		sysPath := filepath.Join(d.SystemDir, name)
		if _, err := os.Stat(sysPath); errors.Is(err, os.ErrNotExist) {
			d.logger().Warn("no answer file found, score set to 0", "file", sysPath)
			report.Files = append(report.Files, FileScore{File: name, Weight: weight, Missing: true})
			continue
		}

		sysName := sysPrefix + name
		if _, err := stripHeader(sysPath, filepath.Join(tmp, sysName)); err != nil {
			return Report{}, fmt.Errorf("system file %s: %w", name, err)
		}

		score, err := d.Scorer.Score(ctx, tmp, goldName, sysName)
		if err != nil {
			return Report{}, fmt.Errorf("scoring %s: %w", name, err)
		}

		d.logger().Debug("scored", "file", name, "score", score, "weight", weight)
		report.Files = append(report.Files, FileScore{File: name, Score: score, Weight: weight})
		weighted += score * float64(weight)
	}

	if total > 0 {
		report.Micro = weighted / float64(total)
	}

	return report, nil
}

// goldFiles returns the sorted names of the regular files of GoldDir that
// match Pattern.
func (d *Driver) goldFiles() ([]string, error) {
	if d.Pattern != "" && !doublestar.ValidatePattern(d.Pattern) {
		return nil, fmt.Errorf("pattern %q: %w", d.Pattern, doublestar.ErrBadPattern)
	}

	entries, err := os.ReadDir(d.GoldDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}

		if d.Pattern != "" {
			ok, err := doublestar.Match(d.Pattern, e.Name())
			if err != nil {
				return nil, fmt.Errorf("pattern %q: %w", d.Pattern, err)
			}
			if !ok {
				continue
			}
		}

		names = append(names, e.Name())
	}

	sort.Strings(names)
	return names, nil
}

// stripHeader copies src to dst without its first line and returns the
// number of lines copied.
func stripHeader(src, dst string) (n int, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)

	first := true
	for {
		line, rerr := r.ReadString('\n')
		if line != "" {
			if first {
				first = false
			} else {
				if _, err := w.WriteString(line); err != nil {
					return 0, err
				}
				n++
			}
		}

		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return 0, rerr
		}
	}

	return n, w.Flush()
}

package evaluate

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	TimelineScript        = "evaluation_timeline.py"
	OrderedTimelineScript = "evaluation_timeline_ord.py"

	// OutputFile is written by the scorer script inside the working dir.
	OutputFile = "tmp.out"

	DefaultPython = "python"
)

// CommandScorer runs the timeline scorer scripts as a subprocess:
//
//	python <ScriptDir>/evaluation_timeline.py <dir> gold-x sys-x
//
// and reads the F-score from the first non blank line of <dir>/tmp.out.
type CommandScorer struct {
	Python    string
	ScriptDir string

	// Ordered selects the scorer that takes the order of the timeline
	// events into account.
	Ordered bool
}

func (c *CommandScorer) script() string {
	name := TimelineScript
	if c.Ordered {
		name = OrderedTimelineScript
	}
	return filepath.Join(c.ScriptDir, name)
}

func (c *CommandScorer) Score(ctx context.Context, dir, gold, sys string) (float64, error) {
	python := c.Python
	if python == "" {
		python = DefaultPython
	}

	out := filepath.Join(dir, OutputFile)
	// a stale result must not be read as the score of this run
	if err := os.Remove(out); err != nil && !errors.Is(err, os.ErrNotExist) {
		return 0, err
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, python, c.script(), dir, gold, sys)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("%s: %w: %s", c.script(), err, strings.TrimSpace(stderr.String()))
	}

	return readScore(out)
}

// readScore parses the first non blank line of path as a float.
func readScore(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		score, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		return score, nil
	}

	if err := s.Err(); err != nil {
		return 0, err
	}

	return 0, fmt.Errorf("%s: no score found", path)
}

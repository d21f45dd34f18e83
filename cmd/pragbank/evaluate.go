package main

import (
	"errors"

	"github.com/revelaction/pragbank/evaluate"
	"github.com/urfave/cli/v2"
)

func evaluateCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "evaluate",
		Usage:     "score system timelines against gold timelines",
		ArgsUsage: "<gold dir> <system dir>",
		Flags: []cli.Flag{
			formatFlag(),
			&cli.BoolFlag{
				Name:  "ordered",
				Usage: "use the scorer that takes the timeline order into account",
			},
			&cli.StringFlag{
				Name:  "pattern",
				Usage: "only gold files matching the pattern, e.g. '*.txt'",
			},
			&cli.StringFlag{
				Name:  "python",
				Usage: "python interpreter of the scorer (default from config)",
			},
			&cli.StringFlag{
				Name:  "scripts",
				Usage: "directory of the scorer scripts (default from config)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("evaluate needs a gold and a system directory")
			}

			r, err := e.renderer(c.String("format"))
			if err != nil {
				return err
			}

			scorer := &evaluate.CommandScorer{
				Python:    e.cfg.Scorer.Python,
				ScriptDir: e.cfg.Scorer.ScriptDir,
				Ordered:   c.Bool("ordered"),
			}
			if c.IsSet("python") {
				scorer.Python = c.String("python")
			}
			if c.IsSet("scripts") {
				scorer.ScriptDir = c.String("scripts")
			}

			d := &evaluate.Driver{
				GoldDir:   c.Args().Get(0),
				SystemDir: c.Args().Get(1),
				Scorer:    scorer,
				Pattern:   c.String("pattern"),
				Logger:    e.logger,
			}

			report, err := d.Run(c.Context)
			if err != nil {
				return err
			}

			return r.Evaluation(report)
		},
	}
}

package main

import (
	"github.com/revelaction/pragbank/config"
	"github.com/revelaction/pragbank/render"
	"github.com/urfave/cli/v2"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   render.FormatText,
		Usage:   "output format: text or json",
	}
}

func splitFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "split",
		Aliases: []string{"s"},
		Usage:   "only events of the train or test split (default from config)",
	}
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui}

	return &cli.App{
		Name:                 "pragbank",
		Usage:                "FactBank and PragBank veridicality corpus statistics",
		EnableBashCompletion: true,
		HideVersion:          true,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"PRAGBANK_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "corpus",
				Usage: "corpus CSV file or SQLite database (default from config)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (default from config)",
			},
		},
		Before: func(c *cli.Context) error {
			return e.setup(c)
		},
		After: func(c *cli.Context) error {
			return e.pool.Close()
		},
		Commands: []*cli.Command{
			confusionCmd(e),
			lexicalCmd(e),
			modalsCmd(e),
			sourcesCmd(e),
			compareCmd(e),
			eventCmd(e),
			exploreCmd(e),
			importCmd(e),
			exportCmd(e),
			loadsCmd(e),
			evaluateCmd(e),
			verbCmd(e),
			bashCmd(e),
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(e.ui)
				},
			},
		},
	}
}

// setup loads the configuration, applies the global flags over it and
// creates the logger.
func (e *env) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("corpus") {
		cfg.Corpus = c.String("corpus")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}

	e.cfg = cfg
	e.logger = NewLogger(e.ui.Err, cfg.Log)
	return nil
}

// split returns the split flag of the command, or the configured one.
func (e *env) split(c *cli.Context) string {
	if c.IsSet("split") {
		return c.String("split")
	}
	return e.cfg.Split
}

package main

import (
	"github.com/revelaction/pragbank/stat"
	"github.com/urfave/cli/v2"
)

func confusionCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "confusion",
		Usage: "FactBank AUTHOR tag versus PragBank majority tag (CSV)",
		Flags: []cli.Flag{formatFlag(), splitFlag()},
		Action: func(c *cli.Context) error {
			r, err := e.renderer(c.String("format"))
			if err != nil {
				return err
			}

			events, err := e.events(e.split(c))
			if err != nil {
				return err
			}

			m := stat.Confusion(events)
			if m.Skipped > 0 {
				e.logger.Warn("events without AUTHOR value skipped", "count", m.Skipped)
			}
			return r.Confusion(m)
		},
	}
}

func lexicalCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "lexical",
		Usage: "words most associated with each FactBank and PragBank category",
		Flags: []cli.Flag{
			formatFlag(),
			splitFlag(),
			&cli.IntFlag{
				Name:    "top",
				Aliases: []string{"n"},
				Usage:   "words per category (default from config)",
			},
		},
		Action: func(c *cli.Context) error {
			r, err := e.renderer(c.String("format"))
			if err != nil {
				return err
			}

			n := e.cfg.TopN
			if c.IsSet("top") {
				n = c.Int("top")
			}

			lm, err := e.lemmatizer()
			if err != nil {
				return err
			}

			events, err := e.events(e.split(c))
			if err != nil {
				return err
			}

			return r.Associations(stat.LexicalAssociations(events, lm), n)
		},
	}
}

func modalsCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "modals",
		Usage: "tags of the events under the scope of a modal verb",
		Flags: []cli.Flag{
			formatFlag(),
			splitFlag(),
			&cli.StringSliceFlag{
				Name:  "source",
				Usage: "factbank, pragbank or both (repeat the flag)",
				Value: cli.NewStringSlice(stat.SourceFactBank.String(), stat.SourcePragBank.String()),
			},
		},
		Action: func(c *cli.Context) error {
			r, err := e.renderer(c.String("format"))
			if err != nil {
				return err
			}

			var sources []stat.Source
			for _, s := range c.StringSlice("source") {
				src, err := stat.ParseSource(s)
				if err != nil {
					return err
				}
				sources = append(sources, src)
			}

			events, err := e.events(e.split(c))
			if err != nil {
				return err
			}

			for _, src := range sources {
				m := stat.ModalStats(events, src)
				if m.Skipped > 0 {
					e.logger.Warn("modal events without tag skipped", "source", src, "count", m.Skipped)
				}
				if err := r.Modals(src, m); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func sourcesCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "sources",
		Usage: "FactBank annotation sources other than AUTHOR, by frequency",
		Flags: []cli.Flag{formatFlag(), splitFlag()},
		Action: func(c *cli.Context) error {
			r, err := e.renderer(c.String("format"))
			if err != nil {
				return err
			}

			events, err := e.events(e.split(c))
			if err != nil {
				return err
			}

			return r.Sources(stat.NonAuthorSources(events))
		},
	}
}

func compareCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "AUTHOR tag versus the tags of the other FactBank sources",
		Flags: []cli.Flag{formatFlag(), splitFlag()},
		Action: func(c *cli.Context) error {
			r, err := e.renderer(c.String("format"))
			if err != nil {
				return err
			}

			events, err := e.events(e.split(c))
			if err != nil {
				return err
			}

			return r.Comparison(stat.AuthorComparison(events))
		},
	}
}

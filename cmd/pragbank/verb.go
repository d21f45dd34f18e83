package main

import (
	"errors"
	"fmt"

	"github.com/revelaction/pragbank/verbnet"
	"github.com/urfave/cli/v2"
)

func verbCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "verb",
		Usage:     "print the VerbNet class of each verb",
		ArgsUsage: "<verb...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "verbnet",
				Usage: "directory of the VerbNet class files (default from config)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("no verb given")
			}

			dir := e.cfg.VerbNet
			if c.IsSet("verbnet") {
				dir = c.String("verbnet")
			}
			if dir == "" {
				return errors.New("no VerbNet directory, use --verbnet or verbnet_dir in the config")
			}

			idx, err := verbnet.LoadIndex(dir)
			if err != nil {
				return err
			}
			e.logger.Debug("verbnet loaded", "dir", dir, "lemmas", idx.Len())

			lm, err := e.lemmatizer()
			if err != nil {
				return err
			}

			for _, word := range c.Args().Slice() {
				fmt.Fprintf(e.ui.Out, "%s %s\n", word, idx.Lookup(word, lm))
			}
			return nil
		},
	}
}

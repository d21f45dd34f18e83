package main

import (
	"github.com/revelaction/pragbank/explore"
	"github.com/urfave/cli/v2"
)

func exploreCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "explore",
		Usage: "interactive prompt over the events",
		Flags: []cli.Flag{formatFlag()},
		Action: func(c *cli.Context) error {
			r, err := e.renderer(c.String("format"))
			if err != nil {
				return err
			}

			events, err := e.events("")
			if err != nil {
				return err
			}

			return explore.NewHandler(events, r).Run()
		},
	}
}

package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/pragbank/render"
	"github.com/urfave/cli/v2"
)

func eventCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "event",
		Usage:     "list the events, or show the events at the given indexes",
		ArgsUsage: "[index...]",
		Flags:     []cli.Flag{formatFlag(), splitFlag()},
		Action: func(c *cli.Context) error {
			r, err := e.renderer(c.String("format"))
			if err != nil {
				return err
			}

			events, err := e.events(e.split(c))
			if err != nil {
				return err
			}

			if c.NArg() == 0 {
				if r.Format == render.FormatJSON {
					return r.JSON(events)
				}
				for i, ev := range events {
					r.EventLine(i, ev)
				}
				return nil
			}

			for _, arg := range c.Args().Slice() {
				i, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("index %q is not a number", arg)
				}
				if i < 0 || i >= len(events) {
					return fmt.Errorf("index %d out of range, the corpus has %d events", i, len(events))
				}

				if err := r.Event(i, events[i]); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

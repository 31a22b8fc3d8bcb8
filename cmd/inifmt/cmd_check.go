package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	ini "github.com/KimNorgaard/go-ini"
)

func (r *runner) cmdCheck() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report every problem in the given files",
		ArgsUsage: "FILE...",
		Action:    r.runCheck,
	}
}

func (r *runner) runCheck(c *cli.Context) error {
	if err := requireArgs(c, 1, -1); err != nil {
		return err
	}
	problems := 0
	for _, name := range c.Args().Slice() {
		doc, _, err := r.load(c, name, ini.CollectErrors())
		if err != nil {
			return err
		}
		for _, d := range doc.ParsingErrors {
			fmt.Fprintf(r.stdout, "%s:%d: %s\n", name, d.Line, d.Reason)
		}
		problems += len(doc.ParsingErrors)
	}
	if problems > 0 {
		return cli.Exit(fmt.Sprintf("%d problem(s) found", problems), 1)
	}
	return nil
}

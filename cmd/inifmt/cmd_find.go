package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/KimNorgaard/go-ini/filter"
)

func (r *runner) cmdFind() *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "Print the properties whose section and key match the patterns",
		Description: `Patterns are globs with '.' as separator ("db.*", "**"), or regular
expressions when prefixed with "re:". KEYPATTERN defaults to "*".`,
		ArgsUsage: "FILE SECTIONPATTERN [KEYPATTERN]",
		Action:    r.runFind,
	}
}

func (r *runner) runFind(c *cli.Context) error {
	if err := requireArgs(c, 2, 3); err != nil {
		return err
	}
	args := c.Args()
	keyPattern := "*"
	if args.Len() == 3 {
		keyPattern = args.Get(2)
	}

	doc, _, err := r.load(c, args.Get(0))
	if err != nil {
		return err
	}
	matches, err := filter.Find(doc, args.Get(1), keyPattern)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	for _, m := range matches {
		name := m.Property.Name()
		if s := m.Section.Name(); s != "" {
			name = s + "." + name
		}
		fmt.Fprintf(r.stdout, "%s = %s\n", name, m.Property.Value)
	}
	return nil
}

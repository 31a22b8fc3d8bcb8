package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	ini "github.com/KimNorgaard/go-ini"
)

func (r *runner) cmdGet() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     `Print a value; use "" for the default section`,
		ArgsUsage: "FILE SECTION KEY",
		Action:    r.runGet,
	}
}

func (r *runner) runGet(c *cli.Context) error {
	if err := requireArgs(c, 3, 3); err != nil {
		return err
	}
	name, section, key := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)
	doc, _, err := r.load(c, name)
	if err != nil {
		return err
	}
	v, ok := doc.Get(section, key)
	if !ok {
		return cli.Exit(fmt.Sprintf("%s: key %q not found in section %q", name, key, section), 1)
	}
	_, err = fmt.Fprintln(r.stdout, v)
	return err
}

func (r *runner) cmdSet() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set a value, creating the file, section or key as needed",
		ArgsUsage: "FILE SECTION KEY VALUE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quote", Aliases: []string{"q"}, Usage: "always write the value in quotes"},
		},
		Action: r.runSet,
	}
}

func (r *runner) runSet(c *cli.Context) error {
	if err := requireArgs(c, 4, 4); err != nil {
		return err
	}
	args := c.Args()
	name := args.Get(0)

	doc, opts, err := r.load(c, name)
	if errors.Is(err, os.ErrNotExist) {
		opts, err = r.options(c)
		doc = ini.NewDocument()
	}
	if err != nil {
		return err
	}
	p, err := doc.Set(args.Get(1), args.Get(2), args.Get(3))
	if err != nil {
		return err
	}
	if c.Bool("quote") {
		p.IsQuoted = true
	}
	return ini.SaveFileContext(c.Context, name, doc, opts...)
}

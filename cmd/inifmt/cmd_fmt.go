package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	ini "github.com/KimNorgaard/go-ini"
	"github.com/KimNorgaard/go-ini/ast"
)

func (r *runner) cmdFmt() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Rewrite files in normalized form",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "write the result back to the file"},
			&cli.BoolFlag{Name: "diff", Aliases: []string{"d"}, Usage: "print a diff instead of the result"},
		},
		Action: r.runFmt,
	}
}

func (r *runner) runFmt(c *cli.Context) error {
	if err := requireArgs(c, 1, -1); err != nil {
		return err
	}
	opts, err := r.options(c)
	if err != nil {
		return err
	}
	for _, name := range c.Args().Slice() {
		if err := c.Context.Err(); err != nil {
			return err
		}
		orig, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		doc, out, changed, err := reformat(orig, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		r.log.Debug("formatted file", zap.String("file", name), zap.Bool("changed", changed))

		if c.Bool("diff") && changed {
			writeDiff(r.stdout, name, string(orig), string(out))
		}
		if c.Bool("write") {
			if changed {
				if err := ini.SaveFileContext(c.Context, name, doc, opts...); err != nil {
					return err
				}
			}
			continue
		}
		if !c.Bool("diff") {
			if _, err := r.stdout.Write(out); err != nil {
				return err
			}
		}
	}
	return nil
}

// reformat parses src and serializes it again. changed reports whether the
// output differs from src itself, not from a later read of the file.
func reformat(src []byte, opts []ini.Option) (*ast.Document, []byte, bool, error) {
	doc, err := ini.Parse(src, opts...)
	if err != nil {
		return nil, nil, false, err
	}
	out, err := ini.Marshal(doc, opts...)
	if err != nil {
		return nil, nil, false, err
	}
	return doc, out, !bytes.Equal(src, out), nil
}

// writeDiff prints a line-oriented diff of a and b.
func writeDiff(w io.Writer, name, a, b string) {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	fmt.Fprintf(w, "--- %s\n+++ %s\n", name, name)
	for _, d := range diffs {
		var mark string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			mark = "-"
		case diffmatchpatch.DiffInsert:
			mark = "+"
		default:
			mark = " "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprint(w, mark+line)
			if !strings.HasSuffix(line, "\n") {
				fmt.Fprintln(w)
			}
		}
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/KimNorgaard/go-ini/ast"
)

func (r *runner) cmdStat() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "Summarize the content of a file",
		ArgsUsage: "FILE",
		Action:    r.runStat,
	}
}

type stats struct {
	sections   int
	properties int
	comments   int
}

func countStats(doc *ast.Document) stats {
	st := stats{sections: doc.Sections.Len(), comments: len(doc.TrailingComments)}
	count := func(s *ast.Section) {
		st.comments += len(s.PreComments)
		if s.Comment != nil {
			st.comments++
		}
		for _, p := range s.Properties.All() {
			st.properties++
			st.comments += len(p.PreComments)
			if p.Comment != nil {
				st.comments++
			}
		}
	}
	count(doc.Default)
	for _, s := range doc.Sections.All() {
		count(s)
	}
	return st
}

func (r *runner) runStat(c *cli.Context) error {
	if err := requireArgs(c, 1, 1); err != nil {
		return err
	}
	name := c.Args().First()
	fi, err := os.Stat(name)
	if err != nil {
		return err
	}
	doc, _, err := r.load(c, name)
	if err != nil {
		return err
	}
	st := countStats(doc)
	fmt.Fprintf(r.stdout, "file:       %s\n", name)
	fmt.Fprintf(r.stdout, "size:       %s\n", humanize.Bytes(uint64(fi.Size())))
	fmt.Fprintf(r.stdout, "modified:   %s\n", humanize.Time(fi.ModTime()))
	fmt.Fprintf(r.stdout, "sections:   %s\n", humanize.Comma(int64(st.sections)))
	fmt.Fprintf(r.stdout, "properties: %s\n", humanize.Comma(int64(st.properties)))
	fmt.Fprintf(r.stdout, "comments:   %s\n", humanize.Comma(int64(st.comments)))
	return nil
}

package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-ini/ast"
)

func (r *runner) cmdExport() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Print a file as JSON or YAML, section by section",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "output format: json or yaml"},
		},
		Action: r.runExport,
	}
}

func (r *runner) runExport(c *cli.Context) error {
	if err := requireArgs(c, 1, 1); err != nil {
		return err
	}
	doc, _, err := r.load(c, c.Args().First())
	if err != nil {
		return err
	}
	switch f := c.String("format"); f {
	case "json":
		return exportJSON(r.stdout, doc)
	case "yaml", "yml":
		return exportYAML(r.stdout, doc)
	default:
		return cli.Exit(fmt.Sprintf("unknown format %q", f), 2)
	}
}

// exportSections lists the sections in output order. The default section
// is included under the empty name when it has properties.
func exportSections(doc *ast.Document) []*ast.Section {
	var out []*ast.Section
	if doc.Default != nil && doc.Default.Properties.Len() > 0 {
		out = append(out, doc.Default)
	}
	for _, s := range doc.Sections.All() {
		out = append(out, s)
	}
	return out
}

// exportJSON streams doc as an object of objects, keeping document order.
func exportJSON(w io.Writer, doc *ast.Document) error {
	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(w)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, s := range exportSections(doc) {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(s.Name())
		stream.WriteObjectStart()
		for j, p := range s.Properties.All() {
			if j > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(p.Name())
			stream.WriteString(p.Value)
		}
		stream.WriteObjectEnd()
	}
	stream.WriteObjectEnd()
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}

// exportYAML writes doc as a mapping of mappings, keeping document order
// and carrying comments over as YAML comments.
func exportYAML(w io.Writer, doc *ast.Document) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range exportSections(doc) {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, p := range s.Properties.All() {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Name(), HeadComment: yamlComments(p.PreComments)}
			val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value}
			if p.Comment != nil {
				val.LineComment = "#" + p.Comment.Value
			}
			body.Content = append(body.Content, key, val)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Name(), HeadComment: yamlComments(s.PreComments)}
		root.Content = append(root.Content, key, body)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return err
	}
	return enc.Close()
}

func yamlComments(cs []*ast.Comment) string {
	var s string
	for i, c := range cs {
		if i > 0 {
			s += "\n"
		}
		s += "#" + c.Value
	}
	return s
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	ini "github.com/KimNorgaard/go-ini"
	"github.com/KimNorgaard/go-ini/ast"
)

// runner carries what the command actions share.
type runner struct {
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

func newApp(stdout, stderr io.Writer) *cli.App {
	r := &runner{stdout: stdout, stderr: stderr, log: zap.NewNop()}

	app := cli.NewApp()
	app.Name = "inifmt"
	app.Usage = "Format, check and edit INI files"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = globalFlags()
	app.Before = r.before
	app.After = func(*cli.Context) error {
		_ = r.log.Sync()
		return nil
	}
	app.Commands = []*cli.Command{
		r.cmdFmt(),
		r.cmdCheck(),
		r.cmdGet(),
		r.cmdSet(),
		r.cmdExport(),
		r.cmdFind(),
		r.cmdStat(),
	}
	return app
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "comment-prefixes",
			Value: ";#",
			Usage: "characters that start a comment, the first one is used for new comments",
		},
		&cli.StringFlag{
			Name:  "duplicate-sections",
			Value: "first",
			Usage: "policy for repeated sections: first, last, merge or error",
		},
		&cli.StringFlag{
			Name:  "duplicate-keys",
			Value: "first",
			Usage: "policy for repeated keys: first, last or error",
		},
		&cli.IntFlag{Name: "max-errors", Usage: "maximum number of problems reported by check (0 = unlimited)"},
		&cli.IntFlag{Name: "max-sections", Usage: "maximum number of sections (0 = unlimited)"},
		&cli.IntFlag{Name: "max-properties", Usage: "maximum number of properties per section (0 = unlimited)"},
		&cli.IntFlag{Name: "max-value-length", Usage: "maximum value length in bytes (0 = unlimited)"},
		&cli.IntFlag{Name: "max-line-length", Usage: "maximum line length in bytes (0 = unlimited)"},
		&cli.StringFlag{
			Name:  "encoding",
			Usage: `text encoding of the files, such as "latin1", or "auto" to detect it`,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log parser decisions to stderr",
		},
	}
}

func (r *runner) before(c *cli.Context) error {
	if c.Bool("verbose") {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		r.log = zap.New(zapcore.NewCore(enc, zapcore.AddSync(r.stderr), zapcore.DebugLevel))
	}
	return nil
}

var (
	sectionPolicies = map[string]ast.DuplicateSectionPolicy{
		"first": ast.SectionFirstWin,
		"last":  ast.SectionLastWin,
		"merge": ast.SectionMerge,
		"error": ast.SectionThrowError,
	}
	keyPolicies = map[string]ast.DuplicateKeyPolicy{
		"first": ast.KeyFirstWin,
		"last":  ast.KeyLastWin,
		"error": ast.KeyThrowError,
	}
)

// options turns the global flags into parser options.
func (r *runner) options(c *cli.Context) ([]ini.Option, error) {
	prefixes := []rune(c.String("comment-prefixes"))
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("--comment-prefixes cannot be empty")
	}
	sp, ok := sectionPolicies[strings.ToLower(c.String("duplicate-sections"))]
	if !ok {
		return nil, fmt.Errorf("unknown --duplicate-sections policy %q", c.String("duplicate-sections"))
	}
	kp, ok := keyPolicies[strings.ToLower(c.String("duplicate-keys"))]
	if !ok {
		return nil, fmt.Errorf("unknown --duplicate-keys policy %q", c.String("duplicate-keys"))
	}

	opts := []ini.Option{
		ini.CommentPrefixes(prefixes...),
		ini.DefaultCommentPrefix(prefixes[0]),
		ini.DuplicateSections(sp),
		ini.DuplicateKeys(kp),
		ini.MaxErrors(c.Int("max-errors")),
		ini.WithLimits(ini.Limits{
			MaxSections:             c.Int("max-sections"),
			MaxPropertiesPerSection: c.Int("max-properties"),
			MaxValueLength:          c.Int("max-value-length"),
			MaxLineLength:           c.Int("max-line-length"),
		}),
		ini.WithLogger(r.log),
	}
	switch enc := c.String("encoding"); enc {
	case "":
	case "auto":
		opts = append(opts, ini.DetectEncoding())
	default:
		opts = append(opts, ini.EncodingLabel(enc))
	}
	return opts, nil
}

// load parses one file with the global options plus extra.
func (r *runner) load(c *cli.Context, name string, extra ...ini.Option) (*ast.Document, []ini.Option, error) {
	opts, err := r.options(c)
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, extra...)
	doc, err := ini.LoadFileContext(c.Context, name, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	r.log.Debug("loaded file", zap.String("file", name), zap.Int("sections", doc.Sections.Len()))
	return doc, opts, nil
}

func requireArgs(c *cli.Context, lo, hi int) error {
	n := c.NArg()
	if n < lo || (hi >= 0 && n > hi) {
		return cli.Exit(fmt.Sprintf("usage: %s %s %s", c.App.Name, c.Command.Name, c.Command.ArgsUsage), 2)
	}
	return nil
}

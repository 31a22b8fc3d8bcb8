package parser

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/KimNorgaard/go-ini/ast"
	"github.com/KimNorgaard/go-ini/errors"
	"github.com/KimNorgaard/go-ini/internal/lexer"
	"github.com/KimNorgaard/go-ini/internal/token"
)

// Parser builds a Document from the lines of a Lexer.
type Parser struct {
	l     *lexer.Lexer
	cfg   ast.Config
	guard guard
	errs  collector
	log   *zap.Logger

	doc *ast.Document
	// cur receives properties. It is nil while the properties of a rejected
	// or ignored section are being skipped.
	cur *ast.Section
	// pending holds comment lines until the next accepted section or property.
	pending []*ast.Comment
}

// New creates a new parser. cfg must already be valid.
func New(l *lexer.Lexer, cfg ast.Config, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{
		l:     l,
		cfg:   cfg,
		guard: newGuard(&cfg),
		errs: collector{
			collect: cfg.CollectParsingErrors,
			max:     cfg.MaxParsingErrors,
			log:     log,
		},
		log: log,
	}
}

// Parse reads every line and returns the document. In fail-fast mode the
// first diagnostic is returned as a *errors.ParseError and no document is
// returned. In collect mode only read errors fail the parse.
func (p *Parser) Parse() (*ast.Document, error) {
	p.doc = ast.NewDocument(p.cfg)
	p.cur = p.doc.Default

	for {
		phys, err := p.l.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
		if err := p.parseLine(phys); err != nil {
			return nil, err
		}
	}

	p.doc.TrailingComments = p.pending
	p.pending = nil
	p.doc.ParsingErrors = p.errs.finish()
	p.log.Debug("parsed document",
		zap.Int("sections", p.doc.Sections.Len()),
		zap.Int("diagnostics", len(p.doc.ParsingErrors)),
	)
	return p.doc, nil
}

func (p *Parser) parseLine(phys lexer.Physical) error {
	if reason := p.guard.line(phys.Length); reason != "" {
		p.pending = nil
		return p.report(errors.Limit, phys.Number, phys.Text, reason)
	}

	line := lexer.Classify(phys.Number, phys.Text, p.cfg.IsCommentPrefix)
	switch line.Kind {
	case token.BLANK:
		return nil
	case token.COMMENT:
		p.pending = append(p.pending, ast.NewComment(line.Prefix, line.Text))
		return nil
	case token.SECTION:
		return p.parseSection(line)
	case token.PROPERTY:
		return p.parseProperty(line)
	}
	p.pending = nil
	return p.report(errors.Structural, line.Number, line.Raw, line.Reason)
}

func (p *Parser) parseSection(line token.Line) error {
	comments := p.takePending()
	var inline *ast.Comment
	if line.HasComment {
		inline = ast.NewComment(line.Prefix, line.Text)
	}

	existing, ok := p.doc.Sections.Get(line.Name)
	if !ok {
		if reason := p.guard.sections(p.doc.Sections.Len()); reason != "" {
			p.cur = nil
			return p.report(errors.Limit, line.Number, line.Raw, reason)
		}
		s := ast.NewSection(line.Name)
		s.Comment = inline
		s.PreComments = comments
		if err := p.doc.Sections.Add(s); err != nil {
			return err
		}
		p.cur = s
		return nil
	}

	res, reason := resolveSection(p.cfg.DuplicateSectionPolicy, existing.Name())
	p.log.Debug("duplicate section",
		zap.String("section", existing.Name()),
		zap.Int("line", line.Number),
		zap.Stringer("resolution", res),
	)
	if reason != "" {
		if err := p.report(errors.Policy, line.Number, line.Raw, reason); err != nil {
			return err
		}
	}

	switch res {
	case replaceExisting:
		existing.Properties.Clear()
		existing.PreComments = comments
		existing.Comment = inline
		p.cur = existing
	case mergeIntoExisting:
		existing.PreComments = append(existing.PreComments, comments...)
		if existing.Comment == nil {
			existing.Comment = inline
		}
		p.cur = existing
	default:
		p.cur = nil
	}
	return nil
}

func (p *Parser) parseProperty(line token.Line) error {
	comments := p.takePending()

	v, reason := lexer.DecodeValue(line.Value, p.cfg.IsCommentPrefix)
	if reason != "" {
		return p.report(errors.Structural, line.Number, line.Raw, reason)
	}
	if reason := p.guard.value(len(v.Text)); reason != "" {
		return p.report(errors.Limit, line.Number, line.Raw, reason)
	}
	if p.cur == nil {
		return nil
	}

	prop := ast.NewProperty(line.Name, v.Text)
	prop.IsQuoted = v.Quoted
	prop.PreComments = comments
	if v.HasComment {
		prop.Comment = ast.NewComment(v.Prefix, v.Comment)
	}

	if existing, ok := p.cur.Properties.Get(line.Name); ok {
		return p.resolveDuplicateKey(line, existing, prop)
	}
	if reason := p.guard.properties(p.cur.Properties.Len(), p.cur.Name()); reason != "" {
		return p.report(errors.Limit, line.Number, line.Raw, reason)
	}
	return p.cur.Properties.Add(prop)
}

func (p *Parser) resolveDuplicateKey(line token.Line, existing, prop *ast.Property) error {
	res, reason := resolveKey(p.cfg.DuplicateKeyPolicy, p.cur.Name(), existing.Name())
	if reason != "" {
		if err := p.report(errors.Policy, line.Number, line.Raw, reason); err != nil {
			return err
		}
	}
	if res == replaceExisting {
		existing.Value = prop.Value
		existing.IsQuoted = prop.IsQuoted
		existing.Comment = prop.Comment
		existing.PreComments = prop.PreComments
	}
	return nil
}

func (p *Parser) takePending() []*ast.Comment {
	c := p.pending
	p.pending = nil
	return c
}

func (p *Parser) report(kind errors.Kind, line int, raw, reason string) error {
	return p.errs.report(errors.Diagnostic{
		Kind:   kind,
		Line:   line,
		Raw:    raw,
		Reason: reason,
	})
}

package ast

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KimNorgaard/go-ini/internal/escape"
)

// Bool interprets the value as a boolean. true/false, yes/no, on/off and 1/0
// are accepted in any case.
func (p *Property) Bool() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(p.Value)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, p.typeError("bool", nil)
}

// Int interprets the value as a base-10 int.
func (p *Property) Int() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(p.Value))
	if err != nil {
		return 0, p.typeError("int", err)
	}
	return n, nil
}

// Int64 interprets the value as an integer. Base prefixes (0x, 0o, 0b) are
// accepted.
func (p *Property) Int64() (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(p.Value), 0, 64)
	if err != nil {
		return 0, p.typeError("int64", err)
	}
	return n, nil
}

// Float64 interprets the value as a floating point number.
func (p *Property) Float64() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
	if err != nil {
		return 0, p.typeError("float64", err)
	}
	return f, nil
}

// Duration interprets the value with time.ParseDuration.
func (p *Property) Duration() (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(p.Value))
	if err != nil {
		return 0, p.typeError("duration", err)
	}
	return d, nil
}

// Strings interprets the value as an array of the form {a, b, "c,d"}. Items
// may be quoted; quoted items use the same escapes as quoted values. A value
// without braces is a single item, and an empty value is an empty array.
func (p *Property) Strings() ([]string, error) {
	s := strings.TrimSpace(p.Value)
	if s == "" {
		return []string{}, nil
	}
	if !strings.HasPrefix(s, "{") {
		return []string{s}, nil
	}
	if !strings.HasSuffix(s, "}") {
		return nil, p.typeError("array", fmt.Errorf("missing closing brace"))
	}
	items, err := splitArray(s[1 : len(s)-1])
	if err != nil {
		return nil, p.typeError("array", err)
	}
	return items, nil
}

func splitArray(body string) ([]string, error) {
	items := []string{}
	if strings.TrimSpace(body) == "" {
		return items, nil
	}
	var (
		cur     strings.Builder
		quoted  bool // current item started with a quote
		inQuote bool
		closed  bool // closing quote of a quoted item seen
	)
	flush := func() error {
		if inQuote {
			return fmt.Errorf("unterminated quoted item")
		}
		if quoted {
			items = append(items, cur.String())
		} else {
			items = append(items, strings.TrimSpace(cur.String()))
		}
		cur.Reset()
		quoted, closed = false, false
		return nil
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case inQuote && c == '\\' && i+1 < len(body):
			i++
			if v, ok := escape.Lookup(body[i]); ok {
				cur.WriteByte(v)
			} else {
				cur.WriteByte(body[i])
			}
		case inQuote && c == '"':
			inQuote, closed = false, true
		case inQuote:
			cur.WriteByte(c)
		case c == ',':
			if err := flush(); err != nil {
				return nil, err
			}
		case c == '"' && !quoted && strings.TrimSpace(cur.String()) == "":
			cur.Reset()
			quoted, inQuote = true, true
		case closed:
			if c != ' ' && c != '\t' {
				return nil, fmt.Errorf("unexpected %q after quoted item", c)
			}
		default:
			cur.WriteByte(c)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return items, nil
}

// SetBool stores b as "true" or "false".
func (p *Property) SetBool(b bool) { p.Value = strconv.FormatBool(b) }

// SetInt stores n in base 10.
func (p *Property) SetInt(n int) { p.Value = strconv.Itoa(n) }

// SetFloat64 stores f in its shortest exact representation.
func (p *Property) SetFloat64(f float64) { p.Value = strconv.FormatFloat(f, 'g', -1, 64) }

// SetDuration stores d in time.Duration notation.
func (p *Property) SetDuration(d time.Duration) { p.Value = d.String() }

// SetStrings stores items in array notation, quoting the items that need it.
func (p *Property) SetStrings(items []string) {
	var b strings.Builder
	b.WriteByte('{')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		if it == "" || it != strings.TrimSpace(it) || strings.ContainsAny(it, `,"{}\`) {
			b.WriteString(escape.Quote(it))
		} else {
			b.WriteString(it)
		}
	}
	b.WriteByte('}')
	p.Value = b.String()
}

func (p *Property) typeError(typ string, err error) error {
	if err != nil {
		return fmt.Errorf("ini: property %q: cannot use %q as %s: %w", p.name, p.Value, typ, err)
	}
	return fmt.Errorf("ini: property %q: cannot use %q as %s", p.name, p.Value, typ)
}

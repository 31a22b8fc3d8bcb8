package parser

import (
	"go.uber.org/zap"

	"github.com/KimNorgaard/go-ini/errors"
)

// collector is the diagnostic sink shared by every parsing stage. In
// fail-fast mode the first diagnostic becomes the returned error.
type collector struct {
	collect bool
	max     int
	diags   []errors.Diagnostic
	dropped int
	log     *zap.Logger
}

// report records d, or returns it as a *errors.ParseError when parsing must
// stop.
func (c *collector) report(d errors.Diagnostic) error {
	if !c.collect {
		return &errors.ParseError{Diagnostic: d}
	}
	if c.max > 0 && len(c.diags) >= c.max {
		c.dropped++
		return nil
	}
	c.diags = append(c.diags, d)
	c.log.Debug("recorded parse diagnostic",
		zap.Int("line", d.Line),
		zap.Stringer("kind", d.Kind),
		zap.String("reason", d.Reason),
	)
	return nil
}

func (c *collector) finish() []errors.Diagnostic {
	if c.dropped > 0 {
		c.log.Debug("dropped parse diagnostics over the limit",
			zap.Int("limit", c.max),
			zap.Int("dropped", c.dropped),
		)
	}
	return c.diags
}

// Package grep wires an input source, a match strategy and an output sink
// into a single search run.
package grep

import (
	"fmt"
	"io"
	"time"

	"github.com/gopak/sift/internal/input"
	"github.com/gopak/sift/internal/logging"
	"github.com/gopak/sift/internal/output"
	"github.com/gopak/sift/internal/search"
)

// Request holds the per-run search settings. Color is a color name; empty
// means plain output.
type Request struct {
	Needle       string
	IgnoreCase   bool
	Invert       bool
	Mode         search.Mode
	Color        string
	MatchTimeout time.Duration
}

// Run reads every line from src, filters them and writes the result to w.
// Nothing is written unless reading and filtering both succeed.
func Run(src input.Source, req Request, w io.Writer) error {
	var col output.Color
	if req.Color != "" {
		c, err := output.ParseColor(req.Color)
		if err != nil {
			return err
		}
		col = c
	}

	lines, err := src.Read()
	if err != nil {
		return err
	}
	logging.Debug(fmt.Sprintf("read %d lines from %s", len(lines), src))

	m, err := search.Classify(req.Needle, search.Options{
		IgnoreCase:   req.IgnoreCase,
		Mode:         req.Mode,
		MatchTimeout: req.MatchTimeout,
	})
	if err != nil {
		return err
	}
	strategy := search.Select(m.Kind(), req.Invert)
	logging.Debug(fmt.Sprintf("needle %q classified as %s (ignore case: %t), strategy %s", m.Needle(), m.Kind(), m.IgnoreCase(), strategy))

	filtered, err := strategy.Filter(lines, m)
	if err != nil {
		return err
	}
	logging.Debug(fmt.Sprintf("%d of %d lines selected", len(filtered), len(lines)))

	sink := output.PlainSink()
	if req.Color != "" {
		sink = output.ColorSink(col, m)
	}
	return sink.Write(w, filtered)
}

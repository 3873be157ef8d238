// Package grid lays out lines of text in as many columns as fit a width
// budget. It is the library entry point behind the colx command.
//
//	err := grid.Arrange(ctx, os.Stdin, os.Stdout, grid.DefaultOptions())
package grid

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"

	"github.com/oakwood-commons/colx/internal/input"
	"github.com/oakwood-commons/colx/internal/layout"
	"github.com/oakwood-commons/colx/internal/limiter"
	"github.com/oakwood-commons/colx/internal/measure"
	"github.com/oakwood-commons/colx/pkg/logger"
)

// ErrInvalidUTF8 is returned when the input is not valid UTF-8.
var ErrInvalidUTF8 = input.ErrInvalidUTF8

// Options configures a layout run.
type Options struct {
	// MaxWidth is the widest a rendered row may be.
	MaxWidth int
	// Padding is the minimum number of spaces between adjacent columns.
	Padding int
	// Measure selects how printable characters are counted.
	Measure measure.Mode
	// Window selects which input lines are laid out.
	Window limiter.Config
}

// DefaultOptions returns a 120-column budget with 2 spaces between columns.
func DefaultOptions() Options {
	return Options{
		MaxWidth: int(layout.DefaultMaxWidth),
		Padding:  int(layout.DefaultPadding),
		Measure:  measure.ModeRunes,
	}
}

// Validate checks that the options describe a usable budget.
func (o Options) Validate() error {
	if o.MaxWidth < 1 || o.MaxWidth > math.MaxUint16 {
		return fmt.Errorf("width must be between 1 and %d, got %d", math.MaxUint16, o.MaxWidth)
	}
	if o.Padding < 0 || o.Padding > math.MaxUint16 {
		return fmt.Errorf("padding must be between 0 and %d, got %d", math.MaxUint16, o.Padding)
	}
	if _, err := measure.ParseMode(string(o.Measure)); err != nil {
		return err
	}
	return o.Window.Validate()
}

// Lines lays out lines and returns the rendered rows. If no layout of two or
// more columns fits, the selected lines are returned unchanged.
func Lines(ctx context.Context, lines []string, opts Options) ([]string, error) {
	var out []string
	err := Each(ctx, lines, opts, func(line string) {
		out = append(out, line)
	})
	return out, err
}

// Each lays out lines and passes each rendered row to emit, in order.
func Each(ctx context.Context, lines []string, opts Options, emit func(string)) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	mode, _ := measure.ParseMode(string(opts.Measure))
	lgr := logger.FromContext(ctx)

	lines = limiter.Apply(opts.Window, lines)
	items := layout.Measure(lines, mode)

	solver := layout.NewSolver(uint16(opts.MaxWidth), uint16(opts.Padding))
	res := solver.Solve(items)
	if res.Feasible {
		lgr.V(1).Info("layout found",
			logger.ItemsKey, len(items),
			logger.ColumnsKey, res.Cols,
			logger.WidthsKey, res.Widths,
			logger.RowsKey, (len(items)+res.Cols-1)/res.Cols,
		)
	} else {
		lgr.V(1).Info("no layout fits, passing lines through",
			logger.ItemsKey, len(items),
			logger.MaxWidthKey, opts.MaxWidth,
			logger.PaddingKey, opts.Padding,
		)
	}

	layout.Write(res, uint16(opts.Padding), items, emit)
	return nil
}

// Arrange reads all of r, lays the lines out and writes the rows to w, one per
// line. Nothing is written if r cannot be read or is not valid UTF-8.
func Arrange(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	lines, err := input.ReadLines(r)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var werr error
	err = Each(ctx, lines, opts, func(line string) {
		if werr != nil {
			return
		}
		if _, werr = bw.WriteString(line); werr == nil {
			werr = bw.WriteByte('\n')
		}
	})
	if err != nil {
		return err
	}
	if werr != nil {
		return fmt.Errorf("write output: %w", werr)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

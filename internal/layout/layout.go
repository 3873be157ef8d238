// Package layout arranges measured lines into a grid that fits a width budget.
//
// Items are chunked row by row: row r, column c holds the item at index
// r*cols + c. A column is as wide as its widest item, and adjacent columns are
// separated by at least Padding spaces.
package layout

import (
	"math"

	"github.com/oakwood-commons/colx/internal/measure"
)

const (
	// DefaultMaxWidth is the default maximum rendered row width.
	DefaultMaxWidth uint16 = 120
	// DefaultPadding is the default separator width between columns.
	DefaultPadding uint16 = 2
)

// Item pairs a line with its measured display width.
type Item struct {
	Content string
	Width   uint16
}

// Measure builds one Item per line using mode.
func Measure(lines []string, mode measure.Mode) []Item {
	items := make([]Item, len(lines))
	for i, line := range lines {
		items[i] = Item{Content: line, Width: mode.Width(line)}
	}
	return items
}

// Result is the outcome of a column search. Feasible is false when no column
// count of two or more fits; Cols and Widths are then empty.
type Result struct {
	Feasible bool
	Cols     int
	Widths   []uint16
}

// Solver searches for the largest column count that fits within MaxWidth.
// A Solver is not safe for concurrent use; it reuses one width buffer across
// candidates.
type Solver struct {
	MaxWidth uint16
	Padding  uint16

	widths []uint16
}

// NewSolver returns a Solver for the given budget.
func NewSolver(maxWidth, padding uint16) *Solver {
	return &Solver{MaxWidth: maxWidth, Padding: padding}
}

// MaxCols is the largest column count the search will try for n items.
func MaxCols(n int) int {
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return n
}

// Solve tries every column count from MaxCols(len(items)) down to 2 and
// returns the first that fits.
func (s *Solver) Solve(items []Item) Result {
	for cols := MaxCols(len(items)); cols >= 2; cols-- {
		if s.Feasible(cols, items) {
			widths := make([]uint16, cols)
			copy(widths, s.widths)
			return Result{Feasible: true, Cols: cols, Widths: widths}
		}
	}
	return Result{}
}

// Feasible reports whether items laid out in cols columns fit. On success the
// solver's buffer holds the per-column widths.
func (s *Solver) Feasible(cols int, items []Item) bool {
	if cols < 1 {
		return false
	}
	maxWidth := int(s.MaxWidth)
	padding := (cols - 1) * int(s.Padding)
	if padding > maxWidth {
		return false
	}

	if cap(s.widths) < cols {
		s.widths = make([]uint16, cols)
	}
	s.widths = s.widths[:cols]
	clear(s.widths)

	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		for c, item := range items[start:end] {
			s.widths[c] = max(s.widths[c], item.Width)
		}
		if sum(s.widths)+padding > maxWidth {
			return false
		}
	}
	return true
}

func sum(widths []uint16) int {
	total := 0
	for _, w := range widths {
		total += int(w)
	}
	return total
}

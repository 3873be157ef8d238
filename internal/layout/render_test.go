package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/colx/internal/measure"
)

func collect(fn func(emit func(string))) []string {
	var out []string
	fn(func(line string) { out = append(out, line) })
	return out
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		maxWidth uint16
		padding  uint16
		want     []string
	}{
		{
			name:     "single row",
			lines:    []string{"a", "bb", "ccc"},
			maxWidth: 10,
			padding:  2,
			want:     []string{"a  bb  ccc"},
		},
		{
			name:     "rows fill left to right",
			lines:    []string{"a", "b", "c", "d", "e"},
			maxWidth: 7,
			padding:  2,
			want:     []string{"a  b  c", "d  e"},
		},
		{
			name:     "pads to column width",
			lines:    []string{"a", "b", "c", "dddddd"},
			maxWidth: 9,
			padding:  2,
			want:     []string{"a  b", "c  dddddd"},
		},
		{
			name:     "escape sequences do not count towards padding",
			lines:    []string{"\x1b[31mred\x1b[0m", "b", "c", "d"},
			maxWidth: 12,
			padding:  2,
			want:     []string{"\x1b[31mred\x1b[0m  b  c  d"},
		},
		{
			name:     "no trailing whitespace on short last row",
			lines:    []string{"xx", "y", "z"},
			maxWidth: 5,
			padding:  1,
			want:     []string{"xx y", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			its := items(tt.lines...)
			res := NewSolver(tt.maxWidth, tt.padding).Solve(its)
			require.True(t, res.Feasible)

			got := collect(func(emit func(string)) { Render(res, tt.padding, its, emit) })
			assert.Equal(t, tt.want, got)
			for _, row := range got {
				assert.LessOrEqual(t, int(measure.Width(row)), int(tt.maxWidth), "row %q", row)
			}
		})
	}
}

func TestRenderInfeasibleEmitsNothing(t *testing.T) {
	got := collect(func(emit func(string)) { Render(Result{}, 2, items("a", "b"), emit) })
	assert.Empty(t, got)
}

func TestWriteFallsBackToPassthrough(t *testing.T) {
	its := items("aaaaaaaaaaaa", "b")
	res := NewSolver(10, 2).Solve(its)
	require.False(t, res.Feasible)

	got := collect(func(emit func(string)) { Write(res, 2, its, emit) })
	assert.Equal(t, []string{"aaaaaaaaaaaa", "b"}, got)
}

func TestWriteSingleItemPassesThrough(t *testing.T) {
	its := items("\tlonely\x07")
	res := NewSolver(120, 2).Solve(its)

	got := collect(func(emit func(string)) { Write(res, 2, its, emit) })
	assert.Equal(t, []string{"\tlonely\x07"}, got)
}

func TestWriteEmpty(t *testing.T) {
	res := NewSolver(120, 2).Solve(nil)
	got := collect(func(emit func(string)) { Write(res, 2, nil, emit) })
	assert.Empty(t, got)
}

func TestRenderedRowsFitBudget(t *testing.T) {
	lines := []string{
		"README.md", "go.mod", "go.sum", "main.go", "cmd", "internal", "pkg",
		"\x1b[34mdocs\x1b[0m", "LICENSE", "Makefile", ".golangci.yml", "scripts",
	}
	for _, maxWidth := range []uint16{8, 20, 40, 80, 120} {
		its := items(lines...)
		res := NewSolver(maxWidth, 2).Solve(its)
		got := collect(func(emit func(string)) { Write(res, 2, its, emit) })
		if !res.Feasible {
			assert.Equal(t, lines, got)
			continue
		}
		assert.Len(t, got, (len(lines)+res.Cols-1)/res.Cols)
		for _, row := range got {
			assert.LessOrEqual(t, int(measure.Width(row)), int(maxWidth), "width %d row %q", maxWidth, row)
		}
	}
}

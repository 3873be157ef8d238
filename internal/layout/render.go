package layout

import "strings"

// Render emits one padded line per row of res. Every item except the last in a
// row is followed by enough spaces to reach its column width plus padding, so
// rows carry no trailing whitespace. Render does nothing if res is infeasible.
func Render(res Result, padding uint16, items []Item, emit func(string)) {
	if !res.Feasible || res.Cols < 1 {
		return
	}
	var b strings.Builder
	for start := 0; start < len(items); start += res.Cols {
		end := min(start+res.Cols, len(items))
		row := items[start:end]
		b.Reset()
		for c, item := range row {
			b.WriteString(item.Content)
			if c == len(row)-1 {
				break
			}
			b.WriteString(strings.Repeat(" ", int(padding)+int(res.Widths[c])-int(item.Width)))
		}
		emit(b.String())
	}
}

// Passthrough emits every item's content unchanged, one per line.
func Passthrough(items []Item, emit func(string)) {
	for _, item := range items {
		emit(item.Content)
	}
}

// Write renders items with res, or passes them through unchanged when no
// layout was found.
func Write(res Result, padding uint16, items []Item, emit func(string)) {
	if res.Feasible {
		Render(res, padding, items, emit)
		return
	}
	Passthrough(items, emit)
}

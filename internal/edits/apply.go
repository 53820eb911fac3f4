package edits

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Apply returns source with every edit inserted before its anchor, one
// statement per line. Edits at the same anchor keep ascending Order;
// source itself is not modified.
func Apply(source []byte, edits []InsertionEdit) ([]byte, error) {
	if len(edits) == 0 {
		return slices.Clone(source), nil
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b InsertionEdit) int {
		return cmp.Or(
			cmp.Compare(a.Anchor.Offset, b.Anchor.Offset),
			cmp.Compare(a.Order, b.Order),
		)
	})

	var out strings.Builder
	out.Grow(len(source) + 128*len(sorted))

	last := uint(0)
	for i, e := range sorted {
		if e.Anchor.Offset > uint(len(source)) {
			return nil, fmt.Errorf("edit %d anchored at byte %d, past end of %d-byte source", i, e.Anchor.Offset, len(source))
		}
		if e.Node == nil {
			return nil, fmt.Errorf("edit %d has no node", i)
		}
		out.Write(source[last:e.Anchor.Offset])
		last = e.Anchor.Offset

		if atUnterminatedLine(source, e.Anchor.Offset) && (i == 0 || sorted[i-1].Anchor.Offset != e.Anchor.Offset) {
			out.WriteByte('\n')
		}
		out.WriteString(Print(e.Node))
		out.WriteByte('\n')
	}
	out.Write(source[last:])

	return []byte(out.String()), nil
}

// atUnterminatedLine reports whether offset is at the end of a non-empty
// source whose last line has no newline
func atUnterminatedLine(source []byte, offset uint) bool {
	return offset == uint(len(source)) && len(source) > 0 && source[len(source)-1] != '\n'
}

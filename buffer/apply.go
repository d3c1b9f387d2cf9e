package buffer

import (
	"cmp"
	"fmt"
	"slices"
)

// Apply applies a batch of edits as one change. Every range is interpreted
// against the content before the batch; ranges must not overlap, though
// insertions may touch a neighbouring range. Insertions at the same offset
// land in argument order.
//
// If any edit is invalid the whole batch is rejected and the buffer is left
// unchanged.
func (b *Buffer) Apply(edits ...Edit) error {
	if len(edits) == 0 {
		return nil
	}

	n := b.Len()
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(x, y Edit) int {
		if c := cmp.Compare(x.Range.Start, y.Range.Start); c != 0 {
			return c
		}
		return cmp.Compare(x.Range.End, y.Range.End)
	})
	for i, e := range sorted {
		if !e.Range.valid(n) {
			return invalidRange(e.Range.Start, e.Range.End, n)
		}
		if i > 0 && sorted[i-1].Range.End > e.Range.Start {
			return fmt.Errorf("edits [%d, %d) and [%d, %d) overlap: %w",
				sorted[i-1].Range.Start, sorted[i-1].Range.End,
				e.Range.Start, e.Range.End, ErrInvalidRange)
		}
	}

	cb := b.beginChange()
	// Back to front keeps the offsets of the remaining edits valid.
	for i := len(sorted) - 1; i >= 0; i-- {
		e := sorted[i]
		if e.Range.IsEmpty() && len(e.Text) == 0 {
			continue
		}
		cb.add(b.replaceRange(e.Range, e.Text))
	}
	b.commit(cb)
	return nil
}

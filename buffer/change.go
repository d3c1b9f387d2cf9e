package buffer

// AppliedEdit describes one effective edit in a change transaction.
// Range is expressed in the coordinates the edit saw when it was applied.
type AppliedEdit struct {
	Range    Range
	Inserted []byte
	Deleted  []byte
}

// Change is a versioned mutation record.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	PointBefore   int
	PointAfter    int
	Edits         []AppliedEdit
}

type changeBuilder struct {
	versionBefore uint64
	pointBefore   int
	edits         []AppliedEdit
}

// LastChange returns the most recent content change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.Edits = make([]AppliedEdit, len(in.Edits))
	for i, e := range in.Edits {
		out.Edits[i] = AppliedEdit{
			Range:    e.Range,
			Inserted: append([]byte(nil), e.Inserted...),
			Deleted:  append([]byte(nil), e.Deleted...),
		}
	}
	return out
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore: b.version,
		pointBefore:   b.point,
	}
}

func (cb *changeBuilder) add(edit AppliedEdit) {
	cb.edits = append(cb.edits, edit)
}

// commit bumps the version and records the change. Builders without edits
// are dropped.
func (b *Buffer) commit(cb changeBuilder) {
	if len(cb.edits) == 0 {
		return
	}
	b.version++
	b.lastChange = Change{
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		PointBefore:   cb.pointBefore,
		PointAfter:    b.point,
		Edits:         cb.edits,
	}
	b.hasLastChange = true
}

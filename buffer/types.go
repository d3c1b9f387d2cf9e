package buffer

// Range is a half-open byte range in user coordinates: [Start, End).
type Range struct {
	Start int
	End   int
}

// Edit replaces the bytes in Range with Text.
type Edit struct {
	Range Range
	Text  []byte
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether off lies in [Start, End).
func (r Range) Contains(off int) bool {
	return off >= r.Start && off < r.End
}

func (r Range) valid(n int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= n
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

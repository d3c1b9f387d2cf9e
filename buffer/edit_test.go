package buffer

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestEdit_QuickBrownFox(t *testing.T) {
	is := is.New(t)
	b := NewFromString("The quick brown fox", Options{})

	is.NoErr(b.SetPoint(4))
	b.InsertBytes([]byte("very "))
	got, err := b.Render()
	is.NoErr(err)
	is.Equal(got, "The very quick brown fox")

	removed, err := b.RemoveRange(4, 9)
	is.NoErr(err)
	is.Equal(string(removed), "very ")
	got, err = b.Render()
	is.NoErr(err)
	is.Equal(got, "The quick brown fox")
	checkInvariants(t, b)
}

func TestInsertByte_DoesNotAdvancePoint(t *testing.T) {
	is := is.New(t)
	b := NewFromString("ac", Options{})
	is.NoErr(b.SetPoint(1))

	b.InsertByte('b')
	is.Equal(string(b.Bytes()), "abc")
	is.Equal(b.Point(), 1)
	is.Equal(b.gapStart, 2) // gap follows the inserted byte

	// A second insert without advancing lands in front of the first.
	b.InsertByte('X')
	is.Equal(string(b.Bytes()), "aXbc")
	is.Equal(b.Point(), 1)
	checkInvariants(t, b)
}

func TestInsertByte_GrowsFullGap(t *testing.T) {
	is := is.New(t)
	b := New(Options{Capacity: 2})
	b.InsertByte('a')
	is.NoErr(b.SetPoint(1))
	b.InsertByte('b')
	is.NoErr(b.SetPoint(2))
	is.Equal(b.gapLen(), 0)

	b.InsertByte('c')
	is.Equal(string(b.Bytes()), "abc")
	is.True(b.Cap() > 2)
	checkInvariants(t, b)
}

func TestInsertAndAdvance(t *testing.T) {
	is := is.New(t)
	b := New(Options{})
	b.InsertAndAdvance([]byte("hello"))
	b.InsertAndAdvance([]byte(", "))
	b.InsertAndAdvance([]byte("world"))

	is.Equal(string(b.Bytes()), "hello, world")
	is.Equal(b.Point(), 12)
	checkInvariants(t, b)
}

func TestInsertBytes_Empty(t *testing.T) {
	is := is.New(t)
	b := NewFromString("abc", Options{})
	b.InsertBytes(nil)
	is.Equal(b.Version(), uint64(0))
	is.Equal(string(b.Bytes()), "abc")
}

func TestInsert_BatchEquivalence(t *testing.T) {
	payload := []byte("batch of bytes, long enough to force growth twice over")
	for p := 0; p <= 5; p++ {
		one := NewFromString("01234", Options{})
		if err := one.SetPoint(p); err != nil {
			t.Fatal(err)
		}
		for i, c := range payload {
			if err := one.SetPoint(p + i); err != nil {
				t.Fatal(err)
			}
			one.InsertByte(c)
		}

		batch := NewFromString("01234", Options{})
		if err := batch.SetPoint(p); err != nil {
			t.Fatal(err)
		}
		batch.InsertBytes(payload)

		if got, want := string(one.Bytes()), string(batch.Bytes()); got != want {
			t.Fatalf("point %d: byte-wise=%q, batch=%q", p, got, want)
		}
		checkInvariants(t, one)
		checkInvariants(t, batch)
	}
}

func TestInsertRemove_Inverse(t *testing.T) {
	const text = "abcdef"
	for p := 0; p <= len(text); p++ {
		is := is.New(t)
		b := NewFromString(text, Options{})
		is.NoErr(b.SetPoint(p))

		b.InsertByte('!')
		is.NoErr(b.SetPoint(p + 1))
		c, err := b.DeleteBackward()
		is.NoErr(err)
		is.Equal(c, byte('!'))

		is.Equal(string(b.Bytes()), text)
		is.Equal(b.Point(), p)
		checkInvariants(t, b)
	}
}

func TestDeleteBackward(t *testing.T) {
	is := is.New(t)
	b := NewFromString("abc", Options{})
	is.NoErr(b.SetPoint(2))

	c, err := b.DeleteBackward()
	is.NoErr(err)
	is.Equal(c, byte('b'))
	is.Equal(string(b.Bytes()), "ac")
	is.Equal(b.Point(), 1)

	c, err = b.DeleteBackward()
	is.NoErr(err)
	is.Equal(c, byte('a'))
	is.Equal(b.Point(), 0)

	v := b.Version()
	_, err = b.DeleteBackward()
	is.True(errors.Is(err, ErrAtStart))
	is.Equal(string(b.Bytes()), "c")
	is.Equal(b.Version(), v)
	checkInvariants(t, b)
}

func TestDeleteForward(t *testing.T) {
	is := is.New(t)
	b := NewFromString("abc", Options{})
	is.NoErr(b.SetPoint(1))

	c, err := b.DeleteForward()
	is.NoErr(err)
	is.Equal(c, byte('b'))
	is.Equal(string(b.Bytes()), "ac")
	is.Equal(b.Point(), 1)

	_, err = b.DeleteForward()
	is.NoErr(err)
	_, err = b.DeleteForward()
	is.True(errors.Is(err, ErrAtEnd))
	is.Equal(string(b.Bytes()), "a")
	checkInvariants(t, b)
}

func TestRemoveRange_PointRules(t *testing.T) {
	cases := []struct {
		name       string
		point      int
		start, end int
		wantPoint  int
	}{
		{name: "before", point: 1, start: 3, end: 6, wantPoint: 1},
		{name: "at start", point: 3, start: 3, end: 6, wantPoint: 3},
		{name: "inside", point: 4, start: 3, end: 6, wantPoint: 3},
		{name: "at end", point: 6, start: 3, end: 6, wantPoint: 3},
		{name: "after", point: 9, start: 3, end: 6, wantPoint: 6},
		{name: "whole buffer", point: 10, start: 0, end: 10, wantPoint: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			b := NewFromString("0123456789", Options{})
			is.NoErr(b.SetPoint(tc.point))

			removed, err := b.RemoveRange(tc.start, tc.end)
			is.NoErr(err)
			is.Equal(string(removed), "0123456789"[tc.start:tc.end])
			is.Equal(b.Point(), tc.wantPoint)
			is.Equal(string(b.Bytes()), "0123456789"[:tc.start]+"0123456789"[tc.end:])
			checkInvariants(t, b)
		})
	}
}

func TestRemoveRange_Invalid(t *testing.T) {
	cases := []struct{ start, end int }{
		{-1, 2},
		{3, 2},
		{0, 11},
		{11, 11},
	}
	for _, tc := range cases {
		is := is.New(t)
		b := NewFromString("0123456789", Options{})
		is.NoErr(b.SetPoint(5))

		removed, err := b.RemoveRange(tc.start, tc.end)
		is.True(errors.Is(err, ErrInvalidRange))
		is.Equal(removed, nil)
		is.Equal(string(b.Bytes()), "0123456789")
		is.Equal(b.Point(), 5)
		is.Equal(b.Version(), uint64(1))
	}
}

func TestRemoveRange_Empty(t *testing.T) {
	is := is.New(t)
	b := NewFromString("abc", Options{})
	removed, err := b.RemoveRange(1, 1)
	is.NoErr(err)
	is.Equal(len(removed), 0)
	is.Equal(b.Version(), uint64(0))
}

func TestRemoveRange_AcrossGap(t *testing.T) {
	is := is.New(t)
	b := gapAt("abcdefgh", 4)

	removed, err := b.RemoveRange(2, 6)
	is.NoErr(err)
	is.Equal(string(removed), "cdef")
	is.Equal(string(b.Bytes()), "abgh")
	checkInvariants(t, b)
}

func TestRemoveRange_ReturnsIndependentCopy(t *testing.T) {
	is := is.New(t)
	b := NewFromString("abcdef", Options{})
	removed, err := b.RemoveRange(0, 3)
	is.NoErr(err)

	b.InsertString("XYZ")
	is.Equal(string(removed), "abc")
}

func TestReplace(t *testing.T) {
	cases := []struct {
		name       string
		point      int
		start, end int
		text       string
		want       string
		wantPoint  int
	}{
		{name: "shrink", point: 9, start: 4, end: 9, text: "slow", want: "The slow brown fox", wantPoint: 8},
		{name: "grow", point: 0, start: 4, end: 9, text: "very quick", want: "The very quick brown fox", wantPoint: 0},
		{name: "insert only", point: 4, start: 4, end: 4, text: "so ", want: "The so quick brown fox", wantPoint: 4},
		{name: "delete only", point: 19, start: 15, end: 19, text: "", want: "The quick brown", wantPoint: 15},
		{name: "point inside", point: 6, start: 4, end: 9, text: "sly", want: "The sly brown fox", wantPoint: 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			b := NewFromString("The quick brown fox", Options{})
			is.NoErr(b.SetPoint(tc.point))
			v := b.Version()

			is.NoErr(b.Replace(tc.start, tc.end, []byte(tc.text)))
			is.Equal(string(b.Bytes()), tc.want)
			is.Equal(b.Point(), tc.wantPoint)
			is.Equal(b.Version(), v+1)
			checkInvariants(t, b)
		})
	}
}

func TestReplace_InvalidRange(t *testing.T) {
	is := is.New(t)
	b := NewFromString("abc", Options{})
	err := b.Replace(2, 1, []byte("x"))
	is.True(errors.Is(err, ErrInvalidRange))
	is.Equal(string(b.Bytes()), "abc")
}

func TestGapInvisibility(t *testing.T) {
	cases := []struct {
		name string
		b    func() *Buffer
		want string
	}{
		{name: "empty full-span gap", b: func() *Buffer { return New(Options{}) }, want: ""},
		{name: "gap at start", b: func() *Buffer { return gapAt("abc", 0) }, want: "abc"},
		{name: "gap in middle", b: func() *Buffer { return gapAt("abc", 1) }, want: "abc"},
		{name: "gap at end", b: func() *Buffer { return gapAt("abc", 3) }, want: "abc"},
		{name: "zero-length gap at start", b: func() *Buffer {
			b := New(Options{Capacity: 3})
			b.InsertString("abc")
			b.moveGap(0)
			return b
		}, want: "abc"},
		{name: "zero-length gap at end", b: func() *Buffer {
			b := New(Options{Capacity: 3})
			b.InsertAndAdvance([]byte("abc"))
			return b
		}, want: "abc"},
		{name: "removed bytes stay hidden", b: func() *Buffer {
			b := NewFromString("abcXYZdef", Options{})
			if _, err := b.RemoveRange(3, 6); err != nil {
				panic(err)
			}
			return b
		}, want: "abcdef"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			b := tc.b()
			// Poison the gap so any leak is visible.
			for i := b.gapStart; i < b.gapEnd; i++ {
				b.buf[i] = '#'
			}
			got, err := b.Render()
			is.NoErr(err)
			is.Equal(got, tc.want)
			is.Equal(b.Len(), len(got))
			checkInvariants(t, b)
		})
	}
}

package layout

import (
	"sort"

	"github.com/tsawler/cvoutline/model"
)

// LineKey identifies a line slot: its text plus its rounded bounding box.
// The same key on two pages means the same text printed in the same place.
type LineKey struct {
	Text string
	BBox [4]int
}

// KeyOf returns the key of a line
func KeyOf(line model.Line) LineKey {
	return LineKey{Text: line.Text(), BBox: line.BBox.Rounded()}
}

// KeySet is an immutable-by-convention set of line keys. Stages build a new
// set and hand it on; nothing marks lines in place.
type KeySet map[LineKey]struct{}

// NewKeySet creates a set holding the given keys
func NewKeySet(keys ...LineKey) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether the key is in the set. A nil set is empty.
func (s KeySet) Has(k LineKey) bool {
	_, ok := s[k]
	return ok
}

// HasLine reports whether the line's key is in the set
func (s KeySet) HasLine(line model.Line) bool {
	return s.Has(KeyOf(line))
}

// Len returns the number of keys
func (s KeySet) Len() int {
	return len(s)
}

// Union returns a new set holding the keys of both sets
func (s KeySet) Union(other KeySet) KeySet {
	out := make(KeySet, len(s)+len(other))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}

// Keys returns the keys sorted by text, then box
func (s KeySet) Keys() []LineKey {
	keys := make([]LineKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Text != keys[j].Text {
			return keys[i].Text < keys[j].Text
		}
		for n := 0; n < 4; n++ {
			if keys[i].BBox[n] != keys[j].BBox[n] {
				return keys[i].BBox[n] < keys[j].BBox[n]
			}
		}
		return false
	})
	return keys
}

package editor

import "sort"

const noAnchor = -1

// Selection tracks which strip positions are selected plus the anchor that
// range clicks pivot around. Positions refer to the current display order;
// the session remaps them whenever that order changes.
type Selection struct {
	indices map[int]struct{}
	anchor  int
}

func NewSelection() *Selection {
	return &Selection{
		indices: make(map[int]struct{}),
		anchor:  noAnchor,
	}
}

// Click replaces the selection with {i} and moves the anchor there.
func (s *Selection) Click(i int) {
	s.indices = map[int]struct{}{i: {}}
	s.anchor = i
}

// Toggle flips membership of i and moves the anchor there, so a subsequent
// range click extends from the last toggled position.
func (s *Selection) Toggle(i int) {
	if _, ok := s.indices[i]; ok {
		delete(s.indices, i)
	} else {
		s.indices[i] = struct{}{}
	}
	s.anchor = i
}

// Range replaces the selection with every position between the anchor and i
// inclusive. The anchor stays put, so consecutive range clicks pivot around
// the same position. Without an anchor this degrades to Click.
func (s *Selection) Range(i int) {
	if s.anchor == noAnchor {
		s.Click(i)
		return
	}

	lo, hi := s.anchor, i
	if lo > hi {
		lo, hi = hi, lo
	}

	s.indices = make(map[int]struct{}, hi-lo+1)
	for j := lo; j <= hi; j++ {
		s.indices[j] = struct{}{}
	}
}

// SetRun replaces the selection with the contiguous run [start, start+n) and
// anchors at its first position. Used after a drop to track the moved block.
func (s *Selection) SetRun(start, n int) {
	s.indices = make(map[int]struct{}, n)
	for j := start; j < start+n; j++ {
		s.indices[j] = struct{}{}
	}
	s.anchor = start
	if n == 0 {
		s.anchor = noAnchor
	}
}

func (s *Selection) Clear() {
	s.indices = make(map[int]struct{})
	s.anchor = noAnchor
}

func (s *Selection) Contains(i int) bool {
	_, ok := s.indices[i]
	return ok
}

func (s *Selection) Len() int {
	return len(s.indices)
}

// Indices returns the selected positions in ascending order.
func (s *Selection) Indices() []int {
	out := make([]int, 0, len(s.indices))
	for i := range s.indices {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

package list

import (
	"fmt"
	"iter"
)

// visitFunc receives one element and its view-local coordinates during a
// traversal; returning false stops the walk.
type visitFunc func(idx []int, v any) bool

// eachStoredR walks only stored nodes, depth first, outer dimension to
// inner, keys ascending, windowed to the view's visible region.
func eachStoredR(sd *recurseData, l *List, rec int, idx []int, visit visitFunc) bool {
	offset := sd.offset(rec)
	shape := sd.refShape(rec)

	curr := l.first
	for curr != nil && curr.key < offset {
		curr = curr.next
	}
	if curr != nil && curr.key-offset >= shape {
		curr = nil
	}

	for curr != nil {
		idx[sd.dim()-rec-1] = curr.key - offset
		if rec > 0 {
			if !eachStoredR(sd, curr.val.(*List), rec-1, idx, visit) {
				return false
			}
		} else if !visit(idx, curr.val) {
			return false
		}
		curr = curr.next
		if curr != nil && curr.key-offset >= shape {
			curr = nil
		}
	}
	return true
}

// eachEmptyR synthesizes the default value for a subtree with no stored
// nodes during a dense walk.
func eachEmptyR(sd *recurseData, rec int, idx []int, visit visitFunc) bool {
	for index := 0; index < sd.refShape(rec); index++ {
		idx[sd.dim()-rec-1] = index
		if rec > 0 {
			if !eachEmptyR(sd, rec-1, idx, visit) {
				return false
			}
		} else if !visit(idx, sd.defVal) {
			return false
		}
	}
	return true
}

// eachR is the dense walk: every coordinate is visited, absent ones as the
// storage's default.
func eachR(sd *recurseData, l *List, rec int, idx []int, visit visitFunc) bool {
	offset := sd.offset(rec)
	shape := sd.refShape(rec)

	curr := l.first
	for curr != nil && curr.key < offset {
		curr = curr.next
	}
	if curr != nil && curr.key-offset >= shape {
		curr = nil
	}

	for index := 0; index < shape; index++ {
		idx[sd.dim()-rec-1] = index
		if curr == nil || index < curr.key-offset {
			if rec > 0 {
				if !eachEmptyR(sd, rec-1, idx, visit) {
					return false
				}
			} else if !visit(idx, sd.defVal) {
				return false
			}
			continue
		}
		// index == curr.key-offset
		if rec > 0 {
			if !eachR(sd, curr.val.(*List), rec-1, idx, visit) {
				return false
			}
		} else if !visit(idx, curr.val) {
			return false
		}
		curr = curr.next
	}
	return true
}

// EachStoredWithIndices calls f for every stored element with its view-local
// coordinates, depth first, outer dimension before inner, keys ascending.
// The index slice is freshly allocated per call and may be retained.
func (s *Storage) EachStoredWithIndices(f func(v any, idx []int)) {
	sd := newRecurseData(s)
	idx := make([]int, s.dim)
	eachStoredR(sd, sd.root(), s.dim-1, idx, func(idx []int, v any) bool {
		f(v, cloneInts(idx))
		return true
	})
}

// EachWithIndices calls f for every coordinate of the dense expansion,
// reporting absent coordinates as the default value.
func (s *Storage) EachWithIndices(f func(v any, idx []int)) {
	sd := newRecurseData(s)
	idx := make([]int, s.dim)
	eachR(sd, sd.root(), s.dim-1, idx, func(idx []int, v any) bool {
		f(v, cloneInts(idx))
		return true
	})
}

// EachStored calls f for every stored element, in traversal order.
func (s *Storage) EachStored(f func(v any)) {
	s.EachStoredWithIndices(func(v any, _ []int) { f(v) })
}

// Each calls f for every coordinate of the dense expansion.
func (s *Storage) Each(f func(v any)) {
	s.EachWithIndices(func(v any, _ []int) { f(v) })
}

// Stored returns a lazy sequence over the stored elements, in traversal
// order. Binding layers build iterator protocols on top of this.
func (s *Storage) Stored() iter.Seq2[[]int, any] {
	return func(yield func([]int, any) bool) {
		sd := newRecurseData(s)
		idx := make([]int, s.dim)
		eachStoredR(sd, sd.root(), s.dim-1, idx, func(idx []int, v any) bool {
			return yield(cloneInts(idx), v)
		})
	}
}

// All returns a lazy sequence over the dense expansion, absent coordinates
// included as the default value.
func (s *Storage) All() iter.Seq2[[]int, any] {
	return func(yield func([]int, any) bool) {
		sd := newRecurseData(s)
		idx := make([]int, s.dim)
		eachR(sd, sd.root(), s.dim-1, idx, func(idx []int, v any) bool {
			return yield(cloneInts(idx), v)
		})
	}
}

// CountStored returns the number of stored elements visible through the
// storage's window.
func (s *Storage) CountStored() int {
	sd := newRecurseData(s)
	idx := make([]int, s.dim)
	count := 0
	eachStoredR(sd, sd.root(), s.dim-1, idx, func([]int, any) bool {
		count++
		return true
	})
	return count
}

// CountOffDiagonal returns the number of stored elements off the main
// diagonal. Only defined for rank-2 storages.
func (s *Storage) CountOffDiagonal() (int, error) {
	if s.dim != 2 {
		return 0, fmt.Errorf("%w: off-diagonal counting only defined for rank 2", ErrUnsupportedOperation)
	}
	count := 0
	for icurr := s.rows.first; icurr != nil; icurr = icurr.next {
		i := icurr.key - s.offset[0]
		if i < 0 || i >= s.shape[0] {
			continue
		}
		for jcurr := icurr.val.(*List).first; jcurr != nil; jcurr = jcurr.next {
			j := jcurr.key - s.offset[1]
			if j < 0 || j >= s.shape[1] {
				continue
			}
			if i != j {
				count++
			}
		}
	}
	return count, nil
}

// ToMap converts the storage to nested maps keyed by coordinate, stored
// elements only, letting callers keep treating absent keys as the default.
func (s *Storage) ToMap() map[int]any {
	sd := newRecurseData(s)
	return toMapR(sd, sd.root(), s.dim-1)
}

func toMapR(sd *recurseData, l *List, rec int) map[int]any {
	offset := sd.offset(rec)
	shape := sd.refShape(rec)
	m := make(map[int]any)

	curr := l.first
	for curr != nil && curr.key < offset {
		curr = curr.next
	}
	if curr != nil && curr.key-offset >= shape {
		curr = nil
	}

	for curr != nil {
		if rec > 0 {
			sub := toMapR(sd, curr.val.(*List), rec-1)
			if len(sub) > 0 {
				m[curr.key-offset] = sub
			}
		} else {
			m[curr.key-offset] = curr.val
		}
		curr = curr.next
		if curr != nil && curr.key-offset >= shape {
			curr = nil
		}
	}
	return m
}

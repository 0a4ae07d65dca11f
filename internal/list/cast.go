package list

import "fmt"

// CastCopy produces an independent storage with every element and the
// default value converted to a new dtype. A view is materialized through a
// region copy first: its tree belongs to another storage and is never
// touched in place.
func (s *Storage) CastCopy(to DataType) (*Storage, error) {
	if !to.valid() {
		return nil, fmt.Errorf("%w: unknown dtype %d", ErrTypeMismatch, int(to))
	}
	newDefault, err := castElement(s.defaultVal, s.dtype, to)
	if err != nil {
		return nil, fmt.Errorf("cast default value: %w", err)
	}
	lhs, err := New(to, cloneInts(s.shape), newDefault)
	if err != nil {
		return nil, err
	}

	src := s
	if s.IsView() {
		src = s.Copy()
	}
	if err := castCopyContents(lhs, lhs.rows, src.rows, s.dim-1, s.dtype, to); err != nil {
		return nil, err
	}
	if src != s {
		src.Release()
	}
	return lhs, nil
}

// castCopyContents rebuilds src into dst with converted elements. Keys are
// visited in order, so insertion runs on a moving cursor. A converted value
// that collapses onto the new default (a lossy narrowing) is dropped to keep
// the sparsity invariant.
func castCopyContents(lhs *Storage, dst, src *List, rec int, from, to DataType) error {
	var cursor *Node
	for n := src.first; n != nil; n = n.next {
		if rec > 0 {
			sub := &List{}
			if err := castCopyContents(lhs, sub, n.val.(*List), rec-1, from, to); err != nil {
				return err
			}
			if !sub.empty() {
				cursor = appendOrdered(dst, cursor, n.key, sub)
			}
			continue
		}
		cv, err := castElement(n.val, from, to)
		if err != nil {
			return err
		}
		if equalElements(cv, to, lhs.defaultVal, to) {
			continue
		}
		cursor = appendOrdered(dst, cursor, n.key, cv)
	}
	return nil
}

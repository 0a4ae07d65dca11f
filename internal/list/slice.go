package list

import "fmt"

// getSingleNode descends one list level per dimension following exact keys,
// or returns nil as soon as a level has no node at the wanted key.
func (s *Storage) getSingleNode(coords []int) *Node {
	l := s.rows
	var n *Node
	for r := 0; r < s.dim; r++ {
		n = l.find(s.offset[r] + coords[r])
		if n == nil {
			return nil
		}
		if r < s.dim-1 {
			l = n.val.(*List)
		}
	}
	return n
}

// At reads a single element. A coordinate absent from the tree reads as the
// storage's default value; that is never an error. Panics if the indices are
// malformed or out of bounds.
func (s *Storage) At(coords ...int) any {
	s.checkCoords(coords)
	if n := s.getSingleNode(coords); n != nil {
		return n.val
	}
	return s.defaultVal
}

// SetAt writes a single element. Writing the storage's default value removes
// the coordinate instead, preserving sparsity.
func (s *Storage) SetAt(v any, coords ...int) error {
	s.checkCoords(coords)
	if err := checkValue(v, s.dtype); err != nil {
		return err
	}
	if equalElements(v, s.dtype, s.defaultVal, s.dtype) {
		ones := make([]int, s.dim)
		for i := range ones {
			ones[i] = 1
		}
		s.rows.removeRecursive(coords, s.offset, ones, 0, s.dim)
		return nil
	}

	// Drill down, creating intermediate lists as needed.
	l := s.rows
	for r := 0; r < s.dim-1; r++ {
		n := l.insert(s.offset[r]+coords[r], nil, false)
		if n.val == nil {
			n.val = &List{}
		}
		l = n.val.(*List)
	}
	l.insert(s.offset[s.dim-1]+coords[s.dim-1], v, true)
	return nil
}

// sliceCopy filters the window described by coords/lengths out of rows into
// a freshly allocated tree, rebasing keys to the window's origin. Keys are
// produced in increasing order, so insertion runs on a moving cursor.
// Sublists that end up empty are dropped rather than inserted.
func (s *Storage) sliceCopy(rows *List, coords, lengths []int, n int) *List {
	dst := &List{}
	var cursor *Node
	for node := rows.first; node != nil; node = node.next {
		key := node.key - (s.offset[n] + coords[n])
		if key < 0 || key >= lengths[n] {
			continue
		}
		if s.dim-n > 1 {
			sub := s.sliceCopy(node.val.(*List), coords, lengths, n+1)
			if !sub.empty() {
				cursor = appendOrdered(dst, cursor, key, sub)
			}
		} else {
			cursor = appendOrdered(dst, cursor, key, node.val)
		}
	}
	return dst
}

// Slice copies the region at coords with the given lengths into a fully
// independent owning storage. Mutating the copy never touches the source.
func (s *Storage) Slice(coords, lengths []int) (*Storage, error) {
	if err := s.checkRegion(coords, lengths); err != nil {
		return nil, err
	}
	ns, err := New(s.dtype, cloneInts(lengths), s.defaultVal)
	if err != nil {
		return nil, err
	}
	ns.rows = s.sliceCopy(s.rows, coords, lengths, 0)
	return ns, nil
}

// Copy returns an independent deep copy of the whole storage. For a view the
// copy materializes just the visible window.
func (s *Storage) Copy() *Storage {
	ns, err := s.Slice(make([]int, s.dim), s.shape)
	if err != nil {
		// The full region is in bounds by construction.
		panic(fmt.Sprintf("list: copy of %v: %v", s, err))
	}
	return ns
}

// Ref returns a view of the region at coords with the given lengths. No tree
// traversal occurs: the view aliases the owner's tree with an additively
// composed offset, and the owner's reference count grows by one. The view
// must be Released when no longer needed.
func (s *Storage) Ref(coords, lengths []int) (*Storage, error) {
	if err := s.checkRegion(coords, lengths); err != nil {
		return nil, err
	}
	ns := &Storage{
		dim:        s.dim,
		shape:      cloneInts(lengths),
		offset:     make([]int, s.dim),
		dtype:      s.dtype,
		defaultVal: s.defaultVal,
		rows:       s.rows,
		src:        s.src,
	}
	for i := 0; i < s.dim; i++ {
		ns.offset[i] = s.offset[i] + coords[i]
	}
	s.src.refs++
	return ns, nil
}

// sliceSetSingle fills the hyper-rectangle at coords/lengths with a single
// value. Coordinates are generated in increasing order per level, so a
// moving cursor keeps each insertion amortized O(1).
func (s *Storage) sliceSetSingle(l *List, val any, coords, lengths []int, n int) {
	var node *Node
	if s.dim-n > 1 {
		for i := 0; i < lengths[n]; i++ {
			key := i + s.offset[n] + coords[n]
			switch {
			case node == nil:
				node = l.insert(key, nil, false)
				if node.val == nil {
					node.val = &List{}
				}
			case node.next == nil || node.next.key > key:
				node = insertAfter(node, key, &List{})
			default:
				node = node.next // correct key already exists
			}
			s.sliceSetSingle(node.val.(*List), val, coords, lengths, n+1)
		}
		return
	}
	for i := 0; i < lengths[n]; i++ {
		key := i + s.offset[n] + coords[n]
		if node == nil {
			node = l.insert(key, val, true)
		} else {
			node = replaceInsertAfter(node, key, val)
		}
	}
}

// SetRegion assigns a single value to every coordinate of a hyper-rectangle.
// Assigning the storage's default value deletes the region instead, keeping
// the tree sparse.
func (s *Storage) SetRegion(coords, lengths []int, v any) error {
	if err := s.checkRegion(coords, lengths); err != nil {
		return err
	}
	if err := checkValue(v, s.dtype); err != nil {
		return err
	}
	if equalElements(v, s.dtype, s.defaultVal, s.dtype) {
		s.rows.removeRecursive(coords, s.offset, lengths, 0, s.dim)
		return nil
	}
	s.sliceSetSingle(s.rows, v, coords, lengths, 0)
	return nil
}

// RemoveRegion deletes every stored element inside the hyper-rectangle and
// prunes any intermediate list the deletion empties.
func (s *Storage) RemoveRegion(coords, lengths []int) error {
	if err := s.checkRegion(coords, lengths); err != nil {
		return err
	}
	// The root list stays allocated even when it empties; it lives until the
	// storage itself is released.
	s.rows.removeRecursive(coords, s.offset, lengths, 0, s.dim)
	return nil
}

package list

// MapFunc combines one element from each operand of a merge. Either argument
// may be an operand's default value when that operand has no node at the
// coordinate. Functions may have side effects: calls happen strictly in
// ascending coordinate order, outer dimension before inner, and that
// ordering is part of the contract.
type MapFunc func(left, right any) any

// MapMerged combines two storages elementwise through f, producing a new
// owning Object storage that conceptually holds f(s[c], right[c]) for every
// coordinate c while storing only results that differ from the result's
// default. The result default is init, or f(s.Default(), right.Default())
// when init is nil. Operands may be views and may differ in dtype; use
// CastCopy to narrow the result back to a raw dtype.
//
// The walk is a sorted merge of both operands' node chains, one level per
// dimension: coordinates present on a single side are combined with the
// other side's default by a one-sided descent, and results are appended
// behind a moving cursor, so the cost is linear in stored nodes.
func (s *Storage) MapMerged(right *Storage, init any, f MapFunc) (*Storage, error) {
	if err := s.checkOperand(right); err != nil {
		return nil, err
	}

	ldata := newRecurseData(s)
	rdata := newRecurseData(right)

	if init == nil {
		init = f(ldata.defVal, rdata.defVal)
	}
	result, err := New(Object, cloneInts(s.shape), init)
	if err != nil {
		return nil, err
	}
	resData := newRecurseData(result)

	mapMergedStored(resData, ldata, rdata, result.rows, ldata.root(), rdata.root(), s.dim-1, f)
	return result, nil
}

// MapMergedScalar merges against a scalar operand: the scalar is materialized
// as a degenerate storage of matching shape holding no nodes and the scalar
// as its default, merged normally, then discarded.
func (s *Storage) MapMergedScalar(v any, init any, f MapFunc) (*Storage, error) {
	dt, ok := DataTypeOf(v)
	if !ok {
		dt = Object
	}
	t, err := New(dt, cloneInts(s.shape), v)
	if err != nil {
		return nil, err
	}
	defer t.Release()
	return s.MapMerged(t, init, f)
}

// mapEmptyStored handles the one-sided case: only operand sd has nodes under
// the current subtree, so every stored element combines with the other
// operand's default tInit. rev flips the argument order so f still sees
// (left, right). Descending just sd's subtree avoids materializing a
// default-filled subtree for the absent side.
func mapEmptyStored(result, sd *recurseData, x *List, l *List, rec int, rev bool, tInit any, f MapFunc) {
	offset := sd.offset(rec)
	shape := result.refShape(rec)

	curr := l.first
	for curr != nil && curr.key < offset {
		curr = curr.next
	}
	if curr != nil && curr.key-offset >= shape {
		curr = nil
	}

	var xcurr *Node
	if rec > 0 {
		for curr != nil {
			sub := &List{}
			mapEmptyStored(result, sd, sub, curr.val.(*List), rec-1, rev, tInit, f)
			if !sub.empty() {
				xcurr = appendOrdered(x, xcurr, curr.key-offset, sub)
			}
			curr = curr.next
			if curr != nil && curr.key-offset >= shape {
				curr = nil
			}
		}
		return
	}
	for curr != nil {
		var val any
		if rev {
			val = f(tInit, curr.val)
		} else {
			val = f(curr.val, tInit)
		}
		if !equalElements(val, Object, result.defVal, Object) {
			xcurr = appendOrdered(x, xcurr, curr.key-offset, val)
		}
		curr = curr.next
		if curr != nil && curr.key-offset >= shape {
			curr = nil
		}
	}
}

// mapMergedStored is the recursive sorted-merge walk over both operands'
// sibling chains at one recursion level, already windowed to the operands'
// visible regions.
func mapMergedStored(result, left, right *recurseData, x *List, l, r *List, rec int, f MapFunc) {
	lcurr, rcurr := l.first, r.first
	loff, roff := left.offset(rec), right.offset(rec)
	shape := result.refShape(rec)

	for lcurr != nil && lcurr.key < loff {
		lcurr = lcurr.next
	}
	for rcurr != nil && rcurr.key < roff {
		rcurr = rcurr.next
	}
	if lcurr != nil && lcurr.key-loff >= shape {
		lcurr = nil
	}
	if rcurr != nil && rcurr.key-roff >= shape {
		rcurr = nil
	}

	var xcurr *Node
	if rec > 0 {
		for lcurr != nil || rcurr != nil {
			var key int
			sub := &List{}

			switch {
			case rcurr == nil || (lcurr != nil && lcurr.key-loff < rcurr.key-roff):
				mapEmptyStored(result, left, sub, lcurr.val.(*List), rec-1, false, right.defVal, f)
				key = lcurr.key - loff
				lcurr = lcurr.next
			case lcurr == nil || (rcurr != nil && rcurr.key-roff < lcurr.key-loff):
				mapEmptyStored(result, right, sub, rcurr.val.(*List), rec-1, true, left.defVal, f)
				key = rcurr.key - roff
				rcurr = rcurr.next
			default: // equal rebased keys, both present
				mapMergedStored(result, left, right, sub, lcurr.val.(*List), rcurr.val.(*List), rec-1, f)
				key = lcurr.key - loff
				lcurr = lcurr.next
				rcurr = rcurr.next
			}

			if !sub.empty() {
				xcurr = appendOrdered(x, xcurr, key, sub)
			}
			if lcurr != nil && lcurr.key-loff >= shape {
				lcurr = nil
			}
			if rcurr != nil && rcurr.key-roff >= shape {
				rcurr = nil
			}
		}
		return
	}

	for lcurr != nil || rcurr != nil {
		var key int
		var val any

		switch {
		case rcurr == nil || (lcurr != nil && lcurr.key-loff < rcurr.key-roff):
			val = f(lcurr.val, right.defVal)
			key = lcurr.key - loff
			lcurr = lcurr.next
		case lcurr == nil || (rcurr != nil && rcurr.key-roff < lcurr.key-loff):
			val = f(left.defVal, rcurr.val)
			key = rcurr.key - roff
			rcurr = rcurr.next
		default: // equal rebased keys, both present
			val = f(lcurr.val, rcurr.val)
			key = lcurr.key - loff
			lcurr = lcurr.next
			rcurr = rcurr.next
		}

		if !equalElements(val, Object, result.defVal, Object) {
			xcurr = appendOrdered(x, xcurr, key, val)
		}
		if lcurr != nil && lcurr.key-loff >= shape {
			lcurr = nil
		}
		if rcurr != nil && rcurr.key-roff >= shape {
			rcurr = nil
		}
	}
}

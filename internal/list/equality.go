package list

// Equal reports whether two storages denote the same dense tensor once
// defaults are expanded: for every coordinate c, s[c] == right[c]. Operands
// may be views and may differ in dtype; mixed raw dtypes compare by numeric
// promotion. Ranks and shapes must match.
func (s *Storage) Equal(right *Storage) (bool, error) {
	if err := s.checkOperand(right); err != nil {
		return false, err
	}
	ldata := newRecurseData(s)
	rdata := newRecurseData(right)
	return eqeq(ldata, rdata, ldata.root(), rdata.root(), s.dim-1), nil
}

// eqeqEmpty checks every element stored under one side's subtree against the
// other side's default, for subtrees where only side sd has nodes.
func eqeqEmpty(sd *recurseData, l *List, rec int, tInit any, tdt DataType) bool {
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
		if rec > 0 {
			if !eqeqEmpty(sd, curr.val.(*List), rec-1, tInit, tdt) {
				return false
			}
		} else if !equalElements(curr.val, sd.dtype(), tInit, tdt) {
			return false
		}
		curr = curr.next
		if curr != nil && curr.key-offset >= shape {
			curr = nil
		}
	}
	return true
}

// eqeq is the recursive sorted-merge walk, short-circuiting to false on the
// first observed mismatch.
func eqeq(left, right *recurseData, l, r *List, rec int) bool {
	lcurr, rcurr := l.first, r.first
	loff, roff := left.offset(rec), right.offset(rec)

	for lcurr != nil && lcurr.key < loff {
		lcurr = lcurr.next
	}
	for rcurr != nil && rcurr.key < roff {
		rcurr = rcurr.next
	}
	if lcurr != nil && lcurr.key-loff >= left.refShape(rec) {
		lcurr = nil
	}
	if rcurr != nil && rcurr.key-roff >= right.refShape(rec) {
		rcurr = nil
	}

	compared := false

	for lcurr != nil || rcurr != nil {
		switch {
		case rcurr == nil || (lcurr != nil && lcurr.key-loff < rcurr.key-roff):
			if rec > 0 {
				if !eqeqEmpty(left, lcurr.val.(*List), rec-1, right.defVal, right.dtype()) {
					return false
				}
			} else if !equalElements(lcurr.val, left.dtype(), right.defVal, right.dtype()) {
				return false
			}
			lcurr = lcurr.next
		case lcurr == nil || (rcurr != nil && rcurr.key-roff < lcurr.key-loff):
			if rec > 0 {
				if !eqeqEmpty(right, rcurr.val.(*List), rec-1, left.defVal, left.dtype()) {
					return false
				}
			} else if !equalElements(rcurr.val, right.dtype(), left.defVal, left.dtype()) {
				return false
			}
			rcurr = rcurr.next
		default: // equal rebased keys, both present
			if rec > 0 {
				if !eqeq(left, right, lcurr.val.(*List), rcurr.val.(*List), rec-1) {
					return false
				}
			} else if !equalElements(lcurr.val, left.dtype(), rcurr.val, right.dtype()) {
				return false
			}
			lcurr = lcurr.next
			rcurr = rcurr.next
		}

		if lcurr != nil && lcurr.key-loff >= left.refShape(rec) {
			lcurr = nil
		}
		if rcurr != nil && rcurr.key-roff >= right.refShape(rec) {
			rcurr = nil
		}
		compared = true
	}

	// Both sides entirely empty after windowing: no comparison ever ran, so
	// equality reduces to the two declared defaults agreeing.
	if !compared {
		return equalElements(left.defVal, left.dtype(), right.defVal, right.dtype())
	}
	return true
}

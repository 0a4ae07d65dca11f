package list

// Node is one entry of a per-dimension sorted list. At the deepest dimension
// val holds a raw element (or an Object handle); at every higher dimension it
// holds a nested *List.
type Node struct {
	key  int
	val  any
	next *Node
}

// Key returns the node's coordinate along its dimension, relative to the
// owning tree.
func (n *Node) Key() int { return n.key }

// Value returns the node's stored value.
func (n *Node) Value() any { return n.val }

// List is a sorted singly-linked list of nodes with strictly increasing keys.
// One List exists per internal tree node; together they form a tree of depth
// equal to the storage's rank.
type List struct {
	first *Node
}

// empty reports whether the list holds no nodes.
func (l *List) empty() bool { return l.first == nil }

// find returns the node with the given key, or nil. Linear scan.
func (l *List) find(key int) *Node {
	for n := l.first; n != nil && n.key <= key; n = n.next {
		if n.key == key {
			return n
		}
	}
	return nil
}

// insert places val at key, keeping the list ordered. If a node with the key
// already exists its value is replaced only when replace is set; either way
// the node at key is returned.
func (l *List) insert(key int, val any, replace bool) *Node {
	var prev *Node
	curr := l.first
	for curr != nil && curr.key < key {
		prev = curr
		curr = curr.next
	}
	if curr != nil && curr.key == key {
		if replace {
			curr.val = val
		}
		return curr
	}
	n := &Node{key: key, val: val, next: curr}
	if prev == nil {
		l.first = n
	} else {
		prev.next = n
	}
	return n
}

// insertAfter links a new node with the given key directly after cursor.
// The caller guarantees cursor.key < key and (cursor.next == nil or
// key < cursor.next.key); this is what makes coordinate-ordered bulk
// insertion amortized O(1).
func insertAfter(cursor *Node, key int, val any) *Node {
	n := &Node{key: key, val: val, next: cursor.next}
	cursor.next = n
	return n
}

// replaceInsertAfter is insertAfter for walks over partially filled lists:
// if the node following cursor already has the key, its value is replaced
// instead of a new node being linked in.
func replaceInsertAfter(cursor *Node, key int, val any) *Node {
	if cursor.next != nil && cursor.next.key == key {
		cursor.next.val = val
		return cursor.next
	}
	return insertAfter(cursor, key, val)
}

// appendOrdered extends the list at cursor with a node whose key is greater
// than every key already present (nil cursor means the list tail so far is
// unknown to the caller and the list is empty or being rebuilt front to
// back). Returns the new cursor.
func appendOrdered(l *List, cursor *Node, key int, val any) *Node {
	n := &Node{key: key, val: val}
	if cursor == nil {
		n.next = l.first
		l.first = n
	} else {
		n.next = cursor.next
		cursor.next = n
	}
	return n
}

// removeRecursive deletes every node whose rebased key falls inside the
// hyper-rectangle described by coords and lengths (both view-local; offset is
// the storage's per-dimension offset), recursing into nested lists. A node
// whose sublist becomes empty is pruned so no dangling empty subtree remains.
// Reports whether this list itself became empty.
func (l *List) removeRecursive(coords, offset, lengths []int, rec, dim int) bool {
	lo := offset[rec] + coords[rec]
	hi := lo + lengths[rec]

	var prev *Node
	curr := l.first
	for curr != nil {
		if curr.key >= lo && curr.key < hi {
			removed := true
			if rec < dim-1 {
				removed = curr.val.(*List).removeRecursive(coords, offset, lengths, rec+1, dim)
			}
			if removed {
				if prev == nil {
					l.first = curr.next
				} else {
					prev.next = curr.next
				}
				curr = curr.next
				continue
			}
		}
		prev = curr
		curr = curr.next
	}
	return l.first == nil
}

// clear recursively unlinks the list and every nested list down to depth
// levels, releasing the tree for collection in one pass.
func (l *List) clear(depth int) {
	n := l.first
	for n != nil {
		if depth > 0 {
			n.val.(*List).clear(depth - 1)
		}
		next := n.next
		n.val = nil
		n.next = nil
		n = next
	}
	l.first = nil
}

// traceObjects visits every element reachable in the tree. Used as the
// liveness hook for Object storages, whose boxed handles an external
// collector may need to mark.
func (l *List) traceObjects(depth int, visit func(any)) {
	for n := l.first; n != nil; n = n.next {
		if depth > 0 {
			n.val.(*List).traceObjects(depth-1, visit)
		} else {
			visit(n.val)
		}
	}
}

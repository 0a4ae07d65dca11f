package list

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// TreeString renders the storage's list tree for debugging: one branch per
// non-terminal node, one leaf per stored element, windowed to the storage's
// visible region and rebased to view-local keys.
func (s *Storage) TreeString() string {
	tree := treeprint.NewWithRoot(s.String())
	sd := newRecurseData(s)
	dumpTree(sd, sd.root(), s.dim-1, tree)
	return tree.String()
}

func dumpTree(sd *recurseData, l *List, rec int, tree treeprint.Tree) {
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
			branch := tree.AddBranch(fmt.Sprintf("[%d]", curr.key-offset))
			dumpTree(sd, curr.val.(*List), rec-1, branch)
		} else {
			tree.AddNode(fmt.Sprintf("[%d] = %v", curr.key-offset, curr.val))
		}
		curr = curr.next
		if curr != nil && curr.key-offset >= shape {
			curr = nil
		}
	}
}

package list

// recurseData resolves a possibly-nested view to its owning tree once, ahead
// of a recursive traversal. It holds the ultimate owner, the owner's full
// shape and the cumulative offset along the view chain, and answers shape and
// offset queries indexed by the recursion counter rec, which runs from dim-1
// at the tree root down to 0 at the element level.
//
// Traversals use it to (a) translate a view-local index into an owner-tree
// key by adding offset(rec), and (b) ignore owner nodes whose rebased key
// falls outside [0, refShape(rec)), windowing the walk to the view's visible
// region without touching the owner's tree.
type recurseData struct {
	ref         *Storage
	actual      *Storage
	shape       []int // of ref
	actualShape []int
	offsets     []int // cumulative, relative to actual
	defVal      any
}

func newRecurseData(s *Storage) *recurseData {
	offsets := make([]int, s.dim)
	actual := s
	for actual.src != actual {
		for i := 0; i < s.dim; i++ {
			offsets[i] += actual.offset[i]
		}
		actual = actual.src
	}
	return &recurseData{
		ref:         s,
		actual:      actual,
		shape:       s.shape,
		actualShape: actual.shape,
		offsets:     offsets,
		defVal:      s.defaultVal,
	}
}

func (r *recurseData) dtype() DataType { return r.ref.dtype }

func (r *recurseData) dim() int { return r.ref.dim }

// refShape returns the view's size along the dimension visited at recursion
// level rec.
func (r *recurseData) refShape(rec int) int {
	return r.shape[r.ref.dim-rec-1]
}

// actualShape returns the owner's size along the dimension visited at
// recursion level rec.
func (r *recurseData) actualShapeAt(rec int) int {
	return r.actualShape[r.ref.dim-rec-1]
}

// offset returns the cumulative owner-tree offset along the dimension
// visited at recursion level rec.
func (r *recurseData) offset(rec int) int {
	return r.offsets[r.ref.dim-rec-1]
}

// root returns the owner's top-level list.
func (r *recurseData) root() *List {
	return r.actual.rows
}

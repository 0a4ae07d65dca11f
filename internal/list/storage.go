package list

import "fmt"

// Storage is the sparse tensor handle: rank, shape, dtype, default value and
// the root of the list tree. A storage either owns its tree (src points to
// itself) or is a view windowing another storage's tree through an offset.
//
// Views share the owner's physical tree; the owner keeps a reference count
// and drops the tree only once every view has been released. Offsets compose
// additively: a view of a view points directly at the ultimate owner.
type Storage struct {
	dim        int
	shape      []int
	offset     []int
	dtype      DataType
	defaultVal any
	rows       *List
	src        *Storage
	refs       int
}

// New creates an owning storage of the given dtype and shape, with every
// coordinate reading as defaultVal until written. The shape slice is taken
// over by the storage; callers must not reuse it.
func New(dtype DataType, shape []int, defaultVal any) (*Storage, error) {
	if !dtype.valid() {
		return nil, fmt.Errorf("%w: unknown dtype %d", ErrTypeMismatch, int(dtype))
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: storage needs at least one dimension", ErrShapeMismatch)
	}
	for i, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("%w: invalid dimension at index %d: %d (must be > 0)", ErrShapeMismatch, i, dim)
		}
	}
	if err := checkValue(defaultVal, dtype); err != nil {
		return nil, fmt.Errorf("default value: %w", err)
	}

	s := &Storage{
		dim:        len(shape),
		shape:      shape,
		offset:     make([]int, len(shape)),
		dtype:      dtype,
		defaultVal: defaultVal,
		rows:       &List{},
		refs:       1,
	}
	s.src = s
	return s, nil
}

// Dim returns the storage's rank.
func (s *Storage) Dim() int { return s.dim }

// Shape returns the storage's shape. The returned slice is the storage's
// own; callers must not modify it.
func (s *Storage) Shape() []int { return s.shape }

// Offset returns the storage's per-dimension offset into its owner's tree.
// All zeros for an owning storage.
func (s *Storage) Offset() []int { return s.offset }

// DType returns the storage's element type.
func (s *Storage) DType() DataType { return s.dtype }

// Default returns the value read for every coordinate absent from the tree.
func (s *Storage) Default() any { return s.defaultVal }

// IsView reports whether the storage windows another storage's tree.
func (s *Storage) IsView() bool { return s.src != s }

// Owner returns the storage that physically owns the tree: the storage
// itself unless it is a view.
func (s *Storage) Owner() *Storage { return s.src }

// RefCount returns the owner's live reference count: one for the owner plus
// one per live view.
func (s *Storage) RefCount() int { return s.src.refs }

// Release ends this handle's use of the tree. Releasing a view forwards a
// decrement to the owner; releasing the owner drops the tree once the count
// reaches zero. The handle must not be used afterwards.
func (s *Storage) Release() {
	if s == nil || s.src == nil {
		return
	}
	if s.src != s {
		owner := s.src
		s.src = nil
		s.rows = nil
		owner.Release()
		return
	}
	s.refs--
	if s.refs == 0 {
		s.rows.clear(s.dim - 1)
		s.rows = nil
		s.src = nil
	}
}

// TraceObjects invokes visit for the boxed default value and every boxed
// element reachable in the tree. This is the only collector-facing surface;
// it does nothing for raw dtypes. Views trace the full owner tree, since all
// of it stays reachable while the view lives.
func (s *Storage) TraceObjects(visit func(any)) {
	if s.dtype != Object || s.rows == nil {
		return
	}
	visit(s.defaultVal)
	s.rows.traceObjects(s.dim-1, visit)
}

// MatrixMultiply is deliberately unimplemented for list storage: the format's
// advantage is sparsity, and a dense-style multiply would silently discard
// it. Fails fast instead of falling back to a slow dense path.
func (s *Storage) MatrixMultiply(other *Storage) (*Storage, error) {
	return nil, fmt.Errorf("%w: multiplication not implemented for list-of-lists storage", ErrUnsupportedOperation)
}

// Transpose is deliberately unimplemented for list storage.
func (s *Storage) Transpose() (*Storage, error) {
	return nil, fmt.Errorf("%w: transpose not implemented for list-of-lists storage", ErrUnsupportedOperation)
}

// String returns a short human-readable description of the storage.
func (s *Storage) String() string {
	kind := "list"
	if s.IsView() {
		kind = "list view"
	}
	return fmt.Sprintf("Storage[%s]%v %s, default %v", s.dtype, s.shape, kind, s.defaultVal)
}

// checkCoords panics unless coords addresses a single in-bounds element.
// Out-of-range indices are programmer errors, matching the rest of the API's
// treatment of bad indices.
func (s *Storage) checkCoords(coords []int) {
	if len(coords) != s.dim {
		panic(fmt.Sprintf("expected %d indices, got %d", s.dim, len(coords)))
	}
	for i, c := range coords {
		if c < 0 || c >= s.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", c, i, s.shape[i]))
		}
	}
}

// checkRegion validates a coords/lengths hyper-rectangle against the
// storage's shape.
func (s *Storage) checkRegion(coords, lengths []int) error {
	if len(coords) != s.dim || len(lengths) != s.dim {
		return fmt.Errorf("%w: region rank %d/%d against storage rank %d",
			ErrShapeMismatch, len(coords), len(lengths), s.dim)
	}
	for i := range coords {
		if coords[i] < 0 || lengths[i] < 1 || coords[i]+lengths[i] > s.shape[i] {
			return fmt.Errorf("%w: region [%d, %d) outside dimension %d (size %d)",
				ErrShapeMismatch, coords[i], coords[i]+lengths[i], i, s.shape[i])
		}
	}
	return nil
}

// checkOperand validates that two storages can be walked together
// elementwise.
func (s *Storage) checkOperand(other *Storage) error {
	if other == nil {
		return fmt.Errorf("%w: nil operand", ErrShapeMismatch)
	}
	if s.dim != other.dim {
		return fmt.Errorf("%w: rank %d against rank %d", ErrShapeMismatch, s.dim, other.dim)
	}
	for i := range s.shape {
		if s.shape[i] != other.shape[i] {
			return fmt.Errorf("%w: shape %v against %v", ErrShapeMismatch, s.shape, other.shape)
		}
	}
	return nil
}

// cloneInts copies an int slice.
func cloneInts(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	return out
}

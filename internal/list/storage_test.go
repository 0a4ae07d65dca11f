package list

import (
	"errors"
	"testing"
)

func newFloat64(t *testing.T, shape []int) *Storage {
	t.Helper()
	s, err := New(Float64, shape, float64(0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func assertFloat(t *testing.T, s *Storage, want float64, coords ...int) {
	t.Helper()
	got := s.At(coords...)
	if got != any(want) {
		t.Errorf("At(%v) = %v, want %v", coords, got, want)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Float64, nil, float64(0)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("empty shape: got %v, want ErrShapeMismatch", err)
	}
	if _, err := New(Float64, []int{2, 0}, float64(0)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("zero dimension: got %v, want ErrShapeMismatch", err)
	}
	if _, err := New(Float64, []int{2, 2}, int32(0)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("wrong default type: got %v, want ErrTypeMismatch", err)
	}
	if _, err := New(Object, []int{2}, "anything"); err != nil {
		t.Errorf("object storage rejects default: %v", err)
	}
}

func TestAtReturnsDefaultForAbsent(t *testing.T) {
	s, err := New(Float64, []int{3, 3}, float64(1.5))
	if err != nil {
		t.Fatal(err)
	}
	assertFloat(t, s, 1.5, 2, 2)
}

func TestSetAtGetAt(t *testing.T) {
	s := newFloat64(t, []int{2, 2})
	if err := s.SetAt(float64(5), 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAt(float64(7), 1, 1); err != nil {
		t.Fatal(err)
	}

	assertFloat(t, s, 5, 0, 0)
	assertFloat(t, s, 7, 1, 1)
	assertFloat(t, s, 0, 0, 1)
	assertFloat(t, s, 0, 1, 0)

	if got := s.CountStored(); got != 2 {
		t.Errorf("CountStored = %d, want 2", got)
	}
}

func TestSetAtTypeMismatch(t *testing.T) {
	s := newFloat64(t, []int{2})
	if err := s.SetAt(int32(1), 0); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("got %v, want ErrTypeMismatch", err)
	}
}

func TestSetAtDefaultRemoves(t *testing.T) {
	// Removing the sole stored element must prune the emptied row list so a
	// later traversal sees nothing, not a dangling empty subtree.
	s := newFloat64(t, []int{2, 2})
	if err := s.SetAt(float64(5), 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAt(float64(0), 0, 0); err != nil {
		t.Fatal(err)
	}

	if got := s.CountStored(); got != 0 {
		t.Errorf("CountStored = %d, want 0", got)
	}
	if s.rows.first != nil {
		t.Error("emptied row list was not pruned")
	}
	assertFloat(t, s, 0, 0, 0)
}

func TestSparsityInvariantAfterWrites(t *testing.T) {
	s := newFloat64(t, []int{4, 4})
	if err := s.SetRegion([]int{0, 0}, []int{4, 4}, float64(3)); err != nil {
		t.Fatal(err)
	}
	if err := s.SetRegion([]int{1, 1}, []int{2, 2}, float64(0)); err != nil {
		t.Fatal(err)
	}

	s.EachStored(func(v any) {
		if v == any(float64(0)) {
			t.Errorf("stored node holds the default value")
		}
	})
	if got := s.CountStored(); got != 12 {
		t.Errorf("CountStored = %d, want 12", got)
	}
}

func TestAtPanicsOnBadIndices(t *testing.T) {
	s := newFloat64(t, []int{2, 2})

	for _, coords := range [][]int{{0}, {0, 2}, {-1, 0}, {0, 0, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%v) did not panic", coords)
				}
			}()
			s.At(coords...)
		}()
	}
}

func TestRefCountConservation(t *testing.T) {
	s := newFloat64(t, []int{4, 4})
	if got := s.RefCount(); got != 1 {
		t.Fatalf("fresh storage RefCount = %d, want 1", got)
	}

	v1, err := s.Ref([]int{0, 0}, []int{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	v2, err := v1.Ref([]int{1, 1}, []int{1, 1})
	if err != nil {
		t.Fatal(err)
	}

	if got := s.RefCount(); got != 3 {
		t.Errorf("RefCount with two views = %d, want 3", got)
	}
	if v2.Owner() != s {
		t.Error("nested view does not point at the ultimate owner")
	}

	v2.Release()
	v1.Release()
	if got := s.RefCount(); got != 1 {
		t.Errorf("RefCount after releases = %d, want 1", got)
	}
	if s.rows == nil {
		t.Error("owner tree freed while owner still live")
	}

	s.Release()
	if s.rows != nil {
		t.Error("owner tree not freed at zero refcount")
	}
}

func TestOwnerTreeSurvivesWhileViewLive(t *testing.T) {
	s := newFloat64(t, []int{2, 2})
	if err := s.SetAt(float64(9), 1, 1); err != nil {
		t.Fatal(err)
	}
	v, err := s.Ref([]int{1, 1}, []int{1, 1})
	if err != nil {
		t.Fatal(err)
	}

	s.Release()
	assertFloat(t, v, 9, 0)

	v.Release()
}

func TestUnsupportedOperations(t *testing.T) {
	s := newFloat64(t, []int{2, 2})

	if _, err := s.MatrixMultiply(s); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("MatrixMultiply: got %v, want ErrUnsupportedOperation", err)
	}
	if _, err := s.Transpose(); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("Transpose: got %v, want ErrUnsupportedOperation", err)
	}

	r1 := newFloat64(t, []int{3})
	if _, err := r1.CountOffDiagonal(); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("CountOffDiagonal rank 1: got %v, want ErrUnsupportedOperation", err)
	}
}

func TestCountOffDiagonal(t *testing.T) {
	s := newFloat64(t, []int{3, 3})
	for _, c := range [][2]int{{0, 0}, {0, 2}, {1, 1}, {2, 0}, {2, 1}} {
		if err := s.SetAt(float64(1), c[0], c[1]); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.CountOffDiagonal()
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("CountOffDiagonal = %d, want 3", got)
	}
}

func TestStorageTraceObjects(t *testing.T) {
	s, err := New(Object, []int{2, 2}, "default")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetAt("a", 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAt("b", 1, 1); err != nil {
		t.Fatal(err)
	}

	seen := map[any]bool{}
	s.TraceObjects(func(v any) { seen[v] = true })
	for _, want := range []string{"default", "a", "b"} {
		if !seen[want] {
			t.Errorf("TraceObjects did not visit %q", want)
		}
	}

	raw := newFloat64(t, []int{2})
	calls := 0
	raw.TraceObjects(func(any) { calls++ })
	if calls != 0 {
		t.Errorf("raw dtype traced %d values, want 0", calls)
	}
}

package list

import (
	"reflect"
	"strings"
	"testing"
)

func TestEachStoredWithIndicesOrder(t *testing.T) {
	s := newFloat64(t, []int{3, 3})
	for _, c := range [][2]int{{2, 0}, {0, 2}, {1, 1}, {0, 0}} {
		if err := s.SetAt(float64(c[0]*3+c[1]+1), c[0], c[1]); err != nil {
			t.Fatal(err)
		}
	}

	var idxs [][]int
	var vals []any
	s.EachStoredWithIndices(func(v any, idx []int) {
		idxs = append(idxs, idx)
		vals = append(vals, v)
	})

	wantIdx := [][]int{{0, 0}, {0, 2}, {1, 1}, {2, 0}}
	wantVal := []any{float64(1), float64(3), float64(5), float64(7)}
	if !reflect.DeepEqual(idxs, wantIdx) {
		t.Errorf("indices = %v, want %v", idxs, wantIdx)
	}
	if !reflect.DeepEqual(vals, wantVal) {
		t.Errorf("values = %v, want %v", vals, wantVal)
	}
}

func TestEachWithIndicesDenseWalk(t *testing.T) {
	s, err := New(Float64, []int{2, 2}, float64(-1))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetAt(float64(5), 1, 0); err != nil {
		t.Fatal(err)
	}

	var vals []any
	var idxs [][]int
	s.EachWithIndices(func(v any, idx []int) {
		vals = append(vals, v)
		idxs = append(idxs, idx)
	})

	wantVal := []any{float64(-1), float64(-1), float64(5), float64(-1)}
	wantIdx := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if !reflect.DeepEqual(vals, wantVal) {
		t.Errorf("values = %v, want %v", vals, wantVal)
	}
	if !reflect.DeepEqual(idxs, wantIdx) {
		t.Errorf("indices = %v, want %v", idxs, wantIdx)
	}
}

func TestEachThroughView(t *testing.T) {
	s := newFloat64(t, []int{4, 4})
	if err := s.SetAt(float64(3), 1, 2); err != nil {
		t.Fatal(err)
	}
	v, err := s.Ref([]int{1, 1}, []int{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	defer v.Release()

	var got []any
	v.Each(func(val any) { got = append(got, val) })

	want := []any{float64(0), float64(3), float64(0), float64(0)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dense view walk = %v, want %v", got, want)
	}
}

func TestStoredIteratorEarlyBreak(t *testing.T) {
	s := newFloat64(t, []int{5})
	for i := 0; i < 5; i++ {
		if err := s.SetAt(float64(i+1), i); err != nil {
			t.Fatal(err)
		}
	}

	count := 0
	for _, v := range s.Stored() {
		count++
		if v == any(float64(2)) {
			break
		}
	}
	if count != 2 {
		t.Errorf("visited %d elements, want 2", count)
	}
}

func TestAllIterator(t *testing.T) {
	s := newFloat64(t, []int{2, 3})
	if err := s.SetAt(float64(7), 1, 2); err != nil {
		t.Fatal(err)
	}

	total := 0
	sum := 0.0
	for idx, v := range s.All() {
		total++
		sum += v.(float64)
		if len(idx) != 2 {
			t.Fatalf("index rank %d", len(idx))
		}
	}
	if total != 6 {
		t.Errorf("dense iterator yielded %d coordinates, want 6", total)
	}
	if sum != 7 {
		t.Errorf("sum = %v, want 7", sum)
	}
}

func TestToMap(t *testing.T) {
	s := newFloat64(t, []int{3, 3})
	if err := s.SetAt(float64(5), 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAt(float64(6), 2, 2); err != nil {
		t.Fatal(err)
	}

	m := s.ToMap()
	want := map[int]any{
		0: map[int]any{1: float64(5)},
		2: map[int]any{2: float64(6)},
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("ToMap = %v, want %v", m, want)
	}
}

func TestToMapThroughView(t *testing.T) {
	s := newFloat64(t, []int{4, 4})
	if err := s.SetAt(float64(5), 2, 2); err != nil {
		t.Fatal(err)
	}
	v, err := s.Ref([]int{1, 1}, []int{3, 3})
	if err != nil {
		t.Fatal(err)
	}
	defer v.Release()

	want := map[int]any{1: map[int]any{1: float64(5)}}
	if got := v.ToMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap = %v, want %v", got, want)
	}
}

func TestTreeString(t *testing.T) {
	s := newFloat64(t, []int{2, 2})
	if err := s.SetAt(float64(5), 0, 1); err != nil {
		t.Fatal(err)
	}

	out := s.TreeString()
	if out == "" {
		t.Fatal("empty dump")
	}
	for _, want := range []string{"Storage[float64]", "[0]", "[1] = 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

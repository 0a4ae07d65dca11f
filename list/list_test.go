// Copyright 2026 Lattice ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package list_test

import (
	"errors"
	"testing"

	"github.com/lattice-ml/lattice/list"
)

// TestPublicAPI exercises the exported surface end to end: construction,
// writes, views, merge-map and equality.
func TestPublicAPI(t *testing.T) {
	s, err := list.New(list.Float64, []int{2, 2}, float64(0))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := s.SetAt(float64(1), 0, 0); err != nil {
		t.Fatal(err)
	}

	// Merge against a scalar.
	res, err := s.MapMergedScalar(float64(3), nil, func(l, r any) any {
		return l.(float64) + r.(float64)
	})
	if err != nil {
		t.Fatalf("MapMergedScalar failed: %v", err)
	}
	if got := res.At(0, 0); got != any(float64(4)) {
		t.Errorf("At(0,0) = %v, want 4", got)
	}
	if got := res.At(0, 1); got != any(float64(3)) {
		t.Errorf("At(0,1) = %v, want 3", got)
	}

	// Views write through to the owner.
	v, err := s.Ref([]int{1, 1}, []int{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := v.SetAt(float64(9), 0, 0); err != nil {
		t.Fatal(err)
	}
	if got := s.At(1, 1); got != any(float64(9)) {
		t.Errorf("owner At(1,1) = %v, want 9", got)
	}
	v.Release()

	// Dense multiply is declined on purpose.
	if _, err := s.MatrixMultiply(s); !errors.Is(err, list.ErrUnsupportedOperation) {
		t.Errorf("MatrixMultiply: got %v, want ErrUnsupportedOperation", err)
	}
}

func TestDataTypeOfAlias(t *testing.T) {
	dt, ok := list.DataTypeOf(float32(1))
	if !ok || dt != list.Float32 {
		t.Errorf("DataTypeOf(float32) = %v, %v", dt, ok)
	}
	if _, ok := list.DataTypeOf(struct{}{}); ok {
		t.Error("struct reported as raw scalar")
	}
}

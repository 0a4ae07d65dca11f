// Copyright 2026 Lattice ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package list provides the public API for sparse list-of-lists tensor
// storage in the Lattice library.
//
// A Storage represents an n-dimensional tensor as a recursive tree of sorted
// linked lists, one level per dimension, where only coordinates holding a
// value different from the storage's default occupy memory.
//
// Example:
//
//	s, _ := list.New(list.Float64, []int{2, 2}, float64(0))
//	s.SetAt(float64(5), 0, 0)
//	v := s.At(1, 1) // 0.0: absent coordinates read as the default
package list

import (
	"github.com/lattice-ml/lattice/internal/list"
)

// Storage is a sparse n-dimensional tensor handle: either an owner of a list
// tree or a lightweight view windowing another storage's tree.
type Storage = list.Storage

// DataType represents the element type of a storage.
type DataType = list.DataType

// Supported element types. Object stores opaque host-managed handles; every
// other tag is a raw fixed-width scalar.
const (
	Uint8      DataType = list.Uint8
	Int8       DataType = list.Int8
	Int16      DataType = list.Int16
	Int32      DataType = list.Int32
	Int64      DataType = list.Int64
	Float32    DataType = list.Float32
	Float64    DataType = list.Float64
	Complex64  DataType = list.Complex64
	Complex128 DataType = list.Complex128
	Object     DataType = list.Object
)

// Scalar is a constraint over the raw fixed-width element types.
type Scalar = list.Scalar

// MapFunc combines one element from each operand of a merge-map.
type MapFunc = list.MapFunc

// Errors returned by storage operations.
var (
	ErrUnsupportedOperation = list.ErrUnsupportedOperation
	ErrShapeMismatch        = list.ErrShapeMismatch
	ErrTypeMismatch         = list.ErrTypeMismatch
)

// New creates an owning storage of the given dtype and shape, with every
// coordinate reading as defaultVal until written. The shape slice is taken
// over by the storage.
func New(dtype DataType, shape []int, defaultVal any) (*Storage, error) {
	return list.New(dtype, shape, defaultVal)
}

// DataTypeOf reports the dtype tag for a runtime value, and whether the
// value is one of the raw scalar types.
func DataTypeOf(v any) (DataType, bool) {
	return list.DataTypeOf(v)
}

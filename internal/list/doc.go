// Package list implements sparse list-of-lists tensor storage.
//
// A storage is a tree of per-dimension sorted singly-linked lists with depth
// equal to the tensor's rank. Only coordinates whose value differs from the
// storage's default value occupy memory; every absent coordinate reads as the
// default. This makes the format efficient for tensors that are mostly one
// value, at the cost of declining dense-style numeric kernels outright.
//
// The package provides:
//   - Storage: the tensor handle (rank, shape, dtype, default, tree root)
//   - views: O(1) windows sharing an owner's tree with refcounting
//   - MapMerged: elementwise combination of two sparse operands
//   - Equal: structural equality accounting for default values
//   - region copy/reference/set/remove and dtype cast-copies
//   - dense and stored-only enumeration, callback and iterator forms
//
// Storages are not safe for concurrent mutation; callers serialize access to
// an owner and its live views.
package list

package list

import "errors"

// Common errors.
//
// Every mutating operation validates shapes and types before touching any
// node, so a returned error never leaves a tree partially edited.
var (
	// ErrUnsupportedOperation marks operations this storage format declines
	// on purpose, such as dense-style multiplication. The format's advantage
	// is sparsity; falling back to a slow dense path would hide that.
	ErrUnsupportedOperation = errors.New("operation not supported by list storage")

	// ErrShapeMismatch reports operands whose ranks or shapes are
	// incompatible, or region bounds that fall outside a storage.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrTypeMismatch reports an element value that does not fit a storage's
	// dtype.
	ErrTypeMismatch = errors.New("type mismatch")
)

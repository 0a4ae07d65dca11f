package list

import (
	"fmt"
	"reflect"
)

// Elements travel through the tree as `any` values holding exactly the Go
// type named by their storage's dtype tag. The dtype set is closed, so the
// pairwise cast and equality kernels below dispatch on the runtime tags
// rather than open-ended reflection.

// checkValue verifies that v is a legal element for dtype dt.
// Any value is a legal Object element.
func checkValue(v any, dt DataType) error {
	if dt == Object {
		return nil
	}
	if got, ok := DataTypeOf(v); !ok || got != dt {
		return fmt.Errorf("%w: value %v (%T) does not fit dtype %s", ErrTypeMismatch, v, v, dt)
	}
	return nil
}

// asInt64 widens a raw scalar to int64, truncating fractional and imaginary
// parts the way a C cast would.
func asInt64(v any) int64 {
	switch x := v.(type) {
	case uint8:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	case complex64:
		return int64(real(x))
	case complex128:
		return int64(real(x))
	default:
		panic(fmt.Sprintf("not a scalar element: %T", v))
	}
}

// asFloat64 widens a raw scalar to float64, dropping any imaginary part.
func asFloat64(v any) float64 {
	switch x := v.(type) {
	case uint8:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	default:
		panic(fmt.Sprintf("not a scalar element: %T", v))
	}
}

// asComplex128 widens a raw scalar to complex128.
func asComplex128(v any) complex128 {
	switch x := v.(type) {
	case complex64:
		return complex128(x)
	case complex128:
		return x
	default:
		return complex(asFloat64(v), 0)
	}
}

// castElement converts an element from dtype `from` to dtype `to`.
//
// Raw-to-raw conversions follow C cast semantics (truncation toward zero,
// imaginary parts dropped). Casting to Object boxes the value unchanged;
// casting from Object requires the boxed value to be a raw scalar.
func castElement(v any, from, to DataType) (any, error) {
	if to == Object {
		return v, nil
	}
	if from == Object {
		boxed, ok := DataTypeOf(v)
		if !ok {
			return nil, fmt.Errorf("%w: cannot cast boxed %T to %s", ErrTypeMismatch, v, to)
		}
		from = boxed
	}
	if from == to {
		return v, nil
	}
	switch to {
	case Uint8:
		return uint8(asInt64(v)), nil
	case Int8:
		return int8(asInt64(v)), nil
	case Int16:
		return int16(asInt64(v)), nil
	case Int32:
		return int32(asInt64(v)), nil
	case Int64:
		return asInt64(v), nil
	case Float32:
		return float32(asFloat64(v)), nil
	case Float64:
		return asFloat64(v), nil
	case Complex64:
		return complex64(asComplex128(v)), nil
	case Complex128:
		return asComplex128(v), nil
	default:
		return nil, fmt.Errorf("%w: unknown target dtype %d", ErrTypeMismatch, to)
	}
}

// equalElements compares two elements drawn from storages with dtypes adt and
// bdt. Same-dtype raw scalars compare exactly; mixed raw scalars compare
// after numeric promotion (integer pairs exactly as int64, anything else as
// complex128). If either side is an Object element, boxed raw scalars still
// compare numerically; other handles fall back to deep equality.
func equalElements(a any, adt DataType, b any, bdt DataType) bool {
	if adt == Object {
		if t, ok := DataTypeOf(a); ok {
			adt = t
		}
	}
	if bdt == Object {
		if t, ok := DataTypeOf(b); ok {
			bdt = t
		}
	}
	if adt == Object || bdt == Object {
		return reflect.DeepEqual(a, b)
	}
	if adt == bdt {
		return a == b
	}
	if adt.isInteger() && bdt.isInteger() {
		return asInt64(a) == asInt64(b)
	}
	return asComplex128(a) == asComplex128(b)
}

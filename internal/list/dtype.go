package list

// Scalar is a constraint over the raw fixed-width element types a storage can
// hold. The Object dtype falls outside this constraint: it stores opaque
// host-managed handles and is handled dynamically.
type Scalar interface {
	~uint8 | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// DataType represents runtime type information for storage elements.
type DataType int

// Supported element types. The set is closed: dispatch over element-type
// pairs (casting, equality) is resolved through these tags.
const (
	Uint8 DataType = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Complex64
	Complex128
	Object // host-managed handle; requires external liveness tracing
)

const numDataTypes = int(Object) + 1

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64, Complex64, Object:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// valid reports whether dt is a known data type tag.
func (dt DataType) valid() bool {
	return dt >= Uint8 && dt <= Object
}

// isInteger reports whether dt is one of the integer dtypes.
func (dt DataType) isInteger() bool {
	return dt >= Uint8 && dt <= Int64
}

// isComplex reports whether dt is one of the complex dtypes.
func (dt DataType) isComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// inferDataType infers DataType from a generic scalar type.
func inferDataType[T Scalar](dummy T) DataType {
	switch any(dummy).(type) {
	case uint8:
		return Uint8
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("unsupported scalar type")
	}
}

// DataTypeOf reports the dtype tag for a runtime value, and whether the value
// is one of the raw scalar types. Values of any other type only fit the
// Object dtype.
func DataTypeOf(v any) (DataType, bool) {
	switch v.(type) {
	case uint8:
		return Uint8, true
	case int8:
		return Int8, true
	case int16:
		return Int16, true
	case int32:
		return Int32, true
	case int64:
		return Int64, true
	case float32:
		return Float32, true
	case float64:
		return Float64, true
	case complex64:
		return Complex64, true
	case complex128:
		return Complex128, true
	default:
		return Object, false
	}
}

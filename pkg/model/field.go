package model

import (
	"errors"
	"fmt"
)

// Access flags for fields.
type Access uint8

const (
	// AccessRead allows reading the field.
	AccessRead Access = 1 << iota

	// AccessWrite allows writing the field.
	AccessWrite

	// AccessSubscribe marks the field as emitting change notifications.
	AccessSubscribe

	// Common access combinations.

	// AccessReadOnly is read and subscribe.
	AccessReadOnly = AccessRead | AccessSubscribe

	// AccessReadWrite is read, write, and subscribe.
	AccessReadWrite = AccessRead | AccessWrite | AccessSubscribe

	// AccessWriteOnly is write without read. Walkers never follow such fields.
	AccessWriteOnly = AccessWrite
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// CanSubscribe returns true if the field emits change notifications.
func (a Access) CanSubscribe() bool { return a&AccessSubscribe != 0 }

// String returns the access flags as a string.
func (a Access) String() string {
	var s string
	if a.CanRead() {
		s += "R"
	}
	if a.CanWrite() {
		s += "W"
	}
	if a.CanSubscribe() {
		s += "S"
	}
	if s == "" {
		return "-"
	}
	return s
}

// DataType represents the declared type of a field value.
type DataType uint8

const (
	DataTypeUnknown DataType = iota
	DataTypeBool
	DataTypeInt8
	DataTypeInt16
	DataTypeInt32
	DataTypeInt64
	DataTypeUint8
	DataTypeUint16
	DataTypeUint32
	DataTypeUint64
	DataTypeFloat32
	DataTypeFloat64
	DataTypeString
	DataTypeBytes
	DataTypeArray
	DataTypeMap
	DataTypeStruct
	DataTypeEnum
	DataTypeNull

	// DataTypeEntity marks a containment edge: the value is another Entity.
	DataTypeEntity
)

var dataTypeNames = []string{
	"unknown", "bool", "int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64", "float32", "float64",
	"string", "bytes", "array", "map", "struct", "enum", "null",
	"entity",
}

// String returns the data type name.
func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return "unknown"
}

// ParseDataType returns the data type with the given name.
func ParseDataType(name string) (DataType, bool) {
	for i, n := range dataTypeNames {
		if n == name {
			return DataType(i), true
		}
	}
	return DataTypeUnknown, false
}

// Field describes one named field of an entity.
type Field struct {
	// Name is the stable field name reported in change notifications.
	Name string

	// Type is the declared type of the field value.
	Type DataType

	// Access defines the allowed operations.
	Access Access

	// Get returns the current value. Nil for write-only fields.
	Get func() any

	// Set stores a new value. Nil for read-only fields.
	Set func(any) error
}

// IsEntity returns true if the field is a readable containment edge.
func (f Field) IsEntity() bool {
	return f.Type == DataTypeEntity && f.Access.CanRead() && f.Get != nil
}

// Field errors.
var (
	ErrFieldNotFound    = errors.New("field not found")
	ErrFieldNotReadable = errors.New("field is not readable")
	ErrFieldNotWritable = errors.New("field is not writable")
	ErrFieldValueType   = errors.New("invalid value type for field")
	ErrFieldAccess      = errors.New("field access failed")
)

// ValueField describes a read-only field.
func ValueField(name string, typ DataType, get func() any) Field {
	return Field{
		Name:   name,
		Type:   typ,
		Access: AccessReadOnly,
		Get:    get,
	}
}

// WritableField describes a read-write field backed by a typed getter and setter.
func WritableField[T any](name string, typ DataType, get func() T, set func(T)) Field {
	return Field{
		Name:   name,
		Type:   typ,
		Access: AccessReadWrite,
		Get:    func() any { return get() },
		Set: func(v any) error {
			tv, ok := v.(T)
			if !ok {
				var zero T
				return fmt.Errorf("%w: %s expects %T, got %T", ErrFieldValueType, name, zero, v)
			}
			set(tv)
			return nil
		},
	}
}

// Ref describes a field holding a pointer to another entity. A nil pointer
// is reported as a nil value rather than a typed nil. Pass a nil set for a
// read-only reference.
func Ref[T any, P interface {
	*T
	Entity
}](name string, get func() P, set func(P)) Field {
	f := Field{
		Name:   name,
		Type:   DataTypeEntity,
		Access: AccessReadOnly,
		Get: func() any {
			if p := get(); p != nil {
				return p
			}
			return nil
		},
	}
	if set != nil {
		f.Access = AccessReadWrite
		f.Set = func(v any) error {
			if v == nil {
				set(nil)
				return nil
			}
			p, ok := v.(P)
			if !ok {
				return fmt.Errorf("%w: %s expects %T, got %T", ErrFieldValueType, name, P(nil), v)
			}
			set(p)
			return nil
		}
	}
	return f
}

// EntityField describes a read-only containment edge whose concrete type is
// only known as an Entity.
func EntityField(name string, get func() Entity) Field {
	return Field{
		Name:   name,
		Type:   DataTypeEntity,
		Access: AccessReadOnly,
		Get:    func() any { return get() },
	}
}

// SafeFields returns e.Fields(). A panic inside Fields is returned as an
// error wrapping ErrFieldAccess.
func SafeFields(e Entity) (fields []Field, err error) {
	defer func() {
		if r := recover(); r != nil {
			fields = nil
			err = fmt.Errorf("%w: %v", ErrFieldAccess, r)
		}
	}()
	return e.Fields(), nil
}

// Lookup returns the field of e with the given name.
func Lookup(e Entity, name string) (Field, error) {
	fields, err := SafeFields(e)
	if err != nil {
		return Field{}, err
	}
	for _, f := range fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
}

// ChildFields returns the readable entity-typed fields of e in declaration order.
func ChildFields(e Entity) []Field {
	var out []Field
	fields, _ := SafeFields(e)
	for _, f := range fields {
		if f.IsEntity() {
			out = append(out, f)
		}
	}
	return out
}

// Read returns the current value of f. A getter that panics is reported as
// ErrFieldAccess instead of unwinding the caller.
func Read(f Field) (v any, err error) {
	if !f.Access.CanRead() || f.Get == nil {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotReadable, f.Name)
	}
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = fmt.Errorf("%w: %s: %v", ErrFieldAccess, f.Name, r)
		}
	}()
	return f.Get(), nil
}

// Write stores v into f.
func Write(f Field, v any) error {
	if !f.Access.CanWrite() || f.Set == nil {
		return fmt.Errorf("%w: %s", ErrFieldNotWritable, f.Name)
	}
	return f.Set(v)
}

// Value reads the named field of e.
func Value(e Entity, name string) (any, error) {
	f, err := Lookup(e, name)
	if err != nil {
		return nil, err
	}
	return Read(f)
}

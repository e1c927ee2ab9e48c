package system

import (
	"sort"
	"strings"

	"github.com/formalcore/tvmc/bv"
)

// FieldSpec declares one named field of a Shape.
type FieldSpec struct {
	Name       string
	Width      bv.Width // element width for arrays, value width for scalars
	IsArray    bool
	IndexWidth bv.Width // meaningful only when IsArray
}

// Shape is the declared field layout of a System's Input or State value.
type Shape struct {
	Fields []FieldSpec
}

// Validate rejects duplicate field names.
func (s Shape) Validate() error {
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if _, ok := seen[f.Name]; ok {
			return ErrDuplicateField
		}
		seen[f.Name] = struct{}{}
	}

	return nil
}

// Find returns the FieldSpec named name, or false if absent.
func (s Shape) Find(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return FieldSpec{}, false
}

// FieldValue is the tagged value stored for one field of a State: either
// a scalar bv.Value or a bv.Array, depending on FieldSpec.IsArray.
type FieldValue struct {
	Scalar bv.Value
	Array  bv.Array
}

// State is a concrete instantiation of a Shape: one FieldValue per
// declared field, keyed by name. Input and State share this
// representation (spec.md §6: "Input and State value shapes").
type State struct {
	Shape  Shape
	Fields map[string]FieldValue
}

// NewState returns a State of the given shape with every scalar field
// Unknown and every array field defaulted to Unknown.
func NewState(shape Shape) State {
	s := State{Shape: shape, Fields: make(map[string]FieldValue, len(shape.Fields))}
	for _, f := range shape.Fields {
		if f.IsArray {
			s.Fields[f.Name] = FieldValue{Array: bv.NewArray(f.IndexWidth, f.Width, bv.Unknown(f.Width))}
		} else {
			s.Fields[f.Name] = FieldValue{Scalar: bv.Unknown(f.Width)}
		}
	}

	return s
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{Shape: s.Shape, Fields: make(map[string]FieldValue, len(s.Fields))}
	for k, v := range s.Fields {
		if spec, ok := s.Shape.Find(k); ok && spec.IsArray {
			out.Fields[k] = FieldValue{Array: v.Array.Clone()}
		} else {
			out.Fields[k] = v
		}
	}

	return out
}

// WithScalar returns a copy of s with field name set to v (a scalar
// field).
func (s State) WithScalar(name string, v bv.Value) State {
	out := s.Clone()
	out.Fields[name] = FieldValue{Scalar: v}

	return out
}

// WithArray returns a copy of s with field name set to a (an array
// field).
func (s State) WithArray(name string, a bv.Array) State {
	out := s.Clone()
	out.Fields[name] = FieldValue{Array: a}

	return out
}

// Scalar returns the scalar value of field name, or an error if the
// field does not exist or is an array.
func (s State) Scalar(name string) (bv.Value, error) {
	spec, ok := s.Shape.Find(name)
	if !ok {
		return bv.Value{}, ErrFieldNotFound
	}
	if spec.IsArray {
		return bv.Value{}, ErrNotArrayField
	}

	return s.Fields[name].Scalar, nil
}

// ArrayField returns the array value of field name, or an error if the
// field does not exist or is a scalar.
func (s State) ArrayField(name string) (bv.Array, error) {
	spec, ok := s.Shape.Find(name)
	if !ok {
		return bv.Array{}, ErrFieldNotFound
	}
	if !spec.IsArray {
		return bv.Array{}, ErrNotArrayField
	}

	return s.Fields[name].Array, nil
}

// MetaEqual implements the state meta-equality relation of spec.md §3:
// two States are equal iff every corresponding field's (zeros,ones) (and,
// for arrays, default + override map) representation is identical.
func (s State) MetaEqual(o State) bool {
	if len(s.Fields) != len(o.Fields) {
		return false
	}
	for name, v := range s.Fields {
		spec, ok := s.Shape.Find(name)
		if !ok {
			return false
		}
		ov, ok := o.Fields[name]
		if !ok {
			return false
		}
		if spec.IsArray {
			if !arrayMetaEqual(v.Array, ov.Array) {
				return false
			}
		} else if !v.Scalar.MetaEqual(ov.Scalar) {
			return false
		}
	}

	return true
}

func arrayMetaEqual(a, b bv.Array) bool {
	if a.IndexWidth != b.IndexWidth || a.ElemWidth != b.ElemWidth {
		return false
	}
	if !a.Default.MetaEqual(b.Default) {
		return false
	}
	if len(a.Overrides) != len(b.Overrides) {
		return false
	}
	for k, v := range a.Overrides {
		ov, ok := b.Overrides[k]
		if !ok || !v.MetaEqual(ov) {
			return false
		}
	}

	return true
}

// MetaKey returns a stable string encoding of s's (zeros,ones)
// representation, suitable as a map key for dedup by meta-equality (the
// "meta-wrap" capability of spec.md §4.5). Field order follows the
// Shape's declared order, then sorted override indices, so the key is
// deterministic regardless of Go map iteration order.
func (s State) MetaKey() string {
	var b strings.Builder
	for _, f := range s.Shape.Fields {
		fv := s.Fields[f.Name]
		if f.IsArray {
			b.WriteString("A(")
			writeValueKey(&b, fv.Array.Default)
			keys := make([]uint64, 0, len(fv.Array.Overrides))
			for k := range fv.Array.Overrides {
				keys = append(keys, k)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
			for _, k := range keys {
				b.WriteByte('|')
				writeUint(&b, k)
				b.WriteByte(':')
				writeValueKey(&b, fv.Array.Overrides[k])
			}
			b.WriteString(")")
		} else {
			b.WriteString("S(")
			writeValueKey(&b, fv.Scalar)
			b.WriteString(")")
		}
		b.WriteByte(';')
	}

	return b.String()
}

func writeValueKey(b *strings.Builder, v bv.Value) {
	writeUint(b, v.Zeros)
	b.WriteByte(',')
	writeUint(b, v.Ones)
}

func writeUint(b *strings.Builder, v uint64) {
	const hex = "0123456789abcdef"
	var buf [16]byte
	for i := 15; i >= 0; i-- {
		buf[i] = hex[v&0xF]
		v >>= 4
	}
	b.Write(buf[:])
}

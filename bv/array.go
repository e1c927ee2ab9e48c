package bv

// maxEnumeratedUnknownBits bounds how many unknown index bits Array.Read
// and Array.Write will brute-force enumerate when the index is not fully
// known. Above this cap the sparse representation falls back to the
// conservative (still sound) default-widening path documented on Write.
const maxEnumeratedUnknownBits = 20

// Array is a three-valued abstract array: a total mapping from unsigned
// IndexWidth-bit indices to Width-bit Values, represented sparsely as a
// Default element plus explicit Overrides.
type Array struct {
	IndexWidth Width
	ElemWidth  Width
	Default    Value
	Overrides  map[uint64]Value
}

// NewArray returns an Array of the given index/element widths with every
// entry initialized to def.
func NewArray(indexWidth, elemWidth Width, def Value) Array {
	return Array{IndexWidth: indexWidth, ElemWidth: elemWidth, Default: def, Overrides: map[uint64]Value{}}
}

// Clone returns a deep copy of a (Overrides is a distinct map).
func (a Array) Clone() Array {
	out := Array{IndexWidth: a.IndexWidth, ElemWidth: a.ElemWidth, Default: a.Default, Overrides: make(map[uint64]Value, len(a.Overrides))}
	for k, v := range a.Overrides {
		out.Overrides[k] = v
	}

	return out
}

// enumerateIndices returns every concrete index consistent with idx, or
// ok=false if idx has more unknown bits than maxEnumeratedUnknownBits.
func (a Array) enumerateIndices(idx Value) (indices []uint64, ok bool) {
	unknown := idx.UnknownMask()
	known := idx.Ones & idx.KnownMask()

	// Collect unknown bit positions.
	var bits []Width
	for i := Width(0); i < idx.Width; i++ {
		if (unknown>>i)&1 == 1 {
			bits = append(bits, i)
		}
	}
	if len(bits) > maxEnumeratedUnknownBits {
		return nil, false
	}

	count := 1 << len(bits)
	indices = make([]uint64, 0, count)
	for combo := 0; combo < count; combo++ {
		v := known
		for j, bitPos := range bits {
			if (combo>>j)&1 == 1 {
				v |= uint64(1) << bitPos
			}
		}
		indices = append(indices, v)
	}

	return indices, true
}

// at returns the current element stored at a concrete index (override or
// default).
func (a Array) at(idx uint64) Value {
	if v, ok := a.Overrides[idx]; ok {
		return v
	}

	return a.Default
}

// Read returns the join of a[j] for every j in γ(idx), per spec.md §4.1.
// When idx has too many unknown bits to enumerate it conservatively
// returns the join of Default with every override (always sound: it can
// only widen the result).
func (a Array) Read(idx Value) Value {
	if indices, ok := a.enumerateIndices(idx); ok {
		result := a.at(indices[0])
		for _, j := range indices[1:] {
			result = result.Join(a.at(j))
		}

		return result
	}

	// Enumeration cap exceeded: widen to default joined with every override.
	result := a.Default
	for _, v := range a.Overrides {
		result = result.Join(v)
	}

	return result
}

// Write returns a new Array reflecting writing v at every index in
// γ(idx). If idx is a singleton this is a strong update (the prior value
// at that index is replaced). Otherwise it is a weak update: when γ(idx)
// is small enough to enumerate, v is joined into every index in γ(idx)
// (materializing an override from Default where none existed) and
// Default is left unchanged; when it is not, Default and every existing
// override are joined with v as a conservative widening. Precise reports
// whether the exact (non-widened) path was taken.
func (a Array) Write(idx Value, v Value) (result Array, precise bool) {
	if c, ok := idx.ConcreteValue(); ok {
		out := a.Clone()
		out.Overrides[c.Bits] = v

		return out, true
	}

	indices, ok := a.enumerateIndices(idx)
	if !ok {
		out := a.Clone()
		out.Default = out.Default.Join(v)
		for k, cur := range out.Overrides {
			out.Overrides[k] = cur.Join(v)
		}

		return out, false
	}

	out := a.Clone()
	for _, j := range indices {
		out.Overrides[j] = out.at(j).Join(v)
	}

	return out, true
}

package ssz

import "encoding/binary"

// serializeHomogeneous encodes a sequence of same-typed elements per
// spec.md §4.8 "serialize_composite": fixed-size elements are simply
// concatenated; variable-size elements are preceded by a 4-byte
// offset per element, offsets measured from the start of this
// encoding. Shared by Vector and List.
func serializeHomogeneous[S any, T Descriptor[S]](values []S, isVariable bool) ([]byte, error) {
	if !isVariable {
		var buf []byte
		for i := range values {
			var err error
			buf, err = T(&values[i]).MarshalSSZTo(buf)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	}

	n := len(values)
	out := make([]byte, 4*n)
	var payload []byte
	for i := range values {
		off := uint32(4*n + len(payload))
		binary.LittleEndian.PutUint32(out[4*i:4*i+4], off)
		var err error
		payload, err = T(&values[i]).MarshalSSZTo(payload)
		if err != nil {
			return nil, err
		}
	}
	return append(out, payload...), nil
}

// deserializeHomogeneousFixed inverts serializeHomogeneous for a
// fixed-size element type, per spec.md §4.8.
func deserializeHomogeneousFixed[S any, T Descriptor[S]](data []byte, sizeHint int) ([]S, error) {
	if sizeHint == 0 {
		if len(data) != 0 {
			return nil, NewAdditionalInputError(len(data), 0)
		}
		return nil, nil
	}
	n := len(data) / sizeHint
	if rem := len(data) % sizeHint; rem != 0 {
		return nil, NewAdditionalInputError(len(data), n*sizeHint)
	}
	if n == 0 {
		return nil, nil
	}
	values := make([]S, n)
	for i := 0; i < n; i++ {
		if err := T(&values[i]).UnmarshalSSZ(data[i*sizeHint : (i+1)*sizeHint]); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// deserializeHomogeneousVariable inverts serializeHomogeneous for a
// variable-size element type, per spec.md §4.8: the first offset
// gives the element count, every recorded offset must be
// non-decreasing, and the final offset plus payload must cover the
// input exactly.
func deserializeHomogeneousVariable[S any, T Descriptor[S]](data []byte) ([]S, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < 4 {
		return nil, NewExpectedFurtherInputError(len(data), 4)
	}
	o1 := binary.LittleEndian.Uint32(data[:4])
	if o1 == 0 || o1%4 != 0 {
		return nil, NewInvalidTypeError(NewInvalidBoundError(uint64(o1), "first offset must be a positive multiple of 4"))
	}
	n := int(o1 / 4)
	offsetTableLen := 4 * n
	if len(data) < offsetTableLen {
		return nil, NewExpectedFurtherInputError(len(data), offsetTableLen)
	}

	offsets := make([]uint32, n+1)
	for i := 0; i < n; i++ {
		offsets[i] = binary.LittleEndian.Uint32(data[4*i : 4*i+4])
	}
	offsets[n] = uint32(len(data))

	for i := 1; i <= n; i++ {
		if offsets[i] < offsets[i-1] {
			return nil, NewOffsetNotIncreasingError(offsets[i-1], offsets[i])
		}
	}
	if last := offsets[n]; last != uint32(len(data)) {
		return nil, NewAdditionalInputError(len(data), int(last))
	}

	values := make([]S, n)
	for i := 0; i < n; i++ {
		lo, hi := offsets[i], offsets[i+1]
		if err := T(&values[i]).UnmarshalSSZ(data[lo:hi]); err != nil {
			return nil, err
		}
	}
	return values, nil
}

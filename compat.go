package ssz

import (
	fastssz "github.com/ferranbt/fastssz"
)

// FastSSZAdapter wraps any SSZType so it satisfies
// github.com/ferranbt/fastssz's Marshaler and Unmarshaler interfaces,
// letting a hand-written or fastssz-generated container embed a core
// type as a field without adaptation. HashTreeRootWith (fastssz's
// pooled-Hasher variant) is deliberately not implemented: that API
// belongs to fastssz's own codegen layer, which this package's
// Merkleization does not depend on or reproduce.
type FastSSZAdapter struct {
	SSZType
}

func (a FastSSZAdapter) MarshalSSZ() ([]byte, error) {
	return a.MarshalSSZTo(nil)
}

func (a FastSSZAdapter) SizeSSZ() int {
	if !a.IsVariableSize() {
		return a.SizeHint()
	}
	buf, err := a.MarshalSSZTo(nil)
	if err != nil {
		return 0
	}
	return len(buf)
}

var (
	_ fastssz.Marshaler   = FastSSZAdapter{}
	_ fastssz.Unmarshaler = FastSSZAdapter{}
)

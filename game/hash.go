package game

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Hasher accumulates the logical fields of a state into an FNV-64a sum.
// Variants feed it every field that participates in Equal, in a fixed order,
// once at construction time.
type Hasher struct {
	h hash.Hash64
}

func NewHasher() *Hasher {
	return &Hasher{h: fnv.New64a()}
}

func (h *Hasher) WriteInt(v int) {
	binary.Write(h.h, binary.LittleEndian, int64(v))
}

func (h *Hasher) WriteBool(v bool) {
	if v {
		binary.Write(h.h, binary.LittleEndian, int64(1))
	} else {
		binary.Write(h.h, binary.LittleEndian, int64(0))
	}
}

func (h *Hasher) Sum() StateHash {
	return StateHash(h.h.Sum64())
}

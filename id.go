package nav

import "hash/fnv"

// ID uniquely identifies an item, a window or a focus scope.
// IDs are stable across frames for the same widget. Zero means "none".
type ID uint64

// HashID generates a stable ID from a label, relative to a seed.
// Windows hash their name with a zero seed; items hash their label with
// the owning window's ID so equal labels in different windows differ.
func HashID(label string, seed ID) ID {
	h := fnv.New64a()
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(seed >> (8 * i))
	}
	h.Write(buf[:])
	h.Write([]byte(label))
	id := ID(h.Sum64())
	if id == 0 {
		// Zero is reserved.
		id = 1
	}
	return id
}

// HashInt generates an ID for the n-th element of a collection.
// Useful for items in arrays/slices.
func HashInt(n int, seed ID) ID {
	h := fnv.New64a()
	var buf [16]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(seed >> (8 * i))
		buf[8+i] = byte(uint64(n) >> (8 * i))
	}
	h.Write(buf[:])
	id := ID(h.Sum64())
	if id == 0 {
		id = 1
	}
	return id
}

package hashing

// CombineHash mixes hash value rhs into lhs. The result depends on the order
// of arguments.
func CombineHash(lhs, rhs uintptr) uintptr {
	return lhs ^ (rhs + 0x9e3779b9 + (lhs << 6) + (lhs >> 2))
}

// CombineHashes folds hash values from left to right with CombineHash,
// starting with the first one. It returns 0 for no arguments.
func CombineHashes(hashes ...uintptr) uintptr {
	if len(hashes) == 0 {
		return 0
	}
	h := hashes[0]
	for _, x := range hashes[1:] {
		h = CombineHash(h, x)
	}
	return h
}

// PathKey builds a composite key from segments, e.g. the components of a
// file path, hashing each segment with FNV1a and combining the results.
// Keys of paths sharing a prefix can thus be extended without re-hashing
// the prefix:
//
//	PathKey(a, b, c) == CombineHash(PathKey(a, b), FNV1a(c))
//
func PathKey(segments ...[]byte) uintptr {
	if len(segments) == 0 {
		return 0
	}
	h := FNV1a(segments[0])
	for _, s := range segments[1:] {
		h = CombineHash(h, FNV1a(s))
	}
	return h
}

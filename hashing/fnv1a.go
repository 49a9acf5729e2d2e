package hashing

// FNV-1a parameters as used by the editor host. These are the 32-bit
// constants, even though results are handed out pointer-wide.
const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// FNV1a computes the FNV-1a hash of b: for every byte, XOR it into the hash,
// then multiply by the FNV prime.
func FNV1a(b []byte) uintptr {
	h := fnvOffsetBasis
	for _, c := range b {
		h ^= uint32(c)
		h *= fnvPrime
	}
	return uintptr(h)
}

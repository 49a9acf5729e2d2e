package hashing

import "github.com/spaolacci/murmur3"

// Seed is the fixed seed the editor host uses for murmur3.
const Seed uint32 = 0x1235678

// Murmur3 computes the 32-bit MurmurHash3 (x86_32 variant) of b with Seed.
func Murmur3(b []byte) uint32 {
	return murmur3.Sum32WithSeed(b, Seed)
}

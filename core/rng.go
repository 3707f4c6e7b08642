package core

// defaultFlickerSeed is used when no explicit seed has been set.
// Arbitrary nonzero constant.
const defaultFlickerSeed uint32 = 0x6C65_6421

// rngState is a xorshift32 generator. Zero is an absorbing state for
// xorshift, so seedRng remaps it; beyond that the generator is a pure
// bit-mixing transform with no hidden entropy, which keeps flicker
// sequences reproducible for a given seed.
type rngState uint32

// seedRng returns an initialized generator state for the given seed.
func seedRng(seed uint32) rngState {
	if seed == 0 {
		seed = defaultFlickerSeed
	}
	return rngState(seed)
}

// next advances the generator one step and returns the new value.
func (s *rngState) next() uint32 {
	x := uint32(*s)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	*s = rngState(x)
	return x
}

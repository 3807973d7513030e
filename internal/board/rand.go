package board

// prng is a small splitmix64 generator whose every output is further
// scrambled by one xorshift step, used only to drive the one-shot
// magic-number search in magic.go. original_source's
// Bitboards.h generates random64 bit-by-bit (1/2 chance per bit); this
// swaps in a standard fast 64-bit generator but keeps the same sparsity
// trick the search depends on: Sparse() ANDs three draws together, which
// biases the result toward few set bits, exactly as
// `random64() & random64() & random64()` does in MoveGen.cpp.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &prng{state: seed}
}

func (p *prng) splitmix64() uint64 {
	p.state += 0x9E3779B97F4A7C15
	z := p.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Next returns the next pseudo-random 64-bit value.
func (p *prng) Next() uint64 {
	x := p.splitmix64()
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	return x
}

// Sparse returns a value with a low expected population count, by ANDing
// three independent draws together.
func (p *prng) Sparse() uint64 {
	return p.Next() & p.Next() & p.Next()
}

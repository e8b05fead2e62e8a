package main

import (
	"math"
	"math/rand"

	"github.com/db47h/divpow10"
	"github.com/db47h/divpow10/internal/mp"
)

type input struct {
	x divpow10.Uint256
	n uint
}

type generator struct {
	name string
	fn   func(r *rand.Rand, v *divpow10.Variant, nInps int) []input
}

var generators = []generator{
	{"random width and exponent", genRandom},
	{"random width, exponent above minimum", genWidth},
	{"maximum width and exponent", genMax},
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// mulHi32 returns x*n/2**32, a value in [0, n) for a random x.
func mulHi32(x uint32, n uint64) uint64 {
	return uint64(x) * n >> 32
}

// genRandom draws two exponents e1, e2 in [1, 34] and a source of about
// e1+e2 digits, capped to 224 bits. The division exponent starts at e1+e2-34
// (or e1) and is raised until the source fits.
func genRandom(r *rand.Rand, v *divpow10.Variant, nInps int) []input {
	const log2of10 = 3.3219280948873623478703194294894
	in := make([]input, nInps)
	for i := range in {
		ee := r.Uint64()
		e1 := uint(mulHi32(uint32(ee), divpow10.MaxExp)) + 1
		e2 := uint(mulHi32(uint32(ee>>32), divpow10.MaxExp)) + 1
		e := e1 + e2
		nbits := int(math.Ceil(log2of10 * float64(e)))
		if nbits > 224 {
			nbits = 224
		}
		x := divpow10.Uint256(mp.Rand(r, nbits))
		n := e1
		if e > divpow10.MaxExp {
			n = e - divpow10.MaxExp
		}
		for !v.Fits(&x, n) {
			n++
		}
		in[i] = input{x, n}
	}
	return in
}

// genWidth draws a source width in [1, 224] bits and an exponent uniformly
// distributed between the smallest valid exponent and 34.
func genWidth(r *rand.Rand, v *divpow10.Variant, nInps int) []input {
	in := make([]input, nInps)
	for i := range in {
		w := r.Uint64()
		nbits := int(mulHi32(uint32(w), 224)) + 1
		x := divpow10.Uint256(mp.Rand(r, nbits))
		lo := v.MinExp(&x)
		n := uint(mulHi32(uint32(w>>32), uint64(divpow10.MaxExp+1-lo))) + lo
		in[i] = input{x, n}
	}
	return in
}

// genMax draws 224-bit sources divided with the smallest valid exponent.
func genMax(r *rand.Rand, v *divpow10.Variant, nInps int) []input {
	in := make([]input, nInps)
	for i := range in {
		x := divpow10.Uint256{r.Uint64(), r.Uint64(), r.Uint64(), r.Uint64() & 0xFFFFFFFF}
		in[i] = input{x, v.MinExp(&x)}
	}
	return in
}

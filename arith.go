// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the 128 and 256-bit primitives the division
// functions are built on.

package divpow10

import "math/bits"

// z = x + y mod 2**128, c is the carry out
func add128(x, y Uint128) (z Uint128, c uint64) {
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	return
}

// z = x - y mod 2**128, b is the borrow out
func sub128(x, y Uint128) (z Uint128, b uint64) {
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	return
}

// z = x >> s for s < 64
func shr128(x Uint128, s uint) Uint128 {
	return Uint128{x[0]>>s | x[1]<<(64-s), x[1] >> s}
}

// mulLo128 returns x*y mod 2**128.
func mulLo128(x, y Uint128) Uint128 {
	hi, lo := bits.Mul64(x[0], y[0])
	hi += x[1]*y[0] + x[0]*y[1]
	return Uint128{lo, hi}
}

// mulHi128 returns the high 128 bits of x*y, less the carries from the
// low partial products. The result is below the exact value by at most 3.
func mulHi128(x, y Uint128) Uint128 {
	z1, z0 := bits.Mul64(x[1], y[1])
	t, _ := bits.Mul64(x[1], y[0])
	var c uint64
	z0, c = bits.Add64(z0, t, 0)
	z1 += c
	t, _ = bits.Mul64(x[0], y[1])
	z0, c = bits.Add64(z0, t, 0)
	z1 += c
	return Uint128{z0, z1}
}

// Mul128 returns the full 256-bit product x*y.
func Mul128(x, y Uint128) (z Uint256) {
	var c, t uint64
	z[1], z[0] = bits.Mul64(x[0], y[0])
	z[2], t = bits.Mul64(x[1], y[0])
	z[1], c = bits.Add64(z[1], t, 0)
	z[2] += c
	h, l := bits.Mul64(x[0], y[1])
	z[1], c = bits.Add64(z[1], l, 0)
	h += c // x0*y1 + carry < 2**128
	z[3], l = bits.Mul64(x[1], y[1])
	z[2], c = bits.Add64(z[2], l, 0)
	z[3] += c
	z[2], c = bits.Add64(z[2], h, 0)
	z[3] += c
	return
}

// z = x*y + r, c is the high word of the result
func mulAddW(z, x *Uint256, y, r uint64) (c uint64) {
	c = r
	for i := 0; i < len(z); i++ {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return
}

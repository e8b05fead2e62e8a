// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mp provides the few multi-precision operations needed to build and
// check test vectors for package divpow10: 128-bit values are num.U128, 256-bit
// values are U256.
package mp

import (
	"fmt"
	"math/big"
	"math/bits"

	num "github.com/shabbyrobe/go-num"
)

// A U256 is an unsigned 256-bit integer stored as four 64-bit words in
// little-endian order. It converts directly to and from divpow10.Uint256.
type U256 [4]uint64

var pow10 [39]num.U128

func init() {
	p := num.U128From64(1)
	for i := range pow10 {
		pow10[i] = p
		p = p.Mul64(10)
	}
}

// Pow10 returns 10**n for 0 <= n <= 38.
func Pow10(n int) num.U128 {
	return pow10[n]
}

// From128 returns x zero-extended to 256 bits.
func From128(x num.U128) U256 {
	hi, lo := x.Raw()
	return U256{lo, hi}
}

// Lo128 returns the low 128 bits of x.
func Lo128(x U256) num.U128 {
	return num.U128FromRaw(x[1], x[0])
}

// Words returns the words of x in little-endian order.
func Words(x num.U128) [2]uint64 {
	hi, lo := x.Raw()
	return [2]uint64{lo, hi}
}

// FromWords is the inverse of Words.
func FromWords(w [2]uint64) num.U128 {
	return num.U128FromRaw(w[1], w[0])
}

// Mulx returns the full product x*y.
func Mulx(x, y num.U128) (z U256) {
	x1, x0 := x.Raw()
	y1, y0 := y.Raw()
	var c uint64
	z[1], z[0] = bits.Mul64(x0, y0)
	z[3], z[2] = bits.Mul64(x1, y1)
	h, l := bits.Mul64(x1, y0)
	z[1], c = bits.Add64(z[1], l, 0)
	z[2], c = bits.Add64(z[2], h, c)
	z[3] += c
	h, l = bits.Mul64(x0, y1)
	z[1], c = bits.Add64(z[1], l, 0)
	z[2], c = bits.Add64(z[2], h, c)
	z[3] += c
	return
}

// Mulu returns the high 128 bits of x*y.
func Mulu(x, y num.U128) num.U128 {
	z := Mulx(x, y)
	return num.U128FromRaw(z[3], z[2])
}

// Add returns x + y mod 2**256.
func Add(x, y U256) (z U256) {
	var c uint64
	for i := range z {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return
}

// Sub returns x - y mod 2**256.
func Sub(x, y U256) (z U256) {
	var b uint64
	for i := range z {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return
}

// Half returns x / 2.
func Half(x num.U128) num.U128 {
	return x.Rsh(1)
}

// Cmp compares x and y and returns -1, 0 or +1.
func Cmp(x, y U256) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// FromFloat64 returns f truncated to an integer. ok is false if f is negative,
// NaN or not below 2**128.
func FromFloat64(f float64) (x num.U128, ok bool) {
	return num.U128FromFloat64(f)
}

// Big returns x as a big.Int.
func Big(x U256) *big.Int {
	b := new(big.Int)
	t := new(big.Int)
	for i := len(x) - 1; i >= 0; i-- {
		b.Lsh(b, 64)
		b.Or(b, t.SetUint64(x[i]))
	}
	return b
}

// FromBig returns the value of b. ok is false if b is negative or does not fit
// in 256 bits.
func FromBig(b *big.Int) (x U256, ok bool) {
	if b.Sign() < 0 || b.BitLen() > 256 {
		return x, false
	}
	t := new(big.Int).Set(b)
	m := new(big.Int).SetUint64(^uint64(0))
	w := new(big.Int)
	for i := range x {
		x[i] = w.And(t, m).Uint64()
		t.Rsh(t, 64)
	}
	return x, true
}

// Parse returns the value of s, in any base accepted by big.Int.SetString with
// base 0.
func Parse(s string) (U256, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return U256{}, fmt.Errorf("mp: invalid number %q", s)
	}
	x, ok := FromBig(b)
	if !ok {
		return U256{}, fmt.Errorf("mp: %s out of range", s)
	}
	return x, nil
}

// Rand returns a random number of exactly nbits bits, 1 <= nbits <= 256, using
// src for randomness.
func Rand(src num.RandSource, nbits int) (x U256) {
	nw := (nbits + 63) / 64
	for i := 0; i < nw; i++ {
		x[i] = src.Uint64()
	}
	top := uint(nbits-1) % 64
	x[nw-1] = (x[nw-1] | 1<<63) >> (63 - top)
	return
}

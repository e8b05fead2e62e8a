// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package divpow10

import "math/bits"

// magic holds a power of ten shifted left until its top bit is set, with the
// reciprocal used to divide two words by it without a divide instruction.
// See Möller & Granlund, "Improved division by invariant integers",
// IEEE Transactions on Computers, 2011.
type magic struct {
	d     uint64 // 10**n << shift
	v     uint64 // (2**128-1)/d - 2**64
	shift uint8
	half  uint64 // 10**n / 2
}

// divWW returns q and r such that q*m.d + r = x1<<64 + x0, for x1 < m.d.
func (m *magic) divWW(x1, x0 uint64) (q, r uint64) {
	q, q0 := bits.Mul64(m.v, x1)
	q0, c := bits.Add64(q0, x0, 0)
	q, _ = bits.Add64(q, x1, c)
	q++
	r = x0 - q*m.d
	if r > q0 {
		q--
		r += m.d
	}
	if r >= m.d {
		q++
		r -= m.d
	}
	return
}

// class returns the class of a remainder r < 10**n.
func (m *magic) class(r uint64) Class {
	switch {
	case r == 0:
		return Zero
	case r < m.half:
		return BelowHalf
	case r == m.half:
		return Half
	}
	return AboveHalf
}

// quoRem sets z to x / 10**n and returns the remainder, where m is the entry
// for 10**n. z and x may alias.
func quoRem(z, x *Uint256, m *magic) uint64 {
	s := uint(m.shift)
	x0, x1, x2, x3 := x[0], x[1], x[2], x[3]
	r := x3 >> (64 - s)
	z[3], r = m.divWW(r, x3<<s|x2>>(64-s))
	z[2], r = m.divWW(r, x2<<s|x1>>(64-s))
	z[1], r = m.divWW(r, x1<<s|x0>>(64-s))
	z[0], r = m.divWW(r, x0<<s)
	return r >> s
}

// divSmall divides x by 10**n for 1 <= n <= 19.
func divSmall(x *Uint256, n uint) (Uint128, Class) {
	m := &pow10SmallTab[n-1]
	var q Uint256
	r := quoRem(&q, x, m)
	return q.Lo(), m.class(r)
}

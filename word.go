// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package divpow10

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

// A Uint128 is an unsigned 128-bit integer stored as two 64-bit words in
// little-endian order.
type Uint128 [2]uint64

// A Uint256 is an unsigned 256-bit integer stored as four 64-bit words in
// little-endian order.
type Uint256 [4]uint64

// Parse errors.
var (
	ErrSyntax = errors.New("invalid syntax")
	ErrRange  = errors.New("value out of range")
)

// IsZero reports whether x == 0.
func (x Uint128) IsZero() bool {
	return x[0]|x[1] == 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x == y:
		return 0
	case x[1] < y[1] || x[1] == y[1] && x[0] < y[0]:
		return -1
	}
	return 1
}

// BitLen returns the number of bits required to represent x.
func (x Uint128) BitLen() int {
	if x[1] != 0 {
		return 64 + bits.Len64(x[1])
	}
	return bits.Len64(x[0])
}

// Wide returns x zero-extended to 256 bits.
func (x Uint128) Wide() Uint256 {
	return Uint256{x[0], x[1]}
}

func (x Uint128) String() string {
	return x.Wide().String()
}

// IsZero reports whether x == 0.
func (x *Uint256) IsZero() bool {
	return x[0]|x[1]|x[2]|x[3] == 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Uint256) Cmp(y *Uint256) int {
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

// BitLen returns the number of bits required to represent x.
func (x *Uint256) BitLen() int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i])
		}
	}
	return 0
}

// Lo returns the low 128 bits of x.
func (x Uint256) Lo() Uint128 {
	return Uint128{x[0], x[1]}
}

// String returns the decimal representation of x.
func (x Uint256) String() string {
	if x.IsZero() {
		return "0"
	}
	// 2**256 has 78 digits, that is 5 chunks of 19 digits at most.
	var chunks [5]uint64
	m := &pow10SmallTab[maxSmallExp-1]
	i := 0
	for !x.IsZero() {
		chunks[i] = quoRem(&x, &x, m)
		i++
	}
	buf := make([]byte, 0, 78)
	i--
	buf = strconv.AppendUint(buf, chunks[i], 10)
	for i--; i >= 0; i-- {
		var tmp [maxSmallExp]byte
		d := strconv.AppendUint(tmp[:0], chunks[i], 10)
		for k := len(d); k < maxSmallExp; k++ {
			buf = append(buf, '0')
		}
		buf = append(buf, d...)
	}
	return string(buf)
}

// ParseUint256 returns the value of the decimal string s. s must consist of
// decimal digits only, without sign or separators.
func ParseUint256(s string) (z Uint256, err error) {
	if s == "" {
		return z, fmt.Errorf("parsing %q: %w", s, ErrSyntax)
	}
	for i := 0; i < len(s); {
		j := i + maxSmallExp
		if j > len(s) {
			j = len(s)
		}
		var w uint64
		for k := i; k < j; k++ {
			ch := s[k]
			if ch < '0' || ch > '9' {
				return Uint256{}, fmt.Errorf("parsing %q: %w", s, ErrSyntax)
			}
			w = w*10 + uint64(ch-'0')
		}
		if mulAddW(&z, &z, pow10W(uint(j-i)), w) != 0 {
			return Uint256{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
		}
		i = j
	}
	return z, nil
}

// pow10W returns 10**n for n <= 19.
func pow10W(n uint) uint64 {
	if n == 0 {
		return 1
	}
	m := &pow10SmallTab[n-1]
	return m.d >> m.shift
}

// Pow10 returns 10**n for n <= MaxExp.
func Pow10(n uint) Uint128 {
	if n == 0 {
		return Uint128{1}
	}
	h := recipTab[n-1].half
	return Uint128{h[0] << 1, h[1]<<1 | h[0]>>63}
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package divpow10

import (
	"sort"
	"strconv"
)

//go:generate go run ./cmd/gentab -o recip_tab.go

// MaxExp is the largest supported power of ten.
const MaxExp = 34

// powers of ten up to 10**maxSmallExp fit in a word
const maxSmallExp = 19

// A Class describes the remainder r discarded by a division by 10**n,
// relative to half the divisor.
type Class uint8

// Remainder classes. The numeric values are stable: bit 1 is set when
// r >= 10**n/2 and bit 0 when r is not exactly 0 or 10**n/2.
const (
	Zero      Class = iota // r == 0
	BelowHalf              // 0 < r < 10**n/2
	Half                   // r == 10**n/2
	AboveHalf              // r > 10**n/2
)

var classNames = [...]string{"Zero", "BelowHalf", "Half", "AboveHalf"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// recip is the reciprocal of half the divisor, normalized so that the top bit
// of inv is set.
type recip struct {
	half Uint128 // 10**n / 2
	inv  Uint128 // 2**(127+len(half)) / half
}

// window selects 128 bits of a source and the shift that aligns their product
// with inv. The source window starts at bit 64*word + shift of the source
// extended by one zero word at the bottom.
type window struct {
	word  uint8
	shift uint8
	post  uint8
}

// A Variant is a division kernel for a given input range.
type Variant struct {
	name  string
	win   *[MaxExp]window
	limit [MaxExp + 1]Uint256 // sources must be below limit[n]
}

// Variants. Decimal68 accepts sources below 10**(n+34), so that the quotient
// fits 34 decimal digits. Uint224 accepts sources below
// min(2**224, 10**n * 2**112), so that the quotient fits 112 bits.
var (
	Decimal68 = &Variant{name: "decimal68", win: &decimal68Win}
	Uint224   = &Variant{name: "uint224", win: &uint224Win}
)

func init() {
	// 10**34
	p := Uint256{pow10W(maxSmallExp)}
	mulAddW(&p, &p, pow10W(MaxExp-maxSmallExp), 0)
	for n := range Decimal68.limit {
		Decimal68.limit[n] = p
		mulAddW(&p, &p, 10, 0)
	}

	p = Uint256{0, 1 << 48}          // 2**112
	top := Uint256{0, 0, 0, 1 << 32} // 2**224
	for n := range Uint224.limit {
		if p.Cmp(&top) < 0 {
			Uint224.limit[n] = p
		} else {
			Uint224.limit[n] = top
		}
		mulAddW(&p, &p, 10, 0)
	}
}

// Variants returns all the available variants.
func Variants() []*Variant {
	return []*Variant{Decimal68, Uint224}
}

// VariantByName returns the variant with the given name, or nil if there is
// none.
func VariantByName(name string) *Variant {
	for _, v := range Variants() {
		if v.name == name {
			return v
		}
	}
	return nil
}

func (v *Variant) String() string {
	return v.name
}

// Limit returns the exclusive upper bound of the sources accepted by v for a
// division by 10**n, n <= MaxExp.
func (v *Variant) Limit(n uint) Uint256 {
	return v.limit[n]
}

// Fits reports whether x can be divided by 10**n with v.
func (v *Variant) Fits(x *Uint256, n uint) bool {
	return n <= MaxExp && x.Cmp(&v.limit[n]) < 0
}

// MinExp returns the smallest n such that v.Fits(x, n), or MaxExp+1 if x is
// too large for any n.
func (v *Variant) MinExp(x *Uint256) uint {
	return uint(sort.Search(len(v.limit), func(n int) bool {
		return x.Cmp(&v.limit[n]) < 0
	}))
}

// Div returns the quotient of x / 10**n truncated toward zero, and the class
// of the remainder. x must be in v's range for n, otherwise the result is
// undefined.
//
// If n is 0 or n > MaxExp, Div returns the low 128 bits of x and Zero.
func (v *Variant) Div(x *Uint256, n uint) (q Uint128, c Class) {
	if debugDiv && n <= MaxExp && !v.Fits(x, n) {
		panic("divpow10: " + v.name + ": source out of range for 10**" + strconv.FormatUint(uint64(n), 10))
	}
	switch {
	case n == 0 || n > MaxExp:
		return x.Lo(), Zero
	case n <= maxSmallExp:
		return divSmall(x, n)
	}
	q, c, _ = divRecip(x, n, v.win)
	return
}

// DivTrace is like Div but always uses the reciprocal method for n > 0, even
// where Div would use word division, and also reports whether the quotient
// estimate had to be corrected.
func (v *Variant) DivTrace(x *Uint256, n uint) (q Uint128, c Class, corrected bool) {
	if debugDiv && n <= MaxExp && !v.Fits(x, n) {
		panic("divpow10: " + v.name + ": source out of range for 10**" + strconv.FormatUint(uint64(n), 10))
	}
	if n == 0 || n > MaxExp {
		return x.Lo(), Zero, false
	}
	return divRecip(x, n, v.win)
}

// DivDecimal68 is shorthand for Decimal68.Div(x, n).
func DivDecimal68(x *Uint256, n uint) (Uint128, Class) {
	return Decimal68.Div(x, n)
}

// DivUint224 is shorthand for Uint224.Div(x, n).
func DivUint224(x *Uint256, n uint) (Uint128, Class) {
	return Uint224.Div(x, n)
}

// divRecip divides x by h = 10**n/2 with a multiplication by the reciprocal of
// h. The estimate q2 = (window(x) * inv) >> post is either x/h or x/h - 1. The
// remainder x - q2*h is below 2*h < 2**128, so it is computed exactly from the
// low 128 bits of x, and a single comparison with h fixes q2. Then q = q2/2,
// and the low bit of q2 and the final remainder give the class.
func divRecip(x *Uint256, n uint, win *[MaxExp]window) (q Uint128, c Class, corrected bool) {
	e := &recipTab[n-1]
	w := &win[n-1]

	ext := [5]uint64{0, x[0], x[1], x[2], x[3]}
	i, s := w.word, w.shift
	t := Uint128{
		ext[i]>>s | ext[i+1]<<(64-s),
		ext[i+1]>>s | ext[i+2]<<(64-s),
	}
	q2 := shr128(mulHi128(t, e.inv), uint(w.post))

	r, _ := sub128(x.Lo(), mulLo128(q2, e.half))
	if d, b := sub128(r, e.half); b == 0 {
		r = d
		q2, _ = add128(q2, Uint128{1})
		corrected = true
	}

	nz := r[0] | r[1]
	c = Class(q2[0]&1<<1 | (nz|-nz)>>63)
	return shr128(q2, 1), c, corrected
}

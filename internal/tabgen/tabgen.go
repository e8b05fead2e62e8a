// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabgen computes the constant tables of package divpow10 with
// math/big.
package tabgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"math/big"
)

// Table sizes.
const (
	MaxExp      = 34
	MaxSmallExp = 19
)

// A Recip is the reciprocal of half a power of ten.
type Recip struct {
	Half [2]uint64 // 10**n / 2
	Inv  [2]uint64 // 2**(127+len(Half)) / Half
}

// A Window locates the 128 significant bits of the sources below some limit.
type Window struct {
	Word  uint
	Shift uint
	Post  uint
	Off   int // 64*Word + Shift - 64, the bit offset of the window in the source
}

// A Magic is a normalized word-sized power of ten and its reciprocal.
type Magic struct {
	D     uint64
	V     uint64
	Shift uint
	Half  uint64
}

// Tables holds all the generated constants. Entry i is for 10**(i+1).
type Tables struct {
	Recip     []Recip
	Decimal68 []Window
	Uint224   []Window
	Small     []Magic
}

var (
	one  = big.NewInt(1)
	ten  = big.NewInt(10)
	mask = new(big.Int).SetUint64(^uint64(0))
)

// Pow10 returns 10**n.
func Pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// Decimal68Limit returns 10**(n+34).
func Decimal68Limit(n int) *big.Int {
	return Pow10(n + MaxExp)
}

// Uint224Limit returns min(2**224, 10**n * 2**112).
func Uint224Limit(n int) *big.Int {
	l := new(big.Int).Lsh(Pow10(n), 112)
	if top := new(big.Int).Lsh(one, 224); l.Cmp(top) > 0 {
		return top
	}
	return l
}

func words(x *big.Int) (w [2]uint64) {
	if x.BitLen() > 128 {
		panic(fmt.Sprintf("tabgen: %v does not fit 128 bits", x))
	}
	w[0] = new(big.Int).And(x, mask).Uint64()
	w[1] = new(big.Int).Rsh(x, 64).Uint64()
	return
}

// NewRecip returns the reciprocal entry for 10**n.
func NewRecip(n int) Recip {
	h := new(big.Int).Rsh(Pow10(n), 1)
	inv := new(big.Int).Lsh(one, uint(127+h.BitLen()))
	inv.Quo(inv, h)
	return Recip{Half: words(h), Inv: words(inv)}
}

// NewWindow returns the window for the division of the sources below limit by
// 10**n.
func NewWindow(n int, limit *big.Int) Window {
	h := new(big.Int).Rsh(Pow10(n), 1)
	l := new(big.Int).Sub(limit, one).BitLen()
	s := l - 128
	post := h.BitLen() - 1 - s
	off := s + 64
	if off < 0 || off/64+2 > 4 || post <= 0 || post >= 64 {
		panic(fmt.Sprintf("tabgen: no window for 10**%d below %v", n, limit))
	}
	return Window{Word: uint(off / 64), Shift: uint(off % 64), Post: uint(post), Off: s}
}

// NewMagic returns the word division constants for 10**n, n <= 19.
func NewMagic(n int) Magic {
	p := Pow10(n)
	shift := 64 - p.BitLen()
	d := new(big.Int).Lsh(p, uint(shift))
	v := new(big.Int).Lsh(one, 128)
	v.Sub(v, one)
	v.Quo(v, d)
	v.Sub(v, new(big.Int).Lsh(one, 64))
	return Magic{
		D:     d.Uint64(),
		V:     v.Uint64(),
		Shift: uint(shift),
		Half:  new(big.Int).Rsh(p, 1).Uint64(),
	}
}

// Generate computes all the tables.
func Generate() *Tables {
	t := new(Tables)
	for n := 1; n <= MaxExp; n++ {
		t.Recip = append(t.Recip, NewRecip(n))
		t.Decimal68 = append(t.Decimal68, NewWindow(n, Decimal68Limit(n)))
		t.Uint224 = append(t.Uint224, NewWindow(n, Uint224Limit(n)))
	}
	for n := 1; n <= MaxSmallExp; n++ {
		t.Small = append(t.Small, NewMagic(n))
	}
	return t
}

const header = `// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Code generated by gentab; DO NOT EDIT.

package divpow10
`

// WriteGo writes the tables as Go source for package divpow10.
func (t *Tables) WriteGo(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("\n// recipTab holds half = 10**n / 2 and inv = 2**(127+len(half)) / half\n// for 1 <= n <= 34.\n")
	b.WriteString("var recipTab = [MaxExp]recip{\n")
	for i, r := range t.Recip {
		fmt.Fprintf(&b, "\t{Uint128{%#x, %#x}, Uint128{%#x, %#x}}, // 10**%d\n", r.Half[0], r.Half[1], r.Inv[0], r.Inv[1], i+1)
	}
	b.WriteString("}\n")
	writeWin(&b, "decimal68Win", "10**(n+34)", t.Decimal68)
	writeWin(&b, "uint224Win", "min(2**224, 10**n * 2**112)", t.Uint224)
	b.WriteString("\n// pow10SmallTab holds normalized divisors 10**n << shift and their\n// reciprocals (2**128-1)/d - 2**64 for 1 <= n <= 19.\n")
	b.WriteString("var pow10SmallTab = [maxSmallExp]magic{\n")
	for i, m := range t.Small {
		fmt.Fprintf(&b, "\t{%#x, %#x, %d, %d}, // 10**%d\n", m.D, m.V, m.Shift, m.Half, i+1)
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

func writeWin(b *bytes.Buffer, name, limit string, win []Window) {
	fmt.Fprintf(b, "\n// %s locates the significant bits of sources below %s.\n", name, limit)
	fmt.Fprintf(b, "var %s = [MaxExp]window{\n", name)
	for i, w := range win {
		fmt.Fprintf(b, "\t{%d, %d, %d}, // 10**%d\n", w.Word, w.Shift, w.Post, i+1)
	}
	b.WriteString("}\n")
}

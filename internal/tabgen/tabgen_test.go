package tabgen

import (
	"bytes"
	"go/parser"
	"go/token"
	"math/big"
	"testing"
)

func TestNewMagic(t *testing.T) {
	b128 := new(big.Int).Lsh(one, 128)
	for n := 1; n <= MaxSmallExp; n++ {
		m := NewMagic(n)
		d := new(big.Int).SetUint64(m.D)
		if m.D>>63 != 1 || new(big.Int).Rsh(d, m.Shift).Cmp(Pow10(n)) != 0 {
			t.Fatalf("10**%d: bad normalized divisor %#x << %d", n, m.D, m.Shift)
		}
		// (2**64 + v) * d < 2**128 <= (2**64 + v + 1) * d
		v := new(big.Int).SetUint64(m.V)
		v.Add(v, new(big.Int).Lsh(one, 64))
		if p := new(big.Int).Mul(v, d); p.Cmp(b128) >= 0 || p.Add(p, d).Cmp(b128) < 0 {
			t.Fatalf("10**%d: bad reciprocal %#x", n, m.V)
		}
	}
}

func TestNewWindow(t *testing.T) {
	for n := 1; n <= MaxExp; n++ {
		for _, limit := range []*big.Int{Decimal68Limit(n), Uint224Limit(n)} {
			w := NewWindow(n, limit)
			top := new(big.Int).Sub(limit, one)
			if w.Off < 0 {
				top.Lsh(top, uint(-w.Off))
			} else {
				top.Rsh(top, uint(w.Off))
			}
			if top.BitLen() != 128 {
				t.Fatalf("10**%d below %v: window at bit %d does not hold the top bits", n, limit, w.Off)
			}
			if w.Off+64 != int(64*w.Word+w.Shift) {
				t.Fatalf("10**%d below %v: inconsistent window %+v", n, limit, w)
			}
		}
	}
}

func TestUint224Limit(t *testing.T) {
	top := new(big.Int).Lsh(one, 224)
	// 10**34 * 2**112 > 2**224 > 10**33 * 2**112
	if Uint224Limit(34).Cmp(top) != 0 || Uint224Limit(33).Cmp(top) >= 0 {
		t.Fatal("bad uint224 limits")
	}
}

func TestWriteGo(t *testing.T) {
	var b bytes.Buffer
	if err := Generate().WriteGo(&b); err != nil {
		t.Fatal(err)
	}
	f, err := parser.ParseFile(token.NewFileSet(), "recip_tab.go", b.Bytes(), parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name.Name != "divpow10" || len(f.Decls) != 4 {
		t.Fatalf("got package %s with %d declarations", f.Name.Name, len(f.Decls))
	}
}

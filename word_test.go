package divpow10

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/db47h/divpow10/internal/mp"
)

func TestUint256String(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x := Uint256(mp.Rand(rnd, 1+rnd.Intn(256)))
		s := x.String()
		if e := toBig(&x).String(); s != e {
			t.Fatalf("String(%#x) = %s, expected %s", [4]uint64(x), s, e)
		}
		y, err := ParseUint256(s)
		if err != nil {
			t.Fatalf("ParseUint256(%s): %v", s, err)
		}
		if y != x {
			t.Fatalf("ParseUint256(%s) = %#x, expected %#x", s, [4]uint64(y), [4]uint64(x))
		}
	}
	if s := (Uint256{}).String(); s != "0" {
		t.Fatalf("String(0) = %s", s)
	}
	if s := (Uint128{0, 1}).String(); s != "18446744073709551616" {
		t.Fatalf("String(2**64) = %s", s)
	}
}

func TestParseUint256(t *testing.T) {
	b, _ := new(big.Int).SetString(strings.Repeat("f", 64), 16)
	td := []struct {
		s   string
		err error
	}{
		{"", ErrSyntax},
		{"-1", ErrSyntax},
		{"+1", ErrSyntax},
		{"12a", ErrSyntax},
		{"1_000", ErrSyntax},
		{"0", nil},
		{"000000000000000000000000000000000000000000000000000000000000000000000000000000000000001", nil},
		{b.String(), nil},
		{new(big.Int).Add(b, big.NewInt(1)).String(), ErrRange},
		{b.String() + "0", ErrRange},
	}
	for _, d := range td {
		x, err := ParseUint256(d.s)
		if !errors.Is(err, d.err) {
			t.Errorf("ParseUint256(%q): got error %v, expected %v", d.s, err, d.err)
			continue
		}
		if err == nil {
			e, _ := new(big.Int).SetString(d.s, 10)
			if toBig(&x).Cmp(e) != 0 {
				t.Errorf("ParseUint256(%q) = %v", d.s, x)
			}
		}
	}
}

func TestUint256Cmp(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x := Uint256(mp.Rand(rnd, 1+rnd.Intn(256)))
		y := Uint256(mp.Rand(rnd, 1+rnd.Intn(256)))
		if i%7 == 0 {
			y = x
		}
		if c, e := x.Cmp(&y), toBig(&x).Cmp(toBig(&y)); c != e {
			t.Fatalf("Cmp(%v, %v) = %d, expected %d", x, y, c, e)
		}
		xl, yl := x.Lo(), y.Lo()
		if c, e := xl.Cmp(yl), mp.Lo128(mp.U256(x)).Cmp(mp.Lo128(mp.U256(y))); c != e {
			t.Fatalf("Cmp(%v, %v) = %d, expected %d", xl, yl, c, e)
		}
		if x.BitLen() != toBig(&x).BitLen() {
			t.Fatalf("BitLen(%v) = %d", x, x.BitLen())
		}
	}
}

func TestMul128(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x := Uint256(mp.Rand(rnd, 1+rnd.Intn(128))).Lo()
		y := Uint256(mp.Rand(rnd, 1+rnd.Intn(128))).Lo()
		z := Mul128(x, y)
		xb, yb := x.Wide(), y.Wide()
		e := new(big.Int).Mul(toBig(&xb), toBig(&yb))
		if toBig(&z).Cmp(e) != 0 {
			t.Fatalf("Mul128(%v, %v) = %v, expected %v", x, y, z, e)
		}
		if ez := Uint256(mp.Mulx(mp.FromWords(x), mp.FromWords(y))); ez != z {
			t.Fatalf("Mul128(%v, %v) = %v, mp.Mulx = %v", x, y, z, ez)
		}
		lo := mulLo128(x, y)
		if lo != z.Lo() {
			t.Fatalf("mulLo128(%v, %v) = %v, expected %v", x, y, lo, z.Lo())
		}
		hi := mulHi128(x, y)
		eh := Uint128{z[2], z[3]}
		if d, b := sub128(eh, hi); b != 0 || d[1] != 0 || d[0] > 3 {
			t.Fatalf("mulHi128(%v, %v) = %v, expected %v - [0, 3]", x, y, hi, eh)
		}
	}
}

func TestPow10(t *testing.T) {
	for n := uint(0); n <= MaxExp; n++ {
		p := Pow10(n).Wide()
		if toBig(&p).Cmp(bigPow10(n)) != 0 {
			t.Fatalf("Pow10(%d) = %v", n, p)
		}
	}
}

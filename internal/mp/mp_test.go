package mp

import (
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	num "github.com/shabbyrobe/go-num"
)

var rnd = rand.New(rand.NewSource(1))

func rnd128() num.U128 {
	return Lo128(Rand(rnd, 1+rnd.Intn(128)))
}

func TestPow10(t *testing.T) {
	p := big.NewInt(1)
	ten := big.NewInt(10)
	for n := 0; n <= 38; n++ {
		if Pow10(n).AsBigInt().Cmp(p) != 0 {
			t.Fatalf("Pow10(%d) = %v, expected %v", n, Pow10(n), p)
		}
		p.Mul(p, ten)
	}
}

func TestMulx(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x, y := rnd128(), rnd128()
		z := Mulx(x, y)
		e := new(big.Int).Mul(x.AsBigInt(), y.AsBigInt())
		if Big(z).Cmp(e) != 0 {
			t.Fatalf("%v × %v = %v, expected %v", x, y, Big(z), e)
		}
		h := Mulu(x, y)
		if h.AsBigInt().Cmp(e.Rsh(e, 128)) != 0 {
			t.Fatalf("Mulu(%v, %v) = %v, expected %v", x, y, h, e)
		}
		if Lo128(z) != x.Mul(y) {
			t.Fatalf("Lo128(%v × %v) = %v, expected %v", x, y, Lo128(z), x.Mul(y))
		}
	}
}

func TestAddSub(t *testing.T) {
	m := new(big.Int).Lsh(big.NewInt(1), 256)
	for i := 0; i < 10000; i++ {
		x, y := Rand(rnd, 1+rnd.Intn(256)), Rand(rnd, 1+rnd.Intn(256))
		s := new(big.Int).Add(Big(x), Big(y))
		s.Mod(s, m)
		if z := Add(x, y); Big(z).Cmp(s) != 0 {
			t.Fatalf("%v + %v = %v, expected %v", Big(x), Big(y), Big(z), s)
		}
		d := new(big.Int).Sub(Big(x), Big(y))
		d.Mod(d, m)
		if z := Sub(x, y); Big(z).Cmp(d) != 0 {
			t.Fatalf("%v - %v = %v, expected %v", Big(x), Big(y), Big(z), d)
		}
		if c := Cmp(x, y); c != Big(x).Cmp(Big(y)) {
			t.Fatalf("Cmp(%v, %v) = %d", Big(x), Big(y), c)
		}
	}
}

func TestRand(t *testing.T) {
	for nbits := 1; nbits <= 256; nbits++ {
		x := Rand(rnd, nbits)
		if l := Big(x).BitLen(); l != nbits {
			t.Fatalf("Rand(%d) has %d bits", nbits, l)
		}
	}
}

func TestWords(t *testing.T) {
	x := num.U128FromRaw(1, 2)
	if w := Words(x); w != [2]uint64{2, 1} || FromWords(w) != x {
		t.Fatalf("Words(%v) = %v", x, w)
	}
	if z := From128(x); z != (U256{2, 1}) || Lo128(z) != x {
		t.Fatalf("From128(%v) = %v", x, z)
	}
	if h := Half(x); h != num.U128FromRaw(0, 1<<63|1) {
		t.Fatalf("Half(%v) = %v", x, h)
	}
}

func TestFromFloat64(t *testing.T) {
	for _, td := range []struct {
		f  float64
		x  num.U128
		ok bool
	}{
		{0, num.U128{}, true},
		{12.75, num.U128From64(12), true},
		{1e30, num.MustU128FromString("1000000000000000019884624838656"), true},
		{math.Ldexp(1, 127), num.U128FromRaw(1<<63, 0), true},
		{math.Ldexp(1, 128), num.U128{}, false},
		{-1, num.U128{}, false},
		{math.NaN(), num.U128{}, false},
	} {
		x, ok := FromFloat64(td.f)
		if ok != td.ok || ok && x != td.x {
			t.Errorf("FromFloat64(%g) = %v, %v, expected %v, %v", td.f, x, ok, td.x, td.ok)
		}
	}
}

func TestParse(t *testing.T) {
	x, err := Parse("0x1_0000000000000000_0000000000000000")
	if err != nil {
		t.Fatal(err)
	}
	if x != (U256{0, 0, 1}) {
		t.Fatalf("got %v", x)
	}
	x, err = Parse("340282366920938463463374607431768211455")
	if err != nil || x != (U256{^uint64(0), ^uint64(0)}) {
		t.Fatalf("got %v, %v", x, err)
	}
	for _, s := range []string{"", "12a", "-1", "0x1" + strings.Repeat("0", 64)} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): expected error", s)
		}
	}
	b, ok := new(big.Int).SetString("123456789012345678901234567890123456789012345678901234567890", 10)
	if !ok {
		t.Fatal("bad constant")
	}
	if x, ok := FromBig(b); !ok || Big(x).Cmp(b) != 0 {
		t.Fatalf("FromBig(%v) = %v, %v", b, x, ok)
	}
}

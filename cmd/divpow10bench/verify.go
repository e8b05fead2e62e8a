package main

import (
	"context"
	"fmt"

	"github.com/codahale/metrics"
	"github.com/db47h/divpow10"
	"github.com/db47h/divpow10/internal/mp"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	checkCount      = metrics.Counter("divpow10.checks")
	skipCount       = metrics.Counter("divpow10.skipped")
	correctionCount = metrics.Counter("divpow10.corrections")
	classCount      = [...]metrics.Counter{
		"divpow10.class.zero",
		"divpow10.class.below_half",
		"divpow10.class.half",
		"divpow10.class.above_half",
	}
)

// divFunc is the division under test.
type divFunc func(v *divpow10.Variant, x *divpow10.Uint256, n uint) (divpow10.Uint128, divpow10.Class)

// A mismatch describes a wrong division result.
type mismatch struct {
	X    divpow10.Uint256
	N    uint
	Q    divpow10.Uint128
	C    divpow10.Class
	RefQ divpow10.Uint128
	RefC divpow10.Class
}

func (m *mismatch) Error() string {
	return fmt.Sprintf("%016x:%016x:%016x:%016x / 1E%d\nres: %016x:%016x,%d\nref: %016x:%016x,%d",
		m.X[3], m.X[2], m.X[1], m.X[0], m.N,
		m.Q[1], m.Q[0], m.C,
		m.RefQ[1], m.RefQ[0], m.RefC)
}

type stats struct {
	checks      uint64
	skipped     uint64
	corrections uint64
	classes     [4]uint64
}

func (s *stats) flush() {
	checkCount.AddN(s.checks)
	skipCount.AddN(s.skipped)
	correctionCount.AddN(s.corrections)
	for i, n := range s.classes {
		classCount[i].AddN(n)
	}
}

// verify checks v.Div against the reference divider, using workers
// goroutines.
func verify(ctx context.Context, v *divpow10.Variant, in []input, workers int) error {
	return verifyWith(ctx, v, in, workers, (*divpow10.Variant).Div)
}

func verifyWith(ctx context.Context, v *divpow10.Variant, in []input, workers int, div divFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(in) + workers - 1) / workers
	for lo := 0; lo < len(in); lo += chunk {
		hi := lo + chunk
		if hi > len(in) {
			hi = len(in)
		}
		part := in[lo:hi]
		g.Go(func() error {
			var st stats
			defer st.flush()
			for i := range part {
				if i&1023 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if err := checkInput(v, &part[i], div, &st); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// checkInput divides in.x and the sources q*10**n + r for r in {0, h-1, h,
// 10**n-1}, h = 10**n/2 and q = in.x / 10**n, which must give the same
// quotient and the classes Zero, BelowHalf, Half and AboveHalf. Sources
// out of v's range are skipped.
func checkInput(v *divpow10.Variant, in *input, div divFunc, st *stats) error {
	q, c := divpow10.RefDiv(&in.x, in.n)
	srcs := [5]divpow10.Uint256{4: in.x}
	want := [5]divpow10.Class{divpow10.Zero, divpow10.BelowHalf, divpow10.Half, divpow10.AboveHalf, c}
	k := len(srcs) - 1
	if in.n > 0 {
		k = 0
		d := mp.Pow10(int(in.n))
		x0 := mp.Mulx(d, mp.FromWords(q))
		x2 := mp.Add(x0, mp.From128(mp.Half(d)))
		srcs[0] = divpow10.Uint256(x0)
		srcs[1] = divpow10.Uint256(mp.Sub(x2, mp.U256{1}))
		srcs[2] = divpow10.Uint256(x2)
		srcs[3] = divpow10.Uint256(mp.Sub(mp.Add(x0, mp.From128(d)), mp.U256{1}))
	}
	for ; k < len(srcs); k++ {
		x := &srcs[k]
		if !v.Fits(x, in.n) {
			st.skipped++
			continue
		}
		qq, cc := div(v, x, in.n)
		if qq != q || cc != want[k] {
			return errors.WithStack(&mismatch{*x, in.n, qq, cc, q, want[k]})
		}
		qq, cc, corrected := v.DivTrace(x, in.n)
		if qq != q || cc != want[k] {
			return errors.WithStack(&mismatch{*x, in.n, qq, cc, q, want[k]})
		}
		st.checks++
		st.classes[cc]++
		if corrected {
			st.corrections++
		}
	}
	return nil
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides rounding contexts for fixed-size decimal
// coefficients.
//
// A decimal value is represented as a Dec: a sign, an unsigned coefficient
// and a power of ten exponent. The coefficient range is set by the context's
// divpow10.Variant: below 10**34 for divpow10.Decimal68 and below 2**112 for
// divpow10.Uint224.
//
// Operators of the form
//
//    func (c *Context) Op(args) (Dec, divpow10.Accuracy)
//
// compute the exact result, then reduce its coefficient to the variant's
// range with a single rounding using c's rounding mode, and return it with
// the accuracy of the rounding.
//
// A Context catches range errors: if an operation cannot produce a
// coefficient in range, the operation silently succeeds with an undefined
// result. Further operations with the context will be no-ops until
// (*Context).Err is called to check for errors.
package context

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/db47h/divpow10"
)

// ErrRange is the error returned by Err when an operation produced a
// coefficient that does not fit the variant's range at any exponent.
var ErrRange = errors.New("coefficient out of range")

// A Dec is a decimal value (-1)**Neg × Coef × 10**Exp.
type Dec struct {
	Neg  bool
	Coef divpow10.Uint128
	Exp  int
}

func (d Dec) String() string {
	s := d.Coef.String() + "e" + strconv.Itoa(d.Exp)
	if d.Neg {
		return "-" + s
	}
	return s
}

// A Context is a wrapper around a division variant that facilitates
// management of rounding modes and error handling.
type Context struct {
	v    *divpow10.Variant
	mode divpow10.RoundingMode
	err  error
}

// New creates a new context with the given variant and rounding mode. If v is
// nil, it will be set to divpow10.Decimal68.
func New(v *divpow10.Variant, mode divpow10.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetVariant(v)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() divpow10.RoundingMode {
	return c.mode
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode divpow10.RoundingMode) *Context {
	c.mode = mode
	return c
}

// Variant returns the division variant of c.
func (c *Context) Variant() *divpow10.Variant {
	return c.v
}

// SetVariant sets c's division variant to v and returns c.
func (c *Context) SetVariant(v *divpow10.Variant) *Context {
	if v == nil {
		v = divpow10.Decimal68
	}
	c.v = v
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

func (c *Context) fail(format string, args ...interface{}) {
	c.err = fmt.Errorf("%v: %w: "+format, append([]interface{}{c.v, ErrRange}, args...)...)
}

// inRange reports whether x is a valid coefficient.
func (c *Context) inRange(x divpow10.Uint128) bool {
	w := x.Wide()
	return c.v.Fits(&w, 0)
}

// Reduce returns the decimal value (-1)**neg × x × 10**exp with its
// coefficient rounded to c's variant range, using the smallest possible
// exponent.
func (c *Context) Reduce(neg bool, x *divpow10.Uint256, exp int) (Dec, divpow10.Accuracy) {
	if c.err != nil {
		return Dec{}, divpow10.Exact
	}
	n := c.v.MinExp(x)
	for ; n <= divpow10.MaxExp; n++ {
		q, acc := c.v.Round(x, n, c.mode, neg)
		// rounding up may carry out of range, e.g. to 10**34
		if c.inRange(q) {
			return Dec{neg, q, exp + int(n)}, acc
		}
	}
	c.fail("%v", x)
	return Dec{}, divpow10.Exact
}

// Mul returns the rounded product x×y.
func (c *Context) Mul(x, y Dec) (Dec, divpow10.Accuracy) {
	if c.err != nil {
		return Dec{}, divpow10.Exact
	}
	if !c.inRange(x.Coef) || !c.inRange(y.Coef) {
		c.fail("%v × %v", x, y)
		return Dec{}, divpow10.Exact
	}
	p := divpow10.Mul128(x.Coef, y.Coef)
	return c.Reduce(x.Neg != y.Neg, &p, x.Exp+y.Exp)
}

// Quantize returns x with exponent exp. The coefficient is rounded if exp >
// x.Exp, and scaled up if exp < x.Exp, which fails if the result is out of
// range.
func (c *Context) Quantize(x Dec, exp int) (Dec, divpow10.Accuracy) {
	if c.err != nil {
		return Dec{}, divpow10.Exact
	}
	if !c.inRange(x.Coef) {
		c.fail("%v", x)
		return Dec{}, divpow10.Exact
	}
	switch {
	case exp == x.Exp:
		return x, divpow10.Exact
	case exp < x.Exp:
		k := x.Exp - exp
		if k > divpow10.MaxExp && !x.Coef.IsZero() {
			c.fail("%v with exponent %d", x, exp)
			return Dec{}, divpow10.Exact
		}
		if k > divpow10.MaxExp {
			return Dec{x.Neg, x.Coef, exp}, divpow10.Exact
		}
		p := divpow10.Mul128(x.Coef, divpow10.Pow10(uint(k)))
		if p[2]|p[3] != 0 || !c.inRange(p.Lo()) {
			c.fail("%v with exponent %d", x, exp)
			return Dec{}, divpow10.Exact
		}
		return Dec{x.Neg, p.Lo(), exp}, divpow10.Exact
	}
	k := exp - x.Exp
	if k > divpow10.MaxExp {
		// x < 10**34 < 10**k/2, only the sticky digits remain
		var q divpow10.Uint128
		if x.Coef.IsZero() {
			return Dec{x.Neg, q, exp}, divpow10.Exact
		}
		acc := divpow10.Below
		if divpow10.BelowHalf.Inc(c.mode, x.Neg, false) {
			q[0] = 1
			acc = divpow10.Above
		}
		if x.Neg {
			acc = -acc
		}
		return Dec{x.Neg, q, exp}, acc
	}
	w := x.Coef.Wide()
	q, acc := c.v.Round(&w, uint(k), c.mode, x.Neg)
	return Dec{x.Neg, q, exp}, acc
}

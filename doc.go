// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package divpow10 implements fast division of wide unsigned integers by powers
of ten.

The core operation divides an unsigned integer of up to 256 bits by 10**n,
0 <= n <= 34, and returns the 128-bit quotient together with a Class telling
where the discarded remainder lies relative to half the divisor:

    Zero       remainder == 0
    BelowHalf  0 < remainder < 10**n/2
    Half       remainder == 10**n/2
    AboveHalf  remainder > 10**n/2

which is everything a caller needs to apply any rounding mode to the
quotient. This is the inner step of decimal multiplication and rescaling in
decimal floating-point libraries: the exact product of two coefficients is
reduced back to the coefficient range with a single call.

Two variants are provided, differing only in their input range:

    Decimal68  sources below 10**(n+34): the quotient has at most 34 digits
    Uint224    sources below min(2**224, 10**n * 2**112): the quotient has at
               most 112 bits

Results are unspecified when a source exceeds its variant's range; no panic
or out of bounds access occurs, unless the package is built with the
divpow10_debug tag, in which case the precondition is checked.

Division never uses a hardware divide instruction for n >= 20. The source is
multiplied by a precomputed fixed-point reciprocal of 10**n/2, the estimate is
fixed with at most one correction step and the remainder is recovered exactly
from the low bits of the source. For n <= 19 the divisor fits a machine word
and the package uses repeated 2-by-1 word division by an invariant divisor.

All functions are safe for concurrent use; the constant tables are read-only
and no call allocates.

Uint128 and Uint256 store their words in little-endian order, word 0 being
the least significant:

    x := divpow10.Uint256{lo, w1, w2, hi}
    q, c := divpow10.Decimal68.Div(&x, 20)

RefDiv computes the same results with repeated division by ten. It is slow
and meant as an oracle for tests.
*/
package divpow10

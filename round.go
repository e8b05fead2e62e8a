package divpow10

import "strconv"

// RoundingMode determines how a quotient is rounded when the remainder of a
// division is not zero.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

const _RoundingMode_name = "ToNearestEvenToNearestAwayToZeroAwayFromZeroToNegativeInfToPositiveInf"

var _RoundingMode_index = [...]uint8{0, 13, 26, 32, 44, 57, 70}

func (i RoundingMode) String() string {
	if i >= RoundingMode(len(_RoundingMode_index)-1) {
		return "RoundingMode(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _RoundingMode_name[_RoundingMode_index[i]:_RoundingMode_index[i+1]]
}

// Accuracy describes the rounding error of a rounded quotient, relative to
// the exact value.
type Accuracy int8

// Constants describing the Accuracy of a quotient.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

func (i Accuracy) String() string {
	switch i {
	case Below:
		return "Below"
	case Exact:
		return "Exact"
	case Above:
		return "Above"
	}
	return "Accuracy(" + strconv.FormatInt(int64(i), 10) + ")"
}

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// Inc reports whether a quotient truncated toward zero with remainder class c
// must be incremented (in magnitude) to be rounded with the given mode. neg is
// the sign of the quotient and odd its parity.
func (c Class) Inc(mode RoundingMode, neg, odd bool) bool {
	if c == Zero {
		return false
	}
	switch mode {
	case ToNegativeInf:
		return neg
	case ToZero:
		return false
	case ToNearestEven:
		return c == AboveHalf || c == Half && odd
	case ToNearestAway:
		return c >= Half
	case AwayFromZero:
		return true
	case ToPositiveInf:
		return !neg
	}
	panic("divpow10: invalid rounding mode " + mode.String())
}

// Round returns x / 10**n rounded to an integer with the given mode, and the
// accuracy of the result. neg is the sign of the source, x being its
// magnitude. The rounded quotient may exceed the quotient range of v by one
// unit, for instance 10**34 for Decimal68.
//
// Like Div, Round returns the low 128 bits of x and Exact for n == 0 or
// n > MaxExp.
func (v *Variant) Round(x *Uint256, n uint, mode RoundingMode, neg bool) (q Uint128, acc Accuracy) {
	q, c := v.Div(x, n)
	if c == Zero {
		return q, Exact
	}
	inc := c.Inc(mode, neg, q[0]&1 != 0)
	if inc {
		q, _ = add128(q, Uint128{1})
	}
	return q, makeAcc(inc != neg)
}

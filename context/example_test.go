package context_test

import (
	"errors"
	"fmt"

	"github.com/db47h/divpow10"
	"github.com/db47h/divpow10/context"
)

// third is 0.3333333333333333333333333333333333
var third = context.Dec{Coef: divpow10.Uint128{0x67d9da2155555555, 0xa45894e48295}, Exp: -34}

// Example demonstrates various features of Contexts.
func Example() {
	ctx := context.New(divpow10.Decimal68, divpow10.ToNearestEven)

	x, acc := ctx.Mul(third, third)
	fmt.Println(x, acc)
	x, acc = ctx.Quantize(x, -2)
	fmt.Println(x, acc)
	if err := ctx.Err(); err != nil {
		fmt.Println(err)
		return
	}

	// 10**34 is not a valid coefficient
	ten34 := context.Dec{Coef: divpow10.Pow10(34)}
	ctx.Mul(ten34, third)
	ctx.Mul(third, third) // no-op
	if err := ctx.Err(); errors.Is(err, context.ErrRange) {
		fmt.Println(err)
	}
	//
	// Output:
	// 1111111111111111111111111111111111e-34 Above
	// 11e-2 Below
	// decimal68: coefficient out of range: 10000000000000000000000000000000000e0 × 3333333333333333333333333333333333e-34
}

package divpow10_test

import (
	"fmt"

	"github.com/db47h/divpow10"
)

func ExampleVariant_Div() {
	x, err := divpow10.ParseUint256("123456789012345678901234567890")
	if err != nil {
		panic(err)
	}
	q, c := divpow10.Decimal68.Div(&x, 10)
	fmt.Println(q, c)

	x, _ = divpow10.ParseUint256("9999999999999999999999999999999999")
	q, c = divpow10.Uint224.Div(&x, 34)
	fmt.Println(q, c)
	// Output:
	// 12345678901234567890 BelowHalf
	// 0 AboveHalf
}

func ExampleVariant_Round() {
	// 2.5 and 3.5 rounded to an integer
	for _, s := range []string{"25", "35"} {
		x, _ := divpow10.ParseUint256(s)
		q, acc := divpow10.Decimal68.Round(&x, 1, divpow10.ToNearestEven, false)
		fmt.Println(q, acc)
	}
	// Output:
	// 2 Below
	// 4 Above
}

func ExampleVariant_MinExp() {
	// the product of two 34-digit coefficients
	c := divpow10.Uint128{0x378d8e63ffffffff, 0x1ed09bead87c0} // 10**34 - 1
	x := divpow10.Mul128(c, c)
	n := divpow10.Decimal68.MinExp(&x)
	q, cl := divpow10.Decimal68.Div(&x, n)
	fmt.Println(x)
	fmt.Println(n, q, cl)
	// Output:
	// 99999999999999999999999999999999980000000000000000000000000000000001
	// 34 9999999999999999999999999999999998 BelowHalf
}

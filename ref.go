package divpow10

// RefDiv returns the same results as Div, computed by dividing x by ten n
// times. The remainders of all but the last division are or-ed together into a
// sticky flag, and the last one, the leading discarded digit, decides the class
// together with the sticky flag.
//
// RefDiv is slow and accepts any source up to 2**256-1; it is meant to check
// the other division functions.
func RefDiv(x *Uint256, n uint) (q Uint128, c Class) {
	if n == 0 || n > MaxExp {
		return x.Lo(), Zero
	}
	var h [8]uint32
	for i, w := range x {
		h[2*i] = uint32(w)
		h[2*i+1] = uint32(w >> 32)
	}
	var d, sticky uint32
	for ; n > 0; n-- {
		sticky |= d
		d = 0
		for i := len(h) - 1; i >= 0; i-- {
			t := uint64(d)<<32 | uint64(h[i])
			h[i] = uint32(t / 10)
			d = uint32(t % 10)
		}
	}
	q = Uint128{uint64(h[1])<<32 | uint64(h[0]), uint64(h[3])<<32 | uint64(h[2])}
	if d < 5 {
		if d|sticky != 0 {
			return q, BelowHalf
		}
		return q, Zero
	}
	if (d-5)|sticky != 0 {
		return q, AboveHalf
	}
	return q, Half
}

// Copyright (c) 2021 Oasis Labs Inc. All rights reserved.
// Copyright (c) 2021 Yawning Angel. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
// 1. Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright
// notice, this list of conditions and the following disclaimer in the
// documentation and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS
// IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED
// TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A
// PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED
// TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR
// PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF
// LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
// NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
// SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package mont

import "github.com/nijynot/bcrypto/field"

// cswap conditionally exchanges a and b in constant time, following
// the receiver-is-output convention: cond must be 0 or 1.
func cswap(cond int, a, b field.Element) {
	na := a.New().Select(b, a, cond)
	nb := a.New().Select(a, b, cond)
	a.Set(na)
	b.Set(nb)
}

func bitAt(k []byte, t int) int {
	byt := k[t/8]
	return int((byt >> uint(t%8)) & 1)
}

// Ladder computes the u-coordinate of k*P given the u-coordinate of
// P, via the constant-time Montgomery ladder of RFC 7748 §5. k is a
// little-endian byte string of the curve's clamped scalar width;
// clamping itself is the caller's responsibility (x25519/x448 apply
// it), since the clamp mask differs between the two curves.
func (c *Context) Ladder(k []byte, u field.Element) field.Element {
	bits := c.Params.ByteSize * 8

	x1 := c.NewElement().Set(u)
	x2 := c.NewElement()
	x2.One()
	z2 := c.NewElement()
	z2.Zero()
	x3 := c.NewElement().Set(u)
	z3 := c.NewElement()
	z3.One()

	swap := 0
	for t := bits - 1; t >= 0; t-- {
		kt := bitAt(k, t)
		swap ^= kt
		cswap(swap, x2, x3)
		cswap(swap, z2, z3)
		swap = kt

		a := c.NewElement().Add(x2, z2)
		aa := c.NewElement().Square(a)
		b := c.NewElement().Subtract(x2, z2)
		bb := c.NewElement().Square(b)
		e := c.NewElement().Subtract(aa, bb)
		cc := c.NewElement().Add(x3, z3)
		d := c.NewElement().Subtract(x3, z3)
		da := c.NewElement().Multiply(d, a)
		cb := c.NewElement().Multiply(cc, b)

		daPlusCb := c.NewElement().Add(da, cb)
		x3 = c.NewElement().Square(daPlusCb)
		daMinusCb := c.NewElement().Subtract(da, cb)
		daMinusCbSq := c.NewElement().Square(daMinusCb)
		z3 = c.NewElement().Multiply(x1, daMinusCbSq)

		x2 = c.NewElement().Multiply(aa, bb)
		a24e := c.NewElement().Multiply(c.a24, e)
		aaPlusA24e := c.NewElement().Add(bb, a24e)
		z2 = c.NewElement().Multiply(e, aaPlusA24e)
	}
	cswap(swap, x2, x3)
	cswap(swap, z2, z3)

	zInv, _ := c.NewElement().Invert(z2)
	return c.NewElement().Multiply(x2, zInv)
}

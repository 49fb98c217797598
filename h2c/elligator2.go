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

package h2c

import "github.com/nijynot/bcrypto/field"

// montgomeryCurve bundles the Montgomery-form constants K*v^2 = u^3 +
// J*u^2 + u, plus the non-square constant Z that Elligator 2 needs, for
// one target curve.
type montgomeryCurve struct {
	newElement func() field.Element
	j, k       field.Element
	z          field.Element
}

// mapToCurveElligator2 implements RFC 9380 Appendix F.2's
// map_to_curve_elligator2 over an arbitrary K*v^2 = u^3 + J*u^2 + u
// Montgomery curve, using the field.Element Invert/Sqrt/Select/
// IsNegative primitives as the inv0/is_square/CMOV/sign0 building
// blocks the RFC pseudocode calls for.
func mapToCurveElligator2(mc montgomeryCurve, u field.Element) (s, t field.Element) {
	ne := mc.newElement
	one := ne().One()

	kInv, _ := ne().Invert(mc.k)
	c1 := ne().Multiply(mc.j, kInv)
	c2 := ne().Multiply(kInv, kInv)
	negC1 := ne().Negate(c1)

	u2 := ne().Square(u)
	zu2 := ne().Multiply(mc.z, u2)
	denom := ne().Add(one, zu2)
	invDenom, _ := ne().Invert(denom)
	x1raw := ne().Multiply(negC1, invDenom)
	x1 := ne().Select(negC1, x1raw, denom.IsZero())

	gx1 := montgomeryRHS(ne, x1, c1, c2)
	x2 := ne().Subtract(ne().Negate(x1), c1)
	gx2 := montgomeryRHS(ne, x2, c1, c2)

	y1, isSquare1 := ne().Sqrt(gx1)
	y2, _ := ne().Sqrt(gx2)

	x := ne().Select(x1, x2, isSquare1)
	y := ne().Select(y1, y2, isSquare1)

	negY := ne().Negate(y)
	y = ne().Select(negY, y, y.IsNegative()^isSquare1)

	s = ne().Multiply(x, mc.k)
	t = ne().Multiply(y, mc.k)
	return s, t
}

// montgomeryRHS evaluates x^3 + c1*x^2 + c2*x = x*(x^2 + c1*x + c2).
func montgomeryRHS(ne func() field.Element, x, c1, c2 field.Element) field.Element {
	x2 := ne().Square(x)
	c1x := ne().Multiply(c1, x)
	inner := ne().Add(x2, c1x)
	inner = ne().Add(inner, c2)
	return ne().Multiply(x, inner)
}

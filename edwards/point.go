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

package edwards

import "github.com/nijynot/bcrypto/field"

// Point is a twisted-Edwards point in extended homogeneous coordinates
// (X, Y, Z, T) with x=X/Z, y=Y/Z, x*y=T/Z.
type Point struct {
	ctx *Context
	X, Y, Z, T field.Element
}

// Identity returns the neutral element (0, 1).
func (c *Context) Identity() *Point {
	x := c.NewElement()
	y := c.NewElement()
	y.One()
	z := c.NewElement()
	z.One()
	t := c.NewElement()
	return &Point{ctx: c, X: x, Y: y, Z: z, T: t}
}

// Set copies a into p.
func (p *Point) Set(a *Point) *Point {
	p.ctx = a.ctx
	p.X.Set(a.X)
	p.Y.Set(a.Y)
	p.Z.Set(a.Z)
	p.T.Set(a.T)
	return p
}

// Negate returns -p = (-X, Y, Z, -T).
func (c *Context) Negate(p *Point) *Point {
	return &Point{
		ctx: p.ctx,
		X:   c.NewElement().Negate(p.X),
		Y:   c.NewElement().Set(p.Y),
		Z:   c.NewElement().Set(p.Z),
		T:   c.NewElement().Negate(p.T),
	}
}

// Add implements the Hisil-Wong-Carter-Dawson unified addition
// formula, using the a=-1 optimized variant (add-2008-hwcd-3) when the
// curve coefficient permits it (only Ed25519; Ed448 and Ed1174 have
// a=1) and the general-a variant (add-2008-hwcd-2) otherwise.
func (c *Context) Add(p, q *Point) *Point {
	if c.aIsMinus1 {
		return c.addAMinus1(p, q)
	}
	return c.addGeneral(p, q)
}

func (c *Context) addAMinus1(p, q *Point) *Point {
	yMinusX1 := c.NewElement().Subtract(p.Y, p.X)
	yMinusX2 := c.NewElement().Subtract(q.Y, q.X)
	a := c.NewElement().Multiply(yMinusX1, yMinusX2)

	yPlusX1 := c.NewElement().Add(p.Y, p.X)
	yPlusX2 := c.NewElement().Add(q.Y, q.X)
	b := c.NewElement().Multiply(yPlusX1, yPlusX2)

	two := c.FE(2)
	twoD := c.NewElement().Multiply(two, c.d)
	t1t2 := c.NewElement().Multiply(p.T, q.T)
	cc := c.NewElement().Multiply(twoD, t1t2)

	z1z2 := c.NewElement().Multiply(p.Z, q.Z)
	d := c.NewElement().Multiply(two, z1z2)

	e := c.NewElement().Subtract(b, a)
	f := c.NewElement().Subtract(d, cc)
	g := c.NewElement().Add(d, cc)
	h := c.NewElement().Add(b, a)

	return &Point{
		ctx: p.ctx,
		X:   c.NewElement().Multiply(e, f),
		Y:   c.NewElement().Multiply(g, h),
		T:   c.NewElement().Multiply(e, h),
		Z:   c.NewElement().Multiply(f, g),
	}
}

func (c *Context) addGeneral(p, q *Point) *Point {
	a := c.NewElement().Multiply(p.X, q.X)
	b := c.NewElement().Multiply(p.Y, q.Y)
	t1t2 := c.NewElement().Multiply(p.T, q.T)
	cc := c.NewElement().Multiply(c.d, t1t2)
	d := c.NewElement().Multiply(p.Z, q.Z)

	xPlusY1 := c.NewElement().Add(p.X, p.Y)
	xPlusY2 := c.NewElement().Add(q.X, q.Y)
	e := c.NewElement().Multiply(xPlusY1, xPlusY2)
	e.Subtract(e, a)
	e.Subtract(e, b)

	f := c.NewElement().Subtract(d, cc)
	g := c.NewElement().Add(d, cc)
	aA := c.NewElement().Multiply(c.a, a)
	h := c.NewElement().Subtract(b, aA)

	return &Point{
		ctx: p.ctx,
		X:   c.NewElement().Multiply(e, f),
		Y:   c.NewElement().Multiply(g, h),
		T:   c.NewElement().Multiply(e, h),
		Z:   c.NewElement().Multiply(f, g),
	}
}

// Dbl implements the dbl-2008-hwcd doubling formula, valid for any a.
func (c *Context) Dbl(p *Point) *Point {
	a := c.NewElement().Square(p.X)
	b := c.NewElement().Square(p.Y)
	z2 := c.NewElement().Square(p.Z)
	cc := c.NewElement().Add(z2, z2)

	da := c.NewElement().Multiply(c.a, a)

	xPlusY := c.NewElement().Add(p.X, p.Y)
	e := c.NewElement().Square(xPlusY)
	e.Subtract(e, a)
	e.Subtract(e, b)

	g := c.NewElement().Add(da, b)
	f := c.NewElement().Subtract(g, cc)
	h := c.NewElement().Subtract(da, b)

	return &Point{
		ctx: p.ctx,
		X:   c.NewElement().Multiply(e, f),
		Y:   c.NewElement().Multiply(g, h),
		T:   c.NewElement().Multiply(e, h),
		Z:   c.NewElement().Multiply(f, g),
	}
}

// ValidateVar checks a*x^2 + y^2 = 1 + d*x^2*y^2 in variable time,
// where x=X/Z, y=Y/Z.
func (c *Context) ValidateVar(p *Point) bool {
	zInv, nz := c.NewElement().Invert(p.Z)
	if nz != 1 {
		return false
	}
	x := c.NewElement().Multiply(p.X, zInv)
	y := c.NewElement().Multiply(p.Y, zInv)

	x2 := c.NewElement().Square(x)
	y2 := c.NewElement().Square(y)
	ax2 := c.NewElement().Multiply(c.a, x2)
	lhs := c.NewElement().Add(ax2, y2)

	one := c.FE(1)
	x2y2 := c.NewElement().Multiply(x2, y2)
	dx2y2 := c.NewElement().Multiply(c.d, x2y2)
	rhs := c.NewElement().Add(one, dx2y2)

	return lhs.Equal(rhs) == 1
}

// EqualVar reports whether p and q represent the same affine point,
// compared via cross-multiplication to avoid an inversion.
func (c *Context) EqualVar(p, q *Point) bool {
	x1z2 := c.NewElement().Multiply(p.X, q.Z)
	x2z1 := c.NewElement().Multiply(q.X, p.Z)
	y1z2 := c.NewElement().Multiply(p.Y, q.Z)
	y2z1 := c.NewElement().Multiply(q.Y, p.Z)
	return x1z2.Equal(x2z1) == 1 && y1z2.Equal(y2z1) == 1
}

// AffineXY returns the decoded (x, y) affine coordinates of p.
func (p *Point) AffineXY() (field.Element, field.Element) {
	c := p.ctx
	zInv, _ := c.NewElement().Invert(p.Z)
	x := c.NewElement().Multiply(p.X, zInv)
	y := c.NewElement().Multiply(p.Y, zInv)
	return x, y
}

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

// Package wei implements the short-Weierstrass group: affine and
// Jacobian points, strongly-unified constant-time Jacobian addition,
// on-curve validation, and the fixed/variable/double/multi-scalar
// multiplication algorithms for the group.
package wei

import (
	"math/big"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/field"
)

// Jacobian is a point in Jacobian coordinates: affine = (X/Z^2, Y/Z^3).
// The identity is represented canonically as Z=0, X=Y=1.
type Jacobian struct {
	ctx  *Context
	X, Y, Z field.Element
}

// Identity returns the Jacobian point at infinity.
func (c *Context) Identity() *Jacobian {
	j := &Jacobian{ctx: c, X: c.NewElement(), Y: c.NewElement(), Z: c.NewElement()}
	j.X.One()
	j.Y.One()
	j.Z.Zero()
	return j
}

// IsIdentity reports whether j is the point at infinity.
func (j *Jacobian) IsIdentity() int { return j.Z.IsZero() }

// Set copies a into j.
func (j *Jacobian) Set(a *Jacobian) *Jacobian {
	j.ctx = a.ctx
	j.X.Set(a.X)
	j.Y.Set(a.Y)
	j.Z.Set(a.Z)
	return j
}

// FromAffine lifts an affine point into Jacobian coordinates.
func (c *Context) FromAffine(a *Affine) *Jacobian {
	j := c.Identity()
	one := c.NewElement()
	one.One()
	zero := c.NewElement()
	zero.Zero()

	j.X.Select(a.X, j.X, 1-boolToInt(a.Inf))
	j.Y.Select(a.Y, j.Y, 1-boolToInt(a.Inf))
	j.Z.Select(one, zero, 1-boolToInt(a.Inf))
	return j
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ToAffine converts j to affine coordinates via a field inversion. Only
// used on public (non-secret) points; the equal_r trick below exists
// precisely to avoid this on the hot signing/verification path.
func (j *Jacobian) ToAffine() *Affine {
	c := j.ctx
	if j.IsIdentity() == 1 {
		return c.Identity2D()
	}
	zInv, _ := c.NewElement().Invert(j.Z)
	zInv2 := c.NewElement().Square(zInv)
	zInv3 := c.NewElement().Multiply(zInv2, zInv)

	x := c.NewElement().Multiply(j.X, zInv2)
	y := c.NewElement().Multiply(j.Y, zInv3)
	return &Affine{ctx: c, X: x, Y: y, Inf: false}
}

// Dbl doubles j, selecting one of the three specializations fixed at
// context init by the curve's `a`.
func (c *Context) Dbl(j *Jacobian) *Jacobian {
	switch {
	case c.aIsZero:
		return c.dblAZero(j)
	case c.aIsMinus3:
		return c.dblAMinus3(j)
	default:
		return c.dblGeneral(j)
	}
}

// dblAZero implements the a=0 specialization (2M+5S).
func (c *Context) dblAZero(p *Jacobian) *Jacobian {
	X1, Y1, Z1 := p.X, p.Y, p.Z
	A := c.NewElement().Square(X1)
	B := c.NewElement().Square(Y1)
	Cc := c.NewElement().Square(B)
	xPlusB := c.NewElement().Add(X1, B)
	D := c.NewElement().Square(xPlusB)
	D.Subtract(D, A)
	D.Subtract(D, Cc)
	D.Add(D, D)
	E := c.NewElement().Add(A, A)
	E.Add(E, A)
	F := c.NewElement().Square(E)
	X3 := c.NewElement().Add(D, D)
	X3.Subtract(F, X3)
	twoC := c.NewElement().Add(Cc, Cc)
	fourC := c.NewElement().Add(twoC, twoC)
	eightC := c.NewElement().Add(fourC, fourC)
	DminusX3 := c.NewElement().Subtract(D, X3)
	Y3 := c.NewElement().Multiply(E, DminusX3)
	Y3.Subtract(Y3, eightC)
	Z3 := c.NewElement().Multiply(Y1, Z1)
	Z3.Add(Z3, Z3)

	return &Jacobian{ctx: p.ctx, X: X3, Y: Y3, Z: Z3}
}

// dblAMinus3 implements the a=-3 (Brier-Joye) specialization (3M+5S).
func (c *Context) dblAMinus3(p *Jacobian) *Jacobian {
	X1, Y1, Z1 := p.X, p.Y, p.Z
	Z1Z1 := c.NewElement().Square(Z1)
	xMinusZZ := c.NewElement().Subtract(X1, Z1Z1)
	xPlusZZ := c.NewElement().Add(X1, Z1Z1)
	E := c.NewElement().Multiply(xMinusZZ, xPlusZZ)
	E3 := c.NewElement().Add(E, E)
	E3.Add(E3, E)

	B := c.NewElement().Square(Y1)
	Cc := c.NewElement().Square(B)
	xPlusB := c.NewElement().Add(X1, B)
	D := c.NewElement().Square(xPlusB)
	D.Subtract(D, c.NewElement().Square(X1))
	D.Subtract(D, Cc)
	D.Add(D, D)

	F := c.NewElement().Square(E3)
	X3 := c.NewElement().Add(D, D)
	X3.Subtract(F, X3)

	twoC := c.NewElement().Add(Cc, Cc)
	fourC := c.NewElement().Add(twoC, twoC)
	eightC := c.NewElement().Add(fourC, fourC)
	DminusX3 := c.NewElement().Subtract(D, X3)
	Y3 := c.NewElement().Multiply(E3, DminusX3)
	Y3.Subtract(Y3, eightC)

	Z3 := c.NewElement().Multiply(Y1, Z1)
	Z3.Add(Z3, Z3)

	return &Jacobian{ctx: p.ctx, X: X3, Y: Y3, Z: Z3}
}

// dblGeneral implements the general-a specialization (3M+6S).
func (c *Context) dblGeneral(p *Jacobian) *Jacobian {
	X1, Y1, Z1 := p.X, p.Y, p.Z
	A := c.NewElement().Square(X1)
	B := c.NewElement().Square(Y1)
	Cc := c.NewElement().Square(B)
	xPlusB := c.NewElement().Add(X1, B)
	D := c.NewElement().Square(xPlusB)
	D.Subtract(D, A)
	D.Subtract(D, Cc)
	D.Add(D, D)

	Z1Z1 := c.NewElement().Square(Z1)
	Z1Z1Z1Z1 := c.NewElement().Square(Z1Z1)
	aZ4 := c.NewElement().Multiply(c.a, Z1Z1Z1Z1)
	threeA := c.NewElement().Add(A, A)
	threeA.Add(threeA, A)
	E := c.NewElement().Add(threeA, aZ4)

	F := c.NewElement().Square(E)
	X3 := c.NewElement().Add(D, D)
	X3.Subtract(F, X3)

	twoC := c.NewElement().Add(Cc, Cc)
	fourC := c.NewElement().Add(twoC, twoC)
	eightC := c.NewElement().Add(fourC, fourC)
	DminusX3 := c.NewElement().Subtract(D, X3)
	Y3 := c.NewElement().Multiply(E, DminusX3)
	Y3.Subtract(Y3, eightC)

	Z3 := c.NewElement().Multiply(Y1, Z1)
	Z3.Add(Z3, Z3)

	return &Jacobian{ctx: p.ctx, X: X3, Y: Y3, Z: Z3}
}

// Add implements the Brier-Joye strongly-unified addition: the same
// straight-line formula produces P+P and P+(-P) correctly (the doubling
// case is absorbed by R, and for P+(-P) M and hence F and Z3 are zero),
// while P+O and O+P are resolved inside addGeneric by a constant-time
// select of the other operand rather than an explicit branch.
func (c *Context) Add(p, q *Jacobian) *Jacobian {
	return c.addGeneric(p.X, p.Y, p.Z, q.X, q.Y, q.Z, p.ctx)
}

// MixedAdd is the p+q specialization where q.Z == 1, used when summing
// a precomputed-table affine point into a Jacobian accumulator.
func (c *Context) MixedAdd(p *Jacobian, q *Affine) *Jacobian {
	one := c.NewElement()
	one.One()
	qy := c.NewElement().Select(q.Y, one, 1-boolToInt(q.Inf))
	qx := c.NewElement().Select(q.X, one, 1-boolToInt(q.Inf))
	r := c.addGeneric(p.X, p.Y, p.Z, qx, qy, one, p.ctx)

	// When q is the identity the unified formula above is not
	// well-defined (q.Z would have to be 0, not 1); select p instead.
	out := &Jacobian{ctx: p.ctx, X: c.NewElement(), Y: c.NewElement(), Z: c.NewElement()}
	out.X.Select(p.X, r.X, boolToInt(q.Inf))
	out.Y.Select(p.Y, r.Y, boolToInt(q.Inf))
	out.Z.Select(p.Z, r.Z, boolToInt(q.Inf))
	return out
}

func (c *Context) addGeneric(X1, Y1, Z1, X2, Y2, Z2 field.Element, ctx *Context) *Jacobian {
	Z1Z1 := c.NewElement().Square(Z1)
	Z2Z2 := c.NewElement().Square(Z2)
	U1 := c.NewElement().Multiply(X1, Z2Z2)
	U2 := c.NewElement().Multiply(X2, Z1Z1)
	Z2Z2Z2 := c.NewElement().Multiply(Z2Z2, Z2)
	Z1Z1Z1 := c.NewElement().Multiply(Z1Z1, Z1)
	S1 := c.NewElement().Multiply(Y1, Z2Z2Z2)
	S2 := c.NewElement().Multiply(Y2, Z1Z1Z1)
	ZZ := c.NewElement().Multiply(Z1, Z2)

	T := c.NewElement().Add(U1, U2)
	TT := c.NewElement().Square(T)
	M := c.NewElement().Add(S1, S2)

	ZZ2 := c.NewElement().Square(ZZ)
	ZZ4 := c.NewElement().Square(ZZ2)
	aZZ4 := c.NewElement().Multiply(c.a, ZZ4)

	U1U2 := c.NewElement().Multiply(U1, U2)
	R := c.NewElement().Subtract(TT, U1U2)
	R.Add(R, aZZ4)

	F := c.NewElement().Multiply(ZZ, M)
	L := c.NewElement().Square(M)
	LL := c.NewElement().Square(L)
	G := c.NewElement().Multiply(T, L)
	R2 := c.NewElement().Square(R)
	W := c.NewElement().Subtract(R2, G)

	X3 := c.NewElement().Add(W, W)
	X3.Add(X3, X3)
	twoW := c.NewElement().Add(W, W)
	GminusTwoW := c.NewElement().Subtract(G, twoW)
	Y3 := c.NewElement().Multiply(R, GminusTwoW)
	Y3.Subtract(Y3, LL)
	Y3.Add(Y3, Y3)
	Y3.Add(Y3, Y3)
	Z3 := c.NewElement().Add(F, F)

	// An identity input (Z=0) makes Z3 zero; return the other operand.
	inf1, inf2 := Z1.IsZero(), Z2.IsZero()
	X3.Select(X2, X3, inf1)
	Y3.Select(Y2, Y3, inf1)
	Z3.Select(Z2, Z3, inf1)
	X3.Select(X1, X3, inf2)
	Y3.Select(Y1, Y3, inf2)
	Z3.Select(Z1, Z3, inf2)

	return &Jacobian{ctx: ctx, X: X3, Y: Y3, Z: Z3}
}

// ValidateVar checks the Jacobian on-curve invariant
// Y^2 = X^3 + a*X*Z^4 + b*Z^6 in variable time (used only on
// adversary-supplied, already-decoded points).
func (c *Context) ValidateVar(j *Jacobian) bool {
	if j.IsIdentity() == 1 {
		return true
	}
	lhs := c.NewElement().Square(j.Y)
	x3 := c.NewElement().Square(j.X)
	x3.Multiply(x3, j.X)
	z2 := c.NewElement().Square(j.Z)
	z4 := c.NewElement().Square(z2)
	z6 := c.NewElement().Multiply(z4, z2)
	ax := c.NewElement().Multiply(c.a, j.X)
	ax.Multiply(ax, z4)
	rhs := c.NewElement().Add(x3, ax)
	bz6 := c.NewElement().Multiply(c.b, z6)
	rhs.Add(rhs, bz6)
	return lhs.Equal(rhs) == 1
}

// EqualRVar implements the Schnorr-trick comparison: compares the
// x-coordinate of j against the scalar x (already
// minimized to the field by the caller if necessary) without
// affinizing j. Only valid when floor(p/n) <= 1, asserted at context
// creation.
func (c *Context) EqualRVar(j *Jacobian, x *big.Int) bool {
	if j.IsIdentity() == 1 {
		return false
	}
	p := c.Params.P
	n := c.Params.N

	xv := new(big.Int).Set(x)
	z2 := c.NewElement().Square(j.Z)
	for {
		lifted := c.FEFromBig(xv)
		rhs := c.NewElement().Multiply(lifted, z2)
		if j.X.Equal(rhs) == 1 {
			return true
		}
		if xv.Cmp(new(big.Int).Mod(p, n)) >= 0 {
			return false
		}
		xv.Add(xv, n)
		if xv.Cmp(p) >= 0 {
			return false
		}
	}
}

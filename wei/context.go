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

package wei

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/field"
	"github.com/nijynot/bcrypto/scalar"
)

// windowBits is the width of the fixed-base precomputed table; 4-bit
// windows keep the table small (16 entries per window) while still
// cutting the doubling count to a quarter of naive double-and-add.
const windowBits = 4

// blindBits is the width of the random multiple of n folded into the
// scalar before fixed-base multiplication, the blinded fixed-base
// variant (Coron's first countermeasure).
const blindBits = 32

// Context wires a curve.Context to the short-Weierstrass group law: it
// holds the curve coefficients, the generator, the fixed-base
// precomputation table and (for SECP256K1) the GLV endomorphism
// parameters.
type Context struct {
	*curve.Context

	a, b field.Element
	aIsZero, aIsMinus3 bool

	g *Jacobian

	fixedTable [][16]*Affine
	fixedWindows int

	endo *endomorphism
}

// NewContext builds the short-Weierstrass specialization of cc,
// validating the generator and precomputing the fixed-base table.
func NewContext(cc *curve.Context) (*Context, error) {
	c := &Context{Context: cc}

	c.a = cc.FEFromBig(cc.Params.A)
	if cc.Params.B != nil {
		c.b = cc.FEFromBig(cc.Params.B)
	} else {
		c.b = cc.NewElement()
		c.b.Zero()
	}

	c.aIsZero = cc.Params.A.Sign() == 0
	minus3 := new(big.Int).Sub(cc.Params.P, big.NewInt(3))
	c.aIsMinus3 = cc.Params.A.Cmp(minus3) == 0

	gx := cc.FEFromBig(cc.Params.Gx)
	gy := cc.FEFromBig(cc.Params.Gy)
	g := &Affine{ctx: c, X: gx, Y: gy}
	if !c.ValidateAffineVar(g) {
		return nil, fmt.Errorf("wei: generator for %s fails on-curve check", cc.Params.ID)
	}
	c.g = c.FromAffine(g)

	if cc.Params.HasEndomorphism {
		e, err := newEndomorphism(cc)
		if err != nil {
			return nil, err
		}
		c.endo = e
	}

	c.buildFixedTable()
	return c, nil
}

// Generator returns the curve's base point.
func (c *Context) Generator() *Jacobian { return c.g }

func (c *Context) buildFixedTable() {
	totalBits := c.Sc.Bits() + blindBits
	nWindows := (totalBits + windowBits - 1) / windowBits
	table := make([][16]*Affine, nWindows)

	base := c.g
	for i := 0; i < nWindows; i++ {
		var row [16]*Affine
		row[0] = c.Identity2D()
		acc := base
		row[1] = acc.ToAffine()
		for d := 2; d < 16; d++ {
			acc = c.Add(acc, base)
			row[d] = acc.ToAffine()
		}
		table[i] = row

		for k := 0; k < windowBits; k++ {
			base = c.Dbl(base)
		}
	}
	c.fixedTable = table
	c.fixedWindows = nWindows
}

func bigDigit(x *big.Int, offset, width int) uint32 {
	var d uint32
	for i := 0; i < width; i++ {
		if x.Bit(offset+i) == 1 {
			d |= 1 << uint(i)
		}
	}
	return d
}

// selectFromRow walks every entry of row and folds it into the output
// with a branch-free Element.Select, so the table access pattern does
// not depend on the secret digit d; row[0] (the identity) is always the
// starting value, matching the all-inequal case falling through to it.
func selectFromRow(c *Context, row [16]*Affine, d uint32) *Affine {
	outX := c.NewElement().Set(row[0].X)
	outY := c.NewElement().Set(row[0].Y)
	isInf := subtle.ConstantTimeEq(int32(d), 0)
	for j := 1; j < 16; j++ {
		cond := subtle.ConstantTimeEq(int32(j), int32(d))
		outX.Select(row[j].X, outX, cond)
		outY.Select(row[j].Y, outY, cond)
	}
	return &Affine{ctx: c, X: outX, Y: outY, Inf: isInf == 1}
}

// ScalarBaseMult computes k*G using the precomputed fixed-base table,
// after folding a random multiple of the group order into k so that
// the window digits extracted from run to run differ even for a fixed
// k (the blinded fixed-base path).
func (c *Context) ScalarBaseMult(k *scalar.Scalar) *Jacobian {
	rb := make([]byte, (blindBits+7)/8)
	if _, err := rand.Read(rb); err != nil {
		panic("wei: ScalarBaseMult: " + err.Error())
	}
	r := new(big.Int).SetBytes(rb)
	kPrime := new(big.Int).Mul(r, c.Params.N)
	kPrime.Add(kPrime, k.BigInt())

	acc := c.Identity()
	for i := 0; i < c.fixedWindows; i++ {
		d := bigDigit(kPrime, i*windowBits, windowBits)
		acc = c.MixedAdd(acc, selectFromRow(c, c.fixedTable[i], d))
	}
	return acc
}

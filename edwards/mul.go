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

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"

	"github.com/nijynot/bcrypto/scalar"
)

const nafWidth = 5

// windowBits is the width of the fixed-base precomputed table, matching
// the short-Weierstrass fixed-base multiplier.
const windowBits = 4

// blindBits is the width of the random multiple of n folded into the
// scalar before fixed-base multiplication (Coron's first
// countermeasure), matching the short-Weierstrass fixed-base
// multiplier.
const blindBits = 32

func absInt32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// ScalarMultVar computes k*p via width-5 variable-time NAF
// double-and-add, used for public-point multiplications such as
// signature verification and batch checks.
func (c *Context) ScalarMultVar(k *scalar.Scalar, p *Point) *Point {
	naf := scalar.NafVar(k, nafWidth, c.Sc.Bits()+1)
	table := c.oddMultiples(p, 1<<(nafWidth-2))
	return c.nafCombine(naf, table)
}

func (c *Context) buildFixedTable() {
	totalBits := c.Sc.Bits() + blindBits
	nWindows := (totalBits + windowBits - 1) / windowBits
	table := make([][16]*Point, nWindows)

	base := c.g
	for i := 0; i < nWindows; i++ {
		var row [16]*Point
		row[0] = c.Identity()
		acc := base
		row[1] = acc
		for d := 2; d < 16; d++ {
			acc = c.Add(acc, base)
			row[d] = acc
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

// selectPointFromRow walks every entry of row and folds it into the
// output with a branch-free Element.Select, so the table access
// pattern does not depend on the secret digit d.
func selectPointFromRow(c *Context, row [16]*Point, d uint32) *Point {
	outX := c.NewElement().Set(row[0].X)
	outY := c.NewElement().Set(row[0].Y)
	outZ := c.NewElement().Set(row[0].Z)
	outT := c.NewElement().Set(row[0].T)
	for j := 1; j < 16; j++ {
		cond := subtle.ConstantTimeEq(int32(j), int32(d))
		outX.Select(row[j].X, outX, cond)
		outY.Select(row[j].Y, outY, cond)
		outZ.Select(row[j].Z, outZ, cond)
		outT.Select(row[j].T, outT, cond)
	}
	return &Point{ctx: c, X: outX, Y: outY, Z: outZ, T: outT}
}

// ScalarBaseMult computes k*G using the precomputed fixed-base table,
// after folding a random multiple of the group order into k so that
// the window digits extracted differ from run to run even for a fixed
// k, the same blinded fixed-base construction used for the
// short-Weierstrass group.
func (c *Context) ScalarBaseMult(k *scalar.Scalar) *Point {
	rb := make([]byte, (blindBits+7)/8)
	if _, err := rand.Read(rb); err != nil {
		panic("edwards: ScalarBaseMult: " + err.Error())
	}
	r := new(big.Int).SetBytes(rb)
	kPrime := new(big.Int).Mul(r, c.Params.N)
	kPrime.Add(kPrime, k.BigInt())

	acc := c.Identity()
	for i := 0; i < c.fixedWindows; i++ {
		d := bigDigit(kPrime, i*windowBits, windowBits)
		acc = c.Add(acc, selectPointFromRow(c, c.fixedTable[i], d))
	}
	return acc
}

func (c *Context) oddMultiples(p *Point, n int) []*Point {
	res := make([]*Point, n)
	res[0] = p
	p2 := c.Dbl(p)
	for i := 1; i < n; i++ {
		res[i] = c.Add(res[i-1], p2)
	}
	return res
}

func (c *Context) nafCombine(naf []int32, table []*Point) *Point {
	acc := c.Identity()
	for i := len(naf) - 1; i >= 0; i-- {
		acc = c.Dbl(acc)
		d := naf[i]
		if d == 0 {
			continue
		}
		idx := (absInt32(d) - 1) / 2
		t := table[idx]
		if d < 0 {
			t = c.Negate(t)
		}
		acc = c.Add(acc, t)
	}
	return acc
}

// DoubleScalarMultVar computes k1*p1 + k2*p2 via interleaved width-5
// NAF, the workhorse of EdDSA batch/cofactored verification.
func (c *Context) DoubleScalarMultVar(k1 *scalar.Scalar, p1 *Point, k2 *scalar.Scalar, p2 *Point) *Point {
	max := c.Sc.Bits() + 1
	naf1 := scalar.NafVar(k1, nafWidth, max)
	naf2 := scalar.NafVar(k2, nafWidth, max)
	t1 := c.oddMultiples(p1, 1<<(nafWidth-2))
	t2 := c.oddMultiples(p2, 1<<(nafWidth-2))

	n := len(naf1)
	if len(naf2) > n {
		n = len(naf2)
	}
	acc := c.Identity()
	for i := n - 1; i >= 0; i-- {
		acc = c.Dbl(acc)
		if i < len(naf1) && naf1[i] != 0 {
			d := naf1[i]
			t := t1[(absInt32(d)-1)/2]
			if d < 0 {
				t = c.Negate(t)
			}
			acc = c.Add(acc, t)
		}
		if i < len(naf2) && naf2[i] != 0 {
			d := naf2[i]
			t := t2[(absInt32(d)-1)/2]
			if d < 0 {
				t = c.Negate(t)
			}
			acc = c.Add(acc, t)
		}
	}
	return acc
}

// MultiScalarMultVar sums ks[i]*ps[i] in variable time, for EdDSA
// batch verification.
func (c *Context) MultiScalarMultVar(ks []*scalar.Scalar, ps []*Point) *Point {
	if len(ks) != len(ps) || len(ks) == 0 {
		return c.Identity()
	}
	acc := c.ScalarMultVar(ks[0], ps[0])
	i := 1
	for ; i+1 < len(ks); i += 2 {
		acc = c.Add(acc, c.DoubleScalarMultVar(ks[i], ps[i], ks[i+1], ps[i+1]))
	}
	if i < len(ks) {
		acc = c.Add(acc, c.ScalarMultVar(ks[i], ps[i]))
	}
	return acc
}

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
	"math/big"

	"github.com/nijynot/bcrypto/scalar"
)

// nafWidth is the window width used for the variable-time NAF-based
// multipliers below; width 5 needs a table of the 8 odd multiples
// 1P..15P.
const nafWidth = 5

// Negate returns -p = (X, -Y, Z).
func (c *Context) Negate(p *Jacobian) *Jacobian {
	return &Jacobian{ctx: p.ctx, X: c.NewElement().Set(p.X), Y: c.NewElement().Negate(p.Y), Z: c.NewElement().Set(p.Z)}
}

// applyEndo returns phi(p) = (beta*X, Y, Z), the image of p under
// SECP256K1's efficiently-computable endomorphism.
func (c *Context) applyEndo(p *Jacobian) *Jacobian {
	beta := c.FEFromBig(c.endo.beta)
	bx := c.NewElement().Multiply(beta, p.X)
	return &Jacobian{ctx: p.ctx, X: bx, Y: c.NewElement().Set(p.Y), Z: c.NewElement().Set(p.Z)}
}

func (c *Context) oddMultiples(p *Jacobian, n int) []*Jacobian {
	res := make([]*Jacobian, n)
	res[0] = p
	p2 := c.Dbl(p)
	for i := 1; i < n; i++ {
		res[i] = c.Add(res[i-1], p2)
	}
	return res
}

func absInt32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func scalarFromBig(f *scalar.Field, x *big.Int) *scalar.Scalar {
	sz := f.Size()
	raw := make([]byte, sz)
	xb := new(big.Int).Mod(x, f.N())
	bb := xb.Bytes()
	copy(raw[sz-len(bb):], bb)
	s, ok := f.Import(raw)
	if !ok {
		panic("wei: scalarFromBig: reduced value still out of range")
	}
	return s
}

// ScalarMultCT computes k*p in constant time for a secret scalar k and
// an arbitrary (not necessarily fixed) base point p, the primitive ECDH
// derive needs: unlike ScalarBaseMult it cannot rely on a precomputed
// table, so it builds p's 16-entry window table once per call — table
// construction only touches the public point p, never k.
func (c *Context) ScalarMultCT(k *scalar.Scalar, p *Jacobian) *Jacobian {
	row := [16]*Affine{c.Identity2D()}
	acc := p
	row[1] = acc.ToAffine()
	for d := 2; d < 16; d++ {
		acc = c.Add(acc, p)
		row[d] = acc.ToAffine()
	}

	kPrime := new(big.Int).Set(k.BigInt())
	totalBits := c.Sc.Bits() + windowBits
	nWindows := (totalBits + windowBits - 1) / windowBits

	out := c.Identity()
	for i := nWindows - 1; i >= 0; i-- {
		for b := 0; b < windowBits; b++ {
			out = c.Dbl(out)
		}
		d := bigDigit(kPrime, i*windowBits, windowBits)
		out = c.MixedAdd(out, selectFromRow(c, row, d))
	}
	return out
}

// ScalarMultVar computes k*p in variable time, suitable for
// public-point, public-scalar operations such as signature
// verification. On SECP256K1 it transparently uses the GLV
// endomorphism split; elsewhere it falls back to plain width-5 NAF
// double-and-add.
func (c *Context) ScalarMultVar(k *scalar.Scalar, p *Jacobian) *Jacobian {
	if c.endo != nil {
		return c.scalarMultEndoVar(k, p)
	}
	naf := scalar.NafVar(k, nafWidth, c.Sc.Bits()+1)
	table := c.oddMultiples(p, 1<<(nafWidth-2))
	return c.nafCombine(naf, table)
}

func (c *Context) nafCombine(naf []int32, table []*Jacobian) *Jacobian {
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

func (c *Context) scalarMultEndoVar(k *scalar.Scalar, p *Jacobian) *Jacobian {
	k1, k2 := c.endo.split(k.BigInt(), c.Params.N)

	neg1 := k1.Sign() < 0
	neg2 := k2.Sign() < 0
	if neg1 {
		k1.Neg(k1)
	}
	if neg2 {
		k2.Neg(k2)
	}

	p1 := p
	if neg1 {
		p1 = c.Negate(p)
	}
	p2 := c.applyEndo(p)
	if neg2 {
		p2 = c.Negate(p2)
	}

	s1 := scalarFromBig(c.Sc, k1)
	s2 := scalarFromBig(c.Sc, k2)

	// k1, k2 are each roughly half the bit length of n.
	maxLen := c.Sc.Bits()/2 + 8
	naf1 := scalar.NafVar(s1, nafWidth, maxLen)
	naf2 := scalar.NafVar(s2, nafWidth, maxLen)

	t1 := c.oddMultiples(p1, 1<<(nafWidth-2))
	t2 := c.oddMultiples(p2, 1<<(nafWidth-2))

	return c.doubleNafCombine(naf1, t1, naf2, t2)
}

func (c *Context) doubleNafCombine(naf1 []int32, t1 []*Jacobian, naf2 []int32, t2 []*Jacobian) *Jacobian {
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

// DoubleScalarMultVar computes k1*p1 + k2*p2 in variable time via
// interleaved width-5 NAF, the workhorse of ECDSA/Schnorr verification.
func (c *Context) DoubleScalarMultVar(k1 *scalar.Scalar, p1 *Jacobian, k2 *scalar.Scalar, p2 *Jacobian) *Jacobian {
	max := c.Sc.Bits() + 1
	naf1 := scalar.NafVar(k1, nafWidth, max)
	naf2 := scalar.NafVar(k2, nafWidth, max)
	t1 := c.oddMultiples(p1, 1<<(nafWidth-2))
	t2 := c.oddMultiples(p2, 1<<(nafWidth-2))
	return c.doubleNafCombine(naf1, t1, naf2, t2)
}

// MultiScalarMultVar computes the sum of ks[i]*ps[i] in variable time,
// for batch signature verification. It folds pairs through
// DoubleScalarMultVar two at a time; a dedicated bucket-method
// implementation over the scratch workspace is left to the higher
// batch-verification packages, which know the concrete batch size in
// advance.
func (c *Context) MultiScalarMultVar(ks []*scalar.Scalar, ps []*Jacobian) *Jacobian {
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

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

package eddsa

import (
	"github.com/nijynot/bcrypto/edwards"
	"github.com/nijynot/bcrypto/scalar"
	"github.com/nijynot/bcrypto/scratch"
)

// BatchEntry is one (public key, message, signature) triple submitted
// to VerifyBatch.
type BatchEntry struct {
	Public    []byte
	Message   []byte
	Signature []byte
}

// VerifyBatch checks a set of signatures with a single combined
// multi-scalar multiplication: sum(-S_i*B) + sum(R_i) + sum(k_i*A_i) ==
// O, each term additionally scaled by an independent random weight so
// that a forger can't exploit the linearity of the combined check
// (the classic Bernstein et al. batch-verification construction).
// A single scalar failure falls back to per-signature verification to
// identify (and this function reports) which entries are invalid.
func (c *Context) VerifyBatch(entries []BatchEntry) (ok bool, invalid []int) {
	n := len(entries)
	if n == 0 {
		return true, nil
	}

	buf := scratch.New[*scalar.Scalar, *edwards.Point]()
	sum := c.Identity()

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		sum = c.Add(sum, c.MultiScalarMultVar(buf.Scalars(), buf.Points()))
		buf.Reset()
	}
	push := func(k *scalar.Scalar, p *edwards.Point) {
		if buf.Push(k, p) {
			flush()
		}
	}

	negSSum := c.Sc.New().Zero()
	for _, e := range entries {
		sz := c.seedSize
		if len(e.Signature) != 2*sz {
			return c.verifyIndividually(entries)
		}
		Renc := e.Signature[:sz]
		Sraw := reverseBytes(e.Signature[sz:])
		S, okS := c.Sc.Import(Sraw)
		if !okS {
			return c.verifyIndividually(entries)
		}
		R, err := c.Decode(Renc)
		if err != nil {
			return c.verifyIndividually(entries)
		}
		A, err := c.Decode(e.Public)
		if err != nil {
			return c.verifyIndividually(entries)
		}

		dom := c.dom(nil)
		kWide := make([]byte, c.hashSize)
		c.hashAll(kWide, dom, Renc, e.Public, e.Message)
		k := c.scalarFromWideBytes(kWide)

		z, err := c.Sc.Random(nil)
		if err != nil {
			return c.verifyIndividually(entries)
		}

		zs := c.Sc.New().Mul(z, S)
		negSSum = c.Sc.New().Add(negSSum, zs)

		push(z, R)
		zk := c.Sc.New().Mul(z, k)
		push(zk, A)
	}

	negSSumNeg := c.Sc.New().Neg(negSSum)
	push(negSSumNeg, c.Generator())
	flush()

	h := c.cofactorMul(sum)
	if c.EqualVar(h, c.Identity()) {
		return true, nil
	}
	return c.verifyIndividually(entries)
}

func (c *Context) verifyIndividually(entries []BatchEntry) (bool, []int) {
	var invalid []int
	for i, e := range entries {
		if c.Verify(e.Public, e.Message, e.Signature) != nil {
			invalid = append(invalid, i)
		}
	}
	return len(invalid) == 0, invalid
}

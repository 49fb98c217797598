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

package schnorr

import (
	"github.com/nijynot/bcrypto/scalar"
	"github.com/nijynot/bcrypto/scratch"
	"github.com/nijynot/bcrypto/wei"
)

// BatchEntry is one (pubkey, message, signature) triple for VerifyBatch.
type BatchEntry struct {
	Pubkey    []byte
	Message   []byte
	Signature []byte
}

// VerifyBatch checks the BIP-340 Appendix B randomized batch equation
// sum(a_i*s_i)*G == sum(a_i*R_i) + sum(a_i*e_i*P_i) for random
// per-signature weights a_i, falling back to per-signature verification
// on any failure so the caller learns which entries are bad.
func (c *Context) VerifyBatch(entries []BatchEntry) (ok bool, invalid []int) {
	buf := scratch.New[*scalar.Scalar, *wei.Jacobian]()
	sum := c.Identity()

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		sum = c.Add(sum, c.MultiScalarMultVar(buf.Scalars(), buf.Points()))
		buf.Reset()
	}
	push := func(k *scalar.Scalar, p *wei.Jacobian) {
		if buf.Push(k, p) {
			flush()
		}
	}

	sSum := c.Sc.New().Zero()
	for i, e := range entries {
		if len(e.Pubkey) != 32 || len(e.Signature) != 64 {
			return c.verifyIndividually(entries)
		}
		P, err := c.ImportX(e.Pubkey)
		if err != nil {
			return c.verifyIndividually(entries)
		}
		rx := e.Signature[:32]
		s, sOK := c.Sc.Import(e.Signature[32:])
		if !sOK {
			return c.verifyIndividually(entries)
		}
		if _, err := c.NewElement().SetBytes(reverseBytes(rx)); err != nil {
			return c.verifyIndividually(entries)
		}

		var a *scalar.Scalar
		if i == 0 {
			a = c.Sc.New().One()
		} else {
			rnd, rerr := c.Sc.Random(nil)
			if rerr != nil {
				return c.verifyIndividually(entries)
			}
			a = rnd
		}

		as := c.Sc.New().Mul(a, s)
		sSum.Add(sSum, as)

		Rj, rOK := liftEvenY(c, rx)
		if !rOK {
			return c.verifyIndividually(entries)
		}
		push(a, Rj)

		ePub := c.challenge(rx, e.Pubkey, e.Message)
		ae := c.Sc.New().Mul(a, ePub)
		push(ae, c.FromAffine(P))
	}

	negSSum := c.Sc.New().Neg(sSum)
	push(negSSum, c.Generator())
	flush()

	if sum.IsIdentity() == 1 {
		return true, nil
	}
	return c.verifyIndividually(entries)
}

// liftEvenY builds the even-y Jacobian point whose x-coordinate is rx,
// per BIP-340's lift_x applied to each signature's R during batch
// verification.
func liftEvenY(c *Context, rx []byte) (*wei.Jacobian, bool) {
	a, err := c.ImportX(rx)
	if err != nil {
		return nil, false
	}
	return c.FromAffine(a), true
}

func (c *Context) verifyIndividually(entries []BatchEntry) (bool, []int) {
	var bad []int
	for i, e := range entries {
		if !c.Verify(e.Pubkey, e.Message, e.Signature) {
			bad = append(bad, i)
		}
	}
	return len(bad) == 0, bad
}

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

package ecdsa

import (
	"math/big"

	"github.com/nijynot/bcrypto/internal/drbg"
	"github.com/nijynot/bcrypto/scalar"
)

// Signature is a parsed (r, s) pair, plus the SEC1 §4.1.6 recovery ID
// for the (R, s) produced by Sign. RecoveryID is meaningless on a
// Signature obtained via DecodeDER, since the DER wire format does not
// carry it.
type Signature struct {
	R, S *scalar.Scalar
	RecoveryID int
}

// Sign produces an RFC 6979 deterministic ECDSA signature over a
// pre-computed message digest. hash need not match the curve's native
// digest width; it is truncated/shifted per RFC 6979 §2.3.2.
func (c *Context) Sign(priv *scalar.Scalar, hash []byte) (*Signature, error) {
	n := c.Params.N
	qBits := c.Sc.Bits()
	e := bits2int(hash, qBits)
	eScalar := importReducedBig(c.Sc, e)

	privBytes := priv.Bytes()
	for {
		d := drbg.New(c.newHash, privBytes, hash, nil)
		var k *scalar.Scalar
		for {
			cand := d.Generate(c.Sc.Size())
			x := new(big.Int).SetBytes(cand)
			if x.Sign() != 0 && x.Cmp(n) < 0 {
				s, ok := c.Sc.Import(cand)
				if ok {
					k = s
				}
			}
			if k != nil {
				break
			}
		}
		if k.IsZero() {
			continue
		}

		R := c.ScalarBaseMult(k).ToAffine()
		if R.IsInfinity() {
			continue
		}
		xBig := feToBig(R.XCoord())
		rBig := new(big.Int).Mod(xBig, n)
		if rBig.Sign() == 0 {
			continue
		}
		r := importReducedBig(c.Sc, rBig)

		// SEC1 §4.1.6 recovery ID: bit 0 is R's y-parity, bit 1 flags
		// the x-overflow case (r + n < p) that Recover undoes.
		recoveryID := R.YCoord().IsNegative()
		if xBig.Cmp(n) >= 0 {
			recoveryID |= 2
		}

		kInv, ok := c.Sc.New().Invert(k)
		if !ok {
			continue
		}
		rd := c.Sc.New().Mul(r, priv)
		erd := c.Sc.New().Add(eScalar, rd)
		s := c.Sc.New().Mul(kInv, erd)
		if s.IsZero() {
			continue
		}
		// Normalize to the low-S representative so a signature and its
		// n-s twin aren't both accepted as distinct valid signatures.
		// Replacing s with n-s pairs it with -R instead of R, so the
		// y-parity bit of recoveryID flips along with it.
		s, negated := c.Sc.New().Minimize(s)
		if negated {
			recoveryID ^= 1
		}
		return &Signature{R: r, S: s, RecoveryID: recoveryID}, nil
	}
}

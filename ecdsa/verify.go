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
	"github.com/nijynot/bcrypto/wei"
)

// Verify checks sig against a public key and message digest.
func (c *Context) Verify(pub *wei.Affine, hash []byte, sig *Signature) bool {
	n := c.Params.N
	if sig.R.IsZero() || sig.S.IsZero() {
		return false
	}
	if sig.R.BigInt().Cmp(n) >= 0 || sig.S.BigInt().Cmp(n) >= 0 {
		return false
	}
	if _, negated := c.Sc.New().Minimize(sig.S); negated {
		// High-S signatures are rejected: Sign only ever emits the
		// low-S representative, so a high-S value is either malleated
		// or forged.
		return false
	}
	if !c.ValidateAffineVar(pub) {
		return false
	}

	e := importReducedBig(c.Sc, bits2int(hash, c.Sc.Bits()))
	sInv, ok := c.Sc.New().InvertVar(sig.S)
	if !ok {
		return false
	}
	u1 := c.Sc.New().Mul(e, sInv)
	u2 := c.Sc.New().Mul(sig.R, sInv)

	R := c.DoubleScalarMultVar(u1, c.Generator(), u2, c.FromAffine(pub))
	return c.EqualRVar(R, sig.R.BigInt())
}

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
	"errors"
	"math/big"

	"github.com/nijynot/bcrypto/wei"
)

// ErrNotRecoverable is returned by Recover when the signature has a
// zero component, recoveryID does not correspond to a valid curve
// point, or the recovered point is the identity. The recovered key is
// not re-checked against the signature.
var ErrNotRecoverable = errors.New("ecdsa: signature not recoverable")

// Recover reconstructs the public key from a signature, message digest
// and recovery ID, per SEC1 §4.1.6. recoveryID's low bit selects the
// parity of R's y-coordinate; bit 1 signals r's "high" x-coordinate
// case, where R's x-coordinate is r + n (possible only when r + n < p,
// which can occur on any curve with n < p, such as secp256k1). This
// is the 0..3 recovery ID that Sign records in Signature.RecoveryID.
func (c *Context) Recover(hash []byte, sig *Signature, recoveryID int) (*wei.Affine, error) {
	n := c.Params.N
	p := c.Params.P
	if sig.R.IsZero() || sig.S.IsZero() {
		return nil, ErrNotRecoverable
	}

	x := new(big.Int).Set(sig.R.BigInt())
	if recoveryID&2 != 0 {
		x.Add(x, n)
		if x.Cmp(p) >= 0 {
			return nil, ErrNotRecoverable
		}
	}

	xb := make([]byte, c.Params.ByteSize)
	xBytes := x.Bytes()
	copy(xb[len(xb)-len(xBytes):], xBytes)
	R, err := c.DecodeCompressed(append([]byte{byte(0x02 | (recoveryID & 1))}, xb...))
	if err != nil {
		return nil, ErrNotRecoverable
	}

	e := importReducedBig(c.Sc, bits2int(hash, c.Sc.Bits()))
	rInv, ok := c.Sc.New().InvertVar(sig.R)
	if !ok {
		return nil, ErrNotRecoverable
	}
	u1 := c.Sc.New().Mul(c.Sc.New().Neg(e), rInv)
	u2 := c.Sc.New().Mul(sig.S, rInv)

	Q := c.DoubleScalarMultVar(u1, c.Generator(), u2, c.FromAffine(R))
	Qa := Q.ToAffine()
	if Qa.IsInfinity() {
		return nil, ErrNotRecoverable
	}
	return Qa, nil
}

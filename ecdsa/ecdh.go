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

	"github.com/nijynot/bcrypto/scalar"
	"github.com/nijynot/bcrypto/wei"
)

// ErrInvalidPeerKey is returned by Derive when the peer's point fails
// validation or reduces to the identity.
var ErrInvalidPeerKey = errors.New("ecdsa: invalid peer public key")

// Derive computes the raw ECDH shared point priv*peer, returning its
// affine x-coordinate as the shared secret per SEC1 §3.3.1. Callers
// that need a symmetric key must hash this output themselves; it is
// not whitened.
func (c *Context) Derive(priv *scalar.Scalar, peer *wei.Affine) ([]byte, error) {
	if !c.ValidateAffineVar(peer) || peer.IsInfinity() {
		return nil, ErrInvalidPeerKey
	}
	Q := c.ScalarMultCT(priv, c.FromAffine(peer))
	Qa := Q.ToAffine()
	if Qa.IsInfinity() {
		return nil, ErrInvalidPeerKey
	}
	x := Qa.XCoord().Bytes()
	be := make([]byte, len(x))
	for i, b := range x {
		be[len(x)-1-i] = b
	}
	return be, nil
}

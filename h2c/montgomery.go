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

package h2c

import (
	"hash"

	"github.com/nijynot/bcrypto/field"
	"github.com/nijynot/bcrypto/mont"
	"golang.org/x/crypto/sha3"
)

// montgomeryZ returns RFC 9380's Z constant for a curve's own native
// Montgomery field (X25519 or X448), mirroring ellZ's choice for the
// Edwards curves that share the same two underlying fields.
func montgomeryZ(mc *mont.Context) field.Element {
	switch mc.Params.ID {
	case "X25519":
		return mc.FE(2)
	default:
		return mc.FE(-1)
	}
}

func mapToMontgomeryU(mc *mont.Context, u field.Element) []byte {
	curve := montgomeryCurve{
		newElement: mc.NewElement,
		j:          mc.FEFromBig(mc.Params.A),
		k:          mc.FEFromBig(mc.Params.B),
		z:          montgomeryZ(mc),
	}
	mu, _ := mapToCurveElligator2(curve, u)
	return clearMontgomeryCofactor(mc, mu)
}

// clearMontgomeryCofactor returns the little-endian u-coordinate of
// [H]P, computed with the curve's own constant-time ladder rather than
// a dedicated doubling routine: a u-only ladder step computes [k]P
// from P's u-coordinate alone, and H is small and public.
func clearMontgomeryCofactor(mc *mont.Context, u field.Element) []byte {
	sz := mc.Params.ByteSize
	k := make([]byte, sz)
	k[0] = byte(mc.Params.H)
	cleared := mc.Ladder(k, u)
	le := cleared.Bytes()
	out := make([]byte, sz)
	copy(out, le)
	return out
}

// EncodeToMontgomeryU implements RFC 9380's non-uniform encode_to_curve
// for a Montgomery curve, returning only the cofactor-cleared
// u-coordinate: X25519/X448 key material is u-coordinates, never full
// (u, v) points, and mont.Context only implements the x-only ladder
// (see mont/ladder.go), so this stops at the representation the rest
// of the engine actually consumes rather than adding a full affine
// Montgomery addition law that no caller needs.
func EncodeToMontgomeryU(mc *mont.Context, newHash func() hash.Hash, dst, msg []byte) ([]byte, error) {
	us, err := hashToField(mc.Context, newHash, dst, msg, 1)
	if err != nil {
		return nil, err
	}
	return mapToMontgomeryU(mc, us[0]), nil
}

// EncodeToMontgomeryUXOF is EncodeToMontgomeryU over an extendable-
// output function (SHAKE256, for X448).
func EncodeToMontgomeryUXOF(mc *mont.Context, newXOF func() sha3.ShakeHash, dst, msg []byte) ([]byte, error) {
	us, err := hashToFieldXOF(mc.Context, newXOF, dst, msg, 1)
	if err != nil {
		return nil, err
	}
	return mapToMontgomeryU(mc, us[0]), nil
}

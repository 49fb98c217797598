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

// Package h2c implements hashing and encoding arbitrary byte strings to
// points on the engine's curves, per RFC 9380: expand_message_xmd/xof
// (§5.3), hash_to_field (§5.2), and the Elligator 2 map (Appendix F.2)
// applied generically over any curve's own registered Montgomery or
// Edwards coefficients, rather than one fixed field's constants.
package h2c

import (
	"crypto/sha512"

	"github.com/nijynot/bcrypto/edwards"
	"github.com/nijynot/bcrypto/mont"
	"golang.org/x/crypto/sha3"
)

const (
	edwards25519DST  = "edwards25519_XMD:SHA-512_ELL2_"
	curve25519DST    = "curve25519_XMD:SHA-512_ELL2_"
	edwards448DST    = "edwards448_XOF:SHAKE256_ELL2_"
	curve448DST      = "curve448_XOF:SHAKE256_ELL2_"
)

// Edwards25519HashToCurve implements the edwards25519_XMD:SHA-512_ELL2_RO_
// suite's random-oracle hash_to_curve.
func Edwards25519HashToCurve(ec *edwards.Context, msg []byte) (*edwards.Point, error) {
	return HashToEdwards(ec, sha512.New, []byte(edwards25519DST+"RO_"), msg)
}

// Edwards25519EncodeToCurve implements the edwards25519_XMD:SHA-512_ELL2_NU_
// suite's non-uniform encode_to_curve.
func Edwards25519EncodeToCurve(ec *edwards.Context, msg []byte) (*edwards.Point, error) {
	return EncodeToEdwards(ec, sha512.New, []byte(edwards25519DST+"NU_"), msg)
}

// Curve25519EncodeToCurve implements the curve25519_XMD:SHA-512_ELL2_NU_
// suite's non-uniform encode_to_curve, returning a u-coordinate.
func Curve25519EncodeToCurve(mc *mont.Context, msg []byte) ([]byte, error) {
	return EncodeToMontgomeryU(mc, sha512.New, []byte(curve25519DST+"NU_"), msg)
}

// Edwards448HashToCurve implements the edwards448_XOF:SHAKE256_ELL2_RO_
// suite's random-oracle hash_to_curve.
func Edwards448HashToCurve(ec *edwards.Context, msg []byte) (*edwards.Point, error) {
	return HashToEdwardsXOF(ec, sha3.NewShake256, []byte(edwards448DST+"RO_"), msg)
}

// Edwards448EncodeToCurve implements the edwards448_XOF:SHAKE256_ELL2_NU_
// suite's non-uniform encode_to_curve.
func Edwards448EncodeToCurve(ec *edwards.Context, msg []byte) (*edwards.Point, error) {
	return EncodeToEdwardsXOF(ec, sha3.NewShake256, []byte(edwards448DST+"NU_"), msg)
}

// Curve448EncodeToCurve implements the curve448_XOF:SHAKE256_ELL2_NU_
// suite's non-uniform encode_to_curve, returning a u-coordinate.
func Curve448EncodeToCurve(mc *mont.Context, msg []byte) ([]byte, error) {
	return EncodeToMontgomeryUXOF(mc, sha3.NewShake256, []byte(curve448DST+"NU_"), msg)
}

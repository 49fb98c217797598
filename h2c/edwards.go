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
	"errors"
	"hash"

	"github.com/nijynot/bcrypto/edwards"
	"github.com/nijynot/bcrypto/field"
	"golang.org/x/crypto/sha3"
)

// ErrUnmappablePoint is returned when a hash_to_field output lands on
// one of Elligator 2's negligible-probability exceptional points (a
// point of order dividing 2 on the Montgomery curve), which this
// package does not special-case.
var ErrUnmappablePoint = errors.New("h2c: exceptional elligator2 input")

// ellZ returns RFC 9380's Z constant for the curve's underlying
// Montgomery field: Z=2 for the Curve25519 field (the
// curve25519_XMD:SHA-512_ELL2 suites), Z=-1 for the Curve448 field
// (the curve448_XMD:SHAKE256_ELL2 suites). Ed1174 is not an RFC 9380
// suite; like Curve448's prime, its prime 2^251-9 is 3 mod 4 (so -1
// is a non-residue), and it reuses Z=-1, documented in DESIGN.md alongside
// the package's other Ed1174 approximations.
func ellZ(ec *edwards.Context) field.Element {
	switch ec.Params.ID {
	case "ED25519":
		return ec.FE(2)
	default:
		return ec.FE(-1)
	}
}

// montgomeryTwin derives the Montgomery-form K*v^2 = u^3 + J*u^2 + u
// curve birationally equivalent to ec's a*x^2+y^2 = 1+d*x^2*y^2, via
// J = 2(a+d)/(a-d), K = 4/(a-d). This is the algebraic inverse of the
// standard a=(J+2)/K, d=(J-2)/K relation, so it holds for any (a,d),
// not only the a=-1 shape Ed25519 uses.
func montgomeryTwin(ec *edwards.Context) montgomeryCurve {
	a := ec.FEFromBig(ec.Params.A)
	d := ec.FEFromBig(ec.Params.D)

	amd := ec.NewElement().Subtract(a, d)
	amdInv, _ := ec.NewElement().Invert(amd)

	apd := ec.NewElement().Add(a, d)
	two := ec.FE(2)
	four := ec.FE(4)

	j := ec.NewElement().Multiply(two, apd)
	j = ec.NewElement().Multiply(j, amdInv)
	k := ec.NewElement().Multiply(four, amdInv)

	return montgomeryCurve{newElement: ec.NewElement, j: j, k: k, z: ellZ(ec)}
}

// montgomeryToEdwards converts a Montgomery-form affine point (u, v) to
// ec's twisted-Edwards affine form via x = u/v, y = (u-1)/(u+1), then
// decodes it through ec.Decode so the result is validated on-curve the
// same way any externally-supplied point is.
func montgomeryToEdwards(ec *edwards.Context, u, v field.Element) (*edwards.Point, error) {
	vInv, nz1 := ec.NewElement().Invert(v)
	one := ec.FE(1)
	uPlus1 := ec.NewElement().Add(u, one)
	uPlus1Inv, nz2 := ec.NewElement().Invert(uPlus1)
	if nz1 != 1 || nz2 != 1 {
		return nil, ErrUnmappablePoint
	}

	x := ec.NewElement().Multiply(u, vInv)
	uMinus1 := ec.NewElement().Subtract(u, one)
	y := ec.NewElement().Multiply(uMinus1, uPlus1Inv)

	sz := ec.Params.ByteSize
	enc := make([]byte, sz)
	copy(enc, y.Bytes())
	if x.IsNegative() == 1 {
		enc[sz-1] |= 0x80
	}
	return ec.Decode(enc)
}

// mapToEdwards runs RFC 9380's map_to_curve_elligator2 over ec's
// Montgomery twin and lifts the result back into ec's group.
func mapToEdwards(ec *edwards.Context, u field.Element) (*edwards.Point, error) {
	mu, mv := mapToCurveElligator2(montgomeryTwin(ec), u)
	return montgomeryToEdwards(ec, mu, mv)
}

func clearCofactor(ec *edwards.Context, p *edwards.Point) *edwards.Point {
	h := ec.Params.H
	for h > 1 {
		p = ec.Dbl(p)
		h >>= 1
	}
	return p
}

// HashToEdwards implements RFC 9380's random-oracle hash_to_curve:
// two independent field samples, each mapped through Elligator 2, then
// combined and cofactor-cleared. newHash selects the XMD hash function
// (SHA-512 for Ed25519); use HashToEdwardsXOF for the SHAKE256 suites
// (Ed448).
func HashToEdwards(ec *edwards.Context, newHash func() hash.Hash, dst, msg []byte) (*edwards.Point, error) {
	us, err := hashToField(ec.Context, newHash, dst, msg, 2)
	if err != nil {
		return nil, err
	}
	return hashToEdwardsFromField(ec, us)
}

// HashToEdwardsXOF is HashToEdwards over an extendable-output function
// (SHAKE256, for Ed448).
func HashToEdwardsXOF(ec *edwards.Context, newXOF func() sha3.ShakeHash, dst, msg []byte) (*edwards.Point, error) {
	us, err := hashToFieldXOF(ec.Context, newXOF, dst, msg, 2)
	if err != nil {
		return nil, err
	}
	return hashToEdwardsFromField(ec, us)
}

func hashToEdwardsFromField(ec *edwards.Context, us []field.Element) (*edwards.Point, error) {
	p0, err := mapToEdwards(ec, us[0])
	if err != nil {
		return nil, err
	}
	p1, err := mapToEdwards(ec, us[1])
	if err != nil {
		return nil, err
	}
	return clearCofactor(ec, ec.Add(p0, p1)), nil
}

// EncodeToEdwards implements RFC 9380's non-uniform encode_to_curve: a
// single field sample mapped through Elligator 2 and cofactor-cleared.
// Unlike HashToEdwards this is not guaranteed to land on points drawn
// indistinguishably from uniform, only from a curve-dependent
// subgroup of roughly half the group's density, per RFC 9380 §3's NU
// security statement.
func EncodeToEdwards(ec *edwards.Context, newHash func() hash.Hash, dst, msg []byte) (*edwards.Point, error) {
	us, err := hashToField(ec.Context, newHash, dst, msg, 1)
	if err != nil {
		return nil, err
	}
	p, err := mapToEdwards(ec, us[0])
	if err != nil {
		return nil, err
	}
	return clearCofactor(ec, p), nil
}

// EncodeToEdwardsXOF is EncodeToEdwards over an extendable-output
// function (SHAKE256, for Ed448).
func EncodeToEdwardsXOF(ec *edwards.Context, newXOF func() sha3.ShakeHash, dst, msg []byte) (*edwards.Point, error) {
	us, err := hashToFieldXOF(ec.Context, newXOF, dst, msg, 1)
	if err != nil {
		return nil, err
	}
	p, err := mapToEdwards(ec, us[0])
	if err != nil {
		return nil, err
	}
	return clearCofactor(ec, p), nil
}

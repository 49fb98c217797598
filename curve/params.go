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

// Package curve holds the eleven predefined parameter sets and the
// shared Context type precomputed from them.
package curve

import "math/big"

// Family identifies which group law a curve uses.
type Family int

const (
	FamilyShortWeierstrass Family = iota
	FamilyMontgomery
	FamilyEdwards
)

// FieldKind selects which field.Element backend a curve is wired to.
type FieldKind int

const (
	FieldBigPrime FieldKind = iota
	FieldFiat25519
	FieldSecp256k1
)

// Params is the immutable, publicly-documented domain parameter set for
// one named curve: FIPS 186-4 Appendix D for the NIST primes, SEC2 for
// secp256k1, RFC 7748 for Curve25519/Curve448, RFC 8032 for
// Ed25519/Ed448, and Bernstein/Hamburg's twisted-Edwards writeup for
// Ed1174.
type Params struct {
	ID    string
	Field FieldKind

	P *big.Int // field prime
	N *big.Int // group order
	H uint     // cofactor

	// Short-Weierstrass: y^2 = x^3 + A*x + B
	// Montgomery:        B*y^2 = x^3 + A*x^2 + x
	// Edwards:           a*x^2 + y^2 = 1 + d*x^2*y^2
	A *big.Int
	B *big.Int
	D *big.Int

	Gx *big.Int
	Gy *big.Int

	// HasEndomorphism is true only for SECP256K1; see wei.Endomorphism.
	HasEndomorphism bool

	// Has4Isogeny is true for the Curve448 family.
	Has4Isogeny bool

	// IsoC is the scaling constant linking this curve to its
	// Montgomery/Edwards twin.
	IsoC *big.Int

	// HashName is the associated hash algorithm used by ECDSA/EdDSA
	// nonce and challenge derivation for this curve.
	HashName string

	// ByteSize is the canonical encoding width of a field element
	// (size(p)) for this curve.
	ByteSize int
	// ScalarSize is the canonical encoding width of a scalar
	// (size(n)).
	ScalarSize int
}

func hx(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: bad hex constant: " + s)
	}
	return v
}

func sub3(p *big.Int) *big.Int {
	return new(big.Int).Sub(p, big.NewInt(3))
}

// Registry of the predefined curve identifiers.
var Registry = map[string]*Params{}

func register(p *Params) { Registry[p.ID] = p }

func init() {
	p192 := hx("fffffffffffffffffffffffffffffffeffffffffffffffff")
	register(&Params{
		ID: "P192", Field: FieldBigPrime,
		P: p192,
		N: hx("ffffffffffffffffffffffff99def836146bc9b1b4d22831"),
		H: 1, A: sub3(p192),
		B:          hx("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"),
		Gx:         hx("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"),
		Gy:         hx("07192b95ffc8da78631011ed6b24cdd573f977a11e794811"),
		HashName:   "SHA-256",
		ByteSize:   24, ScalarSize: 24,
	})

	p224 := hx("ffffffffffffffffffffffffffffffff000000000000000000000001")
	register(&Params{
		ID: "P224", Field: FieldBigPrime,
		P: p224,
		N: hx("ffffffffffffffffffffffffffff16a2e0b8f03e13dd29455c5c2a3d"),
		H: 1, A: sub3(p224),
		B:          hx("b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4"),
		Gx:         hx("b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21"),
		Gy:         hx("bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34"),
		HashName:   "SHA-224",
		ByteSize:   28, ScalarSize: 28,
	})

	p256 := hx("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
	register(&Params{
		ID: "P256", Field: FieldBigPrime,
		P: p256,
		N: hx("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
		H: 1, A: sub3(p256),
		B:          hx("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
		Gx:         hx("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
		Gy:         hx("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
		HashName:   "SHA-256",
		ByteSize:   32, ScalarSize: 32,
	})

	p384 := hx("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff")
	register(&Params{
		ID: "P384", Field: FieldBigPrime,
		P: p384,
		N: hx("ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973"),
		H: 1, A: sub3(p384),
		B:          hx("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef"),
		Gx:         hx("aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7"),
		Gy:         hx("3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f"),
		HashName:   "SHA-384",
		ByteSize:   48, ScalarSize: 48,
	})

	p521 := hx("01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	register(&Params{
		ID: "P521", Field: FieldBigPrime,
		P: p521,
		N: hx("01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409"),
		H: 1, A: sub3(p521),
		B:          hx("0051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00"),
		Gx:         hx("00c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66"),
		Gy:         hx("011839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650"),
		HashName:   "SHA-512",
		ByteSize:   66, ScalarSize: 66,
	})

	register(&Params{
		ID: "SECP256K1", Field: FieldSecp256k1,
		P: hx("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		N: hx("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		H: 1, A: big.NewInt(0),
		B:               big.NewInt(7),
		Gx:              hx("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		Gy:              hx("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
		HasEndomorphism: true,
		HashName:        "SHA-256",
		ByteSize:        32, ScalarSize: 32,
	})

	curve25519P := hx("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")
	ed25519D := hx("52036cee2b6ffe738cc740797779e89800700a4d4141d8ab75eb4dca135978a3")
	register(&Params{
		ID: "X25519", Field: FieldFiat25519,
		P: curve25519P,
		N: hx("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"),
		H: 8,
		A: big.NewInt(486662), B: big.NewInt(1),
		Gx:       big.NewInt(9),
		HashName: "SHA-512",
		ByteSize: 32, ScalarSize: 32,
	})
	register(&Params{
		ID: "ED25519", Field: FieldFiat25519,
		P: curve25519P,
		N: hx("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"),
		H: 8,
		A: new(big.Int).Sub(curve25519P, big.NewInt(1)), // a = -1
		D: ed25519D,
		Gx: hx("216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a"),
		Gy: hx("6666666666666666666666666666666666666666666666666666666666666658"),
		IsoC:     big.NewInt(1),
		HashName: "SHA-512",
		ByteSize: 32, ScalarSize: 32,
	})

	curve448P := hx("fffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	ed448N := hx("3fffffffffffffffffffffffffffffffffffffffffffffffffffffff7cca23e9c44edb49aed63690216cc2728dc58f552378c292ab5844f3")
	register(&Params{
		ID: "X448", Field: FieldBigPrime,
		P: curve448P,
		N: ed448N, H: 4,
		A: big.NewInt(156326), B: big.NewInt(1),
		Gx:          big.NewInt(5),
		Has4Isogeny: true,
		HashName:    "SHAKE256",
		ByteSize:    56, ScalarSize: 56,
	})
	register(&Params{
		ID: "ED448", Field: FieldBigPrime,
		P: curve448P,
		N: ed448N, H: 4,
		A: big.NewInt(1),
		D: new(big.Int).Sub(curve448P, big.NewInt(39081)),
		Gx: hx("4f1970c66bed0ded221d15a622bf36da9e146570470f1767ea6de324a3d3a46412ae1af72ab66511433b80e18b00938e2626a82bc70cc05e"),
		Gy: hx("693f46716eb6bc248876203756c9c7624bea73736ca3984087789c1e05a0c2d73ad3ff1ce67c39c4fdbd132c4ed7c8ad9808795bf230fa14"),
		Has4Isogeny: true,
		IsoC:        big.NewInt(1),
		HashName:    "SHAKE256",
		ByteSize:    57, ScalarSize: 57,
	})

	ed1174P := hx("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7")
	register(&Params{
		ID: "ED1174", Field: FieldBigPrime,
		P: ed1174P,
		N: hx("01ffffffffffffffffffffffffffffff77965c4dfd307348944d45fd166c971"),
		H: 4,
		A: big.NewInt(1),
		D: new(big.Int).Sub(ed1174P, big.NewInt(1174)),
		Gx: hx("037fbb0cea308c479343aee7c029a190c021d96a492ecd6516123f27bce29eda"),
		Gy: hx("06b72f82d47fb7cc6656841169840e0c4fe2dee2af3f976ba4ccb1bf9b46360e"),
		HashName: "SHA-512",
		ByteSize: 32, ScalarSize: 32,
	})
}

// Lookup returns the parameter set for id, or nil if unknown.
func Lookup(id string) *Params {
	return Registry[id]
}

// FamilyOf classifies a predefined identifier into its group law.
func FamilyOf(id string) Family {
	switch id {
	case "X25519", "X448":
		return FamilyMontgomery
	case "ED25519", "ED448", "ED1174":
		return FamilyEdwards
	default:
		return FamilyShortWeierstrass
	}
}

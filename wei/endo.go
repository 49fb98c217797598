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

package wei

import (
	"math/big"

	"github.com/nijynot/bcrypto/curve"
)

// endomorphism holds the GLV decomposition constants for SECP256K1's
// efficiently-computable endomorphism phi(x, y) = (beta*x, y), which
// corresponds to multiplication by lambda in the scalar field:
// phi(P) = lambda*P. The basis vectors (a1,b1),(a2,b2) are the
// standard short lattice vectors for this curve, widely published in
// the secp256k1 GLV literature (e.g. libsecp256k1's endomorphism.md).
type endomorphism struct {
	beta *big.Int // lifted into a field element lazily by the owning Context

	a1, b1, a2, b2 *big.Int
}

func newEndomorphism(cc *curve.Context) (*endomorphism, error) {
	hx := func(s string) *big.Int {
		v, _ := new(big.Int).SetString(s, 16)
		return v
	}
	return &endomorphism{
		beta: hx("7ae96a2b657c07106e64479eac3434e99cf0497512f58995c1396c28719501ee"),
		a1:   hx("3086d221a7d46bcde86c90e49284eb15"),
		b1:   new(big.Int).Neg(hx("e4437ed6010e88286f547fa90abfe4c3")),
		a2:   hx("114ca50f7a8e2f3f657c1108d9d44cfd8"),
		b2:   hx("3086d221a7d46bcde86c90e49284eb15"),
	}, nil
}

// roundDiv returns round(num/den) for den > 0, rounding halves away
// from zero, computed exactly with big.Int so that the ~128-bit GLV
// coefficients below don't lose precision the way a float64 division
// would.
func roundDiv(num, den *big.Int) *big.Int {
	neg := num.Sign() < 0
	n := new(big.Int).Abs(num)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(n, den, r)
	r2 := new(big.Int).Lsh(r, 1)
	if r2.Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if neg {
		q.Neg(q)
	}
	return q
}

// split decomposes k into (k1, k2) with k = k1 + k2*lambda (mod n) and
// both roughly half the bit length of n, per Gallant-Lambert-Vanstone.
func (e *endomorphism) split(k, n *big.Int) (k1, k2 *big.Int) {
	c1 := roundDiv(new(big.Int).Mul(k, e.b2), n)
	c2 := roundDiv(new(big.Int).Mul(k, new(big.Int).Neg(e.b1)), n)

	k1 = new(big.Int).Sub(k, new(big.Int).Mul(c1, e.a1))
	k1.Sub(k1, new(big.Int).Mul(c2, e.a2))

	k2 = new(big.Int).Add(new(big.Int).Mul(c1, e.b1), new(big.Int).Mul(c2, e.b2))
	k2.Neg(k2)
	return k1, k2
}

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
	"testing"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/field"
	"github.com/nijynot/bcrypto/scalar"
)

func newTestContext(t *testing.T, id string) *Context {
	t.Helper()
	cc, err := curve.New(id)
	if err != nil {
		t.Fatalf("curve.New(%s): %v", id, err)
	}
	c, err := NewContext(cc)
	if err != nil {
		t.Fatalf("wei.NewContext(%s): %v", id, err)
	}
	return c
}

// curveIDs covers one curve without the GLV endomorphism (P256) and
// the one curve with it (SECP256K1), so every code path in mul.go gets
// exercised by the shared identity suite below.
var curveIDs = []string{"P256", "SECP256K1"}

func TestGroupLawIdentities(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			g := c.Generator()

			if g.IsIdentity() == 1 {
				t.Fatalf("generator reports as identity")
			}
			if !c.ValidateVar(g) {
				t.Fatalf("generator fails on-curve validation")
			}

			zero := c.Identity()
			if zero.IsIdentity() != 1 {
				t.Fatalf("Identity() is not the identity")
			}

			// P + O == P
			sum := c.Add(g, zero)
			if !pointsEqual(c, sum, g) {
				t.Fatalf("P + O != P")
			}

			// Doubling matches self-addition.
			dbl := c.Dbl(g)
			addSelf := c.Add(g, g)
			if !pointsEqual(c, dbl, addSelf) {
				t.Fatalf("Dbl(P) != Add(P, P)")
			}

			// P + (-P) == O
			neg := c.Negate(g)
			sumNeg := c.Add(g, neg)
			if sumNeg.IsIdentity() != 1 {
				t.Fatalf("P + (-P) != O")
			}

			// Associativity: (P+P)+P == P+(P+P)
			threeA := c.Add(c.Add(g, g), g)
			threeB := c.Add(g, c.Add(g, g))
			if !pointsEqual(c, threeA, threeB) {
				t.Fatalf("addition is not associative")
			}
		})
	}
}

func TestScalarMultAgreement(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			for _, x := range []int64{1, 2, 3, 17, 255, 65537} {
				k := scalarFromInt64(c.Sc, x)

				base := c.ScalarBaseMult(k)
				varMult := c.ScalarMultVar(k, c.Generator())
				ctMult := c.ScalarMultCT(k, c.Generator())

				if !pointsEqual(c, base, varMult) {
					t.Fatalf("k=%d: ScalarBaseMult != ScalarMultVar", x)
				}
				if !pointsEqual(c, varMult, ctMult) {
					t.Fatalf("k=%d: ScalarMultVar != ScalarMultCT", x)
				}
			}
		})
	}
}

func TestDoubleAndMultiScalarMultAgreement(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			g := c.Generator()
			h := c.ScalarBaseMult(scalarFromInt64(c.Sc, 7)) // an arbitrary second point

			k1 := scalarFromInt64(c.Sc, 123)
			k2 := scalarFromInt64(c.Sc, 456)

			want := c.Add(c.ScalarMultVar(k1, g), c.ScalarMultVar(k2, h))
			got := c.DoubleScalarMultVar(k1, g, k2, h)
			if !pointsEqual(c, want, got) {
				t.Fatalf("DoubleScalarMultVar disagrees with two separate ScalarMultVar calls")
			}

			multi := c.MultiScalarMultVar([]*scalar.Scalar{k1, k2}, []*Jacobian{g, h})
			if !pointsEqual(c, want, multi) {
				t.Fatalf("MultiScalarMultVar disagrees with DoubleScalarMultVar's two-term case")
			}
		})
	}
}

func TestAffineCodecRoundTrip(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			g := c.Generator().ToAffine()

			compressed := g.EncodeCompressed()
			decoded, err := c.DecodeCompressed(compressed)
			if err != nil {
				t.Fatalf("DecodeCompressed: %v", err)
			}
			if decoded.XCoord().Equal(g.XCoord()) != 1 || decoded.YCoord().Equal(g.YCoord()) != 1 {
				t.Fatalf("compressed round trip produced a different point")
			}

			uncompressed := g.EncodeUncompressed()
			decodedU, err := c.DecodeUncompressed(uncompressed)
			if err != nil {
				t.Fatalf("DecodeUncompressed: %v", err)
			}
			if decodedU.XCoord().Equal(g.XCoord()) != 1 || decodedU.YCoord().Equal(g.YCoord()) != 1 {
				t.Fatalf("uncompressed round trip produced a different point")
			}
		})
	}
}

func TestEqualRVarMatchesAffineX(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			k := scalarFromInt64(c.Sc, 999)
			p := c.ScalarBaseMult(k)
			xBig := feToBig(p.ToAffine().XCoord())

			if !c.EqualRVar(p, xBig) {
				t.Fatalf("EqualRVar(p, x(p)) == false")
			}

			other := big.NewInt(0).Add(xBig, big.NewInt(1))
			if c.EqualRVar(p, other) {
				t.Fatalf("EqualRVar(p, x(p)+1) == true")
			}
		})
	}
}

func pointsEqual(c *Context, a, b *Jacobian) bool {
	if a.IsIdentity() == 1 && b.IsIdentity() == 1 {
		return true
	}
	if a.IsIdentity() == 1 || b.IsIdentity() == 1 {
		return false
	}
	aa, ab := a.ToAffine(), b.ToAffine()
	return aa.XCoord().Equal(ab.XCoord()) == 1 && aa.YCoord().Equal(ab.YCoord()) == 1
}

// feToBig converts a field element's little-endian encoding to a
// big.Int, the same convention curve.Context.FEFromBig decodes from.
func feToBig(e field.Element) *big.Int {
	le := e.Bytes()
	be := make([]byte, len(le))
	for i, v := range le {
		be[len(le)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

func scalarFromInt64(f *scalar.Field, x int64) *scalar.Scalar {
	return f.ImportReduce(big.NewInt(x).Bytes())
}

// TestEndomorphismBetaIsCubeRootOfUnity checks the defining property of
// the GLV endomorphism constant: phi(phi(phi(P))) = P for every P
// requires beta^3 = 1 mod p. A wrong beta still looks plausible (same
// bit length, same leading digits) but silently produces the wrong
// point on every SECP256K1 fixed/variable-base multiplication that
// takes the endomorphism path.
func TestEndomorphismBetaIsCubeRootOfUnity(t *testing.T) {
	c := newTestContext(t, "SECP256K1")
	if c.endo == nil {
		t.Fatalf("SECP256K1 context has no endomorphism wired")
	}
	cubed := new(big.Int).Exp(c.endo.beta, big.NewInt(3), c.Params.P)
	if cubed.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("beta^3 mod p = %s, want 1", cubed.String())
	}
	if c.endo.beta.Cmp(big.NewInt(1)) == 0 {
		t.Fatalf("beta must not be the trivial cube root 1")
	}
}

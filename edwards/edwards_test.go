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

package edwards

import (
	"math/big"
	"testing"

	"github.com/nijynot/bcrypto/curve"
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
		t.Fatalf("edwards.NewContext(%s): %v", id, err)
	}
	return c
}

// curveIDs covers the a=-1 specialization (ED25519) and the general
// addition formula (ED448), the two branches of Context.Add.
var curveIDs = []string{"ED25519", "ED448"}

func scalarFromInt64(f *scalar.Field, x int64) *scalar.Scalar {
	return f.ImportReduce(big.NewInt(x).Bytes())
}

func TestGroupLawIdentities(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			g := c.Generator()

			if !c.ValidateVar(g) {
				t.Fatalf("generator fails on-curve validation")
			}

			o := c.Identity()
			if !c.EqualVar(c.Add(g, o), g) {
				t.Fatalf("P + O != P")
			}

			dbl := c.Dbl(g)
			addSelf := c.Add(g, g)
			if !c.EqualVar(dbl, addSelf) {
				t.Fatalf("Dbl(P) != Add(P, P)")
			}

			neg := c.Negate(g)
			if !c.EqualVar(c.Add(g, neg), o) {
				t.Fatalf("P + (-P) != O")
			}

			threeA := c.Add(c.Add(g, g), g)
			threeB := c.Add(g, c.Add(g, g))
			if !c.EqualVar(threeA, threeB) {
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
				if !c.EqualVar(base, varMult) {
					t.Fatalf("k=%d: ScalarBaseMult != ScalarMultVar", x)
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
			h := c.ScalarBaseMult(scalarFromInt64(c.Sc, 7))

			k1 := scalarFromInt64(c.Sc, 123)
			k2 := scalarFromInt64(c.Sc, 456)

			want := c.Add(c.ScalarMultVar(k1, g), c.ScalarMultVar(k2, h))
			got := c.DoubleScalarMultVar(k1, g, k2, h)
			if !c.EqualVar(want, got) {
				t.Fatalf("DoubleScalarMultVar disagrees with two separate ScalarMultVar calls")
			}

			multi := c.MultiScalarMultVar([]*scalar.Scalar{k1, k2}, []*Point{g, h})
			if !c.EqualVar(want, multi) {
				t.Fatalf("MultiScalarMultVar disagrees with DoubleScalarMultVar's two-term case")
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			for _, x := range []int64{1, 2, 99, 65537} {
				p := c.ScalarBaseMult(scalarFromInt64(c.Sc, x))
				enc := p.Encode()
				dec, err := c.Decode(enc)
				if err != nil {
					t.Fatalf("Decode(Encode(%d*G)): %v", x, err)
				}
				if !c.EqualVar(p, dec) {
					t.Fatalf("Decode(Encode(%d*G)) != %d*G", x, x)
				}
			}
		})
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			if _, err := c.Decode([]byte{0x01, 0x02}); err == nil {
				t.Fatalf("Decode accepted a too-short input")
			}
		})
	}
}

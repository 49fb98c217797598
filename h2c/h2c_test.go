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
	"bytes"
	"crypto/sha512"
	"hash"
	"testing"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/edwards"
	"github.com/nijynot/bcrypto/mont"
)

func sha512Like(_ string) func() hash.Hash {
	return sha512.New
}

func newEdwardsContext(t *testing.T, id string) *edwards.Context {
	t.Helper()
	cc, err := curve.New(id)
	if err != nil {
		t.Fatalf("curve.New(%s): %v", id, err)
	}
	ec, err := edwards.NewContext(cc)
	if err != nil {
		t.Fatalf("edwards.NewContext(%s): %v", id, err)
	}
	return ec
}

func newMontContext(t *testing.T, id string) *mont.Context {
	t.Helper()
	cc, err := curve.New(id)
	if err != nil {
		t.Fatalf("curve.New(%s): %v", id, err)
	}
	mc, err := mont.NewContext(cc)
	if err != nil {
		t.Fatalf("mont.NewContext(%s): %v", id, err)
	}
	return mc
}

var edwardsIDs = []string{"ED25519", "ED448"}

func TestHashToEdwardsProducesValidPoints(t *testing.T) {
	for _, id := range edwardsIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			ec := newEdwardsContext(t, id)
			dst := []byte("bcrypto-h2c-test-suite")
			p, err := HashToEdwards(ec, sha512Like(id), dst, []byte("hello world"))
			if err != nil {
				t.Fatalf("HashToEdwards: %v", err)
			}
			if !ec.ValidateVar(p) {
				t.Fatalf("HashToEdwards produced a point that fails curve validation")
			}
		})
	}
}

func TestHashToEdwardsIsDeterministic(t *testing.T) {
	for _, id := range edwardsIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			ec := newEdwardsContext(t, id)
			dst := []byte("bcrypto-h2c-test-suite")
			msg := []byte("deterministic message")
			p1, err := HashToEdwards(ec, sha512Like(id), dst, msg)
			if err != nil {
				t.Fatalf("HashToEdwards: %v", err)
			}
			p2, err := HashToEdwards(ec, sha512Like(id), dst, msg)
			if err != nil {
				t.Fatalf("HashToEdwards: %v", err)
			}
			if !ec.EqualVar(p1, p2) {
				t.Fatalf("hashing the same message twice produced different points")
			}
		})
	}
}

func TestHashToEdwardsDistinctMessagesDiffer(t *testing.T) {
	for _, id := range edwardsIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			ec := newEdwardsContext(t, id)
			dst := []byte("bcrypto-h2c-test-suite")
			p1, err := HashToEdwards(ec, sha512Like(id), dst, []byte("message one"))
			if err != nil {
				t.Fatalf("HashToEdwards: %v", err)
			}
			p2, err := HashToEdwards(ec, sha512Like(id), dst, []byte("message two"))
			if err != nil {
				t.Fatalf("HashToEdwards: %v", err)
			}
			if ec.EqualVar(p1, p2) {
				t.Fatalf("distinct messages hashed to the same point")
			}
		})
	}
}

func TestEncodeToEdwardsProducesValidPoints(t *testing.T) {
	for _, id := range edwardsIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			ec := newEdwardsContext(t, id)
			dst := []byte("bcrypto-h2c-test-suite")
			p, err := EncodeToEdwards(ec, sha512Like(id), dst, []byte("an input string"))
			if err != nil {
				t.Fatalf("EncodeToEdwards: %v", err)
			}
			if !ec.ValidateVar(p) {
				t.Fatalf("EncodeToEdwards produced a point that fails curve validation")
			}
		})
	}
}

func TestEdwards25519HashAndEncodeToCurveConvenienceWrappers(t *testing.T) {
	ec := newEdwardsContext(t, "ED25519")
	if _, err := Edwards25519HashToCurve(ec, []byte("msg")); err != nil {
		t.Fatalf("Edwards25519HashToCurve: %v", err)
	}
	if _, err := Edwards25519EncodeToCurve(ec, []byte("msg")); err != nil {
		t.Fatalf("Edwards25519EncodeToCurve: %v", err)
	}
}

func TestEdwards448HashAndEncodeToCurveConvenienceWrappers(t *testing.T) {
	ec := newEdwardsContext(t, "ED448")
	if _, err := Edwards448HashToCurve(ec, []byte("msg")); err != nil {
		t.Fatalf("Edwards448HashToCurve: %v", err)
	}
	if _, err := Edwards448EncodeToCurve(ec, []byte("msg")); err != nil {
		t.Fatalf("Edwards448EncodeToCurve: %v", err)
	}
}

func TestCurve25519EncodeToCurveIsDeterministic(t *testing.T) {
	mc := newMontContext(t, "X25519")
	msg := []byte("montgomery message")
	u1, err := Curve25519EncodeToCurve(mc, msg)
	if err != nil {
		t.Fatalf("Curve25519EncodeToCurve: %v", err)
	}
	u2, err := Curve25519EncodeToCurve(mc, msg)
	if err != nil {
		t.Fatalf("Curve25519EncodeToCurve: %v", err)
	}
	if !bytes.Equal(u1, u2) {
		t.Fatalf("Curve25519EncodeToCurve is not deterministic")
	}
}

func TestCurve448EncodeToCurveIsDeterministic(t *testing.T) {
	mc := newMontContext(t, "X448")
	msg := []byte("montgomery message")
	u1, err := Curve448EncodeToCurve(mc, msg)
	if err != nil {
		t.Fatalf("Curve448EncodeToCurve: %v", err)
	}
	u2, err := Curve448EncodeToCurve(mc, msg)
	if err != nil {
		t.Fatalf("Curve448EncodeToCurve: %v", err)
	}
	if !bytes.Equal(u1, u2) {
		t.Fatalf("Curve448EncodeToCurve is not deterministic")
	}
}

func TestExpandMessageXMDProducesRequestedLength(t *testing.T) {
	for _, n := range []int{16, 32, 48, 96} {
		out := make([]byte, n)
		if err := ExpandMessageXMD(out, sha512Like("ED25519"), []byte("dst"), []byte("msg")); err != nil {
			t.Fatalf("ExpandMessageXMD(%d): %v", n, err)
		}
		allZero := true
		for _, b := range out {
			if b != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			t.Fatalf("ExpandMessageXMD(%d) returned all-zero output", n)
		}
	}
}

func TestExpandMessageXMDIsDeterministic(t *testing.T) {
	out1 := make([]byte, 64)
	out2 := make([]byte, 64)
	dst := []byte("dst-tag")
	msg := []byte("a message")
	if err := ExpandMessageXMD(out1, sha512Like("ED25519"), dst, msg); err != nil {
		t.Fatalf("ExpandMessageXMD: %v", err)
	}
	if err := ExpandMessageXMD(out2, sha512Like("ED25519"), dst, msg); err != nil {
		t.Fatalf("ExpandMessageXMD: %v", err)
	}
	if !bytes.Equal(out1, out2) {
		t.Fatalf("ExpandMessageXMD is not deterministic for identical inputs")
	}
}

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

package mont_test

import (
	"bytes"
	"testing"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/mont"
	"github.com/nijynot/bcrypto/x25519"
)

func newX25519Context(t *testing.T) *mont.Context {
	t.Helper()
	cc, err := curve.New("X25519")
	if err != nil {
		t.Fatalf("curve.New(X25519): %v", err)
	}
	c, err := mont.NewContext(cc)
	if err != nil {
		t.Fatalf("mont.NewContext(X25519): %v", err)
	}
	return c
}

func TestLadderWithScalarOneIsIdentity(t *testing.T) {
	c := newX25519Context(t)
	one := make([]byte, 32)
	one[0] = 1

	got := c.Ladder(one, c.BaseU())
	if got.Equal(c.BaseU()) != 1 {
		t.Fatalf("Ladder(1, u) != u")
	}
}

func TestLadderMatchesX25519Derive(t *testing.T) {
	c := newX25519Context(t)

	priv, err := x25519.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	want, err := x25519.PublicKey(priv)
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}

	u := c.BaseU()
	out := c.Ladder(priv, u)
	got := make([]byte, 32)
	copy(got, out.Bytes())

	if !bytes.Equal(got, want) {
		t.Fatalf("mont.Ladder disagrees with x25519.PublicKey: %x vs %x", got, want)
	}
}

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

package x448

import (
	"bytes"
	"testing"
)

func TestClampSetsRequiredBits(t *testing.T) {
	k := make([]byte, Size)
	for i := range k {
		k[i] = 0xff
	}
	Clamp(k)
	if k[0]&0x03 != 0 {
		t.Fatalf("low 2 bits of k[0] not cleared: %08b", k[0])
	}
	if k[55]&0x80 == 0 {
		t.Fatalf("top bit of k[55] not set: %08b", k[55])
	}
}

func TestDiffieHellmanAgreement(t *testing.T) {
	alice, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey (alice): %v", err)
	}
	bob, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey (bob): %v", err)
	}

	alicePub, err := PublicKey(alice)
	if err != nil {
		t.Fatalf("PublicKey (alice): %v", err)
	}
	bobPub, err := PublicKey(bob)
	if err != nil {
		t.Fatalf("PublicKey (bob): %v", err)
	}

	aliceShared, err := Derive(alice, bobPub)
	if err != nil {
		t.Fatalf("Derive (alice): %v", err)
	}
	bobShared, err := Derive(bob, alicePub)
	if err != nil {
		t.Fatalf("Derive (bob): %v", err)
	}

	if !bytes.Equal(aliceShared, bobShared) {
		t.Fatalf("shared secrets disagree: %x vs %x", aliceShared, bobShared)
	}
}

func TestPublicKeyMatchesBasePointDerivation(t *testing.T) {
	priv, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	pub, err := PublicKey(priv)
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	viaDerive, err := Derive(priv, BasePoint())
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if !bytes.Equal(pub, viaDerive) {
		t.Fatalf("PublicKey != Derive(priv, BasePoint())")
	}
}

func TestDeriveRejectsWrongLength(t *testing.T) {
	short := make([]byte, Size-1)
	full := make([]byte, Size)
	if _, err := Derive(short, full); err != ErrInvalidInput {
		t.Fatalf("Derive accepted a short private key")
	}
	if _, err := Derive(full, short); err != ErrInvalidInput {
		t.Fatalf("Derive accepted a short peer point")
	}
}

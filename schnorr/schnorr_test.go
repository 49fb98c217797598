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

package schnorr

import (
	"testing"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext("SECP256K1")
	if err != nil {
		t.Fatalf("NewContext(SECP256K1): %v", err)
	}
	return c
}

func TestSignVerifyRoundTrip(t *testing.T) {
	c := newTestContext(t)
	d, pub, err := c.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	msg := make([]byte, 32)
	copy(msg, []byte("a 32-byte message goes here..."))

	sig, err := c.Sign(d, msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !c.Verify(pub, msg, sig) {
		t.Fatalf("Verify rejected a freshly produced signature")
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	c := newTestContext(t)
	d, pub, err := c.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	msg := make([]byte, 32)
	sig, err := c.Sign(d, msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	tampered := append([]byte(nil), sig...)
	tampered[63] ^= 0x01
	if c.Verify(pub, msg, tampered) {
		t.Fatalf("Verify accepted a tampered signature")
	}
}

func TestVerifyRejectsWrongLengths(t *testing.T) {
	c := newTestContext(t)
	if c.Verify(make([]byte, 31), make([]byte, 32), make([]byte, 64)) {
		t.Fatalf("Verify accepted a 31-byte pubkey")
	}
	if c.Verify(make([]byte, 32), make([]byte, 32), make([]byte, 63)) {
		t.Fatalf("Verify accepted a 63-byte signature")
	}
}

func TestBatchVerifyAllValid(t *testing.T) {
	c := newTestContext(t)
	var entries []BatchEntry
	for i := 0; i < 8; i++ {
		d, pub, err := c.GenerateKey()
		if err != nil {
			t.Fatalf("GenerateKey: %v", err)
		}
		msg := make([]byte, 32)
		msg[0] = byte(i)
		sig, err := c.Sign(d, msg, nil)
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}
		entries = append(entries, BatchEntry{Pubkey: pub, Message: msg, Signature: sig})
	}
	ok, invalid := c.VerifyBatch(entries)
	if !ok {
		t.Fatalf("VerifyBatch reported failure for an all-valid batch, invalid=%v", invalid)
	}
}

func TestBatchVerifyDetectsBadEntry(t *testing.T) {
	c := newTestContext(t)
	var entries []BatchEntry
	for i := 0; i < 5; i++ {
		d, pub, err := c.GenerateKey()
		if err != nil {
			t.Fatalf("GenerateKey: %v", err)
		}
		msg := make([]byte, 32)
		msg[0] = byte(i)
		sig, err := c.Sign(d, msg, nil)
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}
		if i == 2 {
			sig[0] ^= 0x01
		}
		entries = append(entries, BatchEntry{Pubkey: pub, Message: msg, Signature: sig})
	}
	ok, invalid := c.VerifyBatch(entries)
	if ok {
		t.Fatalf("VerifyBatch reported success despite a tampered entry")
	}
	found := false
	for _, idx := range invalid {
		if idx == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("VerifyBatch did not flag index 2, got %v", invalid)
	}
}

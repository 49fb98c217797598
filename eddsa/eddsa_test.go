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

package eddsa

import (
	"bytes"
	"testing"
)

var curveIDs = []string{"ED25519", "ED448", "ED1174"}

func newTestContext(t *testing.T, id string) *Context {
	t.Helper()
	c, err := NewContext(id)
	if err != nil {
		t.Fatalf("NewContext(%s): %v", id, err)
	}
	return c
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			k, err := c.GenerateKey()
			if err != nil {
				t.Fatalf("GenerateKey: %v", err)
			}
			msg := []byte("the quick brown fox jumps over the lazy dog")
			sig := c.Sign(k, msg)
			if err := c.Verify(k.Public, msg, sig); err != nil {
				t.Fatalf("Verify: %v", err)
			}
		})
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			k, err := c.GenerateKey()
			if err != nil {
				t.Fatalf("GenerateKey: %v", err)
			}
			msg := []byte("original message")
			sig := c.Sign(k, msg)
			if err := c.Verify(k.Public, []byte("tampered message"), sig); err == nil {
				t.Fatalf("Verify accepted a tampered message")
			}
		})
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			k, err := c.GenerateKey()
			if err != nil {
				t.Fatalf("GenerateKey: %v", err)
			}
			msg := []byte("message")
			sig := c.Sign(k, msg)
			tampered := append([]byte(nil), sig...)
			tampered[0] ^= 0x01
			if err := c.Verify(k.Public, msg, tampered); err == nil {
				t.Fatalf("Verify accepted a tampered signature")
			}
		})
	}
}

func TestNewKeyFromSeedDeterministic(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			seed := make([]byte, c.seedSize)
			for i := range seed {
				seed[i] = byte(i)
			}
			k1, err := c.NewKeyFromSeed(seed)
			if err != nil {
				t.Fatalf("NewKeyFromSeed: %v", err)
			}
			k2, err := c.NewKeyFromSeed(seed)
			if err != nil {
				t.Fatalf("NewKeyFromSeed: %v", err)
			}
			if !bytes.Equal(k1.Public, k2.Public) {
				t.Fatalf("same seed produced different public keys")
			}

			msg := []byte("deterministic")
			sig1 := c.Sign(k1, msg)
			sig2 := c.Sign(k2, msg)
			if !bytes.Equal(sig1, sig2) {
				t.Fatalf("pure EdDSA signing is not deterministic for a fixed seed")
			}
		})
	}
}

func TestBatchVerifyAllValid(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			var entries []BatchEntry
			for i := 0; i < 8; i++ {
				k, err := c.GenerateKey()
				if err != nil {
					t.Fatalf("GenerateKey: %v", err)
				}
				msg := []byte{byte(i), byte(i + 1)}
				sig := c.Sign(k, msg)
				entries = append(entries, BatchEntry{Public: k.Public, Message: msg, Signature: sig})
			}
			ok, invalid := c.VerifyBatch(entries)
			if !ok {
				t.Fatalf("VerifyBatch reported failure for an all-valid batch, invalid=%v", invalid)
			}
			if len(invalid) != 0 {
				t.Fatalf("VerifyBatch reported invalid indices %v for an all-valid batch", invalid)
			}
		})
	}
}

func TestBatchVerifyDetectsSingleBadEntry(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			var entries []BatchEntry
			for i := 0; i < 6; i++ {
				k, err := c.GenerateKey()
				if err != nil {
					t.Fatalf("GenerateKey: %v", err)
				}
				msg := []byte{byte(i)}
				sig := c.Sign(k, msg)
				if i == 3 {
					sig = append([]byte(nil), sig...)
					sig[0] ^= 0x01
				}
				entries = append(entries, BatchEntry{Public: k.Public, Message: msg, Signature: sig})
			}
			ok, invalid := c.VerifyBatch(entries)
			if ok {
				t.Fatalf("VerifyBatch reported success despite a tampered entry")
			}
			found := false
			for _, idx := range invalid {
				if idx == 3 {
					found = true
				}
			}
			if !found {
				t.Fatalf("VerifyBatch did not flag the tampered index 3, got %v", invalid)
			}
		})
	}
}

// TestSignEmptyMessage exercises the zero-length message edge case,
// which RFC 8032's own test vectors specifically cover.
func TestSignEmptyMessage(t *testing.T) {
	for _, id := range curveIDs {
		id := id
		t.Run(id, func(t *testing.T) {
			c := newTestContext(t, id)
			k, err := c.GenerateKey()
			if err != nil {
				t.Fatalf("GenerateKey: %v", err)
			}
			sig := c.Sign(k, nil)
			if err := c.Verify(k.Public, nil, sig); err != nil {
				t.Fatalf("Verify(empty message): %v", err)
			}
		})
	}
}

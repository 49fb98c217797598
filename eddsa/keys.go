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
	"crypto/rand"

	"github.com/nijynot/bcrypto/internal/dbg"
)

// PrivateKey is an expanded EdDSA private key: the original seed plus
// the derived (clamped scalar, nonce prefix) pair cached at
// generation time, mirroring the "expanded private key" private
// libsodium/ref10 implementations keep internally rather than
// re-hashing the seed on every Sign call.
type PrivateKey struct {
	ctx *Context

	Seed   []byte
	scalarBytes []byte // clamped, little-endian
	prefix []byte
	Public []byte
}

// GenerateKey creates a new random private key.
func (c *Context) GenerateKey() (*PrivateKey, error) {
	seed := make([]byte, c.seedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return c.NewKeyFromSeed(seed)
}

// NewKeyFromSeed expands a seed into a full private key per RFC 8032
// §5.1.5 step 1-3 / §5.2.5.
func (c *Context) NewKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != c.seedSize {
		return nil, ErrInvalidKey
	}
	wide := make([]byte, c.hashSize)
	c.hashAll(wide, seed)

	scalarBytes := make([]byte, c.seedSize)
	copy(scalarBytes, wide[:c.seedSize])
	c.clamp(scalarBytes)
	prefix := append([]byte(nil), wide[c.seedSize:]...)

	s := c.scalarFromWideBytes(leftPad(scalarBytes, c.hashSize))
	pub := c.ScalarBaseMult(s)
	encoded := pub.Encode()

	return &PrivateKey{
		ctx:         c,
		Seed:        append([]byte(nil), seed...),
		scalarBytes: scalarBytes,
		prefix:      prefix,
		Public:      encoded,
	}, nil
}

// leftPad right-pads (in little-endian terms, the high end) a
// clamped scalar out to the hash's word size so scalarFromWideBytes'
// big-endian flip lines up regardless of curve.
func leftPad(b []byte, size int) []byte {
	if len(b) == size {
		return b
	}
	out := make([]byte, size)
	copy(out, b)
	return out
}

// Zeroize scrubs the key material; callers that generate ephemeral
// EdDSA keys (e.g. inside a larger protocol) should call this once
// the key is no longer needed.
func (k *PrivateKey) Zeroize() {
	dbg.Zero(k.Seed)
	dbg.Zero(k.scalarBytes)
	dbg.Zero(k.prefix)
}

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

// Package drbg implements the HMAC-DRBG construction RFC 6979 uses to
// derive deterministic ECDSA nonces from the private key and message
// hash. No pack dependency exposes a standalone HMAC-DRBG (the closest,
// golang.org/x/crypto, carries HKDF and ChaCha20 DRBGs but not this
// one), so this is a deliberate, narrowly-scoped standard-library-only
// component built directly on crypto/hmac (see DESIGN.md).
package drbg

import (
	"crypto/hmac"
	"hash"
)

// HMACDRBG is the RFC 6979 §3.2 deterministic generator state (V, K).
type HMACDRBG struct {
	newHash func() hash.Hash
	k, v    []byte
}

// New seeds an HMAC-DRBG from the private key and message entropy per
// RFC 6979 §3.2 steps a-f. extra carries the optional additional data
// (empty for plain RFC 6979).
func New(newHash func() hash.Hash, key, msg, extra []byte) *HMACDRBG {
	hLen := newHash().Size()
	d := &HMACDRBG{newHash: newHash}
	d.v = bytesOf(0x01, hLen)
	d.k = bytesOf(0x00, hLen)

	d.update(key, msg, extra, 0x00)
	d.update(key, msg, extra, 0x01)
	return d
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func (d *HMACDRBG) update(key, msg, extra []byte, tag byte) {
	m := hmac.New(d.newHash, d.k)
	m.Write(d.v)
	m.Write([]byte{tag})
	m.Write(key)
	m.Write(msg)
	m.Write(extra)
	d.k = m.Sum(nil)

	m2 := hmac.New(d.newHash, d.k)
	m2.Write(d.v)
	d.v = m2.Sum(nil)
}

// Generate returns the next n bytes of output, per RFC 6979 §3.2 step
// h/g/h.
func (d *HMACDRBG) Generate(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		m := hmac.New(d.newHash, d.k)
		m.Write(d.v)
		d.v = m.Sum(nil)
		out = append(out, d.v...)
	}
	out = out[:n]

	m := hmac.New(d.newHash, d.k)
	m.Write(d.v)
	m.Write([]byte{0x00})
	d.k = m.Sum(nil)

	m2 := hmac.New(d.newHash, d.k)
	m2.Write(d.v)
	d.v = m2.Sum(nil)

	return out
}

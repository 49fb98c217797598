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

// Package eddsa implements EdDSA key generation, signing and
// verification (single and batch) over the three predefined
// twisted-Edwards curves. The key-schedule and domain-separated
// hashing pattern generalizes the usual single-curve construction to
// all three.
package eddsa

import (
	"crypto/sha512"
	"errors"
	"hash"
	"math/big"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/edwards"
	"github.com/nijynot/bcrypto/scalar"
	"golang.org/x/crypto/sha3"
)

// ErrInvalidSignature is returned by Verify (and the batch verifier)
// when a signature fails to validate.
var ErrInvalidSignature = errors.New("eddsa: invalid signature")

// ErrInvalidKey is returned when a seed or encoded key has the wrong
// length.
var ErrInvalidKey = errors.New("eddsa: invalid key encoding")

// Context bundles the Edwards group context with this curve's hash
// and clamping convention.
type Context struct {
	*edwards.Context

	seedSize int
	hashSize int
	newHash  func() hash.Hash // nil for SHAKE256-based curves (Ed448)
	shake    bool
	clampLowBits int
}

// NewContext builds the EdDSA specialization for a predefined
// twisted-Edwards identifier ("ED25519", "ED448", "ED1174").
func NewContext(id string) (*Context, error) {
	cc, err := curve.New(id)
	if err != nil {
		return nil, err
	}
	ec, err := edwards.NewContext(cc)
	if err != nil {
		return nil, err
	}
	c := &Context{Context: ec}

	switch id {
	case "ED25519":
		c.seedSize, c.hashSize = 32, 64
		c.newHash = sha512.New
		c.clampLowBits = 3
	case "ED448":
		c.seedSize, c.hashSize = 57, 114
		c.shake = true
		c.clampLowBits = 2
	case "ED1174":
		c.seedSize, c.hashSize = 32, 64
		c.newHash = sha512.New
		c.clampLowBits = 2
	default:
		return nil, errors.New("eddsa: unsupported curve " + id)
	}
	return c, nil
}

func (c *Context) hashAll(out []byte, parts ...[]byte) {
	if c.shake {
		sp := sha3.NewShake256()
		for _, p := range parts {
			sp.Write(p)
		}
		sp.Read(out)
		return
	}
	h := c.newHash()
	for _, p := range parts {
		h.Write(p)
	}
	copy(out, h.Sum(nil))
}

// dom returns the Ed448 domain-separation prefix (dom4) "SigEd448" ||
// octet(phflag) || octet(len(ctx)) || ctx, per RFC 8032 §5.2.3. It is
// empty for the two SHA-512-based curves, which use plain (unprefixed)
// hashing in the pure scheme this package implements.
func (c *Context) dom(ctx []byte) []byte {
	if !c.shake {
		return nil
	}
	d := make([]byte, 0, 10+len(ctx))
	d = append(d, []byte("SigEd448")...)
	d = append(d, 0x00, byte(len(ctx)))
	d = append(d, ctx...)
	return d
}

// clamp applies this curve's cofactor-clearing bit mask to a freshly
// hashed scalar, following RFC 8032's Ed25519/Ed448 clamp exactly and
// generalizing the same shape (clear the low log2(cofactor) bits,
// clear the top bit, set the next one) for Ed1174.
func (c *Context) clamp(s []byte) {
	n := len(s)
	s[0] &^= byte(1<<uint(c.clampLowBits) - 1)
	if c.shake {
		s[n-1] = 0
		s[n-2] |= 0x80
		return
	}
	s[n-1] &= 0x7f
	s[n-1] |= 0x40
}

func (c *Context) scalarFromWideBytes(wide []byte) *scalar.Scalar {
	v := new(big.Int).SetBytes(reverseBytes(wide))
	return importReduced(c.Sc, v)
}

func importReduced(f *scalar.Field, v *big.Int) *scalar.Scalar {
	raw := make([]byte, f.Size())
	vv := new(big.Int).Mod(v, f.N())
	bb := vv.Bytes()
	copy(raw[f.Size()-len(bb):], bb)
	s, ok := f.Import(raw)
	if !ok {
		panic("eddsa: scalar reduction invariant violated")
	}
	return s
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

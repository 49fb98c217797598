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

// Package schnorr implements the BIP-340 Schnorr signature scheme over
// SECP256K1: x-only public keys, single and batch verification.
package schnorr

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/scalar"
	"github.com/nijynot/bcrypto/wei"
)

// ErrInvalidSignature is returned by Verify/VerifyBatch on a malformed
// or non-validating signature.
var ErrInvalidSignature = errors.New("schnorr: invalid signature")

// ErrInvalidKey is returned when a public key fails x-only decoding.
var ErrInvalidKey = errors.New("schnorr: invalid public key")

// Context wires a SECP256K1 wei.Context to the BIP-340 tagged-hash
// construction.
type Context struct {
	*wei.Context
}

// NewContext builds the BIP-340 specialization; id must be SECP256K1,
// since the tagged-hash constants and x-only convention are specific
// to that curve's scheme.
func NewContext(id string) (*Context, error) {
	if id != "SECP256K1" {
		return nil, fmt.Errorf("schnorr: %s is not a BIP-340 curve", id)
	}
	cc, err := curve.New(id)
	if err != nil {
		return nil, err
	}
	wc, err := wei.NewContext(cc)
	if err != nil {
		return nil, err
	}
	return &Context{Context: wc}, nil
}

// taggedHash implements BIP-340's tagged_hash(tag, msg) construction.
func taggedHash(tag string, parts ...[]byte) []byte {
	tagHash := sha256.Sum256([]byte(tag))
	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// hasEvenY reports whether an affine point's y-coordinate is even, per
// BIP-340's has_even_y.
func hasEvenY(a *wei.Affine) bool {
	return a.YCoord().IsNegative() == 0
}

func (c *Context) challenge(rx, px, msg []byte) *scalar.Scalar {
	e := taggedHash("BIP0340/challenge", rx, px, msg)
	return c.Sc.ImportReduce(e)
}

func feToBig(e interface{ Bytes() []byte }) *big.Int {
	b := e.Bytes()
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

func xOnlyBytes(a *wei.Affine) []byte {
	b := feToBig(a.XCoord()).Bytes()
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

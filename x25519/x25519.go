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

// Package x25519 implements the X25519 Diffie-Hellman function of
// RFC 7748 over the generic Montgomery ladder in package mont.
package x25519

import (
	"crypto/rand"
	"errors"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/mont"
)

// Size is the byte length of a scalar or u-coordinate.
const Size = 32

// ErrInvalidInput is returned when a scalar or point encoding has the
// wrong length.
var ErrInvalidInput = errors.New("x25519: invalid input length")

var ctx *mont.Context

func init() {
	cc, err := curve.New("X25519")
	if err != nil {
		panic("x25519: " + err.Error())
	}
	mc, err := mont.NewContext(cc)
	if err != nil {
		panic("x25519: " + err.Error())
	}
	ctx = mc
}

// Clamp applies RFC 7748's X25519 bit-clearing to a raw 32-byte
// scalar in place.
func Clamp(k []byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// GenerateKey returns a freshly clamped random private scalar.
func GenerateKey() ([]byte, error) {
	k := make([]byte, Size)
	if _, err := rand.Read(k); err != nil {
		return nil, err
	}
	Clamp(k)
	return k, nil
}

// PublicKey computes the public u-coordinate for a clamped private
// scalar.
func PublicKey(priv []byte) ([]byte, error) {
	return Derive(priv, BasePoint())
}

// BasePoint returns the canonical encoding of the X25519 base point
// u = 9.
func BasePoint() []byte {
	return feToBytes(ctx.BaseU())
}

// Derive computes the X25519 shared secret scalar*point.
func Derive(priv, point []byte) ([]byte, error) {
	if len(priv) != Size || len(point) != Size {
		return nil, ErrInvalidInput
	}
	u, err := ctx.NewElement().SetBytes(point)
	if err != nil {
		return nil, err
	}
	out := ctx.Ladder(priv, u)
	return feToBytes(out), nil
}

func feToBytes(e interface{ Bytes() []byte }) []byte {
	b := e.Bytes()
	out := make([]byte, Size)
	copy(out, b)
	return out
}

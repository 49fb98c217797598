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

// Package ecdsa implements ECDSA sign/verify/recover and raw ECDH
// derive over the short-Weierstrass curves, with RFC 6979
// deterministic nonces via package drbg.
package ecdsa

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"hash"
	"math/big"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/scalar"
	"github.com/nijynot/bcrypto/wei"
)

// ErrInvalidSignature is returned by Verify/Recover on a malformed or
// non-validating signature.
var ErrInvalidSignature = errors.New("ecdsa: invalid signature")

// Context wires a wei.Context to the hash function used for RFC 6979
// nonce derivation and message digest truncation.
type Context struct {
	*wei.Context

	newHash func() hash.Hash
}

// NewContext builds the ECDSA specialization for a predefined
// short-Weierstrass identifier.
func NewContext(id string) (*Context, error) {
	cc, err := curve.New(id)
	if err != nil {
		return nil, err
	}
	wc, err := wei.NewContext(cc)
	if err != nil {
		return nil, err
	}
	c := &Context{Context: wc}
	switch cc.Params.HashName {
	case "SHA-224":
		c.newHash = sha256.New224
	case "SHA-256":
		c.newHash = sha256.New
	case "SHA-384":
		c.newHash = sha512.New384
	default:
		c.newHash = sha512.New
	}
	return c, nil
}

// GenerateKey returns a fresh random private scalar and its public
// point.
func (c *Context) GenerateKey() (*scalar.Scalar, *wei.Affine, error) {
	d, err := c.Sc.Random(nil)
	if err != nil {
		return nil, nil, err
	}
	Q := c.ScalarBaseMult(d).ToAffine()
	return d, Q, nil
}

func feToBig(e interface{ Bytes() []byte }) *big.Int {
	b := e.Bytes()
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

// bits2int implements RFC 6979 §2.3.2: interpret a hash as an integer
// and, if it is wider than the group order, right-shift to compensate
// (rather than mod-reduce it, per the RFC's precise definition).
func bits2int(h []byte, qBits int) *big.Int {
	x := new(big.Int).SetBytes(h)
	hBits := len(h) * 8
	if hBits > qBits {
		x.Rsh(x, uint(hBits-qBits))
	}
	return x
}

func importReducedBig(f *scalar.Field, v *big.Int) *scalar.Scalar {
	return f.ImportReduce(v.Bytes())
}

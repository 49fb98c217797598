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
	"crypto/rand"
	"errors"

	"github.com/nijynot/bcrypto/scalar"
)

// ErrSigningFailed is returned by Sign on the (cryptographically
// negligible) event that the derived nonce is zero.
var ErrSigningFailed = errors.New("schnorr: nonce derivation failed")

// GenerateKey returns a fresh random private scalar and its x-only
// public key encoding.
func (c *Context) GenerateKey() (*scalar.Scalar, []byte, error) {
	d, err := c.Sc.Random(nil)
	if err != nil {
		return nil, nil, err
	}
	P := c.ScalarBaseMult(d).ToAffine()
	return d, xOnlyBytes(P), nil
}

// Sign produces a 64-byte BIP-340 signature over msg. auxRand may be
// nil, in which case 32 bytes of fresh randomness are used.
func (c *Context) Sign(d *scalar.Scalar, msg, auxRand []byte) ([]byte, error) {
	if auxRand == nil {
		auxRand = make([]byte, 32)
		if _, err := rand.Read(auxRand); err != nil {
			return nil, err
		}
	}

	P := c.ScalarBaseMult(d).ToAffine()
	dPrime := d
	if !hasEvenY(P) {
		dPrime = c.Sc.New().Neg(d)
	}
	px := xOnlyBytes(P)

	t := make([]byte, 32)
	aux := taggedHash("BIP0340/aux", auxRand)
	dBytes := dPrime.Bytes()
	for i := range t {
		t[i] = dBytes[i] ^ aux[i]
	}

	randBytes := taggedHash("BIP0340/nonce", t, px, msg)
	kPrime := c.Sc.ImportReduce(randBytes)
	if kPrime.IsZero() {
		return nil, ErrSigningFailed
	}

	R := c.ScalarBaseMult(kPrime).ToAffine()
	k := kPrime
	if !hasEvenY(R) {
		k = c.Sc.New().Neg(kPrime)
	}
	rx := xOnlyBytes(R)

	e := c.challenge(rx, px, msg)
	ed := c.Sc.New().Mul(e, dPrime)
	s := c.Sc.New().Add(k, ed)

	sig := make([]byte, 64)
	copy(sig[:32], rx)
	copy(sig[32:], s.Bytes())
	return sig, nil
}

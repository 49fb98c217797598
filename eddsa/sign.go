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

// Sign produces a detached EdDSA signature over msg with an empty
// context string, per RFC 8032's pure Ed25519/Ed448 schemes.
func (c *Context) Sign(k *PrivateKey, msg []byte) []byte {
	return c.SignCtx(k, msg, nil)
}

// SignCtx produces a detached signature with an explicit context
// string. Only Ed448 uses ctx (it always hashes the dom4 prefix, even
// for an empty ctx); on Ed25519 and Ed1174 ctx is ignored and no
// domain prefix is hashed, so the result equals Sign's.
func (c *Context) SignCtx(k *PrivateKey, msg, ctx []byte) []byte {
	dom := c.dom(ctx)

	rWide := make([]byte, c.hashSize)
	c.hashAll(rWide, dom, k.prefix, msg)
	r := c.scalarFromWideBytes(rWide)

	R := c.ScalarBaseMult(r)
	Renc := R.Encode()

	kWide := make([]byte, c.hashSize)
	c.hashAll(kWide, dom, Renc, k.Public, msg)
	kScalar := c.scalarFromWideBytes(kWide)

	s := c.scalarFromWideBytes(leftPad(k.scalarBytes, c.hashSize))

	ks := c.Sc.New().Mul(kScalar, s)
	S := c.Sc.New().Add(r, ks)

	sz := c.seedSize
	out := make([]byte, 2*sz)
	copy(out[:sz], Renc)
	copy(out[sz:], S.BytesLE())
	return out
}

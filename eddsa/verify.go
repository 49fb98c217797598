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

import "github.com/nijynot/bcrypto/edwards"

// Verify checks a detached signature produced by Sign (empty context,
// non-cofactored equation), per RFC 8032's pure scheme.
func (c *Context) Verify(pub, msg, sig []byte) error {
	return c.VerifyCtx(pub, msg, sig, nil, false)
}

// VerifyCtx checks sig over msg under pub with an explicit context
// string (used on Ed448 only; ignored on Ed25519 and Ed1174, as in
// SignCtx), optionally using the cofactored verification equation
// (h*S*B == h*R + h*k*A) that accepts small-subgroup-contaminated
// points a plain check would reject.
func (c *Context) VerifyCtx(pub, msg, sig, ctx []byte, cofactored bool) error {
	sz := c.seedSize
	if len(sig) != 2*sz {
		return ErrInvalidSignature
	}
	Renc := sig[:sz]
	Sraw := reverseBytes(sig[sz:])

	S, ok := c.Sc.Import(Sraw)
	if !ok {
		return ErrInvalidSignature
	}
	R, err := c.Decode(Renc)
	if err != nil {
		return ErrInvalidSignature
	}
	A, err := c.Decode(pub)
	if err != nil {
		return ErrInvalidSignature
	}

	dom := c.dom(ctx)
	kWide := make([]byte, c.hashSize)
	c.hashAll(kWide, dom, Renc, pub, msg)
	k := c.scalarFromWideBytes(kWide)

	lhs := c.ScalarBaseMult(S)
	rhs := c.Add(R, c.ScalarMultVar(k, A))

	if cofactored {
		lhs = c.cofactorMul(lhs)
		rhs = c.cofactorMul(rhs)
	}

	if !c.EqualVar(lhs, rhs) {
		return ErrInvalidSignature
	}
	return nil
}

func (c *Context) cofactorMul(p *edwards.Point) *edwards.Point {
	h := c.Params.H
	for h > 1 {
		p = c.Dbl(p)
		h >>= 1
	}
	return p
}

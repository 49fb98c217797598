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

package ecdsa

import (
	"github.com/nijynot/bcrypto/internal/der"
	"github.com/nijynot/bcrypto/scalar"
	"github.com/nijynot/bcrypto/wei"
)

// EncodeDER serializes sig as a DER SEQUENCE { INTEGER r, INTEGER s },
// the wire format used by TLS, X.509, and most ECDSA interop.
func (sig *Signature) EncodeDER() []byte {
	return der.EncodeSignature(sig.R.Bytes(), sig.S.Bytes())
}

// DecodeDER parses a DER-encoded ECDSA signature for this curve's
// scalar width into r, s scalars reduced into the group's field via
// ImportReduce, matching the tolerance most ECDSA verifiers give an
// out-of-range DER integer.
func (c *Context) DecodeDER(b []byte) (*Signature, error) {
	rb, sb, err := der.ParseSignature(b, c.Sc.Size())
	if err != nil {
		return nil, err
	}
	return &Signature{R: c.Sc.ImportReduce(rb), S: c.Sc.ImportReduce(sb)}, nil
}

// SignDER is Sign followed by DER encoding of the result.
func (c *Context) SignDER(priv *scalar.Scalar, hash []byte) ([]byte, error) {
	sig, err := c.Sign(priv, hash)
	if err != nil {
		return nil, err
	}
	return sig.EncodeDER(), nil
}

// VerifyDER decodes a DER-encoded signature and verifies it per
// Verify, rejecting malformed encodings.
func (c *Context) VerifyDER(pub *wei.Affine, hash []byte, derSig []byte) bool {
	sig, err := c.DecodeDER(derSig)
	if err != nil {
		return false
	}
	return c.Verify(pub, hash, sig)
}

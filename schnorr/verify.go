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

// Verify checks a 64-byte BIP-340 signature over msg against a 32-byte
// x-only public key.
func (c *Context) Verify(pubkey, msg, sig []byte) bool {
	if len(pubkey) != 32 || len(sig) != 64 {
		return false
	}
	P, err := c.ImportX(pubkey)
	if err != nil {
		return false
	}

	rx := sig[:32]
	s, ok := c.Sc.Import(sig[32:])
	if !ok {
		return false
	}
	rFE, err := c.NewElement().SetBytes(reverseBytes(rx))
	if err != nil {
		return false
	}
	rVal := feToBig(rFE)

	e := c.challenge(rx, pubkey, msg)
	negE := c.Sc.New().Neg(e)

	R := c.DoubleScalarMultVar(s, c.Generator(), negE, c.FromAffine(P))
	if R.IsIdentity() == 1 {
		return false
	}
	Ra := R.ToAffine()
	if !hasEvenY(Ra) {
		return false
	}
	return feToBig(Ra.XCoord()).Cmp(rVal) == 0
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

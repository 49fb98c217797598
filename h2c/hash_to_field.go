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

package h2c

import (
	"hash"
	"math/big"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/field"
	"golang.org/x/crypto/sha3"
)

// securityBytes is the extra length folded into each hash_to_field
// output per RFC 9380 §5.2 (k/8 for a k=128-bit security target),
// added before reducing modulo the field prime so the result is
// statistically close to uniform.
const securityBytes = 16

// hashToField implements RFC 9380 §5.2's hash_to_field for a prime
// field, returning count field elements derived from msg.
func hashToField(cc *curve.Context, newHash func() hash.Hash, dst, msg []byte, count int) ([]field.Element, error) {
	l := cc.Params.ByteSize + securityBytes
	out := make([]byte, l*count)
	if err := ExpandMessageXMD(out, newHash, dst, msg); err != nil {
		return nil, err
	}

	els := make([]field.Element, count)
	for i := 0; i < count; i++ {
		chunk := out[i*l : (i+1)*l]
		v := new(big.Int).SetBytes(chunk)
		els[i] = cc.FEFromBig(v)
	}
	return els, nil
}

// hashToFieldXOF is hashToField's SHAKE256 counterpart for the
// Curve448/Ed448 suites.
func hashToFieldXOF(cc *curve.Context, newXOF func() sha3.ShakeHash, dst, msg []byte, count int) ([]field.Element, error) {
	l := cc.Params.ByteSize + securityBytes
	out := make([]byte, l*count)
	if err := ExpandMessageXOF(out, newXOF, dst, msg); err != nil {
		return nil, err
	}

	els := make([]field.Element, count)
	for i := 0; i < count; i++ {
		chunk := out[i*l : (i+1)*l]
		v := new(big.Int).SetBytes(chunk)
		els[i] = cc.FEFromBig(v)
	}
	return els, nil
}

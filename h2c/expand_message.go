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

// Package h2c implements curve-generic hashing to elliptic curves
// (RFC 9380) over the Edwards and Montgomery groups: Elligator 2
// field-to-curve mapping plus expand_message_xmd.
package h2c

import (
	"encoding/binary"
	"errors"
	"hash"

	"golang.org/x/crypto/sha3"
)

// ErrExpandTooLong is returned when the requested output is too long
// for the wrapped hash function, per RFC 9380 §5.3.1's bound.
var ErrExpandTooLong = errors.New("h2c: requested length exceeds expand_message_xmd bound")

// ExpandMessageXMD implements RFC 9380 §5.3.1 over an arbitrary
// standard-library hash.Hash constructor.
func ExpandMessageXMD(out []byte, newHash func() hash.Hash, dst, msg []byte) error {
	hLen := newHash().Size()
	bLen := newHash().BlockSize()
	n := len(out)
	ell := (n + hLen - 1) / hLen
	if ell > 255 || n > 65535 || len(dst) > 255 {
		return ErrExpandTooLong
	}

	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))

	zPad := make([]byte, bLen)
	lIBStr := make([]byte, 2)
	binary.BigEndian.PutUint16(lIBStr, uint16(n))

	h0 := newHash()
	h0.Write(zPad)
	h0.Write(msg)
	h0.Write(lIBStr)
	h0.Write([]byte{0x00})
	h0.Write(dstPrime)
	b0 := h0.Sum(nil)

	h1 := newHash()
	h1.Write(b0)
	h1.Write([]byte{0x01})
	h1.Write(dstPrime)
	bPrev := h1.Sum(nil)

	uniform := make([]byte, 0, ell*hLen)
	uniform = append(uniform, bPrev...)
	for i := 2; i <= ell; i++ {
		xored := make([]byte, hLen)
		for j := range xored {
			xored[j] = b0[j] ^ bPrev[j]
		}
		hi := newHash()
		hi.Write(xored)
		hi.Write([]byte{byte(i)})
		hi.Write(dstPrime)
		bPrev = hi.Sum(nil)
		uniform = append(uniform, bPrev...)
	}

	copy(out, uniform[:n])
	return nil
}

// ExpandMessageXOF implements RFC 9380 §5.3.2 over an extendable-output
// function, used for the Curve448/Ed448 suites (SHAKE256) where the
// XMD construction's fixed-output hash does not apply.
func ExpandMessageXOF(out []byte, newXOF func() sha3.ShakeHash, dst, msg []byte) error {
	if len(dst) > 255 {
		return ErrExpandTooLong
	}
	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))

	lIBStr := make([]byte, 2)
	binary.BigEndian.PutUint16(lIBStr, uint16(len(out)))

	x := newXOF()
	x.Write(msg)
	x.Write(lIBStr)
	x.Write(dstPrime)
	_, err := x.Read(out)
	return err
}

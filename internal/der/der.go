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

// Package der implements the minimal subset of DER needed to encode
// and decode an ECDSA signature as SEQUENCE { INTEGER r, INTEGER s }.
// No pack dependency exposes a curve-agnostic ASN.1 integer pair
// codec standalone from a full X.509/TLS stack, so this is a
// deliberate, narrowly-scoped standard-library-only component (see
// DESIGN.md).
package der

import "errors"

// ErrMalformed is returned by ParseSignature for any structurally
// invalid input.
var ErrMalformed = errors.New("der: malformed signature")

// EncodeSignature serializes (r, s) as a minimal DER SEQUENCE of two
// INTEGERs.
func EncodeSignature(r, s []byte) []byte {
	ri := encodeInteger(r)
	si := encodeInteger(s)
	body := append(append([]byte{}, ri...), si...)
	return append(encodeLengthTag(0x30, len(body)), body...)
}

func encodeInteger(v []byte) []byte {
	// strip leading zero bytes, then re-add one if the high bit is set
	// (DER INTEGER is signed, and these are unsigned magnitudes).
	i := 0
	for i < len(v)-1 && v[i] == 0 {
		i++
	}
	v = v[i:]
	if len(v) == 0 {
		v = []byte{0}
	}
	if v[0]&0x80 != 0 {
		v = append([]byte{0}, v...)
	}
	return append(encodeLengthTag(0x02, len(v)), v...)
}

func encodeLengthTag(tag byte, n int) []byte {
	if n < 0x80 {
		return []byte{tag, byte(n)}
	}
	var lenBytes []byte
	for n > 0 {
		lenBytes = append([]byte{byte(n & 0xff)}, lenBytes...)
		n >>= 8
	}
	return append([]byte{tag, 0x80 | byte(len(lenBytes))}, lenBytes...)
}

// ParseSignature decodes a DER-encoded ECDSA signature into fixed-width
// big-endian r, s padded/truncated to size bytes each.
func ParseSignature(b []byte, size int) (r, s []byte, err error) {
	rest, tag, body, err := readTLV(b)
	if err != nil || tag != 0x30 || len(rest) != 0 {
		return nil, nil, ErrMalformed
	}
	body, rTag, rv, err := readTLV(body)
	if err != nil || rTag != 0x02 {
		return nil, nil, ErrMalformed
	}
	_, sTag, sv, err := readTLV(body)
	if err != nil || sTag != 0x02 {
		return nil, nil, ErrMalformed
	}
	return fitInt(rv, size), fitInt(sv, size), nil
}

func fitInt(v []byte, size int) []byte {
	for len(v) > 0 && v[0] == 0 && len(v) > size {
		v = v[1:]
	}
	out := make([]byte, size)
	if len(v) > size {
		copy(out, v[len(v)-size:])
		return out
	}
	copy(out[size-len(v):], v)
	return out
}

// readTLV reads one tag-length-value element, returning the remaining
// bytes after it, the tag, and the value.
func readTLV(b []byte) (rest []byte, tag byte, value []byte, err error) {
	if len(b) < 2 {
		return nil, 0, nil, ErrMalformed
	}
	tag = b[0]
	ln := int(b[1])
	off := 2
	if ln&0x80 != 0 {
		nBytes := ln &^ 0x80
		if nBytes == 0 || nBytes > 4 || len(b) < 2+nBytes {
			return nil, 0, nil, ErrMalformed
		}
		ln = 0
		for i := 0; i < nBytes; i++ {
			ln = ln<<8 | int(b[2+i])
		}
		off = 2 + nBytes
	}
	if len(b) < off+ln {
		return nil, 0, nil, ErrMalformed
	}
	return b[off+ln:], tag, b[off : off+ln], nil
}

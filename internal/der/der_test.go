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

package der

import (
	"bytes"
	"testing"
)

func TestEncodeSignatureRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		r, s []byte
		size int
	}{
		{"small values", append(make([]byte, 31), 0x01), append(make([]byte, 31), 0x02), 32},
		{"zero values", make([]byte, 32), make([]byte, 32), 32},
		{"high bit set", bytes.Repeat([]byte{0xff}, 32), bytes.Repeat([]byte{0x80}, 32), 32},
		{"leading zeros", append(make([]byte, 16), bytes.Repeat([]byte{0x01}, 16)...), make([]byte, 32), 32},
		{"p384 width", bytes.Repeat([]byte{0x42}, 48), bytes.Repeat([]byte{0x99}, 48), 48},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enc := EncodeSignature(tc.r, tc.s)
			r, s, err := ParseSignature(enc, tc.size)
			if err != nil {
				t.Fatalf("ParseSignature: %v", err)
			}
			if !bytes.Equal(r, tc.r) {
				t.Errorf("r = %x, want %x", r, tc.r)
			}
			if !bytes.Equal(s, tc.s) {
				t.Errorf("s = %x, want %x", s, tc.s)
			}
		})
	}
}

func TestParseSignatureMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"truncated", []byte{0x30, 0x06, 0x02, 0x01, 0x01}},
		{"wrong outer tag", []byte{0x31, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}},
		{"wrong inner tag", []byte{0x30, 0x06, 0x03, 0x01, 0x01, 0x02, 0x01, 0x02}},
		{"trailing garbage", append(EncodeSignature([]byte{1}, []byte{2}), 0xff)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := ParseSignature(tc.in, 32); err != ErrMalformed {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestEncodeIntegerMinimal(t *testing.T) {
	// A single zero byte of r must not grow the encoding beyond what's
	// needed to disambiguate sign.
	enc := EncodeSignature([]byte{0x00}, []byte{0x01})
	want := []byte{0x30, 0x06, 0x02, 0x01, 0x00, 0x02, 0x01, 0x01}
	if !bytes.Equal(enc, want) {
		t.Fatalf("EncodeSignature({0}, {1}) = %x, want %x", enc, want)
	}
}

func TestFitIntOversizeInput(t *testing.T) {
	// An r value wider than size (e.g. a 33-byte positive integer with
	// a leading 0x00 sign byte) must be reduced to exactly size bytes.
	wide := append([]byte{0x00}, bytes.Repeat([]byte{0xaa}, 32)...)
	enc := EncodeSignature(wide, []byte{0x01})
	r, _, err := ParseSignature(enc, 32)
	if err != nil {
		t.Fatalf("ParseSignature: %v", err)
	}
	if len(r) != 32 || !bytes.Equal(r, bytes.Repeat([]byte{0xaa}, 32)) {
		t.Fatalf("r = %x, want 32 bytes of 0xaa", r)
	}
}

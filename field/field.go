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

// Package field defines the per-curve prime-field backend contract
// that the rest of the curve engine treats as an external collaborator,
// plus the small set of constant-time helpers derived from it (equality,
// odd-test, conditional select, square-root recovery).
//
// Every curve in the engine is wired to exactly one concrete backend, so
// a Context never mixes Element implementations: the interface plays
// the role the C source gives a per-curve function-pointer vtable.
package field

import "errors"

// ErrInvalidLength is returned when a byte string has the wrong length
// for the field's canonical encoding.
var ErrInvalidLength = errors.New("field: invalid encoding length")

// ErrNotInField is returned when a decoded integer is not reduced modulo
// the field prime.
var ErrNotInField = errors.New("field: value not reduced")

// Element is a single element of a prime field GF(p). All arithmetic
// methods follow the alias-safe, receiver-is-output convention of
// filippo.io/edwards25519/field.Element: the receiver is overwritten
// with the result and returned, and the receiver may alias any
// argument.
//
// Implementations MUST NOT branch or index memory on the value of a
// field element; the only permitted variable-time step is in routines
// explicitly named with a "Var" suffix elsewhere in the engine.
type Element interface {
	// Zero sets the receiver to 0 and returns it.
	Zero() Element
	// One sets the receiver to 1 and returns it.
	One() Element
	// Set copies a into the receiver.
	Set(a Element) Element
	// SetUint64 sets the receiver to the (small, public) value x.
	SetUint64(x uint64) Element
	// SetBytes decodes the curve's canonical little-endian encoding of
	// a field element. Returns ErrInvalidLength or ErrNotInField on
	// failure; the receiver is left unmodified on error.
	SetBytes(b []byte) (Element, error)
	// Bytes returns the canonical little-endian encoding.
	Bytes() []byte

	Add(a, b Element) Element
	Subtract(a, b Element) Element
	Negate(a Element) Element
	Multiply(a, b Element) Element
	Square(a Element) Element
	// Invert sets the receiver to 1/a and returns (receiver, 1) if a is
	// nonzero, or (receiver set to 0, 0) if a is zero.
	Invert(a Element) (Element, int)
	// Sqrt sets the receiver to a square root of a, if one exists, and
	// returns (receiver, 1); otherwise the receiver is left in an
	// unspecified state and (receiver, 0) is returned.
	Sqrt(a Element) (Element, int)
	// Pow sets the receiver to a^e where e is a big-endian exponent.
	Pow(a Element, e []byte) Element

	// Equal returns 1 if the receiver equals a, 0 otherwise.
	Equal(a Element) int
	// IsZero returns 1 if the receiver is zero.
	IsZero() int
	// IsNegative returns the least significant bit of the canonical
	// representative (the "odd" test used for sign recovery).
	IsNegative() int
	// Select sets the receiver to a if cond == 1, to b if cond == 0.
	Select(a, b Element, cond int) Element
	// CondNegate negates the receiver in place iff cond == 1.
	CondNegate(cond int) Element

	// New returns a new, independent zero-valued Element of the same
	// concrete backend, so callers can build scratch variables without
	// knowing which curve family they are working over.
	New() Element
}

// BytesEqual is a small constant-time helper mirroring
// crypto/subtle.ConstantTimeCompare that callers use when comparing
// encoded field elements rather than the decoded form.
func BytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}

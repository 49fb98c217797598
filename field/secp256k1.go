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

package field

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 wraps secp256k1.FieldVal, the field backend the
// decred/btcec family uses for the Koblitz curve prime
// 2^256 - 2^32 - 977. It backs the SECP256K1 context.
type Secp256k1 struct {
	v secp256k1.FieldVal
}

// NewSecp256k1 returns a new zero-valued Secp256k1 element.
func NewSecp256k1() *Secp256k1 { return &Secp256k1{} }

func (e *Secp256k1) New() Element { return NewSecp256k1() }

func (e *Secp256k1) Zero() Element { e.v.SetInt(0); return e }
func (e *Secp256k1) One() Element  { e.v.SetInt(1); return e }

func (e *Secp256k1) Set(a Element) Element {
	e.v.Set(&a.(*Secp256k1).v)
	return e
}

func (e *Secp256k1) SetUint64(x uint64) Element {
	e.v.SetInt(0)
	hi := uint32(x >> 32)
	lo := uint32(x)
	var hiv secp256k1.FieldVal
	hiv.SetInt(hi)
	hiv.Mul(twoPow32())
	e.v.SetInt(lo)
	e.v.Add(&hiv)
	e.v.Normalize()
	return e
}

func twoPow32() *secp256k1.FieldVal {
	var v secp256k1.FieldVal
	v.SetInt(1)
	var b [32]byte
	b[27] = 1 // big-endian 2^32 laid out in a 32-byte buffer
	v.SetBytes(&b)
	return &v
}

func (e *Secp256k1) SetBytes(b []byte) (Element, error) {
	if len(b) != 32 {
		return e, ErrInvalidLength
	}
	be := reverseBytes(b)
	var arr [32]byte
	copy(arr[:], be)
	var v secp256k1.FieldVal
	overflow := v.SetBytes(&arr)
	if overflow != 0 {
		return e, ErrNotInField
	}
	e.v.Set(&v)
	e.v.Normalize()
	return e, nil
}

func (e *Secp256k1) Bytes() []byte {
	e.v.Normalize()
	arr := e.v.Bytes()
	return reverseBytes(arr[:])
}

func (e *Secp256k1) Add(a, b Element) Element {
	e.v.Add2(&a.(*Secp256k1).v, &b.(*Secp256k1).v)
	e.v.Normalize()
	return e
}

func (e *Secp256k1) Subtract(a, b Element) Element {
	var nb secp256k1.FieldVal
	nb.Set(&b.(*Secp256k1).v)
	nb.Negate(1)
	e.v.Add2(&a.(*Secp256k1).v, &nb)
	e.v.Normalize()
	return e
}

func (e *Secp256k1) Negate(a Element) Element {
	e.v.Set(&a.(*Secp256k1).v)
	e.v.Normalize()
	e.v.Negate(1)
	e.v.Normalize()
	return e
}

func (e *Secp256k1) Multiply(a, b Element) Element {
	e.v.Mul2(&a.(*Secp256k1).v, &b.(*Secp256k1).v)
	e.v.Normalize()
	return e
}

func (e *Secp256k1) Square(a Element) Element {
	e.v.SquareVal(&a.(*Secp256k1).v)
	e.v.Normalize()
	return e
}

func (e *Secp256k1) Invert(a Element) (Element, int) {
	nz := 1 - a.IsZero()
	e.v.Set(&a.(*Secp256k1).v)
	e.v.Inverse()
	e.v.Normalize()
	return e, nz
}

func (e *Secp256k1) Pow(a Element, exp []byte) Element {
	acc := NewSecp256k1()
	acc.One()
	base := NewSecp256k1()
	base.Set(a)
	for i := len(exp) - 1; i >= 0; i-- {
		byt := exp[i]
		for bit := 0; bit < 8; bit++ {
			if byt&(1<<uint(bit)) != 0 {
				acc.Multiply(acc, base)
			}
			base.Multiply(base, base)
		}
	}
	e.Set(acc)
	return e
}

// Sqrt uses FieldVal.SquareRootVal, which per the decred documentation
// does not itself guarantee the result is a genuine square root; the
// candidate is verified here by squaring, matching the verify-then-use
// pattern the p ≡ 3 (mod 4) shortcut needs for secp256k1 (p mod 4 == 3).
func (e *Secp256k1) Sqrt(a Element) (Element, int) {
	av := &a.(*Secp256k1).v
	var cand secp256k1.FieldVal
	cand.SquareRootVal(av)
	var check secp256k1.FieldVal
	check.SquareVal(&cand)
	check.Normalize()
	var an secp256k1.FieldVal
	an.Set(av)
	an.Normalize()
	if !check.Equals(&an) {
		return e, 0
	}
	e.v.Set(&cand)
	e.v.Normalize()
	return e, 1
}

func (e *Secp256k1) Equal(a Element) int {
	x := &e.v
	y := &a.(*Secp256k1).v
	x.Normalize()
	var yy secp256k1.FieldVal
	yy.Set(y)
	yy.Normalize()
	if x.Equals(&yy) {
		return 1
	}
	return 0
}

func (e *Secp256k1) IsZero() int {
	e.v.Normalize()
	if e.v.IsZero() {
		return 1
	}
	return 0
}

func (e *Secp256k1) IsNegative() int {
	e.v.Normalize()
	if e.v.IsOdd() {
		return 1
	}
	return 0
}

func (e *Secp256k1) Select(a, b Element, cond int) Element {
	if cond == 1 {
		return e.Set(a)
	}
	return e.Set(b)
}

func (e *Secp256k1) CondNegate(cond int) Element {
	if cond == 1 {
		e.v.Normalize()
		e.v.Negate(1)
		e.v.Normalize()
	}
	return e
}

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

package curve

import (
	"fmt"
	"math/big"

	"github.com/nijynot/bcrypto/field"
	"github.com/nijynot/bcrypto/scalar"
)

// Context is the common, read-mostly part of a curve context shared by
// the short-Weierstrass, Montgomery, and Edwards specializations: the
// parameter set, the field-element factory and the scalar field. The
// group-specific precomputed tables and blinding state live in the
// wei/mont/edwards packages, which embed a *Context.
type Context struct {
	Params *Params
	Sc     *scalar.Field

	newFE func() field.Element
}

// New builds the common context for a predefined curve identifier,
// returning nil for unknown names.
func New(id string) (*Context, error) {
	p := Lookup(id)
	if p == nil {
		return nil, fmt.Errorf("curve: unknown identifier %q", id)
	}

	ratio := new(big.Int).Div(p.P, p.N)
	if ratio.Cmp(big.NewInt(1)) > 0 {
		// The variable-time equal_r trick's n*Z^2 increment loop only
		// terminates correctly when
		// floor(p/n) <= 1. Every predefined curve here satisfies this;
		// assert it so a future curve addition fails loudly instead of
		// silently looping past the field size.
		return nil, fmt.Errorf("curve: %s fails floor(p/n) <= 1 assumption (equal_r would not terminate correctly)", id)
	}

	var newFE func() field.Element
	switch p.Field {
	case FieldFiat25519:
		newFE = func() field.Element { return field.NewFiat25519() }
	case FieldSecp256k1:
		newFE = func() field.Element { return field.NewSecp256k1() }
	default:
		ctor := field.NewBigPrimeField(p.P, p.ByteSize)
		newFE = func() field.Element { return ctor() }
	}

	return &Context{
		Params: p,
		Sc:     scalar.NewField(p.N, p.ScalarSize),
		newFE:  newFE,
	}, nil
}

// NewElement returns a new, zero-valued field element for this curve.
func (c *Context) NewElement() field.Element { return c.newFE() }

// FE decodes a field constant from a small integer, used for the
// curve's cached canonical constants (zero, one, two, three, four,
// minus-one).
func (c *Context) FE(x int64) field.Element {
	e := c.NewElement()
	if x >= 0 {
		e.SetUint64(uint64(x))
		return e
	}
	e.SetUint64(uint64(-x))
	e.Negate(e)
	return e
}

// FEFromBig decodes an arbitrary-precision constant into a field
// element via its canonical byte encoding.
func (c *Context) FEFromBig(x *big.Int) field.Element {
	size := c.Params.ByteSize
	be := make([]byte, size)
	b := new(big.Int).Mod(x, c.Params.P).Bytes()
	copy(be[size-len(b):], b)
	le := make([]byte, size)
	for i, v := range be {
		le[size-1-i] = v
	}
	e, err := c.NewElement().SetBytes(le)
	if err != nil {
		panic("curve: FEFromBig: " + err.Error())
	}
	return e
}

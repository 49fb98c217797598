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

// Package mont implements the Montgomery-form group (X25519/X448):
// the projective x,z ladder, constant-time conditional swap, and
// u-coordinate-only scalar multiplication.
package mont

import (
	"math/big"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/field"
)

// Context wires a curve.Context to the Montgomery ladder: the curve
// coefficient a24 = (A+2)/4 used by the ladder's doubling step, and
// the u-coordinate of the base point.
type Context struct {
	*curve.Context

	a24 field.Element
	gu  field.Element
}

// NewContext builds the Montgomery specialization of cc.
func NewContext(cc *curve.Context) (*Context, error) {
	c := &Context{Context: cc}

	a := cc.Params.A
	aPlus2 := new(big.Int).Add(a, big.NewInt(2))
	four := big.NewInt(4)
	fourInv := new(big.Int).ModInverse(four, cc.Params.P)
	a24v := new(big.Int).Mul(aPlus2, fourInv)
	a24v.Mod(a24v, cc.Params.P)
	c.a24 = cc.FEFromBig(a24v)

	c.gu = cc.FEFromBig(cc.Params.Gx)
	return c, nil
}

// BaseU returns the u-coordinate of the base point.
func (c *Context) BaseU() field.Element { return c.gu }

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

// Package edwards implements the twisted-Edwards group (Ed25519,
// Ed448, Ed1174): extended homogeneous coordinates, unified constant-
// time addition, and point decode/encode.
package edwards

import (
	"errors"

	"github.com/nijynot/bcrypto/curve"
	"github.com/nijynot/bcrypto/field"
)

// ErrInvalidPoint is returned by Decode when the encoding is malformed
// or the recovered point fails the on-curve check.
var ErrInvalidPoint = errors.New("edwards: invalid point encoding")

// Context wires a curve.Context to the twisted-Edwards group law:
// a*x^2 + y^2 = 1 + d*x^2*y^2.
type Context struct {
	*curve.Context

	a, d field.Element
	aIsMinus1 bool

	g *Point

	fixedTable [][16]*Point
	fixedWindows int
}

// NewContext builds the Edwards specialization of cc.
func NewContext(cc *curve.Context) (*Context, error) {
	c := &Context{Context: cc}
	c.a = cc.FEFromBig(cc.Params.A)
	c.d = cc.FEFromBig(cc.Params.D)
	minus1 := cc.FE(-1)
	c.aIsMinus1 = c.a.Equal(minus1) == 1

	gx := cc.FEFromBig(cc.Params.Gx)
	gy := cc.FEFromBig(cc.Params.Gy)
	g := c.newPoint(gx, gy)
	if !c.ValidateVar(g) {
		panic("edwards: generator for " + cc.Params.ID + " fails on-curve check")
	}
	c.g = g

	c.buildFixedTable()
	return c, nil
}

// Generator returns the curve's base point.
func (c *Context) Generator() *Point { return c.g }

func (c *Context) newPoint(x, y field.Element) *Point {
	t := c.NewElement().Multiply(x, y)
	z := c.NewElement()
	z.One()
	return &Point{ctx: c, X: x, Y: y, Z: z, T: t}
}


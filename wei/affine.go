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

package wei

import (
	"errors"

	"github.com/nijynot/bcrypto/field"
)

// ErrInvalidPoint is returned by the decoders below when an encoded
// point is malformed or fails the on-curve check.
var ErrInvalidPoint = errors.New("wei: invalid point encoding")

// Affine is a short-Weierstrass point in (x, y) form, or the point at
// infinity when Inf is true (X and Y are then undefined).
type Affine struct {
	ctx *Context
	X, Y field.Element
	Inf bool
}

// Identity2D returns the affine point at infinity.
func (c *Context) Identity2D() *Affine {
	return &Affine{ctx: c, X: c.NewElement(), Y: c.NewElement(), Inf: true}
}

// XCoord returns the affine x-coordinate; undefined for the identity.
func (a *Affine) XCoord() field.Element { return a.X }

// YCoord returns the affine y-coordinate; undefined for the identity.
func (a *Affine) YCoord() field.Element { return a.Y }

// IsInfinity reports whether a is the point at infinity.
func (a *Affine) IsInfinity() bool { return a.Inf }

// ValidateAffineVar checks y^2 = x^3 + a*x + b in variable time.
func (c *Context) ValidateAffineVar(a *Affine) bool {
	if a.Inf {
		return true
	}
	lhs := c.NewElement().Square(a.Y)
	x3 := c.NewElement().Square(a.X)
	x3.Multiply(x3, a.X)
	ax := c.NewElement().Multiply(c.a, a.X)
	rhs := c.NewElement().Add(x3, ax)
	rhs.Add(rhs, c.b)
	return lhs.Equal(rhs) == 1
}

// DecodeUncompressed parses a SEC1 uncompressed point encoding
// (0x04 || X || Y).
func (c *Context) DecodeUncompressed(b []byte) (*Affine, error) {
	sz := c.Params.ByteSize
	if len(b) == 1 && b[0] == 0x00 {
		return c.Identity2D(), nil
	}
	if len(b) != 1+2*sz || b[0] != 0x04 {
		return nil, ErrInvalidPoint
	}
	x, err := c.NewElement().SetBytes(reverseForDecode(b[1 : 1+sz]))
	if err != nil {
		return nil, ErrInvalidPoint
	}
	y, err := c.NewElement().SetBytes(reverseForDecode(b[1+sz:]))
	if err != nil {
		return nil, ErrInvalidPoint
	}
	p := &Affine{ctx: c, X: x, Y: y}
	if !c.ValidateAffineVar(p) {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

// DecodeCompressed parses a SEC1 compressed point encoding
// (0x02/0x03 || X), recovering y via a field square root.
func (c *Context) DecodeCompressed(b []byte) (*Affine, error) {
	sz := c.Params.ByteSize
	if len(b) == 1 && b[0] == 0x00 {
		return c.Identity2D(), nil
	}
	if len(b) != 1+sz || (b[0] != 0x02 && b[0] != 0x03) {
		return nil, ErrInvalidPoint
	}
	x, err := c.NewElement().SetBytes(reverseForDecode(b[1:]))
	if err != nil {
		return nil, ErrInvalidPoint
	}
	y, err := c.recoverY(x, int(b[0]&1))
	if err != nil {
		return nil, err
	}
	return &Affine{ctx: c, X: x, Y: y}, nil
}

// ImportX recovers an affine point from an x-only encoding by
// convention taking the even-y representative, per BIP-340's x-only
// public key format.
func (c *Context) ImportX(xb []byte) (*Affine, error) {
	x, err := c.NewElement().SetBytes(reverseForDecode(xb))
	if err != nil {
		return nil, ErrInvalidPoint
	}
	y, err := c.recoverY(x, 0)
	if err != nil {
		return nil, err
	}
	return &Affine{ctx: c, X: x, Y: y}, nil
}

func (c *Context) recoverY(x field.Element, wantOdd int) (field.Element, error) {
	x3 := c.NewElement().Square(x)
	x3.Multiply(x3, x)
	ax := c.NewElement().Multiply(c.a, x)
	rhs := c.NewElement().Add(x3, ax)
	rhs.Add(rhs, c.b)
	y, isSquare := c.NewElement().Sqrt(rhs)
	if isSquare != 1 {
		return nil, ErrInvalidPoint
	}
	y.CondNegate(y.IsNegative() ^ wantOdd)
	return y, nil
}

// EncodeUncompressed serializes a per SEC1's 0x04 || X || Y form.
func (a *Affine) EncodeUncompressed() []byte {
	if a.Inf {
		return []byte{0x00}
	}
	sz := a.ctx.Params.ByteSize
	out := make([]byte, 1+2*sz)
	out[0] = 0x04
	copy(out[1:1+sz], reverseForDecode(a.X.Bytes()))
	copy(out[1+sz:], reverseForDecode(a.Y.Bytes()))
	return out
}

// EncodeCompressed serializes per SEC1's 0x02/0x03 || X form.
func (a *Affine) EncodeCompressed() []byte {
	if a.Inf {
		return []byte{0x00}
	}
	sz := a.ctx.Params.ByteSize
	out := make([]byte, 1+sz)
	out[0] = byte(0x02 | a.Y.IsNegative())
	copy(out[1:], reverseForDecode(a.X.Bytes()))
	return out
}

// reverseForDecode flips between this package's little-endian
// field.Element.Bytes() convention and SEC1's big-endian wire format.
func reverseForDecode(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

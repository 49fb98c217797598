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

package edwards

// Encode serializes p per RFC 8032: the little-endian y-coordinate
// with the sign of x packed into the encoding's most significant bit.
func (p *Point) Encode() []byte {
	c := p.ctx
	x, y := p.AffineXY()
	enc := y.Bytes()
	sz := c.Params.ByteSize
	out := make([]byte, sz)
	copy(out, enc)
	if x.IsNegative() == 1 {
		out[sz-1] |= 0x80
	}
	return out
}

// Decode parses an RFC 8032 encoded point, recovering x via
// x^2 = (y^2-1)/(d*y^2-a) and selecting the root matching the packed
// sign bit.
func (c *Context) Decode(b []byte) (*Point, error) {
	sz := c.Params.ByteSize
	if len(b) != sz {
		return nil, ErrInvalidPoint
	}
	signBit := int(b[sz-1]>>7) & 1
	yb := make([]byte, sz)
	copy(yb, b)
	yb[sz-1] &^= 0x80

	y, err := c.NewElement().SetBytes(yb)
	if err != nil {
		return nil, ErrInvalidPoint
	}

	y2 := c.NewElement().Square(y)
	one := c.FE(1)
	num := c.NewElement().Subtract(y2, one)
	dy2 := c.NewElement().Multiply(c.d, y2)
	den := c.NewElement().Subtract(dy2, c.a)

	denInv, nz := c.NewElement().Invert(den)
	if nz != 1 {
		return nil, ErrInvalidPoint
	}
	radicand := c.NewElement().Multiply(num, denInv)
	x, isSquare := c.NewElement().Sqrt(radicand)
	if isSquare != 1 {
		return nil, ErrInvalidPoint
	}
	x.CondNegate(x.IsNegative() ^ signBit)

	p := c.newPoint(x, y)
	if !c.ValidateVar(p) {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

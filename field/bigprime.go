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

import "math/big"

// primeParams is the shared, read-only description of a prime field
// used by every BigPrime element belonging to that field.
type primeParams struct {
	p    *big.Int
	size int // canonical encoding length in bytes
}

// BigPrime is the generic math/big-backed field backend. It backs every
// curve in the engine for which no pack dependency exposes a reusable
// concrete field type: the NIST primes (P-192/224/256/384/521), the
// Curve448 family, and Ed1174. See DESIGN.md for why this is the justified
// standard-library fallback rather than a synthesized limb backend.
type BigPrime struct {
	params *primeParams
	v      big.Int
}

// NewBigPrimeField returns a constructor bound to the prime p, encoded
// in size bytes.
func NewBigPrimeField(p *big.Int, size int) func() *BigPrime {
	params := &primeParams{p: new(big.Int).Set(p), size: size}
	return func() *BigPrime {
		e := &BigPrime{params: params}
		return e
	}
}

func (e *BigPrime) like() *BigPrime {
	return &BigPrime{params: e.params}
}

func (e *BigPrime) New() Element { return e.like() }

func (e *BigPrime) Zero() Element {
	e.v.SetInt64(0)
	return e
}

func (e *BigPrime) One() Element {
	e.v.SetInt64(1)
	return e
}

func (e *BigPrime) Set(a Element) Element {
	o := a.(*BigPrime)
	e.params = o.params
	e.v.Set(&o.v)
	return e
}

func (e *BigPrime) SetUint64(x uint64) Element {
	e.v.SetUint64(x)
	e.v.Mod(&e.v, e.params.p)
	return e
}

func (e *BigPrime) SetBytes(b []byte) (Element, error) {
	if len(b) != e.params.size {
		return e, ErrInvalidLength
	}
	var v big.Int
	v.SetBytes(reverseBytes(b))
	if v.Cmp(e.params.p) >= 0 {
		return e, ErrNotInField
	}
	e.v.Set(&v)
	return e, nil
}

func (e *BigPrime) Bytes() []byte {
	out := make([]byte, e.params.size)
	b := e.v.Bytes()
	// big.Int.Bytes is big-endian with no leading zeros; right-align
	// then flip to the curve's little-endian canonical form.
	copy(out[e.params.size-len(b):], b)
	return reverseBytes(out)
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

func (e *BigPrime) Add(a, b Element) Element {
	e.v.Add(&a.(*BigPrime).v, &b.(*BigPrime).v)
	e.v.Mod(&e.v, e.params.p)
	e.params = a.(*BigPrime).params
	return e
}

func (e *BigPrime) Subtract(a, b Element) Element {
	e.v.Sub(&a.(*BigPrime).v, &b.(*BigPrime).v)
	e.v.Mod(&e.v, e.params.p)
	e.params = a.(*BigPrime).params
	return e
}

func (e *BigPrime) Negate(a Element) Element {
	av := &a.(*BigPrime).v
	e.params = a.(*BigPrime).params
	if av.Sign() == 0 {
		e.v.SetInt64(0)
		return e
	}
	e.v.Sub(e.params.p, av)
	return e
}

func (e *BigPrime) Multiply(a, b Element) Element {
	e.v.Mul(&a.(*BigPrime).v, &b.(*BigPrime).v)
	e.v.Mod(&e.v, e.params.p)
	e.params = a.(*BigPrime).params
	return e
}

func (e *BigPrime) Square(a Element) Element {
	return e.Multiply(a, a)
}

func (e *BigPrime) Invert(a Element) (Element, int) {
	av := &a.(*BigPrime).v
	e.params = a.(*BigPrime).params
	if av.Sign() == 0 {
		e.v.SetInt64(0)
		return e, 0
	}
	e.v.ModInverse(av, e.params.p)
	return e, 1
}

func (e *BigPrime) Pow(a Element, exp []byte) Element {
	e.params = a.(*BigPrime).params
	be := new(big.Int).SetBytes(exp)
	e.v.Exp(&a.(*BigPrime).v, be, e.params.p)
	return e
}

// Sqrt uses the a^((p+1)/4) exponentiation shortcut when p ≡ 3 mod 4
// (every prime this backend is used for except P-224's, including
// 2^448-2^224-1 and 2^251-9), and falls back to full Tonelli-Shanks
// otherwise (P-224, whose prime is ≡ 1 mod 4).
func (e *BigPrime) Sqrt(a Element) (Element, int) {
	av := &a.(*BigPrime).v
	p := a.(*BigPrime).params.p
	e.params = a.(*BigPrime).params

	if av.Sign() == 0 {
		e.v.SetInt64(0)
		return e, 1
	}

	mod4 := new(big.Int).Mod(p, big.NewInt(4))
	if mod4.Int64() == 3 {
		exp := new(big.Int).Add(p, big.NewInt(1))
		exp.Rsh(exp, 2)
		cand := new(big.Int).Exp(av, exp, p)
		check := new(big.Int).Mul(cand, cand)
		check.Mod(check, p)
		if check.Cmp(av) != 0 {
			return e, 0
		}
		e.v.Set(cand)
		return e, 1
	}

	cand, ok := tonelliShanks(av, p)
	if !ok {
		return e, 0
	}
	e.v.Set(cand)
	return e, 1
}

func tonelliShanks(n, p *big.Int) (*big.Int, bool) {
	one := big.NewInt(1)
	two := big.NewInt(2)

	ls := new(big.Int).Exp(n, new(big.Int).Rsh(new(big.Int).Sub(p, one), 1), p)
	if ls.Cmp(one) != 0 {
		return nil, false
	}

	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	var z *big.Int
	for zz := big.NewInt(2); ; zz.Add(zz, one) {
		if new(big.Int).Exp(zz, new(big.Int).Rsh(new(big.Int).Sub(p, one), 1), p).Cmp(new(big.Int).Sub(p, one)) == 0 {
			z = new(big.Int).Set(zz)
			break
		}
	}

	m := s
	c := new(big.Int).Exp(z, q, p)
	t := new(big.Int).Exp(n, q, p)
	qPlus1Half := new(big.Int).Rsh(new(big.Int).Add(q, one), 1)
	r := new(big.Int).Exp(n, qPlus1Half, p)

	for {
		if t.Cmp(one) == 0 {
			return r, true
		}
		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(one) != 0 {
			tt.Mul(tt, tt)
			tt.Mod(tt, p)
			i++
			if i == m {
				return nil, false
			}
		}
		b := new(big.Int).Exp(c, new(big.Int).Lsh(one, uint(m-i-1)), p)
		m = i
		c = new(big.Int).Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		r.Mul(r, b)
		r.Mod(r, p)
	}
}

func (e *BigPrime) Equal(a Element) int {
	if e.v.Cmp(&a.(*BigPrime).v) == 0 {
		return 1
	}
	return 0
}

func (e *BigPrime) IsZero() int {
	if e.v.Sign() == 0 {
		return 1
	}
	return 0
}

func (e *BigPrime) IsNegative() int {
	return int(e.v.Bit(0))
}

func (e *BigPrime) Select(a, b Element, cond int) Element {
	if cond == 1 {
		return e.Set(a)
	}
	return e.Set(b)
}

func (e *BigPrime) CondNegate(cond int) Element {
	if cond == 1 {
		neg := e.like()
		neg.Negate(e)
		e.v.Set(&neg.v)
	}
	return e
}

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

// Package scalar implements the curve-generic scalar field: arbitrary
// precision arithmetic modulo a curve's group order n, with Barrett
// reduction, wNAF/JSF recoding, and the GLV mulshift primitive.
//
// There is no pack dependency that exposes a curve-generic
// Barrett-reduction scalar type (filippo.io/edwards25519's Scalar and
// decred's ModNScalar are both hardwired to one curve's order), so this
// package is built on math/big the same way field.BigPrime is: see
// DESIGN.md for the standard-library justification.
package scalar

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ErrNotReduced is returned by Import when the input is >= n.
var ErrNotReduced = errors.New("scalar: value not reduced mod n")

// ErrBadLength is returned when a byte slice does not match the field's
// encoding size.
var ErrBadLength = errors.New("scalar: invalid encoding length")

// Field describes the scalar field Z/nZ for one curve's group order.
// A Field is created once per curve context and is immutable
// thereafter; every Scalar belonging to it carries a pointer back so
// arithmetic never needs the caller to pass n around separately.
type Field struct {
	n       *big.Int
	half    *big.Int // floor(n/2), used by Minimize
	size    int       // canonical encoding length in bytes
	bits    int
	barK    int      // Barrett parameter k, here bits(n)+8
	barrett *big.Int // m = floor(2^(2k)/n)
}

// NewField constructs the scalar field of order n, encoded canonically
// in size bytes.
func NewField(n *big.Int, size int) *Field {
	f := &Field{
		n:    new(big.Int).Set(n),
		size: size,
		bits: n.BitLen(),
	}
	f.half = new(big.Int).Rsh(n, 1)
	f.barK = f.bits + 8 // generous margin, mirrors (limbs+1)*WORD_BITS
	two2k := new(big.Int).Lsh(big.NewInt(1), uint(2*f.barK))
	f.barrett = new(big.Int).Div(two2k, f.n)
	return f
}

// N returns the field's modulus. The returned value must not be
// mutated by the caller.
func (f *Field) N() *big.Int { return f.n }

// Bits returns bit length of n.
func (f *Field) Bits() int { return f.bits }

// Size returns the canonical byte encoding length.
func (f *Field) Size() int { return f.size }

// barrettReduce reduces x modulo n using the precomputed Barrett
// constant, for x up to 2*bits(n) wide, as spec'd for import_reduce.
func (f *Field) barrettReduce(x *big.Int) *big.Int {
	// q = (x * m) >> 2k ; r = x - q*n ; then at most two conditional
	// subtractions to land in [0, n).
	q := new(big.Int).Mul(x, f.barrett)
	q.Rsh(q, uint(2*f.barK))
	r := new(big.Int).Mul(q, f.n)
	r.Sub(x, r)
	for r.Sign() < 0 {
		r.Add(r, f.n)
	}
	for r.Cmp(f.n) >= 0 {
		r.Sub(r, f.n)
	}
	return r
}

// Scalar is an element of a Field, always kept reduced into [0, n)
// except inside the documented variable-time reduction helpers.
type Scalar struct {
	f *Field
	v big.Int
}

// New returns the zero scalar of the field.
func (f *Field) New() *Scalar {
	return &Scalar{f: f}
}

// Zero sets s to 0.
func (s *Scalar) Zero() *Scalar { s.v.SetInt64(0); return s }

// One sets s to 1.
func (s *Scalar) One() *Scalar { s.v.SetInt64(1); return s }

// Set copies a into s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.f = a.f
	s.v.Set(&a.v)
	return s
}

// Import decodes raw (big-endian) into s, rejecting values >= n.
func (f *Field) Import(raw []byte) (*Scalar, bool) {
	if len(raw) != f.size {
		return nil, false
	}
	s := f.New()
	s.v.SetBytes(raw)
	if s.v.Cmp(f.n) >= 0 {
		return nil, false
	}
	return s, true
}

// ImportLE decodes raw (little-endian) into s, rejecting values >= n.
func (f *Field) ImportLE(raw []byte) (*Scalar, bool) {
	be := make([]byte, len(raw))
	for i, b := range raw {
		be[len(raw)-1-i] = b
	}
	return f.Import(be)
}

// ImportReduce decodes raw (big-endian, up to 2*bits(n) wide) into s,
// Barrett-reducing (or, when bits(n) is byte-aligned, weakly reducing
// with a single conditional subtraction) as spec'd for hash-to-scalar
// and external-wire scalars.
func (f *Field) ImportReduce(raw []byte) *Scalar {
	s := f.New()
	x := new(big.Int).SetBytes(raw)
	if f.bits%8 == 0 && x.BitLen() <= f.bits {
		if x.Cmp(f.n) >= 0 {
			x.Sub(x, f.n)
		}
		s.v.Set(x)
		return s
	}
	s.v.Set(f.barrettReduce(x))
	return s
}

// Bytes encodes s big-endian, zero padded to the field size.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, s.f.size)
	b := s.v.Bytes()
	copy(out[s.f.size-len(b):], b)
	return out
}

// BytesLE encodes s little-endian, zero padded to the field size.
func (s *Scalar) BytesLE() []byte {
	be := s.Bytes()
	out := make([]byte, len(be))
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// Add sets s = a + b mod n.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.f = a.f
	s.v.Add(&a.v, &b.v)
	s.v.Mod(&s.v, s.f.n)
	return s
}

// Sub sets s = a - b mod n, via add(-b) per spec.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	neg := b.f.New()
	neg.Neg(b)
	return s.Add(a, neg)
}

// Neg sets s = -a mod n.
func (s *Scalar) Neg(a *Scalar) *Scalar {
	s.f = a.f
	if a.v.Sign() == 0 {
		s.v.SetInt64(0)
		return s
	}
	s.v.Sub(a.f.n, &a.v)
	return s
}

// Mul sets s = a*b mod n via Barrett reduction of the limb product.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.f = a.f
	prod := new(big.Int).Mul(&a.v, &b.v)
	s.v.Set(a.f.barrettReduce(prod))
	return s
}

// Sqr sets s = a^2 mod n.
func (s *Scalar) Sqr(a *Scalar) *Scalar {
	return s.Mul(a, a)
}

// MulShift computes round((a*b) / 2^shift) exactly, per spec's GLV
// decomposition primitive. shift must exceed bits(n).
func MulShift(a, b *Scalar, shift uint) *Scalar {
	s := a.f.New()
	prod := new(big.Int).Mul(&a.v, &b.v)
	// round-to-nearest: add 1<<(shift-1) before the shift, i.e. inspect
	// the discarded top bit and increment accordingly.
	if shift > 0 {
		bit := prod.Bit(int(shift) - 1)
		prod.Rsh(prod, shift)
		if bit == 1 {
			prod.Add(prod, big.NewInt(1))
		}
	} else {
		// shift == 0 is degenerate but kept total.
	}
	s.v.Set(prod)
	return s
}

// Invert sets s = a^-1 mod n via Fermat exponentiation (n-2), returning
// whether a was nonzero.
func (s *Scalar) Invert(a *Scalar) (*Scalar, bool) {
	s.f = a.f
	if a.v.Sign() == 0 {
		s.v.SetInt64(0)
		return s, false
	}
	exp := new(big.Int).Sub(a.f.n, big.NewInt(2))
	s.v.Exp(&a.v, exp, a.f.n)
	return s, true
}

// InvertVar is the variable-time extended-GCD counterpart of Invert.
func (s *Scalar) InvertVar(a *Scalar) (*Scalar, bool) {
	s.f = a.f
	if a.v.Sign() == 0 {
		s.v.SetInt64(0)
		return s, false
	}
	s.v.ModInverse(&a.v, a.f.n)
	return s, true
}

// Minimize returns a if a <= n/2, else n-a, together with a sign flag
// (true when the value was negated).
func (s *Scalar) Minimize(a *Scalar) (*Scalar, bool) {
	s.f = a.f
	if a.v.Cmp(a.f.half) <= 0 {
		s.v.Set(&a.v)
		return s, false
	}
	s.v.Sub(a.f.n, &a.v)
	return s, true
}

// GetBit returns bit i of the scalar's value (0 if i is out of range).
func (s *Scalar) GetBit(i int) uint {
	if i < 0 || i >= s.f.bits+8 {
		return 0
	}
	return s.v.Bit(i)
}

// GetBits extracts a w-bit window starting at bit i.
func (s *Scalar) GetBits(i, w int) uint32 {
	var out uint32
	for b := 0; b < w; b++ {
		if s.GetBit(i+b) == 1 {
			out |= 1 << uint(b)
		}
	}
	return out
}

// Equal returns whether a == b.
func (s *Scalar) Equal(a *Scalar) bool { return s.v.Cmp(&a.v) == 0 }

// IsZero returns whether s is the additive identity.
func (s *Scalar) IsZero() bool { return s.v.Sign() == 0 }

// Cmp forwards to math/big.Int.Cmp for the callers (equal_r, DER
// integer bounds, etc.) that need an order comparison rather than
// equality.
func (s *Scalar) Cmp(a *Scalar) int { return s.v.Cmp(&a.v) }

// BigInt exposes the underlying value read-only, for callers (equal_r,
// curve parameter derivations) that need to cross into field.BigPrime
// arithmetic. The caller must not mutate the returned value.
func (s *Scalar) BigInt() *big.Int { return &s.v }

// Random samples uniformly in [1, n) using rng (rejection sampling).
func (f *Field) Random(rng io.Reader) (*Scalar, error) {
	if rng == nil {
		rng = rand.Reader
	}
	for {
		buf := make([]byte, f.size)
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		x := new(big.Int).SetBytes(buf)
		if x.Sign() == 0 || x.Cmp(f.n) >= 0 {
			continue
		}
		s := f.New()
		s.v.Set(x)
		return s, nil
	}
}

// NafVar computes the width-w non-adjacent form of a, with output
// length padded with zeros to max digits. Each digit is an odd integer
// in (-2^(w-1), 2^(w-1)) or zero.
func NafVar(a *Scalar, width, max int) []int32 {
	out := make([]int32, max)
	x := new(big.Int).Set(&a.v)
	limit := big.NewInt(1 << uint(width))
	half := int32(1 << uint(width-1))
	i := 0
	for x.Sign() != 0 && i < max {
		if x.Bit(0) == 1 {
			mod := new(big.Int).Mod(x, limit)
			d := int32(mod.Int64())
			if d >= half {
				d -= int32(limit.Int64())
			}
			out[i] = d
			x.Sub(x, big.NewInt(int64(d)))
		}
		x.Rsh(x, 1)
		i++
	}
	return out
}

// JsfVar computes the Joint Sparse Form of the pair (a1,a2) — with
// signs s1, s2 applied first — emitting one byte per bit position, least
// significant first, whose low two bits encode the a1 digit and next two
// bits the a2 digit (0 for 0, 1 for +1, 2 for -1). Output is padded with
// zeros to max.
func JsfVar(a1 *Scalar, s1 int, a2 *Scalar, s2 int, max int) []uint8 {
	x1 := signedBigInt(a1, s1)
	x2 := signedBigInt(a2, s2)
	low3 := func(x *big.Int) uint { return x.Bit(0) | x.Bit(1)<<1 | x.Bit(2)<<2 }

	out := make([]uint8, max)
	for i := 0; i < max && (x1.Sign() != 0 || x2.Sign() != 0); i++ {
		l1, l2 := low3(x1), low3(x2)
		d1 := jsfDigit(x1)
		d2 := jsfDigit(x2)
		// Three-bit lookahead: flip a digit when its value is 3 or 5
		// mod 8 and the other value is 2 mod 4.
		if (l1 == 3 || l1 == 5) && l2&3 == 2 {
			d1 = -d1
		}
		if (l2 == 3 || l2 == 5) && l1&3 == 2 {
			d2 = -d2
		}
		out[i] = jsfPack(d1, d2)
		x1.Sub(x1, big.NewInt(int64(d1)))
		x2.Sub(x2, big.NewInt(int64(d2)))
		x1.Rsh(x1, 1)
		x2.Rsh(x2, 1)
	}
	return out
}

func signedBigInt(a *Scalar, sign int) *big.Int {
	x := new(big.Int).Set(&a.v)
	if sign < 0 {
		x.Neg(x)
	}
	return x
}

// jsfDigit extracts x's width-2 NAF digit in {-1,0,1} from its low two
// bits; JsfVar applies the joint three-bit lookahead on top of it.
func jsfDigit(x *big.Int) int {
	if x.Bit(0) == 0 {
		return 0
	}
	mod4 := x.Bit(0) | x.Bit(1)<<1
	if mod4 == 1 || mod4 == 0 {
		return 1
	}
	return -1
}

func jsfPack(d1, d2 int) uint8 {
	enc := func(d int) uint8 {
		switch {
		case d == 0:
			return 0
		case d > 0:
			return 1
		default:
			return 2
		}
	}
	return enc(d1) | enc(d2)<<2
}

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

package scalar

import (
	"math/big"
	"testing"
)

// secp256k1Order is used as a realistic-width modulus for the
// round-trip and identity tests below.
var secp256k1Order, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

func testField() *Field {
	return NewField(secp256k1Order, 32)
}

func bigFromInt64(f *Field, x int64) *Scalar {
	s := f.New()
	v := big.NewInt(x)
	v.Mod(v, f.n)
	s.v.Set(v)
	return s
}

func TestImportBytesRoundTrip(t *testing.T) {
	f := testField()
	for _, x := range []int64{0, 1, 2, 12345, 999999999} {
		s := bigFromInt64(f, x)
		raw := s.Bytes()
		got, ok := f.Import(raw)
		if !ok {
			t.Fatalf("Import(%x) rejected a canonical encoding", raw)
		}
		if !got.Equal(s) {
			t.Fatalf("round trip mismatch for %d: got %v want %v", x, got.BigInt(), s.BigInt())
		}
	}
}

func TestImportRejectsOutOfRange(t *testing.T) {
	f := testField()
	raw := f.n.Bytes() // exactly n, not reduced
	if _, ok := f.Import(raw); ok {
		t.Fatalf("Import accepted a value equal to n")
	}
}

func TestImportLEIsByteReversedImport(t *testing.T) {
	f := testField()
	s := bigFromInt64(f, 0xdeadbeef)
	be := s.Bytes()
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	got, ok := f.ImportLE(le)
	if !ok {
		t.Fatalf("ImportLE rejected a canonical little-endian encoding")
	}
	if !got.Equal(s) {
		t.Fatalf("ImportLE(%x) = %v, want %v", le, got.BigInt(), s.BigInt())
	}
}

func TestImportReduceWideValue(t *testing.T) {
	f := testField()
	// n*3 + 7, well within the 2*bits(n) width ImportReduce accepts.
	wide := new(big.Int).Mul(f.n, big.NewInt(3))
	wide.Add(wide, big.NewInt(7))
	got := f.ImportReduce(wide.Bytes())
	want := new(big.Int).Mod(wide, f.n)
	if got.BigInt().Cmp(want) != 0 {
		t.Fatalf("ImportReduce(%v) = %v, want %v", wide, got.BigInt(), want)
	}
}

func TestArithmeticMatchesMathBig(t *testing.T) {
	f := testField()
	cases := []struct{ a, b int64 }{
		{0, 0}, {1, 1}, {5, 3}, {1000000, 999999},
		{123456789, 987654321}, {0, 42}, {42, 0},
	}
	for _, c := range cases {
		a := bigFromInt64(f, c.a)
		b := bigFromInt64(f, c.b)

		sum := f.New().Add(a, b)
		wantSum := new(big.Int).Add(big.NewInt(c.a), big.NewInt(c.b))
		wantSum.Mod(wantSum, f.n)
		if sum.BigInt().Cmp(wantSum) != 0 {
			t.Errorf("Add(%d,%d) = %v, want %v", c.a, c.b, sum.BigInt(), wantSum)
		}

		diff := f.New().Sub(a, b)
		wantDiff := new(big.Int).Sub(big.NewInt(c.a), big.NewInt(c.b))
		wantDiff.Mod(wantDiff, f.n)
		if diff.BigInt().Cmp(wantDiff) != 0 {
			t.Errorf("Sub(%d,%d) = %v, want %v", c.a, c.b, diff.BigInt(), wantDiff)
		}

		prod := f.New().Mul(a, b)
		wantProd := new(big.Int).Mul(big.NewInt(c.a), big.NewInt(c.b))
		wantProd.Mod(wantProd, f.n)
		if prod.BigInt().Cmp(wantProd) != 0 {
			t.Errorf("Mul(%d,%d) = %v, want %v", c.a, c.b, prod.BigInt(), wantProd)
		}
	}
}

func TestNegAddsToZero(t *testing.T) {
	f := testField()
	a := bigFromInt64(f, 123456789)
	neg := f.New().Neg(a)
	sum := f.New().Add(a, neg)
	if !sum.IsZero() {
		t.Fatalf("a + (-a) = %v, want 0", sum.BigInt())
	}
	if zeroNeg := f.New().Neg(f.New().Zero()); !zeroNeg.IsZero() {
		t.Fatalf("-0 = %v, want 0", zeroNeg.BigInt())
	}
}

func TestInvertRoundTrip(t *testing.T) {
	f := testField()
	for _, x := range []int64{1, 2, 3, 123456789} {
		a := bigFromInt64(f, x)
		inv, ok := f.New().Invert(a)
		if !ok {
			t.Fatalf("Invert(%d) reported zero input", x)
		}
		invVar, okVar := f.New().InvertVar(a)
		if !okVar || !inv.Equal(invVar) {
			t.Fatalf("Invert and InvertVar disagree for %d: %v vs %v", x, inv.BigInt(), invVar.BigInt())
		}
		one := f.New().Mul(a, inv)
		if !one.Equal(f.New().One()) {
			t.Fatalf("a * a^-1 = %v, want 1 for a=%d", one.BigInt(), x)
		}
	}
	if _, ok := f.New().Invert(f.New().Zero()); ok {
		t.Fatalf("Invert(0) reported success")
	}
}

func TestMinimizeHalvesRange(t *testing.T) {
	f := testField()
	small := bigFromInt64(f, 5)
	if got, neg := f.New().Minimize(small); neg || got.BigInt().Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("Minimize(5) = (%v, %v), want (5, false)", got.BigInt(), neg)
	}

	big5 := f.New().Sub(f.New().Zero(), small) // n - 5
	got, neg := f.New().Minimize(big5)
	if !neg || got.BigInt().Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("Minimize(n-5) = (%v, %v), want (5, true)", got.BigInt(), neg)
	}
}

func TestNafVarReconstructsValue(t *testing.T) {
	f := testField()
	for _, x := range []int64{0, 1, 2, 3, 255, 65535, 123456789} {
		a := bigFromInt64(f, x)
		naf := NafVar(a, 5, f.Bits()+1)
		got := big.NewInt(0)
		for i := len(naf) - 1; i >= 0; i-- {
			got.Lsh(got, 1)
			got.Add(got, big.NewInt(int64(naf[i])))
		}
		if got.Cmp(big.NewInt(x)) != 0 {
			t.Fatalf("NafVar(%d) reconstructs to %v", x, got)
		}
		// Non-adjacent: no two consecutive nonzero digits.
		for i := 0; i+1 < len(naf); i++ {
			if naf[i] != 0 && naf[i+1] != 0 {
				t.Fatalf("NafVar(%d) has adjacent nonzero digits at %d,%d", x, i, i+1)
			}
		}
	}
}

func TestGetBitsMatchesBigInt(t *testing.T) {
	f := testField()
	a := bigFromInt64(f, 0b1011010110)
	for i := 0; i < 10; i++ {
		want := uint(0)
		if a.BigInt().Bit(i) == 1 {
			want = 1
		}
		if got := a.GetBit(i); got != want {
			t.Fatalf("GetBit(%d) = %d, want %d", i, got, want)
		}
	}
	window := a.GetBits(0, 4)
	if window != 0b0110 {
		t.Fatalf("GetBits(0,4) = %b, want 0110", window)
	}
}

func TestMulShiftRoundsToNearest(t *testing.T) {
	f := testField()
	a := bigFromInt64(f, 7)
	b := bigFromInt64(f, 3)
	// 7*3 = 21; shifting by 2 gives 21/4 = 5.25, rounds to 5.
	got := MulShift(a, b, 2)
	if got.BigInt().Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("MulShift(7,3,2) = %v, want 5", got.BigInt())
	}
}

func TestJsfVarReconstructsBothValues(t *testing.T) {
	f := testField()
	a1 := bigFromInt64(f, 12345)
	a2 := bigFromInt64(f, 54321)
	max := f.Bits() + 2
	jsf := JsfVar(a1, 1, a2, 1, max)

	got1, got2 := big.NewInt(0), big.NewInt(0)
	for i := len(jsf) - 1; i >= 0; i-- {
		got1.Lsh(got1, 1)
		got2.Lsh(got2, 1)
		d1, d2 := unpackJsf(jsf[i])
		got1.Add(got1, big.NewInt(int64(d1)))
		got2.Add(got2, big.NewInt(int64(d2)))
	}
	if got1.Cmp(big.NewInt(12345)) != 0 {
		t.Fatalf("JsfVar reconstructed a1 = %v, want 12345", got1)
	}
	if got2.Cmp(big.NewInt(54321)) != 0 {
		t.Fatalf("JsfVar reconstructed a2 = %v, want 54321", got2)
	}
}

func unpackJsf(b uint8) (int, int) {
	dec := func(v uint8) int {
		switch v {
		case 0:
			return 0
		case 1:
			return 1
		default:
			return -1
		}
	}
	return dec(b & 0x3), dec((b >> 2) & 0x3)
}

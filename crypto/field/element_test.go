// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package field

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/go-ed25519/test/partitiontest"
)

var bigP = P()

// toBig returns the canonical value of v.
func toBig(v *Element) *big.Int {
	le := v.Bytes()
	be := make([]byte, len(le))
	for i := range le {
		be[len(le)-1-i] = le[i]
	}
	return new(big.Int).SetBytes(be)
}

// limbsToBig evaluates the limbs of v without reducing them first.
func limbsToBig(v *Element) *big.Int {
	n := new(big.Int)
	for i, l := range []uint64{v.l0, v.l1, v.l2, v.l3, v.l4} {
		t := new(big.Int).SetUint64(l)
		n.Add(n, t.Lsh(t, uint(51*i)))
	}
	return n.Mod(n, bigP)
}

func fromBig(n *big.Int) *Element {
	var le [Size]byte
	leBytes(&le, new(big.Int).Mod(n, bigP))
	v, err := new(Element).SetBytes(le[:])
	if err != nil {
		panic(err)
	}
	return v
}

// genElement draws elements both from byte strings and from raw, lightly
// reduced limbs, so that non-canonical internal forms get exercised.
func genElement() *rapid.Generator[*Element] {
	fromBytes := rapid.Custom(func(t *rapid.T) *Element {
		b := rapid.SliceOfN(rapid.Byte(), Size, Size).Draw(t, "bytes")
		v, _ := new(Element).SetBytes(b)
		return v
	})
	limb := rapid.Uint64Range(0, (1<<51)+(1<<18))
	fromLimbs := rapid.Custom(func(t *rapid.T) *Element {
		return &Element{
			limb.Draw(t, "l0"), limb.Draw(t, "l1"), limb.Draw(t, "l2"),
			limb.Draw(t, "l3"), limb.Draw(t, "l4"),
		}
	})
	small := rapid.Custom(func(t *rapid.T) *Element {
		return new(Element).SetUint64(rapid.Uint64Range(0, 20).Draw(t, "small"))
	})
	return rapid.OneOf(fromBytes, fromLimbs, small)
}

func TestArithmeticMatchesBig(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		a := genElement().Draw(t, "a")
		b := genElement().Draw(t, "b")
		ba, bb := limbsToBig(a), limbsToBig(b)

		check := func(name string, got *Element, want *big.Int) {
			want.Mod(want, bigP)
			if toBig(got).Cmp(want) != 0 {
				t.Fatalf("%s: got %v want %v", name, toBig(got), want)
			}
		}
		check("add", new(Element).Add(a, b), new(big.Int).Add(ba, bb))
		check("sub", new(Element).Subtract(a, b), new(big.Int).Sub(ba, bb))
		check("neg", new(Element).Negate(a), new(big.Int).Neg(ba))
		check("mul", new(Element).Multiply(a, b), new(big.Int).Mul(ba, bb))
		check("square", new(Element).Square(a), new(big.Int).Mul(ba, ba))
	})
}

func TestAliasing(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		a := genElement().Draw(t, "a")
		b := genElement().Draw(t, "b")

		want := new(Element).Multiply(a, b)
		x := *a
		x.Multiply(&x, b)
		if x.Equal(want) != 1 {
			t.Fatalf("Multiply with v == a differs")
		}

		want.Square(a)
		x = *a
		x.Square(&x)
		if x.Equal(want) != 1 {
			t.Fatalf("Square with v == a differs")
		}

		want.Invert(a)
		x = *a
		x.Invert(&x)
		if x.Equal(want) != 1 {
			t.Fatalf("Invert with v == a differs")
		}
	})
}

func TestInvert(t *testing.T) {
	partitiontest.PartitionTest(t)

	var zero, inv Element
	inv.Invert(&zero)
	require.Equal(t, 1, inv.Equal(feZero))

	rapid.Check(t, func(t *rapid.T) {
		a := genElement().Draw(t, "a")
		if a.Equal(feZero) == 1 {
			t.Skip("zero")
		}
		var r Element
		r.Multiply(a, r.Invert(a))
		if r.Equal(feOne) != 1 {
			t.Fatalf("a * 1/a = %v", toBig(&r))
		}
	})
}

func TestPow(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		a := genElement().Draw(t, "a")
		e := rapid.SliceOfN(rapid.Byte(), 0, 40).Draw(t, "e")

		be := make([]byte, len(e))
		for i := range e {
			be[len(e)-1-i] = e[i]
		}
		want := new(big.Int).Exp(limbsToBig(a), new(big.Int).SetBytes(be), bigP)

		got := new(Element).Pow(a, e)
		if toBig(got).Cmp(want) != 0 {
			t.Fatalf("pow: got %v want %v", toBig(got), want)
		}
	})
}

func TestExponentConstants(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, "ebffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f", hex.EncodeToString(pMinus2[:]))
	require.Equal(t, "fdffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff0f", hex.EncodeToString(pMinus5Over8[:]))
	require.Equal(t, "fbffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff1f", hex.EncodeToString(pMinus1Over4[:]))

	var sq, minusOne Element
	sq.Square(sqrtM1)
	minusOne.Negate(feOne)
	require.Equal(t, 1, sq.Equal(&minusOne))
	require.Equal(t, 1, SqrtM1().Equal(sqrtM1))
}

func TestBytesRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		b := rapid.SliceOfN(rapid.Byte(), Size, Size).Draw(t, "b")
		b[31] &= 0x7f

		v, err := new(Element).SetBytes(b)
		if err != nil {
			t.Fatalf("SetBytes: %v", err)
		}
		le := append([]byte(nil), b...)
		be := make([]byte, Size)
		for i := range le {
			be[Size-1-i] = le[i]
		}
		n := new(big.Int).SetBytes(be)

		_, cerr := new(Element).SetCanonicalBytes(b)
		if n.Cmp(bigP) < 0 {
			if !bytes.Equal(v.Bytes(), b) {
				t.Fatalf("Bytes(SetBytes(%x)) = %x", b, v.Bytes())
			}
			if cerr != nil {
				t.Fatalf("canonical input rejected: %x", b)
			}
		} else if cerr == nil {
			t.Fatalf("non-canonical input accepted: %x", b)
		}
	})
}

func TestSetBytesEdgeCases(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, err := new(Element).SetBytes(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = new(Element).SetCanonicalBytes(make([]byte, 33))
	require.ErrorIs(t, err, ErrInvalidLength)

	// p itself, and p with the ignored top bit set
	pBytes, _ := hex.DecodeString("edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	v, err := new(Element).SetBytes(pBytes)
	require.NoError(t, err)
	require.Equal(t, 1, v.Equal(feZero))
	_, err = new(Element).SetCanonicalBytes(pBytes)
	require.ErrorIs(t, err, ErrNonCanonical)

	// 2^255 - 1 reduces to 18
	allOnes := bytes.Repeat([]byte{0xff}, Size)
	v, err = new(Element).SetBytes(allOnes)
	require.NoError(t, err)
	require.Equal(t, 1, v.Equal(new(Element).SetUint64(18)))
	_, err = new(Element).SetCanonicalBytes(allOnes)
	require.ErrorIs(t, err, ErrNonCanonical)

	// p - 1 is canonical, and the top bit does not matter
	pm1, _ := hex.DecodeString("ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	v, err = new(Element).SetCanonicalBytes(pm1)
	require.NoError(t, err)
	require.Equal(t, 1, v.Equal(new(Element).Negate(feOne)))
}

func TestEqualAndIsEven(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		a := genElement().Draw(t, "a")
		b := genElement().Draw(t, "b")
		ba, bb := limbsToBig(a), limbsToBig(b)

		eq := 0
		if ba.Cmp(bb) == 0 {
			eq = 1
		}
		if a.Equal(b) != eq {
			t.Fatalf("Equal mismatch for %v, %v", ba, bb)
		}
		if a.Equal(fromBig(ba)) != 1 {
			t.Fatalf("element not equal to its canonical form")
		}
		if a.IsEven() != int(1-ba.Bit(0)) {
			t.Fatalf("IsEven mismatch for %v", ba)
		}
	})
}

func TestSelectSwap(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := new(Element).SetUint64(7)
	b := new(Element).SetUint64(9)

	var v Element
	require.Equal(t, 1, v.Select(a, b, 1).Equal(a))
	require.Equal(t, 1, v.Select(a, b, 0).Equal(b))

	x, y := *a, *b
	x.Swap(&y, 0)
	require.Equal(t, 1, x.Equal(a))
	require.Equal(t, 1, y.Equal(b))
	x.Swap(&y, 1)
	require.Equal(t, 1, x.Equal(b))
	require.Equal(t, 1, y.Equal(a))
}

func TestSqrtKnownValues(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, tc := range []struct{ square, root uint64 }{{4, 2}, {9, 3}, {16, 4}} {
		r, negR, ok := Sqrt(new(Element).SetUint64(tc.square))
		require.True(t, ok, "sqrt(%d)", tc.square)

		want := new(Element).SetUint64(tc.root)
		wantNeg := new(Element).Negate(want)
		got := (r.Equal(want) & negR.Equal(wantNeg)) | (r.Equal(wantNeg) & negR.Equal(want))
		require.Equal(t, 1, got, "sqrt(%d)", tc.square)
	}

	_, _, ok := Sqrt(new(Element).SetUint64(13))
	require.False(t, ok)

	r, negR, ok := Sqrt(new(Element))
	require.True(t, ok)
	require.Equal(t, 1, r.Equal(feZero))
	require.Equal(t, 1, negR.Equal(feZero))
}

func TestSqrtMatchesBig(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		a := genElement().Draw(t, "a")
		ba := limbsToBig(a)

		r, negR, ok := Sqrt(a)
		oracle := new(big.Int).ModSqrt(ba, bigP)
		if ok != (oracle != nil) {
			t.Fatalf("Sqrt(%v) ok=%v, big.ModSqrt=%v", ba, ok, oracle)
		}
		if !ok {
			return
		}
		var sq Element
		if sq.Square(r).Equal(a) != 1 || sq.Square(negR).Equal(a) != 1 {
			t.Fatalf("roots of %v do not square back", ba)
		}
		if r.Equal(fromBig(oracle)) != 1 && negR.Equal(fromBig(oracle)) != 1 {
			t.Fatalf("roots of %v differ from big.ModSqrt", ba)
		}
	})
}

func TestSqrtRatio(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		u := genElement().Draw(t, "u")
		v := genElement().Draw(t, "v")
		if v.Equal(feZero) == 1 {
			_, wasSquare := new(Element).SqrtRatio(u, v)
			if wasSquare != u.Equal(feZero) {
				t.Fatalf("SqrtRatio(u, 0) = %d", wasSquare)
			}
			return
		}

		ratio := new(big.Int).ModInverse(limbsToBig(v), bigP)
		ratio.Mul(ratio, limbsToBig(u)).Mod(ratio, bigP)
		isSquare := new(big.Int).ModSqrt(ratio, bigP) != nil

		r, wasSquare := new(Element).SqrtRatio(u, v)
		if (wasSquare == 1) != isSquare {
			t.Fatalf("wasSquare=%d, big says %v", wasSquare, isSquare)
		}
		if wasSquare == 1 {
			var check Element
			check.Multiply(v, check.Square(r))
			if check.Equal(u) != 1 {
				t.Fatalf("v * r^2 != u")
			}
		}
	})
}

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

import "github.com/algorand/go-ed25519/crypto/ct"

// Pow sets v = x^e, and returns v. e is a little-endian integer. Every bit of
// e costs one squaring and one multiplication, so the running time depends
// only on len(e).
func (v *Element) Pow(x *Element, e []byte) *Element {
	var acc, tmp Element
	base := *x
	acc.One()
	for i := len(e)*8 - 1; i >= 0; i-- {
		acc.Square(&acc)
		tmp.Multiply(&acc, &base)
		acc.Select(&tmp, &acc, ct.Bit(e, i))
	}
	*v = acc
	return v
}

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	return v.Pow(z, pMinus2[:])
}

// SqrtRatio sets r to a square root of u/v and returns r and 1 when u/v is a
// square. Otherwise the value of r is unspecified and wasSquare is 0. The
// root is not normalized; callers pick the sign they need.
//
// If u == 0 the result is (0, 1). If v == 0 and u != 0 the result is (_, 0).
func (r *Element) SqrtRatio(u, v *Element) (R *Element, wasSquare int) {
	var a, b Element

	// cand = u * v^3 * (u * v^7)^((p-5)/8)
	v2 := a.Square(v)
	uv3 := b.Multiply(u, b.Multiply(v2, v))
	uv7 := a.Multiply(uv3, a.Square(v2))
	var cand Element
	cand.Multiply(uv3, cand.Pow(uv7, pMinus5Over8[:]))

	var check Element
	check.Multiply(v, check.Square(&cand))

	var uNeg Element
	uNeg.Negate(u)
	correctSign := check.Equal(u)
	flippedSign := check.Equal(&uNeg)

	var rPrime Element
	rPrime.Multiply(&cand, sqrtM1)
	cand.Select(&rPrime, &cand, flippedSign)

	r.Set(&cand)
	return r, correctSign | flippedSign
}

// Sqrt returns both square roots of a, r and -r, with ok set. If a is not a
// square it returns ok == false. The root of 0 is 0 and both results are 0.
func Sqrt(a *Element) (r, negR *Element, ok bool) {
	r = new(Element)
	_, wasSquare := r.SqrtRatio(a, feOne)
	if wasSquare != 1 {
		return nil, nil, false
	}
	negR = new(Element).Negate(r)
	return r, negR, true
}

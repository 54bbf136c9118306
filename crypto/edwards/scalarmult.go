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

package edwards

import "github.com/algorand/go-ed25519/crypto/ct"

// ScalarMult sets v = k * q, and returns v. k is a little-endian integer of
// any length and is not reduced.
//
// The ladder walks every bit of k from the most significant down to bit 0 and
// does the same swap, add, double, swap sequence for each bit, so the
// sequence of operations depends only on len(k).
func (v *Point) ScalarMult(k []byte, q *Point) *Point {
	r0 := NewIdentityPoint()
	r1 := new(Point).Set(q)

	// invariant: r1 = r0 + q
	for i := len(k)*8 - 1; i >= 0; i-- {
		b := ct.Bit(k, i)
		r0.swap(r1, b)
		r1.Add(r0, r1)
		r0.Double(r0)
		r0.swap(r1, b)
	}

	return v.Set(r0)
}

// ScalarBaseMult sets v = k * B, where B is the generator, and returns v.
func (v *Point) ScalarBaseMult(k []byte) *Point {
	return v.ScalarMult(k, basePoint)
}

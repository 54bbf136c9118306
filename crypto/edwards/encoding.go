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

import (
	"fmt"

	"github.com/algorand/go-ed25519/crypto/field"
)

// EncodingSize is the length of a compressed point.
const EncodingSize = 32

// Bytes returns the 32-byte compressed encoding of v: y little-endian with
// the parity of x in the top bit of the last byte.
func (v *Point) Bytes() []byte {
	x, y := v.Affine()
	out := y.Bytes()
	out[31] |= byte(1-x.IsEven()) << 7
	return out
}

// SetBytes sets v to the point encoded by x and returns v. An encoding is
// accepted only if y is canonical, the matching x exists, and the sign bit is
// clear when x = 0. On error v is unchanged.
//
// Encodings are public, so SetBytes may return early on failure.
func (v *Point) SetBytes(x []byte) (*Point, error) {
	if len(x) != EncodingSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidEncoding, len(x))
	}

	y := new(field.Element)
	if _, err := y.SetCanonicalBytes(x); err != nil {
		return nil, ErrNonCanonical
	}
	sign := int(x[31] >> 7)

	// x^2 = (y^2 - 1) / (d*y^2 + 1)
	var one, yy, u, w field.Element
	one.One()
	yy.Square(y)
	u.Subtract(&yy, &one)
	w.Multiply(&yy, d)
	w.Add(&w, &one)

	var xx field.Element
	if _, wasSquare := xx.SqrtRatio(&u, &w); wasSquare != 1 {
		return nil, ErrNotOnCurve
	}

	var zero field.Element
	if xx.Equal(&zero) == 1 && sign == 1 {
		return nil, ErrInvalidSign
	}

	// pick the root whose parity matches the sign bit
	var negX field.Element
	negX.Negate(&xx)
	xx.Select(&negX, &xx, (1-xx.IsEven())^sign)

	v.x.Set(&xx)
	v.y.Set(y)
	v.z.One()
	v.t.Multiply(&xx, y)
	return v, nil
}

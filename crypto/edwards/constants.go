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
	"encoding/hex"

	"github.com/algorand/go-ed25519/crypto/field"
)

// basePointEncoding is the compressed form of the generator, y = 4/5 with x even.
const basePointEncoding = "5866666666666666666666666666666666666666666666666666666666666666"

var (
	// d = -121665/121666, the curve constant.
	d = new(field.Element)
	// d2 = 2*d, used by the addition formula.
	d2 = new(field.Element)

	basePoint = new(Point)
)

func init() {
	var num, den field.Element
	num.Negate(num.SetUint64(121665))
	den.Invert(den.SetUint64(121666))
	d.Multiply(&num, &den)
	d2.Add(d, d)

	b, err := hex.DecodeString(basePointEncoding)
	if err != nil {
		panic(err)
	}
	if _, err := basePoint.SetBytes(b); err != nil {
		panic(err)
	}
}

// D returns a copy of the curve constant d.
func D() *field.Element {
	return new(field.Element).Set(d)
}

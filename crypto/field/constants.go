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

import "math/big"

// Exponents used by Invert and SqrtRatio, as 32-byte little-endian integers.
var (
	pMinus2      [Size]byte // p - 2
	pMinus5Over8 [Size]byte // (p - 5) / 8
	pMinus1Over4 [Size]byte // (p - 1) / 4
)

// sqrtM1 is a square root of -1 mod p, namely 2^((p-1)/4).
var sqrtM1 = new(Element)

// P returns p = 2^255 - 19 as a new big.Int.
func P() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	return p.Sub(p, big.NewInt(19))
}

func init() {
	p := P()
	leBytes(&pMinus2, new(big.Int).Sub(p, big.NewInt(2)))
	leBytes(&pMinus5Over8, new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(5)), 3))
	leBytes(&pMinus1Over4, new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 2))

	// 2 is not a square because p = 5 mod 8, so 2^((p-1)/2) = -1.
	two := new(Element).SetUint64(2)
	sqrtM1.Pow(two, pMinus1Over4[:])
}

// leBytes writes n into out as a little-endian integer. n must fit.
func leBytes(out *[Size]byte, n *big.Int) {
	var be [Size]byte
	n.FillBytes(be[:])
	for i := range be {
		out[i] = be[Size-1-i]
	}
}

// SqrtM1 returns a new element holding the square root of -1 used by SqrtRatio.
func SqrtM1() *Element {
	return new(Element).Set(sqrtM1)
}

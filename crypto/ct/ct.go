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

// Package ct holds the branch-free helpers shared by the field and curve code.
//
// Every function returns 0 or 1 as an int (or a full mask) instead of a bool,
// so that results can be combined with arithmetic without a conditional jump
// on secret data.
package ct

// Mask64 returns all ones if b == 1 and zero if b == 0.
// b must be 0 or 1.
func Mask64(b int) uint64 {
	return -uint64(b & 1)
}

// IsZero64 returns 1 if x == 0 and 0 otherwise.
func IsZero64(x uint64) int {
	// x|-x has its top bit set for every x != 0
	return int(1 ^ ((x | -x) >> 63))
}

// Eq64 returns 1 if a == b and 0 otherwise.
func Eq64(a, b uint64) int {
	return IsZero64(a ^ b)
}

// Select64 returns a if cond == 1 and b if cond == 0.
func Select64(a, b uint64, cond int) uint64 {
	m := Mask64(cond)
	return (a & m) | (b &^ m)
}

// Swap64 exchanges *a and *b if cond == 1 and leaves them untouched if cond == 0.
func Swap64(a, b *uint64, cond int) {
	t := Mask64(cond) & (*a ^ *b)
	*a ^= t
	*b ^= t
}

// BytesEqual returns 1 if a and b hold the same bytes and 0 otherwise.
// The time taken depends on the lengths, which are treated as public, but
// not on the contents.
func BytesEqual(a, b []byte) int {
	if len(a) != len(b) {
		return 0
	}
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return IsZero64(uint64(acc))
}

// Bit returns bit i of the little-endian integer k.
func Bit(k []byte, i int) int {
	return int(k[i>>3]>>(uint(i)&7)) & 1
}

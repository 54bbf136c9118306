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

// Package field implements arithmetic modulo p = 2^255 - 19.
//
// Elements use five 51-bit limbs. Arithmetic results are only lightly reduced
// (every limb fits in 52 bits); Bytes, Equal and IsEven always work on the
// canonical representative in [0, p).
package field

import (
	"encoding/binary"

	"github.com/algorand/go-ed25519/crypto/ct"
)

// Element is an element of GF(2^255 - 19). The zero value is 0.
//
// An element t represents the integer
//
//	t.l0 + t.l1*2^51 + t.l2*2^102 + t.l3*2^153 + t.l4*2^204
type Element struct {
	l0 uint64
	l1 uint64
	l2 uint64
	l3 uint64
	l4 uint64
}

const maskLow51Bits uint64 = (1 << 51) - 1

// Size is the length of an encoded element.
const Size = 32

var feZero = &Element{0, 0, 0, 0, 0}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = &Element{1, 0, 0, 0, 0}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetUint64 sets v = x, and returns v.
func (v *Element) SetUint64(x uint64) *Element {
	*v = Element{x & maskLow51Bits, x >> 51, 0, 0, 0}
	return v
}

// reduce brings v into its canonical form in [0, p).
func (v *Element) reduce() *Element {
	v.carryPropagate()

	// v < 2^255 + 2^13 * 19 now. It is >= p exactly when v + 19 carries out
	// of bit 255, so c is 1 in that case and 0 otherwise.
	c := (v.l0 + 19) >> 51
	c = (v.l1 + c) >> 51
	c = (v.l2 + c) >> 51
	c = (v.l3 + c) >> 51
	c = (v.l4 + c) >> 51

	// v - p = v + 19 - 2^255: add 19*c and drop bit 255.
	v.l0 += 19 * c

	v.l1 += v.l0 >> 51
	v.l0 = v.l0 & maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 = v.l1 & maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 = v.l2 & maskLow51Bits
	v.l4 += v.l3 >> 51
	v.l3 = v.l3 & maskLow51Bits
	v.l4 = v.l4 & maskLow51Bits

	return v
}

// Add sets v = a + b, and returns v.
func (v *Element) Add(a, b *Element) *Element {
	v.l0 = a.l0 + b.l0
	v.l1 = a.l1 + b.l1
	v.l2 = a.l2 + b.l2
	v.l3 = a.l3 + b.l3
	v.l4 = a.l4 + b.l4
	return v.carryPropagate()
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	// Add 2p first so that the limb subtraction cannot underflow.
	v.l0 = (a.l0 + 0xFFFFFFFFFFFDA) - b.l0
	v.l1 = (a.l1 + 0xFFFFFFFFFFFFE) - b.l1
	v.l2 = (a.l2 + 0xFFFFFFFFFFFFE) - b.l2
	v.l3 = (a.l3 + 0xFFFFFFFFFFFFE) - b.l3
	v.l4 = (a.l4 + 0xFFFFFFFFFFFFE) - b.l4
	return v.carryPropagate()
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// SetBytes sets v to the little-endian value of x modulo p. The most
// significant bit of x[31] is ignored. It returns ErrInvalidLength if x is not
// exactly Size bytes.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != Size {
		return nil, ErrInvalidLength
	}

	// bits 0:51
	v.l0 = binary.LittleEndian.Uint64(x[0:8])
	v.l0 &= maskLow51Bits
	// bits 51:102 (bytes 6:14, shift 3)
	v.l1 = binary.LittleEndian.Uint64(x[6:14]) >> 3
	v.l1 &= maskLow51Bits
	// bits 102:153 (bytes 12:20, shift 6)
	v.l2 = binary.LittleEndian.Uint64(x[12:20]) >> 6
	v.l2 &= maskLow51Bits
	// bits 153:204 (bytes 19:27, shift 1)
	v.l3 = binary.LittleEndian.Uint64(x[19:27]) >> 1
	v.l3 &= maskLow51Bits
	// bits 204:255 (bytes 24:32, shift 12 to stay inside the buffer)
	v.l4 = binary.LittleEndian.Uint64(x[24:32]) >> 12
	v.l4 &= maskLow51Bits

	return v, nil
}

// SetCanonicalBytes is like SetBytes, but rejects an input whose low 255 bits
// encode an integer >= p with ErrNonCanonical. The most significant bit of
// x[31] is still ignored.
func (v *Element) SetCanonicalBytes(x []byte) (*Element, error) {
	var t Element
	if _, err := t.SetBytes(x); err != nil {
		return nil, err
	}

	var want [Size]byte
	copy(want[:], x)
	want[31] &= 0x7f
	var got [Size]byte
	if ct.BytesEqual(t.bytes(&got), want[:]) != 1 {
		return nil, ErrNonCanonical
	}

	*v = t
	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	var out [Size]byte
	return v.bytes(&out)
}

func (v *Element) bytes(out *[Size]byte) []byte {
	t := *v
	t.reduce()

	var buf [8]byte
	for i, l := range [5]uint64{t.l0, t.l1, t.l2, t.l3, t.l4} {
		bitsOffset := i * 51
		binary.LittleEndian.PutUint64(buf[:], l<<uint(bitsOffset%8))
		for j, bb := range buf {
			off := bitsOffset/8 + j
			if off >= len(out) {
				break
			}
			out[off] |= bb
		}
	}

	return out[:]
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	a, b := *v, *u
	a.reduce()
	b.reduce()

	acc := a.l0 ^ b.l0
	acc |= a.l1 ^ b.l1
	acc |= a.l2 ^ b.l2
	acc |= a.l3 ^ b.l3
	acc |= a.l4 ^ b.l4
	return ct.IsZero64(acc)
}

// IsEven returns 1 if the canonical value of v is even, and 0 otherwise.
// Even elements are the "positive" ones in the Ed25519 sign convention.
func (v *Element) IsEven() int {
	t := *v
	t.reduce()
	return int(^t.l0 & 1)
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	v.l0 = ct.Select64(a.l0, b.l0, cond)
	v.l1 = ct.Select64(a.l1, b.l1, cond)
	v.l2 = ct.Select64(a.l2, b.l2, cond)
	v.l3 = ct.Select64(a.l3, b.l3, cond)
	v.l4 = ct.Select64(a.l4, b.l4, cond)
	return v
}

// Swap swaps v and u if cond == 1 or leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	ct.Swap64(&v.l0, &u.l0, cond)
	ct.Swap64(&v.l1, &u.l1, cond)
	ct.Swap64(&v.l2, &u.l2, cond)
	ct.Swap64(&v.l3, &u.l3, cond)
	ct.Swap64(&v.l4, &u.l4, cond)
}

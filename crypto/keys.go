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

package crypto

import "github.com/algorand/go-ed25519/crypto/edwards"

// KeyMaterial is everything signing needs, expanded from a seed.
type KeyMaterial struct {
	// Scalar is the clamped secret scalar, little-endian. It lies in
	// [2^254, 2^255) and is a multiple of 8.
	Scalar [32]byte
	// Prefix seeds the deterministic per-message nonce.
	Prefix [32]byte
	// PublicKey is the encoding of Scalar * B.
	PublicKey PublicKey
}

// Wipe zeroes the secret parts of km.
func (km *KeyMaterial) Wipe() {
	for i := range km.Scalar {
		km.Scalar[i] = 0
	}
	for i := range km.Prefix {
		km.Prefix[i] = 0
	}
}

// clamp clears the cofactor bits and bit 255 of a scalar and sets bit 254.
func clamp(k *[32]byte) {
	k[0] &= 0xF8
	k[31] &= 0x7F
	k[31] |= 0x40
}

// DeriveKeys expands seed with the scheme's hash into signing key material.
func (s Scheme) DeriveKeys(seed Seed) *KeyMaterial {
	h := s.hashParts(seed[:])
	defer wipe(h[:])

	km := new(KeyMaterial)
	copy(km.Scalar[:], h[:32])
	clamp(&km.Scalar)
	copy(km.Prefix[:], h[32:])

	A := new(edwards.Point).ScalarBaseMult(km.Scalar[:])
	copy(km.PublicKey[:], A.Bytes())
	return km
}

// DeriveKeys expands seed into signing key material using DefaultScheme.
func DeriveKeys(seed Seed) *KeyMaterial {
	return DefaultScheme.DeriveKeys(seed)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

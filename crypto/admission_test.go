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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/go-ed25519/crypto/edwards"
	"github.com/algorand/go-ed25519/test/partitiontest"
)

func TestIsCanonicalPoint(t *testing.T) {
	partitiontest.PartitionTest(t)

	for i := 0; i < 16; i++ {
		pk := DeriveKeys(GenerateSeed()).PublicKey
		require.True(t, IsCanonicalPoint(pk))
	}

	// y = p and y = p + 1
	var p [32]byte
	copy(p[:], mustHex(t, "edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"))
	require.False(t, IsCanonicalPoint(p))
	p[0] = 0xee
	require.False(t, IsCanonicalPoint(p))

	require.False(t, IsCanonicalPoint(negativeZeroIdentity))
	require.False(t, IsCanonicalPoint(negativeZeroOrderTwo))
}

// TestAdmissionMatchesDecoding checks that every encoding IsCanonicalPoint
// rejects is also rejected by point decoding, for the special encodings.
func TestAdmissionMatchesDecoding(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, enc := range [][32]byte{negativeZeroIdentity, negativeZeroOrderTwo} {
		_, err := new(edwards.Point).SetBytes(enc[:])
		require.ErrorIs(t, err, edwards.ErrInvalidSign)
	}
	for _, enc := range smallOrderPoints[5:] {
		_, err := new(edwards.Point).SetBytes(enc[:])
		require.ErrorIs(t, err, edwards.ErrNonCanonical)
	}
}

func TestHasSmallOrder(t *testing.T) {
	partitiontest.PartitionTest(t)

	identity := edwards.NewIdentityPoint()
	for _, enc := range smallOrderPoints[:5] {
		require.True(t, HasSmallOrder(enc))
		signed := enc
		signed[31] |= 0x80
		require.True(t, HasSmallOrder(signed))

		// the canonical ones really are torsion points
		p, err := new(edwards.Point).SetBytes(enc[:])
		require.NoError(t, err)
		require.Equal(t, 1, new(edwards.Point).ScalarMult([]byte{8}, p).Equal(identity))
	}

	for i := 0; i < 16; i++ {
		require.False(t, HasSmallOrder(DeriveKeys(GenerateSeed()).PublicKey))
	}
}

func TestVerifyStrictRejectsSmallOrderKey(t *testing.T) {
	partitiontest.PartitionTest(t)

	var pk PublicKey
	copy(pk[:], smallOrderPoints[1][:])
	seed := GenerateSeed()
	sig := Sign(seed, []byte("m"))
	require.ErrorIs(t, VerifyStrict(pk, []byte("m"), sig), ErrBadPublicKey)
	require.ErrorIs(t, VerifyStrict(negativeZeroIdentity, []byte("m"), sig), ErrBadPublicKey)

	var badR Signature
	copy(badR[:32], negativeZeroIdentity[:])
	require.ErrorIs(t, VerifyStrict(DeriveKeys(seed).PublicKey, []byte("m"), badR), ErrBadSignature)
}

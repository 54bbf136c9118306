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
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"math/big"
	"testing"

	"github.com/hdevalence/ed25519consensus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"
	"pgregory.net/rapid"

	"github.com/algorand/go-ed25519/test/partitiontest"
)

type rfcVector struct {
	seed, public, message, signature string
}

// RFC 8032 section 7.1, tests 1 to 3
var rfc8032Vectors = []rfcVector{
	{
		seed:      "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
		public:    "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		message:   "",
		signature: "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
	},
	{
		seed:      "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb",
		public:    "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
		message:   "72",
		signature: "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00",
	},
	{
		seed:      "c5aa8df43f9f837bedb7442f31dcb7b166d38535076f094b85ce3a2e0b4458f7",
		public:    "fc51cd8e6218a1a38da47ed00230f0580816ed13ba3303ac5deb911548908025",
		message:   "af82",
		signature: "6291d657deec24024827e69c3abe01a30ce548a284743a445e3680d7db5ac3ac18ff9b538d16f290ae67f760984dc6594a7c15e9716ed28dc027beceea1ec40a",
	},
}

func mustSeed(t *testing.T, s string) (seed Seed) {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, SeedSize)
	copy(seed[:], b)
	return seed
}

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestRFC8032Vectors(t *testing.T) {
	partitiontest.PartitionTest(t)

	for i, v := range rfc8032Vectors {
		seed := mustSeed(t, v.seed)
		msg := mustHex(t, v.message)

		km := DeriveKeys(seed)
		require.Equal(t, v.public, km.PublicKey.String(), "vector %d", i+1)

		sig := Sign(seed, msg)
		require.Equal(t, v.signature, sig.String(), "vector %d", i+1)
		require.Equal(t, sig, SignWithKeys(seed, km.PublicKey, msg))

		pk, err := PublicKeyFromString(v.public)
		require.NoError(t, err)
		parsed, err := SignatureFromString(v.signature)
		require.NoError(t, err)
		require.NoError(t, Verify(pk, msg, parsed), "vector %d", i+1)
		require.NoError(t, VerifyStrict(pk, msg, parsed), "vector %d", i+1)
	}
}

func TestSignDeterministic(t *testing.T) {
	partitiontest.PartitionTest(t)

	seed := GenerateSeed()
	msg := []byte("deterministic")
	ref := Sign(seed, msg)
	for i := 0; i < 10; i++ {
		require.Equal(t, ref, Sign(seed, msg))
	}
}

func TestSignVerifyEmptyMessage(t *testing.T) {
	partitiontest.PartitionTest(t)

	s := GenerateSignatureSecrets(GenerateSeed())
	require.True(t, s.SignatureVerifier.VerifyBytes(nil, s.SignBytes(nil)))
	require.True(t, s.SignatureVerifier.VerifyBytes([]byte{}, s.SignBytes([]byte{})))
}

func TestGenerateSignatureSecrets(t *testing.T) {
	partitiontest.PartitionTest(t)

	seed := GenerateSeed()
	ref := GenerateSignatureSecrets(seed)
	require.Equal(t, seed, ref.SK.Seed())
	require.Equal(t, ref.SignatureVerifier, ref.SK.Public())
	for i := 0; i < 10; i++ {
		secrets := GenerateSignatureSecrets(seed)
		require.Equal(t, ref.SignatureVerifier, secrets.SignatureVerifier)
		require.Equal(t, ref.SK, secrets.SK)
	}
}

func TestSignVerifyProperty(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		var seed Seed
		copy(seed[:], rapid.SliceOfN(rapid.Byte(), SeedSize, SeedSize).Draw(t, "seed"))
		msg := rapid.SliceOfN(rapid.Byte(), 0, 256).Draw(t, "msg")

		km := DeriveKeys(seed)
		sig := Sign(seed, msg)
		if err := Verify(km.PublicKey, msg, sig); err != nil {
			t.Fatalf("valid signature rejected: %v", err)
		}

		// tampering with a single bit of the message breaks verification
		if len(msg) > 0 {
			bit := rapid.IntRange(0, len(msg)*8-1).Draw(t, "msgbit")
			bad := append([]byte(nil), msg...)
			bad[bit/8] ^= 1 << (bit % 8)
			if err := Verify(km.PublicKey, bad, sig); err == nil {
				t.Fatalf("tampered message accepted")
			}
		}

		// and so does a single bit of the signature
		bit := rapid.IntRange(0, SignatureSize*8-1).Draw(t, "sigbit")
		badSig := sig
		badSig[bit/8] ^= 1 << (bit % 8)
		if err := Verify(km.PublicKey, msg, badSig); err == nil {
			t.Fatalf("tampered signature accepted")
		}
	})
}

func TestMatchesXCrypto(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		var seed Seed
		copy(seed[:], rapid.SliceOfN(rapid.Byte(), SeedSize, SeedSize).Draw(t, "seed"))
		msg := rapid.SliceOfN(rapid.Byte(), 0, 128).Draw(t, "msg")

		priv := ed25519.NewKeyFromSeed(seed[:])
		want := ed25519.Sign(priv, msg)

		s := GenerateSignatureSecrets(seed)
		if string(s.SK[:]) != string(priv) {
			t.Fatalf("private key layout differs from x/crypto")
		}
		sig := s.SignBytes(msg)
		if string(sig[:]) != string(want) {
			t.Fatalf("signature differs from x/crypto")
		}
		if !ed25519.Verify(ed25519.PublicKey(s.SignatureVerifier[:]), msg, sig[:]) {
			t.Fatalf("x/crypto rejected our signature")
		}
		if !ed25519consensus.Verify(s.SignatureVerifier[:], msg, sig[:]) {
			t.Fatalf("ed25519consensus rejected our signature")
		}
	})
}

func TestVerifyErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	seed := GenerateSeed()
	km := DeriveKeys(seed)
	msg := []byte("error kinds")
	sig := Sign(seed, msg)

	// R with y = p does not decode
	badR := sig
	copy(badR[:32], mustHex(t, "edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"))
	require.ErrorIs(t, Verify(km.PublicKey, msg, badR), ErrBadSignature)

	// public key with y = p does not decode
	var badPK PublicKey
	copy(badPK[:], mustHex(t, "edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"))
	require.ErrorIs(t, Verify(badPK, msg, sig), ErrBadPublicKey)

	// valid encodings, wrong message
	require.ErrorIs(t, Verify(km.PublicKey, []byte("other"), sig), ErrSignatureMismatch)

	// another key
	other := DeriveKeys(GenerateSeed())
	require.ErrorIs(t, Verify(other.PublicKey, msg, sig), ErrSignatureMismatch)
}

func TestVerifyRejectsUnreducedS(t *testing.T) {
	partitiontest.PartitionTest(t)

	seed := GenerateSeed()
	km := DeriveKeys(seed)
	msg := []byte("malleable")
	sig := Sign(seed, msg)

	L, ok := new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	require.True(t, ok)

	le := sig[32:]
	be := make([]byte, 32)
	for i := range le {
		be[31-i] = le[i]
	}
	s := new(big.Int).SetBytes(be)
	s.Add(s, L)

	var malleated Signature
	copy(malleated[:32], sig[:32])
	s.FillBytes(be)
	for i := range be {
		malleated[32+i] = be[31-i]
	}
	require.ErrorIs(t, Verify(km.PublicKey, msg, malleated), ErrBadSignature)
	require.NoError(t, Verify(km.PublicKey, msg, sig))
}

func TestVerifyZeros(t *testing.T) {
	partitiontest.PartitionTest(t)

	var pk SignatureVerifier
	var sig Signature
	require.True(t, pk.Blank())
	require.True(t, sig.Blank())
	for x := byte(0); x < 255; x++ {
		require.Error(t, VerifyStrict(pk, []byte{x}, sig), "zero sig with zero pk verified message %x", x)
	}
}

func TestSchemeHashCollaborator(t *testing.T) {
	partitiontest.PartitionTest(t)

	n := 0
	s := Scheme{NewHash: func() hash.Hash {
		n++
		return sha512.New()
	}}

	v := rfc8032Vectors[0]
	seed := mustSeed(t, v.seed)
	sig := s.Sign(seed, nil)
	require.Equal(t, v.signature, sig.String())
	// seed expansion, nonce and challenge
	require.Equal(t, 3, n)

	km := s.DeriveKeys(seed)
	require.NoError(t, s.Verify(km.PublicKey, nil, sig))
}

func TestFromStringErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, err := PublicKeyFromString("zz")
	require.Error(t, err)
	_, err = PublicKeyFromString("abcd")
	require.ErrorIs(t, err, errInvalidLength)
	_, err = SignatureFromString(rfc8032Vectors[0].public)
	require.ErrorIs(t, err, errInvalidLength)
}

func BenchmarkSign(b *testing.B) {
	seed := GenerateSeed()
	msg := []byte("benchmark message")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Sign(seed, msg)
	}
}

func BenchmarkVerify(b *testing.B) {
	seed := GenerateSeed()
	msg := []byte("benchmark message")
	pk := DeriveKeys(seed).PublicKey
	sig := Sign(seed, msg)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Verify(pk, msg, sig)
	}
}

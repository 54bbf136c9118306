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
	"filippo.io/edwards25519"

	"github.com/algorand/go-ed25519/crypto/edwards"
)

// Sign returns the deterministic signature of message under seed.
func (s Scheme) Sign(seed Seed, message []byte) Signature {
	km := s.DeriveKeys(seed)
	defer km.Wipe()
	return s.sign(km, km.PublicKey, message)
}

// SignWithKeys signs message under seed, placing public in the challenge
// hash instead of deriving it. public is not checked against seed; a
// mismatched key yields a signature that does not verify.
func (s Scheme) SignWithKeys(seed Seed, public PublicKey, message []byte) Signature {
	km := s.DeriveKeys(seed)
	defer km.Wipe()
	return s.sign(km, public, message)
}

func (s Scheme) sign(km *KeyMaterial, public PublicKey, message []byte) (sig Signature) {
	// r = H(prefix || M) mod L
	rh := s.hashParts(km.Prefix[:], message)
	defer wipe(rh[:])
	r, err := edwards25519.NewScalar().SetUniformBytes(rh[:])
	if err != nil {
		panic(err)
	}
	R := new(edwards.Point).ScalarBaseMult(r.Bytes())
	copy(sig[:32], R.Bytes())

	// k = H(R || A || M) mod L
	kh := s.hashParts(sig[:32], public[:], message)
	k, err := edwards25519.NewScalar().SetUniformBytes(kh[:])
	if err != nil {
		panic(err)
	}

	a, err := edwards25519.NewScalar().SetBytesWithClamping(km.Scalar[:])
	if err != nil {
		panic(err)
	}

	// S = k*a + r mod L
	S := edwards25519.NewScalar().MultiplyAdd(k, a, r)
	copy(sig[32:], S.Bytes())
	return sig
}

// Sign returns the deterministic signature of message under seed using
// DefaultScheme.
func Sign(seed Seed, message []byte) Signature {
	return DefaultScheme.Sign(seed, message)
}

// SignWithKeys is Scheme.SignWithKeys for DefaultScheme.
func SignWithKeys(seed Seed, public PublicKey, message []byte) Signature {
	return DefaultScheme.SignWithKeys(seed, public, message)
}

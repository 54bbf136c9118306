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
	"encoding/hex"
	"fmt"
)

// Sizes of the Ed25519 wire encodings.
const (
	SeedSize       = 32
	PublicKeySize  = 32
	PrivateKeySize = 64
	SignatureSize  = 64
)

// A Seed holds the entropy needed to generate cryptographic keys.
type Seed [SeedSize]byte

// PublicKey is the 32-byte compressed encoding of a curve point.
type PublicKey [PublicKeySize]byte

// PrivateKey is a seed followed by its public key.
type PrivateKey [PrivateKeySize]byte

// A Signature is a cryptographic signature, R || S. It proves that a message
// was produced by a holder of a cryptographic secret.
type Signature [SignatureSize]byte

// BlankSignature is an empty signature structure, containing nothing but zeroes
var BlankSignature = Signature{}

// Blank tests to see if the given signature contains only zeros
func (s *Signature) Blank() bool {
	return (*s) == BlankSignature
}

// String returns the signature in hex.
func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// BlankPublicKey is the all-zero public key.
var BlankPublicKey = PublicKey{}

// Blank tests to see if the given public key contains only zeros
func (pk *PublicKey) Blank() bool {
	return (*pk) == BlankPublicKey
}

// String returns the public key in hex.
func (pk PublicKey) String() string {
	return hex.EncodeToString(pk[:])
}

// Seed returns the seed half of the private key.
func (sk PrivateKey) Seed() (seed Seed) {
	copy(seed[:], sk[:SeedSize])
	return seed
}

// Public returns the public key half of the private key.
func (sk PrivateKey) Public() (pk PublicKey) {
	copy(pk[:], sk[SeedSize:])
	return pk
}

// PublicKeyFromString parses a hex encoded public key.
func PublicKeyFromString(s string) (pk PublicKey, err error) {
	err = decodeHexInto(pk[:], s)
	return pk, err
}

// SignatureFromString parses a hex encoded signature.
func SignatureFromString(s string) (sig Signature, err error) {
	err = decodeHexInto(sig[:], s)
	return sig, err
}

func decodeHexInto(dst []byte, s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return fmt.Errorf("%w: want %d bytes, got %d", errInvalidLength, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

// SignatureVerifier is used to identify the holder of SignatureSecrets
// and verify the authenticity of Signatures.
type SignatureVerifier = PublicKey

// SignatureSecrets are used by an entity to produce unforgeable signatures over
// a message.
type SignatureSecrets struct {
	SignatureVerifier
	SK PrivateKey
}

// GenerateSignatureSecrets creates SignatureSecrets from a source of entropy.
func GenerateSignatureSecrets(seed Seed) *SignatureSecrets {
	km := DeriveKeys(seed)
	defer km.Wipe()

	s := &SignatureSecrets{SignatureVerifier: km.PublicKey}
	copy(s.SK[:SeedSize], seed[:])
	copy(s.SK[SeedSize:], km.PublicKey[:])
	return s
}

// SignBytes signs a message directly, without first hashing.
// Caller is responsible for domain separation.
func (s *SignatureSecrets) SignBytes(message []byte) Signature {
	return SignWithKeys(s.SK.Seed(), s.SignatureVerifier, message)
}

// VerifyBytes verifies a signature, where the message is not hashed first.
// Caller is responsible for domain separation.
func (v SignatureVerifier) VerifyBytes(message []byte, sig Signature) bool {
	return Verify(v, message, sig) == nil
}

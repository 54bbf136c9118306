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
	"fmt"

	"filippo.io/edwards25519"

	"github.com/algorand/go-ed25519/crypto/edwards"
)

// Verify checks sig over message under public. It returns nil on success,
// and otherwise an error matching ErrBadSignature, ErrBadPublicKey or
// ErrSignatureMismatch under errors.Is.
func (s Scheme) Verify(public PublicKey, message []byte, sig Signature) error {
	R, err := new(edwards.Point).SetBytes(sig[:32])
	if err != nil {
		return fmt.Errorf("%w: R: %v", ErrBadSignature, err)
	}

	// S must be fully reduced, otherwise S + L would also verify
	if _, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:]); err != nil {
		return fmt.Errorf("%w: S is not below the group order", ErrBadSignature)
	}

	A, err := new(edwards.Point).SetBytes(public[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadPublicKey, err)
	}

	// k is used at its full 512-bit width
	k := s.hashParts(sig[:32], public[:], message)

	lhs := new(edwards.Point).ScalarBaseMult(sig[32:])
	rhs := new(edwards.Point).ScalarMult(k[:], A)
	rhs.Add(R, rhs)
	if lhs.Equal(rhs) != 1 {
		return ErrSignatureMismatch
	}
	return nil
}

// Verify checks sig over message under public using DefaultScheme.
func Verify(public PublicKey, message []byte, sig Signature) error {
	return DefaultScheme.Verify(public, message, sig)
}

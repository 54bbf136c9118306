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

import "errors"

var (
	// ErrBadSignature is returned when R does not decode to a curve point or
	// when S is not below the group order.
	ErrBadSignature = errors.New("bad signature")
	// ErrBadPublicKey is returned when the public key does not decode to a
	// curve point.
	ErrBadPublicKey = errors.New("bad public key")
	// ErrSignatureMismatch is returned when both halves decode but the
	// verification equation does not hold for the message.
	ErrSignatureMismatch = errors.New("signature does not match message")
)

var (
	errSmallOrderKey   = errors.New("public key has small order")
	errNonCanonicalKey = errors.New("non-canonical point encoding")
	errInvalidLength   = errors.New("invalid length")
)

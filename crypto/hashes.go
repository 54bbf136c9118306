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
	"hash"
)

// Scheme binds the signature algorithm to its hash collaborator. NewHash must
// return a fresh SHA-512 compatible state with a 64-byte output.
type Scheme struct {
	NewHash func() hash.Hash
}

// DefaultScheme is Ed25519 over the standard library SHA-512.
var DefaultScheme = Scheme{NewHash: sha512.New}

// hashParts returns H(parts[0] || parts[1] || ...) as a 64-byte array.
func (s Scheme) hashParts(parts ...[]byte) (out [64]byte) {
	h := s.NewHash()
	for _, p := range parts {
		h.Write(p)
	}
	h.Sum(out[:0])
	return out
}

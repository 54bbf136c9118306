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

package edwards

import "errors"

var (
	// ErrInvalidEncoding is returned for an encoding that is not 32 bytes
	ErrInvalidEncoding = errors.New("edwards: invalid point encoding length")
	// ErrNonCanonical is returned when the encoded y coordinate is not below p
	ErrNonCanonical = errors.New("edwards: non-canonical y coordinate")
	// ErrNotOnCurve is returned when no curve point has the given coordinates
	ErrNotOnCurve = errors.New("edwards: point is not on the curve")
	// ErrInvalidSign is returned when x = 0 is encoded with the sign bit set
	ErrInvalidSign = errors.New("edwards: sign bit set for x = 0")
)

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

// Package edwards implements the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2,  d = -121665/121666
//
// over GF(2^255 - 19), the curve underlying Ed25519.
//
// Points are kept in extended coordinates (X:Y:Z:T) with x = X/Z, y = Y/Z and
// X*Y = T*Z. Many tuples represent the same point, so Equal compares affine
// coordinates and never the raw tuples.
package edwards

import "github.com/algorand/go-ed25519/crypto/field"

// Point is a point on the curve. The zero value is NOT valid; use
// NewIdentityPoint, NewGeneratorPoint, SetBytes or NewPointFromAffine.
type Point struct {
	x, y, z, t field.Element

	// Points must be compared with Equal.
	_ incomparable
}

type incomparable [0]func()

// NewIdentityPoint returns a new Point set to the neutral element (0, 1).
func NewIdentityPoint() *Point {
	p := new(Point)
	p.x.Zero()
	p.y.One()
	p.z.One()
	p.t.Zero()
	return p
}

// NewGeneratorPoint returns a new Point set to the canonical generator.
func NewGeneratorPoint() *Point {
	return new(Point).Set(basePoint)
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// NewPointFromAffine returns the point (x, y), or ErrNotOnCurve if (x, y)
// does not satisfy the curve equation.
func NewPointFromAffine(x, y *field.Element) (*Point, error) {
	var xx, yy, lhs, rhs field.Element
	xx.Square(x)
	yy.Square(y)
	lhs.Subtract(&yy, &xx)
	rhs.Multiply(&xx, &yy)
	rhs.Multiply(&rhs, d)
	rhs.Add(&rhs, new(field.Element).One())
	if lhs.Equal(&rhs) != 1 {
		return nil, ErrNotOnCurve
	}

	p := new(Point)
	p.x.Set(x)
	p.y.Set(y)
	p.z.One()
	p.t.Multiply(x, y)
	return p, nil
}

// Affine returns the affine coordinates (X/Z, Y/Z) of v.
func (v *Point) Affine() (x, y *field.Element) {
	var zInv field.Element
	zInv.Invert(&v.z)
	x = new(field.Element).Multiply(&v.x, &zInv)
	y = new(field.Element).Multiply(&v.y, &zInv)
	return x, y
}

// IsOnCurve reports whether v is a well formed point: Z != 0, the projective
// curve equation holds and X*Y == T*Z.
func (v *Point) IsOnCurve() bool {
	var zero field.Element
	if v.z.Equal(&zero) == 1 {
		return false
	}

	var xx, yy, zz, lhs, rhs, tmp field.Element
	xx.Square(&v.x)
	yy.Square(&v.y)
	zz.Square(&v.z)

	// (-X^2 + Y^2) * Z^2 == Z^4 + d * X^2 * Y^2
	lhs.Subtract(&yy, &xx)
	lhs.Multiply(&lhs, &zz)
	rhs.Square(&zz)
	tmp.Multiply(&xx, &yy)
	tmp.Multiply(&tmp, d)
	rhs.Add(&rhs, &tmp)
	if lhs.Equal(&rhs) != 1 {
		return false
	}

	var xy, tz field.Element
	xy.Multiply(&v.x, &v.y)
	tz.Multiply(&v.t, &v.z)
	return xy.Equal(&tz) == 1
}

// Add sets v = p + q, and returns v.
//
// This is the unified add-2008-hwcd-3 formula, valid for p == q as well.
func (v *Point) Add(p, q *Point) *Point {
	var a, b, c, dd, e, f, g, h, t1, t2 field.Element

	a.Multiply(t1.Subtract(&p.y, &p.x), t2.Subtract(&q.y, &q.x))
	b.Multiply(t1.Add(&p.y, &p.x), t2.Add(&q.y, &q.x))
	c.Multiply(c.Multiply(&p.t, d2), &q.t)
	dd.Multiply(&p.z, &q.z)
	dd.Add(&dd, &dd)

	e.Subtract(&b, &a)
	f.Subtract(&dd, &c)
	g.Add(&dd, &c)
	h.Add(&b, &a)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&g, &h)
	v.t.Multiply(&e, &h)
	v.z.Multiply(&f, &g)
	return v
}

// Double sets v = p + p, and returns v.
//
// This is dbl-2008-hwcd with a = -1.
func (v *Point) Double(p *Point) *Point {
	var a, b, c, dd, e, f, g, h field.Element

	a.Square(&p.x)
	b.Square(&p.y)
	c.Square(&p.z)
	c.Add(&c, &c)
	dd.Negate(&a)
	e.Add(&p.x, &p.y)
	e.Square(&e)
	e.Subtract(&e, &a)
	e.Subtract(&e, &b)
	g.Add(&dd, &b)
	f.Subtract(&g, &c)
	h.Subtract(&dd, &b)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&g, &h)
	v.t.Multiply(&e, &h)
	v.z.Multiply(&f, &g)
	return v
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Negate(&p.t)
	return v
}

// Equal returns 1 if v and u are the same point, and 0 otherwise.
func (v *Point) Equal(u *Point) int {
	x1, y1 := v.Affine()
	x2, y2 := u.Affine()
	return x1.Equal(x2) & y1.Equal(y2)
}

// swap exchanges v and u if cond == 1.
func (v *Point) swap(u *Point, cond int) {
	v.x.Swap(&u.x, cond)
	v.y.Swap(&u.y, cond)
	v.z.Swap(&u.z, cond)
	v.t.Swap(&u.t, cond)
}

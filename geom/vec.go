/*package geom contains the integer vector algebra used to build homogeneous
coordinates for points and lines in a projective plane.

All arithmetic is done on int64 values and wraps on overflow, following Go's
usual two's complement rules. No function here checks for overflow; callers
that care need to bound their coordinates themselves.
*/
package geom

// Vec is a three dimensional integer vector. Depending on context it holds
// the homogeneous coordinates of a point, the coefficients of a line, or a
// pair of weights.
type Vec [3]int64

// Dot returns the dot product of a and b.
func Dot(a, b Vec) int64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the cross product of a and b.
func Cross(a, b Vec) Vec {
	out := Vec{}
	a.CrossAt(&b, &out)
	return out
}

// Dot computes the dot product of v and u.
func (v *Vec) Dot(u *Vec) int64 {
	return Dot(*v, *u)
}

// CrossAt computes v cross u and writes the result to out. out may alias v
// or u.
func (v *Vec) CrossAt(u, out *Vec) {
	x := v[1]*u[2] - v[2]*u[1]
	y := v[2]*u[0] - v[0]*u[2]
	z := v[0]*u[1] - v[1]*u[0]
	out[0], out[1], out[2] = x, y, z
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{-v[0], -v[1], -v[2]}
}

// IsZero returns true if every component of v is zero. The zero vector is
// not a valid set of homogeneous coordinates.
func (v Vec) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

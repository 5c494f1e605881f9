/*package plane checks incidence axioms of a projective plane against any
concrete point/line representation.

A model is a pair of types, P and D, where P plays the role of points and D
plays the role of lines (or the other way around: the roles are symmetric).
Each type knows when it is incident to a value of the other type and how to
meet with another value of its own type. Nothing here knows what the types
look like internally.
*/
package plane

// Primal is the capability set of the "point" role of a model. P is the
// implementing type and D is its dual.
type Primal[P, D any] interface {
	comparable
	// Incident returns true if the receiver lies on d.
	Incident(d D) bool
	// Meet returns the dual object through the receiver and q.
	Meet(q P) D
}

// Dual is the capability set of the "line" role of a model. Meet on a Dual
// is the join of two lines.
type Dual[D, P any] interface {
	comparable
	Incident(p P) bool
	Meet(m D) P
}

// CheckPlaneAxiom returns true if p and q determine a single dual object
// regardless of order and that object is incident to both of them.
//
// If p.Meet(q) and q.Meet(p) disagree the model's Meet is order dependent
// for this pair, and CheckPlaneAxiom returns false. p == q is allowed; the
// result is whatever the model's Meet and Incident say.
func CheckPlaneAxiom[P Primal[P, D], D Dual[D, P]](p, q P) bool {
	l, m := p.Meet(q), q.Meet(p)
	if l != m {
		return false
	}
	return l.Incident(p) && l.Incident(q)
}

// Collinear returns true if r is incident to p.Meet(q).
//
// This is only symmetric in p and q when the model passes CheckPlaneAxiom
// for that pair.
func Collinear[P Primal[P, D], D Dual[D, P]](p, q, r P) bool {
	return p.Meet(q).Incident(r)
}

// CheckDualAxiom is CheckPlaneAxiom with the roles swapped: l and m must
// determine a single primal object incident to both.
func CheckDualAxiom[P Primal[P, D], D Dual[D, P]](l, m D) bool {
	return CheckPlaneAxiom[D, P](l, m)
}

// Concurrent returns true if n passes through l.Meet(m), i.e. the three
// dual objects share a primal.
func Concurrent[P Primal[P, D], D Dual[D, P]](l, m, n D) bool {
	return Collinear[D, P](l, m, n)
}

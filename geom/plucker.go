package geom

// Plucker returns the linear combination lambda*a + mu*b. Varying the
// weights walks the pencil of points (or lines) spanned by a and b.
func Plucker(a Vec, lambda int64, b Vec, mu int64) Vec {
	out := Vec{}
	PluckerAt(&a, lambda, &b, mu, &out)
	return out
}

// PluckerAt computes lambda*a + mu*b and writes the result to out. out may
// alias a or b.
func PluckerAt(a *Vec, lambda int64, b *Vec, mu int64, out *Vec) {
	for i := 0; i < 3; i++ {
		out[i] = lambda*a[i] + mu*b[i]
	}
}

package rbf

// monomials returns the exponent vectors of all monomials in dims variables
// with total degree at most degree, in graded order. A negative degree gives
// an empty basis, i.e. no polynomial tail.
func monomials(dims, degree int) [][]int {
	if degree < 0 {
		return nil
	}

	basis := [][]int{}
	exps := make([]int, dims)
	for total := 0; total <= degree; total++ {
		basis = appendMonomials(basis, exps, 0, total)
	}
	return basis
}

// appendMonomials appends every exponent vector whose entries from dim
// onward sum to rem, holding the entries before dim fixed.
func appendMonomials(basis [][]int, exps []int, dim, rem int) [][]int {
	if dim == len(exps)-1 {
		exps[dim] = rem
		basis = append(basis, append([]int{}, exps...))
		exps[dim] = 0
		return basis
	}

	for e := rem; e >= 0; e-- {
		exps[dim] = e
		basis = appendMonomials(basis, exps, dim+1, rem-e)
	}
	exps[dim] = 0
	return basis
}

// evalMonomial computes p^exps, the product over dimensions of the
// coordinate raised to its exponent.
func evalMonomial(p []float64, exps []int) float64 {
	prod := 1.0
	for d, e := range exps {
		for i := 0; i < e; i++ {
			prod *= p[d]
		}
	}
	return prod
}

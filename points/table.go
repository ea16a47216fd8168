package points

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// FromTable reads a point set from a whitespace-separated ASCII table,
// taking one coordinate from each of the given columns. Column indices are
// zero-based. All selected columns must have the same length.
func FromTable(file string, coordCols []int) (*Set, error) {
	if len(coordCols) == 0 {
		panic("coordCols must be non-empty.")
	}

	cols, err := table.ReadTable(file, coordCols, nil)
	if err != nil {
		return nil, err
	}

	n, dims := len(cols[0]), len(coordCols)
	for d := 1; d < dims; d++ {
		if len(cols[d]) != n {
			return nil, fmt.Errorf(
				"Column %d of %s has %d rows, but column %d has %d.",
				coordCols[d], file, len(cols[d]), coordCols[0], n,
			)
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("Table %s contains no rows.", file)
	}

	s := Empty(n, dims)
	for i := 0; i < n; i++ {
		for d := 0; d < dims; d++ {
			s.Vals[i*dims+d] = cols[d][i]
		}
	}
	return s, nil
}

package dlx_test

import (
	"fmt"

	"github.com/katalvlaran/xcover/dlx"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_Solve demonstrates solving a small exact-cover
// instance: 6 items and 5 options, of which options 1, 0, 2 form the
// unique cover. Solve reports rows in selection order; the MRV
// heuristic branches on the most constrained item first, so the
// single-row items 4 and 5 drive the order.
func ExampleMatrix_Solve() {
	m, _ := dlx.NewMatrix(6)
	_, _ = m.AddOption(0, 3)
	_, _ = m.AddOption(1, 4)
	_, _ = m.AddOption(2, 5)
	_, _ = m.AddOption(0, 1)
	_, _ = m.AddOption(2, 3)

	rows, ok := m.Solve()
	fmt.Println("solved:", ok)
	fmt.Println("options:", rows)

	// Output:
	// solved: true
	// options: [1 0 2]
}

////////////////////////////////////////////////////////////////////////////////
// Example: SolveAll
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_SolveAll enumerates every exact cover of an instance
// with two interchangeable options per item: 2x2 = 4 covers, visited
// in construction order.
func ExampleMatrix_SolveAll() {
	m, _ := dlx.NewMatrix(2)
	_, _ = m.AddOption(0)
	_, _ = m.AddOption(1)
	_, _ = m.AddOption(0)
	_, _ = m.AddOption(1)

	count := m.SolveAll(func(rows []dlx.RowID) {
		fmt.Println(rows)
	})
	fmt.Println("solutions:", count)

	// Output:
	// [0 1]
	// [0 3]
	// [2 1]
	// [2 3]
	// solutions: 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: construction errors
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_AddOption_invalid shows the eager validation of
// construction calls: malformed options are rejected before any
// mutation, and every construction error matches ErrInvalidInput.
func ExampleMatrix_AddOption_invalid() {
	m, _ := dlx.NewMatrix(3)

	_, err := m.AddOption()
	fmt.Println(err)
	_, err = m.AddOption(0, 7)
	fmt.Println(err)

	// Output:
	// dlx: option must cover at least one item (dlx: invalid input)
	// dlx: option item out of range (dlx: invalid input): item 7 not in [0,3)
}

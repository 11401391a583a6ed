// Package dlx provides a precise, high-performance exact-cover solver
// built on Knuth's dancing-links (Algorithm X) technique.
//
// Overview:
//
//   - An exact-cover instance is a universe of items 0..n-1 and a set of
//     options, each covering a subset of items. A solution selects options
//     whose subsets partition the universe: every item covered exactly once.
//   - The solver represents the instance as a sparse 0/1 matrix woven into
//     a four-way circular doubly-linked mesh. Covering a column unlinks it
//     and every intersecting row in O(1) per node; uncovering relinks them
//     exactly, which is what makes deep backtracking cheap.
//   - Column choice uses the MRV (minimum remaining values) heuristic:
//     always branch on the item with the fewest candidate options, pruning
//     immediately when an item has none.
//
// When to use:
//
//   - Tiling and placement puzzles (pentominoes, polyominoes).
//   - Sudoku and its variants (encode each candidate as an option over
//     cell/row/column/box items).
//   - N-queens and other permutation problems with side constraints
//     (model at-most-once constraints with per-item slack options).
//   - Any set-partitioning problem small enough for exhaustive search.
//
// Key features:
//
//   - Arena-backed mesh: nodes live in one contiguous slice and link by
//     index, not pointer: no per-node allocations, cache-friendly walks.
//   - Explicit-stack search driver: no recursion, so search depth is
//     bounded by memory rather than the goroutine call stack.
//   - Deterministic: row insertion order and the leftmost MRV tie-break
//     fix the search order, so repeated solves return identical results.
//   - Solve returns the first cover; SolveAll enumerates every cover
//     through a callback, optionally capped with WithMaxSolutions.
//   - Both solvers restore the mesh exactly before returning, so a built
//     Matrix can be solved repeatedly or extended between solves.
//   - WithVerify re-checks structural invariants (link symmetry, size
//     counters) after every solve, for tests and debugging.
//
// Complexity:
//
//   - Construction: O(1) per item plus O(1) per option node.
//   - Search: exponential in the worst case (exact cover is NP-complete);
//     in practice MRV plus O(1) cover/uncover handles instances far beyond
//     naive enumeration. Memory is O(nodes) with no search-time allocation
//     beyond the frame and solution stacks.
//
// Error handling (sentinel errors):
//
//   - ErrNonPositiveItems: NewMatrix called with numItems <= 0.
//   - ErrEmptyOption:      AddOption called with no items.
//   - ErrItemOutOfRange:   an option item outside [0, numItems).
//   - ErrDuplicateItem:    the same item twice in one option.
//   - All of the above wrap ErrInvalidInput, so callers may match the
//     class with errors.Is(err, dlx.ErrInvalidInput).
//   - An unsatisfiable instance is NOT an error: Solve reports it as
//     (nil, false) and SolveAll as a zero count.
//
// API reference:
//
//	func NewMatrix(numItems int, opts ...Option) (*Matrix, error)
//	func (m *Matrix) AddOption(items ...int) (RowID, error)
//	func (m *Matrix) Solve() ([]RowID, bool)
//	func (m *Matrix) SolveAll(onSolution func([]RowID)) int
//	func (m *Matrix) NumItems() int
//	func (m *Matrix) NumOptions() int
//
//	Options:
//	  • WithVerify():          re-verify mesh invariants after each solve.
//	  • WithMaxSolutions(n):   stop SolveAll after n solutions (n > 0).
//
// Thread safety:
//
//   - A Matrix is owned by exactly one goroutine for its entire lifetime.
//     The search mutates the mesh in place under a strict LIFO discipline
//     with no internal synchronization; concurrent use of the same Matrix
//     is invalid. Independent Matrix values are fully independent.
//
// Example:
//
//	m, _ := dlx.NewMatrix(6)
//	m.AddOption(0, 3)
//	m.AddOption(1, 4)
//	m.AddOption(2, 5)
//	m.AddOption(0, 1)
//	m.AddOption(2, 3)
//	if rows, ok := m.Solve(); ok {
//	    fmt.Println(rows) // [1 0 2] (options in selection order)
//	}
package dlx

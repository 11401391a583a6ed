package dlx

import "fmt"

// Matrix is an exact-cover instance: a dancing-links mesh over a
// fixed item universe, populated with options and then searched.
//
// Intended lifecycle: build the full matrix with NewMatrix and
// AddOption, then call Solve or SolveAll as often as needed. Both
// solvers restore the mesh to its pre-search state before returning,
// so solves may be repeated or interleaved with further AddOption
// calls; a Matrix must not be shared between goroutines.
type Matrix struct {
	mesh

	numItems   int     // size of the item universe; fixed at construction
	numOptions int     // options added so far; the next RowID to assign
	opts       Options // configuration from functional options
}

// NewMatrix creates a matrix over the item universe 0..numItems-1,
// with numItems column headers linked into a circular ring anchored
// at the root sentinel. It accepts functional options (WithVerify,
// WithMaxSolutions).
//
// Returns ErrNonPositiveItems (wrapping ErrInvalidInput) if
// numItems <= 0.
//
// Complexity: O(numItems) time and space.
func NewMatrix(numItems int, opts ...Option) (*Matrix, error) {
	// 1) Validate the universe size before allocating anything.
	if numItems <= 0 {
		return nil, fmt.Errorf("%w (%w): numItems=%d", ErrNonPositiveItems, ErrInvalidInput, numItems)
	}

	// 2) Build and apply Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Allocate the arena: root plus one header per item. Row nodes
	//    are appended later by AddOption.
	m := &Matrix{
		numItems: numItems,
		opts:     cfg,
	}
	m.nodes = make([]node, 0, 1+numItems)

	// 4) Root sentinel at index 0, initially a singleton ring in every
	//    direction.
	m.nodes = append(m.nodes, node{
		left: root, right: root,
		up: root, down: root,
		col: root,
		row: headerRow,
	})

	// 5) Append each header at the tail of the header ring. A fresh
	//    header's vertical ring is just itself (no rows yet), its
	//    horizontal neighbors are the previous header and the root.
	var h int
	for i := 0; i < numItems; i++ {
		h = i + 1 // header(item i)
		m.nodes = append(m.nodes, node{
			left: h - 1, right: root,
			up: h, down: h,
			col: h,
			row: headerRow,
		})
		m.nodes[h-1].right = h
		m.nodes[root].left = h
	}

	return m, nil
}

// AddOption appends one option (row) covering the given items and
// returns its RowID. Items may be given in any order; the row's
// horizontal ring preserves the caller's order. Each new row node is
// inserted at the bottom of its column's vertical ring, which is what
// makes repeated solves deterministic: the search visits rows in
// insertion order.
//
// Validation (all performed before any mutation, so a failed call
// leaves the matrix untouched):
//  1. items must be non-empty (ErrEmptyOption).
//  2. every item must lie in [0, numItems) (ErrItemOutOfRange).
//  3. items must be distinct (ErrDuplicateItem).
//
// All three wrap ErrInvalidInput.
//
// Complexity: O(len(items)) time.
func (m *Matrix) AddOption(items ...int) (RowID, error) {
	// 1) Reject the empty option: it can never cover anything.
	if len(items) == 0 {
		return 0, fmt.Errorf("%w (%w)", ErrEmptyOption, ErrInvalidInput)
	}

	// 2) Range- and duplicate-check every item before touching the
	//    mesh. The scratch slice is O(numItems) but avoids a map
	//    allocation on the hot construction path.
	seen := make([]bool, m.numItems)
	for _, item := range items {
		if item < 0 || item >= m.numItems {
			return 0, fmt.Errorf("%w (%w): item %d not in [0,%d)", ErrItemOutOfRange, ErrInvalidInput, item, m.numItems)
		}
		if seen[item] {
			return 0, fmt.Errorf("%w (%w): item %d", ErrDuplicateItem, ErrInvalidInput, item)
		}
		seen[item] = true
	}

	// 3) Assign the next sequential row identifier.
	id := RowID(m.numOptions)

	// 4) Append one node per item. Vertical: insert at the bottom of
	//    the item's column (between header.up and the header itself),
	//    bumping the column size. Horizontal: hook each node after the
	//    previous one, closing a circular row ring.
	first := -1 // arena index of the row's first node
	var idx, h int
	for _, item := range items {
		h = item + 1       // owning column header
		idx = len(m.nodes) // arena index of the node about to be appended

		n := node{
			up:   m.nodes[h].up,
			down: h,
			col:  h,
			row:  id,
		}
		if first < 0 {
			// First node of the row: a singleton horizontal ring.
			n.left, n.right = idx, idx
		} else {
			// Hook after the current last node (first.left).
			n.left = m.nodes[first].left
			n.right = first
		}
		m.nodes = append(m.nodes, n)

		// Close the vertical splice and account for the new row node.
		m.nodes[n.up].down = idx
		m.nodes[h].up = idx
		m.nodes[h].size++

		// Close the horizontal splice.
		if first < 0 {
			first = idx
		} else {
			m.nodes[n.left].right = idx
			m.nodes[first].left = idx
		}
	}

	m.numOptions++

	return id, nil
}

// NumItems returns the size of the item universe.
func (m *Matrix) NumItems() int { return m.numItems }

// NumOptions returns the number of options added so far.
func (m *Matrix) NumOptions() int { return m.numOptions }

package dlx

// chooseColumn scans the header ring left to right from root and
// returns the column with the fewest active rows, the MRV
// (minimum remaining values) heuristic. Ties go to the leftmost
// column, which together with bottom-insertion in AddOption makes the
// whole search deterministic. Returns root when no columns remain,
// signaling that the partial solution is a complete exact cover.
//
// The selector is a pure query over the current mesh state: it keeps
// no state between calls.
func (m *Matrix) chooseColumn() int {
	best, bestSize := root, 0
	for c := m.nodes[root].right; c != root; c = m.nodes[c].right {
		if best == root || m.nodes[c].size < bestSize {
			best, bestSize = c, m.nodes[c].size
			if bestSize == 0 {
				// Cannot improve on an unsatisfiable column.
				break
			}
		}
	}

	return best
}

// frame is one level of the search: the column covered at this depth
// and the candidate row currently applied. row == col means no
// candidate has been tried yet (the fresh-frame sentinel).
type frame struct {
	col int
	row int
}

// searcher holds the mutable state of one Solve/SolveAll execution:
// the explicit frame stack standing in for recursion, the partial
// solution, and the sink deciding whether to stop after a solution.
type searcher struct {
	m        *Matrix
	stack    []frame
	solution []RowID
	// onSolution receives a fresh copy of the solution stack and
	// returns true to stop the search (the stack is then unwound so
	// the mesh is restored before run returns).
	onSolution func([]RowID) bool
}

// run drives the depth-first search without recursion. Each loop
// iteration either descends (chooses and covers a new column, pushing
// a fresh frame) or advances the top frame to its next candidate row,
// popping and uncovering on exhaustion. The LIFO pairing of cover and
// uncover calls is exactly the matched-parentheses discipline the
// cover engine requires.
//
// run always leaves the mesh in its pre-search state: exhaustion
// unwinds naturally, and an early stop unwinds explicitly.
func (s *searcher) run() {
	m := s.m
	descend := true
	for {
		if descend {
			c := m.chooseColumn()
			if c == root {
				// No unsatisfied items remain: the solution stack is a
				// complete exact cover.
				if s.emit() {
					s.unwind()
					return
				}
				// Enumeration continues: treat this depth as exhausted
				// and advance the parent frame.
				descend = false
				continue
			}
			if m.nodes[c].size == 0 {
				// Unsatisfiable item: prune this branch without
				// covering anything at this depth.
				descend = false
				continue
			}
			m.cover(c)
			// Fresh frame; the advance step below picks its first row.
			s.stack = append(s.stack, frame{col: c, row: c})
			descend = false
			continue
		}

		// Advance the top frame to its next candidate row.
		if len(s.stack) == 0 {
			// Every branch of the root column has been tried.
			return
		}
		f := &s.stack[len(s.stack)-1]
		if f.row != f.col {
			// Retract the previously applied candidate before moving on.
			s.retractRow(f.row)
		}
		f.row = m.nodes[f.row].down
		if f.row == f.col {
			// All rows of this column tried and failed: uncover the
			// column and report exhaustion to the parent frame.
			m.uncover(f.col)
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}
		s.applyRow(f.row)
		descend = true
	}
}

// applyRow commits row node r: its RowID joins the solution stack and
// every other column the row touches is covered, walking right from r.
func (s *searcher) applyRow(r int) {
	m := s.m
	s.solution = append(s.solution, m.nodes[r].row)
	for j := m.nodes[r].right; j != r; j = m.nodes[j].right {
		m.cover(m.nodes[j].col)
	}
}

// retractRow undoes applyRow: the row's other columns are uncovered
// walking left from r (the exact reverse of the apply order) and
// the RowID leaves the solution stack.
func (s *searcher) retractRow(r int) {
	m := s.m
	for j := m.nodes[r].left; j != r; j = m.nodes[j].left {
		m.uncover(m.nodes[j].col)
	}
	s.solution = s.solution[:len(s.solution)-1]
}

// emit hands a copy of the current solution to the sink. The copy
// keeps callers from aliasing the live stack, which run keeps mutating.
func (s *searcher) emit() bool {
	sol := make([]RowID, len(s.solution))
	copy(sol, s.solution)

	return s.onSolution(sol)
}

// unwind retracts every in-flight frame in LIFO order, restoring the
// mesh after an early stop. At the point of a stop every frame has an
// applied candidate row, so each needs a retract before its uncover.
func (s *searcher) unwind() {
	m := s.m
	var f frame
	for len(s.stack) > 0 {
		f = s.stack[len(s.stack)-1]
		s.retractRow(f.row)
		m.uncover(f.col)
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Solve returns the first exact cover found, as the RowIDs of the
// selected options in selection order, or (nil, false) if the
// instance is unsatisfiable. Unsatisfiability is a normal outcome,
// not an error.
//
// The mesh is fully restored before Solve returns, so repeated calls
// are valid and, because row order and MRV tie-breaks are fixed by
// construction order, return the same solution.
//
// Complexity: worst case exponential in the number of items (the
// problem is NP-complete); each cover/uncover is O(nodes spliced).
func (m *Matrix) Solve() ([]RowID, bool) {
	var found []RowID
	s := &searcher{
		m: m,
		onSolution: func(sol []RowID) bool {
			found = sol

			return true // first solution wins
		},
	}
	s.run()

	// Post-solve invariant check, if requested. A failure here is a
	// bug in the cover/uncover pairing, so it panics.
	if m.opts.Verify {
		if err := m.verify(); err != nil {
			panic(err)
		}
	}

	if found == nil {
		return nil, false
	}

	return found, true
}

// SolveAll enumerates distinct exact covers, invoking onSolution once
// per cover with a fresh copy of the selected RowIDs, and returns the
// number found. onSolution may be nil to only count. Enumeration
// stops early after Options.MaxSolutions covers (default: no cap).
//
// Like Solve, SolveAll restores the mesh before returning.
func (m *Matrix) SolveAll(onSolution func([]RowID)) int {
	count := 0
	s := &searcher{
		m: m,
		onSolution: func(sol []RowID) bool {
			count++
			if onSolution != nil {
				onSolution(sol)
			}

			return count >= m.opts.MaxSolutions
		},
	}
	s.run()

	if m.opts.Verify {
		if err := m.verify(); err != nil {
			panic(err)
		}
	}

	return count
}

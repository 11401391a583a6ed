package dlx

import "fmt"

// cover structurally removes column c from the matrix: the header
// leaves the header ring, and every row that intersects c has its
// other nodes spliced out of their own columns (sizes decremented).
// This reflects the decision that item c is about to be satisfied by
// one of its rows, so no other item may be satisfied by a row that
// also touches c.
//
// cover and uncover calls on the same column must nest like matched
// parentheses. The search driver is the only caller and maintains
// that discipline; any asymmetry between the forward traversal here
// and the reverse traversal in uncover corrupts the mesh silently.
func (m *Matrix) cover(c int) {
	// Remove the header from the ring reachable from root.
	m.unlinkHorizontal(c)

	// For each row of c (top to bottom), splice the row's other nodes
	// out of their vertical rings. The nodes of column c itself stay
	// linked: they are the candidates the search will iterate.
	var i, j int
	for i = m.nodes[c].down; i != c; i = m.nodes[i].down {
		for j = m.nodes[i].right; j != i; j = m.nodes[j].right {
			m.unlinkVertical(j)
			m.nodes[m.nodes[j].col].size--
		}
	}
}

// uncover is the exact structural inverse of cover: it replays the
// same traversal in reverse (rows bottom to top via up, nodes in each
// row right to left via left), reinserting every spliced node and
// restoring every size, then relinks the header into the header ring.
func (m *Matrix) uncover(c int) {
	var i, j int
	for i = m.nodes[c].up; i != c; i = m.nodes[i].up {
		for j = m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.nodes[m.nodes[j].col].size++
			m.relinkVertical(j)
		}
	}

	m.relinkHorizontal(c)
}

// verify re-checks the structural invariants of a fully restored mesh:
// four-way link symmetry for every node, per-column size counters
// matching an actual down-walk recount, and every header reachable
// from the root ring. It must only be called when no cover is in
// flight, since a covered column legitimately breaks symmetry.
//
// Returns nil if the mesh is intact, or an error naming the first
// violation. Solve and SolveAll call it when WithVerify is set and
// panic on a non-nil result: a violation is a bookkeeping bug, not a
// property of the input.
func (m *Matrix) verify() error {
	// 1) Link symmetry in all four directions, for every arena node.
	var n node
	for i := range m.nodes {
		n = m.nodes[i]
		if m.nodes[n.right].left != i {
			return fmt.Errorf("dlx: node %d: right.left == %d, want %d", i, m.nodes[n.right].left, i)
		}
		if m.nodes[n.left].right != i {
			return fmt.Errorf("dlx: node %d: left.right == %d, want %d", i, m.nodes[n.left].right, i)
		}
		if m.nodes[n.down].up != i {
			return fmt.Errorf("dlx: node %d: down.up == %d, want %d", i, m.nodes[n.down].up, i)
		}
		if m.nodes[n.up].down != i {
			return fmt.Errorf("dlx: node %d: up.down == %d, want %d", i, m.nodes[n.up].down, i)
		}
	}

	// 2) Every column's size counter equals a recount of its rows.
	var h, count, r int
	for h = 1; h <= m.numItems; h++ {
		count = 0
		for r = m.nodes[h].down; r != h; r = m.nodes[r].down {
			count++
		}
		if count != m.nodes[h].size {
			return fmt.Errorf("dlx: column %d: size == %d, recount == %d", h, m.nodes[h].size, count)
		}
	}

	// 3) All headers are back in the ring anchored at root.
	reachable := 0
	for h = m.nodes[root].right; h != root; h = m.nodes[h].right {
		reachable++
	}
	if reachable != m.numItems {
		return fmt.Errorf("dlx: header ring holds %d columns, want %d", reachable, m.numItems)
	}

	return nil
}

package dlx

// The mesh is the node arena underlying a Matrix. Every node (the
// root sentinel, the column headers, and the row nodes) lives in one
// contiguous slice, and the four neighbor links are indices into that
// slice rather than pointers. An empty ring is self-linked, so there
// is no null: walking any direction always lands on a valid index.
//
// Arena layout:
//
//	index 0              – root sentinel (anchor of the header ring)
//	indices 1..numItems  – column headers, header(item i) = i + 1
//	indices numItems+1.. – row nodes, in AddOption call order
//
// The mesh keeps the four link fields mutually consistent under its
// splice/restore primitives and does nothing else: exact-cover
// semantics (sizes, traversal order, nesting discipline) belong to
// the cover engine and the search driver.

// root is the arena index of the header-ring sentinel. It is never a
// real item and is excluded from size accounting.
const root = 0

// headerRow marks the row field of the root and the column headers,
// which belong to no option.
const headerRow RowID = -1

// node is one mesh element. left/right/up/down are arena indices;
// col is the arena index of the owning column header (self for
// headers and for the root). size is meaningful only on headers: the
// count of currently active row nodes in that column.
type node struct {
	left, right int
	up, down    int
	col         int
	row         RowID
	size        int
}

// mesh owns the node arena. All mutation is in-place; nodes are never
// freed individually; they are released only when the whole Matrix
// becomes garbage.
type mesh struct {
	nodes []node
}

// unlinkHorizontal splices node i out of its left/right ring. The
// node keeps its own left/right fields, so relinkHorizontal can
// restore it to the exact same position.
func (m *mesh) unlinkHorizontal(i int) {
	n := &m.nodes[i]
	m.nodes[n.left].right = n.right
	m.nodes[n.right].left = n.left
}

// relinkHorizontal restores node i into its left/right ring, undoing
// a matching unlinkHorizontal.
func (m *mesh) relinkHorizontal(i int) {
	n := &m.nodes[i]
	m.nodes[n.left].right = i
	m.nodes[n.right].left = i
}

// unlinkVertical splices node i out of its up/down ring, preserving
// the node's own up/down fields for later restoration.
func (m *mesh) unlinkVertical(i int) {
	n := &m.nodes[i]
	m.nodes[n.up].down = n.down
	m.nodes[n.down].up = n.up
}

// relinkVertical restores node i into its up/down ring, undoing a
// matching unlinkVertical.
func (m *mesh) relinkVertical(i int) {
	n := &m.nodes[i]
	m.nodes[n.up].down = i
	m.nodes[n.down].up = i
}

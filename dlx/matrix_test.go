package dlx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xcover/dlx"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: malformed construction calls fail eagerly.
// ------------------------------------------------------------------------

func TestNewMatrix_NonPositiveItems(t *testing.T) {
	// Zero items: no universe to cover.
	m, err := dlx.NewMatrix(0)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, dlx.ErrNonPositiveItems)
	assert.ErrorIs(t, err, dlx.ErrInvalidInput) // class sentinel also matches

	// Negative items are equally invalid.
	m, err = dlx.NewMatrix(-3)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, dlx.ErrNonPositiveItems)
}

func TestAddOption_EmptyOption(t *testing.T) {
	m, err := dlx.NewMatrix(4)
	require.NoError(t, err)

	// An option covering nothing can never participate in a cover.
	_, err = m.AddOption()
	assert.ErrorIs(t, err, dlx.ErrEmptyOption)
	assert.ErrorIs(t, err, dlx.ErrInvalidInput)
	assert.Zero(t, m.NumOptions()) // failed call leaves the matrix untouched
}

func TestAddOption_ItemOutOfRange(t *testing.T) {
	m, err := dlx.NewMatrix(4)
	require.NoError(t, err)

	// One index past the universe.
	_, err = m.AddOption(0, 4)
	assert.ErrorIs(t, err, dlx.ErrItemOutOfRange)

	// Negative index.
	_, err = m.AddOption(-1)
	assert.ErrorIs(t, err, dlx.ErrItemOutOfRange)

	assert.Zero(t, m.NumOptions())
}

func TestAddOption_DuplicateItem(t *testing.T) {
	m, err := dlx.NewMatrix(4)
	require.NoError(t, err)

	_, err = m.AddOption(1, 2, 1)
	assert.ErrorIs(t, err, dlx.ErrDuplicateItem)
	assert.ErrorIs(t, err, dlx.ErrInvalidInput)
	assert.Zero(t, m.NumOptions())
}

func TestAddOption_FailedCallDoesNotCorrupt(t *testing.T) {
	// A rejected option must not leave partial rows behind: the matrix
	// stays solvable exactly as if the bad call never happened.
	m, err := dlx.NewMatrix(2, dlx.WithVerify())
	require.NoError(t, err)

	_, err = m.AddOption(0, 1)
	require.NoError(t, err)
	_, err = m.AddOption(0, 2) // out of range, rejected
	require.Error(t, err)

	rows, ok := m.Solve()
	assert.True(t, ok)
	assert.Equal(t, []dlx.RowID{0}, rows)
}

// ------------------------------------------------------------------------
// 2. Construction semantics: identifiers and accessors.
// ------------------------------------------------------------------------

func TestAddOption_SequentialRowIDs(t *testing.T) {
	m, err := dlx.NewMatrix(5)
	require.NoError(t, err)

	// Row identifiers are assigned sequentially from 0 and are stable.
	for want := 0; want < 4; want++ {
		id, err := m.AddOption(want, 4)
		require.NoError(t, err)
		assert.Equal(t, dlx.RowID(want), id)
	}
	assert.Equal(t, 4, m.NumOptions())
	assert.Equal(t, 5, m.NumItems())
}

func TestNewMatrix_Accessors(t *testing.T) {
	m, err := dlx.NewMatrix(7)
	require.NoError(t, err)
	assert.Equal(t, 7, m.NumItems())
	assert.Zero(t, m.NumOptions())
}

// ------------------------------------------------------------------------
// 3. Option constructors: nonsensical configuration panics early.
// ------------------------------------------------------------------------

func TestWithMaxSolutions_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = dlx.NewMatrix(3, dlx.WithMaxSolutions(0))
	})
	assert.Panics(t, func() {
		_, _ = dlx.NewMatrix(3, dlx.WithMaxSolutions(-1))
	})
}

func TestDefaultOptions(t *testing.T) {
	o := dlx.DefaultOptions()
	assert.False(t, o.Verify)
	assert.Positive(t, o.MaxSolutions)
}

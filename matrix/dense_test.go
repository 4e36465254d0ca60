package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luluwu516/DataStructures/matrix"
)

// fill writes rows into a fresh Dense of matching order.
func fill(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()

	m, err := matrix.NewDense(len(rows))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func dump(t *testing.T, m *matrix.Dense) [][]int64 {
	t.Helper()

	out := make([][]int64, m.Order())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = row
	}

	return out
}

func TestNewDense_Shape(t *testing.T) {
	_, err := matrix.NewDense(-1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Order())

	_, err = m.At(0, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	assert.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilM *matrix.Dense
	_, err = nilM.At(0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	assert.Equal(t, 0, nilM.Order())
}

func TestDense_GrowPreservesCells(t *testing.T) {
	m := fill(t, [][]int64{
		{0, 3, 5},
		{3, 0, 6},
		{5, 6, 0},
	})

	require.NoError(t, m.Grow())

	assert.Equal(t, [][]int64{
		{0, 3, 5, 0},
		{3, 0, 6, 0},
		{5, 6, 0, 0},
		{0, 0, 0, 0},
	}, dump(t, m))
}

func TestDense_GrowReusesReservedCapacity(t *testing.T) {
	m, err := matrix.NewDense(0)
	require.NoError(t, err)
	require.NoError(t, m.Reserve(4))

	for k := 0; k < 4; k++ {
		require.NoError(t, m.Grow())
		require.NoError(t, m.SetSymmetric(0, k, int64(k+1)))
	}

	assert.Equal(t, [][]int64{
		{1, 2, 3, 4},
		{2, 0, 0, 0},
		{3, 0, 0, 0},
		{4, 0, 0, 0},
	}, dump(t, m))

	assert.ErrorIs(t, m.Reserve(-1), matrix.ErrBadShape)
}

func TestDense_RemoveIndex(t *testing.T) {
	m := fill(t, [][]int64{
		{0, 3, 0, 5, 2},
		{3, 0, 6, 0, 0},
		{0, 6, 0, 0, 4},
		{5, 0, 0, 0, 1},
		{2, 0, 4, 1, 0},
	})

	require.NoError(t, m.RemoveIndex(3))

	assert.Equal(t, [][]int64{
		{0, 3, 0, 2},
		{3, 0, 6, 0},
		{0, 6, 0, 4},
		{2, 0, 4, 0},
	}, dump(t, m))

	assert.ErrorIs(t, m.RemoveIndex(4), matrix.ErrOutOfRange)
}

func TestDense_GrowAfterRemoveZeroFills(t *testing.T) {
	m := fill(t, [][]int64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	require.NoError(t, m.RemoveIndex(0))
	require.NoError(t, m.Grow())

	assert.Equal(t, [][]int64{
		{0, 3, 0},
		{3, 0, 0},
		{0, 0, 0},
	}, dump(t, m))
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := fill(t, [][]int64{{0, 1}, {1, 0}})
	c := m.Clone()
	require.True(t, matrix.Equal(m, c))

	require.NoError(t, c.Set(0, 1, 9))
	assert.False(t, matrix.Equal(m, c))

	v, _ := m.At(0, 1)
	assert.Equal(t, int64(1), v)
}

func TestValidateSymmetric(t *testing.T) {
	sym := fill(t, [][]int64{{0, 2}, {2, 0}})
	assert.NoError(t, matrix.ValidateSymmetric(sym))
	assert.True(t, matrix.IsSymmetric(sym))

	require.NoError(t, sym.Set(0, 1, 4))
	assert.ErrorIs(t, matrix.ValidateSymmetric(sym), matrix.ErrAsymmetry)
	assert.ErrorIs(t, matrix.ValidateSymmetric(nil), matrix.ErrNilMatrix)
}

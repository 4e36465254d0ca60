package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luluwu516/DataStructures/matrix"
)

func TestInitDistances(t *testing.T) {
	m := fill(t, [][]int64{
		{0, 3, 0},
		{3, 0, 0},
		{0, 0, 0},
	})

	require.NoError(t, matrix.InitDistances(m))

	inf := matrix.Inf
	assert.Equal(t, [][]int64{
		{0, 3, inf},
		{3, 0, inf},
		{inf, inf, 0},
	}, dump(t, m))
}

func TestFloydWarshall_Pentagon(t *testing.T) {
	// a-b:3, a-d:5, a-e:2, b-c:6, c-e:4, d-e:1
	m := fill(t, [][]int64{
		{0, 3, 0, 5, 2},
		{3, 0, 6, 0, 0},
		{0, 6, 0, 0, 4},
		{5, 0, 0, 0, 1},
		{2, 0, 4, 1, 0},
	})
	require.NoError(t, matrix.InitDistances(m))
	require.NoError(t, matrix.FloydWarshall(m))

	assert.Equal(t, [][]int64{
		{0, 3, 6, 3, 2},
		{3, 0, 6, 6, 5},
		{6, 6, 0, 5, 4},
		{3, 6, 5, 0, 1},
		{2, 5, 4, 1, 0},
	}, dump(t, m))
}

func TestFloydWarshall_DisconnectedStaysInf(t *testing.T) {
	m := fill(t, [][]int64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, matrix.InitDistances(m))
	require.NoError(t, matrix.FloydWarshall(m))

	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, matrix.Inf, v)
}

func TestFloydWarshall_NoOverflow(t *testing.T) {
	big := matrix.Inf - 1
	m := fill(t, [][]int64{
		{0, big, 0},
		{big, 0, big},
		{0, big, 0},
	})
	require.NoError(t, matrix.InitDistances(m))
	require.NoError(t, matrix.FloydWarshall(m))

	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, matrix.Inf, v, "big+big must not wrap negative")
}

func TestFloydWarshall_Nil(t *testing.T) {
	assert.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.InitDistances(nil), matrix.ErrNilMatrix)
}

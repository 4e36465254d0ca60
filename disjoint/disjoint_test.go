package disjoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luluwu516/DataStructures/disjoint"
)

func TestSet_Singletons(t *testing.T) {
	s := disjoint.New(4)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4, s.Count())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, s.Find(i))
	}

	assert.Equal(t, 0, disjoint.New(-3).Len())
}

func TestSet_UnionDetectsCycle(t *testing.T) {
	s := disjoint.New(5)

	assert.True(t, s.Union(0, 1))
	assert.True(t, s.Union(1, 2))
	assert.False(t, s.Union(0, 2), "0-2 closes the cycle 0-1-2")
	assert.True(t, s.Connected(2, 0))
	assert.False(t, s.Connected(0, 3))
	assert.Equal(t, 3, s.Count())

	assert.True(t, s.Union(3, 4))
	assert.True(t, s.Union(4, 0))
	assert.Equal(t, 1, s.Count())
	for i := 1; i < 5; i++ {
		assert.Equal(t, s.Find(0), s.Find(i))
	}
}

func TestSet_UnionByRank(t *testing.T) {
	s := disjoint.New(4)

	// equal ranks: first argument's root survives
	s.Union(0, 1)
	assert.Equal(t, 0, s.Find(1))

	// rank(0)=1 > rank(2)=0: 2 attaches under 0 whichever side it is on
	s.Union(2, 0)
	assert.Equal(t, 0, s.Find(2))

	s.Union(3, 2)
	assert.Equal(t, 0, s.Find(3))
}

func TestSet_PathCompression(t *testing.T) {
	s := disjoint.New(6)
	// build two rank-1 trees then chain them so 5 sits two levels deep
	s.Union(0, 1)
	s.Union(2, 3)
	s.Union(0, 2)
	s.Union(4, 5)
	s.Union(0, 4)

	root := s.Find(5)
	assert.Equal(t, 0, root)
	// after compression a second Find is direct
	assert.Equal(t, root, s.Find(5))
	assert.True(t, s.Connected(3, 5))
}

package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingToPath(t *testing.T) {
	or := &outRec{}
	a := newOutPt(Point64{X: 0, Y: 0}, or)
	b := newOutPt(Point64{X: 1, Y: 0}, or)
	insertAfter(a, b)
	path := ringToPath(a)
	assert.Equal(t, Path64{{X: 0, Y: 0}, {X: 1, Y: 0}}, path)
}

func TestPolyPathIsHole(t *testing.T) {
	root := newPolyTreeRoot()
	outer := root.addChild(square(0, 0, 10, 10))
	hole := outer.addChild(square(2, 2, 8, 8))
	island := hole.addChild(square(4, 4, 6, 6))

	assert.False(t, outer.IsHole())
	assert.True(t, hole.IsHole())
	assert.False(t, island.IsHole())
}

func TestBuildTreeNestsHoleInsideOuter(t *testing.T) {
	c := NewEngine(false)
	require.NoError(t, c.AddSubject(Paths64{square(0, 0, 20, 20)}))
	require.NoError(t, c.AddClip(Paths64{square(5, 5, 15, 15)}))

	root, _, err := c.ExecuteTree(Difference, EvenOdd)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	outer := root.Children[0]
	assert.False(t, outer.IsHole())
	require.Equal(t, 1, outer.ChildCount())
	assert.True(t, outer.Child(0).IsHole())
}

func TestPolyPathAreaSumsChildrenRecursively(t *testing.T) {
	root := newPolyTreeRoot()
	outer := root.addChild(square(0, 0, 20, 20))
	hole := outer.addChild(square(5, 5, 15, 15))

	assert.Equal(t, 1, root.ChildCount())
	require.Equal(t, 1, outer.ChildCount())
	assert.Same(t, hole, outer.Child(0))

	// outer's own 400 plus the hole's signed area. square() winds the hole
	// the same way as the outer ring, so here that is +100 and the total
	// 500; a hole wound opposite to its parent would net its area out.
	assert.InDelta(t, 400.0+Area(hole.Polygon), outer.Area(), 1e-6)
}

func TestBuildTreeStampsOutRecStateAndPolyNode(t *testing.T) {
	c := NewEngine(false)
	require.NoError(t, c.AddSubject(Paths64{square(0, 0, 20, 20)}))
	require.NoError(t, c.AddClip(Paths64{square(5, 5, 15, 15)}))

	_, _, err := c.ExecuteTree(Difference, EvenOdd)
	require.NoError(t, err)

	var outerRecs, innerRecs int
	for _, or := range c.closedOutRecs() {
		require.NotNil(t, or.polyNode)
		switch or.state {
		case orOuter:
			outerRecs++
		case orInner:
			innerRecs++
		}
	}
	assert.Equal(t, 1, outerRecs)
	assert.Equal(t, 1, innerRecs)
}

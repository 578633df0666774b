package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEdge(bot, top Point64, pt PathType, windDx int) *active {
	e := &active{bot: bot, top: top, localMin: &localMinima{pathType: pt}, windDx: windDx}
	e.currX = bot.X
	setDx(e)
	return e
}

func TestSetDxAndTopX(t *testing.T) {
	e := testEdge(Point64{X: 0, Y: 0}, Point64{X: 10, Y: 10}, Subject, 1)
	assert.Equal(t, 1.0, e.dx)
	assert.Equal(t, int64(5), topX(e, 5))
	assert.Equal(t, int64(0), topX(e, 0))
	assert.Equal(t, int64(10), topX(e, 10))
}

func TestSetDxHorizontal(t *testing.T) {
	e := testEdge(Point64{X: 0, Y: 5}, Point64{X: 10, Y: 5}, Subject, 1)
	assert.Equal(t, horizontal, e.dx)
}

func TestAelInsertByXOrdersLeftToRight(t *testing.T) {
	var ael *active
	e1 := testEdge(Point64{X: 10, Y: 0}, Point64{X: 10, Y: 10}, Subject, 1)
	e2 := testEdge(Point64{X: 0, Y: 0}, Point64{X: 0, Y: 10}, Subject, 1)
	e3 := testEdge(Point64{X: 5, Y: 0}, Point64{X: 5, Y: 10}, Subject, 1)
	aelInsertByX(&ael, e1)
	aelInsertByX(&ael, e2)
	aelInsertByX(&ael, e3)

	var xs []int64
	for e := ael; e != nil; e = e.nextInAEL {
		xs = append(xs, e.currX)
	}
	assert.Equal(t, []int64{0, 5, 10}, xs)
}

func TestSwapAdjacentAEL(t *testing.T) {
	var ael *active
	e1 := testEdge(Point64{X: 0, Y: 0}, Point64{X: 0, Y: 10}, Subject, 1)
	e2 := testEdge(Point64{X: 5, Y: 0}, Point64{X: 5, Y: 10}, Subject, 1)
	aelInsertByX(&ael, e1)
	aelInsertAfter(&ael, e1, e2)

	require.NoError(t, swapPositionsInAEL(&ael, e1, e2))
	assert.Same(t, e2, ael)
	assert.Same(t, e1, ael.nextInAEL)
}

func TestSwapPositionsInAELNonAdjacentErrors(t *testing.T) {
	var ael *active
	e1 := testEdge(Point64{X: 0, Y: 0}, Point64{X: 0, Y: 10}, Subject, 1)
	e2 := testEdge(Point64{X: 5, Y: 0}, Point64{X: 5, Y: 10}, Subject, 1)
	e3 := testEdge(Point64{X: 10, Y: 0}, Point64{X: 10, Y: 10}, Subject, 1)
	aelInsertByX(&ael, e1)
	aelInsertAfter(&ael, e1, e2)
	aelInsertAfter(&ael, e2, e3)

	err := swapPositionsInAEL(&ael, e1, e3)
	require.Error(t, err)
	var inconsistency *InternalInconsistencyError
	assert.ErrorAs(t, err, &inconsistency)
}

func TestSetWindCountForClosedEdgeFirstOfPathType(t *testing.T) {
	e := testEdge(Point64{X: 0, Y: 0}, Point64{X: 0, Y: 10}, Subject, 1)
	setWindCountForClosedEdge(e)
	assert.Equal(t, 1, e.windCount)
	assert.Equal(t, 0, e.windCount2)
}

func TestSetWindCountForClosedEdgeExtendsNeighbour(t *testing.T) {
	var ael *active
	e1 := testEdge(Point64{X: 0, Y: 0}, Point64{X: 0, Y: 10}, Subject, 1)
	e2 := testEdge(Point64{X: 5, Y: 0}, Point64{X: 5, Y: 10}, Subject, -1)
	aelInsertByX(&ael, e1)
	aelInsertAfter(&ael, e1, e2)
	setWindCountForClosedEdge(e1)
	setWindCountForClosedEdge(e2)
	assert.Equal(t, 1, e1.windCount)
	assert.Equal(t, 0, e2.windCount) // 1 + (-1)
}

func TestIsContributingClosedEvenOddIntersection(t *testing.T) {
	e := testEdge(Point64{X: 0, Y: 0}, Point64{X: 0, Y: 10}, Subject, 1)
	e.windCount = 1
	e.windCount2 = 0
	assert.False(t, isContributingClosed(e, EvenOdd, Intersection))
	e.windCount2 = 1
	assert.True(t, isContributingClosed(e, EvenOdd, Intersection))
}

func TestIsContributingClosedUnion(t *testing.T) {
	e := testEdge(Point64{X: 0, Y: 0}, Point64{X: 0, Y: 10}, Subject, 1)
	e.windCount = 1
	e.windCount2 = 0
	assert.True(t, isContributingClosed(e, EvenOdd, Union))
}

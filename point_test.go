package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 int64) Path64 {
	return Path64{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestAreaSquare(t *testing.T) {
	p := square(0, 0, 10, 10)
	assert.Equal(t, 100.0, Area(p))
}

func TestAreaReversedIsNegated(t *testing.T) {
	p := square(0, 0, 10, 10)
	rev := make(Path64, len(p))
	for i, pt := range p {
		rev[len(p)-1-i] = pt
	}
	require.Equal(t, -Area(p), Area(rev))
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(square(0, 0, 10, 10)))
}

func TestGetBounds(t *testing.T) {
	p := square(-5, -5, 5, 5)
	r := GetBounds(p)
	assert.Equal(t, Rect64{Left: -5, Top: -5, Right: 5, Bottom: 5}, r)
}

func TestGetBoundsPaths(t *testing.T) {
	r := GetBoundsPaths(Paths64{square(0, 0, 10, 10), square(20, 20, 30, 30)})
	assert.Equal(t, Rect64{Left: 0, Top: 0, Right: 30, Bottom: 30}, r)
}

func TestRectIsEmpty(t *testing.T) {
	assert.True(t, Rect64{Left: 5, Right: 5, Top: 0, Bottom: 5}.IsEmpty())
	assert.False(t, Rect64{Left: 0, Right: 5, Top: 0, Bottom: 5}.IsEmpty())
}

func TestPointInPolygonInsideOutsideOn(t *testing.T) {
	p := square(0, 0, 10, 10)
	assert.Equal(t, IsInside, PointInPolygon(Point64{X: 5, Y: 5}, p))
	assert.Equal(t, IsOutside, PointInPolygon(Point64{X: 15, Y: 5}, p))
	assert.Equal(t, IsOn, PointInPolygon(Point64{X: 0, Y: 5}, p))
}

func TestStripDuplicatesAndCollinear(t *testing.T) {
	in := Path64{{0, 0}, {0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}
	out := stripDuplicatesAndCollinear(in, false, false)
	require.Len(t, out, 4)
	assert.Equal(t, Point64{X: 0, Y: 0}, out[0])
	assert.Equal(t, Point64{X: 10, Y: 0}, out[1])
}

func TestStripDuplicatesAndCollinearPreserves(t *testing.T) {
	in := Path64{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}
	out := stripDuplicatesAndCollinear(in, true, false)
	assert.Len(t, out, 5)
}

func TestCrossProductAndCollinear(t *testing.T) {
	a, b, c := Point64{0, 0}, Point64{5, 0}, Point64{10, 0}
	assert.True(t, isCollinear(a, b, c))
	assert.False(t, isCollinear(a, b, Point64{10, 5}))
}

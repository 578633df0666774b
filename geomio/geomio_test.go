package geomio

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipper "github.com/Rodrigo-P/Clipper2"
)

func TestToPath64RoundTrip(t *testing.T) {
	path := []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	p64 := ToPath64(path, DefaultScale)
	back := FromPath64(p64, DefaultScale)
	require.Len(t, back, 2)
	assert.InDelta(t, 1.0, back[0].X, 1e-6)
	assert.InDelta(t, 2.0, back[0].Y, 1e-6)
}

func TestToPaths64FlattensPolygonRings(t *testing.T) {
	poly := geom.Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}},
	}
	paths := ToPaths64(poly, DefaultScale)
	require.Len(t, paths, 2)
}

func TestFromPaths64OneRingPerPath(t *testing.T) {
	paths := clipper.Paths64{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
	}
	polys := FromPaths64(paths, DefaultScale)
	require.Len(t, polys, 1)
	assert.Len(t, polys[0], 1)
}

func TestFromPolyTreeNestsHoles(t *testing.T) {
	c := clipper.NewEngine(false)
	require.NoError(t, c.AddSubject(clipper.Paths64{
		{{X: 0, Y: 0}, {X: 20 << 16, Y: 0}, {X: 20 << 16, Y: 20 << 16}, {X: 0, Y: 20 << 16}},
	}))
	require.NoError(t, c.AddClip(clipper.Paths64{
		{{X: 5 << 16, Y: 5 << 16}, {X: 15 << 16, Y: 5 << 16}, {X: 15 << 16, Y: 15 << 16}, {X: 5 << 16, Y: 15 << 16}},
	}))
	root, _, err := c.ExecuteTree(clipper.Difference, clipper.EvenOdd)
	require.NoError(t, err)

	mp := FromPolyTree(root, DefaultScale)
	require.Len(t, mp, 1)
	assert.Len(t, mp[0], 2) // outer ring plus the cut hole, as one geom.Polygon
}

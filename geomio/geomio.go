/*******************************************************************************
* Purpose   :  ctessum/geom interop - Paths64/PolyPath <-> geom.Polygon       *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

// Package geomio adapts clipper's integer path types to and from
// github.com/ctessum/geom's floating-point geometry types, so solutions can
// be handed to the wider ctessum/geom ecosystem (rendering, GIS I/O,
// spatial indexing) without the core sweep ever importing geom itself.
package geomio

import (
	"github.com/ctessum/geom"

	clipper "github.com/Rodrigo-P/Clipper2"
)

// Scale converts between integer engine coordinates and floating-point
// geom coordinates: engine = geom * Scale, geom = engine / Scale. A Scale
// of 1 << 16 gives roughly 16 bits of sub-integer precision, matching the
// fixed-point convention common to integer clipping engines.
type Scale float64

// DefaultScale gives about 16 bits of fractional precision.
const DefaultScale Scale = 1 << 16

// ToPath64 converts a ring of geom.Point (geom.Polygon's element type) into
// a Path64 at the given scale.
func ToPath64(ring []geom.Point, scale Scale) clipper.Path64 {
	out := make(clipper.Path64, len(ring))
	for i, p := range ring {
		out[i] = clipper.Point64{
			X: int64(p.X * float64(scale)),
			Y: int64(p.Y * float64(scale)),
		}
	}
	return out
}

// FromPath64 converts a Path64 back into a geom.Point ring at the given
// scale.
func FromPath64(path clipper.Path64, scale Scale) []geom.Point {
	out := make([]geom.Point, len(path))
	for i, p := range path {
		out[i] = geom.Point{
			X: float64(p.X) / float64(scale),
			Y: float64(p.Y) / float64(scale),
		}
	}
	return out
}

// ToPaths64 flattens a geom.Polygon (outer ring plus holes) into the
// Paths64 an Engine accepts as one input path set.
func ToPaths64(poly geom.Polygon, scale Scale) clipper.Paths64 {
	out := make(clipper.Paths64, len(poly))
	for i, ring := range poly {
		out[i] = ToPath64(ring, scale)
	}
	return out
}

// ToPathsFromMultiPolygon flattens every ring of every polygon in mp into a
// single Paths64, suitable for one AddSubject/AddClip call.
func ToPathsFromMultiPolygon(mp geom.MultiPolygon, scale Scale) clipper.Paths64 {
	var out clipper.Paths64
	for _, poly := range mp {
		out = append(out, ToPaths64(poly, scale)...)
	}
	return out
}

// FromPolyTree rebuilds a geom.MultiPolygon from a solution's containment
// tree: each outer ring (an even-depth PolyPath) becomes one geom.Polygon,
// with its odd-depth children folded in as holes.
func FromPolyTree(root *clipper.PolyTree, scale Scale) geom.MultiPolygon {
	var mp geom.MultiPolygon
	outers := root.Children
	for len(outers) > 0 {
		outer := outers[0]
		outers = outers[1:]
		mp = append(mp, polygonFromOuter(outer, scale))
		// A hole's own children are islands nested inside it (even depth
		// again relative to the tree root); flatten those as additional
		// outer polygons rather than dropping them.
		for _, hole := range outer.Children {
			outers = append(outers, hole.Children...)
		}
	}
	return mp
}

func polygonFromOuter(outer *clipper.PolyPath, scale Scale) geom.Polygon {
	poly := geom.Polygon{FromPath64(outer.Polygon, scale)}
	for _, hole := range outer.Children {
		poly = append(poly, FromPath64(hole.Polygon, scale))
	}
	return poly
}

// FromPaths64 converts a flat closed-path solution into geom.Polygon rings
// with no containment analysis: each Path64 becomes its own single-ring
// polygon. Use FromPolyTree when hole/island nesting matters.
func FromPaths64(paths clipper.Paths64, scale Scale) []geom.Polygon {
	out := make([]geom.Polygon, len(paths))
	for i, p := range paths {
		out[i] = geom.Polygon{FromPath64(p, scale)}
	}
	return out
}

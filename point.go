/*******************************************************************************
* Purpose   :  Geometry primitives - points, paths, rects, area, orientation  *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

package clipper

import "math"

// Path64 is an ordered sequence of points. A Path64 used as a closed path
// has an implicit last->first edge; used as an open path it is a polyline.
type Path64 []Point64

// Paths64 is a set of paths.
type Paths64 []Path64

// PathType distinguishes the two path sets an engine accepts.
type PathType uint8

const (
	Subject PathType = iota
	Clip
)

// PointInPolyResult is the three-valued result of a point-in-polygon test.
type PointInPolyResult uint8

const (
	IsOutside PointInPolyResult = iota
	IsInside
	IsOn
)

// Rect64 is an axis-aligned integer rectangle.
type Rect64 struct {
	Left, Top, Right, Bottom int64
}

// IsEmpty reports whether r contains no area (per Clipper2's convention,
// a rect is empty when its left edge is not strictly left of its right,
// or its top is not strictly above its bottom).
func (r Rect64) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// AsPath returns r's four corners as a closed clockwise-in-Y-down path.
func (r Rect64) AsPath() Path64 {
	return Path64{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}

// GetBounds returns the smallest Rect64 enclosing every point of path.
// An empty path yields the all-zero rect, which is empty.
func GetBounds(path Path64) Rect64 {
	if len(path) == 0 {
		return Rect64{Left: 0, Top: 0, Right: 0, Bottom: 0}
	}
	r := Rect64{Left: math.MaxInt64, Top: math.MaxInt64, Right: math.MinInt64, Bottom: math.MinInt64}
	for _, p := range path {
		if p.X < r.Left {
			r.Left = p.X
		}
		if p.X > r.Right {
			r.Right = p.X
		}
		if p.Y < r.Top {
			r.Top = p.Y
		}
		if p.Y > r.Bottom {
			r.Bottom = p.Y
		}
	}
	return r
}

// GetBoundsPaths returns the bounds enclosing every path in paths.
func GetBoundsPaths(paths Paths64) Rect64 {
	r := Rect64{Left: math.MaxInt64, Top: math.MaxInt64, Right: math.MinInt64, Bottom: math.MinInt64}
	any := false
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		any = true
		pb := GetBounds(p)
		if pb.Left < r.Left {
			r.Left = pb.Left
		}
		if pb.Right > r.Right {
			r.Right = pb.Right
		}
		if pb.Top < r.Top {
			r.Top = pb.Top
		}
		if pb.Bottom > r.Bottom {
			r.Bottom = pb.Bottom
		}
	}
	if !any {
		return Rect64{}
	}
	return r
}

// Area returns the signed shoelace area of a closed path. Positive under
// the "Y grows downward, clockwise is positive" convention used throughout
// the engine (Engine.ReverseOrientation does not change it).
func Area(path Path64) float64 {
	n := len(path)
	if n < 3 {
		return 0
	}
	var a float64
	prev := path[n-1]
	for _, cur := range path {
		a += float64(prev.Y+cur.Y) * float64(prev.X-cur.X)
		prev = cur
	}
	return a / 2
}

// AreaPaths sums Area over every path (holes contribute negative area
// under the standard orientation, so the sum is the net filled area).
func AreaPaths(paths Paths64) float64 {
	var total float64
	for _, p := range paths {
		total += Area(p)
	}
	return total
}

// IsPositive reports whether path's signed area is >= 0.
func IsPositive(path Path64) bool {
	return Area(path) >= 0
}

// crossProduct returns the Z component of (pt2-pt1) x (pt3-pt2), used
// throughout the sweep to test turn direction and collinearity.
func crossProduct(pt1, pt2, pt3 Point64) float64 {
	// two-step subtraction (rather than a single fused expression) avoids
	// intermediate overflow for the widest legal input range.
	x1 := float64(pt2.X - pt1.X)
	y1 := float64(pt2.Y - pt1.Y)
	x2 := float64(pt3.X - pt2.X)
	y2 := float64(pt3.Y - pt2.Y)
	return x1*y2 - y1*x2
}

// dotProduct returns (pt2-pt1) . (pt3-pt2).
func dotProduct(pt1, pt2, pt3 Point64) float64 {
	x1 := float64(pt2.X - pt1.X)
	y1 := float64(pt2.Y - pt1.Y)
	x2 := float64(pt3.X - pt2.X)
	y2 := float64(pt3.Y - pt2.Y)
	return x1*x2 + y1*y2
}

// isCollinear reports whether pt1, pt2, pt3 lie on a common line.
func isCollinear(pt1, pt2, pt3 Point64) bool {
	return crossProduct(pt1, pt2, pt3) == 0
}

// PointInPolygon implements the standard even-odd/winding ray-cast test,
// returning IsOn when pt lies exactly on an edge.
func PointInPolygon(pt Point64, path Path64) PointInPolyResult {
	n := len(path)
	if n < 3 {
		return IsOutside
	}
	result := IsOutside
	start := 0
	for path[start].Y == pt.Y {
		start++
		if start == n {
			start = 0
			break
		}
	}
	isAbove := path[start].Y < pt.Y
	startingAbove := isAbove
	i := start
	for {
		i++
		if i == n {
			i = 0
		}
		if i == start {
			break
		}
		isAboveNext := path[i].Y < pt.Y
		if isAboveNext == isAbove {
			continue
		}
		curr := path[i]
		prev := path[(i+n-1)%n]
		if curr.X == prev.X && curr.Y == pt.Y {
			// vertical edge crossing exactly at pt's Y is handled below
		}
		d := crossProductPt(prev, curr, pt)
		if d == 0 {
			return IsOn
		}
		if (d < 0) == isAbove {
			result = flipPointInPoly(result)
		}
		isAbove = isAboveNext
	}
	if isAbove != startingAbove {
		curr := path[start]
		prev := path[(start+n-1)%n]
		d := crossProductPt(prev, curr, pt)
		if d == 0 {
			return IsOn
		}
		if (d < 0) == isAbove {
			result = flipPointInPoly(result)
		}
	}
	return result
}

func flipPointInPoly(r PointInPolyResult) PointInPolyResult {
	if r == IsOutside {
		return IsInside
	}
	return IsOutside
}

// crossProductPt is crossProduct specialised to three raw points, used by
// PointInPolygon's edge-side tests (kept separate from crossProduct's
// consecutive-triple contract used by the sweep).
func crossProductPt(a, b, c Point64) float64 {
	return float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
}

// stripDuplicatesAndCollinear removes consecutive duplicate vertices and,
// unless preserveCollinear is set, strictly collinear runs. isOpenPath
// paths always have collinear vertices stripped regardless of the flag,
// matching the intake rule of the vertex-ring builder.
func stripDuplicatesAndCollinear(path Path64, preserveCollinear, isOpenPath bool) Path64 {
	n := len(path)
	if n == 0 {
		return path
	}
	out := make(Path64, 0, n)
	for _, p := range path {
		if len(out) > 0 && out[len(out)-1].Equals(p) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].Equals(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	if preserveCollinear && !isOpenPath {
		return out
	}
	if len(out) < 3 {
		return out
	}
	changed := true
	for changed && len(out) >= 3 {
		changed = false
		i := 0
		for i < len(out) {
			n := len(out)
			prev := out[(i+n-1)%n]
			cur := out[i]
			next := out[(i+1)%n]
			if isCollinear(prev, cur, next) {
				// only drop cur when it doesn't reverse direction (i.e. lies
				// between prev and next, not beyond either)
				if dotProduct(prev, cur, next) < 0 {
					i++
					continue
				}
				out = append(out[:i], out[i+1:]...)
				changed = true
				continue
			}
			i++
		}
	}
	return out
}

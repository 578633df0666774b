/*******************************************************************************
* Purpose   :  Intersection resolver - detect, sort, and replay crossings    *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

package clipper

import (
	"math"
	"sort"
)

// intersectNode is one detected edge crossing, awaiting replay.
type intersectNode struct {
	e1, e2 *active
	pt     Point64
}

// maxIntersectionsPerBeamFactor bounds BuildIntersectList's detection pass at
// O(n^2), per spec.md 9's resolution of the "unbounded iteration" open
// question: exceeding it is treated as an internal inconsistency rather
// than looped on indefinitely.
const maxIntersectionsPerBeamFactor = 1

// segmentIntersection computes the point where the infinite lines through
// (a1,a2) and (b1,b2) cross, using the standard two-line determinant
// formula. ok is false only for exactly parallel lines (a zero
// determinant); near-parallel lines still yield a rounded point.
func segmentIntersection(a1, a2, b1, b2 Point64) (Point64, bool) {
	x1, y1 := float64(a1.X), float64(a1.Y)
	x2, y2 := float64(a2.X), float64(a2.Y)
	x3, y3 := float64(b1.X), float64(b1.Y)
	x4, y4 := float64(b2.X), float64(b2.Y)

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Point64{}, false
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	ix := x1 + t*(x2-x1)
	iy := y1 + t*(y2-y1)
	return Point64{X: int64(math.Round(ix)), Y: int64(math.Round(iy))}, true
}

// buildIntersectList detects every adjacent-edge inversion between the
// AEL's order at bot_y and its required order at top_y, by bubble-sorting
// a scratch copy of the AEL (see DESIGN.md for why this replaces the
// original's SEL/jump-link optimisation). Each inversion becomes one
// intersectNode carrying the exact crossing point.
func buildIntersectList(ael *active, topY int64) ([]intersectNode, error) {
	var edges []*active
	for e := ael; e != nil; e = e.nextInAEL {
		edges = append(edges, e)
	}
	n := len(edges)
	if n < 2 {
		return nil, nil
	}

	var nodes []intersectNode
	limit := n * n * maxIntersectionsPerBeamFactor
	swapped := true
	for swapped {
		swapped = false
		for i := 0; i < len(edges)-1; i++ {
			left, right := edges[i], edges[i+1]
			lx := topX(left, topY)
			rx := topX(right, topY)
			if lx <= rx {
				continue
			}
			pt, ok := segmentIntersection(left.bot, left.top, right.bot, right.top)
			if !ok {
				pt = Point64{X: (lx + rx) / 2, Y: topY}
			}
			nodes = append(nodes, intersectNode{e1: left, e2: right, pt: pt})
			edges[i], edges[i+1] = right, left
			swapped = true
			if len(nodes) > limit {
				return nil, newInternalInconsistency(
					"buildIntersectList: same-point tie-break did not converge within O(n^2) for n=%d", n)
			}
		}
	}
	return nodes, nil
}

// sortIntersectNodes orders nodes by Y ascending then X ascending, the
// deterministic bottom-to-top replay order spec.md 4.4 requires.
func sortIntersectNodes(nodes []intersectNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].pt.Y != nodes[j].pt.Y {
			return nodes[i].pt.Y < nodes[j].pt.Y
		}
		return nodes[i].pt.X < nodes[j].pt.X
	})
}

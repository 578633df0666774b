//go:build usingz

/*******************************************************************************
* Purpose   :  64-bit integer point type (Z carried through, never consulted) *
* License   :  http://www.boost.org/LICENSE_1_0.txt                           *
*******************************************************************************/

package clipper

import "fmt"

// Point64 is a 64-bit integer point carrying a user Z value. Z rides along
// on every point produced by the sweep (set via ZCallback on newly created
// intersection points) but is never read by any geometric predicate.
type Point64 struct {
	X, Y, Z int64
}

func (p Point64) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Equals reports whether p and o have identical X, Y (Z is ignored, matching
// the "never consulted by geometry" rule of the coordinate model).
func (p Point64) Equals(o Point64) bool {
	return p.X == o.X && p.Y == o.Y
}

// ZFillCallback computes the Z value stamped onto a newly created
// intersection point, given the two edges' endpoints that produced it.
type ZFillCallback func(e1bot, e1top, e2bot, e2top Point64) int64

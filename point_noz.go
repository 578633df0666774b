//go:build !usingz

/*******************************************************************************
* Purpose   :  64-bit integer point type (no Z carried)                       *
* License   :  http://www.boost.org/LICENSE_1_0.txt                           *
*******************************************************************************/

package clipper

import "fmt"

// Point64 is a 64-bit integer point. Building with the usingz tag swaps in
// a variant that additionally carries a Z value through the sweep; see
// point_z.go. Geometry never consults Z either way.
type Point64 struct {
	X, Y int64
}

func (p Point64) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Equals reports whether p and o have identical coordinates.
func (p Point64) Equals(o Point64) bool {
	return p.X == o.X && p.Y == o.Y
}

// ZFillCallback mirrors the usingz build's callback signature so Engine's
// API is identical either way; it is never invoked when Z support is not
// compiled in.
type ZFillCallback func(e1bot, e1top, e2bot, e2top Point64) int64

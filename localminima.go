/*******************************************************************************
* Purpose   :  Local minima queue                                            *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

package clipper

import "sort"

// localMinima pairs a local-minimum vertex with the path metadata the sweep
// needs once it opens a bound there.
type localMinima struct {
	vertex   *vertex
	pathType PathType
	isOpen   bool
}

// sortLocalMinima stable-sorts ml by (Y ascending, X ascending), matching
// the comparator vertex classification already used (lowerPoint).
func sortLocalMinima(ml []*localMinima) {
	sort.SliceStable(ml, func(i, j int) bool {
		return lowerPoint(ml[i].vertex.pt, ml[j].vertex.pt)
	})
}

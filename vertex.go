/*******************************************************************************
* Purpose   :  Vertex rings - one circular doubly-linked list per input path *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

package clipper

// vertexFlags classifies a vertex's role in the sweep.
type vertexFlags uint8

const (
	vfNone      vertexFlags = 0
	vfOpenStart vertexFlags = 1 << 0
	vfOpenEnd   vertexFlags = 1 << 1
	vfLocalMax  vertexFlags = 1 << 2
	vfLocalMin  vertexFlags = 1 << 3
)

func (f vertexFlags) has(bit vertexFlags) bool { return f&bit != 0 }

// vertex is one node of a path's circular doubly-linked ring. Rings are
// built once at AddPath and are immutable thereafter; the sweep only reads
// pt/next/prev/flags from them (Active edges walk the ring, they never
// mutate it).
type vertex struct {
	pt    Point64
	next  *vertex
	prev  *vertex
	flags vertexFlags
}

// lowerPoint is the (Y, then X) total order used to classify local minima
// and maxima and, separately, to sort the LocalMinima queue - the same
// comparator drives both, so a vertex's min/max classification is always
// consistent with the order the sweep will actually visit it in.
func lowerPoint(a, b Point64) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// buildVertexRing allocates a circular doubly-linked ring for path (which
// must already be free of consecutive duplicates - see
// stripDuplicatesAndCollinear) and returns its vertices in path order;
// element 0 is the vertex of path[0].
func buildVertexRing(path Path64) []*vertex {
	n := len(path)
	nodes := make([]vertex, n)
	ring := make([]*vertex, n)
	for i := range path {
		nodes[i].pt = path[i]
		ring[i] = &nodes[i]
	}
	for i := range ring {
		ring[i].next = ring[(i+1)%n]
		ring[i].prev = ring[(i+n-1)%n]
	}
	return ring
}

// classifyClosedRing walks a closed path's ring, flags every local minimum
// and maximum, and returns the local-minimum vertices in ring-walk order
// (the caller sorts the combined list by (Y, X) once all paths are added).
func classifyClosedRing(v0 *vertex) []*vertex {
	var minima []*vertex
	v := v0
	for {
		if lowerPoint(v.pt, v.prev.pt) && lowerPoint(v.pt, v.next.pt) {
			v.flags |= vfLocalMin
			minima = append(minima, v)
		} else if lowerPoint(v.prev.pt, v.pt) && lowerPoint(v.next.pt, v.pt) {
			v.flags |= vfLocalMax
		}
		v = v.next
		if v == v0 {
			break
		}
	}
	return minima
}

// classifyOpenRing walks an open path's ring (which, structurally, is still
// circular - see buildVertexRing - but the wrap edge between the last and
// first vertex is never a real edge of the polyline). v0 is OpenStart,
// v0.prev is OpenEnd. Interior vertices classify exactly as for a closed
// ring; the two endpoints are classified against their single real
// neighbour, and may additionally be a LocalMin (driving a bound from that
// endpoint) just as in the closed case.
func classifyOpenRing(v0 *vertex) []*vertex {
	var minima []*vertex
	last := v0.prev
	v0.flags |= vfOpenStart
	last.flags |= vfOpenEnd

	if lowerPoint(v0.pt, v0.next.pt) {
		v0.flags |= vfLocalMin
		minima = append(minima, v0)
	} else {
		v0.flags |= vfLocalMax
	}

	for v := v0.next; v != last; v = v.next {
		if lowerPoint(v.pt, v.prev.pt) && lowerPoint(v.pt, v.next.pt) {
			v.flags |= vfLocalMin
			minima = append(minima, v)
		} else if lowerPoint(v.prev.pt, v.pt) && lowerPoint(v.next.pt, v.pt) {
			v.flags |= vfLocalMax
		}
	}

	if lowerPoint(last.pt, last.prev.pt) {
		last.flags |= vfLocalMin
		minima = append(minima, last)
	} else {
		last.flags |= vfLocalMax
	}
	return minima
}

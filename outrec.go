/*******************************************************************************
* Purpose   :  Output ring store - OutPt rings grouped into OutRecs          *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

package clipper

// outPt is one vertex of an output contour, a node in a circular
// doubly-linked ring.
type outPt struct {
	pt     Point64
	next   *outPt
	prev   *outPt
	outrec *outRec
	joiner *joiner // head of the joiners anchored at this point, if any
}

func newOutPt(pt Point64, or *outRec) *outPt {
	op := &outPt{pt: pt, outrec: or}
	op.next = op
	op.prev = op
	return op
}

// insertBefore splices op into the ring immediately before anchor.
func insertBefore(anchor, op *outPt) {
	op.next = anchor
	op.prev = anchor.prev
	anchor.prev.next = op
	anchor.prev = op
}

// insertAfter splices op into the ring immediately after anchor.
func insertAfter(anchor, op *outPt) {
	op.prev = anchor
	op.next = anchor.next
	anchor.next.prev = op
	anchor.next = op
}

// spliceRings swaps the "next" links of op1 and op2. If the two points
// currently belong to the same ring this splits it into two; if they
// belong to different rings this merges them into one. The operation is
// its own inverse, mirroring the union-find-over-segments approach
// spec.md 9 offers as an alternative to a plain doubly-linked joiner list.
func spliceRings(op1, op2 *outPt) {
	a := op1.next
	b := op2.next
	op1.next = b
	b.prev = op1
	op2.next = a
	a.prev = op2
}

// ringLen counts a ring's points (used by closedOutRecs to drop degenerate
// rings, and by tests; the sweep itself never needs a ring's length).
func ringLen(head *outPt) int {
	if head == nil {
		return 0
	}
	n := 1
	for p := head.next; p != head; p = p.next {
		n++
	}
	return n
}

// sameRing reports whether op2 is reachable from op1 by walking next
// pointers - i.e. whether they belong to the same output ring.
func sameRing(op1, op2 *outPt) bool {
	if op1 == op2 {
		return true
	}
	for p := op1.next; p != op1; p = p.next {
		if p == op2 {
			return true
		}
	}
	return false
}

// outRecState classifies an OutRec's role once it is fully built.
type outRecState uint8

const (
	orUndefined outRecState = iota
	orOpen
	orOuter
	orInner
)

// outRec is one output contour, possibly still under construction.
type outRec struct {
	idx    int
	owner  *outRec
	splits []*outRec

	frontEdge *active
	backEdge  *active

	pts   *outPt
	state outRecState

	polyNode *PolyPath // set during BuildTree
}

func (c *Engine) createOutRec() *outRec {
	or := &outRec{idx: len(c.outrecList)}
	c.outrecList = append(c.outrecList, or)
	return or
}

// startOpenPath begins a new OutRec for an open-subject edge, which never
// pairs with a partner bound the way closed edges do.
func (c *Engine) startOpenPath(e *active, pt Point64) *outPt {
	or := c.createOutRec()
	or.state = orOpen
	op := newOutPt(pt, or)
	or.pts = op
	e.outrec = or
	return op
}

// addOutPt appends pt to e's OutRec, on whichever side e is currently
// extending (front edges prepend, back edges append-and-advance), and
// returns the new point.
func (c *Engine) addOutPt(e *active, pt Point64) *outPt {
	or := e.outrec
	op := newOutPt(pt, or)
	if or.pts == nil {
		or.pts = op
		return op
	}
	if e == or.frontEdge {
		insertBefore(or.pts, op)
	} else {
		insertAfter(or.pts, op)
		or.pts = op
	}
	return op
}

// addLocalMinPoly opens a new output region where two bounds from the same
// LocalMinima first meet, tying its front/back edges to e1 (left) and e2
// (right).
func (c *Engine) addLocalMinPoly(e1, e2 *active, pt Point64) *outPt {
	or := c.createOutRec()
	or.frontEdge = e1
	or.backEdge = e2
	e1.outrec = or
	e2.outrec = or
	op := newOutPt(pt, or)
	or.pts = op
	if e1.isOpen() {
		or.state = orOpen
	}
	c.logDebug("addLocalMinPoly", map[string]interface{}{"idx": or.idx, "pt": pt})
	return op
}

// addLocalMaxPoly closes a pair of bounds meeting at their top. When both
// bounds already belong to the same OutRec the ring simply closes;
// otherwise the two rings are spliced into one and one OutRec becomes
// owner of the other's remains (spec.md 4.6).
func (c *Engine) addLocalMaxPoly(e1, e2 *active, pt Point64) *outPt {
	if e1.outrec == e2.outrec {
		or := e1.outrec
		op := c.addOutPt(e1, pt)
		or.frontEdge = nil
		or.backEdge = nil
		return op
	}
	or1, or2 := e1.outrec, e2.outrec
	op1 := c.addOutPt(e1, pt)
	op2 := c.addOutPt(e2, pt)
	spliceRings(op1, op2)
	or1.frontEdge = nil
	or1.backEdge = nil
	or2.pts = nil
	or2.owner = or1
	c.logDebug("addLocalMaxPoly", map[string]interface{}{"idx1": or1.idx, "idx2": or2.idx, "pt": pt})
	return op1
}

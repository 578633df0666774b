/*******************************************************************************
* Purpose   :  Active edges - AEL, winding assignment, contribution test     *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

package clipper

import "math"

// horizontal marks an active edge whose current segment has zero slope.
// Grounded directly on the teacher's `var horizontal = math.Inf(-1)`
// sentinel (ctessum-go.clipper/clipper.go).
var horizontal = math.Inf(-1)

// active is one side of a path bound currently crossing the scanbeam.
type active struct {
	bot, top Point64
	currX    int64
	dx       float64 // rate of change of X per unit Y; horizontal sentinel above

	windDx     int // +1 or -1: this bound's contribution to winding counts
	windCount  int
	windCount2 int // winding count of the opposite polytype

	outrec *outRec

	prevInAEL, nextInAEL *active

	vertexTop   *vertex
	localMin    *localMinima
	isLeftBound bool
	viaNext     bool // bound advances vertexTop via .next (true) or .prev (false)
}

func (e *active) pathType() PathType { return e.localMin.pathType }
func (e *active) isOpen() bool       { return e.localMin.isOpen }

// nextVertexInBound returns the vertex the bound will advance to once its
// current top is reached (UpdateEdgeIntoAEL), without mutating e.
func (e *active) nextVertexInBound() *vertex {
	if e.viaNext {
		return e.vertexTop.next
	}
	return e.vertexTop.prev
}

// isMaxima reports whether e's current top vertex ends the bound (either a
// genuine LocalMax on a closed path, or the OpenEnd of an open path).
func (e *active) isMaxima() bool {
	return e.vertexTop.flags.has(vfLocalMax) || e.vertexTop.flags.has(vfOpenEnd)
}

// setDx computes e.dx from its current bot/top, using the horizontal
// sentinel for zero-height segments.
func setDx(e *active) {
	dy := e.top.Y - e.bot.Y
	if dy == 0 {
		e.dx = horizontal
		return
	}
	e.dx = float64(e.top.X-e.bot.X) / float64(dy)
}

// topX returns e's X coordinate at height y, for y between e.bot.Y and
// e.top.Y inclusive.
func topX(e *active, y int64) int64 {
	if y == e.top.Y {
		return e.top.X
	}
	if y == e.bot.Y || e.dx == 0 {
		return e.bot.X
	}
	if e.dx == horizontal {
		return e.bot.X
	}
	return e.bot.X + int64(math.Round(e.dx*float64(y-e.bot.Y)))
}

// ---- AEL linked-list operations -------------------------------------------

func aelInsertAfter(ael **active, at, e *active) {
	if at == nil {
		e.prevInAEL = nil
		e.nextInAEL = *ael
		if *ael != nil {
			(*ael).prevInAEL = e
		}
		*ael = e
		return
	}
	e.nextInAEL = at.nextInAEL
	if at.nextInAEL != nil {
		at.nextInAEL.prevInAEL = e
	}
	e.prevInAEL = at
	at.nextInAEL = e
}

func aelRemove(ael **active, e *active) {
	if e.prevInAEL != nil {
		e.prevInAEL.nextInAEL = e.nextInAEL
	} else {
		*ael = e.nextInAEL
	}
	if e.nextInAEL != nil {
		e.nextInAEL.prevInAEL = e.prevInAEL
	}
	e.prevInAEL = nil
	e.nextInAEL = nil
}

// aelInsertByX inserts e into the AEL keeping the list X-ordered at e.bot.Y
// (the invariant the AEL maintains at every scanbeam bottom).
func aelInsertByX(ael **active, e *active) {
	if *ael == nil || topX(*ael, e.bot.Y) >= e.currX {
		aelInsertAfter(ael, nil, e)
		return
	}
	cur := *ael
	for cur.nextInAEL != nil && topX(cur.nextInAEL, e.bot.Y) < e.currX {
		cur = cur.nextInAEL
	}
	aelInsertAfter(ael, cur, e)
}

// swapPositionsInAEL exchanges two adjacent AEL entries. A non-adjacent
// pair is not swapped: it returns an internal-inconsistency error instead.
// doIntersections treats that error as "not adjacent yet" and retries the
// replay later in the same beam, failing only when no replay in a round
// succeeds; doHorizontal returns it as is.
func swapPositionsInAEL(ael **active, e1, e2 *active) error {
	if e1.nextInAEL == e2 {
		swapAdjacentAEL(ael, e1, e2)
		return nil
	}
	if e2.nextInAEL == e1 {
		swapAdjacentAEL(ael, e2, e1)
		return nil
	}
	return newInternalInconsistency("SwapPositionsInAEL: edges are not adjacent")
}

func swapAdjacentAEL(ael **active, first, second *active) {
	// first immediately precedes second; swap them in place.
	before := first.prevInAEL
	after := second.nextInAEL
	if before != nil {
		before.nextInAEL = second
	} else {
		*ael = second
	}
	second.prevInAEL = before
	second.nextInAEL = first
	first.prevInAEL = second
	first.nextInAEL = after
	if after != nil {
		after.prevInAEL = first
	}
}

// ---- winding assignment (spec.md 4.3) -------------------------------------

// setWindCountForClosedEdge implements the winding-count recurrence of
// spec.md 4.3 for a freshly inserted closed-path edge, by scanning leftward
// along the AEL to the nearest edge of interest.
func setWindCountForClosedEdge(e *active) {
	left := e.prevInAEL
	for left != nil && (left.isOpen() || left.pathType() != e.pathType()) {
		left = left.prevInAEL
	}
	if left == nil {
		e.windCount = e.windDx
		left = e.prevInAEL
		e.windCount2 = 0
		for left != nil {
			if !left.isOpen() && left.pathType() != e.pathType() {
				e.windCount2 += left.windDx
			}
			left = left.prevInAEL
		}
		return
	}
	// left is the nearest same-polytype closed edge: extend its running count.
	e.windCount = left.windCount + e.windDx
	e.windCount2 = left.windCount2
	between := left.nextInAEL
	for between != e {
		if !between.isOpen() && between.pathType() != e.pathType() {
			e.windCount2 += between.windDx
		}
		between = between.nextInAEL
	}
}

// setWindCountForOpenEdge implements the open-path simplified winding rule:
// an open edge's winding is derived solely from the surrounding
// closed-path state, never from other open edges.
func setWindCountForOpenEdge(e *active, fillRule FillRule) {
	e.windCount = 1
	e.windCount2 = 0
	for a := e.prevInAEL; a != nil; a = a.prevInAEL {
		if a.isOpen() {
			continue
		}
		if a.pathType() == e.pathType() {
			e.windCount += a.windDx
		} else {
			e.windCount2 += a.windDx
		}
	}
}

// isContributingClosed implements the per-fill-rule inside predicate of
// spec.md 4.3 for a closed-path edge.
func isContributingClosed(e *active, fillRule FillRule, clipType ClipType) bool {
	switch fillRule {
	case EvenOdd, NonZero:
		if abs(e.windCount) != 1 {
			return false
		}
	case Positive:
		if e.windCount != 1 {
			return false
		}
	case Negative:
		if e.windCount != -1 {
			return false
		}
	}

	switch clipType {
	case Intersection:
		switch fillRule {
		case Positive:
			return e.windCount2 > 0
		case Negative:
			return e.windCount2 < 0
		default:
			return e.windCount2 != 0
		}
	case Union:
		switch fillRule {
		case Positive:
			return e.windCount2 <= 0
		case Negative:
			return e.windCount2 >= 0
		default:
			return e.windCount2 == 0
		}
	case Difference:
		isInsideClip := false
		switch fillRule {
		case Positive:
			isInsideClip = e.windCount2 > 0
		case Negative:
			isInsideClip = e.windCount2 < 0
		default:
			isInsideClip = e.windCount2 != 0
		}
		if e.pathType() == Subject {
			return !isInsideClip
		}
		return isInsideClip
	case Xor:
		return true
	}
	return false
}

// isContributingOpen implements the simplified open-path contribution test:
// an open edge contributes whenever it is not enclosed by the opposite
// path set in a way the clip type excludes.
func isContributingOpen(e *active, fillRule FillRule, clipType ClipType) bool {
	isInOpposite := func() bool {
		switch fillRule {
		case Positive:
			return e.windCount2 > 0
		case Negative:
			return e.windCount2 < 0
		default:
			return e.windCount2 != 0
		}
	}
	switch clipType {
	case Intersection:
		return isInOpposite()
	case Union:
		return !isInOpposite()
	case Difference:
		return !isInOpposite()
	case Xor:
		return true
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

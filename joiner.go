/*******************************************************************************
* Purpose   :  Post-sweep joiner - resolves horizontal trial joins and        *
*              collinear/self-intersecting rings left by the sweep           *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

package clipper

// joiner records that two OutPts, both created while a horizontal edge
// passed over another edge's bound, landed on the same coordinate and may
// need their rings spliced together once the sweep finishes - spec.md 9's
// "trial joins resolved after the sweep" approach to horizontal handling.
type joiner struct {
	op1, op2 *outPt
	next     *joiner
}

// processJoinerList resolves every horizontal trial join, then cleans up
// collinear runs and any self-intersections the joins introduced.
func (c *Engine) processJoinerList() error {
	c.convertHorzTrialsToJoins()
	for _, j := range c.joinerList {
		if sameRing(j.op1, j.op2) {
			continue // already the same ring (an earlier join already merged it)
		}
		spliceRings(j.op1, j.op2)
		mergeOutRecs(j.op1.outrec, j.op2.outrec)
	}
	for _, or := range c.outrecList {
		if or.pts == nil || or.owner != nil {
			continue
		}
		cleanCollinear(or)
		if err := c.fixSelfIntersects(or); err != nil {
			return err
		}
	}
	return nil
}

// convertHorzTrialsToJoins pairs up OutPts recorded during horizontal
// sweeps by coordinate: two points at the same location, in different
// rings, are a join candidate.
func (c *Engine) convertHorzTrialsToJoins() {
	byPt := make(map[Point64][]*outPt)
	for _, op := range c.horzTrialJoins {
		byPt[op.pt] = append(byPt[op.pt], op)
	}
	for _, ops := range byPt {
		for i := 0; i < len(ops); i++ {
			for j := i + 1; j < len(ops); j++ {
				if ops[i].outrec == ops[j].outrec {
					continue
				}
				c.joinerList = append(c.joinerList, &joiner{op1: ops[i], op2: ops[j]})
			}
		}
	}
}

// mergeOutRecs folds or2's identity into or1 after their rings have been
// spliced together, mirroring addLocalMaxPoly's ownership transfer.
func mergeOutRecs(or1, or2 *outRec) {
	a, b := or1, or2
	if a == b {
		return
	}
	b.pts = nil
	b.owner = a
}

// cleanCollinear drops points from or's ring that are exactly collinear
// with their two neighbours (including spikes that double back on the
// previous segment), a cleanup the sweep itself does not perform since
// collinearity can only be assessed once a ring is final.
func cleanCollinear(or *outRec) {
	head := or.pts
	if head == nil {
		return
	}
	op := head
	for {
		prev, next := op.prev, op.next
		if prev == op || next == op {
			break // degenerate one/two-point ring; leave it for the caller to drop
		}
		if isCollinear(prev.pt, op.pt, next.pt) {
			prev.next = next
			next.prev = prev
			if or.pts == op {
				or.pts = next
			}
			op = next
			if op == head {
				head = next
			}
			continue
		}
		op = next
		if op == head {
			break
		}
	}
}

// fixSelfIntersects splits or's ring wherever it touches itself at a
// vertex, by splicing at each repeated point found while walking the ring -
// the same primitive addLocalMaxPoly uses to merge rings, run in reverse.
// Only coordinates visited twice are detected: two edges that cross
// between vertices are not split. The part that keeps start stays in or and
// the other part becomes a split, whichever of the two is larger.
func (c *Engine) fixSelfIntersects(or *outRec) error {
	if or.pts == nil {
		return nil
	}
	seen := make(map[Point64]*outPt)
	op := or.pts
	start := op
	for {
		if prior, ok := seen[op.pt]; ok && prior != op {
			// op and prior are the same coordinate reached twice around the
			// same ring: split the ring there and keep walking the half
			// that still contains start, via prior's post-splice next
			// (spliceRings reroutes prior.next to the continuation of the
			// main ring, not into the newly split-off piece).
			spliceRings(prior, op)
			split := c.createOutRec()
			split.owner = or
			split.pts = op
			or.splits = append(or.splits, split)
			if or.pts == op || or.pts == prior {
				or.pts = prior
			}
			op = prior.next
			if op == start {
				break
			}
			continue
		}
		seen[op.pt] = op
		op = op.next
		if op == start {
			break
		}
	}
	return nil
}

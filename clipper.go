/*******************************************************************************
* Purpose   :  Public driver - AddSubject/AddClip/Execute, the sweep loop    *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

// Package clipper implements a 2D polygon boolean engine: a Vatti-style
// scanline sweep that turns a subject path set and a clip path set into a
// topologically valid intersection, union, difference, or symmetric
// difference, under a caller-selected fill rule.
package clipper

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ClipType selects the boolean operation Execute performs. All are
// commutative except Difference.
type ClipType uint8

const (
	None ClipType = iota
	Intersection
	Union
	Difference
	Xor
)

// FillRule selects the inside/outside test used to decide which regions of
// the input paths contribute to the solution.
type FillRule uint8

const (
	EvenOdd FillRule = iota
	NonZero
	Positive
	Negative
)

// Engine is a single clipping operation's state. It is not safe for
// concurrent use; independent operations need independent Engines.
type Engine struct {
	// PreserveCollinear, when set, keeps collinear vertices on closed
	// input paths instead of stripping them at AddSubject/AddClip time.
	PreserveCollinear bool

	// ReverseOrientation records the orientation convention chosen at
	// construction, in place of the original's build-time
	// REVERSE_ORIENTATION switch. It is stored only: no code path reads
	// it, so Area, winding and output ring orientation are the same
	// whichever value it holds.
	ReverseOrientation bool

	// Log receives phase-boundary diagnostics (AddPath rejections,
	// Execute start/end, scanbeam progress, InternalInconsistency
	// detections). Defaults to logrus.StandardLogger().
	Log logrus.FieldLogger

	// ZCallback computes the Z value stamped onto newly created
	// intersection points. Only meaningful when built with -tags usingz.
	ZCallback ZFillCallback

	clipType      ClipType
	fillRule      FillRule
	hasOpenPaths  bool
	usingPolyTree bool

	ael *active

	vertexLists  [][]*vertex
	minimaList   []*localMinima
	minimaIdx    int
	minimaSorted bool

	scanline       *scanlineQueue
	joinerList     []*joiner
	horzTrialJoins []*outPt

	outrecList []*outRec
}

// NewEngine returns a ready-to-use Engine. reverseOrientation is stored in
// Engine.ReverseOrientation; it does not change any result (see there).
func NewEngine(reverseOrientation bool) *Engine {
	return &Engine{
		Log:                logrus.StandardLogger(),
		ReverseOrientation: reverseOrientation,
		scanline:           newScanlineQueue(),
	}
}

func (c *Engine) logger() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

func (c *Engine) logDebug(msg string, fields map[string]interface{}) {
	c.logger().WithFields(logrus.Fields(fields)).Debug(msg)
}

func (c *Engine) logError(msg string, fields map[string]interface{}) {
	c.logger().WithFields(logrus.Fields(fields)).Error(msg)
}

// AddSubject adds closed subject paths.
func (c *Engine) AddSubject(paths Paths64) error {
	return c.addPaths(paths, Subject, false)
}

// AddOpenSubject adds open (polyline) subject paths.
func (c *Engine) AddOpenSubject(paths Paths64) error {
	return c.addPaths(paths, Subject, true)
}

// AddClip adds closed clip paths.
func (c *Engine) AddClip(paths Paths64) error {
	return c.addPaths(paths, Clip, false)
}

func (c *Engine) addPaths(paths Paths64, pt PathType, isOpen bool) error {
	for _, p := range paths {
		c.addPath(p, pt, isOpen)
	}
	return nil
}

func (c *Engine) addPath(path Path64, pt PathType, isOpen bool) {
	stripped := stripDuplicatesAndCollinear(path, c.PreserveCollinear, isOpen)
	minLen := 3
	if isOpen {
		minLen = 2
	}
	if len(stripped) < minLen {
		// DegenerateGeometry: not an error, silently dropped (spec.md 7).
		c.logDebug("AddPath: degenerate path dropped", map[string]interface{}{
			"pathType": pt, "isOpen": isOpen, "vertices": len(stripped),
		})
		return
	}

	ring := buildVertexRing(stripped)
	c.vertexLists = append(c.vertexLists, ring)

	var minima []*vertex
	if isOpen {
		c.hasOpenPaths = true
		minima = classifyOpenRing(ring[0])
	} else {
		minima = classifyClosedRing(ring[0])
	}
	for _, v := range minima {
		c.minimaList = append(c.minimaList, &localMinima{vertex: v, pathType: pt, isOpen: isOpen})
	}
	c.minimaSorted = false
}

// Clear discards everything added so far, returning the Engine to its
// just-constructed state.
func (c *Engine) Clear() {
	c.vertexLists = nil
	c.minimaList = nil
	c.minimaIdx = 0
	c.minimaSorted = false
	c.hasOpenPaths = false
	c.cleanUp()
}

// CleanUp resets sweep-transient state (AEL, scanline queue, output rings,
// joiners) but - unlike Clear - keeps the input vertex rings and local
// minima, so a different (ClipType, FillRule) pair can be re-executed
// without re-adding paths.
func (c *Engine) CleanUp() {
	c.cleanUp()
}

func (c *Engine) cleanUp() {
	c.ael = nil
	c.scanline = newScanlineQueue()
	c.joinerList = nil
	c.horzTrialJoins = nil
	c.outrecList = nil
	c.minimaIdx = 0
}

// Execute runs clipType/fillRule over the added paths and returns the
// closed-path solution.
func (c *Engine) Execute(clipType ClipType, fillRule FillRule) (Paths64, error) {
	closed, _, err := c.executeClosedAndOpen(clipType, fillRule)
	return closed, err
}

// ExecuteOpen runs clipType/fillRule and additionally returns any open
// (polyline) output paths.
func (c *Engine) ExecuteOpen(clipType ClipType, fillRule FillRule) (closed, open Paths64, err error) {
	return c.executeClosedAndOpen(clipType, fillRule)
}

// ExecuteTree runs clipType/fillRule and returns the solution as a
// containment tree, plus any open output paths.
func (c *Engine) ExecuteTree(clipType ClipType, fillRule FillRule) (*PolyPath, Paths64, error) {
	if err := c.executeInternal(clipType, fillRule, true); err != nil {
		return nil, nil, err
	}
	tree := newPolyTreeRoot()
	open := c.buildTree(tree)
	c.logDebug("ExecuteTree: done", map[string]interface{}{"outrecs": len(c.outrecList)})
	return tree, open, nil
}

func (c *Engine) executeClosedAndOpen(clipType ClipType, fillRule FillRule) (Paths64, Paths64, error) {
	if err := c.executeInternal(clipType, fillRule, false); err != nil {
		return nil, nil, err
	}
	closed, open := c.buildPaths()
	c.logDebug("Execute: done", map[string]interface{}{
		"clipType": clipType, "fillRule": fillRule,
		"closedPaths": len(closed), "openPaths": len(open),
	})
	return closed, open, nil
}

func (c *Engine) executeInternal(clipType ClipType, fillRule FillRule, usingPolyTree bool) error {
	c.cleanUp()
	c.clipType = clipType
	c.fillRule = fillRule
	c.usingPolyTree = usingPolyTree

	c.logDebug("Execute: start", map[string]interface{}{
		"clipType": clipType, "fillRule": fillRule, "minima": len(c.minimaList),
	})

	if clipType == None || len(c.minimaList) == 0 {
		return nil
	}

	if !c.minimaSorted {
		sortLocalMinima(c.minimaList)
		c.minimaSorted = true
	}
	for _, lm := range c.minimaList {
		c.scanline.insert(lm.vertex.pt.Y)
	}

	if err := c.runSweep(); err != nil {
		c.logError("Execute: aborted", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("clipper: execute: %w", err)
	}

	if err := c.processJoinerList(); err != nil {
		c.logError("Execute: joiner resolution failed", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("clipper: execute: %w", err)
	}
	return nil
}

func (c *Engine) runSweep() error {
	botY, ok := c.scanline.pop()
	if !ok {
		return nil
	}
	for {
		aelLen := 0
		for e := c.ael; e != nil; e = e.nextInAEL {
			aelLen++
		}
		c.logDebug("scanbeam", map[string]interface{}{"y": botY, "aelLen": aelLen})
		if err := c.insertLocalMinimaIntoAEL(botY); err != nil {
			return err
		}
		if err := c.processHorizontalsAt(botY); err != nil {
			return err
		}
		topY, hasNext := c.scanline.pop()
		if !hasNext {
			break
		}
		if err := c.doIntersections(topY); err != nil {
			return err
		}
		if err := c.doTopOfScanbeam(topY); err != nil {
			return err
		}
		botY = topY
	}
	return nil
}

// ---- local minima insertion (spec.md 4.2 step 2-3) -------------------------

func (c *Engine) insertLocalMinimaIntoAEL(y int64) error {
	for c.minimaIdx < len(c.minimaList) && c.minimaList[c.minimaIdx].vertex.pt.Y == y {
		lm := c.minimaList[c.minimaIdx]
		c.minimaIdx++
		c.openBound(lm)
	}
	return nil
}

func (c *Engine) openBound(lm *localMinima) {
	v := lm.vertex
	if lm.isOpen {
		switch {
		case v.flags.has(vfOpenStart):
			e := c.newBoundEdge(lm, v, true)
			aelInsertByX(&c.ael, e)
			c.scanline.insert(e.top.Y)
			setWindCountForOpenEdge(e, c.fillRule)
			if isContributingOpen(e, c.fillRule, c.clipType) {
				c.startOpenPath(e, e.bot)
			}
			return
		case v.flags.has(vfOpenEnd):
			e := c.newBoundEdge(lm, v, false)
			aelInsertByX(&c.ael, e)
			c.scanline.insert(e.top.Y)
			setWindCountForOpenEdge(e, c.fillRule)
			if isContributingOpen(e, c.fillRule, c.clipType) {
				c.startOpenPath(e, e.bot)
			}
			return
		}
	}

	e1 := c.newBoundEdge(lm, v, true)
	e2 := c.newBoundEdge(lm, v, false)
	left, right := e1, e2
	if left.dx > right.dx {
		left, right = right, left
	}
	left.isLeftBound = true

	aelInsertByX(&c.ael, left)
	aelInsertAfter(&c.ael, left, right)
	c.scanline.insert(left.top.Y)
	c.scanline.insert(right.top.Y)

	if lm.isOpen {
		setWindCountForOpenEdge(left, c.fillRule)
		setWindCountForOpenEdge(right, c.fillRule)
		if isContributingOpen(left, c.fillRule, c.clipType) {
			c.startOpenPath(left, left.bot)
		}
		return
	}

	setWindCountForClosedEdge(left)
	setWindCountForClosedEdge(right)
	if isContributingClosed(left, c.fillRule, c.clipType) {
		c.addLocalMinPoly(left, right, left.bot)
	}
}

func (c *Engine) newBoundEdge(lm *localMinima, v *vertex, viaNext bool) *active {
	e := &active{localMin: lm, viaNext: viaNext, bot: v.pt}
	if viaNext {
		e.vertexTop = v.next
		e.windDx = 1
	} else {
		e.vertexTop = v.prev
		e.windDx = -1
	}
	e.top = e.vertexTop.pt
	setDx(e)
	e.currX = e.bot.X
	return e
}

func (c *Engine) updateEdgeIntoAEL(e *active) {
	nextV := e.nextVertexInBound()
	e.bot = e.top
	e.vertexTop = nextV
	e.top = nextV.pt
	setDx(e)
	e.currX = e.bot.X
	c.scanline.insert(e.top.Y)
}

// ---- top-of-scanbeam (spec.md 4.2 step 6) ---------------------------------

func (c *Engine) doTopOfScanbeam(topY int64) error {
	var edges []*active
	for e := c.ael; e != nil; e = e.nextInAEL {
		edges = append(edges, e)
	}
	skip := make(map[*active]bool, len(edges))
	for _, e := range edges {
		if skip[e] {
			continue
		}
		if e.top.Y != topY {
			e.currX = topX(e, topY)
			continue
		}
		if e.isMaxima() {
			partner := maximaPartner(e)
			if partner == nil {
				return newInternalInconsistency("doTopOfScanbeam: maxima at %v has no AEL partner", e.top)
			}
			c.closeMaxima(e, partner)
			skip[partner] = true
			continue
		}
		if e.outrec != nil {
			c.addOutPt(e, e.top)
		}
		c.updateEdgeIntoAEL(e)
	}
	return nil
}

// maximaPartner returns e's AEL neighbour that also terminates at e's top
// vertex - by construction exactly one of the two adjacency directions
// qualifies, since a local-max vertex always has exactly two incident
// bound edges and intersections have already been resolved for this beam.
func maximaPartner(e *active) *active {
	if e.nextInAEL != nil && e.nextInAEL.top.Equals(e.top) && e.nextInAEL.isMaxima() {
		return e.nextInAEL
	}
	if e.prevInAEL != nil && e.prevInAEL.top.Equals(e.top) && e.prevInAEL.isMaxima() {
		return e.prevInAEL
	}
	return nil
}

func (c *Engine) closeMaxima(e, partner *active) {
	switch {
	case e.outrec != nil && partner.outrec != nil:
		c.addLocalMaxPoly(e, partner, e.top)
	case e.outrec != nil:
		c.addOutPt(e, e.top)
	case partner.outrec != nil:
		c.addOutPt(partner, e.top)
	}
	aelRemove(&c.ael, e)
	aelRemove(&c.ael, partner)
}

// ---- intersection replay (spec.md 4.4) ------------------------------------

func (c *Engine) doIntersections(topY int64) error {
	nodes, err := buildIntersectList(c.ael, topY)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		return nil
	}
	sortIntersectNodes(nodes)

	pending := nodes
	maxRounds := len(nodes)*len(nodes) + 4
	for round := 0; len(pending) > 0; round++ {
		if round > maxRounds {
			return newInternalInconsistency(
				"doIntersections: same-point tie-break did not converge after %d rounds", round)
		}
		var deferred []intersectNode
		progressed := false
		for _, n := range pending {
			if err := c.intersectEdges(n.e1, n.e2, n.pt); err != nil {
				deferred = append(deferred, n)
				continue
			}
			progressed = true
		}
		if !progressed && len(deferred) > 0 {
			return newInternalInconsistency(
				"doIntersections: %d intersection(s) stuck on non-adjacent edges", len(deferred))
		}
		pending = deferred
	}
	return nil
}

func (c *Engine) intersectEdges(e1, e2 *active, pt Point64) error {
	e1HadOutrec := e1.outrec != nil
	e2HadOutrec := e2.outrec != nil

	if err := swapPositionsInAEL(&c.ael, e1, e2); err != nil {
		return err
	}
	c.recomputeWinding(e1)
	c.recomputeWinding(e2)
	c.zfillIntersection(e1, e2, &pt)

	switch {
	case !e1HadOutrec && !e2HadOutrec:
		switch {
		case e1.isOpen():
			if isContributingOpen(e1, c.fillRule, c.clipType) {
				c.startOpenPath(e1, pt)
			}
		case e2.isOpen():
			if isContributingOpen(e2, c.fillRule, c.clipType) {
				c.startOpenPath(e2, pt)
			}
		case isContributingClosed(e2, c.fillRule, c.clipType):
			// e1/e2 traded places in the AEL above: e2 is now physically left,
			// matching insertLocalMinimaIntoAEL's convention of testing the
			// left-hand edge of a freshly formed pair.
			c.addLocalMinPoly(e2, e1, pt)
		}
	case e1HadOutrec && e2HadOutrec:
		c.addLocalMaxPoly(e1, e2, pt)
	case e1HadOutrec:
		c.addOutPt(e1, pt)
		e2.outrec, e1.outrec = e1.outrec, nil
	default:
		c.addOutPt(e2, pt)
		e1.outrec, e2.outrec = e2.outrec, nil
	}
	return nil
}

func (c *Engine) recomputeWinding(e *active) {
	if e.isOpen() {
		setWindCountForOpenEdge(e, c.fillRule)
	} else {
		setWindCountForClosedEdge(e)
	}
}

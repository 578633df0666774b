/*******************************************************************************
* Purpose   :  Horizontal edge processing (spec.md 4.5)                      *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

package clipper

// processHorizontalsAt drives every AEL edge whose bound is currently
// horizontal at y, one at a time, since resolving one horizontal can expose
// (or retire) another via UpdateEdgeIntoAEL.
func (c *Engine) processHorizontalsAt(y int64) error {
	for {
		var h *active
		for e := c.ael; e != nil; e = e.nextInAEL {
			if e.bot.Y == y && e.dx == horizontal {
				h = e
				break
			}
		}
		if h == nil {
			return nil
		}
		if err := c.doHorizontal(h); err != nil {
			return err
		}
	}
}

// doHorizontal walks h across the AEL from bot.X to top.X, recording an
// OutPt for every edge it passes and swapping past each in turn, then
// either closes h at a maxima or continues its bound onto the next vertex.
func (c *Engine) doHorizontal(h *active) error {
	left, right := h.bot.X, h.top.X
	goingRight := right >= left
	if !goingRight {
		left, right = right, left
	}

	for {
		var nb *active
		if goingRight {
			nb = h.nextInAEL
		} else {
			nb = h.prevInAEL
		}
		if nb == nil || nb.currX < left || nb.currX > right {
			break
		}

		pt := Point64{X: nb.currX, Y: h.bot.Y}
		if h.outrec != nil {
			c.addOutPt(h, pt)
		}
		if nb.outrec != nil {
			op := c.addOutPt(nb, pt)
			c.horzTrialJoins = append(c.horzTrialJoins, op)
		}

		var err error
		if goingRight {
			err = swapPositionsInAEL(&c.ael, h, nb)
		} else {
			err = swapPositionsInAEL(&c.ael, nb, h)
		}
		if err != nil {
			return err
		}
	}

	if h.outrec != nil {
		c.addOutPt(h, h.top)
	}

	if h.isMaxima() {
		partner := maximaPartner(h)
		if partner == nil {
			return newInternalInconsistency("doHorizontal: maxima at %v has no AEL partner", h.top)
		}
		c.closeMaxima(h, partner)
		return nil
	}

	c.updateEdgeIntoAEL(h)
	if h.dx == horizontal {
		return c.doHorizontal(h)
	}
	return nil
}

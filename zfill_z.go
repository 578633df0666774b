//go:build usingz

package clipper

// zfillIntersection stamps pt.Z using c.ZCallback, when one is set, from
// the two crossing edges' endpoints.
func (c *Engine) zfillIntersection(e1, e2 *active, pt *Point64) {
	if c.ZCallback == nil {
		return
	}
	pt.Z = c.ZCallback(e1.bot, e1.top, e2.bot, e2.top)
}

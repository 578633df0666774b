//go:build !usingz

package clipper

// zfillIntersection is a no-op in the no-Z build; ZCallback is never
// consulted because Point64 carries no Z field to stamp.
func (c *Engine) zfillIntersection(e1, e2 *active, pt *Point64) {}

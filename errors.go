/*******************************************************************************
* Purpose   :  Error taxonomy                                                *
* License   :  http://www.boost.org/LICENSE_1_0.txt                          *
*******************************************************************************/

package clipper

import "fmt"

// InputError is returned at API entry when a caller-supplied argument is
// rejected before any engine state changes (e.g. a decimal precision out
// of the supported range in a calling façade).
type InputError struct {
	Detail string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("clipper: invalid input: %s", e.Detail)
}

// InternalInconsistencyError is raised when the sweep detects a state that
// should be geometrically impossible (an AEL swap between non-adjacent
// edges after all intended swaps have replayed, an unresolved same-point
// intersection cluster, etc). Execute wraps it with fmt.Errorf("%w") before
// returning, so callers can still recover it with errors.As; the caller
// should discard Execute's output paths and may call Clear to get a fresh
// engine.
type InternalInconsistencyError struct {
	Detail string
}

func (e *InternalInconsistencyError) Error() string {
	return fmt.Sprintf("clipper: internal inconsistency: %s", e.Detail)
}

func newInternalInconsistency(format string, args ...interface{}) error {
	return &InternalInconsistencyError{Detail: fmt.Sprintf(format, args...)}
}

package graph

import "errors"

var (
	// ErrBadInstant reports a negative instant index. Instants are dense
	// indices 0..Size; there is nothing a negative index could mean.
	ErrBadInstant = errors.New("graph: negative instant index")

	// ErrInconsistency reports a constraint that contradicts the network.
	// The graph is untouched, so the rejection is safe to ignore or retry.
	ErrInconsistency = errors.New("graph: inconsistent time constraint")

	// ErrFatalInconsistency reports an inconsistency found in the middle
	// of a batch operation, after part of the batch was already applied.
	// The graph has been emptied; only a clone taken beforehand can
	// restore it.
	ErrFatalInconsistency = errors.New("graph: inconsistent constraint batch, graph discarded")
)

// Propagation tells how an insertion affected the network.
type Propagation int

const (
	// Unchanged means the constraint was already implied by the network.
	Unchanged Propagation = iota

	// Propagated means at least one bound was tightened and the matrix
	// was re-closed.
	Propagated
)

// String returns "Unchanged" or "Propagated".
func (p Propagation) String() string {
	if p == Propagated {
		return "Propagated"
	}
	return "Unchanged"
}

package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// Observer is notified of every step the parser takes while filling a chart.
// Observers must not modify the states handed to them.
type Observer interface {
	ColumnStarted(col int, word string)      // word is empty for the last column
	Predicted(col int, st *State)            // st has been added by prediction
	Scanned(col int, st *State)              // st has been added by scanning
	Attached(col int, st *State)             // st has been added by attaching
	Relaxed(col int, st *State, old float64) // st has received a lower weight
	Discarded(col int, st *State, w float64) // a derivation of st with weight w has been dropped
}

// NoopObserver ignores all parser events. It is the default observer.
type NoopObserver struct{}

func (NoopObserver) ColumnStarted(int, string)      {}
func (NoopObserver) Predicted(int, *State)          {}
func (NoopObserver) Scanned(int, *State)            {}
func (NoopObserver) Attached(int, *State)           {}
func (NoopObserver) Relaxed(int, *State, float64)   {}
func (NoopObserver) Discarded(int, *State, float64) {}

var _ Observer = NoopObserver{}

// TraceObserver traces parser events at debug level.
type TraceObserver struct {
	Trace tracing.Trace // if nil, tracer 'wearley.earley' is used
}

var _ Observer = TraceObserver{}

func (o TraceObserver) t() tracing.Trace {
	if o.Trace == nil {
		return tracer()
	}
	return o.Trace
}

// ColumnStarted is part of interface Observer.
func (o TraceObserver) ColumnStarted(col int, word string) {
	o.t().Debugf("--- Column %04d %-20q -------------------", col, word)
}

// Predicted is part of interface Observer.
func (o TraceObserver) Predicted(col int, st *State) {
	o.t().Debugf("[%d] predict %s", col, st)
}

// Scanned is part of interface Observer.
func (o TraceObserver) Scanned(col int, st *State) {
	o.t().Debugf("[%d] scan    %s", col, st)
}

// Attached is part of interface Observer.
func (o TraceObserver) Attached(col int, st *State) {
	o.t().Debugf("[%d] attach  %s", col, st)
}

// Relaxed is part of interface Observer.
func (o TraceObserver) Relaxed(col int, st *State, old float64) {
	o.t().Debugf("[%d] relax   %s, was %g", col, st, old)
}

// Discarded is part of interface Observer.
func (o TraceObserver) Discarded(col int, st *State, w float64) {
	o.t().Debugf("[%d] discard %s with weight %g", col, st, w)
}

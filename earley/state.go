package earley

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/wearley/cfg"
)

// none is the arena index for a missing backpointer.
const none = -1

// State is a dotted rule [A ➞ α • β, start] together with a weight and two
// backpointers into the chart.
//
// IMPORTANT: The identity of a state is the triple (start, dot, rule) and
// nothing else. Two states differing only in weight or backpointers are
// the same state; the chart will hold at most one of them per column.
// Use key() for all comparisons and map lookups.
//
// Backpointers are arena indices of the chart (see Chart.State), or -1.
// The attachee is the state this one was advanced from, i.e. the same rule
// with the dot one position to the left. Completed is the completed state
// which advanced the dot over a non-terminal; it is -1 for scans.
type State struct {
	rule      *cfg.Rule
	dot       int
	start     int
	weight    float64
	completed int
	attachee  int
}

type stateKey struct {
	start int
	dot   int
	rule  *cfg.Rule
}

func newState(r *cfg.Rule, dot int, start int, w float64) *State {
	if dot < 0 || dot > r.Len() {
		panic(fmt.Sprintf("dot position %d out of range for rule %s", dot, r))
	}
	return &State{
		rule:      r,
		dot:       dot,
		start:     start,
		weight:    w,
		completed: none,
		attachee:  none,
	}
}

func (st *State) key() stateKey {
	return stateKey{start: st.start, dot: st.dot, rule: st.rule}
}

// Rule returns the grammar rule of a state.
func (st *State) Rule() *cfg.Rule { return st.rule }

// Dot returns the position of the dot within the RHS of the rule.
func (st *State) Dot() int { return st.dot }

// Start returns the column this state started at.
func (st *State) Start() int { return st.start }

// Weight returns the accumulated weight of the state.
func (st *State) Weight() float64 { return st.weight }

// Completed returns the arena index of the completed child state, or -1.
func (st *State) Completed() int { return st.completed }

// Attachee returns the arena index of the predecessor state, or -1.
func (st *State) Attachee() int { return st.attachee }

// IsComplete is true if the dot is behind the last RHS symbol.
func (st *State) IsComplete() bool {
	return st.dot == st.rule.Len()
}

// PeekSymbol returns the symbol after the dot.
// It panics if the state is complete.
func (st *State) PeekSymbol() *cfg.Symbol {
	if st.IsComplete() {
		panic(fmt.Sprintf("cannot peek past complete state %s", st))
	}
	return st.rule.RHS()[st.dot]
}

func (st *State) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	b.WriteString(st.rule.LHS.Name)
	b.WriteString("] ::= [")
	for i, A := range st.rule.RHS() {
		if i == st.dot {
			b.WriteString("• ")
		}
		b.WriteString(A.Name)
		if i < st.rule.Len()-1 {
			b.WriteString(" ")
		}
	}
	if st.IsComplete() {
		b.WriteString(" •")
	}
	b.WriteString(fmt.Sprintf("] @%d (%g)", st.start, st.weight))
	return b.String()
}

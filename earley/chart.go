package earley

import (
	"fmt"

	"github.com/npillmayer/wearley/cfg"
)

// Chart holds the states of a parse, organized in columns. Column i holds the
// states ending at input position i.
//
// All states live in an arena and are referenced by index. Each column is an
// agenda: states are appended at the tail, while the parser reads them front to
// back with a cursor of its own.
type Chart struct {
	states  []*State
	columns []*column
	waiting map[attachKey][]int // states expecting a non-terminal, by (symbol, column)
}

type column struct {
	items []int            // arena indices, in order of insertion
	next  int              // read cursor
	index map[stateKey]int // deduplication
}

type attachKey struct {
	symbol *cfg.Symbol
	column int
}

func newChart(length int) *Chart {
	c := &Chart{
		columns: make([]*column, length+1),
		waiting: make(map[attachKey][]int),
	}
	for i := range c.columns {
		c.columns[i] = &column{index: make(map[stateKey]int)}
	}
	return c
}

// enqueue appends st to column col, unless a state with the same key already
// exists there. It returns the arena index of the state in the column and a flag
// telling if st has been inserted.
func (c *Chart) enqueue(st *State, col int) (int, bool) {
	C := c.columns[col]
	k := st.key()
	if i, ok := C.index[k]; ok {
		return i, false
	}
	if st.start > col {
		panic(fmt.Sprintf("state %s starts after column %d", st, col))
	}
	i := len(c.states)
	c.states = append(c.states, st)
	C.items = append(C.items, i)
	C.index[k] = i
	if !st.IsComplete() {
		if A := st.PeekSymbol(); !A.IsTerminal() {
			ak := attachKey{symbol: A, column: col}
			c.waiting[ak] = append(c.waiting[ak], i)
		}
	}
	return i, true
}

// nextState advances the read cursor of column col.
func (c *Chart) nextState(col int) (int, bool) {
	C := c.columns[col]
	if C.next >= len(C.items) {
		return none, false
	}
	i := C.items[C.next]
	C.next++
	return i, true
}

// AttachableStates returns the arena indices of all states which wait for the
// LHS of a completed state, at the column the completed state started.
func (c *Chart) AttachableStates(completed int) []int {
	st := c.states[completed]
	return c.waiting[attachKey{symbol: st.rule.LHS, column: st.start}]
}

// Columns returns the number of columns of the chart.
func (c *Chart) Columns() int {
	return len(c.columns)
}

// Column returns the states of column i, in order of insertion.
func (c *Chart) Column(i int) []*State {
	C := c.columns[i]
	states := make([]*State, len(C.items))
	for j, inx := range C.items {
		states[j] = c.states[inx]
	}
	return states
}

// Items returns the arena indices of the states of column i, in order of
// insertion. Indices may be resolved with State.
func (c *Chart) Items(i int) []int {
	items := make([]int, len(c.columns[i].items))
	copy(items, c.columns[i].items)
	return items
}

// Size returns the number of states in column i.
func (c *Chart) Size(i int) int {
	return len(c.columns[i].items)
}

// State resolves an arena index. It returns nil for index -1.
func (c *Chart) State(index int) *State {
	if index == none {
		return nil
	}
	return c.states[index]
}

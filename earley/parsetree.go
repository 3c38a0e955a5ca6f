package earley

import (
	"fmt"

	"github.com/npillmayer/wearley/ptree"
)

/*
Derivation trees are reconstructed by walking backwards over the states of the
chart. A good overview of how to construct a parse forest from Earley-items may
be found in "Parsing Techniques" by Dick Grune and Ceriel J.H. Jacobs
(https://dickgrune.com/Books/PTAPG_2nd_Edition/), Section 7.2.1.2.

As we record backpointers for every state, there is no searching involved.
Imagine we have a complete state like this (with 'a' a terminal and 'B' a
non-terminal):

    [X ➞ a B •, i]   in column k

Its attachee is [X ➞ a • B, i], the state it has been advanced from. As B is a
non-terminal, the state has a completed child [B ➞ … •, j] which spans j…k.
The attachee therefore ends at j. [X ➞ a • B, i] has been created by scanning
'a', having no completed child and an attachee [X ➞ • a B, i] which ends at
j-1. This is the prediction for X, which has no backpointers, and j-1 = i.

States may have been relaxed after they had been used for deriving further
states. The tree will then reflect the relaxed state, which has lower weight.
As weights of inner nodes are re-computed from the rules in the tree, the
weight of a tree may be lower than the weight recorded in the chart for the
root state.
*/

// buildTree creates the tree node for a complete state, which ends at column end.
func (p *Parser) buildTree(inx int, end int, depth int) *ptree.Node {
	if depth > len(p.chart.states) {
		p.stuck(fmt.Sprintf("derivation of state #%d does not terminate", inx))
	}
	st := p.chart.states[inx]
	tracer().Debugf("tree node for %s, ending at %d", st, end)
	r := st.rule
	children := make([]*ptree.Node, r.Len())
	cur, pos := inx, end
	for k := r.Len(); k > 0; k-- {
		s := p.chart.State(cur)
		if s == nil || s.rule != r || s.dot != k || s.start != st.start {
			p.stuck(fmt.Sprintf("broken attachee chain for %s at dot %d", st, k))
		}
		A := r.RHS()[k-1]
		if s.completed != none {
			child := p.chart.states[s.completed]
			if child.rule.LHS != A || !child.IsComplete() {
				p.stuck(fmt.Sprintf("completed child %s does not match %s in %s", child, A, s))
			}
			children[k-1] = p.buildTree(s.completed, pos, depth+1)
			pos = child.start
		} else {
			if !A.IsTerminal() || pos == 0 || p.sentence[pos-1] != A.Name {
				p.stuck(fmt.Sprintf("scan of %s in %s does not match input at %d", A, s, pos))
			}
			children[k-1] = ptree.Leaf(A, p.sentence[pos-1], uint64(pos-1))
			pos--
		}
		cur = s.attachee
	}
	if s := p.chart.State(cur); s == nil || s.dot != 0 || s.completed != none ||
		s.attachee != none || pos != st.start {
		p.stuck(fmt.Sprintf("derivation of %s does not reach its start", st))
	}
	n := ptree.Inner(r, children)
	if n.Span.From() != uint64(st.start) || n.Span.To() != uint64(end) {
		p.stuck(fmt.Sprintf("tree node for %s does not cover %d…%d", st, st.start, end))
	}
	return n
}

// stuck reports a chart which does not hold a consistent derivation. This
// is an internal error and always panics, after dumping the chart to the trace.
func (p *Parser) stuck(msg string) {
	tracer().Errorf(msg)
	p.dumpChart()
	panic("Earley-parser is stuck: " + msg)
}

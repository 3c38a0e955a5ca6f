package ptree

import (
	"github.com/npillmayer/wearley"
	"github.com/npillmayer/wearley/cfg"
)

/*
Derivation trees are traversed top-down by a Listener. The listener is
notified when entering an inner node, may decide to skip the children of the
node, and computes a value for the node on exit, given the values of the
children. Terminal leaves produce values, too. This is the usual way of
attaching semantics to a tree, e.g. for evaluating an arithmetic expression.
*/

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span   wearley.Span // span of input words covered by this node
	Level  int          // nesting level
	Rule   *cfg.Rule    // nil for terminals
	Weight float64      // weight of the sub-tree
}

// Listener is a type for walking a derivation tree.
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule receives the values of the children, in
// order of the rule's RHS (independent of the traversal direction). ExitRule and
// Terminal may return user-defined values to be propagated upwards of the tree.
type Listener interface {
	EnterRule(*cfg.Symbol, []*Node, RuleCtxt) bool
	ExitRule(*cfg.Symbol, []interface{}, RuleCtxt) interface{}
	Terminal(*cfg.Symbol, string, RuleCtxt) interface{}
}

// TopDown traverses a tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
func (t *Tree) TopDown(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	if t == nil || t.Root == nil {
		return nil
	}
	tracer().Debugf("TopDown starting at node %v", t.Root.Symbol)
	return traverseTopDown(t.Root, listener, dir, breakmode, 0)
}

func traverseTopDown(n *Node, listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	ctxt := RuleCtxt{Span: n.Span, Level: level, Rule: n.Rule, Weight: n.Weight}
	if n.IsTerminal() {
		return listener.Terminal(n.Symbol, n.Token, ctxt)
	}
	tracer().Debugf(">>> %s", n.Symbol)
	values := make([]interface{}, len(n.Children))
	doContinue := listener.EnterRule(n.Symbol, n.Children, ctxt)
	if doContinue || breakmode == Continue {
		i := 0
		if dir == RtoL {
			i = len(n.Children) - 1
		}
		for ; i >= 0 && i < len(n.Children); i += int(dir) {
			values[i] = traverseTopDown(n.Children[i], listener, dir, breakmode, level+1)
			tracer().Debugf("child value[%d] = %v", i, values[i])
		}
	}
	value := listener.ExitRule(n.Symbol, values, ctxt)
	tracer().Debugf("<<< %s", n.Symbol)
	return value
}

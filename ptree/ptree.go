/*
Package ptree implements derivation trees for weighted parses.

A successful Earley parse results in a single derivation tree: the one with
least weight. Every inner node of the tree reflects the application of a
grammar rule; leaves are terminals matched against input words. Node weights
sum up the weights of all rules applied within a sub-tree, terminals
contribute zero.

Trees may be traversed with a Listener (see `Tree.TopDown`), printed in the
bracketed notation common for treebanks, or rendered for the terminal.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ptree

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wearley"
	"github.com/npillmayer/wearley/cfg"
	"github.com/pterm/pterm"
)

// tracer traces with key 'wearley.ptree'.
func tracer() tracing.Trace {
	return tracing.Select("wearley.ptree")
}

// Node is a node of a derivation tree.
type Node struct {
	Symbol   *cfg.Symbol  // LHS of Rule or a terminal
	Rule     *cfg.Rule    // rule applied at this node; nil for terminals
	Token    string       // input word of a terminal
	Children []*Node      // in order of the rule's RHS
	Weight   float64      // sum of rule weights of the sub-tree
	Span     wearley.Span // input positions covered
}

// Leaf creates a terminal node for an input word at position pos.
func Leaf(A *cfg.Symbol, token string, pos uint64) *Node {
	return &Node{
		Symbol: A,
		Token:  token,
		Span:   wearley.Span{pos, pos + 1},
	}
}

// Inner creates a node for the application of rule r. Its weight is the weight
// of r plus the weights of the children, its span covers the spans of the children.
func Inner(r *cfg.Rule, children []*Node) *Node {
	n := &Node{
		Symbol:   r.LHS,
		Rule:     r,
		Children: children,
		Weight:   r.Weight,
	}
	for _, ch := range children {
		n.Weight += ch.Weight
		n.Span = n.Span.Extend(ch.Span)
	}
	return n
}

// IsTerminal is true for leaves of a tree.
func (n *Node) IsTerminal() bool {
	return n.Rule == nil
}

func (n *Node) String() string {
	var b strings.Builder
	n.bracketed(&b)
	return b.String()
}

func (n *Node) bracketed(b *strings.Builder) {
	if n.IsTerminal() {
		b.WriteString(n.Token)
		return
	}
	b.WriteString("(")
	b.WriteString(n.Symbol.Name)
	for _, ch := range n.Children {
		b.WriteString(" ")
		ch.bracketed(b)
	}
	b.WriteString(")")
}

// --- Trees -----------------------------------------------------------------

// Tree is a derivation tree for a sentence.
type Tree struct {
	Root        *Node
	Sentence    []string
	ChartWeight float64 // weight accumulated by the parser for the root state
}

// Weight returns the sum of the weights of all rules used within the tree.
func (t *Tree) Weight() float64 {
	if t == nil || t.Root == nil {
		return 0
	}
	return t.Root.Weight
}

// String returns the tree in bracketed notation, e.g.
//
//	(ROOT (S (NP john) (VP left)))
func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return "NONE"
	}
	return t.Root.String()
}

// Rules returns the rules applied within the tree, in pre-order.
func (t *Tree) Rules() []*cfg.Rule {
	var rules []*cfg.Rule
	t.Each(func(n *Node, level int) {
		if !n.IsTerminal() {
			rules = append(rules, n.Rule)
		}
	})
	return rules
}

// Each calls f for every node of the tree, in pre-order.
func (t *Tree) Each(f func(n *Node, level int)) {
	if t == nil || t.Root == nil {
		return
	}
	var each func(*Node, int)
	each = func(n *Node, level int) {
		f(n, level)
		for _, ch := range n.Children {
			each(ch, level+1)
		}
	}
	each(t.Root, 0)
}

// Leveled returns the tree as a list of leveled items, suitable for pterm tree rendering:
//
//	pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(tree.Leveled())).Render()
func (t *Tree) Leveled() pterm.LeveledList {
	ll := pterm.LeveledList{}
	t.Each(func(n *Node, level int) {
		text := n.Token
		if !n.IsTerminal() {
			text = fmt.Sprintf("%s  %g", n.Symbol.Name, n.Weight)
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	})
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

// sigNode is the hashed representation of a node: its structure without weights.
type sigNode struct {
	Symbol   string
	Rule     int
	Token    string
	Children []sigNode
}

func signatureOf(n *Node) sigNode {
	sig := sigNode{Symbol: n.Symbol.Name, Rule: -1, Token: n.Token}
	if !n.IsTerminal() {
		sig.Rule = n.Rule.Serial
	}
	for _, ch := range n.Children {
		sig.Children = append(sig.Children, signatureOf(ch))
	}
	return sig
}

// Signature returns a hash of the structure of a tree. Two trees have the same
// signature if they apply the same rules in the same order to the same words.
func (t *Tree) Signature() (string, error) {
	if t == nil || t.Root == nil {
		return "", fmt.Errorf("no tree to sign")
	}
	return structhash.Hash(signatureOf(t.Root), 1)
}

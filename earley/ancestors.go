package earley

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/wearley/cfg"
)

// ancestorTable maps a non-terminal P to the symbols B for which a rule
// P ➞ B … lies on a left-corner path down to the current input word.
type ancestorTable map[*cfg.Symbol]*treeset.Set

// buildAncestors computes the ancestor table for an input word, walking the
// left-parent relation upwards. Words unknown to the grammar result in an
// empty table.
func buildAncestors(g *cfg.Grammar, word string) ancestorTable {
	table := ancestorTable{}
	Y := g.SymbolByName(word)
	if Y == nil {
		tracer().Debugf("word '%s' is unknown to grammar %s", word, g.Name)
		return table
	}
	visited := map[*cfg.Symbol]bool{Y: true}
	stack := arraystack.New()
	stack.Push(Y)
	for !stack.Empty() {
		v, _ := stack.Pop()
		Y = v.(*cfg.Symbol)
		for _, X := range g.LeftParents(Y) {
			B, ok := table[X]
			if !ok {
				B = cfg.NewSymbolSet()
				table[X] = B
			}
			B.Add(Y)
			if !visited[X] {
				visited[X] = true
				stack.Push(X)
			}
		}
	}
	return table
}

// symbolset is used for remembering the non-terminals already predicted
// within a column.
type symbolset map[*cfg.Symbol]struct{}

var exists = struct{}{}

func (set symbolset) add(A *cfg.Symbol) symbolset {
	if set == nil {
		set = symbolset{}
	}
	set[A] = exists
	return set
}

func (set symbolset) contains(A *cfg.Symbol) bool {
	if set == nil || A == nil {
		return false
	}
	_, ok := set[A]
	return ok
}

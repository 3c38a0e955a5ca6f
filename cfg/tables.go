package cfg

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// === Derived Tables for Left-Corner Prediction =============================

// Prediction pruning needs to know, for an upcoming input token, which rules
// may start a derivation leading down to this token. We record the
// "left-parent" relation X ➞ Y … and, for every pair (X, Y) of it, the rules
// responsible for it. The transitive closure is computed per input position
// by the parser (see package earley).

// SymbolComparator orders grammar symbols by serial number.
// It is suitable for gods containers.
func SymbolComparator(s1, s2 interface{}) int {
	A := s1.(*Symbol)
	B := s2.(*Symbol)
	return utils.IntComparator(A.Value, B.Value)
}

// NewSymbolSet creates an empty set of symbols, ordered by serial number.
func NewSymbolSet() *treeset.Set {
	return treeset.NewWith(SymbolComparator)
}

func (g *Grammar) computeTables() {
	for _, r := range g.rules {
		Y := r.First()
		parents, ok := g.leftParents[Y]
		if !ok {
			parents = NewSymbolSet()
			g.leftParents[Y] = parents
		}
		parents.Add(r.LHS)
		pair := SymbolPair{P: r.LHS, B: Y}
		g.prefix[pair] = append(g.prefix[pair], r)
	}
}

// checkTables cross-checks the left-parent relation with the prefix table.
func (g *Grammar) checkTables() error {
	for Y, parents := range g.leftParents {
		it := parents.Iterator()
		for it.Next() {
			X := it.Value().(*Symbol)
			if len(g.prefix[SymbolPair{P: X, B: Y}]) == 0 {
				return g.tableError("no prefix rules for left-parent pair (%s, %s)", X, Y)
			}
		}
	}
	for pair, rules := range g.prefix {
		parents, ok := g.leftParents[pair.B]
		if !ok || !parents.Contains(pair.P) {
			return g.tableError("prefix entry (%s, %s) missing in left-parent relation", pair.P, pair.B)
		}
		for _, r := range rules {
			if r.LHS != pair.P || r.First() != pair.B {
				return g.tableError("rule %s filed under prefix entry (%s, %s)", r, pair.P, pair.B)
			}
		}
	}
	return nil
}

func (g *Grammar) tableError(format string, args ...interface{}) error {
	return &GrammarError{
		Grammar: g.Name,
		Rule:    -1,
		Reason:  fmt.Sprintf(format, args...),
	}
}

// LeftParents returns all symbols X for which a rule X ➞ Y … exists,
// ordered by serial number.
func (g *Grammar) LeftParents(Y *Symbol) []*Symbol {
	parents, ok := g.leftParents[Y]
	if !ok {
		return nil
	}
	syms := make([]*Symbol, 0, parents.Size())
	for _, v := range parents.Values() {
		syms = append(syms, v.(*Symbol))
	}
	return syms
}

// PrefixRules returns all rules P ➞ B …, in order of definition.
func (g *Grammar) PrefixRules(P, B *Symbol) []*Rule {
	return g.prefix[SymbolPair{P: P, B: B}]
}

// PrefixPairs returns the keys of the prefix table, ordered by P, then by B.
func (g *Grammar) PrefixPairs() []SymbolPair {
	pairs := make([]SymbolPair, 0, len(g.prefix))
	for pair := range g.prefix {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].P.Value == pairs[j].P.Value {
			return pairs[i].B.Value < pairs[j].B.Value
		}
		return pairs[i].P.Value < pairs[j].P.Value
	})
	return pairs
}

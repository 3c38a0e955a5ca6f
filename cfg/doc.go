/*
Package cfg implements weighted context-free grammars for Earley parsing.

# Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals are
matched against input tokens by name. Every rule carries a non-negative
weight; weights add up along a derivation and lower is better.

Example:

	b := cfg.NewGrammarBuilder("G")
	b.LHS("S").N("NP").N("VP").Weight(1).End()  // S  ->  NP VP
	b.LHS("NP").T("john").Weight(1).End()       // NP ->  john
	b.LHS("VP").T("left").Weight(1).End()       // VP ->  left
	g, err := b.Grammar()

This results in the following trivial grammar:

	g.Dump()

	0: [S] ::= [NP VP]   (1)
	1: [NP] ::= [john]   (1)
	2: [VP] ::= [left]   (1)

The root symbol defaults to the LHS of the first rule; `b.Root(…)` selects
another one. Epsilon-productions are not supported, as every rule has to
provide a left corner for prediction pruning.

# Derived Tables

For left-corner prediction pruning the grammar computes two tables once,
right after construction:

■ the left-parent relation: for a symbol Y, all symbols X with a rule X ➞ Y …

■ the prefix table: for a pair (P, B), all rules P ➞ B …

Both are read-only after construction. They are cross-checked against each
other and a grammar with inconsistent tables is never handed out.

# Grammar Files

Grammars may be loaded from text files with one weighted rule per line,
or imported from EBNF (see `Load` and `FromEBNF`).

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wearley.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("wearley.cfg")
}

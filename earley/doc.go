/*
Package earley implements a weighted Earley chart parser.

Earley parsing is a general parsing technique, able to handle any context-free
grammar. Given a grammar with weighted rules, the parser in this package will
either recognize a sentence or find the derivation of least weight for it.
Weights are additive and lower is better; a grammar of probabilities may be
used by converting them to negative log-probabilities (see package cfg).

The parser fills a chart of n+1 columns for a sentence of n words. Each column
is an agenda of dotted rules ("states"), which is processed front to back
while new states are appended to it. States are processed by one of three
operations:

  - predict expands a non-terminal after the dot into the rules for it
  - scan matches a terminal after the dot against the next input word
  - attach advances all states waiting for a completed non-terminal

Whenever attach derives a state already present in the current column with
lower weight, the existing state is relaxed in place: weight and backpointers
are replaced. Relaxation is not propagated to states derived from the relaxed
state earlier on. Derivation trees are reconstructed from backpointers after
the chart has been filled; see `Parser.Parse`.

Prediction uses left-corner pruning: for column i, the parser computes the set
of non-terminals which may start with input word i, together with the rules
leading there. Only rules on such a left-corner path are predicted. Pruning
may be switched off with the option `Pruning(false)` or by setting
configuration key "earley.naive-prediction".

Earley parsing has long been the stepchild of parsing technology. A good
overview of its history and practical use may be found in

	"Practical Earley Parsing" by John Aycock and R. Nigel Horspool
	(https://www.cs.uvic.ca/~nigelh/Publications/PracticalEarleyParsing.pdf)

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wearley.earley'.
func tracer() tracing.Trace {
	return tracing.Select("wearley.earley")
}

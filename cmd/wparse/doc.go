/*
Command wparse finds derivations of least weight for sentences, given a
weighted context-free grammar.

Grammars are read from files in a line-oriented format, one rule per line,
with the weight of the rule in front:

	1    ROOT  S .
	1    S     NP VP
	0.5  NP    Det N

With flag --ebnf, the grammar file is read as EBNF instead. Sentences are
read one per line, with words separated by whitespace.

Usage:

	wparse recognize GRAMMAR [SENTENCES]     # true/false per sentence
	wparse parse GRAMMAR [SENTENCES]         # best derivation and its weight
	wparse tables GRAMMAR                    # left-parent and prefix tables
	wparse chart GRAMMAR WORD...             # dump the chart for a sentence
	wparse repl GRAMMAR                      # interactive mode

Configuration is read from defaults, an optional NestedText file (--config),
environment variables starting with WPARSE_, and command-line flags, with
later sources overriding earlier ones. Environment variables map to keys by
lower-casing, with '_' becoming '.' and '__' becoming '-':

	WPARSE_EARLEY_NAIVE__PREDICTION=true   →   earley.naive-prediction: true

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wearley.cli'
func tracer() tracing.Trace {
	return tracing.Select("wearley.cli")
}

/*
Package wearley is a weighted Earley chart parser.

Wearley recognizes and parses sentences against weighted context-free grammars.
Rules carry non-negative weights, which add up along a derivation, and the
parser returns the derivation tree of least weight. Package structure is
as follows:

■ cfg: Package cfg implements weighted context-free grammars, together with the
derived tables used for left-corner prediction pruning. Grammars may be built
programmatically, loaded from weighted rule files or imported from EBNF.

■ earley: Package earley implements the chart parser, its agenda loop and the
reconstruction of the best derivation tree.

■ ptree: Package ptree implements derivation trees as returned by the parser,
with traversal and rendering.

■ scanner: Package scanner defines tokenizers which split input lines into
the words of a sentence.

■ cmd/wparse: Command wparse parses sentences from the command line, with
grammars read from files.

The base package contains data types which are used throughout all the other packages.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package wearley

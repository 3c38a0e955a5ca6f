/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the Earley parser.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Two lexers are pre-defined: `SentenceLexer` splits input lines into words, and
`GrammarLexer` tokenizes weighted grammar files (see package cfg). Clients
needing other token categories list regular expressions together with the
token types they produce. Matches of patterns of type `Skip` are dropped.

	LM, err := NewLMAdapter(
		Pattern{"[a-z]+", scanner.Word},
		Pattern{"[ \t]+", Skip},
	)
	if err != nil {
		// do error handling
	}

NewLMAdapter will return an error if compiling the DFA failed.
A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("john left")
	if err != nil {
		// do error handling
	}
	sentence, err := scanner.Words(scan) // [john left]

Input no pattern matches is reported to the scanner's error handler and
skipped. Token spans are byte offsets into the input.

________________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexmach

package lexmach

import (
	"sync"

	"github.com/npillmayer/wearley/scanner"
)

// Pre-defined lexers for sentences and weighted grammar files.
// Both are compiled once, on first use.

var sentenceOnce, grammarOnce sync.Once
var sentenceLM, grammarLM *LMAdapter
var sentenceErr, grammarErr error

// Regular expressions are Go-interpreted strings, so that whitespace
// characters in character classes reach lexmachine literally.
const (
	wordRegex       = "[^ \t\r\n#]+"
	blankRegex      = "[ \t\r]+"
	whitespaceRegex = "[ \t\r\n]+"
	commentRegex    = "#[^\n]*"
	newlineRegex    = "\n"
)

// SentenceLexer returns a lexmachine adapter which splits input into words
// at whitespace. Every word is reported as a token of type scanner.Word.
func SentenceLexer() (*LMAdapter, error) {
	sentenceOnce.Do(func() {
		sentenceLM, sentenceErr = NewLMAdapter(
			Pattern{whitespaceRegex, Skip},
			Pattern{commentRegex, Skip},
			Pattern{wordRegex, scanner.Word},
		)
	})
	return sentenceLM, sentenceErr
}

// SentenceScanner creates a scanner for a line of input, producing the words
// of a sentence. `#` starts a comment, which extends to the end of the line.
func SentenceScanner(line string) (*LMScanner, error) {
	lm, err := SentenceLexer()
	if err != nil {
		return nil, err
	}
	return lm.Scanner(line)
}

// GrammarLexer returns a lexmachine adapter for line-oriented grammar files.
// It reports words as tokens of type scanner.Word and line ends as tokens of
// type scanner.Newline. Comments start with `#` and extend to the end of the line.
func GrammarLexer() (*LMAdapter, error) {
	grammarOnce.Do(func() {
		grammarLM, grammarErr = NewLMAdapter(
			Pattern{commentRegex, Skip},
			Pattern{blankRegex, Skip},
			Pattern{newlineRegex, scanner.Newline},
			Pattern{wordRegex, scanner.Word},
		)
	})
	return grammarLM, grammarErr
}

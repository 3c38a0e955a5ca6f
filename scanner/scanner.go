/*
Package scanner defines an interface for scanners to be used with the Earley parser.

The parser consumes sentences as sequences of words, i.e. token lexemes, which are
matched against the terminals of a grammar. A scanner implementation based on
lexmachine lives in sub-package `lexmach`. Function `Words` drains any
Tokenizer into a sentence.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scanner

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wearley"
)

// tracer traces with key 'wearley.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("wearley.scanner")
}

// Token types of the pre-defined scanners.
const (
	EOF     wearley.TokType = -1
	Word    wearley.TokType = 1 // a word of a sentence, or a grammar symbol
	Newline wearley.TokType = 2 // end of a line in line-oriented input
)

// TokTypeString is a wearley.TokTypeStringer for the pre-defined token types.
func TokTypeString(t wearley.TokType) string {
	switch t {
	case EOF:
		return "EOF"
	case Word:
		return "Word"
	case Newline:
		return "NL"
	}
	return fmt.Sprintf("<%d>", t)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() wearley.Token
	SetErrorHandler(func(error))
}

// Words reads tokens from a tokenizer until EOF and returns their lexemes as a
// sentence. Newline tokens are skipped. If the tokenizer reports errors,
// Words collects them and returns them together with the words read.
func Words(tok Tokenizer) ([]string, error) {
	var errs []error
	tok.SetErrorHandler(func(e error) {
		tracer().Errorf("scanner error: %v", e)
		errs = append(errs, e)
	})
	var sentence []string
	for token := tok.NextToken(); token.TokType() != EOF; token = tok.NextToken() {
		if token.TokType() == Newline {
			continue
		}
		sentence = append(sentence, token.Lexeme())
	}
	tracer().Debugf("sentence has %d words", len(sentence))
	return sentence, errors.Join(errs...)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// lexmachine scanners.
type DefaultToken struct {
	kind   wearley.TokType
	lexeme string
	span   wearley.Span
}

// MakeDefaultToken creates a token of type typ.
func MakeDefaultToken(typ wearley.TokType, lexeme string, span wearley.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() wearley.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() wearley.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s|%q%v", TokTypeString(t.kind), t.lexeme, t.span)
}

var _ wearley.Token = DefaultToken{}

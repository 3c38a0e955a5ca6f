package lexmach

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wearley"
	"github.com/npillmayer/wearley/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'wearley.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("wearley.scanner")
}

// Pattern is a regular expression for lexmachine together with the type of
// tokens it produces. Matches of patterns of type Skip are dropped.
type Pattern struct {
	Regex string
	Type  wearley.TokType
}

// Skip is the token type for patterns whose matches do not produce tokens,
// e.g. whitespace and comments.
const Skip wearley.TokType = 0

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter for a list of patterns. If
// more than one pattern matches the longest prefix of the input, the first one
// in the list wins.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(patterns ...Pattern) (*LMAdapter, error) {
	adapter := &LMAdapter{Lexer: lexmachine.NewLexer()}
	for _, pat := range patterns {
		if pat.Type == Skip {
			adapter.Lexer.Add([]byte(pat.Regex), skip)
			continue
		}
		adapter.Lexer.Add([]byte(pat.Regex), makeToken(pat.Type))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Token spans are byte offsets
// into the input. Unconsumed input is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() wearley.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", wearley.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is { // no way to resume
			return scanner.MakeDefaultToken(scanner.EOF, "", wearley.Span{})
		}
		lms.scanner.TC = ui.FailTC
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", wearley.Span{})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d|%q", token.Type, token.Lexeme)
	return scanner.MakeDefaultToken(
		wearley.TokType(token.Type),
		string(token.Lexeme),
		wearley.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ wearley.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

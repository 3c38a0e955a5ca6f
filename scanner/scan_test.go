package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wearley"
)

// sliceTokenizer replays a fixed list of tokens and reports an error for
// every token of type -2.
type sliceTokenizer struct {
	tokens []DefaultToken
	pos    int
	onErr  func(error)
}

func (st *sliceTokenizer) NextToken() wearley.Token {
	for st.pos < len(st.tokens) {
		tok := st.tokens[st.pos]
		st.pos++
		if tok.TokType() == -2 {
			st.onErr(errors.New("unconsumed input " + tok.Lexeme()))
			continue
		}
		return tok
	}
	return MakeDefaultToken(EOF, "", wearley.Span{})
}

func (st *sliceTokenizer) SetErrorHandler(h func(error)) {
	st.onErr = h
}

func TestWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.scanner")
	defer teardown()
	//
	st := &sliceTokenizer{tokens: []DefaultToken{
		MakeDefaultToken(Word, "john", wearley.Span{0, 4}),
		MakeDefaultToken(Newline, "\n", wearley.Span{4, 5}),
		MakeDefaultToken(Word, "left", wearley.Span{5, 9}),
	}}
	words, err := Words(st)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 || words[0] != "john" || words[1] != "left" {
		t.Errorf("Expected sentence to be [john left], is %v", words)
	}
}

func TestWordsWithErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.scanner")
	defer teardown()
	//
	st := &sliceTokenizer{tokens: []DefaultToken{
		MakeDefaultToken(Word, "john", wearley.Span{0, 4}),
		MakeDefaultToken(-2, "§", wearley.Span{4, 5}),
		MakeDefaultToken(Word, "left", wearley.Span{5, 9}),
	}}
	words, err := Words(st)
	if err == nil {
		t.Errorf("Expected scanner error to be reported, is nil")
	}
	if len(words) != 2 {
		t.Errorf("Expected scanning to continue after error, have %v", words)
	}
}

func TestTokenString(t *testing.T) {
	tok := MakeDefaultToken(Word, "john", wearley.Span{0, 4})
	if s := tok.String(); s != `Word|"john"(0…4)` {
		t.Errorf("Expected token to print as Word|\"john\"(0…4), is %s", s)
	}
	if TokTypeString(EOF) != "EOF" {
		t.Errorf("Expected EOF to print as EOF, is %s", TokTypeString(EOF))
	}
}

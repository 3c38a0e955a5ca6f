package lexmach

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wearley"
	"github.com/npillmayer/wearley/scanner"
	"github.com/timtadh/lexmachine/machines"
)

func TestUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(
		Pattern{"[a-z]+", scanner.Word},
		Pattern{" +", Skip},
	)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("john 42 left")
	if err != nil {
		t.Fatal(err)
	}
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	var tokens []wearley.Token
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		tokens = append(tokens, token)
	}
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors for unconsumed input '42', have %d", len(errs))
	}
	for _, e := range errs {
		var ui *machines.UnconsumedInput
		if !errors.As(e, &ui) {
			t.Errorf("Expected unconsumed input error, is %v", e)
		}
	}
	if len(tokens) != 2 || tokens[0].Lexeme() != "john" || tokens[1].Lexeme() != "left" {
		t.Fatalf("Expected scanning to resume after unconsumed input, have %v", tokens)
	}
	if tokens[1].Span() != (wearley.Span{8, 12}) {
		t.Errorf("Expected 'left' to span 8…12, spans %v", tokens[1].Span())
	}
	sc, _ = LM.Scanner("john 42 left")
	words, err := scanner.Words(sc)
	if err == nil || len(words) != 2 {
		t.Errorf("Expected words [john left] and an error, have %v and %v", words, err)
	}
}

func TestSentenceScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.scanner")
	defer teardown()
	//
	sentences := []struct {
		input string
		words []string
	}{
		{"john left", []string{"john", "left"}},
		{"  the   cat\tsat  ", []string{"the", "cat", "sat"}},
		{"", nil},
		{"Papa ate the caviar # !", []string{"Papa", "ate", "the", "caviar"}},
		{"it's a-ok, isn't it ?", []string{"it's", "a-ok,", "isn't", "it", "?"}},
	}
	for _, s := range sentences {
		sc, err := SentenceScanner(s.input)
		if err != nil {
			t.Fatal(err)
		}
		words, err := scanner.Words(sc)
		if err != nil {
			t.Errorf("Expected input %q to scan without error, got %v", s.input, err)
		}
		if len(words) != len(s.words) {
			t.Errorf("Expected %q to have %d words, has %d: %v", s.input, len(s.words), len(words), words)
			continue
		}
		for i, w := range words {
			if w != s.words[i] {
				t.Errorf("Expected word #%d of %q to be %q, is %q", i, s.input, s.words[i], w)
			}
		}
	}
	sc, err := SentenceScanner("  john left")
	if err != nil {
		t.Fatal(err)
	}
	if span := sc.NextToken().Span(); span != (wearley.Span{2, 6}) {
		t.Errorf("Expected 'john' to span 2…6, spans %v", span)
	}
}

func TestGrammarLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.scanner")
	defer teardown()
	//
	input := "# a comment line\n1\tROOT S .\n\n0.5 S NP VP   # trailing comment\n"
	LM, err := GrammarLexer()
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner(input)
	if err != nil {
		t.Fatal(err)
	}
	var words, newlines int
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		switch token.TokType() {
		case scanner.Word:
			words++
		case scanner.Newline:
			newlines++
		default:
			t.Errorf("Unexpected token %v", token)
		}
	}
	if words != 8 {
		t.Errorf("Expected 8 words, have %d", words)
	}
	if newlines != 4 {
		t.Errorf("Expected 4 line ends, have %d", newlines)
	}
}

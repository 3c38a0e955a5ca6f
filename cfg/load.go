package cfg

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/wearley/scanner"
	"github.com/npillmayer/wearley/scanner/lexmach"
)

// Grammar files contain one rule per line:
//
//    # comment
//    1    ROOT  S .
//    1    S     NP VP
//    0.5  NP    Det N
//
// The first field is the weight of the rule, followed by the LHS and the RHS
// symbols. Symbols never appearing as LHS are terminals. Comments start with
// `#` and extend to the end of the line; blank lines are ignored.
//
// If option Probabilities is set, the first field is interpreted as the
// probability p of a rule, and the rule's weight is -log2(p).

type loader struct {
	probabilities bool
	root          string
}

// LoadOption configures the grammar loader.
type LoadOption func(*loader)

// Probabilities sets or clears interpretation of rule numbers as probabilities.
func Probabilities(b bool) LoadOption {
	return func(l *loader) {
		l.probabilities = b
	}
}

// RootSymbol sets the name of the root symbol (default is "ROOT").
func RootSymbol(name string) LoadOption {
	return func(l *loader) {
		l.root = name
	}
}

// Load reads a weighted grammar from r. name is the name of the resulting grammar.
//
// Defaults for the options are taken from the global configuration, keys
// "grammar.probabilities" and "grammar.root".
func Load(name string, r io.Reader, opts ...LoadOption) (*Grammar, error) {
	l := &loader{
		probabilities: gconf.GetBool("grammar.probabilities"),
		root:          gconf.GetString("grammar.root"),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.root == "" {
		l.root = DefaultRoot
	}
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", name, err)
	}
	lm, err := lexmach.GrammarLexer()
	if err != nil {
		return nil, fmt.Errorf("grammar lexer: %w", err)
	}
	sc, err := lm.Scanner(string(input))
	if err != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", name, err)
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	gb := NewGrammarBuilder(name).Root(l.root)
	line, fields := 1, []string{}
	for {
		token := sc.NextToken()
		if token.TokType() == scanner.Word {
			fields = append(fields, token.Lexeme())
			continue
		}
		if err := l.rule(gb, fields, line); err != nil {
			return nil, err
		}
		if token.TokType() == scanner.EOF {
			break
		}
		line++
		fields = fields[:0]
	}
	if scanErr != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", name, scanErr)
	}
	g, err := gb.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded grammar %s with %d rules", name, g.Size())
	return g, nil
}

// LoadFile reads a weighted grammar from a file. The grammar is named after
// the file's base name.
func LoadFile(path string, opts ...LoadOption) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	return Load(filepath.Base(path), f, opts...)
}

func (l *loader) rule(gb *GrammarBuilder, fields []string, line int) error {
	if len(fields) == 0 {
		return nil
	}
	if len(fields) < 2 {
		return gb.errorf(-1, line, "rule needs a weight and a LHS")
	}
	w, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return gb.errorf(-1, line, "cannot read weight %q", fields[0])
	}
	if l.probabilities {
		if w <= 0 || w > 1 {
			return gb.errorf(-1, line, "probability %g not in (0,1]", w)
		}
		w = math.Abs(math.Log2(w)) // -log2(p), without negative zero
	}
	rhs := append([]string(nil), fields[2:]...)
	gb.addRule(fields[1], rhs, w, line)
	return nil
}

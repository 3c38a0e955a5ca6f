package cfg

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// maxAlternatives limits the number of plain alternatives a single EBNF
// production may expand to.
const maxAlternatives = 1024

// FromEBNF imports a grammar in EBNF notation (see golang.org/x/exp/ebnf).
// start names the start production, which becomes the root symbol.
//
// Every EBNF alternative results in a separate rule of weight 1. Groups are
// inlined, options are expanded into variants with and without the optional
// part, and repetitions introduce auxiliary non-terminals
//
//	X_rep1 ➞ x  |  x X_rep1
//
// References to lexical productions (names starting with a lower case letter)
// become terminals named after the production, i.e. input tokens are expected
// to be token class names. Character ranges are not supported.
// Productions which may derive the empty string result in an error.
func FromEBNF(name string, r io.Reader, start string) (*Grammar, error) {
	eg, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("ebnf grammar %s: %w", name, err)
	}
	if err := ebnf.Verify(eg, start); err != nil {
		return nil, fmt.Errorf("ebnf grammar %s: %w", name, err)
	}
	imp := &ebnfImport{
		grammar: eg,
		gb:      NewGrammarBuilder(name).Root(start),
		aux:     make(map[string]int),
	}
	if isLexical(start) {
		return nil, imp.gb.errorf(-1, 0, "start production %s is lexical", start)
	}
	names := make([]string, 0, len(eg))
	for pname := range eg {
		if pname != start && !isLexical(pname) {
			names = append(names, pname)
		}
	}
	sort.Strings(names)
	for _, pname := range append([]string{start}, names...) {
		if err := imp.production(eg[pname]); err != nil {
			return nil, err
		}
	}
	return imp.gb.Grammar()
}

type ebnfImport struct {
	grammar ebnf.Grammar
	gb      *GrammarBuilder
	aux     map[string]int // counter of auxiliary symbols per production
}

func (imp *ebnfImport) production(p *ebnf.Production) error {
	lhs := p.Name.String
	alts, err := imp.expand(lhs, p.Expr)
	if err != nil {
		return err
	}
	imp.addRules(lhs, alts, p.Pos().Line)
	return nil
}

// addRules adds one rule per distinct alternative. Empty alternatives are
// passed on to the builder, which will reject them.
func (imp *ebnfImport) addRules(lhs string, alts [][]string, line int) {
	seen := make(map[string]bool, len(alts))
	for _, alt := range alts {
		key := strings.Join(alt, " ")
		if seen[key] {
			continue
		}
		seen[key] = true
		imp.gb.addRule(lhs, alt, 1, line)
	}
}

// expand returns the plain alternatives an expression stands for. An empty
// alternative represents the empty string.
func (imp *ebnfImport) expand(lhs string, x ebnf.Expression) ([][]string, error) {
	switch x := x.(type) {
	case nil:
		return [][]string{{}}, nil
	case ebnf.Alternative:
		var alts [][]string
		for _, e := range x {
			a, err := imp.expand(lhs, e)
			if err != nil {
				return nil, err
			}
			alts = append(alts, a...)
		}
		return alts, imp.check(lhs, x, len(alts))
	case ebnf.Sequence:
		alts := [][]string{{}}
		for _, e := range x {
			a, err := imp.expand(lhs, e)
			if err != nil {
				return nil, err
			}
			alts = concat(alts, a)
			if err := imp.check(lhs, x, len(alts)); err != nil {
				return nil, err
			}
		}
		return alts, nil
	case *ebnf.Name:
		return [][]string{{x.String}}, nil
	case *ebnf.Token:
		return [][]string{{x.String}}, nil
	case *ebnf.Group:
		return imp.expand(lhs, x.Body)
	case *ebnf.Option:
		a, err := imp.expand(lhs, x.Body)
		if err != nil {
			return nil, err
		}
		return append([][]string{{}}, a...), nil
	case *ebnf.Repetition:
		a, err := imp.expand(lhs, x.Body)
		if err != nil {
			return nil, err
		}
		imp.aux[lhs]++
		R := fmt.Sprintf("%s_rep%d", lhs, imp.aux[lhs])
		var alts [][]string
		for _, alt := range a {
			if len(alt) == 0 {
				return nil, imp.gb.errorf(-1, x.Pos().Line, "repetition in %s may be empty", lhs)
			}
			alts = append(alts, alt, append(append([]string(nil), alt...), R))
		}
		imp.addRules(R, alts, x.Pos().Line)
		return [][]string{{}, {R}}, nil
	case *ebnf.Range:
		return nil, imp.gb.errorf(-1, x.Pos().Line, "character range in %s not supported", lhs)
	case *ebnf.Bad:
		return nil, imp.gb.errorf(-1, x.Pos().Line, "%s", x.Error)
	}
	return nil, imp.gb.errorf(-1, 0, "unexpected expression %T in %s", x, lhs)
}

func (imp *ebnfImport) check(lhs string, x ebnf.Expression, n int) error {
	if n > maxAlternatives {
		return imp.gb.errorf(-1, x.Pos().Line, "%s expands to more than %d alternatives", lhs, maxAlternatives)
	}
	return nil
}

// concat builds the cross product of two lists of alternatives.
func concat(prefixes, suffixes [][]string) [][]string {
	result := make([][]string, 0, len(prefixes)*len(suffixes))
	for _, p := range prefixes {
		for _, s := range suffixes {
			alt := make([]string, 0, len(p)+len(s))
			alt = append(alt, p...)
			alt = append(alt, s...)
			result = append(result, alt)
		}
	}
	return result
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

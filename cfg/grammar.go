package cfg

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/gtrace"
)

// DefaultRoot is the name of the root symbol for grammars loaded from files.
const DefaultRoot = "ROOT"

// --- Symbols ---------------------------------------------------------------

// Symbol is a grammar symbol. Symbols are unique per grammar and are compared
// by pointer.
type Symbol struct {
	Name     string
	Value    int // serial number, unique within a grammar
	terminal bool
}

// IsTerminal returns true if this symbol is a terminal, i.e. it is never
// the LHS of a rule.
func (A *Symbol) IsTerminal() bool {
	return A.terminal
}

func (A *Symbol) String() string {
	return A.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a weighted grammar rule LHS ➞ RHS. Rules are immutable after
// construction of a grammar and shared by pointer.
type Rule struct {
	Serial int     // order of definition
	LHS    *Symbol // left hand side symbol
	rhs    []*Symbol
	Weight float64 // non-negative, lower is better
}

// RHS returns the right hand side symbols of a rule.
// Clients must not modify the returned slice.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// Len returns the number of RHS symbols.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// First returns the leftmost RHS symbol, i.e., the left corner of a rule.
func (r *Rule) First() *Symbol {
	return r.rhs[0]
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("[%s] ::= [", r.LHS.Name))
	for i, A := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// SymbolPair is a key for the prefix table: (predicted symbol, left-corner child).
type SymbolPair struct {
	P, B *Symbol
}

// Grammar is a weighted context-free grammar. Create one with a GrammarBuilder.
// A grammar is immutable and may be shared between parsers.
type Grammar struct {
	Name        string
	rules       []*Rule
	symbols     []*Symbol // by serial
	byName      map[string]*Symbol
	byLHS       map[*Symbol][]*Rule
	root        *Symbol
	leftParents map[*Symbol]*treeset.Set
	prefix      map[SymbolPair][]*Rule
}

// Root returns the distinguished root symbol of the grammar.
func (g *Grammar) Root() *Symbol {
	return g.root
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule #no, or nil.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns all rules in order of definition.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// RulesFor returns all rules with LHS A, in order of definition.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	return g.byLHS[A]
}

// IsNonterminal is a predicate: is A the LHS of any rule of g?
func (g *Grammar) IsNonterminal(A *Symbol) bool {
	return A != nil && len(g.byLHS[A]) > 0
}

// SymbolByName returns the grammar symbol named name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.byName[name]
}

// EachSymbol calls f for every grammar symbol, in order of their serial.
func (g *Grammar) EachSymbol(f func(A *Symbol)) {
	for _, A := range g.symbols {
		f(A)
	}
}

// Nonterminals returns all non-terminal symbols, in order of their serial.
func (g *Grammar) Nonterminals() []*Symbol {
	var N []*Symbol
	for _, A := range g.symbols {
		if !A.terminal {
			N = append(N, A)
		}
	}
	return N
}

// Dump traces the rules and derived tables of a grammar to the syntax tracer,
// at debug level.
func (g *Grammar) Dump() {
	gtrace.SyntaxTracer.Debugf("--- %s ----------------------------------------", g.Name)
	gtrace.SyntaxTracer.Debugf("root = %s", g.root)
	for _, r := range g.rules {
		gtrace.SyntaxTracer.Debugf("%3d: %s   (%g)", r.Serial, r, r.Weight)
	}
	g.EachSymbol(func(Y *Symbol) {
		if parents := g.LeftParents(Y); len(parents) > 0 {
			gtrace.SyntaxTracer.Debugf("left-parents(%s) = %v", Y, parents)
		}
	})
	gtrace.SyntaxTracer.Debugf("-------------------------------------------------")
}

// --- Grammar builder -------------------------------------------------------

type ruleSpec struct {
	lhs    string
	rhs    []string
	weight float64
	line   int
}

// GrammarBuilder is used for programmatically constructing grammars.
// Call Grammar() after all rules have been added.
type GrammarBuilder struct {
	name      string
	root      string
	rules     []*ruleSpec
	terminals map[string]bool // declared with T()
	nonterms  map[string]bool // declared with N()
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		name:      gname,
		terminals: make(map[string]bool),
		nonterms:  make(map[string]bool),
	}
}

// Root sets the name of the root symbol. If it is not set, the LHS of the
// first rule is the root.
func (gb *GrammarBuilder) Root(name string) *GrammarBuilder {
	gb.root = name
	return gb
}

// RuleBuilder is a builder type for a single rule.
type RuleBuilder struct {
	gb   *GrammarBuilder
	spec *ruleSpec
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	return &RuleBuilder{
		gb:   gb,
		spec: &ruleSpec{lhs: s},
	}
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	rb.gb.nonterms[s] = true
	rb.spec.rhs = append(rb.spec.rhs, s)
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	rb.gb.terminals[s] = true
	rb.spec.rhs = append(rb.spec.rhs, s)
	return rb
}

// Weight sets the weight of the rule. The default weight is 0.
func (rb *RuleBuilder) Weight(w float64) *RuleBuilder {
	rb.spec.weight = w
	return rb
}

// End ends a rule and returns its serial number.
func (rb *RuleBuilder) End() int {
	rb.gb.rules = append(rb.gb.rules, rb.spec)
	return len(rb.gb.rules) - 1
}

// addRule adds a rule without declaring its symbols. Terminals will be
// identified as symbols never appearing as LHS.
func (gb *GrammarBuilder) addRule(lhs string, rhs []string, w float64, line int) {
	gb.rules = append(gb.rules, &ruleSpec{lhs: lhs, rhs: rhs, weight: w, line: line})
}

// Grammar returns the grammar under construction. It validates the rules and
// computes the derived tables. If the rules are malformed, Grammar returns
// an error describing every problem found.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	g := &Grammar{
		Name:        gb.name,
		byName:      make(map[string]*Symbol),
		byLHS:       make(map[*Symbol][]*Rule),
		leftParents: make(map[*Symbol]*treeset.Set),
		prefix:      make(map[SymbolPair][]*Rule),
	}
	var errs []error
	if len(gb.rules) == 0 {
		return nil, gb.errorf(-1, 0, "grammar has no rules")
	}
	for serial, spec := range gb.rules {
		r := &Rule{
			Serial: serial,
			LHS:    g.symbol(spec.lhs),
			Weight: spec.weight,
		}
		for _, name := range spec.rhs {
			r.rhs = append(r.rhs, g.symbol(name))
		}
		if len(r.rhs) == 0 {
			errs = append(errs, gb.errorf(serial, spec.line, "epsilon rule for %s", spec.lhs))
		}
		if w := spec.weight; w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			errs = append(errs, gb.errorf(serial, spec.line, "illegal weight %g", w))
		}
		g.rules = append(g.rules, r)
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
	}
	for _, A := range g.symbols {
		A.terminal = len(g.byLHS[A]) == 0
		if A.terminal && gb.nonterms[A.Name] {
			errs = append(errs, gb.errorf(-1, 0, "non-terminal %s has no rules", A.Name))
		}
		if !A.terminal && gb.terminals[A.Name] {
			errs = append(errs, gb.errorf(-1, 0, "terminal %s used as LHS of a rule", A.Name))
		}
	}
	rootName := gb.root
	if rootName == "" {
		rootName = gb.rules[0].lhs
	}
	if g.root = g.byName[rootName]; g.root == nil || g.root.terminal {
		errs = append(errs, gb.errorf(-1, 0, "root symbol %s has no rules", rootName))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	g.computeTables()
	if err := g.checkTables(); err != nil {
		return nil, err
	}
	tracer().Debugf("grammar %s has %d rules and %d symbols", g.Name, len(g.rules), len(g.symbols))
	return g, nil
}

func (g *Grammar) symbol(name string) *Symbol {
	if A, ok := g.byName[name]; ok {
		return A
	}
	A := &Symbol{Name: name, Value: len(g.symbols)}
	g.symbols = append(g.symbols, A)
	g.byName[name] = A
	return A
}

// --- Errors ----------------------------------------------------------------

// GrammarError is the error type for malformed grammars.
type GrammarError struct {
	Grammar string // name of the grammar
	Rule    int    // serial of the offending rule, or -1
	Line    int    // line in a grammar file, or 0
	Reason  string
}

func (e *GrammarError) Error() string {
	var b bytes.Buffer
	b.WriteString("grammar ")
	b.WriteString(e.Grammar)
	if e.Line > 0 {
		b.WriteString(fmt.Sprintf(", line %d", e.Line))
	} else if e.Rule >= 0 {
		b.WriteString(fmt.Sprintf(", rule #%d", e.Rule))
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

func (gb *GrammarBuilder) errorf(rule int, line int, format string, args ...interface{}) error {
	return &GrammarError{
		Grammar: gb.name,
		Rule:    rule,
		Line:    line,
		Reason:  fmt.Sprintf(format, args...),
	}
}

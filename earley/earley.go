package earley

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/wearley/cfg"
	"github.com/npillmayer/wearley/ptree"
	"github.com/npillmayer/wearley/scanner"
)

// Parser is a weighted Earley parser for a grammar. A parser may be used for
// parsing any number of sentences, one after the other. It is not safe for
// concurrent use; create one parser per goroutine instead.
type Parser struct {
	G        *cfg.Grammar
	pruning  bool
	keep     bool
	observer Observer
	chart    *Chart
	sentence []string
	stats    Stats
	tree     *ptree.Tree
}

// Option configures a parser.
type Option func(p *Parser)

// Pruning switches left-corner prediction pruning on or off.
func Pruning(b bool) Option {
	return func(p *Parser) {
		p.pruning = b
	}
}

// WithObserver sets an observer for parser events.
func WithObserver(o Observer) Option {
	return func(p *Parser) {
		if o == nil {
			o = NoopObserver{}
		}
		p.observer = o
	}
}

// StoreChart tells the parser to keep the chart of the last run for inspection
// (see Parser.Chart). Default is true.
func StoreChart(b bool) Option {
	return func(p *Parser) {
		p.keep = b
	}
}

// NewParser creates a parser for a grammar.
func NewParser(g *cfg.Grammar, opts ...Option) *Parser {
	p := &Parser{
		G:        g,
		pruning:  !gconf.GetBool("earley.naive-prediction"),
		keep:     true,
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stats holds the counts of parser operations of the last run.
type Stats struct {
	Predicted int // states added by prediction
	Scanned   int // states added by scanning
	Attached  int // states added by attaching
	Relaxed   int // states which received a lower weight
	Discarded int // derivations dropped for a state with lower weight
}

// Total returns the number of states in the chart.
func (s Stats) Total() int {
	return s.Predicted + s.Scanned + s.Attached
}

func (s Stats) String() string {
	return fmt.Sprintf("predicted=%d scanned=%d attached=%d relaxed=%d discarded=%d total=%d",
		s.Predicted, s.Scanned, s.Attached, s.Relaxed, s.Discarded, s.Total())
}

// Stats returns the operation counts of the last run.
func (p *Parser) Stats() Stats {
	return p.stats
}

// Chart returns the chart of the last run, or nil if the parser has been
// configured not to keep it.
func (p *Parser) Chart() *Chart {
	if !p.keep {
		return nil
	}
	return p.chart
}

// Recognize returns true if the sentence is in the language of the grammar.
func (p *Parser) Recognize(sentence []string) bool {
	p.fillChart(sentence)
	_, ok := p.bestRoot()
	p.release()
	return ok
}

// Parse finds the derivation of least weight for a sentence. If the sentence
// is not in the language of the grammar, Parse returns false. If more than one
// derivation has least weight, the first one found is returned.
func (p *Parser) Parse(sentence []string) (*ptree.Tree, bool) {
	p.fillChart(sentence)
	defer p.release()
	root, ok := p.bestRoot()
	if !ok {
		return nil, false
	}
	st := p.chart.State(root)
	tracer().Infof("best parse has weight %g", st.weight)
	p.tree = &ptree.Tree{
		Root:        p.buildTree(root, len(sentence), 0),
		Sentence:    sentence,
		ChartWeight: st.weight,
	}
	return p.tree, true
}

// ParseTokens reads words from a tokenizer until EOF and parses them.
// Tokenizer errors abort the parse.
func (p *Parser) ParseTokens(tok scanner.Tokenizer) (*ptree.Tree, bool, error) {
	sentence, err := scanner.Words(tok)
	if err != nil {
		return nil, false, fmt.Errorf("cannot read sentence: %w", err)
	}
	tree, ok := p.Parse(sentence)
	return tree, ok, nil
}

// WalkDerivation walks the derivation tree of the last successful parse with a
// listener. It returns the value computed by the listener for the root node,
// or nil if there is no tree.
func (p *Parser) WalkDerivation(listener ptree.Listener) interface{} {
	if p.tree == nil {
		return nil
	}
	return p.tree.TopDown(listener, ptree.LtoR, ptree.Continue)
}

func (p *Parser) release() {
	if !p.keep {
		p.chart = nil
	}
}

// bestRoot finds the complete root state of least weight in the last column,
// spanning the whole sentence.
func (p *Parser) bestRoot() (int, bool) {
	n := len(p.sentence)
	best := none
	for _, inx := range p.chart.columns[n].items {
		st := p.chart.states[inx]
		if !st.IsComplete() || st.start != 0 || st.rule.LHS != p.G.Root() {
			continue
		}
		if best == none || st.weight < p.chart.states[best].weight {
			best = inx
		}
	}
	return best, best != none
}

// --- Filling the chart -----------------------------------------------------

func (p *Parser) fillChart(sentence []string) {
	n := len(sentence)
	p.sentence = sentence
	p.chart = newChart(n)
	p.stats = Stats{}
	p.tree = nil
	tracer().Debugf("parsing %d words: %v", n, sentence)
	for _, r := range p.G.RulesFor(p.G.Root()) {
		if inx, ok := p.chart.enqueue(newState(r, 0, 0, r.Weight), 0); ok {
			p.stats.Predicted++
			p.observer.Predicted(0, p.chart.states[inx])
		}
	}
	for i := 0; i <= n; i++ {
		var word string
		var ancestors ancestorTable
		if i < n {
			word = sentence[i]
			if p.pruning {
				ancestors = buildAncestors(p.G, word)
			}
		}
		p.observer.ColumnStarted(i, word)
		var predicted symbolset
		dedup := make(map[stateKey]int)
		for inx, ok := p.chart.nextState(i); ok; inx, ok = p.chart.nextState(i) {
			st := p.chart.states[inx]
			switch {
			case st.IsComplete():
				p.attach(inx, i, dedup)
			case !st.PeekSymbol().IsTerminal() && i < n:
				predicted = p.predict(st, i, ancestors, predicted)
			default:
				p.scan(inx, i)
			}
		}
		tracer().Debugf("column %d has %d states", i, p.chart.Size(i))
	}
}

// predict adds states for the non-terminal after the dot of st. With an
// ancestor table, only rules on a left-corner path to the current word are
// added and the entry for the non-terminal is exhausted afterwards.
func (p *Parser) predict(st *State, col int, ancestors ancestorTable, predicted symbolset) symbolset {
	P := st.PeekSymbol()
	if ancestors == nil {
		if predicted.contains(P) {
			return predicted
		}
		for _, r := range p.G.RulesFor(P) {
			p.enqueuePrediction(r, col)
		}
		return predicted.add(P)
	}
	B, ok := ancestors[P]
	if !ok {
		return predicted
	}
	for _, v := range B.Values() {
		for _, r := range p.G.PrefixRules(P, v.(*cfg.Symbol)) {
			p.enqueuePrediction(r, col)
		}
	}
	B.Clear()
	return predicted
}

func (p *Parser) enqueuePrediction(r *cfg.Rule, col int) {
	if inx, ok := p.chart.enqueue(newState(r, 0, col, r.Weight), col); ok {
		p.stats.Predicted++
		p.observer.Predicted(col, p.chart.states[inx])
	}
}

// scan matches the terminal after the dot against the word at position col.
func (p *Parser) scan(inx int, col int) {
	st := p.chart.states[inx]
	if col >= len(p.sentence) || st.PeekSymbol().Name != p.sentence[col] {
		return
	}
	next := newState(st.rule, st.dot+1, st.start, st.weight)
	next.attachee = inx
	if j, ok := p.chart.enqueue(next, col+1); ok {
		p.stats.Scanned++
		p.observer.Scanned(col+1, p.chart.states[j])
	}
}

// attach advances all states waiting for the LHS of a completed state.
// dedup records the states created by attach within the current column.
// If a state is derived a second time with lower weight, it is relaxed in
// place; it will not be processed again.
func (p *Parser) attach(completed int, col int, dedup map[stateKey]int) {
	child := p.chart.states[completed]
	for _, r := range p.chart.AttachableStates(completed) {
		R := p.chart.states[r]
		cand := newState(R.rule, R.dot+1, R.start, child.weight+R.weight)
		cand.completed, cand.attachee = completed, r
		k := cand.key()
		j, seen := dedup[k]
		if !seen {
			var inserted bool
			j, inserted = p.chart.enqueue(cand, col)
			dedup[k] = j
			if inserted {
				p.stats.Attached++
				p.observer.Attached(col, cand)
				continue
			}
		}
		existing := p.chart.states[j]
		if existing.weight > cand.weight {
			old := existing.weight
			existing.weight = cand.weight
			existing.completed, existing.attachee = cand.completed, cand.attachee
			p.stats.Relaxed++
			p.observer.Relaxed(col, existing, old)
		} else {
			p.stats.Discarded++
			p.observer.Discarded(col, existing, cand.weight)
		}
	}
}

package ptree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wearley"
	"github.com/npillmayer/wearley/cfg"
)

// ROOT ➞ S
// S    ➞ NP VP
// NP   ➞ john
// VP   ➞ left
func makeTree(t *testing.T) *Tree {
	b := cfg.NewGrammarBuilder("G").Root("ROOT")
	b.LHS("ROOT").N("S").Weight(1).End()
	b.LHS("S").N("NP").N("VP").Weight(2).End()
	b.LHS("NP").T("john").Weight(0.5).End()
	b.LHS("VP").T("left").Weight(0.25).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	john := Leaf(g.SymbolByName("john"), "john", 0)
	left := Leaf(g.SymbolByName("left"), "left", 1)
	np := Inner(g.Rule(2), []*Node{john})
	vp := Inner(g.Rule(3), []*Node{left})
	s := Inner(g.Rule(1), []*Node{np, vp})
	root := Inner(g.Rule(0), []*Node{s})
	return &Tree{Root: root, Sentence: []string{"john", "left"}, ChartWeight: root.Weight}
}

func TestTreeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.ptree")
	defer teardown()
	//
	tree := makeTree(t)
	if s := tree.String(); s != "(ROOT (S (NP john) (VP left)))" {
		t.Errorf("Unexpected bracketed tree: %s", s)
	}
	var none *Tree
	if none.String() != "NONE" || none.Weight() != 0 {
		t.Errorf("Expected nil tree to print as NONE with weight 0")
	}
}

func TestTreeWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.ptree")
	defer teardown()
	//
	tree := makeTree(t)
	if w := tree.Weight(); w != 3.75 {
		t.Errorf("Expected tree weight to be 3.75, is %g", w)
	}
	sum := 0.0
	for _, r := range tree.Rules() {
		sum += r.Weight
	}
	if sum != tree.Weight() {
		t.Errorf("Expected tree weight to equal sum of rule weights %g, is %g", sum, tree.Weight())
	}
	if len(tree.Rules()) != 4 {
		t.Errorf("Expected 4 rules to be applied, have %d", len(tree.Rules()))
	}
}

func TestInnerSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.ptree")
	defer teardown()
	//
	root := makeTree(t).Root
	if root.Span != (wearley.Span{0, 2}) {
		t.Errorf("Expected root to span 0…2, spans %v", root.Span)
	}
	np, vp := root.Children[0].Children[0], root.Children[0].Children[1]
	if np.Span != (wearley.Span{0, 1}) || vp.Span != (wearley.Span{1, 2}) {
		t.Errorf("Expected NP and VP to span 0…1 and 1…2, span %v and %v", np.Span, vp.Span)
	}
}

func TestTreeLeveled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.ptree")
	defer teardown()
	//
	ll := makeTree(t).Leveled()
	if len(ll) != 6 {
		t.Fatalf("Expected 6 leveled items, have %d", len(ll))
	}
	if ll[0].Level != 0 || !strings.HasPrefix(ll[0].Text, "ROOT") {
		t.Errorf("Expected first item to be ROOT at level 0, is %v", ll[0])
	}
	if ll[3].Level != 3 || ll[3].Text != "john" {
		t.Errorf("Expected 4th item to be 'john' at level 3, is %v", ll[3])
	}
}

func TestSignature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.ptree")
	defer teardown()
	//
	t1, t2 := makeTree(t), makeTree(t)
	sigma1, err := t1.Signature()
	if err != nil {
		t.Fatal(err)
	}
	sigma2, _ := t2.Signature()
	t.Logf("Σ1 = %s", sigma1)
	if sigma1 != sigma2 {
		t.Errorf("Expected equal trees to have equal signatures: %s ≠ %s", sigma1, sigma2)
	}
	t2.Root.Children[0].Children[0].Children[0].Token = "mary"
	if sigma2, _ = t2.Signature(); sigma1 == sigma2 {
		t.Errorf("Expected different trees to have different signatures, haven't")
	}
	if _, err = (&Tree{}).Signature(); err == nil {
		t.Errorf("Expected empty tree to have no signature")
	}
}

// --- Listener --------------------------------------------------------------

type bracketListener struct {
	entered []string
}

func (l *bracketListener) EnterRule(sym *cfg.Symbol, children []*Node, ctxt RuleCtxt) bool {
	l.entered = append(l.entered, sym.Name)
	return sym.Name != "VP"
}

func (l *bracketListener) ExitRule(sym *cfg.Symbol, values []interface{}, ctxt RuleCtxt) interface{} {
	parts := []string{}
	for _, v := range values {
		if v != nil {
			parts = append(parts, v.(string))
		}
	}
	return fmt.Sprintf("%s[%s]", sym.Name, strings.Join(parts, ","))
}

func (l *bracketListener) Terminal(sym *cfg.Symbol, token string, ctxt RuleCtxt) interface{} {
	return strings.ToUpper(token)
}

func TestTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.ptree")
	defer teardown()
	//
	tree := makeTree(t)
	l := &bracketListener{}
	v := tree.TopDown(l, LtoR, Continue)
	if v != "ROOT[S[NP[JOHN],VP[LEFT]]]" {
		t.Errorf("Unexpected listener value %v", v)
	}
	if strings.Join(l.entered, " ") != "ROOT S NP VP" {
		t.Errorf("Expected nodes to be entered in pre-order, are %v", l.entered)
	}
	l = &bracketListener{}
	if v = tree.TopDown(l, RtoL, Break); v != "ROOT[S[NP[JOHN],VP[]]]" {
		t.Errorf("Expected VP to be skipped with Break, value is %v", v)
	}
	if strings.Join(l.entered, " ") != "ROOT S VP NP" {
		t.Errorf("Expected nodes to be entered right-to-left, are %v", l.entered)
	}
}

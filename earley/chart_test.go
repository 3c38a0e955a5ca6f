package earley

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wearley/cfg"
)

func makeSimpleGrammar(t *testing.T) *cfg.Grammar {
	b := cfg.NewGrammarBuilder("Simple")
	b.LHS("S").N("NP").N("VP").Weight(1).End()
	b.LHS("NP").T("john").Weight(1).End()
	b.LHS("VP").T("left").Weight(1).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestStateIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.earley")
	defer teardown()
	//
	g := makeSimpleGrammar(t)
	r := g.Rule(0)
	st1 := newState(r, 1, 0, 1)
	st2 := newState(r, 1, 0, 7)
	st2.attachee = 3
	if st1.key() != st2.key() {
		t.Errorf("Expected states differing in weight and backpointers to have equal keys")
	}
	if st1.key() == newState(r, 1, 1, 1).key() || st1.key() == newState(r, 2, 0, 1).key() {
		t.Errorf("Expected states differing in start or dot to have different keys")
	}
	if s := st1.String(); s != "[S] ::= [NP • VP] @0 (1)" {
		t.Errorf("Unexpected state string %s", s)
	}
	if st1.PeekSymbol().Name != "VP" || st1.IsComplete() {
		t.Errorf("Expected state to wait for VP, is %s", st1)
	}
	if st := newState(r, 2, 0, 1); !st.IsComplete() || st.Completed() != -1 || st.Attachee() != -1 {
		t.Errorf("Expected fresh state with dot at end to be complete without backpointers")
	}
}

func TestStateInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.earley")
	defer teardown()
	//
	g := makeSimpleGrammar(t)
	expectPanic(t, "dot out of range", func() {
		newState(g.Rule(1), 2, 0, 0)
	})
	expectPanic(t, "peek past complete state", func() {
		newState(g.Rule(1), 1, 0, 0).PeekSymbol()
	})
}

func TestEnqueueIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.earley")
	defer teardown()
	//
	g := makeSimpleGrammar(t)
	c := newChart(2)
	i, ok := c.enqueue(newState(g.Rule(0), 0, 0, 1), 0)
	if !ok || c.Size(0) != 1 {
		t.Fatalf("Expected state to be inserted")
	}
	j, ok := c.enqueue(newState(g.Rule(0), 0, 0, 0.5), 0)
	if ok || j != i || c.Size(0) != 1 {
		t.Errorf("Expected re-enqueue to be a no-op, inserted=%v, size=%d", ok, c.Size(0))
	}
	if c.State(i).Weight() != 1 {
		t.Errorf("Expected re-enqueue not to change weight, is %g", c.State(i).Weight())
	}
	if _, ok = c.enqueue(newState(g.Rule(0), 0, 0, 1), 1); !ok {
		t.Errorf("Expected equal state to be inserted into a different column")
	}
	if c.State(-1) != nil {
		t.Errorf("Expected index -1 to resolve to nil")
	}
	expectPanic(t, "state starting after its column", func() {
		c.enqueue(newState(g.Rule(1), 0, 2, 1), 1)
	})
}

func TestReadCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.earley")
	defer teardown()
	//
	g := makeSimpleGrammar(t)
	c := newChart(0)
	c.enqueue(newState(g.Rule(0), 0, 0, 1), 0)
	first, ok := c.nextState(0)
	if !ok {
		t.Fatalf("Expected a state in column 0")
	}
	c.enqueue(newState(g.Rule(1), 0, 0, 1), 0) // append while reading
	second, ok := c.nextState(0)
	if !ok || second == first {
		t.Errorf("Expected state appended during iteration to be read")
	}
	if _, ok = c.nextState(0); ok {
		t.Errorf("Expected column to be exhausted")
	}
}

func TestAttachIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.earley")
	defer teardown()
	//
	g := makeSimpleGrammar(t)
	c := newChart(2)
	waiting, _ := c.enqueue(newState(g.Rule(0), 0, 0, 1), 0) // [S → • NP VP] waits for NP
	c.enqueue(newState(g.Rule(1), 0, 0, 1), 0)               // [NP → • john] waits for a terminal
	completed, _ := c.enqueue(newState(g.Rule(1), 1, 0, 1), 1)
	R := c.AttachableStates(completed)
	if len(R) != 1 || R[0] != waiting {
		t.Errorf("Expected exactly [S → • NP VP] to wait for NP, have %v", R)
	}
	other, _ := c.enqueue(newState(g.Rule(2), 1, 1, 1), 2) // [VP → left •] @1
	if R = c.AttachableStates(other); len(R) != 0 {
		t.Errorf("Expected no state to wait for VP at column 1, have %v", R)
	}
	if !strings.Contains(c.ColumnString(0), "[S] ::= [• NP VP]") {
		t.Errorf("Expected column string to list states, is %q", c.ColumnString(0))
	}
	if cols := c.Columns(); cols != 3 || len(c.Column(0)) != 2 {
		t.Errorf("Expected 3 columns with 2 states in column 0, have %d/%d", cols, len(c.Column(0)))
	}
	if items := c.Items(1); len(items) != 1 || items[0] != completed {
		t.Errorf("Expected column 1 to hold the completed NP, have %v", items)
	}
}

func expectPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for %s, did not panic", what)
		} else {
			t.Logf("panic for %s: %v", what, r)
		}
	}()
	f()
}

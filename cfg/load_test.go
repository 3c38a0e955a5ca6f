package cfg

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const papaGrammar = `# A grammar in the style of the cs465 assignments
1	ROOT	S
1	S	NP VP
0.5	VP	V NP
2	VP	VP PP    # a prepositional phrase attached to the verb phrase
1	NP	Det N
1	NP	NP PP
1	NP	Papa
1	PP	P NP
1	Det	the
1	N	caviar
1	N	spoon
1	V	ate
1	P	with
`

func TestLoadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.cfg")
	defer teardown()
	//
	g, err := Load("papa", strings.NewReader(papaGrammar))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 13 {
		t.Errorf("Expected 13 rules, have %d", g.Size())
	}
	if g.Root().Name != "ROOT" {
		t.Errorf("Expected root to be ROOT, is %s", g.Root())
	}
	if r := g.Rule(2); r.Weight != 0.5 || r.LHS.Name != "VP" || r.Len() != 2 {
		t.Errorf("Expected rule #2 to be VP ➞ V NP (0.5), is %s (%g)", r, r.Weight)
	}
	if !g.SymbolByName("caviar").IsTerminal() || g.SymbolByName("NP").IsTerminal() {
		t.Errorf("Expected terminals to be detected from rules")
	}
}

func TestLoadProbabilities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.cfg")
	defer teardown()
	//
	input := "1 ROOT S\n0.25 S a\n0.75 S b\n"
	g, err := Load("prob", strings.NewReader(input), Probabilities(true))
	if err != nil {
		t.Fatal(err)
	}
	if w := g.Rule(0).Weight; w != 0 || math.Signbit(w) {
		t.Errorf("Expected probability 1 to result in weight 0, is %g", w)
	}
	if w := g.Rule(1).Weight; w != 2 {
		t.Errorf("Expected probability 0.25 to result in weight 2, is %g", w)
	}
	_, err = Load("prob", strings.NewReader("1.5 ROOT a\n"), Probabilities(true))
	if err == nil {
		t.Errorf("Expected probability 1.5 to be rejected")
	}
}

func TestLoadConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.cfg")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{
		"grammar.probabilities": true,
		"grammar.root":          "S",
	})
	defer gconf.Initialize(testconfig.Conf{})
	g, err := Load("conf", strings.NewReader("0.5 S a\n0.5 S S a\n"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Root().Name != "S" || g.Rule(0).Weight != 1 {
		t.Errorf("Expected configuration to set root S and probabilities, have root %s and weight %g",
			g.Root(), g.Rule(0).Weight)
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.cfg")
	defer teardown()
	//
	inputs := map[string]string{
		"1 ROOT S\nx S a\n":   "line 2",
		"1 ROOT S\n1 S\n":     "epsilon rule",
		"1 ROOT S\n\n\n1\n":   "line 4",
		"1 S a\n":             "root symbol ROOT",
		"1 ROOT a\n-1 ROOT b": "illegal weight",
	}
	for input, reason := range inputs {
		_, err := Load("bad", strings.NewReader(input))
		if err == nil {
			t.Errorf("Expected grammar %q to be rejected", input)
			continue
		}
		if !strings.Contains(err.Error(), reason) {
			t.Errorf("Expected error for %q to mention %q, is %q", input, reason, err.Error())
		}
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wearley.cfg")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "papa.gr")
	if err := os.WriteFile(path, []byte(papaGrammar), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "papa.gr" {
		t.Errorf("Expected grammar to be named papa.gr, is %s", g.Name)
	}
	if _, err = LoadFile(filepath.Join(t.TempDir(), "missing.gr")); err == nil {
		t.Errorf("Expected missing file to result in an error")
	}
}

package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/wearley/cfg"
	"github.com/npillmayer/wearley/earley"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file>",
		Short: "Parse sentences entered interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	repl, err := readline.New("wparse> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{
		G:      g,
		parser: earley.NewParser(g, earley.StoreChart(false)),
		repl:   repl,
	}
	pterm.Info.Printf("Grammar %s with %d rules, root %s\n", g.Name, g.Size(), g.Root())
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

// Intp is our interactive parser session.
type Intp struct {
	G      *cfg.Grammar
	parser *earley.Parser
	repl   *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err = intp.Eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
}

// Eval parses a sentence, given on a line by itself, and renders the
// derivation of least weight.
func (intp *Intp) Eval(line string) error {
	sentence, err := splitSentence(line)
	if err != nil {
		return err
	}
	tree, ok := intp.parser.Parse(sentence)
	if !ok {
		pterm.Info.Println("NONE")
		return nil
	}
	pterm.Info.Printf("weight %g\n", tree.Weight())
	return renderTree(os.Stdout, tree)
}

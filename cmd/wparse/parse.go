package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/wearley/cfg"
	"github.com/npillmayer/wearley/earley"
	"github.com/npillmayer/wearley/ptree"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	tree      *bool
	signature *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse <grammar file> [sentences file]",
		Short: "Find the derivation of least weight for sentences",
		Example: `  wparse parse english.gr sentences.sen
  echo "john left" | wparse parse --tree english.gr`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runParse,
	}
	parseFlags.tree = cmd.Flags().Bool("tree", false, "render derivations as trees")
	parseFlags.signature = cmd.Flags().Bool("signature", false, "print a structural hash for every derivation")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	in, err := openInput(cmd, args[1:])
	if err != nil {
		return err
	}
	defer in.Close()
	return parse(g, in, cmd.OutOrStdout())
}

// parse prints the best derivation for every sentence, in bracketed form and
// followed by its weight, or NONE if the sentence cannot be parsed.
func parse(g *cfg.Grammar, in io.Reader, out io.Writer) error {
	p := earley.NewParser(g, earley.StoreChart(false))
	return eachSentence(in, func(lineno int, sentence []string) error {
		tree, ok := p.Parse(sentence)
		if !ok {
			tracer().Infof("line %d: no parse", lineno)
		}
		if err := printTree(out, tree); err != nil {
			return err
		}
		printStats(out, p)
		return nil
	})
}

// printTree prints a tree in the format selected by the parse flags.
func printTree(out io.Writer, tree *ptree.Tree) error {
	if tree == nil {
		fmt.Fprintln(out, "NONE")
		return nil
	}
	fmt.Fprintf(out, "%s\t%g\n", tree, tree.Weight())
	if *parseFlags.signature {
		sig, err := tree.Signature()
		if err != nil {
			return fmt.Errorf("cannot compute signature: %w", err)
		}
		fmt.Fprintf(out, "# signature %s\n", sig)
	}
	if *parseFlags.tree {
		return renderTree(out, tree)
	}
	return nil
}

func renderTree(out io.Writer, tree *ptree.Tree) error {
	root := putils.TreeFromLeveledList(tree.Leveled())
	return pterm.DefaultTree.WithRoot(root).WithWriter(out).Render()
}

package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/wearley/cfg"
	"github.com/npillmayer/wearley/earley"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "recognize <grammar file> [sentences file]",
		Short:   "Check if sentences are in the language of a grammar",
		Example: `  echo "john left" | wparse recognize english.gr`,
		Args:    cobra.RangeArgs(1, 2),
		RunE:    runRecognize,
	}
	rootCmd.AddCommand(cmd)
}

func runRecognize(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	in, err := openInput(cmd, args[1:])
	if err != nil {
		return err
	}
	defer in.Close()
	return recognize(g, in, cmd.OutOrStdout())
}

// recognize prints one line per sentence, either "true" or "false".
func recognize(g *cfg.Grammar, in io.Reader, out io.Writer) error {
	p := earley.NewParser(g, earley.StoreChart(false))
	return eachSentence(in, func(lineno int, sentence []string) error {
		accept := p.Recognize(sentence)
		tracer().Infof("line %d: %v", lineno, accept)
		fmt.Fprintln(out, accept)
		printStats(out, p)
		return nil
	})
}

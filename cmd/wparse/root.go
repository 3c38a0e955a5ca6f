package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/wearley/cfg"
	"github.com/npillmayer/wearley/earley"
	"github.com/npillmayer/wearley/scanner"
	"github.com/npillmayer/wearley/scanner/lexmach"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	naive         *bool
	probabilities *bool
	root          *string
	ebnf          *string
	trace         *string
	config        *string
	stats         *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "wparse",
	Short: "Find derivations of least weight with a weighted Earley parser",
	Long: `wparse parses sentences with a weighted context-free grammar.
For every sentence in the language of the grammar it finds a derivation
of least total rule weight.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configure(cmd.Flags(), *rootFlags.config)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	rootFlags.naive = pf.Bool("naive", false, "predict without left-corner pruning")
	rootFlags.probabilities = pf.Bool("probabilities", false, "read rule numbers as probabilities")
	rootFlags.root = pf.String("root", cfg.DefaultRoot, "name of the root symbol")
	rootFlags.ebnf = pf.String("ebnf", "", "read the grammar as EBNF, with the given start production as root (excludes --root and --probabilities)")
	rootFlags.trace = pf.String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.config = pf.String("config", "", "configuration file (NestedText)")
	rootFlags.stats = pf.Bool("stats", false, "print parser statistics for every sentence")
}

// Execute runs the wparse command line.
func Execute() error {
	return rootCmd.Execute()
}

// loadGrammar reads a grammar file, either in the weighted rule format or,
// with flag --ebnf, as EBNF.
func loadGrammar(path string) (*cfg.Grammar, error) {
	if *rootFlags.ebnf == "" {
		return cfg.LoadFile(path)
	}
	err := checkEBNF(*rootFlags.ebnf, gconf.GetString(keyRoot), gconf.GetBool(keyProbabilities))
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar: %w", err)
	}
	defer f.Close()
	return cfg.FromEBNF(path, f, *rootFlags.ebnf)
}

// checkEBNF rejects grammar settings which cannot be applied to EBNF grammars.
// Their root is the start production and all rules have weight 1.
func checkEBNF(start, root string, probabilities bool) error {
	if probabilities {
		return errors.New("--probabilities cannot be used with --ebnf")
	}
	if root != "" && root != cfg.DefaultRoot && root != start {
		return fmt.Errorf("root %s conflicts with EBNF start production %s", root, start)
	}
	return nil
}

// openInput opens the file with sentences, if args contains one. Otherwise
// sentences are read from stdin.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("cannot open sentences: %w", err)
	}
	return f, nil
}

// eachSentence splits input into lines and calls f for every non-empty
// sentence. Iteration stops with the first error returned by f.
func eachSentence(r io.Reader, f func(lineno int, sentence []string) error) error {
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		sentence, err := splitSentence(lines.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		if len(sentence) == 0 {
			continue
		}
		if err = f(lineno, sentence); err != nil {
			return err
		}
	}
	return lines.Err()
}

// splitSentence splits a line of input into words.
func splitSentence(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	sc, err := lexmach.SentenceScanner(line)
	if err != nil {
		return nil, err
	}
	return scanner.Words(sc)
}

func printStats(w io.Writer, p *earley.Parser) {
	if *rootFlags.stats {
		fmt.Fprintf(w, "# %s\n", p.Stats())
	}
}

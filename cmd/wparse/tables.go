package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/wearley/cfg"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tables <grammar file>",
		Short: "Print the rules of a grammar and the tables derived from them",
		Args:  cobra.ExactArgs(1),
		RunE:  runTables,
	}
	rootCmd.AddCommand(cmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	g.Dump()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Grammar %s, root %s\n", g.Name, g.Root())
	for _, data := range [][][]string{ruleTable(g), leftParentTable(g), prefixTable(g)} {
		if err = pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(out).Render(); err != nil {
			return err
		}
	}
	return nil
}

func ruleTable(g *cfg.Grammar) pterm.TableData {
	data := pterm.TableData{{"#", "rule", "weight"}}
	for _, r := range g.Rules() {
		data = append(data, []string{strconv.Itoa(r.Serial), r.String(), strconv.FormatFloat(r.Weight, 'g', -1, 64)})
	}
	return data
}

// leftParentTable lists the left parents for every symbol which is the left
// corner of at least one rule.
func leftParentTable(g *cfg.Grammar) pterm.TableData {
	data := pterm.TableData{{"symbol", "left parents"}}
	g.EachSymbol(func(Y *cfg.Symbol) {
		parents := g.LeftParents(Y)
		if len(parents) == 0 {
			return
		}
		names := make([]string, len(parents))
		for i, X := range parents {
			names[i] = X.Name
		}
		data = append(data, []string{Y.Name, strings.Join(names, " ")})
	})
	return data
}

// prefixTable lists the rules P ➞ B … for every pair (P, B).
func prefixTable(g *cfg.Grammar) pterm.TableData {
	data := pterm.TableData{{"P", "B", "rules"}}
	for _, pair := range g.PrefixPairs() {
		rules := g.PrefixRules(pair.P, pair.B)
		rr := make([]string, len(rules))
		for i, r := range rules {
			rr[i] = r.String()
		}
		data = append(data, []string{pair.P.Name, pair.B.Name, strings.Join(rr, ", ")})
	}
	return data
}

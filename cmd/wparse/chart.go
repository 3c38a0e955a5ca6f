package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/wearley/cfg"
	"github.com/npillmayer/wearley/earley"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "chart <grammar file> <word>...",
		Short:   "Parse a sentence and print the chart",
		Example: `  wparse chart english.gr john left`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    runChart,
	}
	rootCmd.AddCommand(cmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	return chart(g, args[1:], cmd.OutOrStdout())
}

func chart(g *cfg.Grammar, sentence []string, out io.Writer) error {
	p := earley.NewParser(g, earley.StoreChart(true), earley.WithObserver(earley.TraceObserver{}))
	tree, _ := p.Parse(sentence)
	c := p.Chart()
	for col := 0; col < c.Columns(); col++ {
		word := "(end)"
		if col < len(sentence) {
			word = sentence[col]
		}
		fmt.Fprintf(out, "Column %d: %s\n", col, word)
		err := pterm.DefaultTable.WithHasHeader().WithData(columnTable(c, col)).WithWriter(out).Render()
		if err != nil {
			return err
		}
	}
	printStats(out, p)
	return printTree(out, tree)
}

// columnTable lists the states of a chart column together with their
// backpointers.
func columnTable(c *earley.Chart, col int) pterm.TableData {
	data := pterm.TableData{{"#", "state", "weight", "attachee", "completed"}}
	for _, inx := range c.Items(col) {
		st := c.State(inx)
		data = append(data, []string{
			strconv.Itoa(inx),
			st.String(),
			strconv.FormatFloat(st.Weight(), 'g', -1, 64),
			backpointer(st.Attachee()),
			backpointer(st.Completed()),
		})
	}
	return data
}

func backpointer(inx int) string {
	if inx < 0 {
		return ""
	}
	return "#" + strconv.Itoa(inx)
}

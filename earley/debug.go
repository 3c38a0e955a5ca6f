package earley

import (
	"bytes"
	"fmt"
)

func (p *Parser) dumpChart() {
	if p.chart == nil {
		return
	}
	for col := 0; col < p.chart.Columns(); col++ {
		dumpColumn(p.chart, col)
	}
}

func dumpColumn(c *Chart, col int) {
	tracer().Debugf("--- Column %04d ------------------------------------", col)
	for n, inx := range c.columns[col].items {
		tracer().Debugf("[%2d] #%d %s", n+1, inx, c.states[inx])
	}
}

// ColumnString returns the states of a column, one per line, together with
// their arena indices and backpointers.
func (c *Chart) ColumnString(col int) string {
	var b bytes.Buffer
	for _, inx := range c.columns[col].items {
		st := c.states[inx]
		b.WriteString(fmt.Sprintf("#%-4d %s", inx, st))
		if st.attachee != none {
			b.WriteString(fmt.Sprintf("  ← #%d", st.attachee))
		}
		if st.completed != none {
			b.WriteString(fmt.Sprintf(" + #%d", st.completed))
		}
		b.WriteString("\n")
	}
	return b.String()
}

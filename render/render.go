// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvtransport/balance"
	"github.com/katalvlaran/lvtransport/problem"
	"github.com/katalvlaran/lvtransport/solve"
)

var (
	colorHeader lipgloss.Color = "#89b4fa"
	colorTitle  lipgloss.Color = "#f5c2e7"
	colorError  lipgloss.Color = "#f38ba8"

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
)

// Num formats a quantity or cost the way every table shows it.
func Num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// penaltyText renders a penalty, with "-" for the NoPenalty sentinel.
func penaltyText(v float64) string {
	if v == problem.NoPenalty {
		return "-"
	}

	return Num(v)
}

// RowLabel names supply point i ("S1", ...).
func RowLabel(i int, meta balance.Meta) string {
	if meta.IsDummyRow(i) {
		return fmt.Sprintf("S%d (dummy)", i+1)
	}

	return fmt.Sprintf("S%d", i+1)
}

// ColLabel names demand point j ("D1", ...).
func ColLabel(j int, meta balance.Meta) string {
	if meta.IsDummyCol(j) {
		return fmt.Sprintf("D%d (dummy)", j+1)
	}

	return fmt.Sprintf("D%d", j+1)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

// State is what one table shows: the remaining vectors, the highlighted
// cell (if any) and the round penalties (Vogel only).
type State struct {
	Snapshot     problem.Snapshot
	Mark         *problem.Cell
	RowPenalties []problem.Penalty
	ColPenalties []problem.Penalty
}

// Table draws the cost matrix of p annotated with st.
func Table(p problem.Problem, meta balance.Meta, st State) string {
	withPen := len(st.RowPenalties) > 0 || len(st.ColPenalties) > 0

	headers := []string{""}
	for j := 0; j < p.Cols(); j++ {
		headers = append(headers, ColLabel(j, meta))
	}
	headers = append(headers, "Supply")
	if withPen {
		headers = append(headers, "Penalty")
	}
	t := newTable(headers...)

	for i, row := range p.Costs {
		cells := []string{RowLabel(i, meta)}
		for j, c := range row {
			txt := Num(c)
			if st.Mark != nil && st.Mark.Row == i && st.Mark.Col == j {
				txt = "[" + txt + "]"
			}
			cells = append(cells, txt)
		}
		cells = append(cells, vectorAt(st.Snapshot.Supply, i))
		if withPen {
			cells = append(cells, penaltyAt(st.RowPenalties, i))
		}
		t.Row(cells...)
	}

	demand := []string{"Demand"}
	for j := 0; j < p.Cols(); j++ {
		demand = append(demand, vectorAt(st.Snapshot.Demand, j))
	}
	demand = append(demand, "")
	if withPen {
		demand = append(demand, "")
	}
	t.Row(demand...)

	if withPen {
		pen := []string{"Penalty"}
		for j := 0; j < p.Cols(); j++ {
			pen = append(pen, penaltyAt(st.ColPenalties, j))
		}
		t.Row(append(pen, "", "")...)
	}

	return t.String()
}

func vectorAt(v []float64, i int) string {
	if i < len(v) {
		return Num(v[i])
	}

	return ""
}

func penaltyAt(ps []problem.Penalty, i int) string {
	if i < len(ps) {
		return penaltyText(ps[i].Value)
	}

	return ""
}

// Steps renders the whole trace of res, which was computed on p.
// Northwest steps only record the after-state; their before-state is the
// after-state of the previous step (or the initial vectors).
func Steps(p problem.Problem, meta balance.Meta, res problem.Result) string {
	var (
		b    strings.Builder
		prev = problem.NewSnapshot(p.Supply, p.Demand)
	)
	for _, s := range res.Steps {
		switch st := s.(type) {
		case problem.Assignment:
			before := prev
			if st.Before != nil {
				before = *st.Before
			}
			title := fmt.Sprintf("Step %d: assign %s units to %s", st.Number, Num(st.Quantity), st.Cell)
			if st.Selection != nil {
				title += fmt.Sprintf(" (%s %d)", st.Selection.Axis, st.Selection.Index)
			}
			cell := st.Cell
			b.WriteString(titleStyle.Render(title))
			b.WriteString("\nBefore:\n")
			b.WriteString(Table(p, meta, State{
				Snapshot:     before,
				Mark:         &cell,
				RowPenalties: st.RowPenalties,
				ColPenalties: st.ColPenalties,
			}))
			b.WriteString("\n" + st.Explanation + "\n")
			b.WriteString("After:\n")
			b.WriteString(Table(p, meta, State{Snapshot: st.After, Mark: &cell}))
			b.WriteString("\n\n")
			prev = st.After

		case problem.Failure:
			b.WriteString(errorStyle.Render(fmt.Sprintf("Step %d: %s", st.Number, st.Code)))
			b.WriteString("\n" + st.Message + "\n")
			if st.Explanation != "" {
				b.WriteString(st.Explanation + "\n")
			}
			b.WriteString(Table(p, meta, State{
				Snapshot:     st.State,
				Mark:         st.Cell,
				RowPenalties: st.RowPenalties,
				ColPenalties: st.ColPenalties,
			}))
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

// Allocation draws the final allocation matrix with row and column totals.
func Allocation(meta balance.Meta, res problem.Result) string {
	if len(res.Allocation) == 0 {
		return ""
	}
	cols := len(res.Allocation[0])

	headers := []string{""}
	for j := 0; j < cols; j++ {
		headers = append(headers, ColLabel(j, meta))
	}
	t := newTable(append(headers, "Total")...)

	rowSums := res.RowSums()
	for i, row := range res.Allocation {
		cells := []string{RowLabel(i, meta)}
		for _, q := range row {
			cells = append(cells, Num(q))
		}
		t.Row(append(cells, Num(rowSums[i]))...)
	}

	totals := []string{"Total"}
	for _, s := range res.ColSums() {
		totals = append(totals, Num(s))
	}
	t.Row(append(totals, Num(res.Allocated()))...)

	return t.String()
}

// Breakdown lists every shipment with its subtotal and the total cost Z.
func Breakdown(costs [][]float64, meta balance.Meta, res problem.Result) string {
	t := newTable("From", "To", "Quantity", "Cost", "Subtotal")
	for _, s := range res.Breakdown(costs) {
		t.Row(RowLabel(s.From, meta), ColLabel(s.To, meta), Num(s.Quantity), Num(s.Cost), Num(s.Subtotal))
	}
	t.Row("", "", "", "Z", Num(res.TotalCost(costs)))

	return t.String()
}

// Outcome renders a full report: summary, optional step tables, allocation
// and cost breakdown.
func Outcome(out solve.Outcome, withSteps bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("Method: %s | Status: %s", out.Result.Method, out.Result.Status)))
	switch out.Balance.Kind {
	case balance.DummyColumnAdded:
		fmt.Fprintf(&b, "Supply exceeded demand by %s: added %s.\n", Num(out.Balance.Difference), ColLabel(out.Balance.Index, out.Balance))
	case balance.DummyRowAdded:
		fmt.Fprintf(&b, "Demand exceeded supply by %s: added %s.\n", Num(out.Balance.Difference), RowLabel(out.Balance.Index, out.Balance))
	case balance.Unbalanced:
		fmt.Fprintf(&b, "Problem is unbalanced by %s and was solved as is.\n", Num(out.Balance.Difference))
	}
	b.WriteString("\n")

	if withSteps {
		b.WriteString(Steps(out.Balanced, out.Balance, out.Result))
	}

	b.WriteString("Allocation:\n")
	b.WriteString(Allocation(out.Balance, out.Result))
	b.WriteString("\n\nCost breakdown:\n")
	b.WriteString(Breakdown(out.Balanced.Costs, out.Balance, out.Result))
	fmt.Fprintf(&b, "\n\nMin Z = %s\n", Num(out.TotalCost))

	return b.String()
}

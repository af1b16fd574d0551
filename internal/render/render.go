// ABOUTME: Terminal and CSV rendering of ranking results
// ABOUTME: Table output via go-pretty, grounded on the same layout as the library's other renderers

// Package render formats a ranking.Result for a terminal or a CSV sink.
package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/stojg/rankcraft/internal/ranking"
)

// Format selects the rendering target.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
)

// Table writes result as a rounded-box terminal table to w.
func Table(w io.Writer, result ranking.Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Box.PaddingLeft = ""
	tw.Style().Box.PaddingRight = ""
	tw.Style().Title.Align = text.AlignCenter

	tw.SetTitle(fmt.Sprintf("Ranking (%d competitors, %d games, final loss %.4f)",
		result.Info.TotalCompetitors, result.Info.TotalGames, result.Info.FinalLoss))

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Competitor", Align: text.AlignLeft},
		{Name: "Inconsistency", Align: text.AlignRight},
		{Name: "SOS", Align: text.AlignRight},
	})

	tw.AppendHeader(table.Row{"#", "Competitor", "Inconsistency", "SOS"})
	for _, e := range result.Ranking {
		tw.AppendRow(table.Row{e.Rank, e.Competitor, e.InconsistencyScore, fmt.Sprintf("%+.4f", e.SOS)})
	}

	tw.Render()
}

// CSV writes result as CSV to w: one header row, then one row per
// ranking entry.
func CSV(w io.Writer, result ranking.Result) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"rank", "competitor", "inconsistency_score", "sos"}); err != nil {
		return err
	}

	for _, e := range result.Ranking {
		row := []string{
			fmt.Sprintf("%d", e.Rank),
			e.Competitor,
			fmt.Sprintf("%d", e.InconsistencyScore),
			fmt.Sprintf("%.6f", e.SOS),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"demclean/internal/model"
)

// renderIncludedTable renders the included demos as a rounded table
func renderIncludedTable(records []*model.IncludedDemo) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Demo", "Source", "Reason"})
	for _, rec := range records {
		tw.AppendRow(table.Row{rec.DemoPath, string(rec.Source), rec.Reason.String()})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

package console

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gopak/sift/internal/output"
)

// RenderColors returns a table of every accepted -c name with a sample.
func RenderColors() string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprint("colors") + "\n")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Name", "Sample"})
	for _, c := range output.Colors() {
		tw.AppendRow(table.Row{c.Name, c.Sprint("sample match")})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}

package console

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gopak/sift/internal/config"
)

// RenderConfig shows the effective configuration and the files it came from.
func RenderConfig(cfg config.Config, files []string) string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprint("configuration") + "\n")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Key", "Value"})
	ic := "false"
	if cfg.IgnoreCaseDefault() {
		ic = "true"
	}
	tw.AppendRow(table.Row{"ignore_case", ic})
	tw.AppendRow(table.Row{"color", orDash(cfg.Color)})
	tw.AppendRow(table.Row{"regex_flag", orDash(cfg.RegexFlag)})
	tw.AppendRow(table.Row{"regex_timeout", orDash(cfg.RegexTimeout)})
	tw.AppendRow(table.Row{"log_file", orDash(cfg.LogFile)})
	b.WriteString(tw.Render())
	b.WriteString("\n\n")

	b.WriteString(text.Bold.Sprint("sources") + "\n")
	if len(files) == 0 {
		b.WriteString("  (embedded defaults only)\n")
		return b.String()
	}
	for _, f := range files {
		b.WriteString("  " + f + "\n")
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

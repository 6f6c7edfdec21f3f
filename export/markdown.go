package export

import (
	"io"
	"strings"

	"github.com/tsawler/lasgo/las"
)

// exportMarkdown writes the data matrix as a Markdown table.
func (e *Exporter) exportMarkdown(l *las.Log, w io.Writer) error {
	t, err := e.selectTable(l)
	if err != nil {
		return err
	}
	if len(t.headers) == 0 {
		return nil
	}

	var sb strings.Builder
	writeMarkdownRow(&sb, t.headers)
	for range t.headers {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range t.rows {
		writeMarkdownRow(&sb, e.record(t, row))
	}

	_, err = io.WriteString(w, sb.String())
	return err
}

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	for _, cell := range cells {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(cell, "|", `\|`))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
}

package export

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/lasgo/las"
)

// exportHTML writes a standalone page with the well section and the data
// matrix as tables.
func (e *Exporter) exportHTML(l *las.Log, w io.Writer) error {
	t, err := e.selectTable(l)
	if err != nil {
		return err
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	title := pageTitle(l)
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(withText(element(atom.Title), title))
	root.AppendChild(head)

	body := element(atom.Body)
	body.AppendChild(withText(element(atom.H1), title))

	if well := l.Properties(las.SectionWell); len(well) > 0 {
		rows := make([][]string, len(well))
		for i, p := range well {
			rows[i] = []string{p.Title, p.Unit, p.Value, p.Description}
		}
		body.AppendChild(withText(element(atom.H2), "Well Information"))
		body.AppendChild(htmlTable("well",
			[]string{"Mnemonic", "Unit", "Value", "Description"}, rows))
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = e.record(t, row)
	}
	body.AppendChild(withText(element(atom.H2), "Data"))
	body.AppendChild(htmlTable("data", t.headers, rows))

	if other := l.Other(); other != "" {
		body.AppendChild(withText(element(atom.H2), "Other"))
		body.AppendChild(withText(element(atom.Pre), other))
	}
	root.AppendChild(body)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

func pageTitle(l *las.Log) string {
	if p, ok := l.WellInfo()["WELL"]; ok && p.Value != "" {
		return p.Value
	}
	return "LAS log"
}

func htmlTable(class string, headers []string, rows [][]string) *html.Node {
	table := element(atom.Table, html.Attribute{Key: "class", Val: class})

	thead := element(atom.Thead)
	tr := element(atom.Tr)
	for _, h := range headers {
		tr.AppendChild(withText(element(atom.Th), h))
	}
	thead.AppendChild(tr)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range rows {
		tr := element(atom.Tr)
		for _, cell := range row {
			tr.AppendChild(withText(element(atom.Td), cell))
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	return table
}

func element(tag atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
		Attr:     attrs,
	}
}

// withText appends a text child to n, unless s is empty.
func withText(n *html.Node, s string) *html.Node {
	if s != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
	return n
}

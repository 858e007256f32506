// Package diagram renders the schema as an entity-relationship diagram
// styled after QuickDatabaseDiagrams: one HTML-table node per schema
// table, one plain line per foreign key, anchored cell-to-cell.
package diagram

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/emicklei/dot"
)

// Build assembles the ERD as a DOT digraph. Output is deterministic for
// a fixed schema, so two runs produce identical graph text.
func Build() *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")
	g.Attr("splines", "ortho")
	g.Attr("bgcolor", "white")

	nodes := make(map[string]dot.Node)
	for _, t := range Tables() {
		n := g.Node(t.Name)
		n.Attr("shape", "plaintext")
		n.Attr("label", dot.HTML(tableLabel(t)))
		nodes[t.Name] = n
	}

	for _, ref := range References() {
		e := g.EdgeWithPorts(nodes[ref.FromTable], nodes[ref.ToTable], ref.FromColumn, ref.ToColumn)
		e.Attr("arrowhead", "none")
	}

	return g
}

// tableLabel builds the HTML label for one table node: a deepskyblue
// header row with the table name, then one row per column with the name
// cell PORTed so edges can attach to the exact field.
func tableLabel(t Table) string {
	var b strings.Builder
	b.WriteString(`<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">`)
	fmt.Fprintf(&b,
		`<TR><TD COLSPAN="2" BGCOLOR="deepskyblue" ALIGN="CENTER"><FONT COLOR="white"><B>%s</B></FONT></TD></TR>`,
		t.Name)
	for _, col := range t.Columns {
		fmt.Fprintf(&b,
			`<TR><TD PORT="%s" ALIGN="LEFT">%s</TD><TD ALIGN="RIGHT"><FONT COLOR="gray">%s</FONT></TD></TR>`,
			col.Name, col.Name, col.Type)
	}
	b.WriteString(`</TABLE>`)
	return b.String()
}

// Render writes the graph to <path> as PNG via the graphviz dot binary,
// overwriting any existing file, and removes the intermediate .gv file.
// It fails when dot is not installed.
func Render(g *dot.Graph, path string) error {
	gvPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".gv"
	if err := os.WriteFile(gvPath, []byte(g.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write graph source: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.Command("dot", "-Tpng", "-o", path, gvPath)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("dot failed: %w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("dot failed: %w", err)
	}

	return os.Remove(gvPath)
}

// Package visualize renders a Model's importance-group DAG to an image
// format via Graphviz, grounded on stacktower's pkg/render/nodelink
// (ToDOT builds a DOT string by hand, then graphviz.ParseBytes + Render
// produces the image) — generalized here from dependency DAGs to
// importance-relation DAGs.
package visualize

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/mcda"
)

// ImportanceDAG renders m's importance-group graph in the given format to
// w: one node per importance group (labeled with its member criteria,
// newline-joined), one edge per direct strict-importance relation.
func ImportanceDAG(m *mcda.Model, format graphviz.Format, w io.Writer) error {
	dot := toDOT(m.ImportanceGraph())

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("visualize: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("visualize: parse DOT: %w", err)
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, w); err != nil {
		return fmt.Errorf("visualize: render: %w", err)
	}
	return nil
}

// toDOT builds a DOT document from an importance graph view.
func toDOT(view mcda.ImportanceGraph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph importance {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n\n")

	for i, members := range view.Groups {
		label := strings.Join(members, "\\n")
		fmt.Fprintf(&buf, "  g%d [label=\"%s\"];\n", i, label)
	}

	buf.WriteString("\n")
	for _, e := range view.Edges {
		fmt.Fprintf(&buf, "  g%d -> g%d;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

package diagram

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/junkd0g/kuposhan/internal/dataset"
	"github.com/junkd0g/kuposhan/internal/view"
)

// Format is an image format the factor map can be rendered to.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// FormatFromPath picks the image format from a file extension, defaulting to PNG.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatPNG
}

// Generate renders the factor map and saves it to the output path.
func Generate(ctx context.Context, outputPath string) error {
	out, err := RenderFactorMap(ctx, FormatFromPath(outputPath))
	if err != nil {
		return err
	}

	if err := writeFileBytes(outputPath, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// RenderFactorMap lays out the factor graph with graphviz and returns the
// encoded image.
func RenderFactorMap(ctx context.Context, format Format) ([]byte, error) {
	g, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer g.Close()

	graph, err := graphviz.ParseBytes([]byte(GenerateDOT()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse DOT: %w", err)
	}
	defer graph.Close()

	gvFormat := graphviz.PNG
	if format == FormatSVG {
		gvFormat = graphviz.SVG
	}

	var buf bytes.Buffer
	if err := g.Render(ctx, graph, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.Bytes(), nil
}

// GenerateDOT describes the stunting factors as a graph: one cluster per
// category, one node per factor, and an edge from each factor into the
// stunting outcome weighted by its impact score.
func GenerateDOT() string {
	var sb strings.Builder

	sb.WriteString("digraph Factors {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  label=\"Factors Contributing to Stunting\";\n")
	sb.WriteString("  labelloc=t;\n")
	sb.WriteString("  fontsize=20;\n")
	sb.WriteString("  fontname=\"Helvetica-Bold\";\n")
	sb.WriteString("  pad=0.4;\n")
	sb.WriteString("  nodesep=0.4;\n")
	sb.WriteString("  ranksep=1.4;\n\n")

	sb.WriteString("  node [fontname=\"Helvetica\", fontsize=12, margin=\"0.2,0.1\", penwidth=0];\n")
	sb.WriteString("  edge [fontname=\"Helvetica\", fontsize=10, color=\"#9ca3af\", arrowsize=0.7];\n\n")

	national := nationalValue(dataset.MetricStunting)
	sb.WriteString(fmt.Sprintf("  outcome [shape=doublecircle, style=filled, fillcolor=\"%s\", fontcolor=\"white\", label=\"Stunting\\n%s\"];\n\n",
		dataset.SeriesColor(dataset.MetricStunting), view.FormatPercent(national)))

	factors := dataset.Factors()
	ids := make(map[string]string, len(factors))
	for i, f := range factors {
		ids[f.Factor] = fmt.Sprintf("factor_%d", i)
	}

	for _, group := range view.FactorGroups() {
		sb.WriteString(fmt.Sprintf("  subgraph cluster_%s {\n", strings.ToLower(string(group.Category))))
		sb.WriteString(fmt.Sprintf("    label=\"%s\";\n", escapeDOT(group.Title)))
		sb.WriteString("    style=\"rounded\";\n")
		sb.WriteString(fmt.Sprintf("    color=\"%s\";\n", group.Color))
		sb.WriteString(fmt.Sprintf("    fontcolor=\"%s\";\n", group.Color))
		sb.WriteString("    fontsize=14;\n")
		sb.WriteString("    fontname=\"Helvetica-Bold\";\n")
		sb.WriteString("    margin=14;\n\n")

		for i, f := range factors {
			if f.Category != group.Category {
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s [shape=box, style=\"rounded,filled\", fillcolor=\"%s\", fontcolor=\"white\", label=\"%s\\n%s\"];\n",
				ids[f.Factor], dataset.ImpactColor(i), escapeDOT(f.Factor), impactLabel(f.Impact)))
		}

		sb.WriteString("  }\n\n")
	}

	sb.WriteString("  // Impact\n")
	for _, f := range factors {
		sb.WriteString(fmt.Sprintf("  %s -> outcome [penwidth=%.1f, label=\"%s\"];\n",
			ids[f.Factor], f.Impact/20, impactLabel(f.Impact)))
	}

	sb.WriteString("}\n")

	return sb.String()
}

func nationalValue(m dataset.Metric) float64 {
	for _, n := range dataset.National() {
		if n.Category == m.Title() {
			return n.Value
		}
	}
	return 0
}

func impactLabel(v float64) string {
	return strings.TrimSuffix(view.FormatPercent(v), "%")
}

func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func writeFileBytes(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

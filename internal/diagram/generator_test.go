package diagram

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/junkd0g/kuposhan/internal/dataset"
)

func TestGenerateDOT(t *testing.T) {
	dot := GenerateDOT()

	for _, want := range []string{
		"digraph Factors {",
		"subgraph cluster_dietary",
		"subgraph cluster_environmental",
		"subgraph cluster_health",
		"subgraph cluster_socioeconomic",
		`label="Stunting\n35.5%"`,
		`label="Poor Nutrition\n85"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q", want)
		}
	}

	if got := strings.Count(dot, "-> outcome"); got != len(dataset.Factors()) {
		t.Errorf("expected %d impact edges, got %d", len(dataset.Factors()), got)
	}
}

func TestRenderFactorMapSVG(t *testing.T) {
	svg, err := RenderFactorMap(context.Background(), FormatSVG)
	if err != nil {
		t.Fatalf("Failed to render factor map: %v", err)
	}

	if !bytes.Contains(svg, []byte("<svg")) {
		t.Fatal("output is not SVG")
	}
	if !bytes.Contains(svg, []byte("Maternal Malnutrition")) {
		t.Error("factor label missing from SVG")
	}
}

func TestGenerateWritesFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "maps", "factors.svg")

	if err := Generate(context.Background(), outputPath); err != nil {
		t.Fatalf("Failed to generate factor map: %v", err)
	}

	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		t.Fatal("factor map file was not created")
	}
}

func TestFormatFromPath(t *testing.T) {
	if FormatFromPath("a/b.SVG") != FormatSVG {
		t.Error("expected svg for .SVG")
	}
	if FormatFromPath("a/b.png") != FormatPNG {
		t.Error("expected png for .png")
	}
	if FormatFromPath("noext") != FormatPNG {
		t.Error("expected png default")
	}
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderDonutPNG(t *testing.T) {
	for _, m := range dataset.Metrics() {
		var buf bytes.Buffer
		if err := RenderDonutPNG(&buf, m); err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Errorf("%s: output is not PNG", m)
		}
	}
}

func TestRenderStatesPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderStatesPNG(&buf, dataset.MetricStunting); err != nil {
		t.Fatalf("Failed to render state chart: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not PNG")
	}
}

func TestRenderAgeTrendPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderAgeTrendPNG(&buf); err != nil {
		t.Fatalf("Failed to render age trend: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not PNG")
	}
}

// Package tools exposes the dashboard to MCP clients.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/junkd0g/kuposhan/internal/config"
	"github.com/junkd0g/kuposhan/internal/dataset"
	"github.com/junkd0g/kuposhan/internal/diagram"
	"github.com/junkd0g/kuposhan/internal/view"
)

// Register registers all tools with the MCP server.
func Register(s *server.MCPServer) {
	registerRenderDashboardTool(s)
	registerAgeBreakdownTool(s)
	registerFactorMapTool(s)
	registerDatasetSummaryTool(s)
}

func registerRenderDashboardTool(s *server.MCPServer) {
	tool := mcp.NewTool("render_dashboard",
		mcp.WithDescription("Renders the India child malnutrition dashboard as a self-contained HTML page. The page switches the age-group panel between stunting, wasting and underweight without a server."),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("The path of the HTML file to write"),
		),
		mcp.WithString("metric",
			mcp.Description("Initially selected indicator: stunting, wasting or underweight. Defaults to stunting"),
		),
		mcp.WithString("theme",
			mcp.Description("light or dark. Defaults to light"),
		),
		mcp.WithString("widgets",
			mcp.Description("Comma-separated widgets to include, in order. Defaults to every widget except factor_map"),
		),
	)

	s.AddTool(tool, renderDashboardHandler)
}

func renderDashboardHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outputPath, ok := request.Params.Arguments["output_path"].(string)
	if !ok || outputPath == "" {
		return newToolResultError("output_path is required"), nil
	}

	state, err := stateArg(request)
	if err != nil {
		return newToolResultError(err.Error()), nil
	}

	cfg := config.Default()
	if theme, ok := request.Params.Arguments["theme"].(string); ok && theme != "" {
		cfg.Theme = theme
	}
	if widgets, ok := request.Params.Arguments["widgets"].(string); ok && widgets != "" {
		cfg.Widgets = splitList(widgets)
	}
	if err := config.Validate(cfg); err != nil {
		return newToolResultError(err.Error()), nil
	}

	if err := diagram.GenerateHTML(ctx, state, outputPath, cfg.HTML()); err != nil {
		return newToolResultError(fmt.Sprintf("failed to render dashboard: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Dashboard rendered successfully!\n\nOutput: %s\nIndicator: %s\n", outputPath, state.Metric().Title())), nil
}

func registerAgeBreakdownTool(s *server.MCPServer) {
	tool := mcp.NewTool("age_breakdown",
		mcp.WithDescription("Returns the age-group breakdown of one malnutrition indicator for children under five, in age order, with the key insight sentence."),
		mcp.WithString("metric",
			mcp.Required(),
			mcp.Description("stunting, wasting or underweight"),
		),
	)

	s.AddTool(tool, ageBreakdownHandler)
}

func ageBreakdownHandler(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.Params.Arguments["metric"].(string)
	if !ok || raw == "" {
		return newToolResultError("metric is required"), nil
	}
	m, err := dataset.ParseMetric(raw)
	if err != nil {
		return newToolResultError(err.Error()), nil
	}

	b := view.AgeBreakdown(m)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s by Age Group\n\n", m.Title()))
	for _, s := range b.Slices {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", s.Age, view.FormatPercent(s.Value)))
	}
	sb.WriteString("\nKey Insight: ")
	sb.WriteString(view.InsightFor(m).Text())
	sb.WriteString("\n")

	return mcp.NewToolResultText(sb.String()), nil
}

func registerFactorMapTool(s *server.MCPServer) {
	tool := mcp.NewTool("factor_map",
		mcp.WithDescription("Draws the factors contributing to stunting as a graph grouped by category, with edges weighted by impact. Supports PNG and SVG output formats."),
		mcp.WithString("output_path",
			mcp.Description("The output path for the image. Supports .png and .svg extensions. When omitted the SVG is returned inline"),
		),
	)

	s.AddTool(tool, factorMapHandler)
}

func factorMapHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if op, ok := request.Params.Arguments["output_path"].(string); ok && op != "" {
		if err := diagram.Generate(ctx, op); err != nil {
			return newToolResultError(fmt.Sprintf("failed to generate factor map: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Factor map generated successfully!\n\nOutput: %s\nFactors: %d\n", op, len(dataset.Factors()))), nil
	}

	svg, err := diagram.RenderFactorMap(ctx, diagram.FormatSVG)
	if err != nil {
		return newToolResultError(fmt.Sprintf("failed to generate factor map: %v", err)), nil
	}
	return mcp.NewToolResultText(string(svg)), nil
}

func registerDatasetSummaryTool(s *server.MCPServer) {
	tool := mcp.NewTool("dataset_summary",
		mcp.WithDescription("Returns every figure behind the dashboard as JSON: state-wise and national indicators, age groups, stunting factors and radar scores (NFHS-5, children under five)."),
	)

	s.AddTool(tool, datasetSummaryHandler)
}

func datasetSummaryHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(dataset.Load(), "", "  ")
	if err != nil {
		return newToolResultError(fmt.Sprintf("failed to encode dataset: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func stateArg(request mcp.CallToolRequest) (view.State, error) {
	state := view.Initial()
	raw, ok := request.Params.Arguments["metric"].(string)
	if !ok || raw == "" {
		return state, nil
	}
	ev, err := view.ParseEvent(view.EventSelectMetric, raw)
	if err != nil {
		return state, err
	}
	return view.Reduce(state, ev)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func newToolResultError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: message,
			},
		},
		IsError: true,
	}
}

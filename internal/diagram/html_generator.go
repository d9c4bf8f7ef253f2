package diagram

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/junkd0g/kuposhan/internal/chart"
	"github.com/junkd0g/kuposhan/internal/dataset"
	"github.com/junkd0g/kuposhan/internal/view"
)

// WidgetType defines available dashboard sections.
type WidgetType string

const (
	WidgetSummaryCards     WidgetType = "summary_cards"
	WidgetAgeBreakdown     WidgetType = "age_breakdown"
	WidgetStateComparison  WidgetType = "state_comparison"
	WidgetAgeTrend         WidgetType = "age_trend"
	WidgetFactorImpact     WidgetType = "factor_impact"
	WidgetFactorRadar      WidgetType = "factor_radar"
	WidgetFactorCategories WidgetType = "factor_categories"
	WidgetFactorMap        WidgetType = "factor_map"
	WidgetKeyInsights      WidgetType = "key_insights"
)

// AllWidgets lists every widget in page order.
func AllWidgets() []WidgetType {
	return []WidgetType{
		WidgetSummaryCards,
		WidgetAgeBreakdown,
		WidgetStateComparison,
		WidgetAgeTrend,
		WidgetFactorImpact,
		WidgetFactorRadar,
		WidgetFactorCategories,
		WidgetFactorMap,
		WidgetKeyInsights,
	}
}

// IsWidget reports whether name is a known widget.
func IsWidget(name string) bool {
	for _, w := range AllWidgets() {
		if string(w) == name {
			return true
		}
	}
	return false
}

// Element ids of the chart containers.
const (
	chartAgeDonut        = "age-donut"
	chartStateComparison = "state-comparison"
	chartAgeTrend        = "age-trend"
	chartFactorImpact    = "factor-impact"
	chartFactorRadar     = "factor-radar"
)

const echartsCDN = "https://cdn.jsdelivr.net/npm/echarts@5.5.0/dist/echarts.min.js"

// HTMLConfig configures what to include in the HTML dashboard.
type HTMLConfig struct {
	Title       string
	Description string
	Widgets     []WidgetType
	Theme       string // "light" or "dark"

	// ReduceURL is the endpoint the indicator selector posts events to.
	// When empty the page switches between panels embedded at render time.
	ReduceURL string
}

// DefaultConfig returns every widget except the factor map.
func DefaultConfig() HTMLConfig {
	return HTMLConfig{
		Title:       "India Malnutrition Dashboard",
		Description: "Comprehensive Analysis of Child Malnutrition Indicators",
		Theme:       "light",
		Widgets: []WidgetType{
			WidgetSummaryCards,
			WidgetAgeBreakdown,
			WidgetStateComparison,
			WidgetAgeTrend,
			WidgetFactorImpact,
			WidgetFactorRadar,
			WidgetFactorCategories,
			WidgetKeyInsights,
		},
	}
}

// HTMLBuilder builds the dashboard page for one view state.
type HTMLBuilder struct {
	state  view.State
	config HTMLConfig
	tree   view.Tree
	data   *ReportData
	widget map[WidgetType]bool

	factorMap []byte
}

// ReportData is embedded in the page as JSON for the chart scripts.
type ReportData struct {
	State     view.State                       `json:"state"`
	Options   map[string]chart.Option          `json:"options"`
	Panels    map[dataset.Metric]view.AgePanel `json:"panels,omitempty"`
	ReduceURL string                           `json:"reduceURL,omitempty"`
}

// GenerateHTML renders the dashboard for state and writes it to outputPath.
func GenerateHTML(ctx context.Context, state view.State, outputPath string, config HTMLConfig) error {
	var sb strings.Builder
	if err := RenderHTML(ctx, &sb, state, config); err != nil {
		return err
	}

	if err := writeFileBytes(outputPath, []byte(sb.String())); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	return nil
}

// RenderHTML renders the dashboard for state to w.
func RenderHTML(ctx context.Context, w io.Writer, state view.State, config HTMLConfig) error {
	builder := newHTMLBuilder(state, config)

	if builder.widget[WidgetFactorMap] {
		svg, err := RenderFactorMap(ctx, FormatSVG)
		if err != nil {
			return fmt.Errorf("failed to render factor map: %w", err)
		}
		builder.factorMap = svg
	}

	page, err := builder.render()
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, page); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	return nil
}

func newHTMLBuilder(state view.State, config HTMLConfig) *HTMLBuilder {
	if len(config.Widgets) == 0 {
		config.Widgets = DefaultConfig().Widgets
	}
	b := &HTMLBuilder{
		state:  state,
		config: config,
		tree:   view.Render(state),
		widget: make(map[WidgetType]bool, len(config.Widgets)),
	}
	for _, w := range config.Widgets {
		b.widget[w] = true
	}
	b.data = b.buildReportData()
	return b
}

func (b *HTMLBuilder) buildReportData() *ReportData {
	data := &ReportData{
		State:     b.state,
		Options:   make(map[string]chart.Option),
		ReduceURL: b.config.ReduceURL,
	}

	if b.widget[WidgetAgeBreakdown] {
		data.Options[chartAgeDonut] = b.tree.AgePanel.Donut
		if b.config.ReduceURL == "" {
			data.Panels = b.buildPanels()
		}
	}
	if b.widget[WidgetStateComparison] {
		data.Options[chartStateComparison] = b.tree.StateComparison.Chart
	}
	if b.widget[WidgetAgeTrend] {
		data.Options[chartAgeTrend] = b.tree.AgeTrend.Chart
	}
	if b.widget[WidgetFactorImpact] {
		data.Options[chartFactorImpact] = b.tree.Factors.Impact.Chart
	}
	if b.widget[WidgetFactorRadar] {
		data.Options[chartFactorRadar] = b.tree.Factors.Radar.Chart
	}

	return data
}

// buildPanels pre-renders the age panel for every metric by running the
// selector event through the reducer, so a standalone page behaves the same
// as one backed by the server.
func (b *HTMLBuilder) buildPanels() map[dataset.Metric]view.AgePanel {
	panels := make(map[dataset.Metric]view.AgePanel, 3)
	for _, m := range dataset.Metrics() {
		next, err := view.Reduce(b.state, view.MetricSelected{Metric: m})
		if err != nil {
			continue
		}
		panels[m] = view.RenderAgePanel(next)
	}
	return panels
}

func (b *HTMLBuilder) render() (string, error) {
	var sb strings.Builder

	sb.WriteString(b.renderHead())
	sb.WriteString(`<body><div class="container">`)
	sb.WriteString(b.renderHeader())

	for _, widget := range b.config.Widgets {
		sb.WriteString(b.renderWidget(widget))
	}

	sb.WriteString(b.renderFooter())
	sb.WriteString(`</div>`)

	scripts, err := b.renderScripts()
	if err != nil {
		return "", err
	}
	sb.WriteString(scripts)

	sb.WriteString(`</body></html>`)

	return sb.String(), nil
}

func (b *HTMLBuilder) renderHead() string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <script src="%s"></script>
    <style>%s%s</style>
</head>`, html.EscapeString(b.title()), echartsCDN, b.getThemeCSS(), layoutCSS)
}

func (b *HTMLBuilder) getThemeCSS() string {
	if b.config.Theme == "dark" {
		return darkThemeCSS
	}
	return lightThemeCSS
}

func (b *HTMLBuilder) title() string {
	if b.config.Title != "" {
		return b.config.Title
	}
	return b.tree.Header.Title
}

func (b *HTMLBuilder) description() string {
	if b.config.Description != "" {
		return b.config.Description
	}
	return b.tree.Header.Subtitle
}

func (b *HTMLBuilder) renderHeader() string {
	h := b.tree.Header
	badges := make([]string, 0, len(h.Badges))
	icons := []string{"📊", "📍", "📅"}
	for i, badge := range h.Badges {
		badges = append(badges, fmt.Sprintf(`<span class="badge">%s %s</span>`, icons[i%len(icons)], html.EscapeString(badge)))
	}

	return fmt.Sprintf(`
<header class="hero">
    <div class="hero-main">
        <div class="hero-title">
            <span class="hero-icon">%s</span>
            <h1>%s</h1>
        </div>
        <p>%s</p>
        <div class="hero-badges">%s</div>
    </div>
    <div class="hero-year">
        <div class="caption">Survey Year</div>
        <div class="year">%d</div>
        <div class="caption">%s</div>
    </div>
</header>`,
		iconActivity,
		html.EscapeString(b.title()),
		html.EscapeString(b.description()),
		strings.Join(badges, `<span class="dot">•</span>`),
		h.Year,
		html.EscapeString(h.Edition))
}

func (b *HTMLBuilder) renderFooter() string {
	return fmt.Sprintf(`<footer><p>%s</p><p class="small">%s</p></footer>`,
		html.EscapeString(b.tree.Footer.Source),
		html.EscapeString(b.tree.Footer.Note))
}

func (b *HTMLBuilder) renderWidget(widget WidgetType) string {
	switch widget {
	case WidgetSummaryCards:
		return b.renderSummaryCards()
	case WidgetAgeBreakdown:
		return b.renderAgeBreakdown()
	case WidgetStateComparison:
		return b.renderChartBox(b.tree.StateComparison.Title, chartStateComparison, "half")
	case WidgetAgeTrend:
		return b.renderChartBox(b.tree.AgeTrend.Title, chartAgeTrend, "half")
	case WidgetFactorImpact:
		return b.renderChartBox(b.tree.Factors.Impact.Title, chartFactorImpact, "half")
	case WidgetFactorRadar:
		return b.renderChartBox(b.tree.Factors.Radar.Title, chartFactorRadar, "half")
	case WidgetFactorCategories:
		return b.renderFactorCategories()
	case WidgetFactorMap:
		return b.renderFactorMap()
	case WidgetKeyInsights:
		return b.renderKeyInsights()
	default:
		return ""
	}
}

func (b *HTMLBuilder) renderSummaryCards() string {
	var cards strings.Builder
	for _, c := range b.tree.Cards {
		cards.WriteString(fmt.Sprintf(`
    <div class="stat-card" style="border-left-color:%s">
        <div>
            <div class="label">%s</div>
            <div class="number" style="color:%s">%s</div>
            <div class="caption">%s</div>
        </div>
        <span class="card-icon" style="color:%s">%s</span>
    </div>`,
			c.Color, html.EscapeString(c.Label), c.Color, c.Display,
			html.EscapeString(c.Caption), c.Color, iconAlertCircle))
	}
	return fmt.Sprintf(`
<div class="widget stats-grid">%s
</div>`, cards.String())
}

func (b *HTMLBuilder) renderAgeBreakdown() string {
	p := b.tree.AgePanel

	var options strings.Builder
	for _, o := range p.Options {
		selected := ""
		if o.Selected {
			selected = " selected"
		}
		options.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`, o.Value, selected, html.EscapeString(o.Label)))
	}

	var rows strings.Builder
	for _, s := range p.Breakdown.Slices {
		rows.WriteString(fmt.Sprintf(`
                <div class="age-row">
                    <span class="age-name"><span class="swatch" style="background:%s"></span>%s</span>
                    <span class="age-value" style="color:%s">%s</span>
                </div>`,
			s.Color, html.EscapeString(s.Age), s.Color, view.FormatPercent(s.Value)))
	}

	return fmt.Sprintf(`
<div class="widget chart-box">
    <div class="panel-head">
        <h3>%s</h3>
        <label class="selector">%s
            <select id="metric-select">%s</select>
        </label>
    </div>
    <div class="age-grid">
        <div id="%s" class="chart-large"></div>
        <div>
            <div id="age-panel" class="age-panel" style="background:linear-gradient(90deg,%s,%s)">
                <h4 id="age-list-title">%s</h4>
                <div id="age-list">%s
                </div>
            </div>
            <div id="age-insight" class="insight" style="border-left-color:%s;background:linear-gradient(90deg,%s,%s)">
                <p class="insight-label" style="color:%s">📊 Key Insight:</p>
                <p>%s<strong style="color:%s">%s</strong>%s</p>
            </div>
        </div>
    </div>
</div>`,
		html.EscapeString(p.Title),
		html.EscapeString(p.SelectLabel),
		options.String(),
		chartAgeDonut,
		p.Accent.PanelFrom, p.Accent.PanelTo,
		html.EscapeString(p.ListTitle),
		rows.String(),
		p.Accent.Border, p.Accent.InsightFrom, p.Accent.InsightTo,
		p.Accent.Label,
		html.EscapeString(p.Insight.Prefix),
		p.Accent.Emphasis,
		html.EscapeString(p.Insight.AgeGroup),
		html.EscapeString(p.Insight.Suffix))
}

func (b *HTMLBuilder) renderChartBox(title, id, width string) string {
	return fmt.Sprintf(`
<div class="widget chart-box %s">
    <h3>%s</h3>
    <div id="%s" class="chart"></div>
</div>`, width, html.EscapeString(title), id)
}

func (b *HTMLBuilder) renderFactorCategories() string {
	var groups strings.Builder
	for _, g := range b.tree.Factors.Groups {
		var items strings.Builder
		for _, f := range g.Factors {
			items.WriteString(fmt.Sprintf(`<li><span class="bullet" style="background:%s"></span>%s</li>`, g.Color, html.EscapeString(f)))
		}
		groups.WriteString(fmt.Sprintf(`
        <div class="category" style="border-left-color:%s">
            <h4 style="color:%s">%s</h4>
            <ul>%s</ul>
        </div>`, g.Color, g.Color, html.EscapeString(g.Title), items.String()))
	}

	return fmt.Sprintf(`
<div class="widget chart-box">
    <h3><span class="inline-icon">%s</span>%s</h3>
    <div class="category-grid">%s
    </div>
</div>`, iconTrendingDown, html.EscapeString(b.tree.Factors.Title), groups.String())
}

func (b *HTMLBuilder) renderFactorMap() string {
	if len(b.factorMap) == 0 {
		return ""
	}
	return fmt.Sprintf(`
<div class="widget chart-box">
    <h3>Factor Map</h3>
    <div class="factor-map">%s</div>
</div>`, stripXMLProlog(string(b.factorMap)))
}

func (b *HTMLBuilder) renderKeyInsights() string {
	var items strings.Builder
	for _, h := range b.tree.Highlights {
		items.WriteString(fmt.Sprintf(`
        <div>
            <h4>%s %s</h4>
            <p>%s</p>
        </div>`, h.Icon, html.EscapeString(h.Title), html.EscapeString(h.Text)))
	}
	return fmt.Sprintf(`
<div class="widget insights">
    <h3>Key Insights</h3>
    <div class="insights-grid">%s
    </div>
</div>`, items.String())
}

func (b *HTMLBuilder) renderScripts() (string, error) {
	dataJSON, err := json.Marshal(b.data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chart data: %w", err)
	}

	var chartInits strings.Builder
	chartInits.WriteString(initChartsScript)
	if b.widget[WidgetAgeBreakdown] {
		chartInits.WriteString(metricSelectorScript)
	}

	return fmt.Sprintf(`
<script>
const data = %s;
const charts = {};

%s

window.addEventListener('resize', () => Object.values(charts).forEach(c => c.resize()));
</script>`, string(dataJSON), chartInits.String()), nil
}

// stripXMLProlog drops the XML declaration and DOCTYPE graphviz emits so the
// SVG can be inlined into HTML.
func stripXMLProlog(svg string) string {
	if i := strings.Index(svg, "<svg"); i > 0 {
		return svg[i:]
	}
	return svg
}

const initChartsScript = `
Object.keys(data.options).forEach(id => {
    const el = document.getElementById(id);
    if (!el) return;
    const chart = echarts.init(el);
    chart.setOption(data.options[id]);
    charts[id] = chart;
});
`

const metricSelectorScript = `
(function() {
    const select = document.getElementById('metric-select');
    if (!select) return;
    let state = data.state;

    function apply(panel) {
        if (charts['age-donut']) charts['age-donut'].setOption(panel.donut, true);
        document.getElementById('age-list-title').textContent = panel.listTitle;
        document.getElementById('age-panel').style.background =
            'linear-gradient(90deg,' + panel.accent.panelFrom + ',' + panel.accent.panelTo + ')';

        const list = document.getElementById('age-list');
        list.innerHTML = '';
        panel.breakdown.slices.forEach(s => {
            const row = document.createElement('div');
            row.className = 'age-row';
            const name = document.createElement('span');
            name.className = 'age-name';
            const swatch = document.createElement('span');
            swatch.className = 'swatch';
            swatch.style.background = s.color;
            name.appendChild(swatch);
            name.appendChild(document.createTextNode(s.age));
            const value = document.createElement('span');
            value.className = 'age-value';
            value.style.color = s.color;
            value.textContent = s.value + '%';
            row.appendChild(name);
            row.appendChild(value);
            list.appendChild(row);
        });

        const insight = document.getElementById('age-insight');
        insight.style.borderLeftColor = panel.accent.border;
        insight.style.background =
            'linear-gradient(90deg,' + panel.accent.insightFrom + ',' + panel.accent.insightTo + ')';
        const label = insight.querySelector('.insight-label');
        label.style.color = panel.accent.label;
        const text = label.nextElementSibling;
        text.textContent = '';
        text.appendChild(document.createTextNode(panel.insight.prefix));
        const strong = document.createElement('strong');
        strong.style.color = panel.accent.emphasis;
        strong.textContent = panel.insight.ageGroup;
        text.appendChild(strong);
        text.appendChild(document.createTextNode(panel.insight.suffix));
    }

    select.addEventListener('change', e => {
        const event = { type: 'select_metric', value: e.target.value };
        if (data.reduceURL) {
            fetch(data.reduceURL, {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ state: state, event: event })
            })
                .then(r => r.ok ? r.json() : Promise.reject(new Error('status ' + r.status)))
                .then(res => { state = res.state; apply(res.panel); })
                .catch(err => console.error('indicator change failed:', err));
            return;
        }
        const panel = data.panels && data.panels[event.value];
        if (!panel) return;
        state = Object.assign({}, state, { selectedMetric: event.value });
        apply(panel);
    });
})();
`

// Line glyphs: activity, alert circle, trending down.
const (
	iconActivity     = `<svg viewBox="0 0 24 24" width="40" height="40" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><polyline points="22 12 18 12 15 21 9 3 6 12 2 12"/></svg>`
	iconAlertCircle  = `<svg viewBox="0 0 24 24" width="48" height="48" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><circle cx="12" cy="12" r="10"/><line x1="12" y1="8" x2="12" y2="12"/><line x1="12" y1="16" x2="12.01" y2="16"/></svg>`
	iconTrendingDown = `<svg viewBox="0 0 24 24" width="32" height="32" fill="none" stroke="#ef4444" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><polyline points="23 18 13.5 8.5 8.5 13.5 1 6"/><polyline points="17 18 23 18 23 12"/></svg>`
)

// Layout shared by both themes.
const layoutCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; min-height: 100vh; }
.container { max-width: 1280px; margin: 0 auto; padding: 32px 20px; }
.hero { display: flex; justify-content: space-between; align-items: center; gap: 20px; border-radius: 16px; padding: 32px; margin-bottom: 30px; color: #fff; background: linear-gradient(90deg, #4f46e5, #9333ea, #ec4899); box-shadow: 0 20px 40px rgba(79,70,229,0.25); }
.hero-title { display: flex; align-items: center; gap: 12px; margin-bottom: 10px; }
.hero-icon { display: inline-flex; padding: 8px; border-radius: 10px; background: rgba(255,255,255,0.2); }
.hero h1 { font-size: 2.6rem; font-weight: 800; letter-spacing: -0.02em; }
.hero p { font-size: 1.1rem; font-weight: 500; margin-left: 64px; }
.hero-badges { display: flex; flex-wrap: wrap; gap: 10px; margin: 8px 0 0 64px; font-size: 0.85rem; opacity: 0.9; }
.hero-year { text-align: center; padding: 20px 24px; border-radius: 12px; background: rgba(255,255,255,0.2); border: 1px solid rgba(255,255,255,0.3); }
.hero-year .caption { font-size: 0.75rem; text-transform: uppercase; letter-spacing: 0.08em; opacity: 0.9; }
.hero-year .year { font-size: 2.4rem; font-weight: 700; }
.widget { margin-bottom: 25px; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 24px; }
.stat-card { display: flex; justify-content: space-between; align-items: center; border-radius: 12px; padding: 24px; border-left: 4px solid; transition: box-shadow 0.3s; }
.stat-card .number { font-size: 2.4rem; font-weight: bold; }
.stat-card .label { font-size: 0.9rem; font-weight: 500; margin-bottom: 4px; }
.stat-card .caption { font-size: 0.75rem; margin-top: 8px; }
.card-icon { opacity: 0.2; }
.chart-box { border-radius: 12px; padding: 24px; }
.chart-box.half { display: inline-block; width: calc(50% - 12px); vertical-align: top; }
.chart-box.half:nth-of-type(odd) { margin-right: 20px; }
@media (max-width: 900px) { .chart-box.half { width: 100%; margin-right: 0; } .age-grid { grid-template-columns: 1fr; } }
.chart-box h3 { margin-bottom: 15px; font-size: 1.4rem; display: flex; align-items: center; gap: 10px; }
.chart { width: 100%; height: 350px; }
.chart-large { width: 100%; height: 400px; }
.panel-head { display: flex; justify-content: space-between; align-items: center; flex-wrap: wrap; gap: 12px; margin-bottom: 20px; }
.selector { font-size: 0.9rem; font-weight: 600; display: flex; align-items: center; gap: 10px; }
.selector select { padding: 8px 16px; border: 2px solid #a5b4fc; border-radius: 8px; font-weight: 600; cursor: pointer; }
.age-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 32px; align-items: center; }
.age-panel { border-radius: 10px; padding: 24px; margin-bottom: 16px; }
.age-panel h4 { font-size: 1.1rem; margin-bottom: 14px; color: #1f2937; }
.age-row { display: flex; justify-content: space-between; align-items: center; padding: 12px; margin-bottom: 10px; border-radius: 8px; background: #fff; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
.age-name { display: flex; align-items: center; gap: 12px; font-weight: 600; color: #374151; }
.swatch { width: 16px; height: 16px; border-radius: 50%; flex-shrink: 0; }
.age-value { font-size: 1.5rem; font-weight: 700; }
.insight { border-radius: 10px; padding: 16px; border-left: 4px solid; font-size: 0.9rem; color: #374151; }
.insight-label { font-weight: 700; margin-bottom: 6px; }
.category-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 16px; margin-top: 10px; }
.category { border-radius: 10px; padding: 16px; border-left: 4px solid; }
.category h4 { margin-bottom: 10px; }
.category ul { list-style: none; font-size: 0.9rem; }
.category li { display: flex; align-items: center; margin-bottom: 8px; }
.bullet { width: 8px; height: 8px; border-radius: 50%; margin-right: 8px; flex-shrink: 0; }
.factor-map { overflow-x: auto; text-align: center; }
.factor-map svg { max-width: 100%; height: auto; }
.insights { border-radius: 12px; padding: 32px; color: #fff; background: linear-gradient(90deg, #4f46e5, #9333ea); }
.insights h3 { font-size: 1.5rem; margin-bottom: 16px; }
.insights-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(320px, 1fr)); gap: 24px; }
.insights h4 { font-size: 1.1rem; margin-bottom: 6px; }
.insights p { color: #e0e7ff; }
footer { text-align: center; padding: 30px 0; margin-top: 30px; }
footer .small { font-size: 0.75rem; margin-top: 8px; }
`

const lightThemeCSS = `
body { background: linear-gradient(135deg, #eff6ff 0%, #e0e7ff 100%); color: #1f2937; }
.stat-card, .chart-box, .category { background: #fff; box-shadow: 0 4px 12px rgba(0,0,0,0.08); }
.stat-card:hover, .category:hover { box-shadow: 0 12px 24px rgba(0,0,0,0.15); }
.stat-card .label { color: #4b5563; }
.stat-card .caption { color: #6b7280; }
.chart-box h3 { color: #1f2937; }
.selector { color: #4b5563; }
.selector select { background: #fff; color: #374151; }
footer { color: #4b5563; }
`

const darkThemeCSS = `
body { background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%); color: #e4e4e4; }
.stat-card, .chart-box, .category { background: rgba(255,255,255,0.05); border: 1px solid rgba(255,255,255,0.1); }
.stat-card:hover { transform: translateY(-5px); }
.stat-card .label, .stat-card .caption { color: #888; }
.chart-box h3 { color: #fff; }
.category li { color: #ccc; }
.selector { color: #aaa; }
.selector select { background: #16213e; color: #e4e4e4; }
footer { color: #666; border-top: 1px solid #333; }
`

package report

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Activity Report</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --muted: #6c757d; --accent: #26a641;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #0d1117; --fg: #e9ecef; --card-bg: #161b22; --border: #30363d;
    --muted: #8b949e; --accent: #39d353;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1.5rem; max-width: 1100px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(130px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.heatmap { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; overflow-x: auto; }
.heatmap svg text { font-size: 9px; fill: var(--muted); }
.legend { display: flex; align-items: center; gap: .25rem; margin-top: .5rem; font-size: .75rem; color: var(--muted); }
.legend span.swatch { width: 11px; height: 11px; border-radius: 2px; display: inline-block; }
</style>
</head>
<body>
<header>
  <h1>Activity Report</h1>
  <p>{{.RangeLabel}} &middot; generated {{.GeneratedAt}}</p>
</header>
<div class="cards">
  <div class="card"><div class="value">{{.TotalTime}}</div><div class="label">Total time</div></div>
  <div class="card"><div class="value">{{.ActiveDays}}</div><div class="label">Active days</div></div>
  <div class="card"><div class="value">{{.LongestStreak}}</div><div class="label">Longest streak</div></div>
  <div class="card"><div class="value">{{.CurrentStreak}}</div><div class="label">Current streak</div></div>
  <div class="card"><div class="value">{{.DaysTracked}}</div><div class="label">Days tracked</div></div>
  {{if .TopProject}}<div class="card"><div class="value">{{.TopProject}}</div><div class="label">Top project · {{.TopProjectMin}}</div></div>{{end}}
</div>
<div class="heatmap">
  <svg width="{{.Width}}" height="{{.Height}}" role="img" aria-label="Daily activity heatmap">
    {{range .MonthLabels}}<text x="{{.X}}" y="{{.Y}}">{{.Text}}</text>
    {{end}}{{range .DayLabels}}<text x="{{.X}}" y="{{.Y}}" text-anchor="end">{{.Text}}</text>
    {{end}}{{range .Cells}}<rect x="{{.X}}" y="{{.Y}}" width="11" height="11" rx="2" fill="{{.Fill}}"><title>{{.Title}}</title></rect>
    {{end}}
  </svg>
  <div class="legend">
    Less
    {{range .Legend}}<span class="swatch" style="background: {{.}}"></span>{{end}}
    More
  </div>
</div>
</body>
</html>
`

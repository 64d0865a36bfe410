package ui

import (
	"dirdiff/internal/data"
	"dirdiff/internal/data/diff_state"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

// WriteHtmlReport renders a DiffResult into a single self-contained HTML
// document at the given path, creating parent directories as needed.
func WriteHtmlReport(result *data.DiffResult, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	return htmlReportTemplate.Execute(file, newHtmlReportData(result))
}

type htmlReportData struct {
	Result         *data.DiffResult
	Timestamp      string
	Added          []data.FileDiff
	Deleted        []data.FileDiff
	Modified       []data.FileDiff
	BinaryModified []data.FileDiff
}

func newHtmlReportData(result *data.DiffResult) htmlReportData {
	reportData := htmlReportData{
		Result:    result,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}
	for _, file := range result.Files {
		switch file.Status {
		case diff_state.Added:
			reportData.Added = append(reportData.Added, file)
		case diff_state.Deleted:
			reportData.Deleted = append(reportData.Deleted, file)
		case diff_state.Modified:
			reportData.Modified = append(reportData.Modified, file)
		case diff_state.BinaryModified:
			reportData.BinaryModified = append(reportData.BinaryModified, file)
		}
	}
	return reportData
}

var htmlReportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"bytes": func(size int64) string {
		return humanize.Bytes(uint64(size))
	},
	"lineClass": func(lineType data.DiffLineType) string {
		switch lineType {
		case data.DiffLineAdded:
			return "diff-add"
		case data.DiffLineRemoved:
			return "diff-del"
		}
		return "diff-ctx"
	},
	"linePrefix": func(lineType data.DiffLineType) string {
		switch lineType {
		case data.DiffLineAdded:
			return "+"
		case data.DiffLineRemoved:
			return "-"
		}
		return " "
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Diff Report – {{.Timestamp}}</title>
<style>
    :root { --bg: #0d1117; --fg: #c9d1d9; --border: #30363d; --green: #3fb950;
            --red: #f85149; --yellow: #d29922; --blue: #58a6ff; --magenta: #bc8cff;
            --surface: #161b22; --diff-add-bg: #12261e; --diff-del-bg: #2d1214; }
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: 'Segoe UI', system-ui, sans-serif; background: var(--bg);
           color: var(--fg); padding: 2rem; line-height: 1.6; }
    h1 { color: var(--blue); margin-bottom: 0.5rem; font-size: 1.5rem; }
    .meta { color: #8b949e; margin-bottom: 2rem; font-size: 0.9rem; }
    .summary { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr));
               gap: 1rem; margin-bottom: 2rem; }
    .stat-card { background: var(--surface); border: 1px solid var(--border);
                 border-radius: 8px; padding: 1rem; text-align: center; }
    .stat-card .number { font-size: 1.8rem; font-weight: 700; }
    .stat-card .label { font-size: 0.85rem; color: #8b949e; }
    .section-title { font-size: 1.1rem; font-weight: 600; margin: 1.5rem 0 0.5rem;
                     padding: 0.5rem 0; border-bottom: 1px solid var(--border); }
    .file-list { list-style: none; }
    .file-list li { padding: 0.3rem 0.5rem; font-family: monospace; font-size: 0.9rem; }
    .file-list li:hover { background: var(--surface); border-radius: 4px; }
    .file-diff { margin: 0.5rem 0; border: 1px solid var(--border); border-radius: 8px;
                 overflow: hidden; }
    .file-diff summary { cursor: pointer; padding: 0.6rem 1rem; background: var(--surface);
                         display: flex; align-items: center; gap: 0.8rem; font-family: monospace;
                         font-size: 0.9rem; }
    .file-diff summary:hover { background: #1c2129; }
    .status { font-weight: 700; width: 1.2rem; text-align: center; }
    .status.add { color: var(--green); }
    .status.del { color: var(--red); }
    .status.mod { color: var(--yellow); }
    .status.bin { color: var(--magenta); }
    .filepath { flex: 1; }
    .lang { color: #8b949e; font-size: 0.8rem; }
    .stats .add { color: var(--green); }
    .stats .del { color: var(--red); margin-left: 0.4rem; }
    .diff-content { font-family: 'Fira Code', 'Consolas', monospace; font-size: 0.82rem;
                    overflow-x: auto; max-height: 600px; overflow-y: auto; }
    .diff-hunk { padding: 2px 12px; color: var(--blue); background: #161b22; }
    .diff-add { padding: 2px 12px; background: var(--diff-add-bg); color: var(--green); white-space: pre-wrap; }
    .diff-del { padding: 2px 12px; background: var(--diff-del-bg); color: var(--red); white-space: pre-wrap; }
    .diff-ctx { padding: 2px 12px; color: #8b949e; white-space: pre-wrap; }
    .warnings { color: var(--yellow); font-family: monospace; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Directory Diff Report</h1>
<div class="meta">
    Original: <strong>{{.Result.OriginalRoot}}</strong><br>
    Modified: <strong>{{.Result.ModifiedRoot}}</strong><br>
    Created: {{.Timestamp}}
</div>

<div class="summary">
    <div class="stat-card"><div class="number" style="color:var(--green)">{{.Result.Added}}</div><div class="label">New Files</div></div>
    <div class="stat-card"><div class="number" style="color:var(--red)">{{.Result.Deleted}}</div><div class="label">Deleted</div></div>
    <div class="stat-card"><div class="number" style="color:var(--yellow)">{{.Result.Modified}}</div><div class="label">Modified</div></div>
    <div class="stat-card"><div class="number" style="color:var(--magenta)">{{.Result.BinaryModified}}</div><div class="label">Binary Modified</div></div>
    <div class="stat-card"><div class="number">+{{.Result.LinesAdded}}</div><div class="label">Lines Added</div></div>
    <div class="stat-card"><div class="number" style="color:var(--red)">-{{.Result.LinesRemoved}}</div><div class="label">Lines Removed</div></div>
    <div class="stat-card"><div class="number" style="color:#8b949e">{{.Result.Unchanged}}</div><div class="label">Unchanged</div></div>
</div>

{{if .Added}}
<div class="section-title" style="color:var(--green)">+ New Files ({{len .Added}})</div>
<ul class="file-list">
{{range .Added}}    <li><span class="status add">+</span> {{.RelativePath}} <span class="lang">({{bytes .ModifiedSize}})</span></li>
{{end}}</ul>
{{end}}

{{if .Deleted}}
<div class="section-title" style="color:var(--red)">- Deleted Files ({{len .Deleted}})</div>
<ul class="file-list">
{{range .Deleted}}    <li><span class="status del">-</span> {{.RelativePath}} <span class="lang">({{bytes .OriginalSize}})</span></li>
{{end}}</ul>
{{end}}

{{if .BinaryModified}}
<div class="section-title" style="color:var(--magenta)">~ Binary Modified ({{len .BinaryModified}})</div>
<ul class="file-list">
{{range .BinaryModified}}    <li><span class="status bin">~</span> {{.RelativePath}} <span class="lang">({{bytes .OriginalSize}} → {{bytes .ModifiedSize}})</span></li>
{{end}}</ul>
{{end}}

{{if .Modified}}
<div class="section-title" style="color:var(--yellow)">~ Modified Files ({{len .Modified}})</div>
{{range .Modified}}
<details class="file-diff">
    <summary>
        <span class="status mod">~</span>
        <span class="filepath">{{.RelativePath}}</span>
        <span class="lang">{{.Type}}</span>
        <span class="stats"><span class="add">+{{.LinesAdded}}</span> <span class="del">-{{.LinesRemoved}}</span></span>
    </summary>
    <div class="diff-content">
    {{range .Hunks}}<div class="diff-hunk">@@ -{{.OriginalStart}},{{.OriginalCount}} +{{.ModifiedStart}},{{.ModifiedCount}} @@</div>
    {{range .Lines}}<div class="{{lineClass .Type}}">{{linePrefix .Type}}{{.Content}}</div>
    {{end}}{{end}}</div>
</details>
{{end}}
{{end}}

{{if .Result.Warnings}}
<div class="section-title" style="color:var(--yellow)">Warnings ({{len .Result.Warnings}})</div>
<ul class="file-list warnings">
{{range .Result.Warnings}}    <li>! {{.}}</li>
{{end}}</ul>
{{end}}
</body>
</html>
`))

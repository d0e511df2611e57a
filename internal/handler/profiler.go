package handler

import (
	"encoding/csv"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"simpleprofiler/internal/profiler"
)

const timestampFormat = "2006-01-02 15:04:05"

var csvColumns = []string{"Timestamp", "RequestPath", "HTTPMethod", "StatusCode", "TotalTimeMs", "CPUTimeMs"}

var respCleared = map[string]string{"message": "profiler data cleared"}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Request Profiler Dashboard</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #374151; }
table { border-collapse: collapse; margin-top: 1rem; }
th, td { padding: 0.5rem 0.75rem; border: 1px solid #e5e7eb; text-align: left; }
th { background-color: #f9fafb; }
tr:nth-child(even) { background-color: #f3f4f6; }
a { margin-right: 0.5rem; }
.empty { color: #6b7280; }
</style>
</head>
<body>
<h1>Request Profiler Dashboard</h1>
{{if .Rows}}<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
{{else}}<p class="empty">No profiling data collected yet. Make requests with the profile query parameter set to true, or set PROFILER_ENABLED=true.</p>
{{end}}<p><a href="/profiler/clear">Clear data</a><a href="/profiler/metrics.csv">Export CSV</a></p>
</body>
</html>
`))

// Profiler serves the collected metrics: an HTML dashboard, a CSV download
// and a clear operation.
type Profiler struct {
	store MetricsStore
}

func NewProfiler(store MetricsStore) *Profiler {
	return &Profiler{store: store}
}

func (h *Profiler) Register(e *echo.Echo) {
	g := e.Group("/profiler")
	g.GET("/dashboard", h.Dashboard)
	g.GET("/metrics.csv", h.ExportCSV)
	g.GET("/clear", h.Clear)
}

func (h *Profiler) Dashboard(c echo.Context) error {
	data := struct {
		Columns []string
		Rows    [][]string
	}{
		Columns: csvColumns,
		Rows:    h.exportRows(),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return dashboardTmpl.Execute(c.Response(), data)
}

// ExportCSV streams the retained records as a CSV attachment, oldest first.
// An empty store yields a header-only file.
func (h *Profiler) ExportCSV(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename=profile_metrics.csv`)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write(csvColumns); err != nil {
		return err
	}
	for _, row := range h.exportRows() {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (h *Profiler) Clear(c echo.Context) error {
	h.store.Clear()
	return c.JSON(http.StatusOK, respCleared)
}

// exportRows formats the current snapshot in the CSV column order.
func (h *Profiler) exportRows() [][]string {
	records := h.store.Snapshot()
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = formatRow(r)
	}
	return rows
}

func formatRow(r profiler.Record) []string {
	return []string{
		r.Timestamp.Format(timestampFormat),
		r.Path,
		r.Method,
		strconv.Itoa(r.StatusCode),
		strconv.FormatFloat(r.TotalTimeMs, 'f', -1, 64),
		strconv.FormatFloat(r.CPUTimeMs, 'f', -1, 64),
	}
}

package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/minikeyz/french-tax-system/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"pct":    FormatPercentage,
	"method": methodLabel,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	result := report.primary()
	if result == nil {
		return nil, fmt.Errorf("html: report has no result")
	}

	var buf bytes.Buffer
	data := struct {
		*Report
		Run        *domain.SimulationResult
		Highlights Highlights
	}{report, result, AnalyzeReport(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

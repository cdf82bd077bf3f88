package cli

import (
	"encoding/json"
	"io"

	"api-log-analytics/internal/models"
)

type ReportPresenter interface {
	Present(w io.Writer, report *models.Report) error
}

type jsonReportPresenter struct {
	pretty bool
}

// NewJSONReportPresenter writes reports as a single JSON document, indented by two spaces when pretty.
func NewJSONReportPresenter(pretty bool) ReportPresenter {
	return &jsonReportPresenter{pretty: pretty}
}

func (p *jsonReportPresenter) Present(w io.Writer, report *models.Report) error {
	encoder := json.NewEncoder(w)
	if p.pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}

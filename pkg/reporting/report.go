/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: HTML report generation for the X431 converter. Renders batch run
summaries and optional per-column statistics into a standalone, styled HTML file
for quick review of a conversion session.
*/

package reporting

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/x431-converter/pkg/analysis"
	"github.com/kleascm/x431-converter/pkg/batch"
)

// ReportGenerator creates HTML reports for conversion sessions
type ReportGenerator struct {
	outputDir string
	logger    *logrus.Logger
	templates *template.Template
}

// ReportData contains all data for report generation
type ReportData struct {
	Title       string                  `json:"title"`
	GeneratedAt time.Time               `json:"generated_at"`
	Version     string                  `json:"version"`
	Summary     *batch.Summary          `json:"summary"`
	Stats       []*analysis.ColumnStats `json:"stats,omitempty"`
	StatsFile   string                  `json:"stats_file,omitempty"`
}

// NewReportGenerator creates a new report generator
func NewReportGenerator(outputDir string, logger *logrus.Logger) *ReportGenerator {
	return &ReportGenerator{
		outputDir: outputDir,
		logger:    logger,
		templates: template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// Generate renders the report and returns the written file path
func (g *ReportGenerator) Generate(data *ReportData) (string, error) {
	if data.Title == "" {
		data.Title = "X431 Conversion Report"
	}
	if data.GeneratedAt.IsZero() {
		data.GeneratedAt = time.Now()
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	timestamp := data.GeneratedAt.Format("2006-01-02_15-04-05")
	path := filepath.Join(g.outputDir, fmt.Sprintf("x431-report_%s.html", timestamp))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := g.templates.Execute(file, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	if g.logger != nil {
		g.logger.WithFields(logrus.Fields{
			"path": path,
		}).Info("Report generated")
	}

	return path, nil
}

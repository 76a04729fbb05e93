package worker

// report_worker.go
// Processes background report jobs from QueueReports: builds the requested
// report table and writes a PDF snapshot under the configured storage path.
// Synchronous exports go straight through the HTTP handler; this path exists
// for scheduled or large reports.

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/export"

	"github.com/rs/zerolog/log"
)

// TableBuilder resolves a report type into a formatter table. Wired from the
// handler layer so this package stays independent of the view-models.
type TableBuilder func(ctx context.Context, reportType string) (export.Table, error)

// ReportMailer delivers a finished report file by email.
type ReportMailer interface {
	SendReport(to, subject, body, filePath string) error
}

// ReportWorker processes report-generation jobs from QueueReports.
type ReportWorker struct {
	build       TableBuilder
	storagePath string
	mailer      ReportMailer
}

func NewReportWorker(build TableBuilder, storagePath string, mailer ReportMailer) *ReportWorker {
	return &ReportWorker{build: build, storagePath: storagePath, mailer: mailer}
}

// Process renders the requested report to PDF and stores it on disk.
func (w *ReportWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("report_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}

	table, err := w.build(ctx, payload.ReportType)
	if err != nil {
		return fmt.Errorf("report_worker: build %s report: %w", payload.ReportType, err)
	}

	data, err := export.PDF(table)
	if err != nil {
		return fmt.Errorf("report_worker: render %s report: %w", payload.ReportType, err)
	}

	if err := os.MkdirAll(w.storagePath, 0755); err != nil {
		return fmt.Errorf("report_worker: create storage dir: %w", err)
	}
	filePath := filepath.Join(w.storagePath, export.Filename(payload.ReportType, "pdf"))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("report_worker: write %s: %w", filePath, err)
	}

	log.Info().Str("report_type", payload.ReportType).Str("path", filePath).
		Str("requested_by", payload.RequestedBy).Msg("report_worker: report generated")

	// Delivery is best-effort: the file is already on disk, so a mail failure
	// should not send the whole job back through the retry loop.
	if w.mailer != nil && payload.NotifyEmail != "" {
		subject := fmt.Sprintf("Your %s report is ready", payload.ReportType)
		body := fmt.Sprintf("The %s report you requested has been generated. A copy is attached.\n", payload.ReportType)
		if err := w.mailer.SendReport(payload.NotifyEmail, subject, body, filePath); err != nil {
			log.Warn().Err(err).Str("to", payload.NotifyEmail).Msg("report_worker: mail delivery failed")
		}
	}
	return nil
}

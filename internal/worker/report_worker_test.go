package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	to, subject, filePath string
	calls                 int
	fail                  bool
}

func (m *stubMailer) SendReport(to, subject, _, filePath string) error {
	m.calls++
	m.to, m.subject, m.filePath = to, subject, filePath
	if m.fail {
		return assert.AnError
	}
	return nil
}

var _ ReportMailer = (*stubMailer)(nil)

func testBuilder(t *testing.T) TableBuilder {
	t.Helper()
	return func(_ context.Context, reportType string) (export.Table, error) {
		if reportType != "inventory" {
			return export.Table{}, fmt.Errorf("unknown report type %q", reportType)
		}
		return export.Table{
			Title:   "Inventory Report",
			Columns: []string{"Name", "Quantity"},
			Rows:    [][]export.Value{{export.Text("Laptop"), export.Int(4)}},
		}, nil
	}
}

func payloadJSON(t *testing.T, p ReportJobPayload) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return raw
}

func TestReportWorkerWritesPDF(t *testing.T) {
	dir := t.TempDir()
	w := NewReportWorker(testBuilder(t), dir, nil)

	err := w.Process(context.Background(), payloadJSON(t, ReportJobPayload{ReportType: "inventory"}))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "inventory-report-")

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestReportWorkerMailsRequester(t *testing.T) {
	dir := t.TempDir()
	mailer := &stubMailer{}
	w := NewReportWorker(testBuilder(t), dir, mailer)

	err := w.Process(context.Background(), payloadJSON(t, ReportJobPayload{
		ReportType: "inventory", NotifyEmail: "staff@logistx.test",
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "staff@logistx.test", mailer.to)
	assert.Contains(t, mailer.subject, "inventory")
	assert.FileExists(t, mailer.filePath)
}

func TestReportWorkerMailFailureDoesNotRetry(t *testing.T) {
	dir := t.TempDir()
	mailer := &stubMailer{fail: true}
	w := NewReportWorker(testBuilder(t), dir, mailer)

	err := w.Process(context.Background(), payloadJSON(t, ReportJobPayload{
		ReportType: "inventory", NotifyEmail: "staff@logistx.test",
	}))

	assert.NoError(t, err, "file is on disk, delivery is best-effort")
}

func TestReportWorkerSkipsMailWithoutRecipient(t *testing.T) {
	mailer := &stubMailer{}
	w := NewReportWorker(testBuilder(t), t.TempDir(), mailer)

	require.NoError(t, w.Process(context.Background(),
		payloadJSON(t, ReportJobPayload{ReportType: "inventory"})))
	assert.Zero(t, mailer.calls)
}

func TestReportWorkerUnknownTypeFails(t *testing.T) {
	w := NewReportWorker(testBuilder(t), t.TempDir(), nil)

	err := w.Process(context.Background(), payloadJSON(t, ReportJobPayload{ReportType: "sales"}))
	assert.Error(t, err)
}

func TestReportWorkerMalformedPayloadDropped(t *testing.T) {
	w := NewReportWorker(testBuilder(t), t.TempDir(), nil)

	err := w.Process(context.Background(), json.RawMessage(`{"report_type": 42`))
	assert.NoError(t, err, "unparseable jobs must not loop through the retry path")
}

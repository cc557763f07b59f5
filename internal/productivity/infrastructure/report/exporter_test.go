package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/settings"
	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/task"
	"github.com/felixgeelhaar/taskbook/internal/productivity/infrastructure/persistence"
)

type staticSource struct {
	bundle persistence.Bundle
}

func (s staticSource) ExportAll(ctx context.Context) persistence.Bundle {
	return s.bundle
}

func sampleBundle(t *testing.T) persistence.Bundle {
	t.Helper()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	due := "2024-05-03"

	milk, err := task.New("a", task.Input{Title: "Buy milk", Description: "two, please", DueDate: &due}, now)
	require.NoError(t, err)
	bills, err := task.New("b", task.Input{Title: "Pay bills", Priority: "high"}, now)
	require.NoError(t, err)
	bills, err = task.StatusPatch(task.StatusCompleted).Apply(bills, now.Add(time.Hour))
	require.NoError(t, err)

	st := settings.Defaults()
	return persistence.Bundle{
		Tasks:      []task.Task{bills, milk},
		Settings:   &st,
		ExportDate: "2024-05-01T12:00:00.000Z",
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{" csv ", FormatCSV, false},
		{"pdf", FormatPDF, false},
		{"xlsx", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExport_JSONIsImportable(t *testing.T) {
	want := sampleBundle(t)
	var buf bytes.Buffer

	require.NoError(t, NewExporter(staticSource{want}).Export(context.Background(), FormatJSON, &buf))

	got, err := persistence.ParseBundle(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExport_CSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewExporter(staticSource{sampleBundle(t)}).Export(context.Background(), FormatCSV, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		"b", "Pay bills", "", "high", "completed", "",
		"2024-05-01T09:00:00Z", "2024-05-01T10:00:00Z", "2024-05-01T10:00:00Z",
	}, records[1])
	assert.Equal(t, "two, please", records[2][2])
	assert.Equal(t, "2024-05-03", records[2][5])
	assert.Equal(t, "", records[2][8])
}

func TestExport_PDF(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewExporter(staticSource{sampleBundle(t)}).Export(context.Background(), FormatPDF, &buf))

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestExport_PDF_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewExporter(staticSource{persistence.Bundle{}}).Export(context.Background(), FormatPDF, &buf))

	assert.NotZero(t, buf.Len())
}

func TestExport_UnknownFormat(t *testing.T) {
	err := NewExporter(staticSource{}).Export(context.Background(), Format("xml"), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// Package report renders the task collection for export.
package report

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/task"
	"github.com/felixgeelhaar/taskbook/internal/productivity/infrastructure/persistence"
)

// Format is an export output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts json, csv or pdf in any case. Empty means json.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
}

// Source supplies the snapshot to export.
type Source interface {
	ExportAll(ctx context.Context) persistence.Bundle
}

// Exporter writes a snapshot in one of the supported formats. Only the JSON
// form can be imported again.
type Exporter struct {
	src Source
}

// NewExporter creates an Exporter over src.
func NewExporter(src Source) *Exporter {
	return &Exporter{src: src}
}

// Export writes the current snapshot to w.
func (e *Exporter) Export(ctx context.Context, format Format, w io.Writer) error {
	bundle := e.src.ExportAll(ctx)

	switch format {
	case FormatJSON:
		return persistence.WriteBundle(w, bundle)
	case FormatCSV:
		return writeCSV(w, bundle.Tasks)
	case FormatPDF:
		return writePDF(w, bundle)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

var csvHeader = []string{"id", "title", "description", "priority", "status", "due_date", "created_at", "updated_at", "completed_at"}

func writeCSV(w io.Writer, tasks []task.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range tasks {
		if err := cw.Write(csvRecord(t)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(t task.Task) []string {
	completed := ""
	if t.CompletedAt != nil {
		completed = formatTime(*t.CompletedAt)
	}
	return []string{
		t.ID,
		t.Title,
		t.Description,
		t.Priority.String(),
		t.Status.String(),
		deref(t.DueDate),
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
		completed,
	}
}

func writePDF(w io.Writer, b persistence.Bundle) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Task Report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(10)

	stats := task.ComputeStats(b.Tasks)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Exported %s  |  total %d, completed %d, pending %d",
		b.ExportDate, stats.Total, stats.Completed, stats.Pending))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	for _, t := range b.Tasks {
		mark := "[ ]"
		if t.IsCompleted() {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s (%s)", mark, t.Title, t.Priority)
		if t.DueDate != nil {
			line += " due " + *t.DueDate
		}
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
		if t.Description != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(0, 5, tr("    "+t.Description), "0", "L", false)
			pdf.SetFont("Arial", "", 10)
		}
	}

	return pdf.Output(w)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/settings"
	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/task"
)

// ExportDateLayout is RFC 3339 in UTC with millisecond precision.
const ExportDateLayout = "2006-01-02T15:04:05.000Z07:00"

var ErrInvalidBundle = errors.New("invalid export bundle")

// Bundle is the export/import interchange document. A nil Tasks or Settings
// means the field was absent.
type Bundle struct {
	Tasks      []task.Task        `json:"tasks"`
	Settings   *settings.Settings `json:"settings"`
	ExportDate string             `json:"exportDate,omitempty"`
}

// Validate rejects bundles whose tasks break the collection invariants:
// a missing or repeated id, an unknown priority or status, or a completedAt
// that disagrees with the status.
func (b Bundle) Validate() error {
	if err := task.ValidateAll(b.Tasks); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBundle, err)
	}
	return nil
}

// ParseBundle decodes and validates a bundle document.
func ParseBundle(r io.Reader) (Bundle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Bundle{}, fmt.Errorf("read bundle: %w", err)
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	if err := b.Validate(); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// WriteBundle encodes b as indented JSON.
func WriteBundle(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	return nil
}

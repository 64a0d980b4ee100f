package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanshika/insuradmin/internal/domain"
)

// Format selects the machine-readable encoding used by Export.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ErrUnknownFormat is returned by ParseFormat and Export for unsupported formats.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts json, yaml/yml or csv in any case.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// Save overwrites path with the rendered report. Earlier reports are not kept.
func Save(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// Export encodes records in format to w.
func Export(w io.Writer, records []domain.LinkedRecord, format Format) error {
	if records == nil {
		records = []domain.LinkedRecord{}
	}

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return encoder.Close()
	case FormatCSV:
		return writeCSV(w, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeCSV(w io.Writer, records []domain.LinkedRecord) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(domain.LinkedFields))
	for i, f := range domain.LinkedFields {
		header[i] = string(f)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Values()); err != nil {
			return fmt.Errorf("write csv row %s: %w", rec.PaymentID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

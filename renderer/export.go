package renderer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/folio"
)

// Format is an export file format.
type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatText, FormatCSV}

// ParseFormat parses an export format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q: must be 'txt' or 'csv'", s)
}

// FileName returns the export file name for a report generated at 'now'.
// The timestamp avoids overwriting previous exports.
func FileName(format Format, now time.Time) string {
	return fmt.Sprintf("portfolio_%s.%s", now.Format("20060102_150405"), format)
}

// Export writes the valuation into a new file in 'dir' and returns its path.
func Export(dir string, format Format, v *folio.Valuation, now time.Time) (path string, err error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return "", err
	}
	path = filepath.Join(dir, FileName(format, now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close export file %q: %w", path, cerr)
		}
	}()

	switch format {
	case FormatText:
		err = Text(f, v, now)
	case FormatCSV:
		err = CSV(f, v)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

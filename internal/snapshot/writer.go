// Package snapshot writes parsed report data to flat tab-delimited files,
// one file per report type, one row per sample.
package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cmgg/qcreport/internal/record"
)

// Writer writes per-sample records in tab-delimited format with a fixed
// column order.
type Writer struct {
	w       *bufio.Writer
	columns []string
}

// NewWriter creates a snapshot writer with the given field columns. The
// sample name is always the first output column.
func NewWriter(w io.Writer, columns []string) *Writer {
	return &Writer{
		w:       bufio.NewWriter(w),
		columns: columns,
	}
}

// WriteHeader writes the header line.
func (sw *Writer) WriteHeader() error {
	_, err := sw.w.WriteString("sample\t" + strings.Join(sw.columns, "\t") + "\n")
	return err
}

// Write writes one sample row. Fields absent from the record are left
// empty.
func (sw *Writer) Write(sample string, rec record.Fields) error {
	row := make([]string, 0, len(sw.columns)+1)
	row = append(row, sample)
	for _, col := range sw.columns {
		row = append(row, FormatValue(rec[col]))
	}
	_, err := sw.w.WriteString(strings.Join(row, "\t") + "\n")
	return err
}

// Flush flushes buffered output.
func (sw *Writer) Flush() error {
	return sw.w.Flush()
}

// WriteFile writes a whole registry to path in insertion order.
func WriteFile(path string, reg *record.Registry, columns []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()

	sw := NewWriter(f, columns)
	if err := sw.WriteHeader(); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}
	for _, sample := range reg.Samples() {
		rec, _ := reg.Get(sample)
		if err := sw.Write(sample, rec); err != nil {
			return fmt.Errorf("write snapshot row: %w", err)
		}
	}
	return sw.Flush()
}

// FormatValue renders a record value for flat output. Absent fields (nil)
// render empty.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"
	"sort"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/cmgg/qcreport/internal/record"
	"github.com/cmgg/qcreport/internal/snapshot"
)

// WriteRecords replaces the stored rows for the given report with the
// registry contents, batch-inserting through the DuckDB Appender. Field
// values are rendered the same way as the flat-file snapshot.
func (s *Store) WriteRecords(report string, reg *record.Registry) error {
	if reg.Len() == 0 {
		return nil
	}

	if _, err := s.db.Exec("DELETE FROM sample_records WHERE report = ?", report); err != nil {
		return fmt.Errorf("clear report rows: %w", err)
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "sample_records")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, sample := range reg.Samples() {
		rec, _ := reg.Get(sample)

		fields := make([]string, 0, len(rec))
		for field := range rec {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for _, field := range fields {
			if err := appender.AppendRow(report, sample, field, snapshot.FormatValue(rec[field])); err != nil {
				return fmt.Errorf("append sample record: %w", err)
			}
		}
	}

	return appender.Flush()
}

// ReadRecords reads every stored field for the given report back as
// sample -> field -> rendered value.
func (s *Store) ReadRecords(report string) (map[string]map[string]string, error) {
	rows, err := s.db.Query(
		"SELECT sample, field, value FROM sample_records WHERE report = ?", report)
	if err != nil {
		return nil, fmt.Errorf("query report rows: %w", err)
	}
	defer rows.Close()

	out := make(map[string]map[string]string)
	for rows.Next() {
		var sample, field, value string
		if err := rows.Scan(&sample, &field, &value); err != nil {
			return nil, fmt.Errorf("scan sample record: %w", err)
		}
		if out[sample] == nil {
			out[sample] = make(map[string]string)
		}
		out[sample][field] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sample records: %w", err)
	}
	return out, nil
}

// Samples returns the distinct sample names stored for a report.
func (s *Store) Samples(report string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT sample FROM sample_records WHERE report = ? ORDER BY sample", report)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var samples []string
	for rows.Next() {
		var sample string
		if err := rows.Scan(&sample); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	return samples, nil
}

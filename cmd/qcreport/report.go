package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cmgg/qcreport/internal/discover"
	"github.com/cmgg/qcreport/internal/duckdb"
	"github.com/cmgg/qcreport/internal/msh2"
	"github.com/cmgg/qcreport/internal/sexpred"
	"github.com/cmgg/qcreport/internal/snapshot"
)

func newReportCmd() *cobra.Command {
	var (
		inputDir  string
		outputDir string
		dbPath    string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Parse report files and write per-sample snapshots",
		Long: `Discover SampleGender (_xy/_hetx/_sry .tsv) and targeted MSH2
(_msh2.txt) report files under the input directory, derive per-sample
consensus metrics and write one snapshot file per report type.`,
		Example: `  qcreport report --input ./run42 --output ./report
  qcreport report --input ./run42 --output ./report --db report.duckdb
  qcreport report --input ./run42 --sanger-threshold 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(inputDir, outputDir, dbPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "directory to search for report files (required)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "directory for snapshot files")
	cmd.Flags().StringVar(&dbPath, "db", "", "also persist records to a DuckDB database at this path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().Float64("sanger-threshold", msh2.DefaultSangerThreshold,
		"variant frequency percentage above which Sanger confirmation is warranted")
	cobra.CheckErr(viper.BindPFlag("msh2.sanger_threshold", cmd.Flags().Lookup("sanger-threshold")))
	cobra.CheckErr(cmd.MarkFlagRequired("input"))

	return cmd
}

func runReport(inputDir, outputDir, dbPath string, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	threshold := viper.GetFloat64("msh2.sanger_threshold")
	ignore := viper.GetStringSlice("ignore_samples")
	logger.Info("Sanger threshold set", zap.Float64("threshold", threshold))

	reports, err := discover.Find(inputDir)
	if err != nil {
		return err
	}

	sexPipe := sexpred.NewPipeline()
	sexPipe.SetLogger(logger)
	msh2Pipe := msh2.NewPipeline(threshold)
	msh2Pipe.SetLogger(logger)

	for _, f := range reports.Sex {
		text, err := os.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("read %s: %w", f.Path, err)
		}
		sexPipe.Ingest(f.Sample, f.Subtype, string(text))
	}

	for _, f := range reports.Hotspots {
		text, err := os.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("read %s: %w", f.Path, err)
		}
		if err := msh2Pipe.Ingest(f.Sample, string(text)); err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var store *duckdb.Store
	if dbPath != "" {
		store, err = duckdb.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	sexReg, err := sexPipe.Finalize(ignore)
	switch {
	case errors.Is(err, sexpred.ErrNothingToReport):
		logger.Info("no sample gender reports to show, skipping section")
	case err != nil:
		return err
	default:
		path := filepath.Join(outputDir, sexpred.SnapshotName+".txt")
		if err := snapshot.WriteFile(path, sexReg, sexpred.SnapshotColumns); err != nil {
			return err
		}
		logger.Info("wrote sex prediction snapshot",
			zap.String("path", path),
			zap.Int("samples", sexReg.Len()))
		if store != nil {
			if err := store.WriteRecords(sexpred.SnapshotName, sexReg); err != nil {
				return err
			}
		}
	}

	msh2Reg := msh2Pipe.Finalize(ignore)
	if msh2Reg.Len() > 0 {
		path := filepath.Join(outputDir, msh2.SnapshotName+".txt")
		if err := snapshot.WriteFile(path, msh2Reg, msh2.SnapshotColumns); err != nil {
			return err
		}
		logger.Info("wrote targeted MSH2 snapshot",
			zap.String("path", path),
			zap.Int("samples", msh2Reg.Len()))
		if store != nil {
			if err := store.WriteRecords(msh2.SnapshotName, msh2Reg); err != nil {
				return err
			}
		}
	}

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

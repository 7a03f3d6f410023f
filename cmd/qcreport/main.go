// Package main provides the qcreport command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmgg/qcreport/internal/msh2"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "qcreport",
		Short: "Per-sample consensus metrics from genomic analysis reports",
		Long: `qcreport ingests small tabular text reports from genomic analysis
tools and turns them into per-sample consensus metrics: sex prediction
consensus calls from ngs-bits SampleGender output, and MSH2 hotspot
variant frequencies from targeted read-count output.`,
		Version:      fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cfgFile)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.qcreport.yaml)")

	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig wires viper: defaults, optional config file, environment.
func initConfig(cfgFile string) error {
	viper.SetDefault("msh2.sanger_threshold", msh2.DefaultSangerThreshold)
	viper.SetDefault("ignore_samples", []string{})

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".qcreport")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("QCREPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// defaultConfigPath returns ~/.qcreport.yaml, falling back to the
// working directory when the home directory is unknown.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".qcreport.yaml"
	}
	return filepath.Join(home, ".qcreport.yaml")
}

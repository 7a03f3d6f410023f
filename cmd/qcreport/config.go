package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage qcreport configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.qcreport.yaml.",
		Example: `  qcreport config                               # show all config
  qcreport config set msh2.sanger_threshold 20  # lower the Sanger threshold
  qcreport config get msh2.sanger_threshold     # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(args[0])
		},
	}
}

func runConfigShow() error {
	settings := viper.AllSettings()
	if len(settings) == 0 {
		fmt.Println("# No configuration set. Config file: ~/.qcreport.yaml")
		return nil
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func runConfigSet(key, value string) error {
	// Keep numeric and boolean values typed in the config file.
	switch {
	case value == "true" || value == "yes" || value == "on":
		viper.Set(key, true)
	case value == "false" || value == "no" || value == "off":
		viper.Set(key, false)
	default:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			viper.Set(key, f)
		} else {
			viper.Set(key, value)
		}
	}

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		cfgFile = defaultConfigPath()
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

func runConfigGet(key string) error {
	val := viper.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Println(val)
	return nil
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dshills/veil/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage veil configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings to the config file",
	RunE:  runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store one setting in the config file",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings in effect after env and flags",
	RunE:  runConfigShow,
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Config file already exists at %s\n", path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}
	if err := config.Save(config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config file created at %s\n", path)
	return nil
}

// runConfigSet edits the stored settings only; env and flags never leak
// into the file.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	cfg, err := config.Stored()
	if err != nil {
		return err
	}
	if err := config.SetField(&cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

func init() {
	configCmd.AddCommand(configInitCmd, configSetCmd, configShowCmd)
}

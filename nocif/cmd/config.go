package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sarchlab/nocif/noc/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration.",
	Long: "Print the configuration after environment overrides and defaults " +
		"are applied.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("config")

		return dumpConfig(path, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func dumpConfig(path string, w io.Writer) error {
	if path == "" {
		return fmt.Errorf("--config is required")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	out, err := cfg.Marshal()
	if err != nil {
		return err
	}

	_, err = w.Write(out)

	return err
}

// Package cmd provides the command-line interface of nocif.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nocif",
	Short: "nocif runs a NoC network interface on a loopback fabric.",
	Long: `nocif runs a NoC network interface on a loopback fabric with ` +
		`random traffic and reports buffering and latency statistics.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Path of the YAML configuration file")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/inkwell-hq/inkwell_backend/cmd/http"
	systemcmd "github.com/inkwell-hq/inkwell_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Inkwell scheduling and compliance core for tattoo and PMU studios.",
	Long: `Inkwell is the supervised-practice scheduling and compliance core of a
multi-tenant studio-management platform. It coordinates apprentice bookings
against supervisor availability and maintains the append-only procedure ledger.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}

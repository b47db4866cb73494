package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markb/smg/internal/log"
)

// Version information set via ldflags at build time
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

var (
	flagDir     string
	flagVerbose int
)

var rootCmd = &cobra.Command{
	Use:     "smg",
	Short:   "SurrealDB migration file generator",
	Long:    `Generates uniquely named .surql migration files with numeric or timestamp prefixes.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(log.VerbosityConfig(flagVerbose))
	},
}

func init() {
	rootCmd.SetVersionTemplate("smg version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Override the migrations directory (default: ./migrations, or the current directory when it is named 'migrations')")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "Increase log verbosity (-v debug, -vv debug with source)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

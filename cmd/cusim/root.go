package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sarchlab/cusim/timing/latency"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cusim",
		Short:         "A control unit simulator with a memoizing operation cache.",
		Long:          "Simulate a four register control unit that caches ALU results by instruction and operand values.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(GetFlag(cmd, "verbose"))
		},
		Run: func(cmd *cobra.Command, args []string) {
			if GetFlag(cmd, "version") {
				fmt.Fprintf(cmd.OutOrStdout(), "cusim %s\n", version())
				return
			}
			_ = cmd.Help()
		},
	}

	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("config", "c", "", "timing configuration JSON file")

	rootCmd.AddCommand(newDemoCmd(), newRunCmd(), newConfigCmd())

	return rootCmd
}

func version() string {
	if Version != "" {
		// Built via "make"
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}

func configureLogging(verbose bool) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	log.SetFormatter(&log.TextFormatter{
		DisableColors:    !term.IsTerminal(int(os.Stderr.Fd())),
		DisableTimestamp: true,
	})
}

// loadTimingConfig reads the --config file, or returns the defaults.
func loadTimingConfig(cmd *cobra.Command) (*latency.TimingConfig, error) {
	path := GetString(cmd, "config")
	if path == "" {
		return latency.DefaultTimingConfig(), nil
	}

	config, err := latency.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debugf("loaded timing config from %s", path)
	return config, nil
}

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return r
}

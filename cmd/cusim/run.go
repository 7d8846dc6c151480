package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/cusim/emu"
	"github.com/sarchlab/cusim/program"
	"github.com/sarchlab/cusim/timing/core"
	"github.com/sarchlab/cusim/timing/latency"
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [flags] script",
		Short: "Run a control unit script.",
		Long:  `Run a script of load, exec, read, regs and cache statements against a fresh machine.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadTimingConfig(cmd)
			if err != nil {
				return err
			}

			inf, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer inf.Close()

			prog, err := program.Parse(inf)
			if err != nil {
				return err
			}
			log.Debugf("parsed %d statements from %s", len(prog.Statements), args[0])

			w := cmd.OutOrStdout()
			opts := []emu.MachineOption{emu.WithLogger(nil)}
			if GetFlag(cmd, "trace") {
				opts = append(opts, emu.WithHook(emu.NewTraceHook(w)))
			}
			c := core.NewCore(latency.NewTableWithConfig(config), opts...)

			if err := prog.Run(c, w); err != nil {
				return err
			}
			if GetFlag(cmd, "stats") {
				printStats(w, c)
			}
			return nil
		},
	}

	runCmd.Flags().Bool("trace", false, "print every cache hit and miss")
	runCmd.Flags().Bool("stats", false, "print execution statistics")

	return runCmd
}

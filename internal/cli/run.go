package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/output"
	"gitflow.dev/gitflow/internal/runtime"
)

// run provides a runtime context to a command's execution function and closes
// the log file afterwards
func run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	splog, err := runtime.NewSplogFromEnv()
	if err != nil {
		return err
	}
	defer func() { _ = splog.Close() }()

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		splog.SetQuiet(true)
	}

	splog.Debug("gitflow %s", cmd.CommandPath())

	ctx, err := runtime.GetContext(cmd.Context(), splog)
	if err != nil {
		return report(cmd, splog, err)
	}

	if err := fn(ctx); err != nil {
		return report(cmd, splog, err)
	}
	return nil
}

// report writes err through splog so it reaches the log file, and stops cobra
// from printing it a second time
func report(cmd *cobra.Command, splog *output.Splog, err error) error {
	splog.Error("%v", err)
	cmd.SilenceErrors = true
	return err
}

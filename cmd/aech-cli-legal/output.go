package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/infra/cliout"
	"aechlegal/internal/infra/telemetry"
)

// fail prints the error payload on stdout and exits 1 without further output.
func fail(cmd *cobra.Command, opts *cliOptions, err error) error {
	opts.logger.Debug("action failed",
		telemetry.EventField(telemetry.EventActionFailed),
		telemetry.ActionField(cmd.CommandPath()),
		telemetry.CodeField(err),
		zap.Error(err),
	)
	if writeErr := cliout.WriteError(cmd.OutOrStdout(), err); writeErr != nil {
		return writeErr
	}
	return cliout.Silent(1)
}

// emitStub prints a placeholder payload on a single line.
func emitStub(cmd *cobra.Command, opts *cliOptions, result any, err error) error {
	if err != nil {
		return fail(cmd, opts, err)
	}
	return cliout.WriteCompactJSON(cmd.OutOrStdout(), result)
}

// emitResult prints an LLM result, or writes it to output and prints the
// completion summary.
func emitResult(cmd *cobra.Command, opts *cliOptions, result any, err error, output string) error {
	if err != nil {
		return fail(cmd, opts, err)
	}
	if output == "" {
		return cliout.WriteJSON(cmd.OutOrStdout(), result)
	}
	summary, err := actions.WriteOutput(output, result)
	if err != nil {
		return fail(cmd, opts, err)
	}
	return cliout.WriteCompactJSON(cmd.OutOrStdout(), summary)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aechlegal/internal/domain"
	"aechlegal/internal/infra/cliout"
	"aechlegal/internal/infra/telemetry"
)

// fail prints the error payload on stdout and exits 1 without further output.
func fail(cmd *cobra.Command, opts *cliOptions, err error) error {
	opts.logger.Debug("skill failed",
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

// readSource returns the content of the file named by args, or stdin when no
// file is given.
func readSource(opts *cliOptions, op string, args []string) (text, source string, err error) {
	if len(args) > 0 && args[0] != "" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", "", domain.NotFound(op, "File", args[0])
			}
			return "", "", domain.Wrap(domain.CodeInternal, op, err)
		}
		return string(data), args[0], nil
	}
	if opts.env.stdin == nil {
		return "", "stdin", nil
	}
	data, err := io.ReadAll(opts.env.stdin)
	if err != nil {
		return "", "", domain.Wrap(domain.CodeInternal, op, err)
	}
	return string(data), "stdin", nil
}

func readTrimmed(op, label, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.NotFound(op, label, path)
		}
		return "", domain.Wrap(domain.CodeInternal, op, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// outputFormat validates a --output-format value against its choices.
func outputFormat(value string, choices ...string) error {
	for _, choice := range choices {
		if value == choice {
			return nil
		}
	}
	return fmt.Errorf("invalid --output-format %q (choose from %s)", value, strings.Join(choices, ", "))
}

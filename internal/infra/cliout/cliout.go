// Package cliout holds the output conventions shared by the command-line
// binaries: JSON on stdout, an {"error": ...} payload on failure and exit
// code 1.
package cliout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"aechlegal/internal/domain"
)

// ExitError carries a process exit code through cobra's error return.
type ExitError struct {
	Code    int
	Message string
	// Silent suppresses the stderr line when the payload was already printed.
	Silent bool
}

func (e ExitError) Error() string {
	return e.Message
}

func Silent(code int) error {
	return ExitError{Code: code, Silent: true}
}

// ExitCode maps the error returned by a command tree to a process exit code.
// Errors other than ExitError are printed to stderr as "Error: ...".
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Silent && exitErr.Message != "" {
			fmt.Fprintln(stderr, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintln(stderr, "Error:", err.Error())
	return 1
}

func WriteJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func WriteCompactJSON(w io.Writer, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// WriteError prints the user-facing message of err as a single-line payload.
func WriteError(w io.Writer, err error) error {
	return WriteCompactJSON(w, ErrorPayload{Error: domain.MessageOf(err)})
}

package main

import (
	"context"
	"io"
	"os"

	"aechlegal/internal/infra/cliout"
	"aechlegal/internal/infra/llm"
)

// environment carries the process-level inputs of one invocation.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// completer replaces the configured LLM client when set.
	completer llm.Completer
}

func main() {
	env := environment{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(run(context.Background(), os.Args[1:], env))
}

func run(ctx context.Context, args []string, env environment) int {
	root := newRootCommand(env)
	root.SetArgs(args)
	return cliout.ExitCode(root.ExecuteContext(ctx), env.stderr)
}

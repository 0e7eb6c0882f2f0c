package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"aechlegal/internal/infra/cliout"
	"aechlegal/internal/infra/config"
	"aechlegal/internal/infra/llm"
	"aechlegal/internal/infra/manifest"
)

// version is set at build time via -ldflags.
var version = "dev"

// environment carries the process-level inputs of one invocation.
type environment struct {
	stdout     io.Writer
	stderr     io.Writer
	executable string
	// completer replaces the configured LLM client when set.
	completer llm.Completer
}

func main() {
	env := environment{stdout: os.Stdout, stderr: os.Stderr, executable: executablePath()}
	os.Exit(run(context.Background(), os.Args[1:], env))
}

func run(ctx context.Context, args []string, env environment) int {
	if shouldEmitManifest(args) {
		return emitManifest(env)
	}

	root := newRootCommand(env)
	root.SetArgs(args)
	return cliout.ExitCode(root.ExecuteContext(ctx), env.stderr)
}

// shouldEmitManifest reports whether argv is exactly one help flag.
func shouldEmitManifest(args []string) bool {
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}

func emitManifest(env environment) int {
	cfg, err := config.NewLoader(zap.NewNop()).Load("")
	if err != nil {
		_ = cliout.WriteError(env.stdout, err)
		return 1
	}
	doc, err := manifest.NewLoader(manifestLocator(cfg.Manifest.Paths, env.executable), zap.NewNop()).Load()
	if err != nil {
		_ = cliout.WriteError(env.stdout, err)
		return 1
	}
	data, err := doc.Indented()
	if err != nil {
		_ = cliout.WriteError(env.stdout, err)
		return 1
	}
	fmt.Fprintln(env.stdout, string(data))
	return 0
}

func manifestLocator(paths []string, executable string) manifest.Locator {
	if len(paths) > 0 {
		return manifest.Locator{Paths: paths}
	}
	return manifest.DefaultLocator(executable)
}

func executablePath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}

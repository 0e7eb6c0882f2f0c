package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aechlegal/internal/infra/mcpserver"
)

func newMCPCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:    "mcp",
		Short:  "Serve every manifest action as an MCP tool over stdio",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := opts.manifestLoader().Load()
			if err != nil {
				return fail(cmd, opts, err)
			}
			server, err := mcpserver.New(doc.Manifest, opts.dispatch, version, opts.logger)
			if err != nil {
				return err
			}
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()
			return server.Run(ctx)
		},
	}
}

// dispatch runs argv through a fresh command tree and captures its stdout.
func (o *cliOptions) dispatch(ctx context.Context, argv []string) (string, error) {
	var stdout bytes.Buffer
	env := o.env
	env.stdout = &stdout
	env.stderr = io.Discard

	var args []string
	if o.configPath != "" {
		args = append(args, "--config="+o.configPath)
	}
	args = append(args, argv...)
	root := newRootCommand(env)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return stdout.String(), err
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

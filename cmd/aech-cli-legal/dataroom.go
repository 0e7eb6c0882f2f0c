package main

import (
	"github.com/spf13/cobra"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/infra/manifest"
)

func newDataroomCmd(opts *cliOptions) *cobra.Command {
	return newGroupCmd("dataroom", "Data room connections",
		newConnectCmd(opts),
		newDownloadCmd(opts),
	)
}

func newConnectCmd(opts *cliOptions) *cobra.Command {
	var req actions.ConnectRequest
	cmd := newActionCmd("connect", "Authenticate to a data room.", `Authenticate to a data room.

Input: provider, credentials.
Output: session token.
Use when user needs to access deal documents in a data room.`,
		[]manifest.Arg{{Name: "provider", Description: "Data room provider (intralinks, datasite, firmex)"}},
		func(cmd *cobra.Command, args []string) error {
			req.Provider = args[0]
			result, err := opts.actions().ConnectDataroom(cmd.Context(), req)
			return emitStub(cmd, opts, result, err)
		})
	cmd.Flags().StringVarP(&req.ProjectID, "project-id", "p", "", "Project/deal room ID")
	_ = cmd.MarkFlagRequired("project-id")
	return cmd
}

func newDownloadCmd(opts *cliOptions) *cobra.Command {
	var req actions.DownloadRequest
	cmd := newActionCmd("download", "Download document from data room.", `Download document from data room.

Input: document ID.
Output: local file path.
Use when user needs a specific document from the deal room.`,
		[]manifest.Arg{{Name: "doc-id", Description: "Document ID in data room"}},
		func(cmd *cobra.Command, args []string) error {
			req.DocID = args[0]
			result, err := opts.actions().DownloadDocument(cmd.Context(), req)
			return emitStub(cmd, opts, result, err)
		})
	cmd.Flags().StringVarP(&req.OutputDir, "output-dir", "o", "", "Local directory for download")
	_ = cmd.MarkFlagRequired("output-dir")
	return cmd
}

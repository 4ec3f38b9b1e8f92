// Package cli implements the resumescore command line tool.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	// Version information, set at build time with ldflags.
	Version   = "dev"
	GitCommit = "unknown"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resumescore",
		Short: "Score structured resumes offline",
		Long: `resumescore runs the resume quality engine locally. It scores a
structured resume JSON document or the raw text of a PDF, DOCX or plain
text resume without contacting the API.`,
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd(), newTextCmd(), newVersionCmd())
	return root
}

// Execute runs the CLI with args taken from the process.
func Execute(ctx context.Context) error {
	root := NewRootCmd()
	root.SetContext(ctx)
	return root.ExecuteContext(ctx)
}

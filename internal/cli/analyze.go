package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"resume-insights/internal/analyses"
	"resume-insights/internal/analytics"
)

func newAnalyzeCmd() *cobra.Command {
	var opts outputOptions
	cmd := &cobra.Command{
		Use:   "analyze [resume.json]",
		Short: "Score a structured resume document",
		Long: `Score a resume JSON document and print composite scores, section
findings and prioritized recommendations. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			doc, err := analyses.DecodeDocument(data)
			if err != nil {
				var verr *analyses.ValidationError
				if errors.As(err, &verr) {
					for _, f := range verr.Fields {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f.Field, f.Issue)
					}
				}
				return err
			}
			report := analytics.Analyze(doc)
			return opts.write(cmd, report, func(w io.Writer) { renderReport(w, report) })
		},
	}
	opts.bind(cmd)
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

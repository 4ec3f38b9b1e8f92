package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-insights/internal/analytics"
	"resume-insights/internal/extract"
)

func newTextCmd() *cobra.Command {
	var opts outputOptions
	cmd := &cobra.Command{
		Use:   "text [resume.pdf|resume.docx|resume.txt]",
		Short: "Score the raw text of a resume file",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			text, err := extract.ExtractTextFromBytes(cmd.Context(), data, "", filepath.Base(args[0]))
			if err != nil {
				return fmt.Errorf("extract text: %w", err)
			}
			report := analytics.AnalyzeText(text)
			return opts.write(cmd, report, func(w io.Writer) { renderTextReport(w, report) })
		},
	}
	opts.bind(cmd)
	return cmd
}

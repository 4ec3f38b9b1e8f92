package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-insights/internal/analytics"
)

const (
	formatJSON = "json"
	formatText = "text"
)

type outputOptions struct {
	Format string
	File   string
}

func (o *outputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.File, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&o.Format, "format", formatText, "Output format: json or text")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{formatJSON, formatText}, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *outputOptions) validate() error {
	switch o.Format {
	case formatJSON, formatText:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want json or text)", o.Format)
	}
}

// write renders payload with render for text output, or as indented JSON.
func (o *outputOptions) write(cmd *cobra.Command, payload any, render func(io.Writer)) error {
	out := cmd.OutOrStdout()
	if o.File != "" {
		f, err := os.Create(o.File)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if o.Format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
	render(out)
	return nil
}

func renderReport(w io.Writer, r analytics.AnalysisReport) {
	s := r.Scores
	fmt.Fprintf(w, "Overall score: %d/100 (%s)\n\n", s.Overall, r.Insights.Benchmark.Ranking)
	fmt.Fprintf(w, "  Completeness        %3d\n", s.Completeness)
	fmt.Fprintf(w, "  ATS compatibility   %3d\n", s.ATSCompatibility)
	fmt.Fprintf(w, "  Readability         %3d\n", s.Readability)
	fmt.Fprintf(w, "  Impact              %3d\n", s.Impact)
	fmt.Fprintf(w, "  Industry alignment  %3d\n", s.IndustryAlignment)
	fmt.Fprintf(w, "\nWords: %d  Action verbs: %d  Quantified results: %d\n",
		r.WordCount, r.Lexical.ActionVerbCount, r.Lexical.QuantifiableCount)

	if len(r.MissingSections) > 0 {
		fmt.Fprintf(w, "\nMissing sections: %s\n", strings.Join(r.MissingSections, ", "))
	}
	if len(r.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(w, "  [%s] %s: %s\n", rec.Impact, rec.Title, rec.Action)
		}
	}
	writeList(w, "Strengths", r.Strengths)
	writeList(w, "Weaknesses", r.Weaknesses)
}

func renderTextReport(w io.Writer, r analytics.TextReport) {
	fmt.Fprintf(w, "Words: %d\n", r.WordCount)
	fmt.Fprintf(w, "Readability: %d\n", r.Readability)
	fmt.Fprintf(w, "Industry alignment: %d\n", r.IndustryAlignment)
	fmt.Fprintf(w, "Professionalism: %d\n", r.Professionalism)
	fmt.Fprintf(w, "Action verbs: %d  Quantified results: %d\n", r.Lexical.ActionVerbCount, r.Lexical.QuantifiableCount)
	if len(r.Lexical.KeywordDensity) > 0 {
		terms := make([]string, 0, len(r.Lexical.KeywordDensity))
		for _, tf := range r.Lexical.KeywordDensity {
			terms = append(terms, fmt.Sprintf("%s(%d)", tf.Term, tf.Count))
		}
		fmt.Fprintf(w, "Top terms: %s\n", strings.Join(terms, " "))
	}
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

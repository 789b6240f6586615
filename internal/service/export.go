package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jask/skincare/internal/routine"
)

// Export formats.
const (
	FormatYAML     = "yaml"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Export writes routines to w in the given format.
func Export(w io.Writer, routines []routine.Routine, format string) error {
	if routines == nil {
		routines = []routine.Routine{}
	}
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(routines); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(routines)
	case FormatMarkdown, "md":
		for i, r := range routines {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, Markdown(r)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w %q (want yaml, json or markdown)", ErrUnknownFormat, format)
}

// Markdown renders one routine as a heading followed by numbered steps.
func Markdown(r routine.Routine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Name)
	if len(r.Products) == 0 {
		b.WriteString("_No steps._\n")
		return b.String()
	}
	b.WriteString(StepsMarkdown(r.Products))
	return b.String()
}

// StepsMarkdown renders steps as "- **Step N** Category: Product" lines.
func StepsMarkdown(steps []routine.ProductStep) string {
	var b strings.Builder
	for i, s := range steps {
		fmt.Fprintf(&b, "- **Step %d** %s\n", i+1, s)
	}
	return b.String()
}

// StepLines renders steps as plain "Step N  Category: Product" lines.
func StepLines(steps []routine.ProductStep) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = fmt.Sprintf("Step %-3d %s", i+1, s)
	}
	return out
}

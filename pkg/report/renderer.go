package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/propkit/propkit/pkg/metadata"
)

func (r *Renderer) renderText(w io.Writer, rep Report) error {
	if _, err := fmt.Fprintf(w, "report %s generated at %s\n",
		rep.ID, rep.GeneratedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, row := range rep.Rows {
		if _, err := fmt.Fprintf(w, "row %d:\n", i+1); err != nil {
			return err
		}
		if r.opts.includeValues {
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			for _, pv := range row.Container.Values() {
				fmt.Fprintf(tw, "  %s\t= %s\t(%s)\n",
					pv.Property().Name(), r.formatValue(pv.Value()), pv.Source())
			}
			if err := tw.Flush(); err != nil {
				return err
			}
		}
		for _, m := range row.Messages {
			if _, err := fmt.Fprintf(w, "  %s %s: %s\n", m.Severity, m.PropertyName, m.Text); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "summary: %d errors, %d warnings\n", rep.Errors(), rep.Warnings())
	return err
}

// formatValue localizes numeric payloads when a language is configured;
// everything else keeps the invariant form.
func (r *Renderer) formatValue(v metadata.Value) string {
	if r.opts.lang == language.Und || v.IsNull() {
		return v.Format()
	}
	switch v.Kind() {
	case metadata.KindInt, metadata.KindFloat:
		return message.NewPrinter(r.opts.lang).Sprintf("%v", v.Native())
	default:
		return v.Format()
	}
}

type yamlReport struct {
	ID          string      `yaml:"id"`
	GeneratedAt string      `yaml:"generated_at"`
	Rows        []yamlRow   `yaml:"rows"`
	Summary     yamlSummary `yaml:"summary"`
}

type yamlRow struct {
	Values   []yamlValue   `yaml:"values,omitempty"`
	Messages []yamlMessage `yaml:"messages,omitempty"`
}

type yamlValue struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
	Source   string `yaml:"source"`
}

type yamlMessage struct {
	Severity string `yaml:"severity"`
	Property string `yaml:"property"`
	Text     string `yaml:"text"`
}

type yamlSummary struct {
	Errors   int `yaml:"errors"`
	Warnings int `yaml:"warnings"`
}

func (r *Renderer) renderYAML(w io.Writer, rep Report) error {
	doc := yamlReport{
		ID:          rep.ID,
		GeneratedAt: rep.GeneratedAt.Format(time.RFC3339),
		Rows:        make([]yamlRow, 0, len(rep.Rows)),
		Summary:     yamlSummary{Errors: rep.Errors(), Warnings: rep.Warnings()},
	}
	for _, row := range rep.Rows {
		yr := yamlRow{}
		if r.opts.includeValues {
			for _, pv := range row.Container.Values() {
				yr.Values = append(yr.Values, yamlValue{
					Property: pv.Property().Name(),
					Value:    r.formatValue(pv.Value()),
					Source:   pv.Source().String(),
				})
			}
		}
		for _, m := range row.Messages {
			yr.Messages = append(yr.Messages, yamlMessage{
				Severity: m.Severity.String(),
				Property: m.PropertyName,
				Text:     m.Text,
			})
		}
		doc.Rows = append(doc.Rows, yr)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

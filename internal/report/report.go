// Package report renders an experiment overview as markdown or YAML and
// compares parameter tables.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"schedlab/internal/experiment"
	"schedlab/internal/logger"
)

// Styles accepted by RenderMarkdown.
var Styles = []string{"auto", "dark", "light", "notty", "ascii"}

// DefaultWidth is the word-wrap width used when none is configured.
const DefaultWidth = 100

// Markdown builds a markdown overview: seeds, schedulers, a per-run summary
// table and one parameter table per seed.
func Markdown(exp *experiment.Experiment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", exp)

	b.WriteString("## Seeds\n\n")
	writeList(&b, exp.AllSeeds())

	b.WriteString("## Schedulers\n\n")
	writeList(&b, exp.Schedulers())

	if runs := exp.Summary(); len(runs) > 0 {
		b.WriteString("## Runs\n\n")
		b.WriteString("| Scheduler | Seed | Processes | CPU utilization | Mean turnaround | Mean waiting | Makespan |\n")
		b.WriteString("|---|---|---:|---:|---:|---:|---:|\n")
		for _, r := range runs {
			if r.Error != "" {
				fmt.Fprintf(&b, "| %s | %s | | error: %s | | | |\n", r.Scheduler, r.Seed, r.Error)
				continue
			}
			fmt.Fprintf(&b, "| %s | %s | %d | %.2f | %.2f | %.2f | %.2f |\n",
				r.Scheduler, r.Seed, r.Processes, r.CPUUtilization, r.MeanTurnaround, r.MeanWaiting, r.Makespan)
		}
		b.WriteString("\n")
	}

	for _, seed := range exp.AllSeeds() {
		table, err := exp.InputParams(seed)
		if err != nil || table.Len() == 0 {
			continue
		}
		fmt.Fprintf(&b, "## Input parameters, seed %s\n\n", seed)
		b.WriteString("| Parameter | Value |\n|---|---|\n")
		for _, name := range table.Names() {
			value, _ := table.Get(name)
			fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(name), escapeCell(value))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("_none_\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderMarkdown renders md for the terminal with a glamour style
// ("auto", "dark", "light", "notty", "ascii" or a style file path).
func RenderMarkdown(md, style string, width int) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}
	if width <= 0 {
		width = DefaultWidth
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStylePath(style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown with style '%s': %w", style, err)
	}
	logger.Debug("Rendered report", "style", style, "width", width)
	return rendered, nil
}

// Document is the YAML form of the report.
type Document struct {
	Directory       string                  `yaml:"directory"`
	Seeds           []string                `yaml:"seeds"`
	Schedulers      []string                `yaml:"schedulers"`
	Runs            []experiment.RunSummary `yaml:"runs"`
	InputParameters []ParamSet              `yaml:"input_parameters,omitempty"`
}

// ParamSet is one seed's parameters.
type ParamSet struct {
	Seed   string            `yaml:"seed"`
	Params map[string]string `yaml:"params"`
}

// NewDocument collects the report data for exp.
func NewDocument(exp *experiment.Experiment) Document {
	doc := Document{
		Directory:  exp.Directory(),
		Seeds:      exp.AllSeeds(),
		Schedulers: exp.Schedulers(),
		Runs:       exp.Summary(),
	}
	for _, seed := range doc.Seeds {
		table, err := exp.InputParams(seed)
		if err != nil {
			continue
		}
		doc.InputParameters = append(doc.InputParameters, ParamSet{Seed: seed, Params: table.Map()})
	}
	return doc
}

// YAML marshals the report document.
func YAML(exp *experiment.Experiment) ([]byte, error) {
	out, err := yaml.Marshal(NewDocument(exp))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return out, nil
}

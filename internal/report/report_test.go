package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"schedlab/internal/experiment"
	"schedlab/internal/params"
	"schedlab/internal/testutils"
)

const trace = `id createdTime startedTime terminatedTime cpuTime turnaroundTime
0  0           0           100            20      100
1  0           10          30             80      30
`

func newExperiment(t *testing.T) *experiment.Experiment {
	t.Helper()
	root := testutils.NewExperiment().
		Input("1", "alpha=1\nmode=a|b\n").
		File(testutils.SimulatorDir+"/simulator_parameters_seed1.txt", "cores=2\n").
		Output("rr", "1", trace).
		Output("rr", "2", "id cpuTime\n1 5\n").
		Output("fcfs", "1", trace).
		Build(t)
	exp, err := experiment.New(root)
	require.NoError(t, err)
	return exp
}

func TestMarkdown(t *testing.T) {
	exp := newExperiment(t)
	md := Markdown(exp)

	assert.True(t, strings.HasPrefix(md, "# Experiment: "))
	assert.Contains(t, md, "## Schedulers\n\n- fcfs\n- rr\n")
	assert.Contains(t, md, "| rr | 1 | 1 | 99.20 | 30.00 | 10.00 | 100.00 |")
	assert.Contains(t, md, "| rr | 2 | | error: trace has no idle process |")
	assert.Contains(t, md, "## Input parameters, seed 1")
	assert.Contains(t, md, `| mode | a\|b |`)
}

func TestRenderMarkdown(t *testing.T) {
	exp := newExperiment(t)

	out, err := RenderMarkdown(Markdown(exp), "notty", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "Schedulers")
	assert.Contains(t, out, "fcfs")

	_, err = RenderMarkdown("  \n", "notty", 80)
	assert.Error(t, err)
}

func TestYAML(t *testing.T) {
	exp := newExperiment(t)

	out, err := YAML(exp)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, exp.Directory(), doc.Directory)
	assert.Equal(t, []string{"1"}, doc.Seeds)
	assert.Equal(t, []string{"fcfs", "rr"}, doc.Schedulers)
	require.Len(t, doc.Runs, 3)
	assert.InDelta(t, 99.2, doc.Runs[0].CPUUtilization, 1e-9)
	assert.NotEmpty(t, doc.Runs[2].Error)
	require.Len(t, doc.InputParameters, 1)
	assert.Equal(t, "1", doc.InputParameters[0].Params["alpha"])
}

func TestDiffParams(t *testing.T) {
	a, err := params.Parse(strings.NewReader("alpha=1\nquantum=4\n"))
	require.NoError(t, err)
	b, err := params.Parse(strings.NewReader("alpha=2\nquantum=4\n"))
	require.NoError(t, err)

	lines := DiffParams(a, b)
	assert.True(t, Changed(lines))
	assert.Contains(t, lines, DiffLine{Op: DiffRemoved, Text: "alpha=1"})
	assert.Contains(t, lines, DiffLine{Op: DiffAdded, Text: "alpha=2"})
	assert.Contains(t, lines, DiffLine{Op: DiffEqual, Text: "quantum=4"})

	assert.Equal(t, "- alpha=1", DiffLine{Op: DiffRemoved, Text: "alpha=1"}.String())
	assert.Equal(t, "+ alpha=2", DiffLine{Op: DiffAdded, Text: "alpha=2"}.String())

	assert.False(t, Changed(DiffParams(a, a)))
}

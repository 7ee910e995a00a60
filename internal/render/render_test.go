package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"earslint/internal/analyzer"
	"earslint/pkg/schema"
)

func sampleReport(t *testing.T) *schema.Report {
	t.Helper()
	verdicts := []schema.Verdict{
		analyzer.Analyze("REQ_1", "The system shall log all transactions."),
		analyzer.Analyze("REQ_2", "The system should probably handle errors"),
		analyzer.AnalyzeRow(schema.Row{Name: "REQ_3"}),
		analyzer.Analyze("", "While the door is open, when the button is pressed, the system shall lock."),
	}
	report, err := schema.NewReport("reqs.csv", verdicts)
	require.NoError(t, err)
	return report
}

func TestTable(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, report.Verdicts, 0))
	out := buf.String()

	for _, want := range []string{
		"Name", "Requirement", "EARS Category", "Quality Check",
		"REQ_1", "Ubiquitous requirement", "Punctuation OK",
		"REQ_2", "DOES NOT MEET", "• Missing end punctuation",
		"Invalid requirement", "N/A",
		"Requirement 4", "Complex requirement (State-Event)",
	} {
		assert.Contains(t, out, want)
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, nil, 0))
	assert.Equal(t, NoResults+"\n", buf.String())
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, Destructive, CategoryColor("DOES NOT MEET"))
	assert.Equal(t, Complex, CategoryColor("Complex requirement (State-Event)"))
	assert.Equal(t, Complex, CategoryColor("Complex unwanted behavior requirement"))
	assert.Equal(t, Success, CategoryColor("Temporal requirement"))
}

func TestPunctuationColor(t *testing.T) {
	assert.Equal(t, Warning, PunctuationColor(schema.PunctuationIssues))
	assert.Equal(t, Success, PunctuationColor(schema.PunctuationOK))
	assert.Equal(t, Success, PunctuationColor(schema.PunctuationNA))
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, sampleReport(t).Summary))

	out := buf.String()
	assert.Contains(t, out, "Total: 4")
	assert.Contains(t, out, "Conforming: 2")
	assert.Contains(t, out, "Skipped: 1")
	assert.Contains(t, out, "DOES NOT MEET")
	assert.NotContains(t, out, "Temporal requirement")
}

func TestJSON(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, report))

	var decoded struct {
		ID       string `json:"id"`
		Verdicts []struct {
			Category    string   `json:"category"`
			Punctuation string   `json:"punctuation"`
			Issues      []string `json:"issues"`
		} `json:"verdicts"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.ID, decoded.ID)
	require.Len(t, decoded.Verdicts, 4)
	assert.Equal(t, "N/A", decoded.Verdicts[2].Punctuation)
	assert.NotNil(t, decoded.Verdicts[0].Issues, "issues encode as [] not null")
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, sampleReport(t)))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "reqs.csv", decoded["source"])
	assert.True(t, strings.HasPrefix(buf.String(), "id: RPT-"))
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "json", "yaml"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	report := sampleReport(t)

	var table bytes.Buffer
	require.NoError(t, Report(&table, report, FormatTable, 40))
	assert.Contains(t, table.String(), "Total: 4")

	var js bytes.Buffer
	require.NoError(t, Report(&js, report, FormatJSON, 0))
	assert.True(t, json.Valid(js.Bytes()))
}

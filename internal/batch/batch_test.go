package batch

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"earslint/internal/analyzer"
	"earslint/internal/core"
	"earslint/pkg/schema"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var sentences = []string{
	"The system shall log all transactions.",
	"When the user clicks submit, the system shall validate the form.",
	"When sensor A triggers and sensor B triggers, the system shall raise an alarm.",
	"While the door is open, when the button is pressed, the system shall lock, and it shall beep.",
	"The system should probably handle errors",
	"After 5 seconds, the display shall dim.",
	"Where a printer is present, the system shall offer printing.",
}

func sampleRows(n int) []schema.Row {
	rows := make([]schema.Row, 0, n)
	for i := 0; i < n; i++ {
		name := schema.DefaultRowName(i + 1)
		if i%9 == 8 {
			rows = append(rows, schema.Row{Name: name})
			continue
		}
		rows = append(rows, schema.TextRow(name, sentences[i%len(sentences)]))
	}
	return rows
}

func TestRunPreservesOrder(t *testing.T) {
	rows := sampleRows(50)

	verdicts, err := NewRunner(analyzer.New(), Options{Workers: 8}, nil).Run(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, verdicts, len(rows))

	for i, v := range verdicts {
		assert.Equal(t, rows[i].Name, v.Name)
		assert.Equal(t, analyzer.AnalyzeRow(rows[i]), v)
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	rows := sampleRows(200)

	sequential, err := NewRunner(analyzer.New(), Options{Workers: 1}, nil).Run(context.Background(), rows)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 32} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			parallel, err := NewRunner(analyzer.New(), Options{Workers: workers}, nil).Run(context.Background(), rows)
			require.NoError(t, err)
			assert.Equal(t, sequential, parallel)
		})
	}
}

func TestRunMissingTextRow(t *testing.T) {
	rows := []schema.Row{{Name: "REQ_1"}}

	verdicts, err := NewRunner(analyzer.New(), Options{}, nil).Run(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, verdicts, 1)

	assert.Equal(t, "DOES NOT MEET", verdicts[0].Category)
	assert.Equal(t, schema.PunctuationNA, verdicts[0].Punctuation)
	assert.Empty(t, verdicts[0].Issues)
}

func TestRunLengthCap(t *testing.T) {
	long := "The system shall " + strings.Repeat("really ", 50) + "log."
	rows := []schema.Row{
		schema.TextRow("REQ_1", long),
		schema.TextRow("REQ_2", "The system shall log."),
	}

	var buf bytes.Buffer
	logger := core.NewLoggerWithWriter("info", &buf)

	verdicts, err := NewRunner(analyzer.New(), Options{MaxTextLength: 100}, logger).Run(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, schema.PunctuationNA, verdicts[0].Punctuation)
	assert.Equal(t, schema.InvalidRequirementText, verdicts[0].Text)
	assert.Equal(t, "Ubiquitous requirement", verdicts[1].Category)
	assert.Contains(t, buf.String(), "exceeds length cap")
	assert.Contains(t, buf.String(), "REQ_1")
}

func TestRunLengthCapDisabled(t *testing.T) {
	long := "The system shall " + strings.Repeat("really ", 500) + "log."

	verdicts, err := NewRunner(analyzer.New(), Options{}, nil).Run(context.Background(), []schema.Row{schema.TextRow("REQ_1", long)})
	require.NoError(t, err)
	assert.Equal(t, "Ubiquitous requirement", verdicts[0].Category)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	verdicts, err := NewRunner(analyzer.New(), Options{Workers: 4}, nil).Run(ctx, sampleRows(20))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, verdicts)
}

func TestRunEmpty(t *testing.T) {
	verdicts, err := NewRunner(analyzer.New(), Options{Workers: 4}, nil).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, verdicts)
}

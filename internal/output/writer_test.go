package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nephila016/fakefilter/internal/classify"
)

func sampleResults() []*classify.Result {
	return []*classify.Result{
		{
			Email:         "user@tempmail.com",
			LocalPart:     "user",
			Domain:        "tempmail.com",
			Verdict:       classify.VerdictFake,
			Fake:          true,
			MatchedDomain: "tempmail.com",
			CheckedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			Email:     "jane@example.com",
			LocalPart: "jane",
			Domain:    "example.com",
			Verdict:   classify.VerdictClean,
			CheckedAt: time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC),
		},
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("out.json"))
	assert.Equal(t, FormatCSV, DetectFormat("out.CSV"))
	assert.Equal(t, FormatJSONL, DetectFormat("out.jsonl"))
	assert.Equal(t, FormatJSONL, DetectFormat("out.ndjson"))
	assert.Equal(t, FormatTXT, DetectFormat("out.txt"))
	assert.Equal(t, FormatTXT, DetectFormat("out"))
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteResultsToFile(path, sampleResults()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 results

	assert.Equal(t, "email", rows[0][0])
	assert.Equal(t, "user@tempmail.com", rows[1][0])
	assert.Equal(t, "fake", rows[1][1])
	assert.Equal(t, "tempmail.com", rows[1][3])
	assert.Equal(t, "clean", rows[2][1])
}

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteResultsToFile(path, sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []*classify.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.True(t, decoded[0].Fake)
	assert.Equal(t, classify.VerdictClean, decoded[1].Verdict)
}

func TestJSONLWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	require.NoError(t, WriteResultsToFile(path, sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var r classify.Result
		require.NoError(t, json.Unmarshal([]byte(line), &r))
	}
}

func TestTXTWriterFlaggedOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, WriteResultsToFile(path, sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Clean addresses are skipped.
	assert.Equal(t, "user@tempmail.com\n", string(data))
}

func TestStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)
	for _, r := range sampleResults() {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Close())

	assert.Contains(t, buf.String(), "user@tempmail.com: fake")
	assert.Contains(t, buf.String(), "jane@example.com: clean")
}

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/stayfocused/internal/domain"
	"gopkg.in/yaml.v3"
)

func snapshot(t *testing.T) *domain.CurrentState {
	t.Helper()
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	app := domain.NewApp()
	p := app.AddProject()
	p.Name = "Thesis"
	p.Note = "due in May"
	require.NoError(t, p.TimeCommitment.Set(2, 2*time.Hour))

	p.AddTask(domain.RestoreTask("", "Read papers", "", "", 90*time.Minute))
	p.AddTask(domain.RestoreTask("", "Write, revise", "chapter 1", "", 45*time.Second))
	app.AddProject()

	return app.Snapshot(now)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, snapshot(t)))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Projects, 2)

	thesis := doc.Projects[0]
	assert.Equal(t, "Thesis", thesis.Name)
	assert.Equal(t, int64(5445), thesis.TotalSeconds)
	assert.Equal(t, map[string]int64{"monday": 7200}, thesis.Commitment)
	require.Len(t, thesis.Tasks, 2)
	assert.Equal(t, "01:30:00", thesis.Tasks[0].Elapsed)
	assert.Equal(t, int64(45), thesis.Tasks[1].ElapsedSeconds)

	assert.NotNil(t, doc.Projects[1].Tasks, "empty projects export an empty task list")
	assert.Equal(t, "task", doc.View)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, snapshot(t)))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Projects, 2)
	assert.Equal(t, "due in May", doc.Projects[0].Note)
	assert.Equal(t, "chapter 1", doc.Projects[0].Tasks[1].Description)
	assert.Contains(t, buf.String(), "elapsed_seconds: 5400")
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, snapshot(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per task")
	assert.Equal(t, "project", records[0][0])
	assert.Equal(t, []string{"Thesis", "Write, revise", "45", "00:00:45", "chapter 1", ""}, records[2])
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatMarkdown, snapshot(t)))

	out := buf.String()
	assert.Contains(t, out, "## Thesis")
	assert.Contains(t, out, "- Total: 01:30:45")
	assert.Contains(t, out, "  - Read papers: 01:30:00")
	assert.Contains(t, out, "## (unnamed project)")
}

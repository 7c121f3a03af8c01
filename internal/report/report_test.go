package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsushant/task-reminder-api/internal/model"
)

func sampleTasks() []model.Task {
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	completedA := created.Add(48 * time.Hour)
	completedB := created.Add(96 * time.Hour)

	return []model.Task{
		{
			ID: 1, Name: "Ship release", Description: "cut the tag",
			Status: "Completed", CreationDate: created,
			DueDate: created.Add(72 * time.Hour), CompletedDate: &completedA,
			AssignedTo: "alice", Priority: "High",
		},
		{
			ID: 2, Name: "Review PR", Status: "Completed",
			CreationDate: created, DueDate: created.Add(120 * time.Hour),
			CompletedDate: &completedB, AssignedTo: "bob", Priority: "Medium",
		},
		{
			ID: 3, Name: "Write docs", Status: "Pending",
			CreationDate: created, DueDate: created.Add(240 * time.Hour),
			AssignedTo: "carol", Priority: "Low",
		},
	}
}

func TestPreprocess_DropsUnusableRows(t *testing.T) {
	tasks := sampleTasks()
	tasks = append(tasks,
		model.Task{ID: 4, Name: "no creation date", DueDate: time.Now()},
		model.Task{ID: 5, Name: "no due date", CreationDate: time.Now()},
	)

	out := Preprocess(tasks)

	require.Len(t, out, 3)
	for _, tk := range out {
		assert.False(t, tk.CreationDate.IsZero())
		assert.False(t, tk.DueDate.IsZero())
	}
}

func TestCompletionHours(t *testing.T) {
	tasks := sampleTasks()

	hours, ok := CompletionHours(tasks[0])
	require.True(t, ok)
	assert.InDelta(t, 48.0, hours, 0.001)

	_, ok = CompletionHours(tasks[2])
	assert.False(t, ok, "undefined for tasks without a completed_date")
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	tasks := sampleTasks()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tasks))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, len(tasks)+1, "header plus one row per task")
	assert.Equal(t, []string{
		"task_id", "name", "description", "status",
		"creation_date", "due_date", "completed_date",
		"assigned_to", "priority",
	}, records[0])

	for i, tk := range tasks {
		row := records[i+1]
		assert.Equal(t, strconv.FormatInt(tk.ID, 10), row[0])
		assert.Equal(t, tk.Name, row[1])
		assert.Equal(t, tk.Description, row[2])
		assert.Equal(t, tk.Status, row[3])
		assert.Equal(t, tk.CreationDate.Format(time.RFC3339), row[4])
		assert.Equal(t, tk.DueDate.Format(time.RFC3339), row[5])
		assert.Equal(t, tk.AssignedTo, row[7])
		assert.Equal(t, tk.Priority, row[8])
	}

	assert.Equal(t, "", records[3][6], "pending task has an empty completed_date")
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderChart_AllKinds(t *testing.T) {
	for _, kind := range []string{KindLine, KindPie, KindBar, "anything-else"} {
		t.Run(kind, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderChart(&buf, kind, sampleTasks()))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "output must be a PNG")
		})
	}
}

func TestRenderChart_UnknownKindIsDefault(t *testing.T) {
	var unknown, def bytes.Buffer

	require.NoError(t, RenderChart(&unknown, "xyz", sampleTasks()))
	require.NoError(t, RenderChart(&def, "", sampleTasks()))

	assert.Equal(t, def.Bytes(), unknown.Bytes(),
		"an unrecognized plot kind renders the time-vs-priority chart")
}

func TestRenderChart_NoData(t *testing.T) {
	for _, kind := range []string{KindLine, KindPie, KindBar, "default"} {
		t.Run(kind, func(t *testing.T) {
			var buf bytes.Buffer
			err := RenderChart(&buf, kind, nil)
			assert.ErrorIs(t, err, ErrNoData)
		})
	}
}

func TestRenderChart_SingleCompletionStillRenders(t *testing.T) {
	// One completed task means one data point; the line and default
	// charts must still produce an image rather than erroring.
	tasks := sampleTasks()[:1]

	for _, kind := range []string{KindLine, "default"} {
		t.Run(kind, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderChart(&buf, kind, tasks))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
		})
	}
}

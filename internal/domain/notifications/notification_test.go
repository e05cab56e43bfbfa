//go:build unit
// +build unit

package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_Render(t *testing.T) {
	template := Template{
		Key:      KindDueSoon,
		Markdown: "# Task due soon: {task_title}\n- Due at: {due_at}\n- Remaining: {remaining}\n",
	}

	rendered := template.Render(map[string]string{
		"task_title": "Water the plants",
		"due_at":     "2026-03-01T18:00:00Z",
		"remaining":  "2h30m",
	})

	assert.Contains(t, rendered, "Task due soon: Water the plants")
	assert.Contains(t, rendered, "Due at: 2026-03-01T18:00:00Z")
	assert.Contains(t, rendered, "Remaining: 2h30m")
	assert.NotContains(t, rendered, "{task_title}")
}

func TestTemplate_Render_UnknownPlaceholderStays(t *testing.T) {
	template := Template{Key: KindOverdue, Markdown: "{task_title} / {unknown}"}

	rendered := template.Render(map[string]string{"task_title": "Pay rent"})

	assert.Equal(t, "Pay rent / {unknown}", rendered)
}

func TestLog_Validate(t *testing.T) {
	taskID := uint(7)
	valid := Log{TaskID: &taskID, Kind: KindDueSoon, Destination: "discord://token@channel", Payload: "body"}
	require.NoError(t, valid.Validate())

	missingKind := Log{Destination: "discord://token@channel", Payload: "body"}
	require.Error(t, missingKind.Validate())

	missingDestination := Log{Kind: KindTest, Payload: "body"}
	require.Error(t, missingDestination.Validate())
}

func TestTemplate_Validate(t *testing.T) {
	require.NoError(t, (&Template{Key: KindDueSoon, Markdown: "x"}).Validate())
	require.Error(t, (&Template{Markdown: "x"}).Validate())
}

//go:build unit
// +build unit

package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_Validate(t *testing.T) {
	longTitle := make([]byte, 201)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	tests := []struct {
		name      string
		task      Task
		shouldErr bool
	}{
		{"Valid pending task", Task{Title: "Buy milk", Status: StatusPending}, false},
		{"Valid completed task", Task{Title: "Buy milk", Status: StatusCompleted}, false},
		{"Empty title", Task{Title: "", Status: StatusPending}, true},
		{"Whitespace-only title", Task{Title: "   ", Status: StatusPending}, true},
		{"Tab and newline title", Task{Title: "\t\n", Status: StatusPending}, true},
		{"Title too long", Task{Title: string(longTitle), Status: StatusPending}, true},
		{"Unknown status", Task{Title: "Buy milk", Status: Status("archived")}, true},
		{"Missing status", Task{Title: "Buy milk"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	undated := Task{Title: "undated", Status: StatusPending}
	assert.False(t, undated.IsOverdue(now), "undated tasks are never overdue")

	pastDue := Task{Title: "past", Status: StatusPending, DueAt: &past}
	assert.True(t, pastDue.IsOverdue(now))

	futureDue := Task{Title: "future", Status: StatusPending, DueAt: &future}
	assert.False(t, futureDue.IsOverdue(now))

	completed := Task{Title: "done", Status: StatusCompleted, DueAt: &past}
	assert.False(t, completed.IsOverdue(now), "completed tasks are never overdue")
}

func TestTaskQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*TaskQuery)
		shouldErr bool
	}{
		{"Defaults", func(*TaskQuery) {}, false},
		{"Valid status filter", func(q *TaskQuery) { s := StatusPending; q.Status = &s }, false},
		{"Invalid status filter", func(q *TaskQuery) { s := Status("archived"); q.Status = &s }, true},
		{"Invalid sort field", func(q *TaskQuery) { q.SortBy = "priority" }, true},
		{"Invalid sort order", func(q *TaskQuery) { q.SortOrder = "sideways" }, true},
		{"Limit too large", func(q *TaskQuery) { q.Limit = 1000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := NewTaskQuery()
			tt.mutate(query)

			err := query.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestTaskRelationship_Validate(t *testing.T) {
	valid := TaskRelationship{TaskID: 1, RelatedTaskID: 2, RelType: RelationshipGeneric}
	require.NoError(t, valid.Validate())

	dependency := TaskRelationship{TaskID: 1, RelatedTaskID: 2, RelType: RelationshipDependency}
	require.NoError(t, dependency.Validate())

	selfLink := TaskRelationship{TaskID: 1, RelatedTaskID: 1, RelType: RelationshipGeneric}
	err := selfLink.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot relate to itself")

	unknownType := TaskRelationship{TaskID: 1, RelatedTaskID: 2, RelType: RelationshipType("blocks")}
	require.Error(t, unknownType.Validate())
}

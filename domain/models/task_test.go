package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskPriorityRank(t *testing.T) {
	assert.Less(t, TaskPriorityLow.Rank(), TaskPriorityMedium.Rank())
	assert.Less(t, TaskPriorityMedium.Rank(), TaskPriorityHigh.Rank())
	assert.Less(t, TaskPriorityHigh.Rank(), TaskPriorityUrgent.Rank())
	assert.Equal(t, 0, TaskPriority("CRITICAL").Rank())
	assert.False(t, TaskPriority("").IsValid())
}

func TestTaskStatusIsValid(t *testing.T) {
	for _, s := range []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, TaskStatus("CANCELED").IsValid())
	assert.False(t, TaskStatus("pending").IsValid())
}
